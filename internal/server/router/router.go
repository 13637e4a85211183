package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hardwin/shopfloor/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(worksheetHandler *handlers.WorksheetHandler, metricsHandler *handlers.MetricsHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api/v1")
	{
		api.POST("/worksheets", worksheetHandler.Create)
		api.GET("/worksheets", worksheetHandler.List)
		api.GET("/worksheets/:id", worksheetHandler.Get)
		api.PUT("/worksheets/:id", worksheetHandler.Update)
		api.DELETE("/worksheets/:id", worksheetHandler.Delete)

		api.GET("/metrics/production", metricsHandler.Production)
		api.GET("/metrics/downtime", metricsHandler.Downtime)
		api.GET("/metrics/performance", metricsHandler.Performance)
		api.GET("/metrics/oee", metricsHandler.OEE)
		api.GET("/metrics/utilization", metricsHandler.Utilization)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
