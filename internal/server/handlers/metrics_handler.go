package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hardwin/shopfloor/internal/repository/mongodb"
	"github.com/hardwin/shopfloor/internal/service/dashboard"
)

// MetricsHandler serves the derived-metric endpoints backing the dashboard
// tabs. Every endpoint is a read: the derived records are computed on demand
// and never persisted, and their ids are not addressable through CRUD.
type MetricsHandler struct {
	svc    *dashboard.Service
	logger *zap.Logger
}

// NewMetricsHandler constructs the HTTP handler adapter.
func NewMetricsHandler(svc *dashboard.Service, logger *zap.Logger) *MetricsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetricsHandler{svc: svc, logger: logger}
}

// Production returns worksheet-derived production records.
func (h *MetricsHandler) Production(c *gin.Context) {
	filter, ok := listFilterFromQuery(c)
	if !ok {
		return
	}

	records, err := h.svc.ProductionRecords(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed deriving production records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to derive production records"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Downtime returns the flattened downtime log.
func (h *MetricsHandler) Downtime(c *gin.Context) {
	filter, ok := listFilterFromQuery(c)
	if !ok {
		return
	}

	records, err := h.svc.DowntimeLog(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed deriving downtime log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to derive downtime log"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Performance returns the aggregated performance summary.
func (h *MetricsHandler) Performance(c *gin.Context) {
	filter, ok := listFilterFromQuery(c)
	if !ok {
		return
	}

	summary, err := h.svc.PerformanceSummary(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed aggregating performance", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate performance"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// OEE returns the per-worksheet OEE breakdown.
func (h *MetricsHandler) OEE(c *gin.Context) {
	filter, ok := listFilterFromQuery(c)
	if !ok {
		return
	}

	records, err := h.svc.OEERecords(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed computing oee", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute oee"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Utilization returns the per-machine utilization rollup.
func (h *MetricsHandler) Utilization(c *gin.Context) {
	filter, ok := listFilterFromQuery(c)
	if !ok {
		return
	}

	records, err := h.svc.MachineUtilization(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed aggregating utilization", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate utilization"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// listFilterFromQuery extracts the factory scope and optional date bounds
// shared by the listing and metric endpoints. It writes the error response
// itself and reports success through the second return value.
func listFilterFromQuery(c *gin.Context) (mongodb.ListFilter, bool) {
	factoryID := c.Query("factory_id")
	if factoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "factory_id is required"})
		return mongodb.ListFilter{}, false
	}

	filter := mongodb.ListFilter{
		FactoryID: factoryID,
		FromDate:  c.Query("from"),
		ToDate:    c.Query("to"),
	}

	for _, date := range []string{filter.FromDate, filter.ToDate} {
		if date == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from/to must be YYYY-MM-DD"})
			return mongodb.ListFilter{}, false
		}
	}

	return filter, true
}
