package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hardwin/shopfloor/internal/domain/models"
	"github.com/hardwin/shopfloor/internal/repository/mongodb"
	"github.com/hardwin/shopfloor/internal/service/worksheets"
)

// WorksheetHandler handles worksheet CRUD over HTTP.
type WorksheetHandler struct {
	svc    *worksheets.Service
	logger *zap.Logger
}

// NewWorksheetHandler constructs the HTTP handler adapter.
func NewWorksheetHandler(svc *worksheets.Service, logger *zap.Logger) *WorksheetHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorksheetHandler{svc: svc, logger: logger}
}

// List returns worksheets for a factory, optionally bounded by from/to dates.
func (h *WorksheetHandler) List(c *gin.Context) {
	filter, ok := listFilterFromQuery(c)
	if !ok {
		return
	}

	result, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("failed listing worksheets", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list worksheets"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get returns one worksheet by id.
func (h *WorksheetHandler) Get(c *gin.Context) {
	ws, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, mongodb.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "worksheet not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed fetching worksheet", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch worksheet"})
		return
	}

	c.JSON(http.StatusOK, ws)
}

// Create stores a new worksheet.
func (h *WorksheetHandler) Create(c *gin.Context) {
	var ws models.Worksheet
	if err := c.ShouldBindJSON(&ws); err != nil {
		h.logger.Warn("invalid worksheet payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	created, err := h.svc.Create(c.Request.Context(), ws)
	if err != nil {
		h.logger.Warn("failed creating worksheet", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update replaces an existing worksheet.
func (h *WorksheetHandler) Update(c *gin.Context) {
	var ws models.Worksheet
	if err := c.ShouldBindJSON(&ws); err != nil {
		h.logger.Warn("invalid worksheet payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	ws.ID = c.Param("id")

	updated, err := h.svc.Update(c.Request.Context(), ws)
	if errors.Is(err, mongodb.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "worksheet not found"})
		return
	}
	if err != nil {
		h.logger.Warn("failed updating worksheet", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete removes a worksheet.
func (h *WorksheetHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, mongodb.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "worksheet not found"})
		return
	}
	if err != nil {
		h.logger.Error("failed deleting worksheet", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete worksheet"})
		return
	}

	c.Status(http.StatusNoContent)
}
