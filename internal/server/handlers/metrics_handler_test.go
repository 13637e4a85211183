package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/hardwin/shopfloor/internal/domain/models"
	"github.com/hardwin/shopfloor/internal/repository/mongodb"
	"github.com/hardwin/shopfloor/internal/service/dashboard"
)

type stubRepo struct {
	worksheets []models.Worksheet
}

func (s *stubRepo) ListWorksheets(context.Context, mongodb.ListFilter) ([]models.Worksheet, error) {
	return s.worksheets, nil
}

func (s *stubRepo) GetWorksheet(context.Context, string) (models.Worksheet, error) {
	return models.Worksheet{}, mongodb.ErrNotFound
}
func (s *stubRepo) CreateWorksheet(context.Context, models.Worksheet) error { return nil }
func (s *stubRepo) UpdateWorksheet(context.Context, models.Worksheet) error { return nil }
func (s *stubRepo) DeleteWorksheet(context.Context, string) error           { return nil }
func (s *stubRepo) ListFactoryIDs(context.Context) ([]string, error)        { return nil, nil }

func testEngine(repo mongodb.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewMetricsHandler(dashboard.NewService(repo, nil), nil)

	r := gin.New()
	r.GET("/metrics/production", handler.Production)
	r.GET("/metrics/downtime", handler.Downtime)
	r.GET("/metrics/performance", handler.Performance)
	r.GET("/metrics/oee", handler.OEE)
	r.GET("/metrics/utilization", handler.Utilization)
	return r
}

func TestMetricsHandler(t *testing.T) {
	repo := &stubRepo{worksheets: []models.Worksheet{
		{
			ID: "ws1", FactoryID: "fct-1", ProductionDate: "2026-01-10",
			Shift: "1", MachineID: "mc-01", MachineName: "Extruder A",
			WorkStartTime: "06:00", WorkEndTime: "14:00",
			TargetProduction: 5000, ActualProduction: 4500,
			Downtimes: []models.DowntimeEntry{{StartTime: "08:00", EndTime: "09:00"}},
		},
	}}

	t.Run("requires-factory-id", func(t *testing.T) {
		r := testEngine(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics/production", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("rejects-bad-date-bounds", func(t *testing.T) {
		r := testEngine(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics/oee?factory_id=fct-1&from=10-01-2026", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	t.Run("production", func(t *testing.T) {
		r := testEngine(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics/production?factory_id=fct-1", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var records []models.ProductionRecord
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
		assert.Len(t, records, 1)
		assert.Equal(t, "prod_ws_ws1", records[0].ID)
		assert.Equal(t, 90.0, records[0].YieldRate)
	})
	t.Run("downtime", func(t *testing.T) {
		r := testEngine(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics/downtime?factory_id=fct-1", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var records []models.DowntimeRecord
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
		assert.Len(t, records, 1)
		assert.Equal(t, 1.0, records[0].DurationHours)
	})
	t.Run("performance", func(t *testing.T) {
		r := testEngine(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics/performance?factory_id=fct-1&from=2026-01-01&to=2026-01-31", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var summary models.PerformanceSummary
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		assert.Equal(t, 90.0, summary.Overall.AvgAchievement)
		assert.Len(t, summary.ByMachine, 1)
	})
	t.Run("oee", func(t *testing.T) {
		r := testEngine(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics/oee?factory_id=fct-1", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var records []models.OEERecord
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
		assert.Len(t, records, 1)
		assert.Equal(t, 7.0, records[0].PlannedTimeHours)
		assert.Equal(t, 6.0, records[0].OperatingTimeHours)
	})
	t.Run("utilization", func(t *testing.T) {
		r := testEngine(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics/utilization?factory_id=fct-1", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var records []models.UtilizationRecord
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
		assert.Len(t, records, 1)
		assert.Equal(t, 85.7, records[0].UtilizationRatePct)
	})
	t.Run("empty-store-returns-empty-collections", func(t *testing.T) {
		r := testEngine(&stubRepo{})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics/performance?factory_id=fct-1", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var summary models.PerformanceSummary
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
		assert.Equal(t, 0.0, summary.Overall.AvgAchievement)
		assert.Empty(t, summary.ByMachine)
		assert.Empty(t, summary.ByShift)
	})
}
