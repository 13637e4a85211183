package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hardwin/shopfloor/internal/domain/models"
)

func perfFixture() []models.Worksheet {
	return []models.Worksheet{
		{
			ID: "ws1", MachineID: "mc-01", MachineName: "Extruder A", Shift: "1",
			TargetProduction: 5000, ActualProduction: 4500,
			Downtimes: []models.DowntimeEntry{{StartTime: "10:00", EndTime: "11:00"}},
		},
		{
			ID: "ws2", MachineID: "mc-02", MachineName: "Mixer B", Shift: "2",
			TargetProduction: 3000, ActualProduction: 3000,
		},
		{
			ID: "ws3", MachineID: "mc-01", MachineName: "Extruder A", Shift: "2",
			TargetProduction: 2000, ActualProduction: 500,
			Downtimes: []models.DowntimeEntry{{StartTime: "20:00", EndTime: "20:30"}},
		},
	}
}

func TestPerformanceSummary(t *testing.T) {
	t.Run("overall-rollup", func(t *testing.T) {
		summary, err := PerformanceSummary(perfFixture())
		assert.NoError(t, err)

		assert.Equal(t, 10000.0, summary.Overall.TotalTarget)
		assert.Equal(t, 8000.0, summary.Overall.TotalActual)
		assert.Equal(t, 1.5, summary.Overall.TotalDowntimeHours)
		assert.Equal(t, 80.0, summary.Overall.AvgAchievement)
		assert.Equal(t, 3, summary.Overall.WorksheetCount)
	})
	t.Run("by-machine-first-occurrence-order", func(t *testing.T) {
		summary, err := PerformanceSummary(perfFixture())
		assert.NoError(t, err)
		assert.Len(t, summary.ByMachine, 2)

		assert.Equal(t, "mc-01", summary.ByMachine[0].MachineID)
		assert.Equal(t, "Extruder A", summary.ByMachine[0].MachineName)
		assert.Equal(t, 7000.0, summary.ByMachine[0].TotalTarget)
		assert.Equal(t, 5000.0, summary.ByMachine[0].TotalActual)
		assert.Equal(t, 1.5, summary.ByMachine[0].TotalDowntimeHours)
		assert.Equal(t, 2, summary.ByMachine[0].WorksheetCount)
		assert.Equal(t, 71.4, summary.ByMachine[0].Achievement)

		assert.Equal(t, "mc-02", summary.ByMachine[1].MachineID)
		assert.Equal(t, 100.0, summary.ByMachine[1].Achievement)
	})
	t.Run("by-shift-first-occurrence-order", func(t *testing.T) {
		summary, err := PerformanceSummary(perfFixture())
		assert.NoError(t, err)
		assert.Len(t, summary.ByShift, 2)

		assert.Equal(t, "1", summary.ByShift[0].Shift)
		assert.Equal(t, 1, summary.ByShift[0].WorksheetCount)

		assert.Equal(t, "2", summary.ByShift[1].Shift)
		assert.Equal(t, 5000.0, summary.ByShift[1].TotalTarget)
		assert.Equal(t, 3500.0, summary.ByShift[1].TotalActual)
		assert.Equal(t, 70.0, summary.ByShift[1].Achievement)
	})
	t.Run("empty-input", func(t *testing.T) {
		summary, err := PerformanceSummary(nil)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, summary.Overall.AvgAchievement)
		assert.Equal(t, 0, summary.Overall.WorksheetCount)
		assert.Empty(t, summary.ByMachine)
		assert.Empty(t, summary.ByShift)
		assert.NotNil(t, summary.ByMachine)
		assert.NotNil(t, summary.ByShift)
	})
	t.Run("zero-target-achievement-is-zero", func(t *testing.T) {
		summary, err := PerformanceSummary([]models.Worksheet{
			{ID: "ws1", MachineID: "mc-01", Shift: "1", ActualProduction: 400},
		})
		assert.NoError(t, err)
		assert.Equal(t, 0.0, summary.Overall.AvgAchievement)
		assert.Equal(t, 0.0, summary.ByMachine[0].Achievement)
	})
	t.Run("downtime-order-does-not-change-sums", func(t *testing.T) {
		worksheets := perfFixture()
		shuffled := perfFixture()
		shuffled[0].Downtimes = []models.DowntimeEntry{{StartTime: "10:30", EndTime: "11:00"}, {StartTime: "10:00", EndTime: "10:30"}}

		base, err := PerformanceSummary(worksheets)
		assert.NoError(t, err)
		alt, err := PerformanceSummary(shuffled)
		assert.NoError(t, err)
		assert.Equal(t, base.Overall, alt.Overall)
		assert.Equal(t, base.ByMachine, alt.ByMachine)
	})
	t.Run("does-not-mutate-input", func(t *testing.T) {
		worksheets := perfFixture()
		_, err := PerformanceSummary(worksheets)
		assert.NoError(t, err)
		assert.Equal(t, perfFixture(), worksheets)
	})
}
