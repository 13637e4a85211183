package metrics

import (
	"github.com/hardwin/shopfloor/internal/domain/models"
)

// PerformanceSummary rolls up target, actual and downtime across all
// worksheets, then by machine and by shift. Groups appear in first-occurrence
// order of their key in the input slice; iteration never relies on map order.
func PerformanceSummary(worksheets []models.Worksheet) (models.PerformanceSummary, error) {
	summary := models.PerformanceSummary{
		ByMachine: []models.MachinePerformance{},
		ByShift:   []models.ShiftPerformance{},
	}

	machineIdx := make(map[string]int)
	shiftIdx := make(map[string]int)

	var totalDowntime float64

	for _, ws := range worksheets {
		downtime, err := worksheetDowntimeHours(ws)
		if err != nil {
			return models.PerformanceSummary{}, err
		}

		summary.Overall.TotalTarget += ws.TargetProduction
		summary.Overall.TotalActual += ws.ActualProduction
		summary.Overall.WorksheetCount++
		totalDowntime += downtime

		mi, ok := machineIdx[ws.MachineID]
		if !ok {
			mi = len(summary.ByMachine)
			machineIdx[ws.MachineID] = mi
			summary.ByMachine = append(summary.ByMachine, models.MachinePerformance{
				MachineID:   ws.MachineID,
				MachineName: ws.MachineName,
			})
		}
		machine := &summary.ByMachine[mi]
		machine.TotalTarget += ws.TargetProduction
		machine.TotalActual += ws.ActualProduction
		machine.TotalDowntimeHours += downtime
		machine.WorksheetCount++

		si, ok := shiftIdx[ws.Shift]
		if !ok {
			si = len(summary.ByShift)
			shiftIdx[ws.Shift] = si
			summary.ByShift = append(summary.ByShift, models.ShiftPerformance{Shift: ws.Shift})
		}
		shift := &summary.ByShift[si]
		shift.TotalTarget += ws.TargetProduction
		shift.TotalActual += ws.ActualProduction
		shift.TotalDowntimeHours += downtime
		shift.WorksheetCount++
	}

	summary.Overall.TotalDowntimeHours = round2(totalDowntime)
	summary.Overall.AvgAchievement = achievement(summary.Overall.TotalActual, summary.Overall.TotalTarget)

	for i := range summary.ByMachine {
		m := &summary.ByMachine[i]
		m.TotalDowntimeHours = round2(m.TotalDowntimeHours)
		m.Achievement = achievement(m.TotalActual, m.TotalTarget)
	}
	for i := range summary.ByShift {
		s := &summary.ByShift[i]
		s.TotalDowntimeHours = round2(s.TotalDowntimeHours)
		s.Achievement = achievement(s.TotalActual, s.TotalTarget)
	}

	return summary, nil
}

// achievement is zero-guarded: no target means 0%, not an error.
func achievement(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return round1(actual / target * 100)
}
