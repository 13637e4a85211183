package metrics

import (
	"fmt"

	"github.com/hardwin/shopfloor/internal/domain/models"
)

// MachineUtilization rolls planned, operating and downtime hours up per
// machine, in first-occurrence order of machineId. Planned time follows the
// same shift-window-minus-break formula as the OEE breakdown.
func MachineUtilization(worksheets []models.Worksheet) ([]models.UtilizationRecord, error) {
	records := []models.UtilizationRecord{}
	idx := make(map[string]int)

	for _, ws := range worksheets {
		window, err := DurationHours(ws.WorkStartTime, ws.WorkEndTime)
		if err != nil {
			return nil, fmt.Errorf("worksheet %s shift window: %w", ws.ID, err)
		}
		planned := window - breakDeductionHours

		downtime, err := worksheetDowntimeHours(ws)
		if err != nil {
			return nil, err
		}

		i, ok := idx[ws.MachineID]
		if !ok {
			i = len(records)
			idx[ws.MachineID] = i
			records = append(records, models.UtilizationRecord{
				MachineID:   ws.MachineID,
				MachineName: ws.MachineName,
			})
		}
		rec := &records[i]
		rec.TotalPlannedHours += planned
		rec.TotalOperatingHours += planned - downtime
		rec.TotalDowntimeHours += downtime
		rec.WorksheetCount++
	}

	for i := range records {
		rec := &records[i]
		rate := 0.0
		if rec.TotalPlannedHours > 0 {
			rate = round1(rec.TotalOperatingHours / rec.TotalPlannedHours * 100)
		}
		rec.TotalPlannedHours = round2(rec.TotalPlannedHours)
		rec.TotalOperatingHours = round2(rec.TotalOperatingHours)
		rec.TotalDowntimeHours = round2(rec.TotalDowntimeHours)
		rec.UtilizationRatePct = rate
	}

	return records, nil
}
