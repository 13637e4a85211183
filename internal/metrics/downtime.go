package metrics

import (
	"fmt"

	"github.com/hardwin/shopfloor/internal/domain/models"
)

// DowntimeLog flattens every worksheet's embedded downtime entries into one
// global log, preserving worksheet order and within-worksheet entry order.
// Record ids encode the worksheet id and the entry index so they stay unique
// across worksheets.
func DowntimeLog(worksheets []models.Worksheet) ([]models.DowntimeRecord, error) {
	records := []models.DowntimeRecord{}
	for _, ws := range worksheets {
		for i, dt := range ws.Downtimes {
			duration, err := DurationHours(dt.StartTime, dt.EndTime)
			if err != nil {
				return nil, fmt.Errorf("worksheet %s downtime %d: %w", ws.ID, i, err)
			}

			records = append(records, models.DowntimeRecord{
				ID:              fmt.Sprintf("dt_ws_%s_%d", ws.ID, i),
				WorksheetID:     ws.ID,
				WorksheetNumber: ws.WorksheetNumber,
				Date:            ws.ProductionDate,
				MachineID:       ws.MachineID,
				MachineName:     ws.MachineName,
				Shift:           ws.Shift,
				StartTime:       dt.StartTime,
				EndTime:         dt.EndTime,
				DurationHours:   round2(duration),
				Category:        dt.Category,
				Description:     dt.Description,
				ReportedBy:      ws.ShiftLead,
				Source:          models.SourceWorksheet,
			})
		}
	}
	return records, nil
}

// worksheetDowntimeHours sums the raw (unrounded) downtime of one worksheet.
func worksheetDowntimeHours(ws models.Worksheet) (float64, error) {
	var total float64
	for i, dt := range ws.Downtimes {
		duration, err := DurationHours(dt.StartTime, dt.EndTime)
		if err != nil {
			return 0, fmt.Errorf("worksheet %s downtime %d: %w", ws.ID, i, err)
		}
		total += duration
	}
	return total, nil
}
