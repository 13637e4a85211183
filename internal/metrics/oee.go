package metrics

import (
	"fmt"

	"github.com/hardwin/shopfloor/internal/domain/models"
)

// breakDeductionHours is the fixed break deduction applied to every shift
// window. The worksheet's breakTime field records when the break is taken,
// not how long it lasts.
const breakDeductionHours = 1.0

// OEERecords computes the OEE breakdown for every worksheet, one-to-one and
// order-preserving. Operating time is planned time minus downtime and is not
// clamped: a shift whose downtime exceeds its window reports negative hours
// and a negative availability, which is what the dashboard should surface.
// With no quality defect tracking, quality is fixed at 100%.
func OEERecords(worksheets []models.Worksheet) ([]models.OEERecord, error) {
	records := make([]models.OEERecord, 0, len(worksheets))
	for _, ws := range worksheets {
		rec, err := oeeForWorksheet(ws)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func oeeForWorksheet(ws models.Worksheet) (models.OEERecord, error) {
	window, err := DurationHours(ws.WorkStartTime, ws.WorkEndTime)
	if err != nil {
		return models.OEERecord{}, fmt.Errorf("worksheet %s shift window: %w", ws.ID, err)
	}
	planned := window - breakDeductionHours

	downtime, err := worksheetDowntimeHours(ws)
	if err != nil {
		return models.OEERecord{}, err
	}
	operating := planned - downtime

	availability := 0.0
	if planned > 0 {
		availability = operating / planned * 100
	}
	performance := 0.0
	if ws.TargetProduction > 0 {
		performance = ws.ActualProduction / ws.TargetProduction * 100
	}
	quality := 100.0

	return models.OEERecord{
		ID:                 ws.ID,
		WorksheetNumber:    ws.WorksheetNumber,
		Date:               ws.ProductionDate,
		MachineID:          ws.MachineID,
		MachineName:        ws.MachineName,
		Shift:              ws.Shift,
		PlannedTimeHours:   round2(planned),
		OperatingTimeHours: round2(operating),
		DowntimeHours:      round2(downtime),
		AvailabilityPct:    round1(availability),
		PerformancePct:     round1(performance),
		QualityPct:         quality,
		OEEPct:             round1(availability * performance * quality / 10000),
	}, nil
}
