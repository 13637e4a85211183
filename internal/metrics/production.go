package metrics

import (
	"fmt"

	"github.com/hardwin/shopfloor/internal/domain/models"
)

// ProductionRecords maps every worksheet to a production record, one-to-one
// and order-preserving. A zero target yields a 0% yield rate rather than an
// error; in-progress shifts routinely have no target yet.
func ProductionRecords(worksheets []models.Worksheet) []models.ProductionRecord {
	records := make([]models.ProductionRecord, 0, len(worksheets))
	for _, ws := range worksheets {
		yield := 0.0
		if ws.TargetProduction > 0 {
			yield = round1(ws.ActualProduction / ws.TargetProduction * 100)
		}

		records = append(records, models.ProductionRecord{
			ID:          fmt.Sprintf("prod_ws_%s", ws.ID),
			WONumber:    ws.WorksheetNumber,
			Date:        ws.ProductionDate,
			MachineID:   ws.MachineID,
			MachineName: ws.MachineName,
			InputQty:    ws.TargetProduction,
			OutputQty:   ws.ActualProduction,
			YieldRate:   yield,
			Operator:    ws.ShiftLead,
			Shift:       ws.Shift,
			Status:      ws.Status,
			Source:      models.SourceWorksheet,
		})
	}
	return records
}
