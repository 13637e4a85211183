package models

import "time"

// DowntimeEntry is a contiguous non-producing interval inside a shift.
// Times are HH:MM on the parent worksheet's production date.
type DowntimeEntry struct {
	StartTime   string `bson:"start_time" json:"startTime"`
	EndTime     string `bson:"end_time" json:"endTime"`
	Category    string `bson:"category" json:"category"`
	Description string `bson:"description" json:"description"`
}

// Worksheet is a single shift's production log, the unit of input to the
// metrics engine. It is created and edited by the ERP front-end; the engine
// only ever reads it.
type Worksheet struct {
	ID               string          `bson:"_id" json:"id"`
	WorksheetNumber  string          `bson:"worksheet_number" json:"worksheetNumber"`
	FactoryID        string          `bson:"factory_id" json:"factoryId"`
	ProductionDate   string          `bson:"production_date" json:"productionDate"` // YYYY-MM-DD
	Shift            string          `bson:"shift" json:"shift"`
	ShiftLead        string          `bson:"shift_lead" json:"shiftLead"`
	WorkStartTime    string          `bson:"work_start_time" json:"workStartTime"` // HH:MM, 24h
	BreakTime        string          `bson:"break_time" json:"breakTime"`
	WorkEndTime      string          `bson:"work_end_time" json:"workEndTime"`
	MachineID        string          `bson:"machine_id" json:"machineId"`
	MachineName      string          `bson:"machine_name" json:"machineName"`
	TargetProduction float64         `bson:"target_production" json:"targetProduction"`
	ActualProduction float64         `bson:"actual_production" json:"actualProduction"`
	Downtimes        []DowntimeEntry `bson:"downtimes" json:"downtimes"`
	Status           string          `bson:"status" json:"status"`
	CreatedAt        time.Time       `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time       `bson:"updated_at" json:"updatedAt"`
}
