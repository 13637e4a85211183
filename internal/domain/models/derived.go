package models

// SourceWorksheet tags derived records so consumers can tell them apart from
// manually entered ones sharing the same logical category.
const SourceWorksheet = "worksheet"

// ProductionRecord is the production-log shape derived from one worksheet.
type ProductionRecord struct {
	ID          string  `json:"id"`
	WONumber    string  `json:"woNumber"`
	Date        string  `json:"date"`
	MachineID   string  `json:"machineId"`
	MachineName string  `json:"machineName"`
	InputQty    float64 `json:"inputQty"`
	OutputQty   float64 `json:"outputQty"`
	YieldRate   float64 `json:"yieldRate"`
	Operator    string  `json:"operator"`
	Shift       string  `json:"shift"`
	Status      string  `json:"status"`
	Source      string  `json:"source"`
}

// DowntimeRecord is one flattened downtime interval with its computed duration.
type DowntimeRecord struct {
	ID              string  `json:"id"`
	WorksheetID     string  `json:"worksheetId"`
	WorksheetNumber string  `json:"worksheetNumber"`
	Date            string  `json:"date"`
	MachineID       string  `json:"machineId"`
	MachineName     string  `json:"machineName"`
	Shift           string  `json:"shift"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationHours   float64 `json:"durationHours"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	ReportedBy      string  `json:"reportedBy"`
	Source          string  `json:"source"`
}

// OverallPerformance is the all-worksheets rollup inside a PerformanceSummary.
type OverallPerformance struct {
	TotalTarget        float64 `json:"totalTarget"`
	TotalActual        float64 `json:"totalActual"`
	TotalDowntimeHours float64 `json:"totalDowntimeHours"`
	AvgAchievement     float64 `json:"avgAchievement"`
	WorksheetCount     int     `json:"worksheetCount"`
}

// MachinePerformance is the per-machine rollup inside a PerformanceSummary.
type MachinePerformance struct {
	MachineID          string  `json:"machineId"`
	MachineName        string  `json:"machineName"`
	TotalTarget        float64 `json:"totalTarget"`
	TotalActual        float64 `json:"totalActual"`
	TotalDowntimeHours float64 `json:"totalDowntimeHours"`
	WorksheetCount     int     `json:"worksheetCount"`
	Achievement        float64 `json:"achievement"`
}

// ShiftPerformance is the per-shift rollup inside a PerformanceSummary.
type ShiftPerformance struct {
	Shift              string  `json:"shift"`
	TotalTarget        float64 `json:"totalTarget"`
	TotalActual        float64 `json:"totalActual"`
	TotalDowntimeHours float64 `json:"totalDowntimeHours"`
	WorksheetCount     int     `json:"worksheetCount"`
	Achievement        float64 `json:"achievement"`
}

// PerformanceSummary aggregates target/actual/downtime overall, by machine and
// by shift. ByMachine and ByShift preserve first-occurrence order of their
// grouping key in the input.
type PerformanceSummary struct {
	Overall   OverallPerformance   `json:"overall"`
	ByMachine []MachinePerformance `json:"byMachine"`
	ByShift   []ShiftPerformance   `json:"byShift"`
}

// OEERecord carries the per-worksheet OEE breakdown.
type OEERecord struct {
	ID                 string  `json:"id"`
	WorksheetNumber    string  `json:"worksheetNumber"`
	Date               string  `json:"date"`
	MachineID          string  `json:"machineId"`
	MachineName        string  `json:"machineName"`
	Shift              string  `json:"shift"`
	PlannedTimeHours   float64 `json:"plannedTimeHours"`
	OperatingTimeHours float64 `json:"operatingTimeHours"`
	DowntimeHours      float64 `json:"downtimeHours"`
	AvailabilityPct    float64 `json:"availabilityPct"`
	PerformancePct     float64 `json:"performancePct"`
	QualityPct         float64 `json:"qualityPct"`
	OEEPct             float64 `json:"oeePct"`
}

// UtilizationRecord is the per-machine planned/operating/downtime rollup.
type UtilizationRecord struct {
	MachineID           string  `json:"machineId"`
	MachineName         string  `json:"machineName"`
	TotalPlannedHours   float64 `json:"totalPlannedHours"`
	TotalOperatingHours float64 `json:"totalOperatingHours"`
	TotalDowntimeHours  float64 `json:"totalDowntimeHours"`
	WorksheetCount      int     `json:"worksheetCount"`
	UtilizationRatePct  float64 `json:"utilizationRatePct"`
}

// DailyDigest is the snapshot the scheduler exports every night, one per
// factory.
type DailyDigest struct {
	FactoryID   string              `json:"factoryId"`
	Date        string              `json:"date"`
	Performance PerformanceSummary  `json:"performance"`
	Utilization []UtilizationRecord `json:"utilization"`
}
