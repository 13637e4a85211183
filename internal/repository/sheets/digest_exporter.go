package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/hardwin/shopfloor/internal/config"
	"github.com/hardwin/shopfloor/internal/domain/models"
)

// Exporter appends daily KPI digest rows to the plant report spreadsheet.
type Exporter interface {
	AppendDigest(ctx context.Context, digest models.DailyDigest) error
}

// GoogleSheetExporter implements Exporter using the official Google Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	digestRange   string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		digestRange:   cfg.DigestRange,
		logger:        logger,
	}, nil
}

// AppendDigest appends one row per digest: factory, date, the overall rollup
// and the worst utilized machine of the day.
func (e *GoogleSheetExporter) AppendDigest(ctx context.Context, digest models.DailyDigest) error {
	if e.digestRange == "" {
		return fmt.Errorf("digest range must not be empty")
	}

	worstMachine := ""
	worstRate := 0.0
	for i, u := range digest.Utilization {
		if i == 0 || u.UtilizationRatePct < worstRate {
			worstMachine = u.MachineID
			worstRate = u.UtilizationRatePct
		}
	}

	overall := digest.Performance.Overall
	row := []interface{}{
		digest.FactoryID,
		digest.Date,
		overall.WorksheetCount,
		overall.TotalTarget,
		overall.TotalActual,
		overall.AvgAchievement,
		overall.TotalDowntimeHours,
		len(digest.Utilization),
		worstMachine,
		worstRate,
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, e.digestRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append digest row into range %s: %w", e.digestRange, err)
	}

	e.logger.Debug("digest row appended to sheet",
		zap.String("factory_id", digest.FactoryID),
		zap.String("date", digest.Date))
	return nil
}
