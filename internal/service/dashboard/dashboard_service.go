package dashboard

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hardwin/shopfloor/internal/domain/models"
	"github.com/hardwin/shopfloor/internal/metrics"
	"github.com/hardwin/shopfloor/internal/repository/mongodb"
)

// Service serves derived metrics to dashboard consumers. It loads the
// worksheet collection for the requested scope and runs the pure metrics
// engine over it; nothing derived is ever persisted.
type Service struct {
	repo   mongodb.Repository
	logger *zap.Logger
}

// NewService wires a new dashboard service instance.
func NewService(repository mongodb.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, logger: logger}
}

// ProductionRecords returns the worksheet-derived production log.
func (s *Service) ProductionRecords(ctx context.Context, filter mongodb.ListFilter) ([]models.ProductionRecord, error) {
	worksheets, err := s.repo.ListWorksheets(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("load worksheets: %w", err)
	}
	return metrics.ProductionRecords(worksheets), nil
}

// DowntimeLog returns the flattened downtime log with computed durations.
func (s *Service) DowntimeLog(ctx context.Context, filter mongodb.ListFilter) ([]models.DowntimeRecord, error) {
	worksheets, err := s.repo.ListWorksheets(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("load worksheets: %w", err)
	}
	return metrics.DowntimeLog(worksheets)
}

// PerformanceSummary returns the overall / by-machine / by-shift rollup.
func (s *Service) PerformanceSummary(ctx context.Context, filter mongodb.ListFilter) (models.PerformanceSummary, error) {
	worksheets, err := s.repo.ListWorksheets(ctx, filter)
	if err != nil {
		return models.PerformanceSummary{}, fmt.Errorf("load worksheets: %w", err)
	}
	return metrics.PerformanceSummary(worksheets)
}

// OEERecords returns the per-worksheet OEE breakdown.
func (s *Service) OEERecords(ctx context.Context, filter mongodb.ListFilter) ([]models.OEERecord, error) {
	worksheets, err := s.repo.ListWorksheets(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("load worksheets: %w", err)
	}
	return metrics.OEERecords(worksheets)
}

// MachineUtilization returns the per-machine utilization rollup.
func (s *Service) MachineUtilization(ctx context.Context, filter mongodb.ListFilter) ([]models.UtilizationRecord, error) {
	worksheets, err := s.repo.ListWorksheets(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("load worksheets: %w", err)
	}
	return metrics.MachineUtilization(worksheets)
}

// DailyDigest builds the KPI snapshot for one factory and one production date.
func (s *Service) DailyDigest(ctx context.Context, factoryID, date string) (models.DailyDigest, error) {
	filter := mongodb.ListFilter{FactoryID: factoryID, FromDate: date, ToDate: date}
	worksheets, err := s.repo.ListWorksheets(ctx, filter)
	if err != nil {
		return models.DailyDigest{}, fmt.Errorf("load worksheets: %w", err)
	}

	performance, err := metrics.PerformanceSummary(worksheets)
	if err != nil {
		return models.DailyDigest{}, err
	}
	utilization, err := metrics.MachineUtilization(worksheets)
	if err != nil {
		return models.DailyDigest{}, err
	}

	s.logger.Debug("daily digest computed",
		zap.String("factory_id", factoryID),
		zap.String("date", date),
		zap.Int("worksheets", performance.Overall.WorksheetCount))

	return models.DailyDigest{
		FactoryID:   factoryID,
		Date:        date,
		Performance: performance,
		Utilization: utilization,
	}, nil
}
