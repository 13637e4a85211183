package worksheets

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/hardwin/shopfloor/internal/domain/models"
	"github.com/hardwin/shopfloor/internal/metrics"
	"github.com/hardwin/shopfloor/internal/repository/mongodb"
)

const dateLayout = "2006-01-02"

// Service orchestrates worksheet CRUD on top of the store. Shape validation
// happens here so the metrics engine can assume well-formed time strings.
type Service struct {
	repo   mongodb.Repository
	logger *zap.Logger
}

// NewService wires a new worksheet service instance.
func NewService(repository mongodb.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, logger: logger}
}

// List returns worksheets for a factory, optionally bounded by dates.
func (s *Service) List(ctx context.Context, filter mongodb.ListFilter) ([]models.Worksheet, error) {
	return s.repo.ListWorksheets(ctx, filter)
}

// Get fetches one worksheet by id.
func (s *Service) Get(ctx context.Context, id string) (models.Worksheet, error) {
	return s.repo.GetWorksheet(ctx, id)
}

// Create validates and stores a new worksheet, assigning an id when absent.
func (s *Service) Create(ctx context.Context, ws models.Worksheet) (models.Worksheet, error) {
	if err := validate(ws); err != nil {
		return models.Worksheet{}, err
	}

	if ws.ID == "" {
		ws.ID = primitive.NewObjectID().Hex()
	}
	now := time.Now().UTC()
	ws.CreatedAt = now
	ws.UpdatedAt = now

	if err := s.repo.CreateWorksheet(ctx, ws); err != nil {
		return models.Worksheet{}, err
	}

	s.logger.Info("worksheet created",
		zap.String("id", ws.ID),
		zap.String("factory_id", ws.FactoryID),
		zap.String("machine_id", ws.MachineID))
	return ws, nil
}

// Update validates and replaces an existing worksheet.
func (s *Service) Update(ctx context.Context, ws models.Worksheet) (models.Worksheet, error) {
	if ws.ID == "" {
		return models.Worksheet{}, fmt.Errorf("worksheet id must not be empty")
	}
	if err := validate(ws); err != nil {
		return models.Worksheet{}, err
	}

	current, err := s.repo.GetWorksheet(ctx, ws.ID)
	if err != nil {
		return models.Worksheet{}, err
	}
	ws.CreatedAt = current.CreatedAt
	ws.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateWorksheet(ctx, ws); err != nil {
		return models.Worksheet{}, err
	}

	s.logger.Info("worksheet updated", zap.String("id", ws.ID))
	return ws, nil
}

// Delete removes a worksheet by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteWorksheet(ctx, id); err != nil {
		return err
	}
	s.logger.Info("worksheet deleted", zap.String("id", id))
	return nil
}

func validate(ws models.Worksheet) error {
	switch {
	case ws.FactoryID == "":
		return fmt.Errorf("factoryId must not be empty")
	case ws.MachineID == "":
		return fmt.Errorf("machineId must not be empty")
	case ws.TargetProduction < 0:
		return fmt.Errorf("targetProduction must not be negative")
	case ws.ActualProduction < 0:
		return fmt.Errorf("actualProduction must not be negative")
	}

	if _, err := time.Parse(dateLayout, ws.ProductionDate); err != nil {
		return fmt.Errorf("productionDate must be YYYY-MM-DD: %w", err)
	}

	if _, err := metrics.DurationHours(ws.WorkStartTime, ws.WorkEndTime); err != nil {
		return fmt.Errorf("invalid shift window: %w", err)
	}

	// breakTime records when the break is taken; it is display-only but must
	// still be a clock time when present.
	if ws.BreakTime != "" {
		if _, err := time.Parse("15:04", ws.BreakTime); err != nil {
			return fmt.Errorf("breakTime must be HH:MM: %w", err)
		}
	}

	for i, dt := range ws.Downtimes {
		if _, err := metrics.DurationHours(dt.StartTime, dt.EndTime); err != nil {
			return fmt.Errorf("invalid downtime %d: %w", i, err)
		}
	}

	return nil
}
