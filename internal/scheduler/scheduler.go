package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/hardwin/shopfloor/internal/config"
	"github.com/hardwin/shopfloor/internal/repository/mongodb"
	"github.com/hardwin/shopfloor/internal/repository/sheets"
	"github.com/hardwin/shopfloor/internal/service/dashboard"
	"github.com/hardwin/shopfloor/pkg/clients/notify"
)

// Scheduler runs the nightly KPI digest job: yesterday's performance and
// utilization per factory, exported to the report sheet and pushed to the
// notify webhook. Exporter and notifier are optional; a nil value disables
// that sink.
type Scheduler struct {
	cron         *cron.Cron
	dashboardSvc *dashboard.Service
	repo         mongodb.Repository
	exporter     sheets.Exporter
	notifier     notify.Client
	cfg          config.Config
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, dashboardSvc *dashboard.Service, repo mongodb.Repository, exporter sheets.Exporter, notifier notify.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour,
	// dom, month, dow).
	c := cron.New()

	return &Scheduler{
		cron:         c,
		dashboardSvc: dashboardSvc,
		repo:         repo,
		exporter:     exporter,
		notifier:     notifier,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start registers the digest job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Digest.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.Digest.CronSchedule, s.runDailyDigest)
	if err != nil {
		s.logger.Error("failed to schedule daily digest", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDailyDigest() {
	s.logger.Info("generating daily digest")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// The job runs shortly after midnight, so it covers the previous day.
	date := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	factoryIDs, err := s.repo.ListFactoryIDs(ctx)
	if err != nil {
		s.logger.Error("failed to list factories for digest", zap.Error(err))
		return
	}

	for _, factoryID := range factoryIDs {
		digest, err := s.dashboardSvc.DailyDigest(ctx, factoryID, date)
		if err != nil {
			s.logger.Error("failed to build daily digest",
				zap.String("factory_id", factoryID), zap.Error(err))
			continue
		}

		if digest.Performance.Overall.WorksheetCount == 0 {
			s.logger.Info("no worksheets for digest, skipping",
				zap.String("factory_id", factoryID), zap.String("date", date))
			continue
		}

		if s.exporter != nil {
			if err := s.exporter.AppendDigest(ctx, digest); err != nil {
				s.logger.Error("failed to export digest to sheet",
					zap.String("factory_id", factoryID), zap.Error(err))
			}
		}

		if s.notifier != nil {
			if err := s.notifier.SendDigest(ctx, digest); err != nil {
				s.logger.Error("failed to send digest notification",
					zap.String("factory_id", factoryID), zap.Error(err))
			}
		}

		s.logger.Info("daily digest processed",
			zap.String("factory_id", factoryID),
			zap.String("date", date),
			zap.Int("worksheets", digest.Performance.Overall.WorksheetCount))
	}
}
