package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hardwin/shopfloor/internal/config"
	"github.com/hardwin/shopfloor/internal/domain/models"
	"github.com/hardwin/shopfloor/internal/repository/mongodb"
	"github.com/hardwin/shopfloor/internal/service/dashboard"
)

type fakeStore struct {
	factoryIDs []string
	worksheets []models.Worksheet
}

func (f *fakeStore) ListWorksheets(context.Context, mongodb.ListFilter) ([]models.Worksheet, error) {
	return f.worksheets, nil
}

func (f *fakeStore) GetWorksheet(context.Context, string) (models.Worksheet, error) {
	return models.Worksheet{}, mongodb.ErrNotFound
}
func (f *fakeStore) CreateWorksheet(context.Context, models.Worksheet) error { return nil }
func (f *fakeStore) UpdateWorksheet(context.Context, models.Worksheet) error { return nil }
func (f *fakeStore) DeleteWorksheet(context.Context, string) error           { return nil }
func (f *fakeStore) ListFactoryIDs(context.Context) ([]string, error)        { return f.factoryIDs, nil }

type fakeExporter struct {
	digests []models.DailyDigest
}

func (f *fakeExporter) AppendDigest(_ context.Context, digest models.DailyDigest) error {
	f.digests = append(f.digests, digest)
	return nil
}

type fakeNotifier struct {
	digests []models.DailyDigest
}

func (f *fakeNotifier) SendDigest(_ context.Context, digest models.DailyDigest) error {
	f.digests = append(f.digests, digest)
	return nil
}

func TestRunDailyDigest(t *testing.T) {
	cfg := config.Config{Digest: config.DigestConfig{CronSchedule: "30 0 * * *"}}

	t.Run("exports-and-notifies-per-factory", func(t *testing.T) {
		store := &fakeStore{
			factoryIDs: []string{"fct-1", "fct-2"},
			worksheets: []models.Worksheet{
				{
					ID: "ws1", MachineID: "mc-01", Shift: "1",
					WorkStartTime: "06:00", WorkEndTime: "14:00",
					TargetProduction: 1000, ActualProduction: 900,
				},
			},
		}
		exporter := &fakeExporter{}
		notifier := &fakeNotifier{}
		svc := dashboard.NewService(store, nil)

		sched := NewScheduler(cfg, svc, store, exporter, notifier, nil)
		sched.runDailyDigest()

		assert.Len(t, exporter.digests, 2)
		assert.Len(t, notifier.digests, 2)
		assert.Equal(t, "fct-1", exporter.digests[0].FactoryID)
		assert.Equal(t, "fct-2", exporter.digests[1].FactoryID)
		assert.Equal(t, 90.0, exporter.digests[0].Performance.Overall.AvgAchievement)
	})
	t.Run("skips-factories-without-worksheets", func(t *testing.T) {
		store := &fakeStore{factoryIDs: []string{"fct-1"}}
		exporter := &fakeExporter{}
		notifier := &fakeNotifier{}
		svc := dashboard.NewService(store, nil)

		sched := NewScheduler(cfg, svc, store, exporter, notifier, nil)
		sched.runDailyDigest()

		assert.Empty(t, exporter.digests)
		assert.Empty(t, notifier.digests)
	})
	t.Run("nil-sinks-are-tolerated", func(t *testing.T) {
		store := &fakeStore{
			factoryIDs: []string{"fct-1"},
			worksheets: []models.Worksheet{
				{ID: "ws1", MachineID: "mc-01", WorkStartTime: "06:00", WorkEndTime: "14:00"},
			},
		}
		svc := dashboard.NewService(store, nil)

		sched := NewScheduler(cfg, svc, store, nil, nil, nil)
		assert.NotPanics(t, sched.runDailyDigest)
	})
}
