package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/tasky/internal/config"
	"github.com/MKhiriev/tasky/internal/logger"
	"github.com/MKhiriev/tasky/internal/store"
)

// purgeTimeout bounds a single purge pass against the database.
const purgeTimeout = time.Minute

// TrashPurger periodically hard-deletes tasks that have sat in the trash
// longer than the configured retention. Soft-deleted tasks stay restorable
// through the API until the purger removes them.
type TrashPurger struct {
	tasks     store.TaskRepository
	interval  time.Duration
	retention time.Duration
	logger    *logger.Logger
}

func NewTrashPurger(tasks store.TaskRepository, cfg config.Workers, logger *logger.Logger) *TrashPurger {
	return &TrashPurger{
		tasks:     tasks,
		interval:  cfg.PurgeInterval,
		retention: cfg.TrashRetention,
		logger:    logger,
	}
}

// Run starts the purge loop in a background goroutine. A non-positive
// interval or retention disables the worker, so trashed tasks are kept
// indefinitely. Running with zero retention would make the cutoff "now"
// and purge every trashed task on the first tick.
func (p *TrashPurger) Run() {
	if p.interval <= 0 || p.retention <= 0 {
		p.logger.Info().Msg("trash purger is disabled")
		return
	}

	p.logger.Info().
		Dur("interval", p.interval).
		Dur("retention", p.retention).
		Msg("starting trash purger")

	go p.loop()
}

func (p *TrashPurger) loop() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for range ticker.C {
		p.purge()
	}
}

func (p *TrashPurger) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	cutoff := time.Now().Add(-p.retention)

	purged, err := p.tasks.PurgeDeletedBefore(ctx, cutoff)
	if err != nil {
		p.logger.Error().Err(err).Msg("trash purge pass failed")
		return
	}

	if purged > 0 {
		p.logger.Info().Int64("purged", purged).Time("cutoff", cutoff).Msg("purged trashed tasks")
	}
}
