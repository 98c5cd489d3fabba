package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler owns a single cron instance so callers can replace and
// stop jobs without process-global state.
type Scheduler struct {
	cron    *cron.Cron
	log     zerolog.Logger
	entries map[string]cron.EntryID
}

func New(loc *time.Location, log zerolog.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		log:     log,
		entries: map[string]cron.EntryID{},
	}
}

// RegisterWeekly (re)binds a named job to run at hh:mm on the given
// weekday. Registering the same name again replaces the old schedule.
func (s *Scheduler) RegisterWeekly(name string, day time.Weekday, hour, minute int, job func(context.Context)) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("scheduler: bad time %02d:%02d", hour, minute)
	}
	if old, ok := s.entries[name]; ok {
		s.cron.Remove(old)
	}

	spec := fmt.Sprintf("%d %d * * %d", minute, hour, int(day))
	id, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
		defer cancel()
		s.log.Info().Str("job", name).Msg("scheduled job starting")
		job(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduler: add %s: %w", name, err)
	}
	s.entries[name] = id
	s.log.Info().Str("job", name).Str("spec", spec).Msg("job registered")
	return nil
}

func (s *Scheduler) Start() { s.cron.Start() }

// Stop halts scheduling and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
