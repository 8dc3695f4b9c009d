package interview

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Ticker is anything driven once per second.
type Ticker interface {
	Tick(ctx context.Context) error
}

// Scheduler drives the interview countdown once per second. A tick that is
// still running (for example waiting on the summary call) makes the next one
// skip rather than queue.
type Scheduler struct {
	cron   *cron.Cron
	target Ticker
	log    *slog.Logger
	ctx    context.Context
}

func NewScheduler(ctx context.Context, target Ticker, log *slog.Logger) (*Scheduler, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Scheduler{
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		target: target,
		log:    log.With("component", "scheduler"),
		ctx:    ctx,
	}
	if _, err := s.cron.AddFunc("@every 1s", s.run); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) run() {
	if err := s.target.Tick(s.ctx); err != nil {
		s.log.Error("interview tick failed", "error", err)
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("interview timer started")
}

// Stop waits for a running tick to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
