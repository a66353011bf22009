package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/domainwatch/internal/domain"
	"github.com/hamed0406/domainwatch/internal/probe"
	"github.com/hamed0406/domainwatch/internal/report"
	"github.com/hamed0406/domainwatch/internal/stats"
)

// Runner drives the check-and-aggregate loop: one cycle probes every
// endpoint concurrently, records all outcomes, reports a snapshot, then
// sleeps for whatever remains of the interval.
type Runner struct {
	Logger      *zap.Logger
	Endpoints   []domain.Endpoint
	Checker     probe.Checker
	Stats       *stats.Aggregator
	Reporter    report.Reporter
	Interval    time.Duration
	Timeout     time.Duration
	Concurrency int
}

func NewRunner(
	logger *zap.Logger,
	endpoints []domain.Endpoint,
	checker probe.Checker,
	agg *stats.Aggregator,
	rep report.Reporter,
	interval time.Duration,
	timeout time.Duration,
	concurrency int,
) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	if interval <= 0 {
		interval = 15 * time.Second
	}
	if timeout <= 0 {
		timeout = 500 * time.Millisecond
	}
	return &Runner{
		Logger:      logger,
		Endpoints:   endpoints,
		Checker:     checker,
		Stats:       agg,
		Reporter:    rep,
		Interval:    interval,
		Timeout:     timeout,
		Concurrency: concurrency,
	}
}

// Run loops until ctx is cancelled. A cycle that overruns the interval is
// followed immediately by the next one; the cadence never compounds drift
// by sleeping a full interval on top of a slow cycle.
func (r *Runner) Run(ctx context.Context) {
	for {
		start := time.Now()
		r.runCycle(ctx)
		if ctx.Err() != nil {
			r.Logger.Info("scheduler_stopped")
			return
		}
		elapsed := time.Since(start)
		r.Logger.Info("cycle_done",
			zap.Duration("elapsed", elapsed),
			zap.Int("endpoints", len(r.Endpoints)),
		)

		timer := time.NewTimer(nextDelay(r.Interval, elapsed))
		select {
		case <-ctx.Done():
			timer.Stop()
			r.Logger.Info("scheduler_stopped")
			return
		case <-timer.C:
		}
	}
}

// runCycle fans out one probe per endpoint and waits for all of them before
// reporting: outcomes may land in any order, but the snapshot for a cycle is
// only taken once every probe of that cycle has been recorded.
func (r *Runner) runCycle(ctx context.Context) {
	sem := make(chan struct{}, r.Concurrency)
	var wg sync.WaitGroup

	for _, ep := range r.Endpoints {
		ep := ep
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer func() { <-sem }()
			defer wg.Done()

			cctx, cancel := context.WithTimeout(ctx, r.Timeout)
			defer cancel()

			out := r.Checker.Check(cctx, ep)
			r.Stats.Record(out)

			if !out.Success {
				r.Logger.Warn("probe_failed",
					zap.String("endpoint", ep.Name),
					zap.String("url", ep.URL),
					zap.String("domain", out.Domain),
					zap.Int("status", out.HTTPStatus),
					zap.Float64("latency_ms", out.LatencyMS),
					zap.String("reason", out.Reason),
				)
			} else {
				r.Logger.Debug("probe_ok",
					zap.String("endpoint", ep.Name),
					zap.String("domain", out.Domain),
					zap.Int("status", out.HTTPStatus),
					zap.Float64("latency_ms", out.LatencyMS),
				)
			}
		}()
	}
	wg.Wait()

	// No partial-cycle reporting: skip the report if we were interrupted.
	if ctx.Err() != nil {
		return
	}
	r.Reporter.Report(r.Stats.Snapshot())
}

// nextDelay is how long to sleep after a cycle that took elapsed.
// Never negative; an overrun cycle gets a zero delay.
func nextDelay(interval, elapsed time.Duration) time.Duration {
	if elapsed >= interval {
		return 0
	}
	return interval - elapsed
}
