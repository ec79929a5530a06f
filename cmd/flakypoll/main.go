package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ydb-platform/ydb-go-backoff/internal/xerrors"
	"github.com/ydb-platform/ydb-go-backoff/internal/xsync"
	"github.com/ydb-platform/ydb-go-backoff/log"
	"github.com/ydb-platform/ydb-go-backoff/pace"
	"github.com/ydb-platform/ydb-go-backoff/retry"
	"github.com/ydb-platform/ydb-go-backoff/retry/budget"
	"github.com/ydb-platform/ydb-go-backoff/trace"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer cancel()

	cfg, err := newConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	l, sync, err := newLogger(cfg)
	if err != nil {
		panic(fmt.Errorf("create logger failed: %w", err))
	}
	defer sync()

	ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if err := run(ctx, cfg, l, clockwork.NewRealClock()); err != nil {
		if xerrors.IsContextError(err) {
			l.Log(log.WithLevel(ctx, log.INFO), "stopped before all readings received", log.Error(err))

			return
		}
		l.Log(log.WithLevel(ctx, log.ERROR), "program failed", log.Error(err))
		sync()
		os.Exit(1) //nolint:gocritic
	}
}

func newLogger(cfg *Config) (_ log.Logger, sync func(), err error) {
	if cfg.LogFormat == textFormat {
		return log.Default(os.Stderr, log.WithMinLevel(cfg.LogLevel), log.WithColoring()), func() {}, nil
	}

	zc := zap.NewProductionConfig()
	if lvl, ok := log.ZapLevel(cfg.LogLevel); ok {
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, nil, err
	}

	return log.Zap(logger), func() { _ = logger.Sync() }, nil
}

// run polls with every poller until each of them receives cfg.Values readings.
// The first poller which gives up cancels the others.
// All pollers share one retries budget.
func run(ctx context.Context, cfg *Config, l log.Logger, clock clockwork.Clock) error {
	var (
		retryTrace = log.Retry(l, trace.RetryEvents)
		paceTrace  = log.Pace(l, trace.PaceEvents)

		mu    xsync.Mutex
		total int

		retries = budget.Limited(cfg.RetriesPerSecond)
	)
	defer retries.Stop()

	g, ctx := errgroup.WithContext(ctx)
	for i := range cfg.Pollers {
		var (
			id = fmt.Sprintf("poller-%d", i)
			p  = newPoller(id, cfg.FailRate, cfg.Seed+int64(i), clock)
		)
		g.Go(func() error {
			ctx := log.WithFields(ctx, log.String("poller", id))
			readings := retry.Backoff(ctx,
				pace.Pace(ctx, p.Poll(ctx), cfg.Period,
					pace.WithClock(clock),
					pace.WithTrace(paceTrace),
				),
				cfg.MinDelay,
				append(cfg.retryOptions(i),
					retry.WithID(id),
					retry.WithBudget(retries),
					retry.WithClock(clock),
					retry.WithTrace(retryTrace),
				)...,
			)

			received := 0
			for r, err := range readings {
				if err != nil {
					return fmt.Errorf("%s gave up after %d readings: %w", id, received, err)
				}
				received++
				l.Log(log.WithLevel(ctx, log.INFO), "reading",
					log.Int("seq", r.Seq),
					log.Int("received", received),
					log.Int("total", xsync.WithLock(&mu, func() int {
						total++

						return total
					})),
				)
				if received == cfg.Values {
					break
				}
			}

			return nil
		})
	}

	return g.Wait()
}
