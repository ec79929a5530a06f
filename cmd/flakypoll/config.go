package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/ydb-platform/ydb-go-backoff/log"
	"github.com/ydb-platform/ydb-go-backoff/retry"
)

var errWrongArgs = errors.New("wrong args")

type logFormat string

const (
	textFormat = logFormat("text")
	zapFormat  = logFormat("zap")
)

type Config struct {
	Pollers  int
	Values   int
	FailRate float64

	MinDelay     time.Duration
	MaxDelay     time.Duration
	Factor       float64
	MaxAttempts  int
	Jitter       float64
	NonTransient bool
	Seed         int64

	RetriesPerSecond int

	Period  time.Duration
	Timeout time.Duration

	LogLevel  log.Level
	LogFormat logFormat
}

func newConfig(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("flakypoll", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.IntVar(&cfg.Pollers, "pollers", 4, "amount of concurrent pollers")
	fs.IntVar(&cfg.Values, "values", 10, "amount of values each poller must receive")
	fs.Float64Var(&cfg.FailRate, "fail-rate", 0.3, "probability of a poll failure")

	fs.DurationVar(&cfg.MinDelay, "min-delay", 100*time.Millisecond, "delay before the first retry")
	fs.DurationVar(&cfg.MaxDelay, "max-delay", 2*time.Second, "upper bound of retry delay")
	fs.Float64Var(&cfg.Factor, "factor", 2, "backoff factor")
	fs.IntVar(&cfg.MaxAttempts, "max-attempts", 5, "attempts after which poller gives up (0 means unbounded)")
	fs.Float64Var(&cfg.Jitter, "jitter", 0.1, "jitter factor in [0, 1)")
	fs.BoolVar(&cfg.NonTransient, "non-transient", false, "do not reset attempts counter on received value")
	fs.Int64Var(&cfg.Seed, "seed", time.Now().UnixNano(), "seed of simulated failures and jitter")
	fs.IntVar(&cfg.RetriesPerSecond, "retries-per-second", 0, "retries budget shared by all pollers (0 means unlimited)")

	fs.DurationVar(&cfg.Period, "period", 50*time.Millisecond, "minimal period between values of a poller")
	fs.DurationVar(&cfg.Timeout, "timeout", time.Minute, "run time limit")

	fs.TextVar(&cfg.LogLevel, "log-level", log.INFO, "minimal log level")
	fs.StringVar((*string)(&cfg.LogFormat), "log-format", string(textFormat), "log format: text or zap")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch {
	case cfg.Pollers <= 0:
		return nil, fmt.Errorf("%w: pollers must be positive", errWrongArgs)
	case cfg.Values <= 0:
		return nil, fmt.Errorf("%w: values must be positive", errWrongArgs)
	case cfg.FailRate < 0 || cfg.FailRate >= 1:
		return nil, fmt.Errorf("%w: fail-rate must be in [0, 1)", errWrongArgs)
	case cfg.LogFormat != textFormat && cfg.LogFormat != zapFormat:
		return nil, fmt.Errorf("%w: unknown log format %q", errWrongArgs, cfg.LogFormat)
	}

	return cfg, nil
}

// retryOptions returns options of the i-th poller, each poller jitters with own seed
func (cfg *Config) retryOptions(i int) []retry.Option {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = retry.Unbounded
	}

	return []retry.Option{
		retry.WithMaxDelay(cfg.MaxDelay),
		retry.WithBackoffFactor(cfg.Factor),
		retry.WithMaxAttempts(maxAttempts),
		retry.WithJitterFactor(cfg.Jitter),
		retry.WithTransient(!cfg.NonTransient),
		retry.WithSeed(cfg.Seed + int64(i)),
	}
}
