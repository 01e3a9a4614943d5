package batch

import (
	"context"
	"log/slog"
)

type OptionKey string

const WorkerOptionKey OptionKey = "worker_options"

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

const LoggerOptionKey OptionKey = "logger"

// WithLogger sets the logger batch calls report to. slog.Default is used otherwise.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, l)
}

func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(LoggerOptionKey).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}
