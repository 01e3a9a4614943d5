package command

import (
	"context"
	"log/slog"
	"sync"
)

// WarningFunc receives diagnostic warnings emitted while resolving outcomes.
type WarningFunc func(ctx context.Context, message string)

var (
	warningMu   sync.RWMutex
	warningHook WarningFunc
)

// SetWarningHook replaces how warnings are emitted process wide. A nil hook
// restores the default slog warning. The returned func restores the previous hook.
func SetWarningHook(fn WarningFunc) (restore func()) {
	warningMu.Lock()
	prev := warningHook
	warningHook = fn
	warningMu.Unlock()

	return func() {
		warningMu.Lock()
		warningHook = prev
		warningMu.Unlock()
	}
}

// SilenceWarnings drops every warning.
func SilenceWarnings() (restore func()) {
	return SetWarningHook(func(context.Context, string) {})
}

// Warn emits a warning through the current hook.
func Warn(ctx context.Context, message string) {
	warningMu.RLock()
	hook := warningHook
	warningMu.RUnlock()

	if hook != nil {
		hook(ctx, message)
		return
	}
	slog.Default().WarnContext(ctx, message)
}
