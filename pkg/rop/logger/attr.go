package logger

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/ib-77/ropcmd/pkg/rop"
)

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// Uses index-based keys to preserve error order. Returns empty Attr for all nil errors.
func Errors(errs ...error) slog.Attr {
	count := 0
	for _, err := range errs {
		if !rop.IsNil(err) {
			count++
		}
	}
	if count == 0 {
		return slog.Attr{}
	}

	as := make([]slog.Attr, 0, count)
	for i, err := range errs {
		if !rop.IsNil(err) {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if rop.IsNil(err) {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ErrorType records the structured type tag of err, when it has one.
func ErrorType(err error) slog.Attr {
	e, ok := err.(rop.Error)
	if !ok || rop.IsNil(err) {
		return slog.Attr{}
	}
	return slog.String("error_type", e.Type())
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

func Command(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("command", name)
}

func Status(s rop.Status) slog.Attr {
	if s == "" {
		return slog.Attr{}
	}
	return slog.String("status", string(s))
}

// Result summarizes a result under the key "result".
func Result(r rop.Resulter) slog.Attr {
	if r == nil {
		return slog.Attr{}
	}
	res := r.AsResult()
	if res.IsEmpty() {
		return slog.Attr{}
	}
	return Group("result",
		slog.String("id", res.ID().String()),
		Status(res.Status()),
		Error(res.Err()),
		ErrorType(res.Err()),
	)
}

func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
