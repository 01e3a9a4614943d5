// Package logger provides slog attribute helpers for commands and results and
// a small constructor for the process logger.
//
// Attribute helpers return the empty slog.Attr for zero input, so they can be
// passed unconditionally:
//
//	log.Info("command completed", logger.Command(name), logger.Error(err))
package logger
