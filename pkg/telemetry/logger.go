// Package telemetry provides the opt-in, non-secret-bearing structured
// logging used by the engine layer. The arithmetic core (pkg/curves,
// pkg/modprime) never imports this package: it never logs.
package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger. A nil *Logger is a valid
// no-op logger, so callers that don't care about observability can pass one
// around without a guard at every call site.
type Logger struct {
	z zerolog.Logger
}

// New builds a Logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) *Logger {
	return &Logger{z: zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// Default returns a Logger writing to stderr at zerolog.Disabled — silent
// until the caller lowers the level with WithLevel, matching spec's
// "logging is off unless configured" default.
func Default() *Logger {
	return New(os.Stderr, zerolog.Disabled)
}

// WithLevel returns a copy of l at the given level. Safe to call on a nil
// receiver; returns a Default logger at that level.
func (l *Logger) WithLevel(level zerolog.Level) *Logger {
	if l == nil {
		return New(os.Stderr, level)
	}
	cp := l.z.Level(level)
	return &Logger{z: cp}
}

// EngineConstructed logs the non-secret shape of a freshly built engine.
func (l *Logger) EngineConstructed(scheme string, threshold, limit uint32) {
	if l == nil {
		return
	}
	l.z.Debug().Str("scheme", scheme).Uint32("threshold", threshold).Uint32("limit", limit).Msg("engine constructed")
}

// ConfigRejected logs why an engine failed validation. reason must not contain
// secret material; callers only ever pass static validation messages.
func (l *Logger) ConfigRejected(scheme, reason string) {
	if l == nil {
		return
	}
	l.z.Warn().Str("scheme", scheme).Str("reason", reason).Msg("config rejected")
}

// VerifyResult logs a share verification outcome: the share index and the
// bool result, never the share's value or the commitments.
func (l *Logger) VerifyResult(shareIndex uint32, ok bool) {
	if l == nil {
		return
	}
	l.z.Debug().Uint32("share_index", shareIndex).Bool("ok", ok).Msg("share verified")
}
