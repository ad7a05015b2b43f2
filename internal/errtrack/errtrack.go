// Package errtrack forwards unexpected server-side failures to Sentry.
// When no DSN is configured it is a no-op, so handlers can call Capture
// unconditionally.
package errtrack

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
)

var enabled bool

// Setup initializes the Sentry client from the given DSN. An empty DSN
// disables capture entirely.
func Setup(dsn, environment string) error {
	if dsn == "" {
		slog.Info("error tracking disabled (no DSN)")
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
	if err != nil {
		return err
	}
	enabled = true
	return nil
}

// Capture records err with optional key/value tags. The error is always
// logged; it is only forwarded upstream when Setup succeeded with a DSN.
func Capture(err error, tags map[string]string) {
	if err == nil {
		return
	}
	slog.Error("upstream failure", "error", err)
	if !enabled {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}

// Flush drains pending events; call before process exit.
func Flush() {
	if enabled {
		sentry.Flush(2 * time.Second)
	}
}
