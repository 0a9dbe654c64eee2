package observability

import (
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"
)

// flushTimeout bounds how long a failed run waits for delivery before exit.
const flushTimeout = 2 * time.Second

var sentryEnabled atomic.Bool

// InitSentry enables failure capture when SENTRY_DSN is set. The report
// itself never reads the environment; only this hook does. The returned
// flush must run before os.Exit.
func InitSentry() (func(), error) {
	dsn := strings.TrimSpace(os.Getenv("SENTRY_DSN"))
	if dsn == "" {
		sentryEnabled.Store(false)
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      strings.TrimSpace(os.Getenv("SENTRY_ENVIRONMENT")),
		Release:          strings.TrimSpace(os.Getenv("SENTRY_RELEASE")),
		AttachStacktrace: true,
	})
	if err != nil {
		sentryEnabled.Store(false)
		return func() {}, err
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("tool", "hostreport")
	})
	sentryEnabled.Store(true)
	return func() {
		sentry.Flush(flushTimeout)
	}, nil
}

// CaptureFailure records a failed lookup tagged with where it happened.
func CaptureFailure(component, operation string, err error) {
	if err == nil || !sentryEnabled.Load() {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("component", component)
		scope.SetTag("operation", operation)
		sentry.CaptureException(err)
	})
}
