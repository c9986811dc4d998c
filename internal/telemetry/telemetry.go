// Package telemetry reports crashes and unexpected errors to Sentry. It is
// opt-in: without a DSN every call is a no-op.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/dmitrijs2005/plantparent/internal/logging"
)

const flushTimeout = 2 * time.Second

type Options struct {
	DSN         string
	Release     string
	Environment string

	// Transport replaces the HTTP transport; tests pass a recorder.
	Transport sentry.Transport
}

// Reporter owns its own Sentry hub so nothing is shared through the
// package-level sentry client.
type Reporter struct {
	hub *sentry.Hub
	log logging.Logger
}

func New(opts Options, log logging.Logger) (*Reporter, error) {
	r := &Reporter{log: log.With("component", "telemetry")}
	if opts.DSN == "" && opts.Transport == nil {
		return r, nil
	}

	env := opts.Environment
	if env == "" {
		env = "production"
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              opts.DSN,
		Transport:        opts.Transport,
		Release:          "plantparent@" + opts.Release,
		Environment:      env,
		SampleRate:       1.0,
		AttachStacktrace: true,
		ServerName:       "",
	})
	if err != nil {
		return nil, fmt.Errorf("sentry initialization failed: %w", err)
	}

	r.hub = sentry.NewHub(client, sentry.NewScope())
	return r, nil
}

func (r *Reporter) Enabled() bool {
	return r != nil && r.hub != nil
}

// CaptureError reports err tagged with the component that hit it.
// Cancellations are not reported.
func (r *Reporter) CaptureError(ctx context.Context, err error, component string) {
	if !r.Enabled() || err == nil {
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("component", component)
		scope.SetFingerprint([]string{component, fmt.Sprintf("%T", errors.Unwrap(err))})
		r.hub.CaptureException(err)
	})
	r.log.Debug(ctx, "error reported", "component", component)
}

// Recover reports a panic, flushes and re-panics. Use it as
//
//	defer reporter.Recover()
func (r *Reporter) Recover() {
	v := recover()
	if v == nil {
		return
	}
	if r.Enabled() {
		r.hub.Recover(v)
		r.hub.Flush(flushTimeout)
	}
	panic(v)
}

// Flush waits up to timeout for buffered events to be delivered.
func (r *Reporter) Flush(timeout time.Duration) bool {
	if !r.Enabled() {
		return true
	}
	return r.hub.Flush(timeout)
}
