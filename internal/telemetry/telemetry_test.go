package telemetry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/plantparent/internal/logging"
)

func newTestReporter(t *testing.T) (*Reporter, *mockTransport) {
	t.Helper()
	tr := &mockTransport{}
	r, err := New(Options{Transport: tr, Release: "test", Environment: "test"}, logging.Discard())
	require.NoError(t, err)
	require.True(t, r.Enabled())
	return r, tr
}

func TestNew_DisabledWithoutDSN(t *testing.T) {
	r, err := New(Options{}, logging.Discard())
	require.NoError(t, err)

	assert.False(t, r.Enabled())
	r.CaptureError(context.Background(), errors.New("ignored"), "plants")
	assert.True(t, r.Flush(time.Millisecond))
}

func TestNew_InvalidDSN(t *testing.T) {
	_, err := New(Options{DSN: "not a dsn"}, logging.Discard())
	assert.Error(t, err)
}

func TestCaptureError(t *testing.T) {
	r, tr := newTestReporter(t)

	r.CaptureError(context.Background(), fmt.Errorf("save: %w", errors.New("disk full")), "plants")

	events := tr.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "plants", events[0].Tags["component"])
	assert.Equal(t, "plantparent@test", events[0].Release)
	require.NotEmpty(t, events[0].Exception)
}

func TestCaptureError_SkipsCancellation(t *testing.T) {
	r, tr := newTestReporter(t)

	r.CaptureError(context.Background(), fmt.Errorf("load: %w", context.Canceled), "plants")
	r.CaptureError(context.Background(), nil, "plants")

	assert.Empty(t, tr.Events())
}

func TestRecover_ReportsAndRepanics(t *testing.T) {
	r, tr := newTestReporter(t)

	assert.PanicsWithValue(t, "boom", func() {
		defer r.Recover()
		panic("boom")
	})
	assert.Len(t, tr.Events(), 1)
}

func TestRecover_NoPanic(t *testing.T) {
	r, tr := newTestReporter(t)

	func() {
		defer r.Recover()
	}()
	assert.Empty(t, tr.Events())
}
