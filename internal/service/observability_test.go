package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_WritesEvents(t *testing.T) {
	var buf bytes.Buffer
	store, _ := newMemLogStore(t)
	svc := NewTimeLogService(store, NewLogUseCaseObserver(&buf, log.InfoLevel))

	require.NoError(t, svc.RecordInterval(context.Background(), 0, 1500))

	out := buf.String()
	assert.Contains(t, out, "tracker")
	assert.Contains(t, out, "service_use_case")
	assert.Contains(t, out, "use_case=record-interval")
	assert.Contains(t, out, "end_ms=1500")
}

func TestLogUseCaseObserver_LogsFailuresAsErrors(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, log.ErrorLevel)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "report", Success: true})
	assert.Empty(t, buf.String(), "info events below level are dropped")

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "report", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), "boom")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	obs := NewLogUseCaseObserver(nil, log.InfoLevel)
	assert.IsType(t, NoopUseCaseObserver{}, obs)
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop([]UseCaseObserver{nil}))

	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}
