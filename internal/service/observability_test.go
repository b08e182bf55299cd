package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_WritesSortedFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelInfo)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "drop_at",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"y": 2, "x": 1},
	})

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=drop_at")
	assert.Contains(t, out, "duration_ms=3")
	assert.Contains(t, out, "success=true x=1 y=2")
}

func TestLogUseCaseObserver_ErrorsIgnoreLevel(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelWarn)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "reset", Success: true})
	assert.Empty(t, buf.String())

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "reset", Err: errors.New("disk full")})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), `error="disk full"`)
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil, slog.LevelInfo))

	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}
