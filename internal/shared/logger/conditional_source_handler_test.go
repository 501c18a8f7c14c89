package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferedLogger(levels ...slog.Level) (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewConditionalSourceHandler(base, levels...)), &buf
}

func TestConditionalSourceHandler_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		levels     []slog.Level
		wantSource bool
	}{
		{name: "info hidden by default", level: slog.LevelInfo, levels: []slog.Level{slog.LevelWarn, slog.LevelError}},
		{name: "warn shown", level: slog.LevelWarn, levels: []slog.Level{slog.LevelWarn, slog.LevelError}, wantSource: true},
		{name: "error shown", level: slog.LevelError, levels: []slog.Level{slog.LevelWarn, slog.LevelError}, wantSource: true},
		{name: "debug hidden", level: slog.LevelDebug, levels: []slog.Level{slog.LevelWarn}},
		{name: "debug mode shows info", level: slog.LevelInfo, levels: []slog.Level{slog.LevelDebug, slog.LevelInfo}, wantSource: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, buf := newBufferedLogger(tc.levels...)
			log.Log(context.Background(), tc.level, "attendance marked", "member_id", "1")

			out := buf.String()
			assert.Equal(t, tc.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), out)
			assert.Contains(t, out, "member_id=1")
		})
	}
}

func TestConditionalSourceHandler_PointsAtCaller(t *testing.T) {
	log, buf := newBufferedLogger(slog.LevelError)
	log.Error("save failed")
	assert.Contains(t, buf.String(), "conditional_source_handler_test.go")
}

func TestConditionalSourceHandler_AttrsAndGroups(t *testing.T) {
	log, buf := newBufferedLogger(slog.LevelError)

	log.With("member_id", "7").WithGroup("payment").Info("payment accepted", "amount", "100.00")

	out := buf.String()
	assert.NotContains(t, out, "source=")
	assert.Contains(t, out, "member_id=7")
	assert.Contains(t, out, "payment.amount=100.00")
}

func TestConditionalSourceHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	h := NewConditionalSourceHandler(base, slog.LevelError)

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}
