package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogLogger_WritesMessageAndArgs(t *testing.T) {
	var buf bytes.Buffer
	l := NewDefault(&buf, slog.LevelInfo)

	l.Info(context.Background(), "job posted", "id", "42")

	out := buf.String()
	assert.Contains(t, out, "job posted")
	assert.Contains(t, out, "id=42")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewDefault(&buf, slog.LevelWarn)

	l.Debug(context.Background(), "noise")
	l.Info(context.Background(), "more noise")
	l.Warn(context.Background(), "kept")

	out := buf.String()
	assert.NotContains(t, out, "noise")
	assert.Contains(t, out, "kept")
}

func TestSlogLogger_WithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewDefault(&buf, slog.LevelInfo).With("component", "session")

	l.Info(context.Background(), "logged in")

	assert.Contains(t, buf.String(), "component=session")
}
