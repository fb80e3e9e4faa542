package common

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	inner := errors.New("boom")
	err := NewUserError("could not analyze photo", inner)

	assert.Equal(t, "could not analyze photo: boom", err.Error())
	assert.ErrorIs(t, err, inner)

	bare := NewUserError("just a message", nil)
	assert.Equal(t, "just a message", bare.Error())
}

func TestInvalidEnumError(t *testing.T) {
	err := InvalidEnumError("occasion", "brunch")

	require.ErrorIs(t, err, ErrInvalidEnum)
	assert.Contains(t, err.Error(), "occasion")
	assert.Contains(t, err.Error(), `"brunch"`)
}

func TestIsInputError(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "invalid enum", err: InvalidEnumError("budget", "x"), want: true},
		{name: "incomplete landmarks", err: fmt.Errorf("ratios: %w", ErrIncompleteLandmarks), want: true},
		{name: "missing front view", err: ErrMissingFrontView, want: true},
		{name: "malformed document", err: fmt.Errorf("decode: %w", ErrMalformedInput), want: true},
		{name: "unsupported format", err: ErrUnsupportedFormat, want: true},
		{name: "unknown body shape", err: ErrUnknownBodyShape, want: false},
		{name: "unrelated", err: errors.New("disk full"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInputError(tt.err))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer

	handler, err := NewHandler(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)
	slog.New(handler).Info("hello", "shape", "hourglass")
	assert.Contains(t, buf.String(), `"shape":"hourglass"`)

	_, err = NewHandler(&buf, slog.LevelInfo, "xml")
	assert.Error(t, err)
}

func TestLogHelpers(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	handler, err := NewHandler(&buf, slog.LevelDebug, "json")
	require.NoError(t, err)
	slog.SetDefault(slog.New(handler))

	LogError(errors.New("disk full"), "Batch source failed", Fields{"source": "front.json"})
	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"msg":"Batch source failed"`)
	assert.Contains(t, out, `"error":"disk full"`)
	assert.Contains(t, out, `"source":"front.json"`)

	buf.Reset()
	LogDebug("Analyzed body shape", Fields{"views": 2})
	out = buf.String()
	assert.Contains(t, out, `"level":"DEBUG"`)
	assert.Contains(t, out, `"views":2`)
}
