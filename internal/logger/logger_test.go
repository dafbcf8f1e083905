package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	if got := New(false).GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("New(false) level = %v, want %v", got, zerolog.InfoLevel)
	}
	if got := New(true).GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("New(true) level = %v, want %v", got, zerolog.DebugLevel)
	}
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Warn().Int("line", 3).Msg("test message")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected output to contain 'test message', got: %s", output)
	}
	if !strings.Contains(output, `"line":3`) {
		t.Errorf("Expected output to contain the line field, got: %s", output)
	}
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf))

	retrievedLog := FromContext(ctx)
	retrievedLog.Info().Msg("test")

	if buf.Len() == 0 {
		t.Error("Expected log output from retrieved logger")
	}
}

func TestFromContext_DefaultLogger(t *testing.T) {
	log := FromContext(context.Background())
	if log.GetLevel() != zerolog.Disabled {
		t.Errorf("Expected a disabled logger when none is in context, got level %v", log.GetLevel())
	}
}
