package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	stdlog "log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestZerologAdapterFields(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewLogger(&buf, "evaluator", zerolog.DebugLevel)

	logger.Info("evaluated",
		String("operation", "nat.add"),
		Strings("args", []string{"1", "2"}),
		Int("digits", 3),
		Duration("duration", 2*time.Millisecond),
	)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid JSON record %q: %v", buf.String(), err)
	}
	if record["component"] != "evaluator" || record["operation"] != "nat.add" {
		t.Errorf("unexpected record: %v", record)
	}
	if record["level"] != "info" || record["message"] != "evaluated" {
		t.Errorf("unexpected level or message: %v", record)
	}
	args, ok := record["args"].([]any)
	if !ok || len(args) != 2 {
		t.Errorf("args field = %v", record["args"])
	}
}

func TestZerologAdapterLevelFilter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewLogger(&buf, "server", zerolog.WarnLevel)
	logger.Debug("hidden")
	logger.Info("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("records below warn leaked: %q", buf.String())
	}
	logger.Error("failed", errors.New("boom"))
	if !strings.Contains(buf.String(), `"error":"boom"`) {
		t.Errorf("error record missing cause: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{" WARN ", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"loud", zerolog.NoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLevel(%q) should fail", tt.input)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
		}
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewStdLoggerAdapter(stdlog.New(&buf, "", 0))
	logger.Info("started")
	logger.Debug("detail", String("k", "v"))
	logger.Error("failed", errors.New("boom"))
	out := buf.String()
	for _, want := range []string{"[INFO] started", "[DEBUG] detail", "[ERROR] failed: boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestNopLogger(t *testing.T) {
	t.Parallel()
	var l Logger = NewNopLogger()
	l.Info("nothing")
	l.Printf("%d", 1)
	l.Println("x")
}
