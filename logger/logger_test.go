package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func captureLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return FromZerolog(zerolog.New(&buf), "test"), &buf
}

func TestLogger_Info_WritesJSON(t *testing.T) {
	log, buf := captureLogger()
	log.Info("hello", Fields("kind", "not_found"))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if rec["message"] != "hello" {
		t.Errorf("expected message=hello, got %v", rec["message"])
	}
	if rec["kind"] != "not_found" {
		t.Errorf("expected kind=not_found, got %v", rec["kind"])
	}
}

func TestLogger_WithComponent_TagsRecords(t *testing.T) {
	log, buf := captureLogger()
	log.WithComponent("translate").Error("boom")

	if !strings.Contains(buf.String(), `"component":"translate"`) {
		t.Errorf("expected component field, got %q", buf.String())
	}
}

func TestLogger_WithContext_RequestID(t *testing.T) {
	log, buf := captureLogger()
	ctx := WithRequestID(context.Background(), "req-123")
	log.WithContext(ctx).Info("handled")

	if !strings.Contains(buf.String(), `"request_id":"req-123"`) {
		t.Errorf("expected request_id field, got %q", buf.String())
	}
}

func TestLogger_New_InvalidLevelFallsBack(t *testing.T) {
	cfg := &Config{Level: "nonsense", Format: "json", Output: "stdout"}
	log := New(cfg, "svc")
	if log == nil {
		t.Fatal("expected logger despite invalid level")
	}
}

func TestLogger_Nop_Discards(t *testing.T) {
	log := Nop()
	// Must not panic and must not write anywhere.
	log.Debug("a")
	log.Info("b")
	log.Warn("c")
	log.Error("d")
}

func TestConfig_Validate_Table(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{Level: "info", Format: "json"}, false},
		{"console", Config{Level: "debug", Format: "console"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stdout" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps enabled by default")
	}
}
