package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		AddSource:   false,
	}

	log := New(config, &buf)
	log.Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}
	if logEntry["version"] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry["version"])
	}
	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}
	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}
	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}
	if logEntry["number"] != float64(42) {
		t.Errorf("Expected number=42, got %v", logEntry["number"])
	}
}

func TestTextLoggingRespectsLevel(t *testing.T) {
	var buf bytes.Buffer

	log := New(Config{Level: "warn", Format: "text", ServiceName: "alchemy"}, &buf)
	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected info line to be filtered, got %q", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("Expected warn line in text format, got %q", out)
	}
}

func TestInitLoggerWithWriterSetsDefault(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	InitLoggerWithWriter(DefaultConfig(), &buf)
	slog.Info("through default")

	if !strings.Contains(buf.String(), "through default") {
		t.Errorf("Expected default logger to write to buffer, got %q", buf.String())
	}
}

func TestLoadIDContext(t *testing.T) {
	id := GenerateLoadID()
	if len(id) != 36 {
		t.Fatalf("Expected UUID string, got %q", id)
	}

	ctx := WithLoadID(context.Background(), id)
	got, ok := LoadIDFromContext(ctx)
	if !ok || got != id {
		t.Errorf("Expected load_id=%s, got %s (ok=%v)", id, got, ok)
	}

	if _, ok := LoadIDFromContext(context.Background()); ok {
		t.Error("Expected no load id on empty context")
	}

	var buf bytes.Buffer
	FromContext(ctx, New(Config{Format: "json"}, &buf)).Info("tagged")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry["load_id"] != id {
		t.Errorf("Expected load_id=%s, got %v", id, logEntry["load_id"])
	}
}

func TestConfigDefaults(t *testing.T) {
	config := DefaultConfig()

	if config.ServiceName != DefaultServiceName {
		t.Errorf("Expected service name %s, got %s", DefaultServiceName, config.ServiceName)
	}
	if config.LogLevel() != slog.LevelInfo {
		t.Errorf("Expected info level, got %v", config.LogLevel())
	}
	if config.IsJSON() {
		t.Error("Expected text format by default")
	}
}

func TestDevelopmentConfig(t *testing.T) {
	config := DevelopmentConfig()

	if config.Level != "debug" {
		t.Errorf("Expected debug level in dev, got %s", config.Level)
	}
	if !config.AddSource {
		t.Error("Expected AddSource=true in development")
	}
}

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"loud":    slog.LevelInfo,
	}
	for level, want := range cases {
		if got := (Config{Level: level}).LogLevel(); got != want {
			t.Errorf("Level %q: expected %v, got %v", level, want, got)
		}
	}
}
