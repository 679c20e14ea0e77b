package logging

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// captureLogOutput captures log output for testing by temporarily
// redirecting the logger to write to a buffer
func captureLogOutput(f func()) string {
	var buf bytes.Buffer

	oldLogger := defaultLogger
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	defaultLogger = slog.New(handler)

	f()

	defaultLogger = oldLogger
	return buf.String()
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", "debug", LevelDebug, false},
		{"info", "info", LevelInfo, false},
		{"warn", "warn", LevelWarn, false},
		{"error", "error", LevelError, false},
		{"empty defaults to info", "", LevelInfo, false},
		{"unknown", "verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr != (err != nil) {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if got, err := ParseFormat("json"); err != nil || got != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", got, err)
	}
	if got, err := ParseFormat(""); err != nil || got != FormatText {
		t.Errorf("ParseFormat(empty) = %v, %v", got, err)
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("ParseFormat(yaml): expected error")
	}
}

func TestLogHelpers(t *testing.T) {
	out := captureLogOutput(func() {
		Info("converted", "title", "A Quiet Evening")
		Warn("unrecognised container command", "command", "chapter")
	})

	if !strings.Contains(out, "converted") || !strings.Contains(out, "A Quiet Evening") {
		t.Errorf("missing info log fields in: %s", out)
	}
	if !strings.Contains(out, "unrecognised container command") {
		t.Errorf("missing warn log in: %s", out)
	}
}

func TestRequestIDContext(t *testing.T) {
	id := NewRequestID()
	if id == "" {
		t.Fatal("NewRequestID returned empty string")
	}
	if another := NewRequestID(); another == id {
		t.Error("NewRequestID returned duplicate IDs")
	}

	ctx := WithRequestID(context.Background(), id)
	if got := GetRequestID(ctx); got != id {
		t.Errorf("GetRequestID = %q, want %q", got, id)
	}
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID on empty context = %q, want empty", got)
	}

	out := captureLogOutput(func() {
		InfoContext(ctx, "with context")
	})
	if !strings.Contains(out, id) {
		t.Errorf("request ID %q missing from log: %s", id, out)
	}
}

func TestCombinedMiddleware(t *testing.T) {
	handler := CombinedMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetRequestID(r.Context()) == "" {
			t.Error("handler context missing request ID")
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	out := captureLogOutput(func() {
		req := httptest.NewRequest(http.MethodGet, "/preview", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Header().Get("X-Request-ID") == "" {
			t.Error("response missing X-Request-ID header")
		}
		if rec.Code != http.StatusNoContent {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
		}
	})

	if !strings.Contains(out, "http_request") {
		t.Errorf("missing http_request log in: %s", out)
	}
}

func TestMiddlewareHonoursSuppliedRequestID(t *testing.T) {
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := GetRequestID(r.Context()); got != "given-id" {
			t.Errorf("request ID = %q, want %q", got, "given-id")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "given-id")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "given-id" {
		t.Errorf("header = %q, want %q", got, "given-id")
	}
}
