package logger

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"log/slog"
)

func newTestHandler(format logFormat, buf *bytes.Buffer) (*structuredHandler, *asyncWriter) {
	aw := newAsyncWriter([]io.Writer{buf}, 1024)
	return newStructuredHandler(handlerConfig{
		level:  slog.LevelInfo,
		writer: aw,
		format: format,
	}), aw
}

func drain(t *testing.T, aw *asyncWriter) {
	t.Helper()
	if err := aw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if err := aw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestStructuredHandlerKVOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	handler, aw := newTestHandler(formatKV, buf)

	ctx := WithRID(Background(), "rid-123")
	ctx = WithUpdateMeta(ctx, 42, 7, 9)

	log := slog.New(handler).With("component", "tg")
	log.LogAttrs(ctx, slog.LevelInfo, "test.event",
		slog.String("status", "ok"),
	)
	drain(t, aw)

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected log line")
	}
	tokens := strings.Split(line, " ")
	expected := []string{"ts=", "level=INFO", "component=tg", "event=test.event", "status=ok", "rid=rid-123"}
	if len(tokens) < len(expected) {
		t.Fatalf("unexpected token count: %d (%s)", len(tokens), line)
	}
	for i, prefix := range expected {
		if !strings.HasPrefix(tokens[i], prefix) {
			t.Fatalf("token %d = %s, expected prefix %s", i, tokens[i], prefix)
		}
	}
}

func TestStructuredHandlerJSONOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	handler, aw := newTestHandler(formatJSON, buf)

	ctx := WithRID(Background(), "rid-json")
	log := slog.New(handler).With("component", "bot")
	log.LogAttrs(ctx, slog.LevelError, "order.failed",
		slog.String("status", "fail"),
		slog.String("err", "boom"),
	)
	drain(t, aw)

	line := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(line, "{") {
		t.Fatalf("expected JSON, got %s", line)
	}
	prefixes := []string{`{"ts":`, `"level":"ERROR"`, `"component":"bot"`, `"event":"order.failed"`, `"status":"fail"`, `"rid":"rid-json"`}
	pos := -1
	for _, pref := range prefixes {
		idx := strings.Index(line, pref)
		if idx == -1 || idx < pos {
			t.Fatalf("prefix %s not found in order within %s", pref, line)
		}
		pos = idx
	}
}

func TestStructuredHandlerDurationNormalization(t *testing.T) {
	buf := &bytes.Buffer{}
	handler, aw := newTestHandler(formatKV, buf)

	log := slog.New(handler)
	log.LogAttrs(Background(), slog.LevelInfo, "timing",
		slog.Duration("duration", 1500000000),
	)
	drain(t, aw)

	line := buf.String()
	if !strings.Contains(line, "duration_ms=1500") {
		t.Fatalf("expected duration_ms=1500 in %s", line)
	}
}

func TestStructuredHandlerLevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	handler, aw := newTestHandler(formatKV, buf)

	log := slog.New(handler)
	log.LogAttrs(Background(), slog.LevelDebug, "invisible")
	drain(t, aw)

	if strings.TrimSpace(buf.String()) != "" {
		t.Fatalf("debug line should be filtered at info level: %q", buf.String())
	}
}

func TestRatioSampler(t *testing.T) {
	s := newRatioSampler(1, 3)
	allowed := 0
	for i := 0; i < 9; i++ {
		if s.Allow() {
			allowed++
		}
	}
	if allowed != 3 {
		t.Fatalf("allowed %d of 9, want 3", allowed)
	}

	s.Set(0, 0)
	if !s.Allow() {
		t.Fatal("disabled sampler must allow everything")
	}
}

func TestParseRatioSpec(t *testing.T) {
	cases := []struct {
		in       string
		num, den int
	}{
		{"", 1, 50},
		{"1/10", 1, 10},
		{"25", 1, 25},
		{"bogus", 1, 50},
	}
	for _, tc := range cases {
		num, den := parseRatioSpec(tc.in)
		if num != tc.num || den != tc.den {
			t.Errorf("parseRatioSpec(%q) = %d/%d, want %d/%d", tc.in, num, den, tc.num, tc.den)
		}
	}
}
