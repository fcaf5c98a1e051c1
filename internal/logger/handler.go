package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
)

type logFormat string

const (
	formatJSON logFormat = "json"
	formatKV   logFormat = "kv"

	timeFormatMillis = "2006-01-02T15:04:05.000Z07:00"
)

// defaultKeyOrder fixes the position of well-known fields in every log line;
// remaining fields follow alphabetically.
var defaultKeyOrder = []string{
	"ts", "level", "component", "event", "status",
	"rid", "handler", "update_id", "chat_id", "user_id",
}

type handlerConfig struct {
	level  slog.Leveler
	writer *asyncWriter
	format logFormat
}

type structuredHandler struct {
	cfg   handlerConfig
	attrs []slog.Attr
}

func newStructuredHandler(cfg handlerConfig) *structuredHandler {
	if cfg.level == nil {
		cfg.level = slog.LevelInfo
	}
	return &structuredHandler{cfg: cfg}
}

// Enabled reports whether the handler allows processing the provided level.
func (h *structuredHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.cfg.level.Level()
}

// Handle formats the slog.Record and writes it using the configured writer.
func (h *structuredHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg.writer == nil {
		return fmt.Errorf("logger: writer not initialized")
	}

	fields := make(map[string]any, 16)
	fields["ts"] = r.Time.UTC().Truncate(time.Millisecond).Format(timeFormatMillis)
	fields["level"] = strings.ToUpper(r.Level.String())

	for _, a := range h.attrs {
		collectAttr(fields, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		collectAttr(fields, a)
		return true
	})

	addContextFields(ctx, fields)

	if event, _ := fields["event"].(string); event == "" {
		if r.Message != "" {
			fields["event"] = r.Message
		} else {
			fields["event"] = "unknown"
		}
	}
	if component, _ := fields["component"].(string); component == "" {
		fields["component"] = "app"
	}

	for k, v := range fields {
		if v == nil || v == "" {
			delete(fields, k)
		}
	}

	line, err := h.formatLine(fields)
	if err != nil {
		return err
	}
	if len(line) == 0 || line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}
	return h.cfg.writer.Write(line)
}

// WithAttrs returns a shallow copy of the handler enriched with attrs.
func (h *structuredHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

// WithGroup flattens groups away; grouped output is not used here.
func (h *structuredHandler) WithGroup(string) slog.Handler {
	return h
}

func collectAttr(fields map[string]any, attr slog.Attr) {
	key := attr.Key
	if key == "" {
		return
	}
	val := attr.Value.Resolve()
	switch val.Kind() {
	case slog.KindGroup:
		for _, child := range val.Group() {
			child.Key = key + "." + child.Key
			collectAttr(fields, child)
		}
	case slog.KindString:
		fields[key] = strings.TrimSpace(val.String())
	case slog.KindBool:
		fields[key] = val.Bool()
	case slog.KindInt64:
		fields[key] = val.Int64()
	case slog.KindUint64:
		fields[key] = val.Uint64()
	case slog.KindFloat64:
		fields[key] = val.Float64()
	case slog.KindDuration:
		fields[durationKey(key)] = RoundMS(val.Duration()).Milliseconds()
	case slog.KindTime:
		fields[key] = val.Time().UTC().Format(time.RFC3339Nano)
	default:
		switch x := val.Any().(type) {
		case error:
			fields[key] = x.Error()
		case time.Duration:
			fields[durationKey(key)] = RoundMS(x).Milliseconds()
		case fmt.Stringer:
			fields[key] = x.String()
		case nil:
		default:
			fields[key] = fmt.Sprint(x)
		}
	}
}

func durationKey(key string) string {
	switch {
	case key == "duration":
		return "duration_ms"
	case strings.HasSuffix(key, "_duration"):
		return strings.TrimSuffix(key, "_duration") + "_duration_ms"
	case strings.HasSuffix(key, "_ms"):
		return key
	default:
		return key + "_ms"
	}
}

func (h *structuredHandler) formatLine(fields map[string]any) ([]byte, error) {
	keys := orderedKeys(fields)
	if h.cfg.format == formatJSON {
		var sb strings.Builder
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			name, _ := json.Marshal(k)
			value, err := json.Marshal(fields[k])
			if err != nil {
				value = []byte(`"<unencodable>"`)
			}
			sb.Write(name)
			sb.WriteByte(':')
			sb.Write(value)
		}
		sb.WriteByte('}')
		return []byte(sb.String()), nil
	}

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(kvValue(fields[k]))
	}
	return []byte(sb.String()), nil
}

func orderedKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	seen := make(map[string]bool, len(fields))
	for _, k := range defaultKeyOrder {
		if _, ok := fields[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	rest := make([]string, 0, len(fields))
	for k := range fields {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

func kvValue(v any) string {
	s := fmt.Sprint(v)
	if strings.ContainsAny(s, " \t\n\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
