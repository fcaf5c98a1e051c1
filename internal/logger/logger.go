package logger

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/bruske/smashbot/internal/buildinfo"
	"github.com/bruske/smashbot/internal/config"
)

var (
	initOnce   sync.Once
	shutdownMu sync.Mutex
	shutdowned bool

	logWriter  *asyncWriter
	logClosers []io.Closer

	levelVar slog.LevelVar

	debugSampler = newRatioSampler(1, 50)

	// L is the base structured logger.
	L *slog.Logger
)

// Init configures the global structured logger. It may be called only once.
func Init(cfg *config.Config) error {
	var initErr error
	initOnce.Do(func() {
		format := selectFormat(cfg)
		levelVar.Set(selectLevel(cfg))

		num, den := parseRatioSpec(sampleSpec(cfg))
		debugSampler.Set(num, den)

		outputs, closers := buildOutputs(cfg)
		logClosers = closers
		logWriter = newAsyncWriter(outputs, 64*1024)

		handler := newStructuredHandler(handlerConfig{
			level:  &levelVar,
			writer: logWriter,
			format: format,
		})

		L = slog.New(handler)
		slog.SetDefault(L)

		L.LogAttrs(context.Background(), slog.LevelInfo, "startup",
			slog.String("component", "app"),
			slog.String("event", "startup"),
			slog.String("go_version", runtime.Version()),
			slog.String("build_commit", buildinfo.Commit),
			slog.String("build_time", buildinfo.Date),
		)
	})
	return initErr
}

// Shutdown flushes buffered log output and closes opened sinks.
func Shutdown() error {
	shutdownMu.Lock()
	defer shutdownMu.Unlock()
	if shutdowned {
		return nil
	}
	shutdowned = true

	var errs []error
	if logWriter != nil {
		if err := logWriter.Flush(); err != nil {
			errs = append(errs, err)
		}
		if err := logWriter.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	for _, c := range logClosers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Component constructs a logger scoped to the provided component attribute.
func Component(name string) *slog.Logger {
	if L == nil {
		return nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return L
	}
	return L.With("component", name)
}

// Event logs with component scope resolved automatically.
func Event(ctx context.Context, component string, level slog.Level, event string, attrs ...slog.Attr) {
	logg := Component(component)
	if logg == nil {
		logg = FromContext(ctx)
		if logg == nil {
			return
		}
		if component != "" {
			logg = logg.With("component", component)
		}
	}
	if event != "" {
		attrs = append([]slog.Attr{slog.String("event", event)}, attrs...)
	}
	logg.LogAttrs(ctx, level, "", attrs...)
}

// Debug logs a debug-level event for the given component.
func Debug(ctx context.Context, component, event string, attrs ...slog.Attr) {
	Event(ctx, component, slog.LevelDebug, event, attrs...)
}

// Info logs an info-level event for the given component.
func Info(ctx context.Context, component, event string, attrs ...slog.Attr) {
	Event(ctx, component, slog.LevelInfo, event, attrs...)
}

// Warn logs a warn-level event for the given component.
func Warn(ctx context.Context, component, event string, attrs ...slog.Attr) {
	Event(ctx, component, slog.LevelWarn, event, attrs...)
}

// Error logs an error-level event for the given component.
func Error(ctx context.Context, component, event string, attrs ...slog.Attr) {
	Event(ctx, component, slog.LevelError, event, attrs...)
}

// ShouldSampleDebug reports whether high-volume debug detail should be logged.
func ShouldSampleDebug() bool {
	return debugSampler.Allow()
}

func selectFormat(cfg *config.Config) logFormat {
	if cfg == nil {
		return formatJSON
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Format)) {
	case "kv", "text", "pretty":
		return formatKV
	case "json":
		return formatJSON
	}
	// Prefer human-friendly output for debug/dev profiles.
	if strings.EqualFold(cfg.Logging.Profile, "debug") || strings.EqualFold(cfg.Logging.Profile, "dev") {
		return formatKV
	}
	return formatJSON
}

func selectLevel(cfg *config.Config) slog.Level {
	if cfg == nil {
		return slog.LevelInfo
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func sampleSpec(cfg *config.Config) string {
	if cfg == nil {
		return ""
	}
	return cfg.Logging.DebugSample
}

func buildOutputs(cfg *config.Config) ([]io.Writer, []io.Closer) {
	writers := []io.Writer{os.Stdout}
	var closers []io.Closer
	if cfg == nil {
		return writers, closers
	}
	dir := strings.TrimSpace(cfg.Logging.Dir)
	file := strings.TrimSpace(cfg.Logging.File)
	if dir != "" && file != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Printf("logger: failed to create log dir %s: %v", dir, err)
			return writers, closers
		}
		path := filepath.Join(dir, file)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Printf("logger: failed to open log file %s: %v", path, err)
			return writers, closers
		}
		writers = append(writers, f)
		closers = append(closers, f)
	}
	return writers, closers
}
