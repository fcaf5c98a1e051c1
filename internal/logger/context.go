package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// contextKey is a private type to avoid collisions in context.
type contextKey string

const (
	ctxRID      contextKey = "rid"
	ctxUpdateID contextKey = "update_id"
	ctxUserID   contextKey = "user_id"
	ctxChatID   contextKey = "chat_id"
	ctxLogger   contextKey = "logger"
	ctxHandler  contextKey = "handler"
)

// WithLogger stores the provided slog.Logger in context for propagation.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if log == nil {
		return ctx
	}
	return context.WithValue(ctx, ctxLogger, log)
}

// FromContext extracts slog.Logger from context or returns the global default.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return L
	}
	if l, ok := ctx.Value(ctxLogger).(*slog.Logger); ok {
		return l
	}
	return L
}

// WithRID attaches a request correlation id to the context.
func WithRID(ctx context.Context, rid string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxRID, rid)
}

// RIDFrom extracts the rid from context if present.
func RIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	rid, _ := ctx.Value(ctxRID).(string)
	return rid
}

// WithUpdateMeta attaches update/user/chat identifiers to the context.
func WithUpdateMeta(ctx context.Context, updateID int, userID, chatID int64) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxUpdateID, updateID)
	ctx = context.WithValue(ctx, ctxUserID, userID)
	return context.WithValue(ctx, ctxChatID, chatID)
}

// UpdateIDFrom extracts the update id from context.
func UpdateIDFrom(ctx context.Context) int {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(ctxUpdateID).(int)
	return id
}

// UserIDFrom extracts the user id from context.
func UserIDFrom(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(ctxUserID).(int64)
	return id
}

// ChatIDFrom extracts the chat id from context.
func ChatIDFrom(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(ctxChatID).(int64)
	return id
}

// WithHandler records the handler name for downstream log lines.
func WithHandler(ctx context.Context, handler string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxHandler, handler)
}

// BuildRID derives a stable correlation id from update metadata.
func BuildRID(updateID int, chatID, userID int64) string {
	return fmt.Sprintf("%d:%d:%d", updateID, chatID, userID)
}

func addContextFields(ctx context.Context, fields map[string]any) {
	if ctx == nil {
		return
	}
	if _, ok := fields["rid"]; !ok {
		if rid := RIDFrom(ctx); rid != "" {
			fields["rid"] = rid
		}
	}
	if _, ok := fields["handler"]; !ok {
		if h, _ := ctx.Value(ctxHandler).(string); h != "" {
			fields["handler"] = h
		}
	}
	if _, ok := fields["update_id"]; !ok {
		if id := UpdateIDFrom(ctx); id != 0 {
			fields["update_id"] = int64(id)
		}
	}
	if _, ok := fields["chat_id"]; !ok {
		if id := ChatIDFrom(ctx); id != 0 {
			fields["chat_id"] = id
		}
	}
	if _, ok := fields["user_id"]; !ok {
		if id := UserIDFrom(ctx); id != 0 {
			fields["user_id"] = id
		}
	}
}

// Background returns context.Background(); kept for call-site symmetry.
func Background() context.Context {
	return context.Background()
}

// RoundMS rounds a duration to the nearest millisecond for consistent logging.
func RoundMS(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return d.Round(time.Millisecond)
}

// Took returns the rounded duration since start for compact logging.
func Took(start time.Time) time.Duration {
	return RoundMS(time.Since(start))
}

// SanitizeLimit trims whitespace and truncates a string for safe log output.
func SanitizeLimit(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
