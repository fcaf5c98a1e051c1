package middleware

import (
	"sync"
	"time"

	"github.com/bruske/smashbot/internal/logger"
	tghelpers "github.com/bruske/smashbot/internal/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// recentUpdates keeps a short-lived set of processed update ids to avoid
// double logging when the middleware is applied on multiple branches.
var (
	recentMu     sync.Mutex
	recentUpdate = make(map[int]time.Time)
	keepFor      = 10 * time.Second
)

func alreadyLogged(updateID int) bool {
	now := time.Now()
	recentMu.Lock()
	defer recentMu.Unlock()
	for id, ts := range recentUpdate {
		if now.Sub(ts) > keepFor {
			delete(recentUpdate, id)
		}
	}
	if _, ok := recentUpdate[updateID]; ok {
		return true
	}
	recentUpdate[updateID] = now
	return false
}

// LoggerMiddleware logs a single receipt line per update and sets rid.
func LoggerMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		upd := c.Update()
		var chatID, userID int64
		if chat := c.Chat(); chat != nil {
			chatID = chat.ID
		}
		user := c.Sender()
		if user != nil {
			userID = user.ID
		}

		rid := logger.BuildRID(upd.ID, chatID, userID)
		c.Set("rid", rid)

		ctx := logger.WithRID(logger.Background(), rid)
		ctx = logger.WithUpdateMeta(ctx, upd.ID, userID, chatID)
		ctx = logger.WithLogger(ctx, logger.Component("tg"))
		tghelpers.StoreContext(c, ctx)

		if logger.ShouldSampleDebug() && !alreadyLogged(upd.ID) {
			attrs := []slog.Attr{
				slog.String("status", "ok"),
				slog.Int("update_id", upd.ID),
			}
			if user != nil && user.Username != "" {
				attrs = append(attrs, slog.String("username", logger.SanitizeLimit(user.Username, 64)))
			}
			if t := c.Text(); t != "" {
				attrs = append(attrs, slog.String("payload", logger.SanitizeLimit(t, 256)))
			}
			logger.Debug(ctx, "tg", "update.received", attrs...)
		}

		return next(c)
	}
}
