package middleware

import (
	"sync"
	"time"

	"github.com/bruske/smashbot/internal/logger"
	tghelpers "github.com/bruske/smashbot/internal/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// RateLimitOptions configures behaviour of the rate limit middleware.
type RateLimitOptions struct {
	Interval  time.Duration
	OnLimited tele.HandlerFunc
}

// RateLimitMiddleware enforces a minimum interval between messages from the
// same customer. Throttled updates are dropped, not queued.
func RateLimitMiddleware(opts RateLimitOptions) tele.MiddlewareFunc {
	var (
		lastSeen   = make(map[int64]time.Time)
		lastSeenMu sync.Mutex
	)
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user := c.Sender()
			if user == nil || opts.Interval <= 0 {
				return next(c)
			}

			now := time.Now()
			lastSeenMu.Lock()
			if last, ok := lastSeen[user.ID]; ok && now.Sub(last) < opts.Interval {
				lastSeenMu.Unlock()
				logger.Warn(tghelpers.BuildContext(c), "tg", "tg.rate_limit",
					slog.Int64("user_id", user.ID),
				)
				if opts.OnLimited != nil {
					_ = opts.OnLimited(c)
				}
				return nil
			}
			lastSeen[user.ID] = now
			lastSeenMu.Unlock()
			return next(c)
		}
	}
}
