package middleware

import (
	"runtime/debug"

	"github.com/bruske/smashbot/internal/logger"
	tghelpers "github.com/bruske/smashbot/internal/telegram/helpers"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// RecoverMiddleware catches panics in handlers and prevents the bot from crashing.
func RecoverMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		defer func() {
			if r := recover(); r != nil {
				logger.Error(tghelpers.BuildContext(c), "tg", "tg.panic",
					slog.Any("err", r),
					slog.String("stack", string(debug.Stack())),
				)
			}
		}()
		return next(c)
	}
}
