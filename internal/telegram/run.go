package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bruske/smashbot/internal/config"
	"github.com/bruske/smashbot/internal/logger"
	tghelpers "github.com/bruske/smashbot/internal/telegram/helpers"
	tgsender "github.com/bruske/smashbot/internal/telegram/sender"

	tele "gopkg.in/telebot.v4"
	"log/slog"
)

// Middleware describes a global bot middleware to be registered via bot.Use.
type Middleware struct {
	Name string
	Use  func(next tele.HandlerFunc) tele.HandlerFunc
}

// Route declares a single bot handler bound to an arbitrary endpoint.
// Endpoint values are passed directly to tele.Bot.Handle.
type Route struct {
	Endpoint any
	Handler  tele.HandlerFunc
}

// RunOptions controls the behaviour of Run.
type RunOptions struct {
	Config *config.Config

	DispatcherOptions tgsender.Options

	Middlewares []Middleware
	Routes      []Route

	OnStart func(ctx context.Context) error
	OnStop  func(ctx context.Context) error
}

// Run composes and runs the Telegram bot until the provided context is done.
func Run(ctx context.Context, opts RunOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Config == nil {
		return fmt.Errorf("telegram: nil config provided")
	}
	cfg := opts.Config

	poller := BuildPoller(PollerOptions{
		RunMode:                cfg.Telegram.RunMode,
		LongPollTimeoutSeconds: cfg.Telegram.LongPollTimeoutSeconds,
		Webhook: WebhookOptions{
			Listen: cfg.Webhook.Listen,
			Port:   cfg.Webhook.Port,
			URL:    cfg.Webhook.URL,
		},
	})

	buildStart := time.Now()
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.Telegram.Token,
		Poller: poller,
		Client: BuildHTTPClient(),
	})
	if err != nil {
		return fmt.Errorf("telegram: bot initialization failed: %w", err)
	}
	buildTook := time.Since(buildStart)

	dispatcher := tgsender.NewDispatcher(opts.DispatcherOptions)
	tghelpers.SetDispatcher(dispatcher)

	switch p := poller.(type) {
	case *tele.Webhook:
		logger.Info(ctx, "tg", "mode",
			slog.String("mode", "webhook"),
			slog.String("listen", p.Listen),
			slog.String("public_url", p.Endpoint.PublicURL),
			slog.Duration("duration", logger.RoundMS(buildTook)),
		)
	default:
		logger.Info(ctx, "tg", "mode",
			slog.String("mode", "polling"),
			slog.Duration("duration", logger.RoundMS(buildTook)),
		)
		if strings.EqualFold(cfg.Telegram.RunMode, config.RunModeLongpoll) {
			if err := deleteWebhook(cfg.Telegram.Token); err != nil {
				logger.Warn(ctx, "tg", "delete_webhook",
					slog.String("err", err.Error()),
				)
			}
		}
	}

	for _, mw := range opts.Middlewares {
		if mw.Use == nil {
			continue
		}
		bot.Use(mw.Use)
	}
	for _, route := range opts.Routes {
		if route.Endpoint == nil || route.Handler == nil {
			continue
		}
		bot.Handle(route.Endpoint, route.Handler)
	}

	if opts.OnStart != nil {
		if err := opts.OnStart(ctx); err != nil {
			dispatcher.Close()
			tghelpers.SetDispatcher(nil)
			return err
		}
	}

	runDone := make(chan struct{})
	go func() {
		bot.Start()
		close(runDone)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		bot.Stop()
		<-runDone
		runErr = ctx.Err()
	case <-runDone:
	}

	var stopErr error
	if opts.OnStop != nil {
		stopErr = opts.OnStop(ctx)
	}

	dispatcher.Close()
	tghelpers.SetDispatcher(nil)

	if stopErr != nil {
		return stopErr
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

// deleteWebhook clears a previously registered webhook before long polling.
func deleteWebhook(token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("empty token")
	}
	url := fmt.Sprintf("https://api.telegram.org/bot%s/deleteWebhook", token)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url,
		strings.NewReader("drop_pending_updates=false"))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("deleteWebhook status: %s", resp.Status)
	}
	return nil
}
