package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"log/slog"

	"github.com/bruske/smashbot/internal/archive"
	"github.com/bruske/smashbot/internal/bot"
	"github.com/bruske/smashbot/internal/config"
	"github.com/bruske/smashbot/internal/database"
	"github.com/bruske/smashbot/internal/health"
	"github.com/bruske/smashbot/internal/logger"
	"github.com/bruske/smashbot/internal/order"
	"github.com/bruske/smashbot/internal/telegram"
	"github.com/bruske/smashbot/internal/telegram/helpers"
	"github.com/bruske/smashbot/internal/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("smashbot: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg); err != nil {
		return err
	}
	defer func() {
		if err := logger.Shutdown(); err != nil {
			log.Printf("logger shutdown error: %v", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var repo *archive.Repository
	if cfg.Database.Enabled() {
		if err := database.RunMigrations(cfg.Database); err != nil {
			return err
		}
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()
		repo = archive.NewRepository(db)
	} else {
		logger.Info(logger.Background(), "app", "archive.disabled")
	}

	healthSrv := health.New(cfg.Health.Port)
	healthSrv.Start()
	defer func() {
		if err := healthSrv.Stop(context.Background()); err != nil {
			logger.Warn(logger.Background(), "app", "health.stop",
				slog.String("err", err.Error()),
			)
		}
	}()

	engine := order.NewEngine(order.DefaultCatalog(), order.NewReceiptBuilder(time.Now), time.Now)
	sessions := order.NewStore()
	handlers := &bot.Handlers{
		Engine:   engine,
		Sessions: sessions,
		Repo:     repo,
		AdminID:  cfg.Telegram.AdminID,
	}

	middlewares := []telegram.Middleware{
		{Name: "recover", Use: middleware.RecoverMiddleware},
		{Name: "logging", Use: middleware.LoggerMiddleware},
	}
	if cfg.RateLimit.IntervalMS > 0 {
		rl := middleware.RateLimitMiddleware(middleware.RateLimitOptions{
			Interval: time.Duration(cfg.RateLimit.IntervalMS) * time.Millisecond,
			OnLimited: func(c tele.Context) error {
				return helpers.SendText(c, "Calma! Uma mensagem por vez. 😉")
			},
		})
		middlewares = append(middlewares, telegram.Middleware{Name: "rate_limit", Use: rl})
	}

	startedAt := time.Now()
	return telegram.Run(ctx, telegram.RunOptions{
		Config:      cfg,
		Middlewares: middlewares,
		Routes:      handlers.Routes(),
		OnStart: func(ctx context.Context) error {
			logger.Info(ctx, "app", "ready",
				slog.Duration("startup_duration", logger.RoundMS(time.Since(startedAt))),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info(ctx, "app", "shutdown",
				slog.Int("open_sessions", sessions.Len()),
			)
			return nil
		},
	})
}
