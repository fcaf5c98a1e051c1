package config

import "testing"

func validConfig() *Config {
	return &Config{
		Telegram: TelegramConfig{Token: "123:abc"},
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("run mode = %q, want longpoll default", cfg.Telegram.RunMode)
	}
	if cfg.Health.Port != 3000 {
		t.Errorf("health port = %d, want 3000 default", cfg.Health.Port)
	}
	if cfg.Database.Enabled() {
		t.Error("empty host must leave the archive disabled")
	}
}

func TestNormalizeRejectsMissingToken(t *testing.T) {
	if err := Normalize(&Config{}); err == nil {
		t.Fatal("expected error for missing telegram token")
	}
}

func TestNormalizeWebhookRequiresListener(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = RunModeWebhook
	cfg.Webhook.URL = "https://bot.example.com/hook"
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error for webhook mode without listen/port")
	}

	cfg.Webhook.Listen = "0.0.0.0"
	cfg.Webhook.Port = 8443
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
}

func TestNormalizePollingAlias(t *testing.T) {
	cfg := validConfig()
	cfg.Telegram.RunMode = "polling"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("run mode = %q, want alias resolved to longpoll", cfg.Telegram.RunMode)
	}
}

func TestNormalizeDatabaseDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Host = "localhost"
	cfg.Database.User = "smashbot"
	cfg.Database.Name = "smashbot"
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Database.Port != "5432" || cfg.Database.SSLMode != "disable" || cfg.Database.MaxConnections != 4 {
		t.Errorf("database defaults not applied: %+v", cfg.Database)
	}

	cfg.Database.User = ""
	if err := Normalize(cfg); err == nil {
		t.Fatal("expected error when database.host is set without user")
	}
}
