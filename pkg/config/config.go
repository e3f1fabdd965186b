package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT"`
		Host    string `env:"POSTGRES_HOST"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	OpenAI struct {
		ApiKey         string  `env:"OPENAI_API_KEY"`
		ApiUrl         string  `env:"OPENAI_API_URL" env-default:"https://api.openai.com/v1"`
		Model          string  `env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
		GenerateTemp   float64 `env:"OPENAI_GENERATE_TEMPERATURE" env-default:"1.1"`
		TweakTemp      float64 `env:"OPENAI_TWEAK_TEMPERATURE" env-default:"1.0"`
		TimeoutSeconds int     `env:"OPENAI_TIMEOUT_SECONDS" env-default:"60"`
	}
	Scheduler struct {
		PostIntervalDays int `env:"SCHEDULER_POST_INTERVAL_DAYS" env-default:"3"`
		PastIdeasLimit   int `env:"SCHEDULER_PAST_IDEAS_LIMIT" env-default:"5"`
		DigestHour       int `env:"SCHEDULER_DIGEST_HOUR" env-default:"9"`
		DigestWindowDays int `env:"SCHEDULER_DIGEST_WINDOW_DAYS" env-default:"7"`
	}
	RateLimit struct {
		GenerationsPerMinute int `env:"RATE_LIMIT_GENERATIONS_PER_MINUTE" env-default:"2"`
		GenerationBurst      int `env:"RATE_LIMIT_GENERATION_BURST" env-default:"3"`
	}
	Telegram struct {
		Enabled bool   `env:"TELEGRAM_ENABLED" env-default:"false"`
		Token   string `env:"TELEGRAM_TOKEN"`
		Channel string `env:"TELEGRAM_CHANNEL"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// GetDSN returns the lib/pq key-value connection string for the configured
// Postgres instance.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
		c.Postgres.Name, c.Postgres.User, c.Postgres.Pass,
		c.Postgres.Host, c.Postgres.Port, c.Postgres.SslMode,
	)
}
