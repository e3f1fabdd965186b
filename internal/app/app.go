package app

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"

	"github.com/bizbuddy/idea-pipeline/internal/contextagg"
	"github.com/bizbuddy/idea-pipeline/internal/contextagg/contextaggimpl"
	"github.com/bizbuddy/idea-pipeline/internal/generator"
	"github.com/bizbuddy/idea-pipeline/internal/generator/generatorimpl"
	_ "github.com/bizbuddy/idea-pipeline/internal/migrations"
	"github.com/bizbuddy/idea-pipeline/internal/notifier"
	"github.com/bizbuddy/idea-pipeline/internal/notifier/notifierimpl"
	"github.com/bizbuddy/idea-pipeline/internal/pgx"
	"github.com/bizbuddy/idea-pipeline/internal/ratelimit"
	repositories "github.com/bizbuddy/idea-pipeline/internal/repositories/fx"
	"github.com/bizbuddy/idea-pipeline/internal/reviser"
	"github.com/bizbuddy/idea-pipeline/internal/reviser/reviserimpl"
	"github.com/bizbuddy/idea-pipeline/internal/server"
	"github.com/bizbuddy/idea-pipeline/internal/telegram"
	"github.com/bizbuddy/idea-pipeline/internal/telegram/telegramimpl"
	"github.com/bizbuddy/idea-pipeline/pkg/config"
	"github.com/bizbuddy/idea-pipeline/pkg/llm"
	"github.com/bizbuddy/idea-pipeline/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
		ratelimit.New,
		newLLMClient,
		server.New,
	),
	fx.Provide(
		fx.Annotate(
			contextaggimpl.New,
			fx.As(new(contextagg.Client)),
		),
		fx.Annotate(
			generatorimpl.New,
			fx.As(new(generator.Client)),
		),
		fx.Annotate(
			reviserimpl.New,
			fx.As(new(reviser.Client)),
		),
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		),
		fx.Annotate(
			notifierimpl.New,
			fx.As(new(notifier.Client)),
		),
	),
	repositories.Module,
	fx.Invoke(migrate),
	fx.Invoke(server.Run),
	fx.Invoke(runDigest),
)

func newLLMClient(cfg *config.Config) llm.Client {
	return llm.NewOpenAI(llm.Config{
		APIURL:  cfg.OpenAI.ApiUrl,
		APIKey:  cfg.OpenAI.ApiKey,
		Model:   cfg.OpenAI.Model,
		Timeout: time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second,
	})
}

// migrate applies the registered schema migrations before anything else
// touches the database.
func migrate(cfg *config.Config, log logger.Logger) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := goose.Up(db, "."); err != nil {
		return err
	}

	log.Info("Database migrations applied")
	return nil
}

func runDigest(lc fx.Lifecycle, n notifier.Client, log logger.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return n.ScheduleDigest(ctx)
		},
		OnStop: func(context.Context) error {
			cancel()
			if err := n.Shutdown(); err != nil {
				log.Error("Failed to stop digest scheduler", "error", err)
			}
			return nil
		},
	})
}
