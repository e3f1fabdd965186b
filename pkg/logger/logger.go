package logger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithComponent(name string) Logger
}

type Opts struct {
	Env       string
	SentryDSN string
}

type Impl struct {
	sl *slog.Logger
}

func New(opts Opts) *Impl {
	var zl zerolog.Logger
	if opts.Env == "production" {
		zl = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	level := slog.LevelDebug
	if opts.Env == "production" {
		level = slog.LevelInfo
	}

	handler := slog.Handler(slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler())

	if opts.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryDSN,
			Environment: opts.Env,
		})
		if err != nil {
			zl.Warn().Err(err).Msg("Failed to initialize sentry, errors will only be logged locally")
		} else {
			handler = slogmulti.Fanout(
				handler,
				slogsentry.Option{Level: slog.LevelError}.NewSentryHandler(),
			)
		}
	}

	return &Impl{sl: slog.New(handler)}
}

var _ Logger = (*Impl)(nil)

func (i *Impl) Debug(msg string, args ...any) {
	i.sl.Debug(msg, args...)
}

func (i *Impl) Info(msg string, args ...any) {
	i.sl.Info(msg, args...)
}

func (i *Impl) Warn(msg string, args ...any) {
	i.sl.Warn(msg, args...)
}

func (i *Impl) Error(msg string, args ...any) {
	i.sl.Error(msg, args...)
}

func (i *Impl) WithComponent(name string) Logger {
	return &Impl{sl: i.sl.With("component", name)}
}

// Printf lets the Impl double as an fx.Printer for framework logs.
func (i *Impl) Printf(format string, args ...any) {
	i.sl.Debug(fmt.Sprintf(format, args...))
}
