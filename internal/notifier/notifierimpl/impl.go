package notifierimpl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
	"github.com/bizbuddy/idea-pipeline/internal/notifier"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/account"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/idea"
	"github.com/bizbuddy/idea-pipeline/internal/telegram"
	"github.com/bizbuddy/idea-pipeline/pkg/config"
	"github.com/bizbuddy/idea-pipeline/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	IdeaRepo    idea.Repository
	AccountRepo account.Repository
	Telegram    telegram.Client
	Logger      logger.Logger
	Config      *config.Config
}

type NotifierImpl struct {
	IdeaRepo    idea.Repository
	AccountRepo account.Repository
	Telegram    telegram.Client
	Logger      logger.Logger
	Config      *config.Config

	scheduler gocron.Scheduler
}

func New(opts Opts) *NotifierImpl {
	return &NotifierImpl{
		IdeaRepo:    opts.IdeaRepo,
		AccountRepo: opts.AccountRepo,
		Telegram:    opts.Telegram,
		Logger:      opts.Logger.WithComponent("Notifier"),
		Config:      opts.Config,
	}
}

var _ notifier.Client = (*NotifierImpl)(nil)

// ScheduleDigest sets up a daily job that sends a digest of the posts
// scheduled in the configured window. Read-only: the job never mutates
// ideas.
func (n *NotifierImpl) ScheduleDigest(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.Local))
	if err != nil {
		return fmt.Errorf("failed to create digest scheduler: %w", err)
	}
	n.scheduler = scheduler

	_, err = scheduler.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(gocron.NewAtTime(uint(n.Config.Scheduler.DigestHour), 0, 0)),
		),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				n.Logger.Info("Context cancelled, stopping digest job")
				return
			}

			digestCtx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()

			if err := n.sendDigest(digestCtx); err != nil {
				n.Logger.Error("Failed to send upcoming posts digest", "error", err)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule digest job: %w", err)
	}

	scheduler.Start()
	n.Logger.Info("Scheduled daily upcoming posts digest", "hour", n.Config.Scheduler.DigestHour)
	return nil
}

// Shutdown stops the underlying scheduler.
func (n *NotifierImpl) Shutdown() error {
	if n.scheduler == nil {
		return nil
	}
	return n.scheduler.Shutdown()
}

func (n *NotifierImpl) sendDigest(ctx context.Context) error {
	from := time.Now()
	to := from.AddDate(0, 0, n.Config.Scheduler.DigestWindowDays)

	ideas, err := n.IdeaRepo.ListScheduledBetween(ctx, from, to)
	if err != nil {
		return fmt.Errorf("list upcoming ideas: %w", err)
	}
	if len(ideas) == 0 {
		n.Logger.Info("No upcoming posts in digest window")
		return nil
	}

	names := n.accountNames(ctx)
	return n.Telegram.SendToChannel(formatDigest(ideas, names, to))
}

func (n *NotifierImpl) accountNames(ctx context.Context) map[int64]string {
	names := make(map[int64]string)
	accounts, err := n.AccountRepo.List(ctx)
	if err != nil {
		n.Logger.Warn("Failed to load account names for digest", "error", err)
		return names
	}
	for _, a := range accounts {
		names[a.ID] = a.Name
	}
	return names
}

func formatDigest(ideas []*domain.PostIdea, names map[int64]string, until time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Upcoming posts through %s:\n", until.Format("Mon Jan 2"))

	for _, i := range ideas {
		name := names[i.AccountID]
		if name == "" {
			name = fmt.Sprintf("account %d", i.AccountID)
		}
		caption := i.Caption
		if len(caption) > 50 {
			caption = caption[:50] + "..."
		}
		fmt.Fprintf(&sb, "- %s | %s | %s: %s\n",
			i.ScheduledDate.Format("2006-01-02"), name, i.PostType, caption)
	}

	return sb.String()
}
