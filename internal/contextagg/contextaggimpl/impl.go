package contextaggimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/bizbuddy/idea-pipeline/internal/contextagg"
	"github.com/bizbuddy/idea-pipeline/internal/domain"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/account"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/concept"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/idea"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/insight"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/inspiration"
	"github.com/bizbuddy/idea-pipeline/pkg/config"
	"github.com/bizbuddy/idea-pipeline/pkg/logger"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type Opts struct {
	fx.In

	AccountRepo     account.Repository
	IdeaRepo        idea.Repository
	InspirationRepo inspiration.Repository
	InsightRepo     insight.Repository
	ConceptRepo     concept.Repository
	Logger          logger.Logger
	Config          *config.Config
}

type AggregatorImpl struct {
	AccountRepo     account.Repository
	IdeaRepo        idea.Repository
	InspirationRepo inspiration.Repository
	InsightRepo     insight.Repository
	ConceptRepo     concept.Repository
	Logger          logger.Logger
	Config          *config.Config
}

func New(opts Opts) *AggregatorImpl {
	return &AggregatorImpl{
		AccountRepo:     opts.AccountRepo,
		IdeaRepo:        opts.IdeaRepo,
		InspirationRepo: opts.InspirationRepo,
		InsightRepo:     opts.InsightRepo,
		ConceptRepo:     opts.ConceptRepo,
		Logger:          opts.Logger.WithComponent("ContextAggregator"),
		Config:          opts.Config,
	}
}

var _ contextagg.Client = (*AggregatorImpl)(nil)

// Build fetches the five context sources concurrently. The sources are
// independent and order-insensitive; a failed or empty source becomes its
// placeholder sentence rather than an error.
func (a *AggregatorImpl) Build(ctx context.Context, accountID int64, userContext string) (domain.ContextBundle, error) {
	bundle := domain.ContextBundle{UserContext: strings.TrimSpace(userContext)}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		bundle.Strategy = a.fetchStrategy(gctx, accountID)
		return nil
	})
	g.Go(func() error {
		bundle.PastPosts = a.fetchPastPosts(gctx, accountID)
		return nil
	})
	g.Go(func() error {
		bundle.Inspiration = a.fetchInspiration(gctx, accountID)
		return nil
	})
	g.Go(func() error {
		bundle.PastIdeas = a.fetchPastIdeas(gctx, accountID)
		return nil
	})
	g.Go(func() error {
		bundle.Insights = a.fetchInsights(gctx, accountID)
		return nil
	})

	// The goroutines absorb their own errors; Wait only synchronizes.
	if err := g.Wait(); err != nil {
		return domain.ContextBundle{}, err
	}

	return bundle, nil
}

func (a *AggregatorImpl) fetchStrategy(ctx context.Context, accountID int64) string {
	acc, err := a.AccountRepo.GetByID(ctx, accountID)
	if err != nil {
		a.warnMissing("strategy", accountID, err)
		return contextagg.NoStrategy
	}
	if strings.TrimSpace(acc.Strategy) == "" {
		return contextagg.NoStrategy
	}
	return acc.Strategy
}

func (a *AggregatorImpl) fetchPastPosts(ctx context.Context, accountID int64) string {
	summaries, err := a.IdeaRepo.RecentSummaries(ctx, accountID, a.Config.Scheduler.PastIdeasLimit)
	if err != nil {
		a.warnMissing("past posts", accountID, err)
		return contextagg.NoPastPosts
	}
	if len(summaries) == 0 {
		return contextagg.NoPastPosts
	}

	lines := make([]string, 0, len(summaries))
	for i, s := range summaries {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, s))
	}
	return strings.Join(lines, "\n")
}

func (a *AggregatorImpl) fetchInspiration(ctx context.Context, accountID int64) string {
	insp, err := a.InspirationRepo.LatestByAccount(ctx, accountID)
	if err != nil {
		a.warnMissing("inspiration", accountID, err)
		return contextagg.NoInspiration
	}
	return fmt.Sprintf("Post structure: %s. Post ideas: %s.", insp.PostStructure, insp.PostIdeas)
}

func (a *AggregatorImpl) fetchPastIdeas(ctx context.Context, accountID int64) string {
	c, err := a.ConceptRepo.LatestByAccount(ctx, accountID)
	if err != nil {
		a.warnMissing("past ideas", accountID, err)
		return contextagg.NoPastIdeas
	}
	return c.PastIdeas
}

func (a *AggregatorImpl) fetchInsights(ctx context.Context, accountID int64) string {
	ins, err := a.InsightRepo.LatestByAccount(ctx, accountID)
	if err != nil {
		a.warnMissing("insights", accountID, err)
		return contextagg.NoInsights
	}
	return ins.Notes
}

func (a *AggregatorImpl) warnMissing(source string, accountID int64, err error) {
	a.Logger.Warn("Context source unavailable, using placeholder",
		"source", source,
		"account_id", accountID,
		"error", err,
	)
}
