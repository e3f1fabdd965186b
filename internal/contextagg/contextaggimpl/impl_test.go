package contextaggimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bizbuddy/idea-pipeline/internal/contextagg"
	"github.com/bizbuddy/idea-pipeline/internal/domain"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/account"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/concept"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/idea/mocks"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/insight"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/inspiration"
	"github.com/bizbuddy/idea-pipeline/pkg/config"
	"github.com/bizbuddy/idea-pipeline/pkg/logger"
	"go.uber.org/mock/gomock"
)

type fakeAccountRepo struct {
	account *domain.Account
	err     error
}

func (f *fakeAccountRepo) GetByID(context.Context, int64) (*domain.Account, error) {
	return f.account, f.err
}

func (f *fakeAccountRepo) List(context.Context) ([]*domain.Account, error) {
	return nil, nil
}

type fakeInspirationRepo struct {
	inspiration *domain.Inspiration
	err         error
}

func (f *fakeInspirationRepo) LatestByAccount(context.Context, int64) (*domain.Inspiration, error) {
	return f.inspiration, f.err
}

func (f *fakeInspirationRepo) Create(context.Context, domain.Inspiration) error {
	return nil
}

type fakeInsightRepo struct {
	insight *domain.Insight
	err     error
}

func (f *fakeInsightRepo) LatestByAccount(context.Context, int64) (*domain.Insight, error) {
	return f.insight, f.err
}

type fakeConceptRepo struct {
	concept *domain.Concept
	err     error
}

func (f *fakeConceptRepo) LatestByAccount(context.Context, int64) (*domain.Concept, error) {
	return f.concept, f.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Scheduler.PastIdeasLimit = 5
	return cfg
}

func TestBuildAllSourcesEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	ideaRepo := mocks.NewMockRepository(ctrl)
	ideaRepo.EXPECT().RecentSummaries(gomock.Any(), int64(7), 5).Return(nil, nil)

	agg := New(Opts{
		AccountRepo:     &fakeAccountRepo{err: account.ErrNotFound},
		IdeaRepo:        ideaRepo,
		InspirationRepo: &fakeInspirationRepo{err: inspiration.ErrNotFound},
		InsightRepo:     &fakeInsightRepo{err: insight.ErrNotFound},
		ConceptRepo:     &fakeConceptRepo{err: concept.ErrNotFound},
		Logger:          logger.New(logger.Opts{}),
		Config:          testConfig(),
	})

	bundle, err := agg.Build(context.Background(), 7, "")
	if err != nil {
		t.Fatalf("build must not fail on missing sources: %v", err)
	}

	if bundle.Strategy != contextagg.NoStrategy {
		t.Errorf("strategy: got %q", bundle.Strategy)
	}
	if bundle.PastPosts != contextagg.NoPastPosts {
		t.Errorf("past posts: got %q", bundle.PastPosts)
	}
	if bundle.Inspiration != contextagg.NoInspiration {
		t.Errorf("inspiration: got %q", bundle.Inspiration)
	}
	if bundle.PastIdeas != contextagg.NoPastIdeas {
		t.Errorf("past ideas: got %q", bundle.PastIdeas)
	}
	if bundle.Insights != contextagg.NoInsights {
		t.Errorf("insights: got %q", bundle.Insights)
	}
}

func TestBuildSourceErrorsDegradeToPlaceholders(t *testing.T) {
	ctrl := gomock.NewController(t)
	ideaRepo := mocks.NewMockRepository(ctrl)
	ideaRepo.EXPECT().RecentSummaries(gomock.Any(), int64(7), 5).
		Return(nil, errors.New("connection refused"))

	agg := New(Opts{
		AccountRepo:     &fakeAccountRepo{err: errors.New("connection refused")},
		IdeaRepo:        ideaRepo,
		InspirationRepo: &fakeInspirationRepo{err: errors.New("connection refused")},
		InsightRepo:     &fakeInsightRepo{err: errors.New("connection refused")},
		ConceptRepo:     &fakeConceptRepo{err: errors.New("connection refused")},
		Logger:          logger.New(logger.Opts{}),
		Config:          testConfig(),
	})

	bundle, err := agg.Build(context.Background(), 7, "summer campaign")
	if err != nil {
		t.Fatalf("build must absorb source errors: %v", err)
	}
	if bundle.Strategy != contextagg.NoStrategy || bundle.Insights != contextagg.NoInsights {
		t.Errorf("expected placeholders, got %+v", bundle)
	}
	if bundle.UserContext != "summer campaign" {
		t.Errorf("user context: got %q", bundle.UserContext)
	}
}

func TestBuildFormatsPopulatedSources(t *testing.T) {
	ctrl := gomock.NewController(t)
	ideaRepo := mocks.NewMockRepository(ctrl)
	ideaRepo.EXPECT().RecentSummaries(gomock.Any(), int64(7), 5).
		Return([]string{"Lake view reel", "Gym tour story"}, nil)

	now := time.Now()
	agg := New(Opts{
		AccountRepo: &fakeAccountRepo{account: &domain.Account{
			ID:       7,
			Name:     "The Harborview",
			Strategy: "Post 3x/week about the lake.",
		}},
		IdeaRepo: ideaRepo,
		InspirationRepo: &fakeInspirationRepo{inspiration: &domain.Inspiration{
			AccountID:     7,
			PostStructure: "Short hooks",
			PostIdeas:     "Sunset timelapses",
			UpdateDate:    now,
		}},
		InsightRepo: &fakeInsightRepo{insight: &domain.Insight{
			AccountID:  7,
			Notes:      "Reels outperform static posts 3:1.",
			UpdateDate: now,
		}},
		ConceptRepo: &fakeConceptRepo{concept: &domain.Concept{
			AccountID:  7,
			PastIdeas:  "Room tours; staff interviews",
			UpdateDate: now,
		}},
		Logger: logger.New(logger.Opts{}),
		Config: testConfig(),
	})

	bundle, err := agg.Build(context.Background(), 7, "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if bundle.Strategy != "Post 3x/week about the lake." {
		t.Errorf("strategy: got %q", bundle.Strategy)
	}
	if want := "1. Lake view reel\n2. Gym tour story"; bundle.PastPosts != want {
		t.Errorf("past posts: got %q, want %q", bundle.PastPosts, want)
	}
	if want := "Post structure: Short hooks. Post ideas: Sunset timelapses."; bundle.Inspiration != want {
		t.Errorf("inspiration: got %q, want %q", bundle.Inspiration, want)
	}
	if bundle.PastIdeas != "Room tours; staff interviews" {
		t.Errorf("past ideas: got %q", bundle.PastIdeas)
	}
	if bundle.Insights != "Reels outperform static posts 3:1." {
		t.Errorf("insights: got %q", bundle.Insights)
	}
}
