package generatorimpl

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizbuddy/idea-pipeline/internal/contextagg"
	"github.com/bizbuddy/idea-pipeline/internal/domain"
	"github.com/bizbuddy/idea-pipeline/internal/generator"
	"github.com/bizbuddy/idea-pipeline/internal/repositories/idea"
	"github.com/bizbuddy/idea-pipeline/pkg/config"
	"github.com/bizbuddy/idea-pipeline/pkg/llm"
	"github.com/bizbuddy/idea-pipeline/pkg/logger"
	"github.com/bizbuddy/idea-pipeline/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	LLM      llm.Client
	Context  contextagg.Client
	IdeaRepo idea.Repository
	Logger   logger.Logger
	Config   *config.Config
}

type GeneratorImpl struct {
	LLM      llm.Client
	Context  contextagg.Client
	IdeaRepo idea.Repository
	Logger   logger.Logger
	Config   *config.Config
}

func New(opts Opts) *GeneratorImpl {
	return &GeneratorImpl{
		LLM:      opts.LLM,
		Context:  opts.Context,
		IdeaRepo: opts.IdeaRepo,
		Logger:   opts.Logger.WithComponent("IdeaGenerator"),
		Config:   opts.Config,
	}
}

var _ generator.Client = (*GeneratorImpl)(nil)

// retryableErr keeps transient transport failures retryable and marks
// non-recoverable API rejections permanent.
func retryableErr(err error) error {
	var apiErr *llm.APIError
	if errors.As(err, &apiErr) && !apiErr.Temporary() {
		return retry.Permanent(err)
	}
	return err
}

// Generate makes exactly one logical model call (transient transport
// failures are retried with backoff) and fails closed on an unparsable
// reply. Scheduling metadata is attached only after the reply parses.
func (g *GeneratorImpl) Generate(ctx context.Context, accountID int64, userContext string) (domain.PostIdea, error) {
	bundle, err := g.Context.Build(ctx, accountID, userContext)
	if err != nil {
		return domain.PostIdea{}, fmt.Errorf("build context: %w", err)
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: buildPrompt(bundle)},
	}

	var reply string
	err = retry.Do(ctx, g.Logger, "generate post idea", func() error {
		var completeErr error
		reply, completeErr = g.LLM.Complete(ctx, messages, g.Config.OpenAI.GenerateTemp)
		return retryableErr(completeErr)
	}, retry.DefaultConfig())
	if err != nil {
		return domain.PostIdea{}, fmt.Errorf("model completion: %w", err)
	}

	content, err := generator.ParseReply(reply)
	if err != nil {
		g.Logger.Warn("Discarding unparsable model reply", "account_id", accountID, "error", err)
		return domain.PostIdea{}, err
	}

	scheduledDate, err := g.IdeaRepo.NextScheduledDate(ctx, accountID)
	if err != nil {
		return domain.PostIdea{}, fmt.Errorf("compute next scheduled date: %w", err)
	}

	return domain.PostIdea{
		AccountID:     accountID,
		ScheduledDate: scheduledDate,
		IdeaContent:   content,
		Source:        domain.SourceModel,
	}, nil
}
