package reviserimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
	"github.com/bizbuddy/idea-pipeline/internal/generator"
	"github.com/bizbuddy/idea-pipeline/internal/reviser"
	"github.com/bizbuddy/idea-pipeline/pkg/config"
	"github.com/bizbuddy/idea-pipeline/pkg/llm"
	"github.com/bizbuddy/idea-pipeline/pkg/logger"
	"github.com/bizbuddy/idea-pipeline/pkg/retry"
	"go.uber.org/fx"
)

const systemPrompt = "You are a social media manager refining an Instagram post based on user input."

type Opts struct {
	fx.In

	LLM    llm.Client
	Logger logger.Logger
	Config *config.Config
}

type ReviserImpl struct {
	LLM    llm.Client
	Logger logger.Logger
	Config *config.Config
}

func New(opts Opts) *ReviserImpl {
	return &ReviserImpl{
		LLM:    opts.LLM,
		Logger: opts.Logger.WithComponent("IdeaReviser"),
		Config: opts.Config,
	}
}

var _ reviser.Client = (*ReviserImpl)(nil)

// Revise validates the feedback before any I/O, then runs the same
// extract/parse contract as generation at the lower tweak temperature.
func (r *ReviserImpl) Revise(ctx context.Context, content domain.IdeaContent, feedback string) (domain.IdeaContent, error) {
	if strings.TrimSpace(feedback) == "" {
		return domain.IdeaContent{}, reviser.ErrEmptyFeedback
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: buildPrompt(content, feedback)},
	}

	var reply string
	err := retry.Do(ctx, r.Logger, "tweak post idea", func() error {
		var completeErr error
		reply, completeErr = r.LLM.Complete(ctx, messages, r.Config.OpenAI.TweakTemp)
		var apiErr *llm.APIError
		if errors.As(completeErr, &apiErr) && !apiErr.Temporary() {
			return retry.Permanent(completeErr)
		}
		return completeErr
	}, retry.DefaultConfig())
	if err != nil {
		return domain.IdeaContent{}, fmt.Errorf("model completion: %w", err)
	}

	revised, err := generator.ParseReply(reply)
	if err != nil {
		r.Logger.Warn("Discarding unparsable tweak reply", "error", err)
		return domain.IdeaContent{}, err
	}

	return revised, nil
}

// buildPrompt includes the original content verbatim so the model retains
// the post's core structure while applying the requested changes.
func buildPrompt(content domain.IdeaContent, feedback string) string {
	var sb strings.Builder

	sb.WriteString("You are a social media manager improving an existing Instagram post based on user feedback.\n\n")
	sb.WriteString("**Here is the original post:**\n")
	fmt.Fprintf(&sb, "Post Summary: %s\n", content.Summary)
	fmt.Fprintf(&sb, "Caption: %s\n", content.Caption)
	fmt.Fprintf(&sb, "Post Type: %s\n", content.PostType)
	fmt.Fprintf(&sb, "Themes: %s\n", strings.Join(content.Themes, ", "))
	fmt.Fprintf(&sb, "Tone: %s\n\n", strings.Join(content.Tone, ", "))
	fmt.Fprintf(&sb, "**User Feedback on Changes:** %s\n\n", feedback)
	sb.WriteString("Please generate an improved version of this post while retaining its core structure. Ensure the updated post aligns with the requested tweaks.\n")
	fmt.Fprintf(&sb, "Return the output as a JSON object with the exact keys: %s.", generator.ReplyKeys)

	return sb.String()
}
