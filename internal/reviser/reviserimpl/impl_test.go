package reviserimpl

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
	"github.com/bizbuddy/idea-pipeline/internal/generator"
	"github.com/bizbuddy/idea-pipeline/internal/reviser"
	"github.com/bizbuddy/idea-pipeline/pkg/config"
	"github.com/bizbuddy/idea-pipeline/pkg/llm"
	"github.com/bizbuddy/idea-pipeline/pkg/logger"
)

type fakeLLM struct {
	reply        string
	calls        int
	temperatures []float64
	lastPrompt   string
}

func (f *fakeLLM) Complete(_ context.Context, messages []llm.Message, temperature float64) (string, error) {
	f.calls++
	f.temperatures = append(f.temperatures, temperature)
	for _, m := range messages {
		if m.Role == llm.RoleUser {
			f.lastPrompt = m.Content
		}
	}
	return f.reply, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.OpenAI.TweakTemp = 1.0
	return cfg
}

func existingContent() domain.IdeaContent {
	return domain.IdeaContent{
		Summary:  "Lake view reel",
		Caption:  "Wake up to this view",
		PostType: domain.PostTypeReel,
		Themes:   []string{"lake views"},
		Tone:     []string{"casual"},
	}
}

func TestReviseEmptyFeedbackRejectedBeforeModelCall(t *testing.T) {
	t.Parallel()

	for _, feedback := range []string{"", "   ", "\n\t"} {
		model := &fakeLLM{}
		r := New(Opts{LLM: model, Logger: logger.New(logger.Opts{}), Config: testConfig()})

		_, err := r.Revise(context.Background(), existingContent(), feedback)
		if !errors.Is(err, reviser.ErrEmptyFeedback) {
			t.Fatalf("feedback %q: expected ErrEmptyFeedback, got %v", feedback, err)
		}
		if model.calls != 0 {
			t.Fatalf("feedback %q: model must not be called, got %d calls", feedback, model.calls)
		}
	}
}

func TestReviseHappyPath(t *testing.T) {
	t.Parallel()

	model := &fakeLLM{
		reply: `{"summary":"Lake view reel","caption":"Wake up lakeside","post_type":"Reel","themes":["lake views"],"tone":["warm"]}`,
	}
	r := New(Opts{LLM: model, Logger: logger.New(logger.Opts{}), Config: testConfig()})

	revised, err := r.Revise(context.Background(), existingContent(), "make the caption warmer")
	if err != nil {
		t.Fatalf("revise: %v", err)
	}

	if revised.Caption != "Wake up lakeside" {
		t.Errorf("caption: got %q", revised.Caption)
	}
	if model.calls != 1 {
		t.Errorf("expected one model call, got %d", model.calls)
	}
	if model.temperatures[0] != 1.0 {
		t.Errorf("temperature: got %v", model.temperatures[0])
	}
	for _, fragment := range []string{
		"Caption: Wake up to this view",
		"make the caption warmer",
		"Themes: lake views",
	} {
		if !strings.Contains(model.lastPrompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestReviseUnparsableReplyFailsClosed(t *testing.T) {
	t.Parallel()

	model := &fakeLLM{reply: "Happy to help! Just make the caption warmer."}
	r := New(Opts{LLM: model, Logger: logger.New(logger.Opts{}), Config: testConfig()})

	_, err := r.Revise(context.Background(), existingContent(), "warmer please")
	if !errors.Is(err, generator.ErrUnparsableReply) {
		t.Fatalf("expected ErrUnparsableReply, got %v", err)
	}
}
