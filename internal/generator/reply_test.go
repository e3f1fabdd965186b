package generator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
)

func TestParseReplyHappyPath(t *testing.T) {
	t.Parallel()

	raw := `Sure! {"summary":"A","caption":"B","post_type":"Reel","themes":["x"],"tone":["casual"]} Hope that helps!`

	content, err := ParseReply(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if content.Summary != "A" || content.Caption != "B" {
		t.Errorf("unexpected content %+v", content)
	}
	if content.PostType != domain.PostTypeReel {
		t.Errorf("post type: got %q", content.PostType)
	}
	if !reflect.DeepEqual([]string(content.Themes), []string{"x"}) {
		t.Errorf("themes: got %v", content.Themes)
	}
	if !reflect.DeepEqual([]string(content.Tone), []string{"casual"}) {
		t.Errorf("tone: got %v", content.Tone)
	}
}

func TestParseReplyNoJSON(t *testing.T) {
	t.Parallel()

	_, err := ParseReply("I think a Reel about the lake would work well.")
	if !errors.Is(err, ErrUnparsableReply) {
		t.Fatalf("expected ErrUnparsableReply, got %v", err)
	}
}

func TestParseReplyMissingRequiredKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "missing caption", raw: `{"summary":"A","post_type":"Reel","themes":[],"tone":[]}`},
		{name: "missing post_type", raw: `{"summary":"A","caption":"B","themes":[],"tone":[]}`},
		{name: "unknown post_type", raw: `{"caption":"B","post_type":"Carousel"}`},
		{name: "invalid json in span", raw: `{"caption": B}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseReply(tt.raw); !errors.Is(err, ErrUnparsableReply) {
				t.Fatalf("expected ErrUnparsableReply, got %v", err)
			}
		})
	}
}

func TestParseReplyToneAsFreeText(t *testing.T) {
	t.Parallel()

	raw := `{"summary":"A","caption":"B","post_type":"Story","themes":"wellness, community","tone":"Inspirational, Casual"}`

	content, err := ParseReply(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if want := []string{"wellness", "community"}; !reflect.DeepEqual([]string(content.Themes), want) {
		t.Errorf("themes: got %v, want %v", content.Themes, want)
	}
	if want := []string{"Inspirational", "Casual"}; !reflect.DeepEqual([]string(content.Tone), want) {
		t.Errorf("tone: got %v, want %v", content.Tone, want)
	}
}

func TestParseReplyMissingSummaryIsTolerated(t *testing.T) {
	t.Parallel()

	content, err := ParseReply(`{"caption":"B","post_type":"Reel","themes":["x"],"tone":["casual"]}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if content.Summary != "" {
		t.Errorf("summary: got %q", content.Summary)
	}
}
