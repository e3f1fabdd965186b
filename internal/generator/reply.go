package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
	"github.com/bizbuddy/idea-pipeline/pkg/jsonextract"
)

// ReplyKeys is the exact key set the model is instructed to return. The
// reviser shares this contract.
const ReplyKeys = "'summary', 'caption', 'post_type', 'themes', 'tone'"

type ideaReply struct {
	Summary  string     `json:"summary"`
	Caption  string     `json:"caption"`
	PostType string     `json:"post_type"`
	Themes   stringList `json:"themes"`
	Tone     stringList `json:"tone"`
}

// ParseReply reduces a raw model reply to idea content. The reply is
// untrusted text: only the first balanced {...} span is considered, and the
// parse fails closed when caption or post_type are absent or invalid.
func ParseReply(raw string) (domain.IdeaContent, error) {
	span, err := jsonextract.FirstObject(raw)
	if err != nil {
		return domain.IdeaContent{}, fmt.Errorf("%w: %v", ErrUnparsableReply, err)
	}

	var reply ideaReply
	if err := json.Unmarshal([]byte(span), &reply); err != nil {
		return domain.IdeaContent{}, fmt.Errorf("%w: %v", ErrUnparsableReply, err)
	}

	content := domain.IdeaContent{
		Summary:  strings.TrimSpace(reply.Summary),
		Caption:  strings.TrimSpace(reply.Caption),
		PostType: domain.PostType(strings.TrimSpace(reply.PostType)),
		Themes:   reply.Themes,
		Tone:     reply.Tone,
	}

	if content.Caption == "" {
		return domain.IdeaContent{}, fmt.Errorf("%w: missing caption", ErrUnparsableReply)
	}
	if !content.PostType.Valid() {
		return domain.IdeaContent{}, fmt.Errorf("%w: unknown post_type %q", ErrUnparsableReply, reply.PostType)
	}

	return content, nil
}

// stringList tolerates the two shapes models produce for list fields: a JSON
// array of strings or a single comma-separated string.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err == nil {
		*l = values
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}

	parts := strings.Split(single, ",")
	values = make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	*l = values
	return nil
}
