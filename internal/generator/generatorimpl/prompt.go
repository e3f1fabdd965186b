package generatorimpl

import (
	"fmt"
	"strings"

	"github.com/bizbuddy/idea-pipeline/internal/domain"
	"github.com/bizbuddy/idea-pipeline/internal/generator"
)

const systemPrompt = "You are an experienced social media manager with expertise in creating engaging content."

// buildPrompt embeds every context field in a fixed, labeled structure and
// instructs the model to answer with a single JSON object using the exact
// key set of the reply contract.
func buildPrompt(b domain.ContextBundle) string {
	var sb strings.Builder

	sb.WriteString("You are a social media manager creating a post for an Instagram account based on the following context:\n\n")
	fmt.Fprintf(&sb, "** Here is their Social Media Strategy:** %s\n\n", b.Strategy)
	fmt.Fprintf(&sb, "** Here is past posts themes and types. Try to recommend similar ideas but avoid direct overlap:**\n%s\n\n", b.PastPosts)
	fmt.Fprintf(&sb, "** Here is ideas about post structure / ideas that the user finds inspirational, factor this in:**\n%s\n\n", b.Inspiration)
	fmt.Fprintf(&sb, "** Here are the Past Post Ideas, don't recommend the same things:**\n%s\n\n", b.PastIdeas)
	fmt.Fprintf(&sb, "** Here is some Account Insights about what types of ideas and concepts have worked well for this account in the past. This should be weighted heavily as you decide which post to suggest:**\n%s\n\n", b.Insights)

	if b.UserContext != "" {
		fmt.Fprintf(&sb, "**Additional user-provided context for this post:** %s\n\n", b.UserContext)
	}

	sb.WriteString("**Generate 1 new post idea** based on this context. Ensure the idea aligns with the strategy but also introduces a mix of concepts.\n")
	sb.WriteString("Each idea should include:\n")
	sb.WriteString("- **summary** - (e.g., Summarize this post)\n")
	sb.WriteString("- **caption**\n")
	sb.WriteString("- **post_type** (e.g., Reel, Story, Static Post)\n")
	sb.WriteString("- **themes**\n")
	sb.WriteString("- **tone**\n")
	fmt.Fprintf(&sb, "**Output the response as a JSON object** with the **exact** keys: %s.", generator.ReplyKeys)

	return sb.String()
}
