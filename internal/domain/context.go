package domain

// ContextBundle is the aggregated historical text fed to the idea generator
// as prompt input. Built fresh per generation call, never persisted. Fields
// that have no backing rows hold a fixed placeholder sentence instead.
type ContextBundle struct {
	Strategy    string
	PastPosts   string
	Inspiration string
	PastIdeas   string
	Insights    string
	UserContext string
}
