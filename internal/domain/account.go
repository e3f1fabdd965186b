package domain

import "time"

// Account is one managed social-media page. Strategy is the free-text
// content plan fed to the idea generator.
type Account struct {
	ID        int64
	Name      string
	Strategy  string
	CreatedAt time.Time
}

// Inspiration is the latest uploaded note about post structures and ideas
// the account owner finds inspirational.
type Inspiration struct {
	ID            int64
	AccountID     int64
	PostStructure string
	PostIdeas     string
	UpdateDate    time.Time
}

// Insight is the latest performance note for an account.
type Insight struct {
	ID         int64
	AccountID  int64
	Notes      string
	UpdateDate time.Time
}

// Concept is the latest record of past post concepts for an account.
type Concept struct {
	ID         int64
	AccountID  int64
	PastIdeas  string
	UpdateDate time.Time
}
