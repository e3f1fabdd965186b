package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upPostIdeas, downPostIdeas)
}

func upPostIdeas(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE post_ideas (
		id UUID PRIMARY KEY,
		account_id BIGINT NOT NULL REFERENCES accounts (id),
		scheduled_date DATE NOT NULL,
		summary TEXT,
		caption TEXT NOT NULL,
		post_type VARCHAR NOT NULL,
		themes TEXT NOT NULL DEFAULT '[]',
		tone TEXT NOT NULL DEFAULT '[]',
		source VARCHAR NOT NULL DEFAULT 'model',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		updated_at TIMESTAMP WITH TIME ZONE
	);

	CREATE INDEX post_ideas_account_scheduled_idx ON post_ideas (account_id, scheduled_date);
	CREATE INDEX post_ideas_scheduled_date_idx ON post_ideas (scheduled_date);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downPostIdeas(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE post_ideas;
	`)
	if err != nil {
		return err
	}
	return nil
}
