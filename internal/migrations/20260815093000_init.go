package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upInit, downInit)
}

func upInit(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	CREATE TABLE accounts (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR NOT NULL,
		strategy TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);

	CREATE TABLE account_inspiration (
		id BIGSERIAL PRIMARY KEY,
		account_id BIGINT NOT NULL REFERENCES accounts (id),
		post_structure TEXT NOT NULL DEFAULT '',
		post_ideas TEXT NOT NULL DEFAULT '',
		update_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);

	CREATE TABLE account_insights (
		id BIGSERIAL PRIMARY KEY,
		account_id BIGINT NOT NULL REFERENCES accounts (id),
		notes TEXT NOT NULL DEFAULT '',
		update_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);

	CREATE TABLE account_past_concepts (
		id BIGSERIAL PRIMARY KEY,
		account_id BIGINT NOT NULL REFERENCES accounts (id),
		past_ideas TEXT NOT NULL DEFAULT '',
		update_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);
	`)
	if err != nil {
		return err
	}
	return nil
}

func downInit(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `
	DROP TABLE account_past_concepts;
	DROP TABLE account_insights;
	DROP TABLE account_inspiration;
	DROP TABLE accounts;
	`)
	if err != nil {
		return err
	}
	return nil
}
