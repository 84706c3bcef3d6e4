package database

import (
	"context"
	"fmt"
)

type migrationStep struct {
	Name string
	SQL  string
}

var migrationSteps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id         UUID        PRIMARY KEY DEFAULT gen_random_uuid(),
  username   TEXT        NOT NULL,
  email      TEXT        NOT NULL UNIQUE,
  password   TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_ratings",
		SQL: `CREATE TABLE IF NOT EXISTS ratings (
  id         UUID        PRIMARY KEY DEFAULT gen_random_uuid(),
  rating     INTEGER     NOT NULL CHECK (rating BETWEEN 1 AND 5),
  movie_id   TEXT        NOT NULL,
  user_id    UUID        REFERENCES users (id) ON DELETE SET NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_ratings_movie_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_ratings_movie_id ON ratings (movie_id);`,
	},
}

// Migrate applies every schema step in order inside one transaction, so a
// failed step leaves the schema as it was. Steps are idempotent.
func Migrate(ctx context.Context, db PgxIface) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}

	for _, step := range migrationSteps {
		if _, err := tx.Exec(ctx, step.SQL); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}
