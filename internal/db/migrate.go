package db

import (
	"context"
	"database/sql"
)

// Uniqueness lives in the storage layer: concurrent signups with the
// same email race past the application-level lookup and are resolved
// here, at the unique index.
const usersMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    fullname text NOT NULL,
    email text NOT NULL,
    password_hash text,
    google_id text,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW(),
    CONSTRAINT users_credential_present
        CHECK (password_hash IS NOT NULL OR google_id IS NOT NULL)
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_unique
ON users (LOWER(email));

CREATE UNIQUE INDEX IF NOT EXISTS users_google_id_unique
ON users (google_id)
WHERE google_id IS NOT NULL;
`

func RunMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, usersMigration)
	return err
}
