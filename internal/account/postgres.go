package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/datharnu/povBackend/internal/db"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	db *db.DB
}

func NewPostgresRepository(db *db.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, fullname, email, password_hash, google_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)

	return scanAccount(row)
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, fullname, email, password_hash, google_id, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`, email)

	return scanAccount(row)
}

func (r *PostgresRepository) Create(ctx context.Context, a *Account) (*Account, error) {
	var id uuid.UUID

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (fullname, email, password_hash, google_id)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''))
		RETURNING id, created_at, updated_at
	`,
		a.FullName,
		a.Email,
		a.PasswordHash,
		a.GoogleID,
	).Scan(&id, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		return nil, translateError(err)
	}

	a.ID = id.String()
	return a, nil
}

func (r *PostgresRepository) Save(ctx context.Context, a *Account) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE users
		SET fullname = $2,
		    password_hash = NULLIF($3, ''),
		    google_id = NULLIF($4, ''),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`,
		a.ID,
		a.FullName,
		a.PasswordHash,
		a.GoogleID,
	).Scan(&a.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return translateError(err)
	}

	return nil
}

func scanAccount(row *sql.Row) (*Account, error) {
	var (
		a            Account
		id           uuid.UUID
		passwordHash sql.NullString
		googleID     sql.NullString
	)

	err := row.Scan(&id, &a.FullName, &a.Email, &passwordHash, &googleID, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("account: scan: %w", err)
	}

	a.ID = id.String()
	a.PasswordHash = passwordHash.String
	a.GoogleID = googleID.String

	return &a, nil
}

// translateError maps unique-index violations onto the repository
// sentinels by constraint name.
func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		switch pqErr.Constraint {
		case "users_email_lower_unique":
			return ErrDuplicateEmail
		case "users_google_id_unique":
			return ErrDuplicateGoogleID
		}
	}
	return fmt.Errorf("account: sql request: %w", err)
}
