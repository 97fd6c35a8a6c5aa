package account

import (
	"context"
	"errors"
)

var (
	ErrNotFound          = errors.New("account not found")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateGoogleID = errors.New("google account already exists")
)

// Repository stores accounts. Lookups are keyed by normalized
// (lowercased) email; implementations must enforce email and google_id
// uniqueness at the storage layer, not in application logic.
type Repository interface {
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// Create persists a new account and returns it with ID and
	// timestamps assigned. Unique-constraint violations surface as
	// ErrDuplicateEmail / ErrDuplicateGoogleID.
	Create(ctx context.Context, a *Account) (*Account, error)

	// Save persists a mutation of an existing account (e.g. linking)
	// and refreshes UpdatedAt.
	Save(ctx context.Context, a *Account) error
}
