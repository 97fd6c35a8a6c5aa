package account

import "time"

// Account is the single identity record. PasswordHash is empty for
// Google-only accounts, GoogleID is empty for password-only accounts;
// both are set after linking. At least one of the two is always present.
type Account struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	GoogleID     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
