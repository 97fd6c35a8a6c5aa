package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/datharnu/povBackend/internal/account"
	"github.com/datharnu/povBackend/internal/auth/credentials"
	"github.com/datharnu/povBackend/internal/logger"
)

// emailShape is the coarse service-layer email check; the validation
// rules engine applies the strict policy upstream.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// loginGuardHash is compared against when a login fails before
// reaching the stored hash, so every rejected login pays for exactly
// one bcrypt verification and timing does not reveal which check
// rejected it.
var loginGuardHash = sync.OnceValue(func() string {
	hash, _ := credentials.HashPassword("login-guard")
	return hash
})

// IdentityVerifier validates an externally issued ID token and
// extracts its claims. Implemented by the Google provider; injected so
// tests can substitute a double.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, rawIDToken string) (*Identity, error)
}

type SignupInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Service owns the credential lifecycle: signup, login and federated
// login including the account-linking step.
type Service struct {
	repo     account.Repository
	verifier IdentityVerifier
}

func NewService(repo account.Repository, verifier IdentityVerifier) *Service {
	return &Service{repo: repo, verifier: verifier}
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (*account.Account, error) {
	// Looser re-checks of what the rules engine already enforced,
	// kept for callers that bypass the HTTP layer. The 6-character
	// minimum predates the 8-character complexity rule.
	if in.FullName == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, NewValidationError("All fields are required")
	}

	email := NormalizeEmail(in.Email)
	if !emailShape.MatchString(email) {
		return nil, NewValidationError("Invalid email format")
	}

	if len(in.Password) < 6 {
		return nil, NewValidationError("Password must be at least 6 characters long")
	}

	if in.Password != in.ConfirmPassword {
		return nil, NewValidationError("Password and confirm password do not match")
	}

	// Early rejection only; the unique index on LOWER(email) is what
	// actually decides concurrent duplicates.
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, account.ErrDuplicateEmail
	}
	if !errors.Is(err, account.ErrNotFound) {
		return nil, err
	}

	hash, err := credentials.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	acct, err := s.repo.Create(ctx, &account.Account{
		FullName:     in.FullName,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("user created", map[string]any{"user_id": acct.ID})

	return acct, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*account.Account, error) {
	if email == "" || password == "" {
		return nil, NewValidationError("Email and password are required")
	}

	acct, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			credentials.VerifyPassword(loginGuardHash(), password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// A Google-only account has no password hash; it fails the same
	// way an unknown email does, guard comparison included.
	if acct.PasswordHash == "" {
		credentials.VerifyPassword(loginGuardHash(), password)
		return nil, ErrInvalidCredentials
	}

	if !credentials.VerifyPassword(acct.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return acct, nil
}

func (s *Service) GoogleLogin(ctx context.Context, rawToken string) (*account.Account, error) {
	if rawToken == "" {
		return nil, NewValidationError("Token is required")
	}

	identity, err := s.verifier.VerifyIDToken(ctx, rawToken)
	if err != nil {
		logger.Error("google id_token verification failed", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if identity.Email == "" || identity.Name == "" {
		return nil, NewValidationError("Missing required user information")
	}

	return s.ResolveIdentity(ctx, identity)
}

// ResolveIdentity maps a verified federated identity onto an account:
// create when none exists, link when a password-only account shares
// the email, otherwise return the already-linked account unchanged.
func (s *Service) ResolveIdentity(ctx context.Context, identity *Identity) (*account.Account, error) {
	if identity == nil {
		return nil, errors.New("identity is nil")
	}

	email := NormalizeEmail(identity.Email)

	acct, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, account.ErrNotFound) {
		return s.repo.Create(ctx, &account.Account{
			FullName: identity.Name,
			Email:    email,
			GoogleID: identity.SubjectID,
		})
	}
	if err != nil {
		return nil, err
	}

	if acct.GoogleID == "" {
		acct.GoogleID = identity.SubjectID
		if err := s.repo.Save(ctx, acct); err != nil {
			return nil, err
		}

		logger.Info("linked google identity", map[string]any{"user_id": acct.ID})
		return acct, nil
	}

	if acct.GoogleID != identity.SubjectID {
		// Same email, different Google subject. The account keeps its
		// existing link; surfaced in logs only.
		logger.Warn("google subject mismatch for linked account", map[string]any{
			"user_id": acct.ID,
		})
	}

	return acct, nil
}

// NormalizeEmail applies the canonical form used for storage and
// lookups: trimmed and lowercased, dots preserved.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
