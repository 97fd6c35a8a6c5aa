package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datharnu/povBackend/internal/account"
	"github.com/datharnu/povBackend/internal/auth/credentials"
)

// --- fakes ---

// fakeRepo is a map-backed repository that emulates the storage-layer
// uniqueness constraints. hideFromLookup makes FindByEmail blind so
// the lookup-then-create race can be simulated.
type fakeRepo struct {
	accounts       map[string]*account.Account // keyed by normalized email
	saveCalls      int
	hideFromLookup bool
	nextID         int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{accounts: map[string]*account.Account{}}
}

func (f *fakeRepo) FindByID(ctx context.Context, id string) (*account.Account, error) {
	for _, a := range f.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, account.ErrNotFound
}

func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	if f.hideFromLookup {
		return nil, account.ErrNotFound
	}
	a, ok := f.accounts[strings.ToLower(email)]
	if !ok {
		return nil, account.ErrNotFound
	}
	return a, nil
}

func (f *fakeRepo) Create(ctx context.Context, a *account.Account) (*account.Account, error) {
	key := strings.ToLower(a.Email)
	if _, ok := f.accounts[key]; ok {
		return nil, account.ErrDuplicateEmail
	}
	if a.GoogleID != "" {
		for _, existing := range f.accounts {
			if existing.GoogleID == a.GoogleID {
				return nil, account.ErrDuplicateGoogleID
			}
		}
	}

	f.nextID++
	a.ID = fmt.Sprintf("acct-%d", f.nextID)
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	f.accounts[key] = a

	return a, nil
}

func (f *fakeRepo) Save(ctx context.Context, a *account.Account) error {
	f.saveCalls++
	for key, existing := range f.accounts {
		if existing.ID == a.ID {
			a.UpdatedAt = time.Now()
			f.accounts[key] = a
			return nil
		}
	}
	return account.ErrNotFound
}

type fakeVerifier struct {
	identity *Identity
	err      error
}

func (f *fakeVerifier) VerifyIDToken(ctx context.Context, rawIDToken string) (*Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}

func validSignup() SignupInput {
	return SignupInput{
		FullName:        "Jane Doe",
		Email:           "Jane@Test.com",
		Password:        "Abcdef1!",
		ConfirmPassword: "Abcdef1!",
	}
}

// --- signup ---

func TestSignup(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeVerifier{})

	acct, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	assert.NotEmpty(t, acct.ID)
	assert.Equal(t, "Jane Doe", acct.FullName)
	assert.Equal(t, "jane@test.com", acct.Email)
	assert.Empty(t, acct.GoogleID)
	assert.True(t, credentials.VerifyPassword(acct.PasswordHash, "Abcdef1!"))
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeVerifier{})

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	// same email, different casing and other fields
	in := validSignup()
	in.Email = "JANE@test.com"
	in.FullName = "Someone Else"

	_, err = svc.Signup(context.Background(), in)
	assert.ErrorIs(t, err, account.ErrDuplicateEmail)
}

func TestSignupDuplicateRace(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeVerifier{})

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	// the concurrent writer won the race after our lookup; the storage
	// constraint still produces the duplicate error
	repo.hideFromLookup = true

	_, err = svc.Signup(context.Background(), validSignup())
	assert.ErrorIs(t, err, account.ErrDuplicateEmail)
}

func TestSignupServiceLayerChecks(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SignupInput)
		message string
	}{
		{
			name:    "missing field",
			mutate:  func(in *SignupInput) { in.FullName = "" },
			message: "All fields are required",
		},
		{
			name:    "malformed email",
			mutate:  func(in *SignupInput) { in.Email = "not-an-email" },
			message: "Invalid email format",
		},
		{
			name:    "password below legacy minimum",
			mutate:  func(in *SignupInput) { in.Password = "Ab1!"; in.ConfirmPassword = "Ab1!" },
			message: "Password must be at least 6 characters long",
		},
		{
			name:    "confirm mismatch",
			mutate:  func(in *SignupInput) { in.ConfirmPassword = "Different1!" },
			message: "Password and confirm password do not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepo(), &fakeVerifier{})

			in := validSignup()
			tt.mutate(&in)

			_, err := svc.Signup(context.Background(), in)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.message, verr.Message)
		})
	}
}

func TestSignupAcceptsLegacySixCharPassword(t *testing.T) {
	// the service-layer minimum is 6, looser than the 8-character rule
	// the validation engine applies upstream
	svc := NewService(newFakeRepo(), &fakeVerifier{})

	in := validSignup()
	in.Password = "Abc1!x"
	in.ConfirmPassword = "Abc1!x"

	acct, err := svc.Signup(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, credentials.VerifyPassword(acct.PasswordHash, "Abc1!x"))
}

// --- login ---

func TestLogin(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeVerifier{})

	created, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	acct, err := svc.Login(context.Background(), "jane@test.com", "Abcdef1!")
	require.NoError(t, err)
	assert.Equal(t, created.ID, acct.ID)
}

func TestLoginMissingFields(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeVerifier{})

	_, err := svc.Login(context.Background(), "jane@test.com", "")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Email and password are required", verr.Message)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeVerifier{})

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	// google-only account: no password hash
	_, err = svc.ResolveIdentity(context.Background(), &Identity{
		Provider:  "google",
		SubjectID: "google-sub-1",
		Email:     "federated@test.com",
		Name:      "Fed Erated",
	})
	require.NoError(t, err)

	_, unknownEmail := svc.Login(context.Background(), "nobody@test.com", "Abcdef1!")
	_, wrongPassword := svc.Login(context.Background(), "jane@test.com", "wrong")
	_, federatedOnly := svc.Login(context.Background(), "federated@test.com", "Abcdef1!")

	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, federatedOnly, ErrInvalidCredentials)

	// same value, not merely the same kind
	assert.Equal(t, unknownEmail, wrongPassword)
	assert.Equal(t, wrongPassword, federatedOnly)
}

func TestLoginFailuresCostOneHashEach(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeVerifier{})

	_, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	_, err = svc.ResolveIdentity(context.Background(), &Identity{
		Provider:  "google",
		SubjectID: "google-sub-1",
		Email:     "federated@test.com",
		Name:      "Fed Erated",
	})
	require.NoError(t, err)

	// warm the guard hash so its one-time cost doesn't skew the first sample
	_, _ = svc.Login(context.Background(), "warmup@test.com", "Abcdef1!")

	measure := func(email, password string) time.Duration {
		start := time.Now()
		_, err := svc.Login(context.Background(), email, password)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		return time.Since(start)
	}

	unknownEmail := measure("nobody@test.com", "Abcdef1!")
	wrongPassword := measure("jane@test.com", "wrong-password")
	federatedOnly := measure("federated@test.com", "Abcdef1!")

	// every rejection runs a cost-12 bcrypt comparison, so no pair of
	// failure paths should differ by orders of magnitude
	assert.Less(t, unknownEmail, wrongPassword*10)
	assert.Less(t, wrongPassword, unknownEmail*10)
	assert.Less(t, federatedOnly, wrongPassword*10)
	assert.Less(t, wrongPassword, federatedOnly*10)
}

// --- google login / linking ---

func googleIdentity() *Identity {
	return &Identity{
		Provider:      "google",
		SubjectID:     "google-sub-1",
		Email:         "jane@test.com",
		Name:          "Jane From Google",
		EmailVerified: true,
	}
}

func TestGoogleLoginCreatesAccount(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeVerifier{identity: googleIdentity()})

	acct, err := svc.GoogleLogin(context.Background(), "raw-token")
	require.NoError(t, err)

	assert.Equal(t, "Jane From Google", acct.FullName)
	assert.Equal(t, "jane@test.com", acct.Email)
	assert.Equal(t, "google-sub-1", acct.GoogleID)
	assert.Empty(t, acct.PasswordHash)
}

func TestGoogleLoginLinksPasswordAccount(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeVerifier{identity: googleIdentity()})

	created, err := svc.Signup(context.Background(), validSignup())
	require.NoError(t, err)
	hash := created.PasswordHash

	acct, err := svc.GoogleLogin(context.Background(), "raw-token")
	require.NoError(t, err)

	assert.Equal(t, created.ID, acct.ID)
	assert.Equal(t, "google-sub-1", acct.GoogleID)
	// linking never touches the local name or the password hash
	assert.Equal(t, "Jane Doe", acct.FullName)
	assert.Equal(t, hash, acct.PasswordHash)
	assert.Equal(t, 1, repo.saveCalls)
}

func TestGoogleLoginIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeVerifier{identity: googleIdentity()})

	first, err := svc.GoogleLogin(context.Background(), "raw-token")
	require.NoError(t, err)

	second, err := svc.GoogleLogin(context.Background(), "raw-token")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.FullName, second.FullName)
	assert.Zero(t, repo.saveCalls)
}

func TestGoogleLoginSubjectMismatchLeavesLinkUntouched(t *testing.T) {
	repo := newFakeRepo()
	verifier := &fakeVerifier{identity: googleIdentity()}
	svc := NewService(repo, verifier)

	first, err := svc.GoogleLogin(context.Background(), "raw-token")
	require.NoError(t, err)

	mismatched := googleIdentity()
	mismatched.SubjectID = "google-sub-2"
	verifier.identity = mismatched

	acct, err := svc.GoogleLogin(context.Background(), "raw-token")
	require.NoError(t, err)

	assert.Equal(t, first.ID, acct.ID)
	assert.Equal(t, "google-sub-1", acct.GoogleID)
	assert.Zero(t, repo.saveCalls)
}

func TestGoogleLoginMissingToken(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeVerifier{})

	_, err := svc.GoogleLogin(context.Background(), "")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Token is required", verr.Message)
}

func TestGoogleLoginInvalidToken(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeVerifier{err: errors.New("bad signature")})

	_, err := svc.GoogleLogin(context.Background(), "raw-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Contains(t, err.Error(), "bad signature")
}

func TestGoogleLoginMissingClaims(t *testing.T) {
	identity := googleIdentity()
	identity.Name = ""
	svc := NewService(newFakeRepo(), &fakeVerifier{identity: identity})

	_, err := svc.GoogleLogin(context.Background(), "raw-token")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Missing required user information", verr.Message)
}
