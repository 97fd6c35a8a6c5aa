package provider

import (
	"context"

	"github.com/datharnu/povBackend/internal/auth"
)

// OAuthProvider defines the contract every external auth provider
// must implement. Implementations return identity facts only and
// must not perform account creation, linking, or response writing.
type OAuthProvider interface {
	// Name returns the provider identifier (e.g. "google").
	Name() string

	// AuthCodeURL returns the OAuth authorization URL.
	// State and PKCE parameters are provided by the caller.
	AuthCodeURL(state string, codeChallenge string) string

	// ExchangeCode exchanges the authorization code for provider
	// credentials and returns a normalized identity.
	ExchangeCode(
		ctx context.Context,
		code string,
		codeVerifier string,
	) (*auth.Identity, error)

	// VerifyIDToken validates an ID token posted directly by a client
	// (signature, audience, expiry) and returns its claims.
	VerifyIDToken(ctx context.Context, rawIDToken string) (*auth.Identity, error)
}
