package auth

// Identity represents a normalized external authentication identity
// returned by an OAuth provider. It contains facts only, no decisions.
type Identity struct {
	Provider      string // e.g. "google"
	SubjectID     string // provider-scoped unique user identifier (sub)
	Email         string // email returned by the provider
	Name          string // display name returned by the provider
	EmailVerified bool   // whether the provider asserts email ownership
}
