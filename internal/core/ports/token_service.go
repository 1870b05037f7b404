package ports

// TokenService issues and verifies signed bearer tokens carrying the user
// identity and role.
type TokenService interface {
	// Issue produces a signed token for the given user with a fixed expiry.
	Issue(userID, role string) (string, error)

	// Verify checks signature and expiry and returns the embedded identity.
	// Every failure mode (malformed, forged, expired) collapses to
	// domain.ErrInvalidToken so callers cannot build an oracle on the cause.
	Verify(token string) (userID, role string, err error)
}
