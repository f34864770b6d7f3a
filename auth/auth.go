// Package auth gates the admin dashboard. The whole scheme is a single
// shared-secret credential pair checked in process, with the logged-in flag
// persisted in the cookie session. There is no server-side identity beyond
// that; README.md documents the trust boundary.
package auth

import "crypto/subtle"

// Fixed admin credential pair.
const (
	adminEmail    = "chris@2005"
	adminPassword = "chris@2005"
)

// AuthError marks a credential mismatch; it is shown inline on the login
// form and never escalated.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// Authenticator is injectable so the gate stays an explicit seam rather
// than a hidden constant buried in a handler.
type Authenticator interface {
	Login(email, password string) error
}

// SharedSecret is the one real implementation: a constant pair, no hashing,
// no expiry, no external identity provider.
type SharedSecret struct {
	email    string
	password string
}

func NewSharedSecret() *SharedSecret {
	return &SharedSecret{email: adminEmail, password: adminPassword}
}

func (s *SharedSecret) Login(email, password string) error {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !emailOK || !passwordOK {
		return &AuthError{Message: "Invalid login credentials"}
	}
	return nil
}
