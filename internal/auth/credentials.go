package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/skillone/skillone-backend/internal/domain"
)

// CredentialVerifier checks admin credentials against the configured
// username and bcrypt password hash.
type CredentialVerifier struct {
	username     string
	passwordHash []byte
}

// NewCredentialVerifier creates a verifier for the configured admin account.
func NewCredentialVerifier(username, passwordHash string) *CredentialVerifier {
	return &CredentialVerifier{
		username:     username,
		passwordHash: []byte(passwordHash),
	}
}

// Verify checks the username and password. Both checks always run so the
// response time does not reveal which one failed.
func (v *CredentialVerifier) Verify(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password))

	if !userOK || passErr != nil {
		return fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}

	return nil
}
