package core

import (
	"errors"
	"time"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrSigning      = errors.New("failed to sign token")
)

// Credential is a signed bearer token together with the moment it stops being accepted.
// Credentials are never mutated, a renewal always produces a new value.
type Credential struct {
	ExpiresAt time.Time `json:"expires_at"`
	Token     string    `json:"token"`
}

// Expired reports whether the credential expiry is strictly before now.
func (c *Credential) Expired(now time.Time) bool {
	return c.ExpiresAt.Before(now)
}

// Validate returns ErrTokenExpired if the credential is no longer valid at now.
func (c *Credential) Validate(now time.Time) error {
	if c.Expired(now) {
		return ErrTokenExpired
	}

	return nil
}

// BearerHeader returns the value of the Authorization header for the credential.
func (c *Credential) BearerHeader() string {
	return "Bearer " + c.Token
}

// Identity holds the developer account identifiers used to sign credentials.
type Identity struct {
	TeamID    string
	ServiceID string
	KeyID     string
	KeyPath   string
}

// CacheKey returns a key unique to the signing identity.
func (id Identity) CacheKey() string {
	return id.TeamID + "." + id.ServiceID + "." + id.KeyID
}
