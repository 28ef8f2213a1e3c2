package sign

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ksysoev/weatherkit/pkg/core"
)

var ErrMissingIdentity = errors.New("missing identity field")

// ES256 signs WeatherKit developer tokens with a private key file downloaded from the developer portal.
type ES256 struct {
	readFile func(string) ([]byte, error)
}

// New creates an ES256 signer that reads the key from disk on every generation.
func New() *ES256 {
	return &ES256{
		readFile: os.ReadFile,
	}
}

// GenerateToken creates a signed JWT for id, issued at now and valid for ttl.
func (s *ES256) GenerateToken(id core.Identity, ttl time.Duration, now time.Time) (*core.Credential, error) {
	if err := validateIdentity(id); err != nil {
		return nil, err
	}

	pemData, err := s.readFile(id.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}

	key, err := jwt.ParseECPrivateKeyFromPEM(pemData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	expiresAt := now.Add(ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodES256, jwt.RegisteredClaims{
		Issuer:    id.TeamID,
		Subject:   id.ServiceID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	token.Header["kid"] = id.KeyID
	token.Header["id"] = id.TeamID + "." + id.ServiceID

	signed, err := token.SignedString(key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &core.Credential{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

func validateIdentity(id core.Identity) error {
	switch {
	case id.TeamID == "":
		return fmt.Errorf("%w: team id", ErrMissingIdentity)
	case id.ServiceID == "":
		return fmt.Errorf("%w: service id", ErrMissingIdentity)
	case id.KeyID == "":
		return fmt.Errorf("%w: key id", ErrMissingIdentity)
	case id.KeyPath == "":
		return fmt.Errorf("%w: key path", ErrMissingIdentity)
	}

	return nil
}
