package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// TokenManager decides when a credential has to be regenerated.
type TokenManager struct {
	signer Signer
	store  CredentialStore
}

// NewTokenManager creates a TokenManager. store is optional.
func NewTokenManager(signer Signer, store CredentialStore) *TokenManager {
	return &TokenManager{
		signer: signer,
		store:  store,
	}
}

// EnsureValid returns current if it is still valid at now, otherwise it generates a new credential
// for id that expires at now+ttl. When no credential is held, a cached one for the same identity
// is reused if the store has one. Signing errors are wrapped with ErrSigning.
func (m *TokenManager) EnsureValid(ctx context.Context, id Identity, ttl time.Duration, current *Credential, now time.Time) (*Credential, error) {
	if current != nil && !current.Expired(now) {
		return current, nil
	}

	if current == nil {
		if cached := m.loadCached(ctx, id, now); cached != nil {
			return cached, nil
		}
	}

	cred, err := m.signer.GenerateToken(id, ttl, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}

	slog.DebugContext(ctx, "Credential generated",
		slog.String("key_id", id.KeyID),
		slog.Time("expires_at", cred.ExpiresAt),
	)

	if m.store != nil {
		if err := m.store.Save(ctx, id.CacheKey(), cred); err != nil {
			slog.WarnContext(ctx, "Failed to cache credential", slog.Any("error", err))
		}
	}

	return cred, nil
}

func (m *TokenManager) loadCached(ctx context.Context, id Identity, now time.Time) *Credential {
	if m.store == nil {
		return nil
	}

	cred, err := m.store.Load(ctx, id.CacheKey())
	if err != nil {
		slog.WarnContext(ctx, "Failed to load cached credential", slog.Any("error", err))
		return nil
	}

	if cred == nil || cred.Validate(now) != nil {
		return nil
	}

	return cred
}
