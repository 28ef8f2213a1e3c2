package core

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const (
	defaultBaseURL = "https://weatherkit.apple.com"
	defaultExpiry  = 3600
)

// Signer produces a signed credential for the given identity valid for ttl starting at now.
type Signer interface {
	GenerateToken(id Identity, ttl time.Duration, now time.Time) (*Credential, error)
}

// Transport performs the HTTP GET described by req and returns the decoded JSON body.
type Transport interface {
	Get(ctx context.Context, req *Request) (map[string]any, error)
}

// CredentialStore keeps signed credentials between process runs.
type CredentialStore interface {
	Load(ctx context.Context, key string) (*Credential, error)
	Save(ctx context.Context, key string, cred *Credential) error
}

// Request is an outbound WeatherKit API call.
type Request struct {
	Header http.Header
	Query  url.Values
	URL    string
}

type Config struct {
	TeamID    string `mapstructure:"team_id"`
	ServiceID string `mapstructure:"service_id"`
	KeyID     string `mapstructure:"key_id"`
	KeyPath   string `mapstructure:"key_path"`
	BaseURL   string `mapstructure:"base_url"`
	Expiry    int64  `mapstructure:"expiry"`
}

// Client is a WeatherKit API client. It owns at most one credential at a time
// and renews it transparently when it expires.
type Client struct {
	transport Transport
	tokens    *TokenManager
	cred      *Credential
	now       func() time.Time
	id        Identity
	baseURL   string
	expiry    time.Duration
	mu        sync.Mutex
}

// New creates a Client for the identity described by cfg.
// store may be nil, in which case credentials live only in memory.
func New(cfg *Config, signer Signer, transport Transport, store CredentialStore) *Client {
	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = defaultExpiry
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		transport: transport,
		tokens:    NewTokenManager(signer, store),
		now:       time.Now,
		id: Identity{
			TeamID:    cfg.TeamID,
			ServiceID: cfg.ServiceID,
			KeyID:     cfg.KeyID,
			KeyPath:   cfg.KeyPath,
		},
		baseURL: baseURL,
		expiry:  time.Duration(expiry) * time.Second,
	}
}
