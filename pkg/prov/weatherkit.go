package prov

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ksysoev/weatherkit/pkg/core"
)

const defaultTimeout = 10 * time.Second

var ErrUnexpectedStatus = errors.New("unexpected status code")

type Config struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// WeatherKit performs HTTP calls against the WeatherKit REST API.
type WeatherKit struct {
	cl *http.Client
}

// New creates and returns a new instance of WeatherKit initialized with the provided configuration.
func New(cfg Config) *WeatherKit {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &WeatherKit{
		cl: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get sends a GET request described by r and decodes the JSON body into a generic map.
// Non-2xx responses are reported as ErrUnexpectedStatus.
func (w *WeatherKit) Get(ctx context.Context, r *core.Request) (map[string]any, error) {
	target := r.URL
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for name, values := range r.Header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	resp, err := w.cl.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var data map[string]any

	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return data, nil
}
