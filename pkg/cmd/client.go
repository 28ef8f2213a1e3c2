package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ksysoev/weatherkit/pkg/core"
	"github.com/ksysoev/weatherkit/pkg/prov"
	"github.com/ksysoev/weatherkit/pkg/repo"
	"github.com/ksysoev/weatherkit/pkg/sign"
)

// newClient wires a WeatherKit client from configuration. The returned func releases
// the credential cache connection, if any.
func newClient(arg *args) (*core.Client, func(), error) {
	if err := initLogger(arg); err != nil {
		return nil, nil, fmt.Errorf("failed to init logger: %w", err)
	}

	cfg, err := loadConfig(arg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	var store core.CredentialStore

	cleanup := func() {}

	if cfg.Cache.RedisAddr != "" {
		creds := repo.New(&cfg.Cache)
		store = creds
		cleanup = func() {
			if err := creds.Close(); err != nil {
				slog.Warn("Failed to close credential cache", slog.Any("error", err))
			}
		}
	}

	return core.New(&cfg.WeatherKit, sign.New(), prov.New(cfg.API), store), cleanup, nil
}
