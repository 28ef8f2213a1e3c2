package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ksysoev/weatherkit/pkg/core"
	"github.com/ksysoev/weatherkit/pkg/prov"
	"github.com/ksysoev/weatherkit/pkg/repo"
	"github.com/spf13/viper"
)

type appConfig struct {
	WeatherKit core.Config `mapstructure:"weatherkit"`
	API        prov.Config `mapstructure:"api"`
	Cache      repo.Config `mapstructure:"cache"`
}

// LogValue hides the key path from logs.
//
//nolint:gocritic // slog.LogValuer is implemented on the value
func (c appConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("team_id", c.WeatherKit.TeamID),
		slog.String("service_id", c.WeatherKit.ServiceID),
		slog.String("key_id", c.WeatherKit.KeyID),
		slog.Int64("expiry", c.WeatherKit.Expiry),
		slog.Duration("api_timeout", c.API.Timeout),
		slog.String("cache_addr", c.Cache.RedisAddr),
	)
}

// loadConfig loads the application configuration using the provided arguments and environment variables.
// It returns a pointer to appConfig or an error if loading or unmarshalling fails.
func loadConfig(arg *args) (*appConfig, error) {
	v := viper.NewWithOptions(viper.ExperimentalBindStruct())

	if arg.ConfigPath != "" {
		v.SetConfigFile(arg.ConfigPath)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg appConfig

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	slog.Debug("Config loaded", slog.Any("config", cfg))

	return &cfg, nil
}
