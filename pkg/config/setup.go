package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads the configuration from the environment, falling back to the
// defaults for unset variables.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("cannot bind %s to %s: %w", key, env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot decode configuration: %w", err)
	}
	return &cfg, nil
}
