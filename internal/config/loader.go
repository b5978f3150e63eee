package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "FLIPSIDE"

// Load reads config/config.<env>.yml from path, applies FLIPSIDE_* overrides
// and fills defaults
func Load(path, env string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	v.SetConfigType("yml")
	v.AddConfigPath(path)

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	c.ApplyDefaults()

	return &c, nil
}
