package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// App holds application configuration.
type App struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

// Logger holds logger configuration.
type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// API holds API server configuration.
type API struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Options tunes how Load resolves keys that are not in the config file.
type Options struct {
	// Defaults are applied before the file and the environment are read.
	Defaults map[string]interface{}
	// EnvBindings maps a config key to extra environment variable names
	// checked in order, e.g. "serpapi.api_key" -> {"SEARCH_KEY"}.
	EnvBindings map[string][]string
}

// Load loads configuration from a file into the given config struct.
// Environment variables override file values, with "." replaced by "_"
// (app.name -> APP_NAME).
func Load(path string, config interface{}, opts Options) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range opts.Defaults {
		v.SetDefault(key, value)
	}

	for key, envs := range opts.EnvBindings {
		input := append([]string{key}, envs...)
		if err := v.BindEnv(input...); err != nil {
			return err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Failed to read config file %s, reading from defaults and environment variables: %v", path, err)
	}

	return v.Unmarshal(config)
}
