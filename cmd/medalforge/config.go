package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	kenv "github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/medalforge/medalforge-go/medalforge"
)

// ConfigPathEnvVar points at a YAML config file when --config is not given.
const ConfigPathEnvVar = "MEDALFORGE_CONFIG"

const envPrefix = "MEDALFORGE_"

// Config is the CLI configuration.
type Config struct {
	APIKey      string        `koanf:"api_key"`
	SecretKey   string        `koanf:"secret_key"`
	Environment string        `koanf:"environment"`
	Endpoint    string        `koanf:"endpoint"`
	Debug       bool          `koanf:"debug"`
	Timeout     time.Duration `koanf:"timeout"`
}

func defaultConfig() *Config {
	return &Config{
		Environment: string(medalforge.Production),
		Timeout:     medalforge.DefaultTimeout,
	}
}

// LoadConfig layers defaults, the optional YAML file at path (or
// $MEDALFORGE_CONFIG) and MEDALFORGE_* environment variables.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv(ConfigPathEnvVar)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// MEDALFORGE_API_KEY -> api_key
	if err := k.Load(kenv.ProviderWithValue(envPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}

// envTransformFunc maps MEDALFORGE_* variables to config keys. Empty
// values are skipped so they do not mask the file or the defaults.
func envTransformFunc(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	if key == "config" || value == "" {
		return "", nil
	}
	return key, value
}

// ClientOpts maps the configuration onto client options. The CLI has no
// display, so unlock modals are never shown automatically.
func (c *Config) ClientOpts() medalforge.ClientOpts {
	return medalforge.ClientOpts{
		APIKey:         c.APIKey,
		SecretKey:      c.SecretKey,
		Environment:    medalforge.Environment(strings.ToLower(c.Environment)),
		CustomEndpoint: c.Endpoint,
		Debug:          c.Debug,
		Timeout:        c.Timeout,
		AutoShowModal:  medalforge.Bool(false),
	}
}
