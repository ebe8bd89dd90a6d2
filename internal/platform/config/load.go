package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// An empty dir keeps the default, "configs" under the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		if dir != "" {
			o.configDir = dir
		}
	}
}

// layer is one configuration source. Later layers override earlier ones.
type layer struct {
	name     string
	provider func(k *koanf.Koanf) koanf.Provider
	parser   koanf.Parser
}

// Load builds the configuration from four layers, lowest precedence first:
//
//  1. built-in defaults
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. APP_* environment variables
//
// Environment names are matched against the keys already loaded, so
// underscores inside a key survive:
//
//	APP_SERVER_READ_TIMEOUT         -> server.read_timeout
//	APP_HEALTH_EMPTY_CHECKS_OUTCOME -> health.empty_checks_outcome
//	APP_PROBES_REDIS_ADDR           -> probes.redis.addr
//
// The result is validated before it is returned.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	layers := []layer{
		{
			name:     "defaults",
			provider: func(*koanf.Koanf) koanf.Provider { return confmap.Provider(defaults(), ".") },
		},
		{
			name:     filepath.Join(o.configDir, "base.yaml"),
			provider: fileLayer(filepath.Join(o.configDir, "base.yaml")),
			parser:   yaml.Parser(),
		},
		{
			name:     filepath.Join(o.configDir, profile+".yaml"),
			provider: fileLayer(filepath.Join(o.configDir, profile+".yaml")),
			parser:   yaml.Parser(),
		},
		{
			name:     "environment",
			provider: envLayer,
		},
	}

	k := koanf.New(".")
	for _, l := range layers {
		if err := k.Load(l.provider(k), l.parser); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func fileLayer(path string) func(*koanf.Koanf) koanf.Provider {
	return func(*koanf.Koanf) koanf.Provider { return file.Provider(path) }
}

// envLayer maps APP_* variables onto the keys loaded so far. Names that match
// no known key fall back to splitting on every underscore.
func envLayer(k *koanf.Koanf) koanf.Provider {
	known := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	})
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
