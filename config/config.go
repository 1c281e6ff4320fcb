package config

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/menmos/intrange-go"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

const intrangeConfigDirName = "intrange"
const intrangeConfigFileName = "ranges.toml"

// A Config holds named ranges, usually read from the user's config directory.
type Config struct {
	Ranges map[string]Profile `json:"ranges,omitempty" yaml:"ranges,omitempty"`
}

func isYAML(configPath string) bool {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func loadConfigFromFile(configPath string) (*Config, error) {
	file, err := os.Open(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open intrange configuration file")
	}
	defer file.Close()

	var cfg Config
	if isYAML(configPath) {
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, errors.Wrap(err, "failed to decode YAML config")
		}
		return &cfg, nil
	}

	decoder := toml.NewDecoder(file).SetTagName("json")
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode TOML config")
	}

	return &cfg, nil
}

func getDefaultConfigPath() (string, error) {
	configPath, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get the user configuration directory")
	}

	intrangeConfigDirPath := path.Join(configPath, intrangeConfigDirName)
	if err := os.MkdirAll(intrangeConfigDirPath, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create intrange config directory")
	}

	return path.Join(intrangeConfigDirPath, intrangeConfigFileName), nil
}

// LoadFile loads a config from a TOML file, or a YAML one when the extension
// is .yaml or .yml.
func LoadFile(configPath string) (*Config, error) {
	return loadConfigFromFile(configPath)
}

// LoadDefault loads a config from the default path.
func LoadDefault() (*Config, error) {
	configPath, err := getDefaultConfigPath()
	if err != nil {
		return nil, err
	}

	return loadConfigFromFile(configPath)
}

// Names returns the sorted names of every configured range.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Ranges))
	for name := range c.Ranges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Range resolves the range named name.
func (c *Config) Range(name string) (intrange.Range, error) {
	profile, ok := c.Ranges[name]
	if !ok {
		return intrange.Range{}, errors.Errorf("range '%s' not found", name)
	}

	r, err := profile.Range()
	if err != nil {
		return intrange.Range{}, errors.Wrapf(err, "range '%s'", name)
	}
	return r, nil
}

// Validate checks every configured range and reports all failures at once.
func (c *Config) Validate() error {
	var errs []error
	for _, name := range c.Names() {
		if _, err := c.Range(name); err != nil {
			errs = append(errs, err)
		}
	}
	return multierr.Combine(errs...)
}

// LoadRangeByName is a utility method for loading a single range from the default config location.
func LoadRangeByName(name string) (intrange.Range, error) {
	config, err := LoadDefault()
	if err != nil {
		return intrange.Range{}, errors.Wrap(err, "failed to read range from configuration")
	}

	return config.Range(name)
}
