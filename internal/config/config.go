package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	Height     int
	Width      int
	Delay      float64 // milliseconds
	Space      string
	ConfigFile string
	UsageLog   string
	NoUsage    bool
	Debug      bool

	// Flags to track if they were explicitly set by the user
	HeightSet   bool
	WidthSet    bool
	DelaySet    bool
	SpaceSet    bool
	UsageLogSet bool
	NoUsageSet  bool
	DebugSet    bool
}

// FileConfig represents the contents of .wiggle.yaml.
// Pointer fields distinguish "absent" from an explicit zero, which is invalid.
type FileConfig struct {
	Height   *int     `yaml:"height,omitempty"`
	Width    *int     `yaml:"width,omitempty"`
	Delay    *float64 `yaml:"delay,omitempty"` // milliseconds
	Space    *string  `yaml:"space,omitempty"`
	Debug    *bool    `yaml:"debug,omitempty"`
	NoUsage  *bool    `yaml:"no_usage,omitempty"`
	UsageLog string   `yaml:"usage_log,omitempty"`
}

// File and directory names used for discovery.
const (
	FileName      = ".wiggle.yaml"
	AppDir        = "wiggle"
	UsageFileName = "usage.log"
)

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

// loadConfigFile returns the file config to merge and the path it came from.
// An explicit path must exist; discovered paths are optional.
func loadConfigFile(explicit string) (*FileConfig, string, error) {
	if explicit != "" {
		cfg, err := LoadConfig(explicit)
		if err != nil {
			return nil, "", err
		}
		return cfg, explicit, nil
	}

	path := getConfigPath()
	if path == "" {
		return &FileConfig{}, "", nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &FileConfig{}, "", nil
		}
		return nil, "", err
	}
	return cfg, path, nil
}

// getConfigPath tries to find the .wiggle.yaml configuration file.
// It checks the local directory first, then the user config dir.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	userPath := filepath.Join(configHome, AppDir, FileName)
	if _, err := os.Stat(userPath); err == nil {
		return userPath
	}
	return ""
}

// DefaultUsageLogPath returns ~/.config/wiggle/usage.log (or the platform
// equivalent).
func DefaultUsageLogPath() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config dir: %w", err)
	}
	return filepath.Join(configHome, AppDir, UsageFileName), nil
}
