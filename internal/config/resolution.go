package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dkoosis/wiggle/pkg/wave"
)

// Sources recorded in ResolvedConfig, highest priority first.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// Environment variable names.
const (
	EnvHeight   = "WIGGLE_HEIGHT"
	EnvWidth    = "WIGGLE_WIDTH"
	EnvDelay    = "WIGGLE_DELAY"
	EnvSpace    = "WIGGLE_SPACE"
	EnvDebug    = "WIGGLE_DEBUG"
	EnvNoUsage  = "WIGGLE_NO_USAGE"
	EnvUsageLog = "WIGGLE_USAGE_LOG"
)

// ErrInvalidEnv is wrapped when an environment variable cannot be parsed.
var ErrInvalidEnv = errors.New("invalid environment variable")

// ResolvedConfig holds the final configuration after applying all priority rules.
type ResolvedConfig struct {
	Wave wave.Config

	Debug      bool
	UsageLog   string // empty when the usage log is disabled
	ConfigPath string // file that was merged, if any

	// Resolution metadata (for debugging)
	HeightSource string
	WidthSource  string
	DelaySource  string
	SpaceSource  string
}

// ResolveConfig resolves configuration from all sources with explicit priority order.
func ResolveConfig(cliFlags CliFlags) (*ResolvedConfig, error) {
	fileCfg, configPath, err := loadConfigFile(cliFlags.ConfigFile)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{ConfigPath: configPath}

	height, heightSrc, err := resolveInt(cliFlags.Height, cliFlags.HeightSet, EnvHeight, fileCfg.Height, wave.DefaultHeight)
	if err != nil {
		return nil, err
	}
	width, widthSrc, err := resolveInt(cliFlags.Width, cliFlags.WidthSet, EnvWidth, fileCfg.Width, wave.DefaultWidth)
	if err != nil {
		return nil, err
	}
	delay, delaySrc, err := resolveFloat(cliFlags.Delay, cliFlags.DelaySet, EnvDelay, fileCfg.Delay, wave.DefaultDelayMillis)
	if err != nil {
		return nil, err
	}
	space, spaceSrc := resolveString(cliFlags.Space, cliFlags.SpaceSet, EnvSpace, fileCfg.Space, wave.DefaultSpace)

	resolved.HeightSource = heightSrc
	resolved.WidthSource = widthSrc
	resolved.DelaySource = delaySrc
	resolved.SpaceSource = spaceSrc

	resolved.Wave, err = wave.New(height, width, delay, space)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Resolve Debug with priority: CLI > ENV > file > default
	resolved.Debug, _, err = resolveBool(cliFlags.Debug, cliFlags.DebugSet, EnvDebug, fileCfg.Debug)
	if err != nil {
		return nil, err
	}

	noUsage, _, err := resolveBool(cliFlags.NoUsage, cliFlags.NoUsageSet, EnvNoUsage, fileCfg.NoUsage)
	if err != nil {
		return nil, err
	}
	if !noUsage {
		resolved.UsageLog = resolveUsageLog(cliFlags, fileCfg)
	}

	return resolved, nil
}

// resolveUsageLog picks the usage log path: CLI > ENV > file > default.
// A failure to locate the default leaves the log disabled.
func resolveUsageLog(cliFlags CliFlags, fileCfg *FileConfig) string {
	switch {
	case cliFlags.UsageLogSet && cliFlags.UsageLog != "":
		return cliFlags.UsageLog
	case os.Getenv(EnvUsageLog) != "":
		return os.Getenv(EnvUsageLog)
	case fileCfg.UsageLog != "":
		return fileCfg.UsageLog
	}
	path, err := DefaultUsageLogPath()
	if err != nil {
		return ""
	}
	return path
}

func resolveInt(cli int, cliSet bool, envKey string, file *int, def int) (int, string, error) {
	if cliSet {
		return cli, SourceCLI, nil
	}
	if val := os.Getenv(envKey); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0, "", fmt.Errorf("%w %s=%q: expected an integer", ErrInvalidEnv, envKey, val)
		}
		return n, SourceEnv, nil
	}
	if file != nil {
		return *file, SourceFile, nil
	}
	return def, SourceDefault, nil
}

func resolveFloat(cli float64, cliSet bool, envKey string, file *float64, def float64) (float64, string, error) {
	if cliSet {
		return cli, SourceCLI, nil
	}
	if val := os.Getenv(envKey); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, "", fmt.Errorf("%w %s=%q: expected a number", ErrInvalidEnv, envKey, val)
		}
		return f, SourceEnv, nil
	}
	if file != nil {
		return *file, SourceFile, nil
	}
	return def, SourceDefault, nil
}

func resolveString(cli string, cliSet bool, envKey string, file *string, def string) (string, string) {
	if cliSet {
		return cli, SourceCLI
	}
	if val := os.Getenv(envKey); val != "" {
		return val, SourceEnv
	}
	if file != nil {
		return *file, SourceFile
	}
	return def, SourceDefault
}

func resolveBool(cli bool, cliSet bool, envKey string, file *bool) (bool, string, error) {
	if cliSet {
		return cli, SourceCLI, nil
	}
	if b, err := getEnvBool(envKey); err != nil {
		return false, "", err
	} else if b != nil {
		return *b, SourceEnv, nil
	}
	if file != nil {
		return *file, SourceFile, nil
	}
	return false, SourceDefault, nil
}

// getEnvBool reads a boolean from the environment.
// Returns nil if the variable is unset.
func getEnvBool(key string) (*bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return nil, fmt.Errorf("%w %s=%q: expected true or false", ErrInvalidEnv, key, val)
	}
	return &b, nil
}
