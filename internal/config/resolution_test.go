package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/wiggle/pkg/wave"
)

func TestResolveConfig_UsesDefaults_When_NothingSet(t *testing.T) {
	tempDir := isolate(t)

	resolved, err := ResolveConfig(CliFlags{})
	require.NoError(t, err)

	assert.Equal(t, wave.DefaultHeight, resolved.Wave.Height())
	assert.Equal(t, wave.DefaultWidth, resolved.Wave.Width())
	assert.Equal(t, 16*time.Millisecond, resolved.Wave.Delay())
	assert.Equal(t, ' ', resolved.Wave.Space())
	assert.Equal(t, SourceDefault, resolved.HeightSource)
	assert.Equal(t, SourceDefault, resolved.SpaceSource)
	assert.False(t, resolved.Debug)
	assert.Empty(t, resolved.ConfigPath)
	assert.Equal(t, filepath.Join(tempDir, "xdg", AppDir, UsageFileName), resolved.UsageLog)
}

func TestResolveConfig_PriorityOrder(t *testing.T) {
	tests := []struct {
		name       string
		cliFlags   CliFlags
		envVars    map[string]string
		file       string
		wantHeight int
		wantSource string
	}{
		{
			name:       "file beats default",
			file:       "height: 20\n",
			wantHeight: 20,
			wantSource: SourceFile,
		},
		{
			name:       "env beats file",
			file:       "height: 20\n",
			envVars:    map[string]string{EnvHeight: "30"},
			wantHeight: 30,
			wantSource: SourceEnv,
		},
		{
			name:       "CLI beats env",
			cliFlags:   CliFlags{Height: 8, HeightSet: true},
			file:       "height: 20\n",
			envVars:    map[string]string{EnvHeight: "30"},
			wantHeight: 8,
			wantSource: SourceCLI,
		},
		{
			name:       "unset CLI value is ignored",
			cliFlags:   CliFlags{Height: 8},
			envVars:    map[string]string{EnvHeight: "30"},
			wantHeight: 30,
			wantSource: SourceEnv,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := isolate(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			if tt.file != "" {
				writeFile(t, filepath.Join(tempDir, FileName), tt.file)
			}

			resolved, err := ResolveConfig(tt.cliFlags)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHeight, resolved.Wave.Height())
			assert.Equal(t, tt.wantSource, resolved.HeightSource)
		})
	}
}

func TestResolveConfig_MergesEachFieldIndependently(t *testing.T) {
	tempDir := isolate(t)
	writeFile(t, filepath.Join(tempDir, FileName), "width: 7\nspace: \"-\"\n")
	t.Setenv(EnvDelay, "0")

	resolved, err := ResolveConfig(CliFlags{Height: 4, HeightSet: true})
	require.NoError(t, err)

	assert.Equal(t, 4, resolved.Wave.Height())
	assert.Equal(t, 7, resolved.Wave.Width())
	assert.Equal(t, time.Duration(0), resolved.Wave.Delay())
	assert.Equal(t, '-', resolved.Wave.Space())
	assert.Equal(t, SourceCLI, resolved.HeightSource)
	assert.Equal(t, SourceFile, resolved.WidthSource)
	assert.Equal(t, SourceEnv, resolved.DelaySource)
	assert.Equal(t, SourceFile, resolved.SpaceSource)
	assert.Equal(t, FileName, resolved.ConfigPath)
}

func TestResolveConfig_Validation(t *testing.T) {
	tests := []struct {
		name     string
		cliFlags CliFlags
		envVars  map[string]string
		file     string
	}{
		{name: "zero height flag", cliFlags: CliFlags{Height: 0, HeightSet: true}},
		{name: "negative width flag", cliFlags: CliFlags{Width: -1, WidthSet: true}},
		{name: "negative delay flag", cliFlags: CliFlags{Delay: -5, DelaySet: true}},
		{name: "multi char space flag", cliFlags: CliFlags{Space: "ab", SpaceSet: true}},
		{name: "empty space flag", cliFlags: CliFlags{Space: "", SpaceSet: true}},
		{name: "zero height in file", file: "height: 0\n"},
		{name: "non integer env", envVars: map[string]string{EnvWidth: "wide"}},
		{name: "non numeric delay env", envVars: map[string]string{EnvDelay: "soon"}},
		{name: "non bool debug env", envVars: map[string]string{EnvDebug: "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := isolate(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			if tt.file != "" {
				writeFile(t, filepath.Join(tempDir, FileName), tt.file)
			}

			_, err := ResolveConfig(tt.cliFlags)
			assert.Error(t, err)
		})
	}
}

func TestResolveConfig_WrapsWaveConfigError(t *testing.T) {
	isolate(t)

	_, err := ResolveConfig(CliFlags{Height: 0, HeightSet: true})
	assert.ErrorIs(t, err, wave.ErrInvalidConfig)

	t.Setenv(EnvHeight, "tall")
	_, err = ResolveConfig(CliFlags{})
	assert.ErrorIs(t, err, ErrInvalidEnv)
}

func TestResolveConfig_ExplicitConfigFile(t *testing.T) {
	tempDir := isolate(t)
	writeFile(t, filepath.Join(tempDir, FileName), "height: 20\n")
	custom := filepath.Join(tempDir, "custom.yaml")
	writeFile(t, custom, "height: 6\n")

	resolved, err := ResolveConfig(CliFlags{ConfigFile: custom})
	require.NoError(t, err)
	assert.Equal(t, 6, resolved.Wave.Height())
	assert.Equal(t, custom, resolved.ConfigPath)

	_, err = ResolveConfig(CliFlags{ConfigFile: filepath.Join(tempDir, "missing.yaml")})
	assert.Error(t, err)
}

func TestResolveConfig_DebugPriority(t *testing.T) {
	tempDir := isolate(t)
	writeFile(t, filepath.Join(tempDir, FileName), "debug: true\n")

	resolved, err := ResolveConfig(CliFlags{})
	require.NoError(t, err)
	assert.True(t, resolved.Debug)

	t.Setenv(EnvDebug, "false")
	resolved, err = ResolveConfig(CliFlags{})
	require.NoError(t, err)
	assert.False(t, resolved.Debug)

	resolved, err = ResolveConfig(CliFlags{Debug: true, DebugSet: true})
	require.NoError(t, err)
	assert.True(t, resolved.Debug)
}

func TestResolveConfig_UsageLog(t *testing.T) {
	t.Run("disabled by flag", func(t *testing.T) {
		isolate(t)
		resolved, err := ResolveConfig(CliFlags{NoUsage: true, NoUsageSet: true})
		require.NoError(t, err)
		assert.Empty(t, resolved.UsageLog)
	})

	t.Run("disabled by env", func(t *testing.T) {
		isolate(t)
		t.Setenv(EnvNoUsage, "1")
		resolved, err := ResolveConfig(CliFlags{})
		require.NoError(t, err)
		assert.Empty(t, resolved.UsageLog)
	})

	t.Run("disabled by file", func(t *testing.T) {
		tempDir := isolate(t)
		writeFile(t, filepath.Join(tempDir, FileName), "no_usage: true\n")
		resolved, err := ResolveConfig(CliFlags{})
		require.NoError(t, err)
		assert.Empty(t, resolved.UsageLog)
	})

	t.Run("path priority", func(t *testing.T) {
		tempDir := isolate(t)
		writeFile(t, filepath.Join(tempDir, FileName), "usage_log: from-file.log\n")

		resolved, err := ResolveConfig(CliFlags{})
		require.NoError(t, err)
		assert.Equal(t, "from-file.log", resolved.UsageLog)

		t.Setenv(EnvUsageLog, "from-env.log")
		resolved, err = ResolveConfig(CliFlags{})
		require.NoError(t, err)
		assert.Equal(t, "from-env.log", resolved.UsageLog)

		resolved, err = ResolveConfig(CliFlags{UsageLog: "from-cli.log", UsageLogSet: true})
		require.NoError(t, err)
		assert.Equal(t, "from-cli.log", resolved.UsageLog)
	})
}
