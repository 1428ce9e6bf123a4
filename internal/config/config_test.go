package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CLOCK_TUI_CONFIG", "")
	return home
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("db", "", "")
	fs.String("log-level", "", "")
	fs.String("log-file", "", "")
	fs.String("mode", "", "")
	fs.Bool("no-archive", false, "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "clock_tui", "sessions.db"), cfg.Database.Path)
	assert.True(t, cfg.Database.Archive)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "clock", cfg.UI.StartMode)
	assert.Equal(t, 7, cfg.UI.LapRows)
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "clock_tui")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[database]
path = "/tmp/from-file.db"

[log]
level = "debug"

[ui]
start_mode = "stopwatch"
lap_rows = 4
`), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-file.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "stopwatch", cfg.UI.StartMode)
	assert.Equal(t, 4, cfg.UI.LapRows)

	t.Setenv("CLOCK_TUI_UI_LAP_ROWS", "9")
	t.Setenv("CLOCK_TUI_LOG_LEVEL", "warn")
	cfg, err = Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.UI.LapRows)
	assert.Equal(t, "warn", cfg.Log.Level)

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--mode", "clock", "--db", "/tmp/flag.db", "--no-archive"}))
	cfg, err = Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "clock", cfg.UI.StartMode)
	assert.Equal(t, "/tmp/flag.db", cfg.Database.Path)
	assert.False(t, cfg.Database.Archive)
	assert.Equal(t, "warn", cfg.Log.Level, "unset flags keep lower layers")
}

func TestLoadExplicitConfigFlag(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nlap_rows = 3\n"), 0o644))

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--config", path}))
	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.UI.LapRows)
}

func TestLoadMissingExplicitConfig(t *testing.T) {
	isolate(t)
	t.Setenv("CLOCK_TUI_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	_, err := Load(nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config")
	_, wrapped := err.(interface{ Cause() error })
	assert.True(t, wrapped)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Database: DatabaseConfig{Path: "x.db", Archive: true},
		UI:       UIConfig{StartMode: "clock", LapRows: 7},
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.UI.StartMode = "timer"
	assert.ErrorContains(t, bad.Validate(), "start_mode")

	bad = valid
	bad.UI.LapRows = 0
	assert.ErrorContains(t, bad.Validate(), "lap_rows")

	bad = valid
	bad.Database.Path = ""
	assert.Error(t, bad.Validate())

	bad.Database.Archive = false
	assert.NoError(t, bad.Validate())
}
