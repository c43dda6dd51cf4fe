package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(envConfig, "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 14, cfg.UI.TabBarWidth)
	require.True(t, cfg.UI.Animate)
	require.Equal(t, 3, cfg.UI.WheelStep)
	require.Equal(t, 7, cfg.Demo.Sections)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, filepath.Join(home, ".local", "state", "vtabs", "debug.log"), cfg.Log.Path)
}

func TestLoadReadsFileAndEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "vtabs.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[ui]
tab_bar_width = 20
animate = false

[demo]
seed = 42
sections = 12

[keybindings]
quit = ["x", "ctrl+q"]
`), 0o644))
	t.Setenv("VTABS_UI_WHEEL_STEP", "5")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 20, cfg.UI.TabBarWidth)
	require.False(t, cfg.UI.Animate)
	require.Equal(t, 5, cfg.UI.WheelStep)
	require.Equal(t, int64(42), cfg.Demo.Seed)
	require.Equal(t, 12, cfg.Demo.Sections)
	require.Equal(t, []string{"x", "ctrl+q"}, cfg.Keybindings["quit"])
}

func TestLoadUsesEnvPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "from-env.toml")
	require.NoError(t, os.WriteFile(path, []byte("[demo]\nsections = 3\n"), 0o644))
	t.Setenv(envConfig, path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Demo.Sections)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntab_bar_width = 1\n[log]\nlevel = \"loud\"\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "tab_bar_width")
	require.Contains(t, err.Error(), "log.level")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\n"), 0o644))

	_, err := Load(path)
	require.ErrorContains(t, err, "read config")
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := Default()
	require.NoError(t, err)
	cfg.UI.TabBarWidth = 18
	cfg.Demo.Seed = 7
	cfg.Keybindings = map[string][]string{"jump": {"/"}}
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 18, loaded.UI.TabBarWidth)
	require.Equal(t, int64(7), loaded.Demo.Seed)
	require.Equal(t, []string{"/"}, loaded.Keybindings["jump"])
}

func TestDefaultIsValid(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.Equal(t, 14, cfg.UI.TabBarWidth)
	require.Equal(t, 7, cfg.Demo.Sections)
}
