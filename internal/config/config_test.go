package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	cfg := Load(v)

	assert.Equal(t, "https://en.wikipedia.org/wiki/List_of_ISO_3166_country_codes", cfg.ReferenceURL)
	assert.Equal(t, "https://trends.google.com/trends/?geo=", cfg.TrendsURL)
	assert.Equal(t, 249, cfg.ExpectedCodes)
	assert.Equal(t, "US", cfg.DefaultGeo)
	assert.True(t, cfg.Browser.Kiosk)
	assert.Equal(t, 3, cfg.Browser.LogLevel)
	assert.False(t, cfg.Browser.Headless)
	assert.Zero(t, cfg.Browser.Timeout)
	assert.Empty(t, cfg.Screenshot)
	assert.EqualValues(t, 1280, cfg.ScreenshotWidth)
}

func TestYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trendscout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
default_geo: CA
browser:
  headless: true
  kiosk: false
  timeout: 45s
screenshot: out.png
`), 0o644))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	cfg := Load(v)

	assert.Equal(t, "CA", cfg.DefaultGeo)
	assert.True(t, cfg.Browser.Headless)
	assert.False(t, cfg.Browser.Kiosk)
	assert.Equal(t, 45*time.Second, cfg.Browser.Timeout)
	assert.Equal(t, "out.png", cfg.Screenshot)
	assert.Equal(t, 3, cfg.Browser.LogLevel)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("TRENDSCOUT_BROWSER_BIN", "/usr/bin/chromium")
	t.Setenv("TRENDSCOUT_EXPECTED_CODES", "250")

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("TRENDSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	cfg := Load(v)

	assert.Equal(t, "/usr/bin/chromium", cfg.Browser.Bin)
	assert.Equal(t, 250, cfg.ExpectedCodes)
}
