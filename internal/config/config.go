// Package config resolves run settings from defaults, an optional YAML file,
// TRENDSCOUT_* environment variables and command-line flags, in rising priority.
package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/v0xg/trendscout/internal/geocode"
)

// Keys shared between flag binding and lookups
const (
	KeyReferenceURL    = "reference_url"
	KeyTrendsURL       = "trends_url"
	KeyExpectedCodes   = "expected_codes"
	KeyDefaultGeo      = "default_geo"
	KeyBrowserBin      = "browser.bin"
	KeyBrowserKiosk    = "browser.kiosk"
	KeyBrowserLogLevel = "browser.log_level"
	KeyBrowserHeadless = "browser.headless"
	KeyBrowserTimeout  = "browser.timeout"
	KeyScreenshot      = "screenshot"
	KeyScreenshotWidth = "screenshot_width"
	KeyVerbose         = "verbose"
)

// BrowserConfig holds browser process settings.
type BrowserConfig struct {
	// Bin overrides the browser binary. Empty looks next to the executable first.
	Bin string `yaml:"bin" mapstructure:"bin"`

	// Kiosk starts the browser fullscreen without window chrome.
	Kiosk bool `yaml:"kiosk" mapstructure:"kiosk"`

	// LogLevel is passed as --log-level; 3 keeps only fatal output.
	LogLevel int `yaml:"log_level" mapstructure:"log_level"`

	Headless bool `yaml:"headless" mapstructure:"headless"`

	// Timeout bounds each browser call. Zero means no bound.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Config holds everything a run needs.
type Config struct {
	ReferenceURL    string        `yaml:"reference_url" mapstructure:"reference_url"`
	TrendsURL       string        `yaml:"trends_url" mapstructure:"trends_url"`
	ExpectedCodes   int           `yaml:"expected_codes" mapstructure:"expected_codes"`
	DefaultGeo      string        `yaml:"default_geo" mapstructure:"default_geo"`
	Browser         BrowserConfig `yaml:"browser" mapstructure:"browser"`
	Screenshot      string        `yaml:"screenshot" mapstructure:"screenshot"`
	ScreenshotWidth uint          `yaml:"screenshot_width" mapstructure:"screenshot_width"`
	Verbose         bool          `yaml:"verbose" mapstructure:"verbose"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyReferenceURL, "https://en.wikipedia.org/wiki/List_of_ISO_3166_country_codes")
	v.SetDefault(KeyTrendsURL, "https://trends.google.com/trends/?geo=")
	v.SetDefault(KeyExpectedCodes, geocode.ExpectedCount)
	v.SetDefault(KeyDefaultGeo, geocode.Default)
	v.SetDefault(KeyBrowserBin, "")
	v.SetDefault(KeyBrowserKiosk, true)
	v.SetDefault(KeyBrowserLogLevel, 3)
	v.SetDefault(KeyBrowserHeadless, false)
	v.SetDefault(KeyBrowserTimeout, time.Duration(0))
	v.SetDefault(KeyScreenshot, "")
	v.SetDefault(KeyScreenshotWidth, 1280)
	v.SetDefault(KeyVerbose, false)
}

// Load reads the resolved settings out of v
func Load(v *viper.Viper) Config {
	return Config{
		ReferenceURL:  v.GetString(KeyReferenceURL),
		TrendsURL:     v.GetString(KeyTrendsURL),
		ExpectedCodes: v.GetInt(KeyExpectedCodes),
		DefaultGeo:    v.GetString(KeyDefaultGeo),
		Browser: BrowserConfig{
			Bin:      v.GetString(KeyBrowserBin),
			Kiosk:    v.GetBool(KeyBrowserKiosk),
			LogLevel: v.GetInt(KeyBrowserLogLevel),
			Headless: v.GetBool(KeyBrowserHeadless),
			Timeout:  v.GetDuration(KeyBrowserTimeout),
		},
		Screenshot:      v.GetString(KeyScreenshot),
		ScreenshotWidth: v.GetUint(KeyScreenshotWidth),
		Verbose:         v.GetBool(KeyVerbose),
	}
}
