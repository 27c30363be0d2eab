package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/v0xg/trendscout/internal/browser"
	"github.com/v0xg/trendscout/internal/config"
	"github.com/v0xg/trendscout/internal/console"
	"github.com/v0xg/trendscout/internal/flow"
	"github.com/v0xg/trendscout/internal/geocode"
)

// version is set at build time via ldflags.
var version = "dev"

var cfgFile string

func main() {
	// Load .env file if present (silently ignore if not found)
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trendscout",
		Short: "Look up trending topics for a country and run a search",
		Long: `trendscout opens a browser, reads the ISO 3166-1 alpha-2 codes from Wikipedia,
asks for a geo code, shows the top two trending topics for it on Google Trends
and submits a search term of your choice.

Example:
  trendscout --headless --screenshot result.png`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: run,
	}

	f := rootCmd.Flags()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./trendscout.yaml or ~/.config/trendscout/trendscout.yaml)")
	f.String("browser", "", "Browser binary (default: next to the executable, then system lookup)")
	f.Bool("kiosk", true, "Start the browser fullscreen")
	f.Int("log-level", 3, "Browser log level")
	f.Bool("headless", false, "Run the browser without a window")
	f.Duration("timeout", 0, "Per-operation browser timeout (0 waits indefinitely)")
	f.String("geo", geocode.Default, "Fallback geo code")
	f.String("screenshot", "", "Save a PNG of the final page")
	f.Uint("screenshot-width", 1280, "Maximum screenshot width")
	f.BoolP("verbose", "v", false, "Show detailed progress")

	bind := map[string]string{
		config.KeyBrowserBin:      "browser",
		config.KeyBrowserKiosk:    "kiosk",
		config.KeyBrowserLogLevel: "log-level",
		config.KeyBrowserHeadless: "headless",
		config.KeyBrowserTimeout:  "timeout",
		config.KeyDefaultGeo:      "geo",
		config.KeyScreenshot:      "screenshot",
		config.KeyScreenshotWidth: "screenshot-width",
		config.KeyVerbose:         "verbose",
	}
	for key, name := range bind {
		_ = viper.BindPFlag(key, f.Lookup(name))
	}

	rootCmd.AddCommand(versionCmd)
	return rootCmd
}

func initConfig() error {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("trendscout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "trendscout"))
		}
	}

	viper.SetEnvPrefix("TRENDSCOUT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load(viper.GetViper())

	logVerbose(cfg, "Starting trendscout")
	logVerbose(cfg, "  Reference: %s", cfg.ReferenceURL)
	logVerbose(cfg, "  Trends: %s", cfg.TrendsURL)
	logVerbose(cfg, "  Kiosk: %v, headless: %v, timeout: %s", cfg.Browser.Kiosk, cfg.Browser.Headless, cfg.Browser.Timeout)

	deps := flow.Deps{
		Console:   console.Stdio(),
		Launch:    launch(cfg.Browser),
		DriverDir: browser.DriverDir,
	}
	return flow.Run(cmd.Context(), deps, cfg)
}

var launch = launcher

// launcher adapts browser.Launch to the flow's session interface
func launcher(bc config.BrowserConfig) flow.Launcher {
	return func(ctx context.Context, driverDir string) (flow.Session, error) {
		sess, err := browser.Launch(ctx, browser.Options{
			Bin:       bc.Bin,
			DriverDir: driverDir,
			Kiosk:     bc.Kiosk,
			LogLevel:  bc.LogLevel,
			Headless:  bc.Headless,
			Timeout:   bc.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return sess, nil
	}
}

func logVerbose(cfg config.Config, format string, args ...interface{}) {
	if cfg.Verbose {
		fmt.Printf(format+"\n", args...)
	}
}
