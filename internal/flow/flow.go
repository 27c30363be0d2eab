// Package flow runs the scrape-prompt-search sequence against one browser
// session. Stages run strictly in order and any failure ends the run.
package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/v0xg/trendscout/internal/capture"
	"github.com/v0xg/trendscout/internal/config"
)

// ErrTooFewTopics is returned when the trends page has fewer than two labels
var ErrTooFewTopics = errors.New("fewer than two trending topics")

// Session is the browser capability the stages drive
type Session interface {
	fmt.Stringer
	Navigate(url string) error
	TextsX(xpath string) ([]string, error)
	Texts(selector string) ([]string, error)
	Submit(xpath, text string) error
	Screenshot() ([]byte, error)
	Close()
}

// Console is the operator surface
type Console interface {
	Print(message string)
	Printf(format string, args ...interface{})
	Println(line string)
	ReadLine() (string, error)
	ReadKey() error
}

// Launcher starts a session, looking for the browser binary in driverDir first
type Launcher func(ctx context.Context, driverDir string) (Session, error)

// Deps are the collaborators a run needs
type Deps struct {
	Console   Console
	Launch    Launcher
	DriverDir func() (string, error)
}

const banner = "Error handling has not been implemented for this program.\n" +
	"This has been done as a quick and dirty refresher for both Go and rod.\n"

// Run executes every stage in order. The session is closed on return.
func Run(ctx context.Context, deps Deps, cfg config.Config) error {
	con := deps.Console
	con.Print(banner)

	sess, err := Bootstrap(ctx, deps, cfg.ReferenceURL)
	if err != nil {
		return err
	}
	defer sess.Close()

	codes, err := ReferenceScrape(sess, con, cfg.ExpectedCodes)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		con.Println(fmt.Sprintf("  codes: %v", codes))
	}

	selection, err := SelectGeoCode(con, codes, cfg.DefaultGeo)
	if err != nil {
		return err
	}

	if err := ScrapeTrends(sess, con, cfg.TrendsURL, selection.Code); err != nil {
		return err
	}

	if err := SubmitSearch(sess, con); err != nil {
		return err
	}

	if cfg.Screenshot != "" {
		if err := saveScreenshot(sess, con, cfg.Screenshot, cfg.ScreenshotWidth); err != nil {
			return err
		}
	}

	return Shutdown(con)
}

func saveScreenshot(sess Session, con Console, path string, width uint) error {
	data, err := sess.Screenshot()
	if err != nil {
		return err
	}
	size, err := capture.Save(data, path, capture.Options{MaxWidth: width})
	if err != nil {
		return fmt.Errorf("failed to save screenshot: %w", err)
	}
	con.Printf("Saved screenshot to %s (%.1f KB)", path, float64(size)/1024)
	return nil
}
