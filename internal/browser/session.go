package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a selector matches nothing
	ErrNotFound = errors.New("element not found")
	// ErrTimeout is returned when the configured timeout elapses
	ErrTimeout = errors.New("browser operation timed out")
)

// Options configures the browser process
type Options struct {
	Bin       string // explicit browser binary, skips lookup
	DriverDir string // directory searched for a browser binary before the system lookup
	Kiosk     bool   // fullscreen, no window chrome
	LogLevel  int    // chromium --log-level, 3 silences everything but fatal
	Headless  bool
	Timeout   time.Duration // 0 waits as long as the browser does
}

// Session wraps the Rod browser and its single page
type Session struct {
	ID      string
	bin     string
	browser *rod.Browser
	page    *rod.Page
	timeout time.Duration
}

// Launch starts a browser and opens a blank page
func Launch(ctx context.Context, opts Options) (*Session, error) {
	l := newLauncher(opts).Context(ctx)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser, err := connect(ctx, u, l)
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return &Session{
		ID:      uuid.New().String(),
		bin:     l.Get("rod-bin"),
		browser: browser,
		page:    page,
		timeout: opts.Timeout,
	}, nil
}

// killer stops a launched browser process
type killer interface {
	Kill()
}

// connect attaches to the browser at controlURL, killing the process if that fails
func connect(ctx context.Context, controlURL string, proc killer) (*rod.Browser, error) {
	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		proc.Kill()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}
	return browser, nil
}

// newLauncher builds the launcher flags without starting anything
func newLauncher(opts Options) *launcher.Launcher {
	l := launcher.New().Headless(opts.Headless)

	if bin := resolveBin(opts); bin != "" {
		l = l.Bin(bin)
	}
	if opts.Kiosk {
		l = l.Set("kiosk")
	}
	if opts.LogLevel > 0 {
		l = l.Set("log-level", strconv.Itoa(opts.LogLevel))
	}
	return l
}

// resolveBin prefers an explicit binary, then one shipped next to the
// program, then whatever the system has installed.
func resolveBin(opts Options) string {
	if opts.Bin != "" {
		return opts.Bin
	}
	if opts.DriverDir != "" {
		for _, name := range browserNames() {
			p := filepath.Join(opts.DriverDir, name)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p
			}
		}
	}
	path, _ := launcher.LookPath()
	return path
}

func browserNames() []string {
	if runtime.GOOS == "windows" {
		return []string{"chrome.exe", "chromium.exe", "msedge.exe"}
	}
	return []string{"chrome", "chromium", "chromium-browser", "google-chrome"}
}

// DriverDir returns the directory of the running executable
func DriverDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// String describes the session for operator output
func (s *Session) String() string {
	return fmt.Sprintf("rod session %s (%s)", s.ID, s.bin)
}

// Close cleans up browser resources
func (s *Session) Close() {
	if s.page != nil {
		s.page.Close()
	}
	if s.browser != nil {
		s.browser.Close()
	}
}

// timed returns the page bound to the configured timeout for one operation.
// Callers must defer done.
func (s *Session) timed() (page *rod.Page, done func()) {
	if s.timeout <= 0 {
		return s.page, func() {}
	}
	page = s.page.Timeout(s.timeout)
	return page, func() { page.CancelTimeout() }
}

// Navigate loads url and waits for the load event
func (s *Session) Navigate(url string) error {
	page, done := s.timed()
	defer done()

	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, classify(err))
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("failed to load %s: %w", url, classify(err))
	}
	return nil
}

// TextsX returns the visible text of every element matching xpath, in document order.
// No match is an empty result, not an error.
func (s *Session) TextsX(xpath string) ([]string, error) {
	page, done := s.timed()
	defer done()

	els, err := page.ElementsX(xpath)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", xpath, classify(err))
	}
	return texts(els)
}

// Texts waits for at least one element matching the CSS selector and then
// returns the text of all of them, in document order.
func (s *Session) Texts(selector string) ([]string, error) {
	page, done := s.timed()
	defer done()

	if _, err := page.Element(selector); err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", selector, classify(err))
	}
	els, err := page.Elements(selector)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", selector, classify(err))
	}
	return texts(els)
}

// Submit clicks the element matching xpath, types text into it and presses Enter.
func (s *Session) Submit(xpath, text string) error {
	page, done := s.timed()
	defer done()

	el, err := page.ElementX(xpath)
	if err != nil {
		return fmt.Errorf("failed to find %s: %w", xpath, classify(err))
	}

	// Click to focus
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("failed to click %s: %w", xpath, classify(err))
	}
	if text != "" {
		if err := el.Input(text); err != nil {
			return fmt.Errorf("failed to type into %s: %w", xpath, classify(err))
		}
	}
	if err := page.Keyboard.Type(input.Enter); err != nil {
		return fmt.Errorf("failed to press enter: %w", classify(err))
	}
	return nil
}

// Screenshot captures the visible viewport as PNG
func (s *Session) Screenshot() ([]byte, error) {
	page, done := s.timed()
	defer done()

	data, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", classify(err))
	}
	return data, nil
}

func texts(els rod.Elements) ([]string, error) {
	out := make([]string, 0, len(els))
	for _, el := range els {
		t, err := el.Text()
		if err != nil {
			return nil, fmt.Errorf("failed to read element text: %w", classify(err))
		}
		out = append(out, t)
	}
	return out, nil
}

// classify maps rod and context failures onto the package sentinels
func classify(err error) error {
	var nf *rod.ElementNotFoundError
	switch {
	case errors.As(err, &nf):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return err
}
