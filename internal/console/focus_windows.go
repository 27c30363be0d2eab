//go:build windows

package console

import "golang.org/x/sys/windows"

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
	procSetForeground    = user32.NewProc("SetForegroundWindow")
)

type windowFocuser struct{}

// NewFocuser returns the platform focuser
func NewFocuser() Focuser {
	return windowFocuser{}
}

// Focus raises the console window; failures are ignored.
func (windowFocuser) Focus() {
	if procGetConsoleWindow.Find() != nil || procSetForeground.Find() != nil {
		return
	}
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		return
	}
	procSetForeground.Call(hwnd)
}
