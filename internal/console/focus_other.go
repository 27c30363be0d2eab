//go:build !windows

package console

// NewFocuser returns the platform focuser
func NewFocuser() Focuser {
	return NopFocuser{}
}
