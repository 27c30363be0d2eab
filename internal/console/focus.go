package console

// NopFocuser is used where there is no console window to raise
type NopFocuser struct{}

func (NopFocuser) Focus() {}
