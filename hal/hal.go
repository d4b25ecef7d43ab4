// Package hal is the host layer: it owns the window, the frame-tick loop and
// the raw keyboard, and hands both to the app as plain Go values. Nothing
// above this package touches ebiten for timing or input.
package hal

import "tessera/engine"

// KeyEvent is a press or release of a bound viewer control.
type KeyEvent struct {
	Cmd   engine.Command
	Press bool
}

// App is what the runners drive: one Step per tick.
type App interface {
	Step() error
}
