package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"tessera/engine"
)

// keymap binds the twenty tracked keys. WASD + QE + RF move through the four
// axes; the right-hand letter pairs spin through the six rotation planes.
// Keys outside this table never produce an event.
var keymap = map[ebiten.Key]engine.Command{
	ebiten.KeyA: engine.MoveLeft,
	ebiten.KeyD: engine.MoveRight,
	ebiten.KeyF: engine.MoveDown,
	ebiten.KeyR: engine.MoveUp,
	ebiten.KeyW: engine.MoveForward,
	ebiten.KeyS: engine.MoveBack,
	ebiten.KeyQ: engine.MoveKata,
	ebiten.KeyE: engine.MoveAna,

	ebiten.KeyU: engine.SpinXYPos,
	ebiten.KeyJ: engine.SpinXYNeg,
	ebiten.KeyI: engine.SpinXZPos,
	ebiten.KeyK: engine.SpinXZNeg,
	ebiten.KeyO: engine.SpinXWPos,
	ebiten.KeyL: engine.SpinXWNeg,
	ebiten.KeyT: engine.SpinYZPos,
	ebiten.KeyG: engine.SpinYZNeg,
	ebiten.KeyY: engine.SpinYWPos,
	ebiten.KeyH: engine.SpinYWNeg,
	ebiten.KeyN: engine.SpinZWPos,
	ebiten.KeyM: engine.SpinZWNeg,
}

// Keyboard polls ebiten once per tick and turns key transitions into
// KeyEvents on a buffered channel. The channel is drained by the app on the
// same tick; if a consumer ever falls behind, events are dropped rather than
// blocking the game loop.
type Keyboard struct {
	ch chan KeyEvent
}

func NewKeyboard() *Keyboard {
	return &Keyboard{ch: make(chan KeyEvent, 64)}
}

func (k *Keyboard) Events() <-chan KeyEvent { return k.ch }

// Poll emits one event per key transition since the previous tick. Must be
// called from the game-loop goroutine.
func (k *Keyboard) Poll() {
	for key, cmd := range keymap {
		if inpututil.IsKeyJustPressed(key) {
			k.emit(KeyEvent{Cmd: cmd, Press: true})
		}
		if inpututil.IsKeyJustReleased(key) {
			k.emit(KeyEvent{Cmd: cmd, Press: false})
		}
	}
}

func (k *Keyboard) emit(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}
