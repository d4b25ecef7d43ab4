package engine

import "time"

// Command is a semantic viewer control. The host input layer maps raw keys to
// commands; anything it does not map is simply never delivered here. Eight
// commands move along the four axes (ana/kata are the ±W directions), twelve
// spin through the six rotation planes.
type Command uint8

const (
	MoveLeft Command = iota
	MoveRight
	MoveDown
	MoveUp
	MoveForward
	MoveBack
	MoveKata
	MoveAna
	SpinXYPos
	SpinXYNeg
	SpinXZPos
	SpinXZNeg
	SpinXWPos
	SpinXWNeg
	SpinYZPos
	SpinYZNeg
	SpinYWPos
	SpinYWNeg
	SpinZWPos
	SpinZWNeg
)

const (
	// TranslateStep is the distance moved per update tick while a move
	// command is held.
	TranslateStep = 0.08
	// RotateStep is the angle (radians) turned per update tick while a spin
	// command is held.
	RotateStep = 0.06
)

// apply adds the command's fixed per-tick delta to the matching transform
// field. Distinct commands touch distinct fields, so any number of held
// commands can be folded into one mutation in any order; a +/− pair for the
// same field cancels exactly.
func (c Command) apply(t *Transform4D) {
	switch c {
	case MoveLeft:
		t.Translation.X -= TranslateStep
	case MoveRight:
		t.Translation.X += TranslateStep
	case MoveDown:
		t.Translation.Y -= TranslateStep
	case MoveUp:
		t.Translation.Y += TranslateStep
	case MoveForward:
		t.Translation.Z -= TranslateStep
	case MoveBack:
		t.Translation.Z += TranslateStep
	case MoveKata:
		t.Translation.W -= TranslateStep
	case MoveAna:
		t.Translation.W += TranslateStep
	case SpinXYPos:
		t.Rotation.XY += RotateStep
	case SpinXYNeg:
		t.Rotation.XY -= RotateStep
	case SpinXZPos:
		t.Rotation.XZ += RotateStep
	case SpinXZNeg:
		t.Rotation.XZ -= RotateStep
	case SpinXWPos:
		t.Rotation.XW += RotateStep
	case SpinXWNeg:
		t.Rotation.XW -= RotateStep
	case SpinYZPos:
		t.Rotation.YZ += RotateStep
	case SpinYZNeg:
		t.Rotation.YZ -= RotateStep
	case SpinYWPos:
		t.Rotation.YW += RotateStep
	case SpinYWNeg:
		t.Rotation.YW -= RotateStep
	case SpinZWPos:
		t.Rotation.ZW += RotateStep
	case SpinZWNeg:
		t.Rotation.ZW -= RotateStep
	}
}

// defaultTickInterval caps the update rate so a display refreshing faster
// than ~66 Hz does not speed the viewer up. At the normal 60 TPS every tick
// passes the gate.
const defaultTickInterval = 15 * time.Millisecond

// Updater turns continuously-held commands into per-tick transform deltas.
//
// It is a plain state object with an explicit lifecycle: the owner feeds it
// KeyDown/KeyUp events as they arrive, calls Tick once per display frame,
// and calls Stop on teardown, after which no further mutation ever fires.
// All methods are meant for the single input/game-loop goroutine.
type Updater struct {
	held     map[Command]struct{}
	interval time.Duration
	last     time.Time
	now      func() time.Time
	stopped  bool
}

func NewUpdater() *Updater {
	return &Updater{
		held:     make(map[Command]struct{}),
		interval: defaultTickInterval,
		now:      time.Now,
	}
}

// KeyDown marks a command as held.
func (u *Updater) KeyDown(c Command) {
	if u.stopped {
		return
	}
	u.held[c] = struct{}{}
}

// KeyUp releases a command.
func (u *Updater) KeyUp(c Command) {
	if u.stopped {
		return
	}
	delete(u.held, c)
}

// Active reports whether any command is currently held.
func (u *Updater) Active() bool { return len(u.held) > 0 }

// Tick applies one batch of deltas for every held command as a single scoped
// mutation of the store, and reports whether a mutation was published. With
// nothing held the tick is a true no-op: no zero-delta write reaches the
// store. Ticks arriving faster than the fixed update interval are dropped so
// movement speed stays frame-rate-independent.
func (u *Updater) Tick(s *Store) bool {
	if u.stopped || len(u.held) == 0 {
		return false
	}
	t := u.now()
	if !u.last.IsZero() && t.Sub(u.last) < u.interval {
		return false
	}
	u.last = t

	s.Update(func(tr *Transform4D) {
		for c := range u.held {
			c.apply(tr)
		}
	})
	return true
}

// Stop releases all held commands and disables the updater for good. Every
// later KeyDown, KeyUp or Tick is a no-op, so no mutation can fire after
// teardown.
func (u *Updater) Stop() {
	u.stopped = true
	clear(u.held)
}
