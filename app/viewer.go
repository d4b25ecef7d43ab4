// Package app assembles the viewer: it owns the transform store, the
// input-driven updater and the shape list, steps once per host tick and
// renders the projected wireframes.
package app

import (
	"go.uber.org/zap"

	"tessera/engine"
	"tessera/hal"
)

// Viewer is the running 4D viewer. It implements hal.WindowApp.
type Viewer struct {
	log     *zap.Logger
	cfg     Config
	events  <-chan hal.KeyEvent
	store   *engine.Store
	updater *engine.Updater
	proj    *engine.Projector
	shapes  []*engine.Shape4D
}

// New wires a viewer around the given key-event source and shapes. A nil
// events channel (headless) just leaves the transform at rest.
func New(log *zap.Logger, cfg Config, events <-chan hal.KeyEvent, shapes []*engine.Shape4D) *Viewer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Viewer{
		log:     log,
		cfg:     cfg,
		events:  events,
		store:   engine.NewStore(),
		updater: engine.NewUpdater(),
		proj:    engine.NewProjector(log, cfg.Distance),
		shapes:  shapes,
	}
}

// Step runs once per host tick: drain the key events that arrived since the
// last tick into the held-set, then let the updater apply one batch of
// deltas.
func (v *Viewer) Step() error {
	for {
		select {
		case ev, ok := <-v.events:
			if !ok {
				// Source went away; a nil channel never fires again.
				v.events = nil
				continue
			}
			if ev.Press {
				v.updater.KeyDown(ev.Cmd)
			} else {
				v.updater.KeyUp(ev.Cmd)
			}
		default:
			v.updater.Tick(v.store)
			return nil
		}
	}
}

// Transform returns the current transform snapshot.
func (v *Viewer) Transform() engine.Transform4D {
	return v.store.View()
}

// Close tears the viewer down: the updater stops for good and no transform
// mutation fires afterwards.
func (v *Viewer) Close() {
	v.updater.Stop()
	v.log.Info("viewer closed")
}
