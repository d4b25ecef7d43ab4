package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tessera/engine"
	"tessera/hal"
)

func TestViewerStepAppliesHeldKeys(t *testing.T) {
	events := make(chan hal.KeyEvent, 8)
	v := New(nil, DefaultConfig(), events, []*engine.Shape4D{engine.NewTesseract(1)})

	events <- hal.KeyEvent{Cmd: engine.MoveForward, Press: true}
	require.NoError(t, v.Step())
	assert.InDelta(t, -0.08, v.Transform().Translation.Z, 1e-12)
}

func TestViewerStepReleaseStopsMovement(t *testing.T) {
	events := make(chan hal.KeyEvent, 8)
	v := New(nil, DefaultConfig(), events, nil)

	events <- hal.KeyEvent{Cmd: engine.MoveUp, Press: true}
	events <- hal.KeyEvent{Cmd: engine.MoveUp, Press: false}
	require.NoError(t, v.Step())
	assert.Equal(t, engine.Transform4D{}, v.Transform(), "press+release in one tick holds nothing")
}

func TestViewerHeadlessNilEvents(t *testing.T) {
	v := New(nil, DefaultConfig(), nil, nil)
	require.NoError(t, v.Step())
	assert.Equal(t, engine.Transform4D{}, v.Transform())
}

func TestViewerStepSurvivesClosedEventChannel(t *testing.T) {
	events := make(chan hal.KeyEvent, 8)
	v := New(nil, DefaultConfig(), events, nil)

	events <- hal.KeyEvent{Cmd: engine.MoveForward, Press: true}
	close(events)

	// The buffered event still lands, the close is absorbed, and later
	// steps keep running off the held-set instead of spinning on the
	// closed channel.
	require.NoError(t, v.Step())
	assert.InDelta(t, -0.08, v.Transform().Translation.Z, 1e-12)
	require.NoError(t, v.Step())
}

func TestViewerCloseStopsMutations(t *testing.T) {
	events := make(chan hal.KeyEvent, 8)
	v := New(nil, DefaultConfig(), events, nil)

	events <- hal.KeyEvent{Cmd: engine.SpinXWPos, Press: true}
	v.Close()
	require.NoError(t, v.Step())
	assert.Equal(t, engine.Transform4D{}, v.Transform(), "no mutation after teardown")
}
