package game

import "layered/internal/tile"

// TransitionState reports which phase a transition overlay is in.
type TransitionState int

const (
	TransitionFadeOut TransitionState = iota
	TransitionHold
	TransitionFadeIn
	TransitionComplete
)

// Transition fades the screen out to the background colour, holds, and
// fades back in. Used between levels and on the title splash.
type Transition struct {
	color        tile.Color
	outDuration  float64
	holdDuration float64
	inDuration   float64
	elapsed      float64
}

func NewTransition(out, hold, in float64) *Transition {
	return &Transition{
		color:        Palette.Background,
		outDuration:  out,
		holdDuration: hold,
		inDuration:   in,
	}
}

// Update advances the transition and returns its phase plus the overlay
// colour to draw over the whole view.
func (t *Transition) Update(dt float64) (TransitionState, tile.Color) {
	t.elapsed += dt

	remaining := t.outDuration + t.holdDuration + t.inDuration - t.elapsed

	var opacity float64
	var state TransitionState
	switch {
	case remaining <= 0:
		return TransitionComplete, t.color.WithAlpha(0)

	case t.elapsed <= t.outDuration:
		left := t.outDuration - t.elapsed
		opacity = 1.0 - left/t.outDuration
		state = TransitionFadeOut

	case t.elapsed <= t.outDuration+t.holdDuration:
		opacity = 1.0
		state = TransitionHold

	default:
		opacity = remaining / t.inDuration
		state = TransitionFadeIn
	}

	return state, t.color.WithAlpha(uint8(opacity * 255))
}
