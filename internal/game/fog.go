package game

import "layered/internal/tile"

// Pulse is an expanding ring emitted from a point on the grid. Each
// step the ring grows by one tile; the pulse dies once it exceeds its
// maximum radius.
type Pulse struct {
	Origin    tile.Vec2
	Radius    int
	MaxRadius float64
	timestamp float64
}

func NewPulse(origin tile.Vec2, maxRadius float64) *Pulse {
	return &Pulse{Origin: origin, MaxRadius: maxRadius}
}

// Update grows the pulse. Returns false once the pulse has finished.
func (p *Pulse) Update(now float64) bool {
	interval := 2.0 / p.MaxRadius
	if now > p.timestamp+interval {
		p.timestamp = now
		p.Radius++
		if float64(p.Radius) > p.MaxRadius {
			return false
		}
	}
	return true
}

// AffectedTiles returns the tiles under the pulse's leading edge: three
// concentric rings just outside the current radius.
func (p *Pulse) AffectedTiles(m *tile.Map) [][2]int {
	cx := int(p.Origin.X)
	cy := int(p.Origin.Y)

	tiles := m.TilesOnRadius(cx, cy, 3+p.Radius)
	tiles = append(tiles, m.TilesOnRadius(cx, cy, 2+p.Radius)...)
	tiles = append(tiles, m.TilesOnRadius(cx, cy, 1+p.Radius)...)
	return tiles
}

// FogSystem tracks live pulses and applies their effects: revealing fog,
// shimmering the tiles they sweep over, and converting objectives.
type FogSystem struct {
	Pulses []*Pulse

	cooldown float64
	now      float64
}

func NewFogSystem() *FogSystem {
	return &FogSystem{}
}

// CanEmit reports whether the emission cooldown has elapsed.
func (f *FogSystem) CanEmit() bool {
	return f.cooldown <= 0
}

// Emit starts a new pulse at the given origin.
func (f *FogSystem) Emit(origin tile.Vec2, maxRadius float64, events *EventBus) {
	if !f.CanEmit() {
		return
	}
	f.cooldown = PulseCooldown
	pulse := NewPulse(origin, maxRadius)
	pulse.timestamp = f.now
	f.Pulses = append(f.Pulses, pulse)
	if events != nil {
		events.Emit(Event{Type: EventPulseEmitted, X: origin.X, Y: origin.Y, Data: int(maxRadius)})
	}
}

// Update advances all pulses and applies their tile effects.
func (f *FogSystem) Update(dt float64, g *GameMap, events *EventBus) {
	f.now += dt
	if f.cooldown > 0 {
		f.cooldown -= dt
	}

	alive := f.Pulses[:0]
	for _, p := range f.Pulses {
		if !p.Update(f.now) {
			continue
		}
		alive = append(alive, p)

		for _, t := range p.AffectedTiles(g.Map) {
			x, y := t[0], t[1]

			// Reveal fog permanently.
			if s := g.Map.StateAt(x, y, FogLayer); s != nil {
				s.TargetBlend = Palette.FogOfWar.WithAlpha(0)
			}

			s := g.Map.StateAt(x, y, ForegroundLayer)
			if s == nil {
				continue
			}

			// Shimmer: flash toward white, then settle back to the
			// resting colour as the ring passes.
			s.Blend = Palette.Default
			s.TargetBlend = s.OriginalBlend

			// A pulse touching an unreached objective converts the
			// whole contiguous group.
			if s.OriginalBlend.EqRGB(Palette.Accent1) {
				n := g.Map.FloodFillOriginalColor(x, y, ForegroundLayer, Palette.Accent1, Palette.Accent2)
				g.ObjectivesRemaining -= n
				if g.ObjectivesRemaining < 0 {
					g.ObjectivesRemaining = 0
				}
				if events != nil {
					events.Emit(Event{Type: EventObjectiveReached, X: float64(x), Y: float64(y), Data: n})
				}
			}
		}
	}
	f.Pulses = alive
}

// Reset drops all pulses and clears the cooldown.
func (f *FogSystem) Reset() {
	f.Pulses = f.Pulses[:0]
	f.cooldown = 0
	f.now = 0
}
