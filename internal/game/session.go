package game

import "layered/internal/tile"

type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StateLevelComplete // all objectives reached
	StateLevelFailed   // player touched a danger tile
)

// InputFrame is one frame of sampled input, already decoupled from the
// windowing backend so the session runs identically on desktop, web,
// and in tests.
type InputFrame struct {
	// Held directional keys.
	Up, Down, Left, Right bool

	// Cursor state in view pixels.
	MouseHeld      bool
	MouseX, MouseY float64

	// Edge-triggered actions.
	Emit    bool // emit a pulse
	Advance bool // menu / level-end confirm

	// View dimensions for cursor-to-grid conversion.
	ViewW, ViewH float64
}

// RunRecord captures one completed level for the run store.
type RunRecord struct {
	Level   int
	Seed    uint64
	Seconds float64
	Pulses  int
}

// Session is the whole game: state machine, current level, and the
// systems driving it.
type Session struct {
	State        GameState
	CurrentLevel int
	Seed         uint64

	LevelTimer float64
	PulsesUsed int

	Map        *GameMap
	Player     *Player
	Fog        *FogSystem
	Piece      *Piece
	Transition *Transition
	Events     *EventBus

	// Camera zoom applied on every level load.
	Scale float64

	// Completed levels not yet drained by the caller.
	PendingRuns []RunRecord

	// Track pairs unmuted so far by reaching objectives.
	unmutedPairs int

	// Current transition overlay colour, updated once per frame.
	overlay   tile.Color
	overlayOn bool

	// Next camera update applies the level's initial framing.
	cameraInit bool
}

// NewSession builds a session in the menu state. player may be nil
// (silent playback).
func NewSession(seed uint64, player SamplePlayer) *Session {
	s := &Session{
		State:  StateMenu,
		Seed:   seed,
		Map:    NewGameMap(),
		Fog:    NewFogSystem(),
		Events: NewEventBus(),
		Piece:  buildPiece(player),
		Scale:  DefaultScale,
	}

	s.Events.Subscribe(EventObjectiveReached, func(Event) {
		s.unmutePair()
	})
	s.Events.Subscribe(EventPulseEmitted, func(Event) {
		s.PulsesUsed++
	})

	return s
}

// buildPiece assembles the level music: a drum baseline with layered
// piano, beep, and pad tracks that start muted.
func buildPiece(player SamplePlayer) *Piece {
	drum := NewTrack(GenDrum(), [StepsPerPhrase]uint8{
		1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 0, 1, 0, 0, 0,
		1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 0, 1, 0, 0, 0,
	})
	pianoLo := NewTrack(GenPianoLo(), [StepsPerPhrase]uint8{
		0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	})
	pianoHi := NewTrack(GenPianoHi(), [StepsPerPhrase]uint8{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	})
	beepLo := NewTrack(GenBeepLo(), [StepsPerPhrase]uint8{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0,
	})
	beepHi := NewTrack(GenBeepHi(), [StepsPerPhrase]uint8{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	})
	padLo := NewTrack(GenPulseLo(), [StepsPerPhrase]uint8{
		1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	})
	padHi := NewTrack(GenPulseHi(), [StepsPerPhrase]uint8{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	})

	return NewPiece(player, drum, TempoBPM).
		With(pianoLo).With(pianoHi).
		With(beepLo).With(beepHi).
		With(padLo).With(padHi)
}

// unmutePair raises the next muted track pair; each reached objective
// layers more of the piece in.
func (s *Session) unmutePair() {
	pair := s.unmutedPairs
	base := 1 + pair*2
	if base >= s.Piece.TrackCount() {
		return
	}
	s.Piece.SetTrackVolume(base, 1)
	s.Piece.SetTrackVolume(base+1, 1)
	s.unmutedPairs++
}

// StartLevel (re)loads a level and enters the playing state.
func (s *Session) StartLevel(level int) {
	s.CurrentLevel = level
	s.LevelTimer = 0
	s.PulsesUsed = 0
	s.unmutedPairs = 0
	s.State = StatePlaying

	bitmap := GenerateLevel(s.Seed, level)
	spawn := s.Map.LoadLevel(bitmap)
	if s.Scale > 0 {
		s.Map.Map.ViewportScale = s.Scale
	}
	s.Player = NewPlayer(spawn)
	s.Fog.Reset()

	// Baseline on, layers muted until objectives are reached.
	s.Piece.SetTrackVolume(0, 1)
	for i := 1; i < s.Piece.TrackCount(); i++ {
		s.Piece.SetTrackVolume(i, 0)
	}

	// Fade in from the background colour.
	s.Transition = NewTransition(0, 0.1, DefaultTransitionDuration)
	s.cameraInit = true
}

// Update advances the session one frame.
func (s *Session) Update(dt float64, in InputFrame) {
	s.Piece.Update(dt)

	switch s.State {
	case StateMenu:
		if in.Advance {
			s.StartLevel(1)
		}

	case StatePlaying:
		s.updatePlaying(dt, in)

	case StateLevelComplete:
		s.Map.Update(dt)
		if in.Advance {
			s.StartLevel(s.CurrentLevel + 1)
		}

	case StateLevelFailed:
		s.Map.Update(dt)
		if in.Advance {
			s.StartLevel(s.CurrentLevel)
		}
	}

	if s.Transition != nil {
		state, c := s.Transition.Update(dt)
		if state == TransitionComplete {
			s.Transition = nil
			s.overlayOn = false
		} else {
			s.overlay = c
			s.overlayOn = true
		}
	}
}

func (s *Session) updatePlaying(dt float64, in InputFrame) {
	s.LevelTimer += dt

	// Movement: the held cursor wins, keys otherwise.
	if in.MouseHeld {
		target := s.Map.Map.ViewToGrid(in.MouseX, in.MouseY, ForegroundLayer, in.ViewW, in.ViewH)
		s.Player.Translate(dt, target, s.Map)
	} else if target, moved := s.Player.KeyTarget(in.Up, in.Down, in.Left, in.Right); moved {
		s.Player.Translate(dt, target, s.Map)
	}

	if in.Emit && s.Fog.CanEmit() {
		s.Fog.Emit(s.Player.Position, float64(MediumPulseRadius), s.Events)
	}

	s.Fog.Update(dt, s.Map, s.Events)
	s.Map.Update(dt)
	s.updateCamera(dt, in.ViewW, in.ViewH)

	if s.Player.OnDanger(s.Map) {
		s.State = StateLevelFailed
		s.Events.Emit(Event{Type: EventDangerTouched, X: s.Player.Position.X, Y: s.Player.Position.Y})
		s.Transition = NewTransition(DefaultTransitionDuration, 0.2, DefaultTransitionDuration)
		return
	}

	if s.Map.ObjectivesRemaining == 0 {
		s.State = StateLevelComplete
		s.PendingRuns = append(s.PendingRuns, RunRecord{
			Level:   s.CurrentLevel,
			Seed:    s.Seed,
			Seconds: s.LevelTimer,
			Pulses:  s.PulsesUsed,
		})
		s.Events.Emit(Event{Type: EventLevelComplete, Data: s.CurrentLevel})
		s.Transition = NewTransition(DefaultTransitionDuration, 0.2, DefaultTransitionDuration)
	}
}

// updateCamera eases the viewport pan so the player stays centred in
// the view. The first playing frame of a level discards any stale pan
// and applies the map's initial framing instead; easing takes over from
// there.
func (s *Session) updateCamera(dt, viewW, viewH float64) {
	if viewW <= 0 || viewH <= 0 || s.Player == nil {
		return
	}
	if s.cameraInit {
		s.Map.Map.ViewportOffset = tile.Vec2{}
		s.Map.Map.InitViewport(viewH)
		s.cameraInit = false
		return
	}
	p := s.Map.Map.GridToView(s.Player.Position.X, s.Player.Position.Y, ForegroundLayer, viewW, viewH)
	dx := viewW/2 - p.X
	dy := viewH/2 - p.Y

	t := clampF(dt*CameraSpeed, 0, 1)
	s.Map.Map.ViewportOffset.X += dx * t
	s.Map.Map.ViewportOffset.Y += dy * t
}

// DrainRuns returns and clears the completed-level records.
func (s *Session) DrainRuns() []RunRecord {
	runs := s.PendingRuns
	s.PendingRuns = nil
	return runs
}

// AppendDraws resolves the frame's draw list: tiles in paint order with
// the player sprite between the foreground and the fog.
func (s *Session) AppendDraws(out []tile.Draw, viewW, viewH float64) []tile.Draw {
	out = s.Map.Map.AppendDraws(out, viewW, viewH)

	if s.State == StatePlaying && s.Player != nil {
		sprite := s.Map.Map.SpriteDraw(
			TexPlayer,
			s.Player.Position.X, s.Player.Position.Y, 0.5,
			ForegroundLayer, s.Player.SpriteFlipped,
			viewW, viewH,
		)

		// Splice the sprite in front of the fog layer's draws.
		fogStart := len(out)
		for i, d := range out {
			if d.Texture == TexFog {
				fogStart = i
				break
			}
		}
		out = append(out, tile.Draw{})
		copy(out[fogStart+1:], out[fogStart:])
		out[fogStart] = sprite
	}

	return out
}

// Overlay returns the transition overlay colour for this frame, if any.
func (s *Session) Overlay() (tile.Color, bool) {
	return s.overlay, s.overlayOn
}
