package game

import (
	"testing"

	"layered/internal/tile"
)

func testInput() InputFrame {
	return InputFrame{ViewW: 800, ViewH: 600}
}

func TestSessionStartsInMenu(t *testing.T) {
	s := NewSession(1, nil)
	if s.State != StateMenu {
		t.Fatalf("State = %v, want menu", s.State)
	}

	in := testInput()
	in.Advance = true
	s.Update(0.016, in)

	if s.State != StatePlaying {
		t.Fatalf("State = %v after advance, want playing", s.State)
	}
	if s.CurrentLevel != 1 {
		t.Fatalf("CurrentLevel = %d, want 1", s.CurrentLevel)
	}
	if s.Player == nil {
		t.Fatal("no player after level start")
	}
	if s.Map.ObjectivesRemaining == 0 {
		t.Fatal("level loaded with no objectives")
	}
}

func TestSessionStartLevelResetsCounters(t *testing.T) {
	s := NewSession(1, nil)
	s.StartLevel(1)
	s.LevelTimer = 12
	s.PulsesUsed = 5

	s.StartLevel(2)
	if s.LevelTimer != 0 || s.PulsesUsed != 0 {
		t.Fatalf("counters survived restart: timer=%v pulses=%d", s.LevelTimer, s.PulsesUsed)
	}
	if s.CurrentLevel != 2 {
		t.Fatalf("CurrentLevel = %d, want 2", s.CurrentLevel)
	}
}

func TestSessionPulseCountsViaEvents(t *testing.T) {
	s := NewSession(1, nil)
	s.StartLevel(1)

	in := testInput()
	in.Emit = true
	s.Update(0.016, in)

	if s.PulsesUsed != 1 {
		t.Fatalf("PulsesUsed = %d, want 1", s.PulsesUsed)
	}
}

func TestSessionObjectiveUnmutesTrackPair(t *testing.T) {
	s := NewSession(1, nil)
	s.StartLevel(1)

	mutedAll := true
	for i := 1; i < s.Piece.TrackCount(); i++ {
		if s.Piece.tracks[i].Volume != 0 {
			mutedAll = false
		}
	}
	if !mutedAll {
		t.Fatal("layer tracks should start muted")
	}

	s.Events.Emit(Event{Type: EventObjectiveReached})

	if s.Piece.tracks[1].Volume != 1 || s.Piece.tracks[2].Volume != 1 {
		t.Fatal("first track pair not unmuted")
	}
	if s.Piece.tracks[3].Volume != 0 {
		t.Fatal("second pair unmuted early")
	}

	// Extra objectives past the last pair are harmless.
	for i := 0; i < 10; i++ {
		s.Events.Emit(Event{Type: EventObjectiveReached})
	}
	for i := 1; i < s.Piece.TrackCount(); i++ {
		if s.Piece.tracks[i].Volume != 1 {
			t.Fatalf("track %d still muted", i)
		}
	}
}

func TestSessionLevelCompleteRecordsRun(t *testing.T) {
	s := NewSession(7, nil)
	s.StartLevel(3)
	s.Update(1.0, testInput())

	// Force the win condition rather than sweeping the whole map.
	s.Map.ObjectivesRemaining = 0
	s.Update(0.016, testInput())

	if s.State != StateLevelComplete {
		t.Fatalf("State = %v, want level complete", s.State)
	}

	runs := s.DrainRuns()
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
	r := runs[0]
	if r.Level != 3 || r.Seed != 7 {
		t.Fatalf("run = %+v", r)
	}
	if r.Seconds <= 0 {
		t.Fatalf("run Seconds = %v, want > 0", r.Seconds)
	}
	if len(s.DrainRuns()) != 0 {
		t.Fatal("DrainRuns did not clear")
	}

	// Advance moves to the next level.
	in := testInput()
	in.Advance = true
	s.Update(0.016, in)
	if s.State != StatePlaying || s.CurrentLevel != 4 {
		t.Fatalf("state=%v level=%d after advance", s.State, s.CurrentLevel)
	}
}

func TestSessionDangerFailsLevel(t *testing.T) {
	s := NewSession(1, nil)
	s.StartLevel(1)

	x := int(s.Player.Position.X)
	y := int(s.Player.Position.Y)
	s.Map.dangers = map[[2]int]bool{{x, y}: true}

	s.Update(0.016, testInput())

	if s.State != StateLevelFailed {
		t.Fatalf("State = %v, want level failed", s.State)
	}

	// Advance retries the same level.
	level := s.CurrentLevel
	in := testInput()
	in.Advance = true
	s.Update(0.016, in)
	if s.State != StatePlaying || s.CurrentLevel != level {
		t.Fatalf("state=%v level=%d after retry", s.State, s.CurrentLevel)
	}
}

func TestSessionOverlayFollowsTransition(t *testing.T) {
	s := NewSession(1, nil)
	s.StartLevel(1)

	s.Update(0.05, testInput())
	if _, on := s.Overlay(); !on {
		t.Fatal("no overlay during the level-start transition")
	}

	// Run the transition out.
	for i := 0; i < 60; i++ {
		s.Update(0.05, testInput())
	}
	if _, on := s.Overlay(); on {
		t.Fatal("overlay stuck after transition completed")
	}
}

func TestSessionCameraInitialFraming(t *testing.T) {
	s := NewSession(1, nil)
	s.StartLevel(1)

	// Stale pan from a previous level must not survive the restart.
	s.Map.Map.ViewportOffset = tile.Vec2{X: 40, Y: 40}

	in := testInput()
	s.Update(0.016, in)

	off := s.Map.Map.ViewportOffset
	want := -(in.ViewH / float64(s.Map.Map.Height())) * 3.0
	if off.X != 0 || off.Y != want {
		t.Fatalf("initial framing = %+v, want {0 %v}", off, want)
	}
}

func TestSessionCameraEasesTowardPlayer(t *testing.T) {
	s := NewSession(1, nil)
	s.StartLevel(1)

	in := testInput()
	s.Update(0.016, in) // initial framing

	// With the player idle, easing converges on centring them.
	for i := 0; i < 400; i++ {
		s.Update(0.05, in)
	}

	p := s.Map.Map.GridToView(s.Player.Position.X, s.Player.Position.Y, ForegroundLayer, in.ViewW, in.ViewH)
	if dx := p.X - in.ViewW/2; dx > 1 || dx < -1 {
		t.Fatalf("player off centre by %v px", dx)
	}
	if dy := p.Y - in.ViewH/2; dy > 1 || dy < -1 {
		t.Fatalf("player off centre by %v px", dy)
	}
}

func TestSessionDrawsIncludePlayerSprite(t *testing.T) {
	s := NewSession(1, nil)
	s.StartLevel(1)

	draws := s.AppendDraws(nil, 800, 600)
	if len(draws) == 0 {
		t.Fatal("no draws for a loaded level")
	}

	playerIdx, fogIdx := -1, -1
	for i, d := range draws {
		if d.Texture == TexPlayer && playerIdx == -1 {
			playerIdx = i
		}
		if d.Texture == TexFog && fogIdx == -1 {
			fogIdx = i
		}
	}
	if playerIdx == -1 {
		t.Fatal("player sprite missing from draw list")
	}
	if fogIdx != -1 && playerIdx > fogIdx {
		t.Fatal("player drawn above the fog layer")
	}
}
