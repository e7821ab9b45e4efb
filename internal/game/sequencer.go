package game

// SamplePlayer plays a one-shot sample buffer at a volume. The desktop
// build backs this with oto; tests and the web build use stubs.
type SamplePlayer interface {
	PlaySample(samples []float32, volume float64)
}

// Track is a single instrument within a Piece: one sample and one
// phrase of step triggers.
type Track struct {
	// Sample buffer played at each enabled step.
	sample []float32

	// List of steps (beat subdivisions) in the track. A zero means no
	// sound at that step; anything else triggers the sample.
	steps [StepsPerPhrase]uint8

	// Relative volume in the piece, 0 (silent) to 1 (full).
	Volume float64
}

func NewTrack(sample []float32, steps [StepsPerPhrase]uint8) *Track {
	return &Track{sample: sample, steps: steps}
}

// Piece is a musical piece comprised of one or more Tracks.
//
// The first track is the "baseline" track: its non-zero step count
// determines the beats-per-phrase used to derive step timing from the
// piece's tempo.
type Piece struct {
	tracks []*Track

	// Which tracks fired during the most recent update.
	trackStates []bool

	intervalSecs        float64
	intervalAccumulator float64
	intervalStep        int

	player SamplePlayer
}

// NewPiece returns a piece with a baseline track at the given tempo.
func NewPiece(player SamplePlayer, baseline *Track, tempoBPM float64) *Piece {
	p := &Piece{
		tracks:      []*Track{baseline},
		trackStates: []bool{false},
		player:      player,
	}
	p.SetTempo(tempoBPM)
	return p
}

// With adds a track to the piece.
func (p *Piece) With(t *Track) *Piece {
	p.tracks = append(p.tracks, t)
	p.trackStates = append(p.trackStates, false)
	return p
}

// SetTempo rederives the step interval from beats per minute. Beats per
// phrase come from the baseline track's enabled steps; there are
// StepsPerPhrase steps (8 measures of 4 quarter notes) per phrase.
func (p *Piece) SetTempo(tempoBPM float64) {
	beatsPerPhrase := 0.0
	for _, s := range p.tracks[0].steps {
		if s != 0 {
			beatsPerPhrase++
		}
	}
	if beatsPerPhrase == 0 {
		beatsPerPhrase = 1
	}
	phrasesPerMinute := tempoBPM / beatsPerPhrase
	secondsPerPhrase := 60.0 / phrasesPerMinute
	p.intervalSecs = secondsPerPhrase / StepsPerPhrase
}

// SetTrackVolume changes the volume of one track.
func (p *Piece) SetTrackVolume(i int, volume float64) {
	if i >= 0 && i < len(p.tracks) {
		p.tracks[i].Volume = volume
	}
}

// TrackCount returns the number of tracks in the piece.
func (p *Piece) TrackCount() int { return len(p.tracks) }

// Step returns the next step index to play.
func (p *Piece) Step() int { return p.intervalStep }

// Update advances the piece, playing samples as steps elapse. The
// returned slice marks which tracks fired this update and is reused
// between calls.
func (p *Piece) Update(dt float64) []bool {
	p.intervalAccumulator += dt

	for i := range p.trackStates {
		p.trackStates[i] = false
	}

	for p.intervalAccumulator >= p.intervalSecs {
		for i, t := range p.tracks {
			if t.Volume > 0 && t.steps[p.intervalStep] != 0 {
				if p.player != nil {
					p.player.PlaySample(t.sample, t.Volume)
				}
				p.trackStates[i] = true
			}
		}

		p.intervalAccumulator -= p.intervalSecs
		p.intervalStep = (p.intervalStep + 1) % StepsPerPhrase

		// Clamp floating point error.
		if p.intervalAccumulator < 0 {
			p.intervalAccumulator = 0
		}
	}

	return p.trackStates
}
