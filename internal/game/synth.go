package game

import "math"

// Audio output format, shared with the oto context on desktop.
const (
	SampleRate   = 44100
	ChannelCount = 2
)

// The jam's wav assets aren't part of the repo, so every sample the
// sequencer plays is synthesized here. Buffers are mono [-1,1] floats;
// the platform audio layer handles interleaving.

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < 0 || progress > 1:
		return 0
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		t := (progress - attack) / decay
		return 1 - (1-sustain)*t
	case progress > 1-release:
		t := (1 - progress) / release
		return sustain * t
	default:
		return sustain
	}
}

// softSat applies gentle tanh-like saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// GenDrum synthesizes the baseline drum hit: a pitch-swept sine body
// with a fast noise transient.
func GenDrum() []float32 {
	const dur = 0.22
	n := int(dur * SampleRate)
	out := make([]float32, n)
	r := NewRand(0xD2)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		progress := t / dur

		phase := 2 * math.Pi * 160 / 10.0 * (1 - math.Exp(-t*10.0))
		body := math.Sin(phase) * math.Exp(-t*20.0)
		click := (r.Float64()*2 - 1) * math.Exp(-t*220.0) * 0.4

		out[i] = float32(softSat((body+click)*adsr(progress, 0.005, 0.4, 0.3, 0.3)) * 0.9)
	}
	return out
}

// genTone synthesizes a soft keyboard-ish tone with a couple of
// harmonics and a slow decay.
func genTone(freq, dur float64) []float32 {
	n := int(dur * SampleRate)
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		progress := t / dur

		s := math.Sin(2*math.Pi*freq*t) * 0.6
		s += math.Sin(2*math.Pi*freq*2*t) * 0.2
		s += math.Sin(2*math.Pi*freq*3.01*t) * 0.08

		out[i] = float32(softSat(s*adsr(progress, 0.01, 0.25, 0.4, 0.5)) * 0.8)
	}
	return out
}

// genBeep synthesizes a short square-ish blip.
func genBeep(freq float64) []float32 {
	const dur = 0.12
	n := int(dur * SampleRate)
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		progress := t / dur

		s := math.Sin(2 * math.Pi * freq * t)
		if s > 0 {
			s = 0.7
		} else {
			s = -0.7
		}
		s += math.Sin(2*math.Pi*freq*t) * 0.3

		out[i] = float32(softSat(s*adsr(progress, 0.02, 0.3, 0.35, 0.4)) * 0.5)
	}
	return out
}

// A-minor-ish piano tones an octave apart.
func GenPianoLo() []float32 { return genTone(220.00, 1.2) }
func GenPianoHi() []float32 { return genTone(440.00, 1.2) }

// Beeps a fifth apart.
func GenBeepLo() []float32 { return genBeep(523.25) }
func GenBeepHi() []float32 { return genBeep(783.99) }

// GenPulseLo and GenPulseHi synthesize the swelling pads that fire when
// a pulse is emitted.
func GenPulseLo() []float32 { return genPulsePad(110.0) }
func GenPulseHi() []float32 { return genPulsePad(164.81) }

func genPulsePad(freq float64) []float32 {
	const dur = 1.6
	n := int(dur * SampleRate)
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		progress := t / dur

		s := math.Sin(2*math.Pi*freq*t) * 0.5
		s += math.Sin(2*math.Pi*(freq*1.005)*t) * 0.3 // slow detune beat
		s += math.Sin(2*math.Pi*freq*0.5*t) * 0.25

		out[i] = float32(softSat(s*adsr(progress, 0.3, 0.2, 0.6, 0.45)) * 0.7)
	}
	return out
}

// GenVinylLoop synthesizes one loopable second of vinyl-crackle foley,
// standing in for the background texture recording.
func GenVinylLoop() []float32 {
	n := SampleRate
	out := make([]float32, n)
	r := NewRand(0x171)

	// Low hiss floor.
	for i := 0; i < n; i++ {
		out[i] = float32((r.Float64()*2 - 1) * 0.012)
	}

	// Sparse pops with short decays.
	for p := 0; p < 14; p++ {
		at := r.Intn(n)
		amp := r.RangeF(0.05, 0.2)
		for j := 0; j < 220 && at+j < n; j++ {
			t := float64(j) / SampleRate
			out[at+j] += float32(amp * math.Exp(-t*900) * (r.Float64()*2 - 1))
		}
	}
	return out
}
