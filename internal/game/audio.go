//go:build !js

package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// 0 selects oto.FormatFloat32LE.
const bitDepth = 0

// AudioSystem plays synthesized samples through oto.
type AudioSystem struct {
	ctx         *oto.Context
	ready       chan struct{}
	musicPlayer oto.Player
}

var globalAudio *AudioSystem

var (
	musicVolume = 0.10
	sfxVolume   = 0.58
)

// InitAudio initializes the audio system.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, bitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// Audio returns the process-wide audio system, or nil when audio failed
// to initialize. A nil *AudioSystem is a valid no-op SamplePlayer.
func Audio() *AudioSystem { return globalAudio }

// PlaySample plays a mono sample buffer once. Implements SamplePlayer.
func (a *AudioSystem) PlaySample(samples []float32, volume float64) {
	if a == nil || volume <= 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}

	data := interleaveStereo(samples)
	go func() {
		reader := &soundReader{data: data}
		player := a.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * clampF(volume, 0, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// StartVinylLoop starts the looping background foley.
func (a *AudioSystem) StartVinylLoop() {
	if a == nil {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	if a.musicPlayer != nil {
		a.musicPlayer.Close()
	}
	reader := &loopReader{data: interleaveStereo(GenVinylLoop())}
	player := a.ctx.NewPlayer(reader)
	player.SetVolume(musicVolume)
	a.musicPlayer = player
	player.Play()
}

// StopMusic stops the looping background foley.
func (a *AudioSystem) StopMusic() {
	if a == nil || a.musicPlayer == nil {
		return
	}
	a.musicPlayer.Close()
	a.musicPlayer = nil
}

// interleaveStereo converts a mono [-1,1] buffer to stereo float32 LE.
func interleaveStereo(samples []float32) []byte {
	buf := make([]byte, len(samples)*8)
	for i, s := range samples {
		v := math.Float32bits(s)
		buf[i*8] = byte(v)
		buf[i*8+1] = byte(v >> 8)
		buf[i*8+2] = byte(v >> 16)
		buf[i*8+3] = byte(v >> 24)
		buf[i*8+4] = byte(v)
		buf[i*8+5] = byte(v >> 8)
		buf[i*8+6] = byte(v >> 16)
		buf[i*8+7] = byte(v >> 24)
	}
	return buf
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// loopReader replays its buffer forever.
type loopReader struct {
	data []byte
	pos  int
}

func (r *loopReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	total := 0
	for total < len(p) {
		n := copy(p[total:], r.data[r.pos:])
		total += n
		r.pos += n
		if r.pos >= len(r.data) {
			r.pos = 0
		}
	}
	return total, nil
}
