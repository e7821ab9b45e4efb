//go:build !js

package game

import (
	"io"
	"testing"
)

func TestInterleaveStereo(t *testing.T) {
	buf := interleaveStereo([]float32{0.5, -0.25})
	if len(buf) != 16 {
		t.Fatalf("len = %d, want 16", len(buf))
	}
	// Left and right channels carry the same frame.
	for i := 0; i < 4; i++ {
		if buf[i] != buf[i+4] {
			t.Fatal("channels differ")
		}
	}
}

func TestSoundReaderEOF(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3}}
	p := make([]byte, 8)

	n, err := r.Read(p)
	if n != 3 || err != nil {
		t.Fatalf("Read = %d, %v", n, err)
	}
	if _, err := r.Read(p); err != io.EOF {
		t.Fatalf("err = %v, want EOF", err)
	}
}

func TestLoopReaderWraps(t *testing.T) {
	r := &loopReader{data: []byte{1, 2, 3}}
	p := make([]byte, 7)

	n, err := r.Read(p)
	if n != 7 || err != nil {
		t.Fatalf("Read = %d, %v", n, err)
	}
	want := []byte{1, 2, 3, 1, 2, 3, 1}
	for i := range want {
		if p[i] != want[i] {
			t.Fatalf("p = %v, want %v", p, want)
		}
	}
}

func TestNilAudioSystemIsSilent(t *testing.T) {
	var a *AudioSystem
	// No-ops on the nil system.
	a.PlaySample([]float32{0}, 1)
	a.StartVinylLoop()
	a.StopMusic()
}
