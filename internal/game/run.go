//go:build !js

package game

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"layered/internal/tile"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// DesktopOptions configures a desktop run. Zero values fall back to the
// package defaults.
type DesktopOptions struct {
	WindowWidth   int
	WindowHeight  int
	ViewportScale float64
	TempoBPM      float64
	Seed          uint64

	// OnRun, if non-nil, receives each completed-level record as it
	// happens.
	OnRun func(RunRecord)
}

// RunDesktop opens a window and runs the game until the player quits.
func RunDesktop(opts DesktopOptions) error {
	window, err := initWindow(opts.WindowWidth, opts.WindowHeight)
	if err != nil {
		return err
	}
	defer glfw.Terminate()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	rend, err := NewRenderer()
	if err != nil {
		return err
	}
	defer rend.Destroy()
	rend.InitTextures()

	// The game stays playable without sound.
	if err := InitAudio(); err != nil {
		log.Warn("audio unavailable", "err", err)
	}
	Audio().StartVinylLoop()
	defer Audio().StopMusic()

	session := NewSession(opts.Seed, Audio())
	if opts.ViewportScale > 0 {
		session.Scale = opts.ViewportScale
	}
	if opts.TempoBPM > 0 {
		session.Piece.SetTempo(opts.TempoBPM)
	}
	input := NewInput()

	var draws []tile.Draw
	last := glfw.GetTime()

	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		// Cap the timestep so a paused or dragged window doesn't warp
		// the simulation.
		if dt > 0.1 {
			dt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		fbW, fbH := window.GetFramebufferSize()
		session.Update(dt, input.Frame(window, fbW, fbH))

		if opts.OnRun != nil {
			for _, run := range session.DrainRuns() {
				opts.OnRun(run)
			}
		}

		rend.BeginFrame(Palette.Background, fbW, fbH)
		draws = session.AppendDraws(draws[:0], float64(fbW), float64(fbH))
		rend.DrawList(draws, fbW, fbH)
		if c, on := session.Overlay(); on {
			rend.DrawOverlay(c, fbW, fbH)
		}

		window.SwapBuffers()
	}

	return nil
}
