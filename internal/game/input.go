//go:build !js

package game

import "github.com/go-gl/glfw/v3.3/glfw"

// Input tracks previous key state for edge detection.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Frame samples the window into a platform-independent InputFrame.
// Cursor coordinates are scaled from window space to framebuffer space.
func (in *Input) Frame(window *glfw.Window, fbW, fbH int) InputFrame {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW > 0 && winH > 0 {
		cx *= float64(fbW) / float64(winW)
		cy *= float64(fbH) / float64(winH)
	}

	return InputFrame{
		Up:    window.GetKey(glfw.KeyW) == glfw.Press,
		Down:  window.GetKey(glfw.KeyS) == glfw.Press,
		Left:  window.GetKey(glfw.KeyA) == glfw.Press,
		Right: window.GetKey(glfw.KeyD) == glfw.Press,

		MouseHeld: window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
		MouseX:    cx,
		MouseY:    cy,

		Emit:    in.JustPressed(window, glfw.KeySpace),
		Advance: in.JustPressed(window, glfw.KeyEnter),

		ViewW: float64(fbW),
		ViewH: float64(fbH),
	}
}
