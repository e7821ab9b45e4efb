//go:build js && wasm

package game

import (
	"fmt"
	"syscall/js"

	"layered/internal/tile"
)

// webInput accumulates browser events between animation frames.
type webInput struct {
	keys map[string]bool

	mouseHeld      bool
	mouseX, mouseY float64

	// Edge-triggered, consumed once per frame.
	emit    bool
	advance bool
}

func (in *webInput) frame(viewW, viewH float64) InputFrame {
	f := InputFrame{
		Up:    in.keys["KeyW"] || in.keys["ArrowUp"],
		Down:  in.keys["KeyS"] || in.keys["ArrowDown"],
		Left:  in.keys["KeyA"] || in.keys["ArrowLeft"],
		Right: in.keys["KeyD"] || in.keys["ArrowRight"],

		MouseHeld: in.mouseHeld,
		MouseX:    in.mouseX,
		MouseY:    in.mouseY,

		Emit:    in.emit,
		Advance: in.advance,

		ViewW: viewW,
		ViewH: viewH,
	}
	in.emit = false
	in.advance = false
	return f
}

func (in *webInput) bind(canvas js.Value) {
	doc := js.Global().Get("document")

	doc.Call("addEventListener", "keydown", js.FuncOf(func(this js.Value, args []js.Value) any {
		code := args[0].Get("code").String()
		if !in.keys[code] {
			switch code {
			case "Space":
				in.emit = true
			case "Enter":
				in.advance = true
			}
		}
		in.keys[code] = true
		return nil
	}))
	doc.Call("addEventListener", "keyup", js.FuncOf(func(this js.Value, args []js.Value) any {
		in.keys[args[0].Get("code").String()] = false
		return nil
	}))

	canvas.Call("addEventListener", "mousedown", js.FuncOf(func(this js.Value, args []js.Value) any {
		in.mouseHeld = true
		return nil
	}))
	canvas.Call("addEventListener", "mouseup", js.FuncOf(func(this js.Value, args []js.Value) any {
		in.mouseHeld = false
		return nil
	}))
	canvas.Call("addEventListener", "mousemove", js.FuncOf(func(this js.Value, args []js.Value) any {
		rect := canvas.Call("getBoundingClientRect")
		in.mouseX = args[0].Get("clientX").Float() - rect.Get("left").Float()
		in.mouseY = args[0].Get("clientY").Float() - rect.Get("top").Float()
		return nil
	}))
}

func cssColor(c tile.Color) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255.0)
}

// webRenderer draws the frame's draw list on a canvas 2D context. Tiles
// render as flat-shaded diamonds; the blend colours carry the look, as
// they do under the textured desktop renderer.
type webRenderer struct {
	ctx js.Value
}

func (r *webRenderer) clear(bg tile.Color, w, h float64) {
	r.ctx.Set("fillStyle", cssColor(bg.WithAlpha(255)))
	r.ctx.Call("fillRect", 0, 0, w, h)
}

// diamond fills the dimetric diamond in the vertical band
// [y+top*h, y+top*h+band*h) of the tile quad.
func (r *webRenderer) diamond(x, y, w, h, top, band float64, style string) {
	dy := y + top*h
	bh := band * h
	r.ctx.Set("fillStyle", style)
	r.ctx.Call("beginPath")
	r.ctx.Call("moveTo", x+w/2, dy)
	r.ctx.Call("lineTo", x+w, dy+bh/2)
	r.ctx.Call("lineTo", x+w/2, dy+bh)
	r.ctx.Call("lineTo", x, dy+bh/2)
	r.ctx.Call("closePath")
	r.ctx.Call("fill")
}

func (r *webRenderer) draw(d tile.Draw) {
	x, y := d.Pos.X, d.Pos.Y
	w, h := d.Size.X, d.Size.Y

	switch d.Texture {
	case TexWall:
		// Faces below the lit top.
		r.ctx.Set("fillStyle", cssColor(tile.RGB(36, 40, 33)))
		r.ctx.Call("fillRect", x, y+h/4, w, h/2)
		r.diamond(x, y, w, h, 0, 0.5, cssColor(tile.RGB(64, 70, 58)))

	case TexFloor:
		r.diamond(x, y, w, h, 0.5, 0.5, cssColor(d.Blend))

	case TexFog:
		r.diamond(x, y, w, h, 0.25, 0.5, cssColor(d.Blend))

	case TexPlayer:
		r.ctx.Set("fillStyle", cssColor(Palette.Accent3.WithAlpha(255)))
		r.ctx.Call("fillRect", x+w*0.375, y+h*0.25, w*0.25, h*0.5)
	}
}

func (r *webRenderer) overlay(c tile.Color, w, h float64) {
	r.ctx.Set("fillStyle", cssColor(c))
	r.ctx.Call("fillRect", 0, 0, w, h)
}

// RunWeb drives the game on the page's #game canvas. Blocks forever.
func RunWeb(seed uint64) error {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "game")
	if canvas.IsNull() {
		return fmt.Errorf("no #game canvas in document")
	}
	ctx2d := canvas.Call("getContext", "2d")

	input := &webInput{keys: make(map[string]bool)}
	input.bind(canvas)

	rend := &webRenderer{ctx: ctx2d}
	session := NewSession(seed, nil)

	var draws []tile.Draw
	var lastMillis float64
	var step js.Func
	step = js.FuncOf(func(this js.Value, args []js.Value) any {
		now := args[0].Float()
		dt := (now - lastMillis) / 1000.0
		lastMillis = now
		if dt > 0.1 {
			dt = 0.1
		}

		viewW := canvas.Get("width").Float()
		viewH := canvas.Get("height").Float()

		session.Update(dt, input.frame(viewW, viewH))

		rend.clear(Palette.Background, viewW, viewH)
		draws = session.AppendDraws(draws[:0], viewW, viewH)
		for _, d := range draws {
			rend.draw(d)
		}
		if c, on := session.Overlay(); on {
			rend.overlay(c, viewW, viewH)
		}

		js.Global().Call("requestAnimationFrame", step)
		return nil
	})
	js.Global().Call("requestAnimationFrame", step)

	select {}
}
