//go:build !js

package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"layered/internal/tile"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Floats per quad vertex: pos(2) + uv(2) + rgba(4).
const vertexStride = 8

// Renderer draws the frame's tile.Draw list with a single textured-quad
// program, batching consecutive draws that share a texture.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uResolution int32
	uTex        int32

	// Game texture id -> GL texture name.
	textures map[tile.Texture]uint32

	// Reused vertex scratch buffer.
	verts []float32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}

	r := &Renderer{
		prog:     prog,
		textures: make(map[tile.Texture]uint32),
	}
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(vertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, stride, 4*4)

	gl.BindVertexArray(0)
	return r, nil
}

// InitTextures uploads the procedural texture set.
func (r *Renderer) InitTextures() {
	for _, t := range BuildTextures() {
		var name uint32
		gl.GenTextures(1, &name)
		gl.BindTexture(gl.TEXTURE_2D, name)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, TexSize, TexSize, 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(t.Pixels))
		r.textures[t.ID] = name
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// BeginFrame clears the view to the background colour.
func (r *Renderer) BeginFrame(bg tile.Color, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(
		float32(bg.R)/255.0,
		float32(bg.G)/255.0,
		float32(bg.B)/255.0,
		1.0,
	)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// DrawList renders draw commands in order, flushing on texture change.
func (r *Renderer) DrawList(draws []tile.Draw, fbW, fbH int) {
	if len(draws) == 0 {
		return
	}

	gl.UseProgram(r.prog)
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))
	gl.Uniform1i(r.uTex, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(r.vao)

	current := draws[0].Texture
	r.verts = r.verts[:0]
	for _, d := range draws {
		if d.Texture != current {
			r.flush(current)
			current = d.Texture
		}
		r.appendQuad(d)
	}
	r.flush(current)

	gl.BindVertexArray(0)
}

// DrawOverlay fills the view with a translucent colour (transitions).
func (r *Renderer) DrawOverlay(c tile.Color, fbW, fbH int) {
	if c.A == 0 {
		return
	}
	gl.UseProgram(r.prog)
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))
	gl.Uniform1i(r.uTex, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(r.vao)

	r.verts = r.verts[:0]
	r.appendQuad(overlayQuad(c, fbW, fbH))
	r.flush(TexFog)

	gl.BindVertexArray(0)
}

func (r *Renderer) appendQuad(d tile.Draw) {
	x0 := float32(d.Pos.X)
	y0 := float32(d.Pos.Y)
	x1 := float32(d.Pos.X + d.Size.X)
	y1 := float32(d.Pos.Y + d.Size.Y)

	u0, u1 := float32(0), float32(1)
	if d.FlipX {
		u0, u1 = 1, 0
	}

	cr := float32(d.Blend.R) / 255.0
	cg := float32(d.Blend.G) / 255.0
	cb := float32(d.Blend.B) / 255.0
	ca := float32(d.Blend.A) / 255.0

	r.verts = append(r.verts,
		x0, y0, u0, 0, cr, cg, cb, ca,
		x1, y0, u1, 0, cr, cg, cb, ca,
		x1, y1, u1, 1, cr, cg, cb, ca,

		x0, y0, u0, 0, cr, cg, cb, ca,
		x1, y1, u1, 1, cr, cg, cb, ca,
		x0, y1, u0, 1, cr, cg, cb, ca,
	)
}

func (r *Renderer) flush(tex tile.Texture) {
	if len(r.verts) == 0 {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, r.textures[tex])
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.verts)*4, gl.Ptr(r.verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.verts)/vertexStride))
	r.verts = r.verts[:0]
}

func (r *Renderer) Destroy() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.prog)
	for _, name := range r.textures {
		gl.DeleteTextures(1, &name)
	}
}
