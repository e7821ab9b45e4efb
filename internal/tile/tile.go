// Package tile implements the "Layered" engine: a 2.5D dimetric
// (axonometric) grid of textured tiles stacked in integer layers.
//
// The package is renderer-agnostic: view dimensions are passed in by the
// caller and drawing reduces to a flat list of draw commands, so the same
// map runs under a desktop GL renderer, a browser canvas, or a test.
package tile

import "sort"

// When tightly packed, tiles in dimetric projections are,
// visually, twice as wide and half as tall.
const (
	isoXCoeff = 0.5
	isoYCoeff = 0.25
)

// Interpolation speed for tile state transitions, per second.
const interpSpeed = 8.0

// Vec2 is a 2D point or size in grid or view space.
type Vec2 struct {
	X, Y float64
}

// Texture is a renderer-assigned texture handle. Zero means none.
type Texture int32

// Tile is one cell of a Map layer.
type Tile struct {
	// Filled tiles render; empty tiles don't.
	Filled bool

	Texture Texture

	// Vertical offset of the tile relative to its height.
	HeightOffset float64

	// Colour to blend the tile's texture with during drawing.
	// Zero value means "use the map default".
	Blend    Color
	HasBlend bool
}

// FilledTile returns a renderable tile for the given texture.
func FilledTile(tex Texture) Tile {
	return Tile{Filled: true, Texture: tex}
}

// WithBlend returns the tile with an explicit blend colour.
func (t Tile) WithBlend(c Color) Tile {
	t.Blend = c
	t.HasBlend = true
	return t
}

// State is the animated per-tile state. Height offset and blend colour
// are interpolated toward their targets every update.
type State struct {
	Texture Texture

	HeightOffset       float64
	TargetHeightOffset float64

	// The "resting" blend colour a tile reverts to. Game rules key off
	// this rather than the animated Blend.
	OriginalBlend Color

	Blend       Color
	TargetBlend Color
}

type cell struct {
	Tile  Tile
	State State
}

// Map is a 2D grid that renders as an axonometric map of tiles.
type Map struct {
	width  int
	height int

	// Total number of tiles per grid layer.
	tilesPerLayer int

	// Dense tile slices keyed by layer index; order tracks the keys
	// ascending so iteration follows paint order.
	layers map[int8][]cell
	order  []int8

	// Background colour for the map.
	Background Color

	// Default colour for tiles without a blend colour.
	Default Color

	// Viewport scaling modifier ("camera zoom").
	ViewportScale float64

	// Viewport position offset ("camera pan").
	ViewportOffset Vec2
}

// New returns an empty map of width x height tiles per layer.
func New(width, height int, background, def Color) *Map {
	return &Map{
		width:         width,
		height:        height,
		tilesPerLayer: width * height,
		layers:        make(map[int8][]cell),
		Background:    background,
		Default:       def,
		ViewportScale: 1.0,
	}
}

func (m *Map) Width() int  { return m.width }
func (m *Map) Height() int { return m.height }

// InitViewport shifts the initial pan so the projected map sits
// comfortably inside a view of the given height.
func (m *Map) InitViewport(viewH float64) {
	m.ViewportOffset.Y -= (viewH / float64(m.height)) * 3.0
}

// Update interpolates all tile states toward their targets.
func (m *Map) Update(dt float64) {
	t := dt * interpSpeed
	if t > 1 {
		t = 1
	}
	for _, layer := range m.layers {
		for i := range layer {
			s := &layer[i].State
			s.HeightOffset += (s.TargetHeightOffset - s.HeightOffset) * t
			s.Blend = s.Blend.Lerp(s.TargetBlend, t)
		}
	}
}

// SetTile places tile at grid coordinate (x, y) in layer,
// materializing the layer on first use.
func (m *Map) SetTile(x, y int, layer int8, t Tile) {
	cells, ok := m.layers[layer]
	if !ok {
		cells = make([]cell, m.tilesPerLayer)
		m.layers[layer] = cells
		m.order = append(m.order, layer)
		sort.Slice(m.order, func(i, j int) bool { return m.order[i] < m.order[j] })
	}

	var s State
	if t.Filled {
		blend := m.Default
		if t.HasBlend {
			blend = t.Blend
		}
		s = State{
			Texture:            t.Texture,
			HeightOffset:       t.HeightOffset,
			TargetHeightOffset: t.HeightOffset,
			OriginalBlend:      blend,
			Blend:              blend,
			TargetBlend:        blend,
		}
	}

	cells[y+m.height*x] = cell{Tile: t, State: s}
}

// StateAt returns the animated state of the tile at (x, y) in layer,
// or nil if the layer doesn't exist or the coordinate is out of range.
func (m *Map) StateAt(x, y int, layer int8) *State {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return nil
	}
	cells, ok := m.layers[layer]
	if !ok {
		return nil
	}
	return &cells[y+m.height*x].State
}

// TileAt returns the tile at (x, y) in layer. Empty for missing layers
// and out-of-range coordinates.
func (m *Map) TileAt(x, y int, layer int8) Tile {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return Tile{}
	}
	cells, ok := m.layers[layer]
	if !ok {
		return Tile{}
	}
	return cells[y+m.height*x].Tile
}

// Layers returns the existing layer indices in ascending (paint) order.
// The returned slice is owned by the map.
func (m *Map) Layers() []int8 { return m.order }

// Clear drops all layers.
func (m *Map) Clear() {
	m.layers = make(map[int8][]cell)
	m.order = m.order[:0]
}

// HasOriginalColor reports whether the tile at (x, y) in layer has the
// given resting blend colour, ignoring alpha.
func (m *Map) HasOriginalColor(x, y int, layer int8, c Color) bool {
	s := m.StateAt(x, y, layer)
	return s != nil && s.OriginalBlend.EqRGB(c)
}

// FloodFillOriginalColor 4-way fills the resting blend colour starting
// at (x, y), replacing oldBlend with newBlend. Matching ignores alpha.
// Returns the number of affected tiles.
func (m *Map) FloodFillOriginalColor(x, y int, layer int8, oldBlend, newBlend Color) int {
	s := m.StateAt(x, y, layer)
	if s == nil || !s.OriginalBlend.EqRGB(oldBlend) {
		return 0
	}
	s.OriginalBlend = newBlend

	affected := 1
	affected += m.FloodFillOriginalColor(x+1, y, layer, oldBlend, newBlend)
	affected += m.FloodFillOriginalColor(x-1, y, layer, oldBlend, newBlend)
	affected += m.FloodFillOriginalColor(x, y+1, layer, oldBlend, newBlend)
	affected += m.FloodFillOriginalColor(x, y-1, layer, oldBlend, newBlend)
	return affected
}
