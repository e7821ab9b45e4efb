package tile

// I/J basis vectors for converting between dimetric and
// orthographic projections.
var (
	iHat = Vec2{X: isoXCoeff, Y: isoYCoeff}
	jHat = Vec2{X: -isoXCoeff, Y: isoYCoeff}
)

// TileSize returns the tile size in view pixels for a view of the given
// dimensions. The grid aspect ratio is preserved by taking the larger of
// the per-axis fits, scaled by the viewport zoom.
func (m *Map) TileSize(viewW, viewH float64) Vec2 {
	size := Vec2{
		X: viewW / float64(m.width),
		Y: viewH / float64(m.height),
	}
	if size.Y < size.X {
		size.Y = size.X
	} else {
		size.X = size.Y
	}
	size.X *= m.ViewportScale
	size.Y *= m.ViewportScale
	return size
}

// unitToPixel returns the 2x2 column-major transform from planar grid
// units to view pixels under the dimetric projection.
func (m *Map) unitToPixel(viewW, viewH float64) (i, j Vec2) {
	size := m.TileSize(viewW, viewH)
	i = Vec2{X: size.X * iHat.X, Y: size.Y * iHat.Y}
	j = Vec2{X: size.X * jHat.X, Y: size.Y * jHat.Y}
	return
}

// GridToView converts a planar grid point to a view point in pixels.
func (m *Map) GridToView(x, y float64, layer int8, viewW, viewH float64) Vec2 {
	size := m.TileSize(viewW, viewH)
	i, j := m.unitToPixel(viewW, viewH)

	point := Vec2{
		X: i.X*x + j.X*y,
		Y: i.Y*x + j.Y*y,
	}

	// Shift points left by half a tile so the centre of tiles at grid
	// X == 0 is visually centred on view X == 0.
	point.X -= size.X * 0.5

	// Shift by the view size relative to the axonometric scale factor
	// so the projected map is centred in the view.
	point.X += viewW * isoXCoeff
	point.Y += viewH * isoYCoeff

	// Layers stack vertically.
	point.Y -= size.Y * float64(layer)

	point.X += m.ViewportOffset.X
	point.Y += m.ViewportOffset.Y
	return point
}

// ViewToGrid converts a view point in pixels back to a planar grid point.
func (m *Map) ViewToGrid(x, y float64, layer int8, viewW, viewH float64) Vec2 {
	size := m.TileSize(viewW, viewH)

	// Undo the viewport pan.
	x -= m.ViewportOffset.X
	y -= m.ViewportOffset.Y

	// Undo the axonometric centring offset.
	x -= viewW * isoXCoeff
	y -= viewH * isoYCoeff

	// Offset by the tile height relative to the axonometric scale
	// factor, so a view point is "on" a grid point when it is visibly
	// over the tile's centre.
	y -= size.Y * isoYCoeff

	// Undo the layer stacking.
	y += size.Y * float64(layer)

	// Invert the 2x2 unit-to-pixel transform.
	i, j := m.unitToPixel(viewW, viewH)
	det := i.X*j.Y - j.X*i.Y
	if det == 0 {
		return Vec2{}
	}
	inv := 1.0 / det
	return Vec2{
		X: inv * (j.Y*x - j.X*y),
		Y: inv * (i.X*y - i.Y*x),
	}
}

// Draw is one tile or sprite resolved to view space.
type Draw struct {
	Pos     Vec2
	Size    Vec2
	Texture Texture
	Blend   Color
	FlipX   bool
}

// AppendDraws appends draw commands for every filled tile, walking
// layers in paint order. The caller-provided slice is reused across
// frames to avoid per-frame allocation.
func (m *Map) AppendDraws(out []Draw, viewW, viewH float64) []Draw {
	size := m.TileSize(viewW, viewH)

	for _, layer := range m.order {
		cells := m.layers[layer]
		for i := range cells {
			c := &cells[i]
			if !c.Tile.Filled {
				continue
			}

			x := i / m.height
			y := i % m.height

			point := m.GridToView(float64(x), float64(y), layer, viewW, viewH)
			point.Y -= size.Y * c.State.HeightOffset

			out = append(out, Draw{
				Pos:     point,
				Size:    size,
				Texture: c.State.Texture,
				Blend:   c.State.Blend,
			})
		}
	}
	return out
}

// SpriteDraw resolves a sprite at fractional grid position (x, y) with
// vertical offset z into a view-space draw command.
func (m *Map) SpriteDraw(tex Texture, x, y, z float64, layer int8, flipX bool, viewW, viewH float64) Draw {
	size := m.TileSize(viewW, viewH)
	point := m.GridToView(x, y, layer, viewW, viewH)
	point.Y -= size.Y * z
	return Draw{
		Pos:     point,
		Size:    size,
		Texture: tex,
		Blend:   RGB(255, 255, 255),
		FlipX:   flipX,
	}
}
