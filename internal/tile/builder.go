package tile

import "image"

// ColorMapper maps bitmap pixels to tiles, letting games define their
// own colour semantics without hardcoding them into the engine.
type ColorMapper interface {
	// MapPixel maps the pixel at (x, y) to a tile. ok=false skips the
	// pixel entirely; spawn marks the pixel as a spawn point.
	MapPixel(x, y int, c Color) (t Tile, spawn, ok bool)
}

// LoadBitmap loads tiles into layer from a bitmap, one pixel per grid
// coordinate. Returns the last spawn point reported by the mapper.
func (m *Map) LoadBitmap(img image.Image, layer int8, mapper ColorMapper) (Vec2, bool) {
	var spawn Vec2
	var found bool

	bounds := img.Bounds()
	for py := bounds.Min.Y; py < bounds.Max.Y; py++ {
		for px := bounds.Min.X; px < bounds.Max.X; px++ {
			r, g, b, a := img.At(px, py).RGBA()
			c := Color{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: uint8(a >> 8),
			}

			x := px - bounds.Min.X
			y := py - bounds.Min.Y
			t, isSpawn, ok := mapper.MapPixel(x, y, c)
			if !ok {
				continue
			}
			m.SetTile(x, y, layer, t)
			if isSpawn {
				spawn = Vec2{X: float64(x), Y: float64(y)}
				found = true
			}
		}
	}

	return spawn, found
}
