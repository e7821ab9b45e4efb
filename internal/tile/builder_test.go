package tile

import (
	"image"
	"image/color"
	"testing"
)

// testMapper fills every non-black pixel, marks pure red as spawn, and
// skips pure blue.
type testMapper struct{}

func (testMapper) MapPixel(x, y int, c Color) (Tile, bool, bool) {
	switch {
	case c.EqRGB(RGB(0, 0, 255)):
		return Tile{}, false, false
	case c.EqRGB(RGB(255, 0, 0)):
		return FilledTile(1).WithBlend(c), true, true
	default:
		return FilledTile(2).WithBlend(c), false, true
	}
}

func TestLoadBitmap(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.RGBA{10, 20, 30, 255})
	img.Set(1, 0, color.RGBA{0, 0, 255, 255})  // skipped
	img.Set(2, 0, color.RGBA{255, 0, 0, 255})  // spawn
	img.Set(0, 1, color.RGBA{40, 50, 60, 255})
	img.Set(1, 1, color.RGBA{70, 80, 90, 255})
	img.Set(2, 1, color.RGBA{1, 2, 3, 255})

	m := New(3, 2, RGB(0, 0, 0), RGB(255, 255, 255))
	spawn, ok := m.LoadBitmap(img, 0, testMapper{})

	if !ok {
		t.Fatal("spawn point not found")
	}
	if spawn.X != 2 || spawn.Y != 0 {
		t.Errorf("spawn = %+v, expected (2, 0)", spawn)
	}

	if m.TileAt(1, 0, 0).Filled {
		t.Error("skipped pixel produced a tile")
	}
	if !m.TileAt(0, 0, 0).Filled {
		t.Error("mapped pixel missing its tile")
	}
	if !m.HasOriginalColor(0, 1, 0, RGB(40, 50, 60)) {
		t.Error("pixel colour not carried into the blend")
	}
}

func TestLoadBitmapNoSpawn(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	m := New(2, 2, RGB(0, 0, 0), RGB(255, 255, 255))
	if _, ok := m.LoadBitmap(img, 0, testMapper{}); ok {
		t.Error("expected no spawn point")
	}
}
