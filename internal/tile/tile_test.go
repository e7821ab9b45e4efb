package tile

import (
	"math"
	"testing"
)

func testMap() *Map {
	return New(16, 16, RGB(19, 21, 16), RGB(255, 255, 255))
}

func TestSetTileMaterializesLayer(t *testing.T) {
	m := testMap()
	if len(m.Layers()) != 0 {
		t.Fatalf("expected no layers, got %d", len(m.Layers()))
	}

	m.SetTile(3, 4, 0, FilledTile(1))

	if len(m.Layers()) != 1 {
		t.Fatalf("expected 1 layer, got %d", len(m.Layers()))
	}
	s := m.StateAt(3, 4, 0)
	if s == nil {
		t.Fatal("StateAt returned nil for a set tile")
	}
	if s.Texture != 1 {
		t.Errorf("state texture = %d, expected 1", s.Texture)
	}
	if !s.OriginalBlend.EqRGB(RGB(255, 255, 255)) {
		t.Errorf("default blend not applied: %+v", s.OriginalBlend)
	}

	// Neighbours stay empty.
	if m.TileAt(3, 5, 0).Filled {
		t.Error("neighbour tile unexpectedly filled")
	}
}

func TestSetTileExplicitBlend(t *testing.T) {
	m := testMap()
	accent := RGB(143, 182, 87)
	m.SetTile(0, 0, 0, FilledTile(2).WithBlend(accent))

	s := m.StateAt(0, 0, 0)
	if s == nil {
		t.Fatal("StateAt returned nil")
	}
	if !s.OriginalBlend.EqRGB(accent) || !s.Blend.EqRGB(accent) || !s.TargetBlend.EqRGB(accent) {
		t.Errorf("explicit blend not propagated: %+v", s)
	}
}

func TestStateAtOutOfRange(t *testing.T) {
	m := testMap()
	m.SetTile(0, 0, 0, FilledTile(1))

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {16, 0}, {0, 16}} {
		if m.StateAt(p[0], p[1], 0) != nil {
			t.Errorf("StateAt(%d, %d) = non-nil, expected nil", p[0], p[1])
		}
	}
	if m.StateAt(0, 0, 5) != nil {
		t.Error("StateAt on a missing layer should be nil")
	}
}

func TestLayerOrderAscending(t *testing.T) {
	m := testMap()
	m.SetTile(0, 0, 1, FilledTile(1))
	m.SetTile(0, 0, -1, FilledTile(1))
	m.SetTile(0, 0, 0, FilledTile(1))

	layers := m.Layers()
	if len(layers) != 3 {
		t.Fatalf("expected 3 layers, got %d", len(layers))
	}
	for i := 1; i < len(layers); i++ {
		if layers[i-1] >= layers[i] {
			t.Fatalf("layers not ascending: %v", layers)
		}
	}
}

func TestInitViewport(t *testing.T) {
	m := testMap()
	m.InitViewport(600)

	want := -(600.0 / 16.0) * 3.0
	if m.ViewportOffset.Y != want {
		t.Errorf("ViewportOffset.Y = %v, expected %v", m.ViewportOffset.Y, want)
	}
	if m.ViewportOffset.X != 0 {
		t.Errorf("ViewportOffset.X = %v, expected 0", m.ViewportOffset.X)
	}
}

func TestUpdateInterpolatesTowardTargets(t *testing.T) {
	m := testMap()
	m.SetTile(2, 2, 0, FilledTile(1))

	s := m.StateAt(2, 2, 0)
	s.HeightOffset = -100
	s.TargetHeightOffset = 0
	s.Blend = Color{}
	s.TargetBlend = RGB(255, 255, 255)

	// Plenty of frames at 60 FPS; everything should converge.
	for i := 0; i < 600; i++ {
		m.Update(1.0 / 60.0)
	}

	if math.Abs(s.HeightOffset) > 0.5 {
		t.Errorf("height offset did not converge: %f", s.HeightOffset)
	}
	// 8-bit quantization stalls the lerp a few counts shy of the target.
	if s.Blend.R < 240 || s.Blend.A < 240 {
		t.Errorf("blend did not converge: %+v", s.Blend)
	}
}

func TestUpdateClampsLargeTimestep(t *testing.T) {
	m := testMap()
	m.SetTile(0, 0, 0, FilledTile(1))
	s := m.StateAt(0, 0, 0)
	s.HeightOffset = -100
	s.TargetHeightOffset = 0

	// A 1-second hitch must not overshoot the target.
	m.Update(1.0)
	if s.HeightOffset > 0 {
		t.Errorf("height offset overshot: %f", s.HeightOffset)
	}
}

func TestFloodFillOriginalColor(t *testing.T) {
	m := testMap()
	a := RGB(143, 182, 87)
	b := RGB(151, 171, 212)

	// A 2x2 patch of colour a at the map corner, plus a disconnected
	// tile of the same colour.
	m.SetTile(0, 0, 0, FilledTile(1).WithBlend(a))
	m.SetTile(0, 1, 0, FilledTile(1).WithBlend(a))
	m.SetTile(1, 0, 0, FilledTile(1).WithBlend(a))
	m.SetTile(1, 1, 0, FilledTile(1).WithBlend(a))
	m.SetTile(5, 5, 0, FilledTile(1).WithBlend(a))

	n := m.FloodFillOriginalColor(0, 0, 0, a, b)
	if n != 4 {
		t.Errorf("flood fill affected %d tiles, expected 4", n)
	}
	if !m.HasOriginalColor(0, 0, 0, b) || !m.HasOriginalColor(1, 1, 0, b) {
		t.Error("patch tiles not recoloured")
	}
	if !m.HasOriginalColor(5, 5, 0, a) {
		t.Error("disconnected tile was recoloured")
	}
}

func TestFloodFillAlphaInsensitive(t *testing.T) {
	m := testMap()
	a := RGB(143, 182, 87).WithAlpha(128)
	m.SetTile(0, 0, 0, FilledTile(1).WithBlend(a))

	if n := m.FloodFillOriginalColor(0, 0, 0, RGB(143, 182, 87), RGB(1, 2, 3)); n != 1 {
		t.Errorf("alpha-insensitive fill affected %d tiles, expected 1", n)
	}
}

func TestHasOriginalColorMissingTile(t *testing.T) {
	m := testMap()
	if m.HasOriginalColor(0, 0, 0, RGB(1, 2, 3)) {
		t.Error("HasOriginalColor true on empty map")
	}
}

func TestClear(t *testing.T) {
	m := testMap()
	m.SetTile(0, 0, 0, FilledTile(1))
	m.Clear()
	if len(m.Layers()) != 0 {
		t.Errorf("expected no layers after Clear, got %d", len(m.Layers()))
	}
	if m.StateAt(0, 0, 0) != nil {
		t.Error("StateAt non-nil after Clear")
	}
}
