package game

import "testing"

// The overlay quad must map every view pixel onto the fog texture's
// solid diamond; a too-small quad leaves the view corners uncovered
// because the diamond edge rasterizes half a texel inside the band.
func TestOverlayQuadCoversViewCorners(t *testing.T) {
	for _, view := range [][2]int{{800, 600}, {1024, 768}, {320, 240}} {
		q := overlayQuad(Palette.Background, view[0], view[1])

		corners := [][2]float64{
			{0, 0},
			{float64(view[0]) - 1, 0},
			{0, float64(view[1]) - 1},
			{float64(view[0]) - 1, float64(view[1]) - 1},
		}
		for _, c := range corners {
			u := (c[0] - q.Pos.X) / q.Size.X
			v := (c[1] - q.Pos.Y) / q.Size.Y
			x := int(u * TexSize)
			y := int(v * TexSize)
			if !inDiamond(x, y, TexSize/4, TexSize/2) {
				t.Errorf("view %v corner %v maps to transparent texel (%d, %d)", view, c, x, y)
			}
		}
	}
}

func TestOverlayQuadCarriesBlend(t *testing.T) {
	c := Palette.Background.WithAlpha(128)
	q := overlayQuad(c, 800, 600)
	if q.Blend != c {
		t.Errorf("overlay blend = %+v, want %+v", q.Blend, c)
	}
	if q.Texture != TexFog {
		t.Errorf("overlay texture = %d, want fog", q.Texture)
	}
}
