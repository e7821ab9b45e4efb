package game

import "layered/internal/tile"

// Texture pixel size. Tiles render as quads; the dimetric diamond lives
// inside the quad with transparent corners.
const TexSize = 32

// TexturePixels is a TexSize x TexSize RGBA buffer for one texture.
type TexturePixels struct {
	ID     tile.Texture
	Pixels []uint8
}

// BuildTextures synthesizes the tile and sprite textures. The art
// assets aren't in the repo, so the look is flat-shaded pixel art:
// blend colours from the tile states do most of the visual work.
func BuildTextures() []TexturePixels {
	return []TexturePixels{
		{ID: TexWall, Pixels: wallPixels()},
		{ID: TexFloor, Pixels: floorPixels()},
		{ID: TexFog, Pixels: fogPixels()},
		{ID: TexPlayer, Pixels: playerPixels()},
	}
}

func set(px []uint8, x, y int, r, g, b, a uint8) {
	i := (y*TexSize + x) * 4
	px[i] = r
	px[i+1] = g
	px[i+2] = b
	px[i+3] = a
}

// inDiamond reports whether (x, y) lies inside the dimetric diamond
// occupying the vertical band [topY, topY+h) of the texture.
func inDiamond(x, y, topY, h int) bool {
	if y < topY || y >= topY+h {
		return false
	}
	fx := (float64(x) + 0.5) / TexSize * 2.0        // 0..2 across
	fy := (float64(y-topY) + 0.5) / float64(h) * 2.0 // 0..2 down
	dx := fx - 1.0
	dy := fy - 1.0
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy <= 1.0
}

// overlayQuad is the fog-textured quad that fills the whole view during
// transitions, oversized so the diamond's texels reach past every view
// corner.
func overlayQuad(c tile.Color, fbW, fbH int) tile.Draw {
	w := float64(fbW)
	h := float64(fbH)
	return tile.Draw{
		Pos:     tile.Vec2{X: -1.5 * w, Y: -1.5 * h},
		Size:    tile.Vec2{X: w * 4, Y: h * 4},
		Texture: TexFog,
		Blend:   c,
	}
}

// floorPixels is a flat white diamond in the lower half of the quad;
// tile blend colours tint it.
func floorPixels() []uint8 {
	px := make([]uint8, TexSize*TexSize*4)
	for y := 0; y < TexSize; y++ {
		for x := 0; x < TexSize; x++ {
			if inDiamond(x, y, TexSize/2, TexSize/2) {
				set(px, x, y, 255, 255, 255, 255)
			}
		}
	}
	return px
}

// wallPixels is a raised block: a top diamond plus two shaded faces.
func wallPixels() []uint8 {
	px := make([]uint8, TexSize*TexSize*4)
	half := TexSize / 2
	for y := 0; y < TexSize; y++ {
		for x := 0; x < TexSize; x++ {
			switch {
			case inDiamond(x, y, 0, half):
				// Lit top.
				set(px, x, y, 64, 70, 58, 255)
			case y >= half/2 && inDiamond(x, y-half, half/2, half):
				// Side faces, left darker than right.
				if x < half {
					set(px, x, y, 30, 33, 27, 255)
				} else {
					set(px, x, y, 42, 46, 38, 255)
				}
			}
		}
	}
	return px
}

// fogPixels is a solid white diamond; the fog blend colour carries the
// darkness and alpha.
func fogPixels() []uint8 {
	px := make([]uint8, TexSize*TexSize*4)
	for y := 0; y < TexSize; y++ {
		for x := 0; x < TexSize; x++ {
			if inDiamond(x, y, TexSize/4, TexSize/2) {
				set(px, x, y, 255, 255, 255, 255)
			}
		}
	}
	return px
}

// playerPixels is a small standing figure centred on the tile.
func playerPixels() []uint8 {
	px := make([]uint8, TexSize*TexSize*4)
	cx := TexSize / 2

	// Body column.
	for y := TexSize / 4; y < TexSize*3/4; y++ {
		w := 3
		if y < TexSize*3/8 {
			w = 4 // head wider
		}
		for x := cx - w; x < cx+w; x++ {
			set(px, x, y, 239, 146, 117, 255)
		}
	}

	// Eyes face the camera.
	set(px, cx-2, TexSize*5/16, 19, 21, 16, 255)
	set(px, cx+1, TexSize*5/16, 19, 21, 16, 255)

	return px
}
