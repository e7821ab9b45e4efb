package game

import (
	"image"
	"image/color"

	"layered/internal/tile"
)

// Level bitmaps shipped with the jam build as PNGs. Without the binary
// assets, levels are carved deterministically from the level number, in
// the same palette the bitmap loader expects.

// Carve parameters.
const (
	levelWalkSteps   = 9000
	objectiveCluster = 3 // objective patch radius
	dangerCluster    = 2
)

func paletteRGBA(c tile.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// GenerateLevel returns the bitmap for a level: walls in the background
// colour, floors in neutral grey, objective/danger/spawn accents. The
// same seed and level always produce the same bitmap.
func GenerateLevel(seed uint64, level int) image.Image {
	r := NewRand(hash2D(seed, level, 0x1E5E1))

	img := image.NewRGBA(image.Rect(0, 0, MapWidth, MapHeight))
	wall := paletteRGBA(Palette.Background)
	floor := color.RGBA{R: 96, G: 96, B: 96, A: 255}

	for y := 0; y < MapHeight; y++ {
		for x := 0; x < MapWidth; x++ {
			img.SetRGBA(x, y, wall)
		}
	}

	// Drunkard's-walk carve from the centre; every visited pixel
	// becomes floor, so the walkable area is connected by construction.
	x, y := MapWidth/2, MapHeight/2
	img.SetRGBA(x, y, floor)
	for i := 0; i < levelWalkSteps; i++ {
		switch r.Intn(4) {
		case 0:
			x++
		case 1:
			x--
		case 2:
			y++
		case 3:
			y--
		}
		x = clamp(x, 1, MapWidth-2)
		y = clamp(y, 1, MapHeight-2)
		img.SetRGBA(x, y, floor)
	}

	// Spawn at the carve origin.
	img.SetRGBA(MapWidth/2, MapHeight/2, paletteRGBA(Palette.Accent3))

	// Objective patches on carved floor, count scaling with the level.
	objectives := 2 + level
	if objectives > 8 {
		objectives = 8
	}
	for i := 0; i < objectives; i++ {
		stampCluster(img, r, floor, paletteRGBA(Palette.Accent1), objectiveCluster)
	}

	// Danger patches from level 2 on.
	for i := 0; i < level-1 && i < 6; i++ {
		stampCluster(img, r, floor, paletteRGBA(Palette.Accent2), dangerCluster)
	}

	// A level must always have something to find.
	if !hasColor(img, paletteRGBA(Palette.Accent1)) {
		img.SetRGBA(MapWidth/2+1, MapHeight/2, paletteRGBA(Palette.Accent1))
	}

	return img
}

func hasColor(img *image.RGBA, c color.RGBA) bool {
	for y := 0; y < MapHeight; y++ {
		for x := 0; x < MapWidth; x++ {
			if img.RGBAAt(x, y) == c {
				return true
			}
		}
	}
	return false
}

// stampCluster paints a rough disc of colour over floor pixels, centred
// on a randomly chosen floor pixel.
func stampCluster(img *image.RGBA, r *Rand, floor, c color.RGBA, radius int) {
	// Rejection-sample a floor pixel; the carve makes plenty.
	var cx, cy int
	for tries := 0; tries < 400; tries++ {
		cx = r.Range(1, MapWidth-2)
		cy = r.Range(1, MapHeight-2)
		if img.RGBAAt(cx, cy) == floor {
			break
		}
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			px := clamp(cx+dx, 1, MapWidth-2)
			py := clamp(cy+dy, 1, MapHeight-2)
			if img.RGBAAt(px, py) == floor {
				img.SetRGBA(px, py, c)
			}
		}
	}
}
