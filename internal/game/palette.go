package game

import "layered/internal/tile"

// Palette holds the game's colour constants. Blend masks key off exact
// RGB values, so these double as level-bitmap semantics.
var Palette = struct {
	// "Default" colour, typically only meaningful for blend masks.
	Default tile.Color

	// Primary accent: unreached objectives.
	Accent1 tile.Color

	// Secondary accent: reached objectives and dangers.
	Accent2 tile.Color

	// Tertiary accent: player spawn points.
	Accent3 tile.Color

	// Fog of war overlay.
	FogOfWar tile.Color

	// Map background; also the wall colour in level bitmaps.
	Background tile.Color
}{
	Default:    tile.RGB(255, 255, 255),
	Accent1:    tile.RGB(143, 182, 87),
	Accent2:    tile.RGB(151, 171, 212),
	Accent3:    tile.RGB(239, 146, 117),
	FogOfWar:   tile.Color{R: 0, G: 0, B: 0, A: 156},
	Background: tile.RGB(19, 21, 16),
}
