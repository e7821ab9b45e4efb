package game

import (
	"image"

	"layered/internal/tile"
)

// Texture handles shared between the simulation and whichever renderer
// is driving it. Renderers bind real textures to these ids at startup.
const (
	TexWall tile.Texture = iota + 1
	TexFloor
	TexFog
	TexPlayer
)

// GameMap owns the tile map for the current level plus the level-derived
// bookkeeping (objectives, spawn point, fog).
type GameMap struct {
	Map *tile.Map

	// Number of unreached objective tiles (Accent1 blend).
	ObjectivesRemaining int

	// Spawn point from the last loaded bitmap.
	Spawn tile.Vec2

	// Danger tiles as loaded. Reached objectives share the Accent2
	// blend colour, so dangers are pinned at load time instead of being
	// recomputed from colours.
	dangers map[[2]int]bool
}

// NewGameMap returns an empty game map with the standard viewport.
func NewGameMap() *GameMap {
	m := tile.New(MapWidth, MapHeight, Palette.Background, Palette.Default)
	m.ViewportScale = DefaultScale
	return &GameMap{Map: m}
}

// LoadLevel rebuilds the tile map from a level bitmap. All tiles start
// far below the grid and rise into place; objectives are counted from
// their blend colour. Returns the player spawn position.
func (g *GameMap) LoadLevel(bitmap image.Image) tile.Vec2 {
	// Recreate the map from scratch to clear out any old state.
	g.Map = tile.New(MapWidth, MapHeight, Palette.Background, Palette.Default)
	g.Map.ViewportScale = DefaultScale

	spawn, ok := g.Map.LoadBitmap(bitmap, ForegroundLayer, levelColorMapper{})
	if !ok {
		// Levels without a marked spawn start at the map centre.
		spawn = tile.Vec2{X: MapWidth / 2, Y: MapHeight / 2}
	}
	g.Spawn = spawn

	g.ObjectivesRemaining = 0
	g.dangers = make(map[[2]int]bool)
	for x := 0; x < MapWidth; x++ {
		for y := 0; y < MapHeight; y++ {
			if s := g.Map.StateAt(x, y, ForegroundLayer); s != nil {
				s.HeightOffset = LoadDropHeight
				s.TargetHeightOffset = 0

				if s.OriginalBlend.EqRGB(Palette.Accent1) {
					g.ObjectivesRemaining++
				}
				if s.Texture == TexFloor && s.OriginalBlend.EqRGB(Palette.Accent2) {
					g.dangers[[2]int{x, y}] = true
				}
			}
		}
	}

	// Fog covers the whole grid one layer up.
	for x := 0; x < MapWidth; x++ {
		for y := 0; y < MapHeight; y++ {
			g.Map.SetTile(x, y, FogLayer, tile.FilledTile(TexFog).WithBlend(Palette.FogOfWar))
		}
	}

	return spawn
}

// IsDanger reports whether the tile at (x, y) was loaded as a danger.
func (g *GameMap) IsDanger(x, y int) bool {
	return g.dangers[[2]int{x, y}]
}

// IsWall reports whether the foreground tile at (x, y) blocks movement.
func (g *GameMap) IsWall(x, y int) bool {
	s := g.Map.StateAt(x, y, ForegroundLayer)
	return s != nil && s.Texture == TexWall
}

// Update advances tile state animation.
func (g *GameMap) Update(dt float64) {
	g.Map.Update(dt)
}

// levelColorMapper defines the level-bitmap colour semantics:
//   - background colour: walls
//   - accent 1: objectives
//   - accent 2: dangers
//   - accent 3: player spawn
//   - anything else: plain floor at partial opacity
type levelColorMapper struct{}

func (levelColorMapper) MapPixel(x, y int, c tile.Color) (tile.Tile, bool, bool) {
	if c.EqRGB(Palette.Background) {
		return tile.FilledTile(TexWall), false, true
	}

	var blend tile.Color
	spawn := false
	switch {
	case c.EqRGB(Palette.Accent1):
		blend = Palette.Accent1
	case c.EqRGB(Palette.Accent2):
		blend = Palette.Accent2
	case c.EqRGB(Palette.Accent3):
		blend = Palette.Accent3
		spawn = true
	default:
		opacity := float64(FloorOpacity)
		blend = Palette.Default.WithAlpha(uint8(opacity * 255))
	}

	return tile.FilledTile(TexFloor).WithBlend(blend), spawn, true
}
