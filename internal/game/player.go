package game

import (
	"math"

	"layered/internal/tile"
)

// Player is the avatar moving across the tile grid.
type Player struct {
	Position tile.Vec2

	// Flip the sprite during rightwards motion.
	SpriteFlipped bool
}

func NewPlayer(spawn tile.Vec2) *Player {
	return &Player{Position: spawn}
}

// Translate moves the player toward target (a grid-space point) at the
// fixed player velocity, clamping to the map and reverting wall hits one
// axis at a time. Movement only happens while the target is at least one
// unit away, so the sprite doesn't jitter around a nearby cursor.
func (p *Player) Translate(dt float64, target tile.Vec2, m *GameMap) {
	velocity := PlayerVelocity * dt
	lastPos := p.Position

	dx := target.X - p.Position.X
	dy := target.Y - p.Position.Y
	distance := math.Hypot(dx, dy)
	if distance < moveDeadzone {
		return
	}

	// Constant-velocity lerp so movement doesn't slow down when the
	// player is close to the target.
	step := velocity / distance
	p.Position.X += dx * step
	p.Position.Y += dy * step

	p.SpriteFlipped = lastPos.X < target.X

	// Only permit moves which keep the player on the map.
	if p.Position.X < 0 || p.Position.X > MapWidth-1 {
		p.Position.X = lastPos.X
	}
	if p.Position.Y < 0 || p.Position.Y > MapHeight-1 {
		p.Position.Y = lastPos.Y
	}

	// Wall collisions: revert the X axis, then the Y axis, then both.
	x := int(p.Position.X)
	y := int(p.Position.Y)
	if m.IsWall(x, y) {
		switch {
		case !m.IsWall(int(lastPos.X), y):
			p.Position.X = lastPos.X
		case !m.IsWall(x, int(lastPos.Y)):
			p.Position.Y = lastPos.Y
		default:
			p.Position = lastPos
		}
	}
}

// KeyTarget converts held WASD-style directional input to a grid-space
// movement target relative to the player. The axes are rotated so keys
// move the sprite in screen space on the dimetric grid.
func (p *Player) KeyTarget(up, down, left, right bool) (tile.Vec2, bool) {
	target := p.Position
	moved := false

	if up {
		target.X -= 1
		target.Y -= 1
		moved = true
	} else if down {
		target.X += 1
		target.Y += 1
		moved = true
	}

	if left {
		target.X -= 1
		target.Y += 1
		moved = true
	} else if right {
		target.X += 1
		target.Y -= 1
		moved = true
	}

	return target, moved
}

// OnDanger reports whether the player stands on a danger tile.
func (p *Player) OnDanger(m *GameMap) bool {
	return m.IsDanger(int(p.Position.X), int(p.Position.Y))
}
