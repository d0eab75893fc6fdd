package brickbreaker

import "github.com/vovakirdan/brickbreaker/internal/core"

// Ball represents the ball state in arena units.
type Ball struct {
	X, Y   float64 // Position (center)
	DX, DY float64 // Velocity per tick
	Radius float64
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.DX = -b.DX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.DY = -b.DY
}

// NextX returns where the ball would be horizontally after one more move.
func (b *Ball) NextX() float64 {
	return b.X + b.DX
}

// NextY returns where the ball would be vertically after one more move.
func (b *Ball) NextY() float64 {
	return b.Y + b.DY
}

// Paddle is the player's paddle for a single frame.
// Only X changes; it is derived from the pointer every frame.
type Paddle struct {
	X      float64 // Left edge
	Width  float64
	Height float64
}

// PaddleAt places a paddle centered under pointerX, clamped to [0, arenaW-width].
func PaddleAt(pointerX, width, height, arenaW float64) Paddle {
	return Paddle{
		X:      core.ClampF(pointerX-width/2, 0, arenaW-width),
		Width:  width,
		Height: height,
	}
}

// Right returns the right edge.
func (p Paddle) Right() float64 {
	return p.X + p.Width
}

// Covers reports whether x lies strictly between the paddle edges.
func (p Paddle) Covers(x float64) bool {
	return x > p.X && x < p.Right()
}

// CollisionSide indicates which boundary the ball reached.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionCeiling
	CollisionPaddle
	CollisionFloor
)

// String returns a human-readable name for the collision.
func (s CollisionSide) String() string {
	switch s {
	case CollisionCeiling:
		return "ceiling"
	case CollisionPaddle:
		return "paddle"
	case CollisionFloor:
		return "floor"
	default:
		return "none"
	}
}

// CheckWallCollision bounces the ball off the left and right walls.
// The test uses the projected position x+dx, evaluated on the ball as it is
// after this tick's move. Returns true on a bounce.
func CheckWallCollision(ball *Ball, arenaW float64) bool {
	if ball.NextX() > arenaW-ball.Radius || ball.NextX() < ball.Radius {
		ball.BounceX()
		return true
	}
	return false
}

// CheckVerticalCollision handles the ceiling, the paddle and the floor.
// The ceiling bounces. Near the bottom the ball bounces if the paddle covers
// it; otherwise CollisionFloor is returned once the ball would leave the arena.
func CheckVerticalCollision(ball *Ball, paddle Paddle, arenaH float64) CollisionSide {
	if ball.NextY() < ball.Radius {
		ball.BounceY()
		return CollisionCeiling
	}

	if ball.NextY() > arenaH-paddle.Height-ball.Radius {
		if paddle.Covers(ball.X) {
			ball.BounceY()
			return CollisionPaddle
		}
		if ball.NextY() > arenaH-ball.Radius {
			return CollisionFloor
		}
	}

	return CollisionNone
}
