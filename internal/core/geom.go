// Package core provides fundamental types and utilities for the game.
// It holds no rendering or windowing dependencies so object logic stays pure
// and testable; only go-gl/mathgl vectors leak into its API.
package core

import "github.com/go-gl/mathgl/mgl64"

// ShapeKind tags the geometry stored in a Hitbox.
type ShapeKind uint8

const (
	// ShapeBox is an axis-aligned rectangle. It is the only kind today.
	ShapeBox ShapeKind = iota
)

// String returns a human-readable name for the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	default:
		return "unknown"
	}
}

// Hitbox is an axis-aligned bounding box used for collision detection.
// X, Y is the minimum corner (left, bottom in the y-up playfield) and the
// box extends W towards +x and H towards +y.
type Hitbox struct {
	Kind ShapeKind
	X, Y float64
	W, H float64
}

// NewHitbox creates a box hitbox from [x, y, width, height] values.
func NewHitbox(values [4]float64) Hitbox {
	return Hitbox{Kind: ShapeBox, X: values[0], Y: values[1], W: values[2], H: values[3]}
}

// CenteredHitbox returns a box scale*size wide centred on center.
func CenteredHitbox(center, size mgl64.Vec2, scale float64) Hitbox {
	w, h := scale*size[0], scale*size[1]
	return NewHitbox([4]float64{center[0] - w/2, center[1] - h/2, w, h})
}

// Update replaces the rectangle in place with [x, y, width, height].
// Negative sizes are not validated.
func (h *Hitbox) Update(values [4]float64) {
	*h = Hitbox{Kind: h.Kind, X: values[0], Y: values[1], W: values[2], H: values[3]}
}

// Right returns the x-coordinate of the right edge.
func (h Hitbox) Right() float64 {
	return h.X + h.W
}

// Top returns the y-coordinate of the top edge.
func (h Hitbox) Top() float64 {
	return h.Y + h.H
}

// Overlaps reports whether two boxes intersect. Edges are inclusive:
// touching boxes overlap, any positive gap on either axis does not.
func (h Hitbox) Overlaps(other Hitbox) bool {
	// No overlap if one box lies completely beyond the other on an axis
	if h.X > other.Right() || other.X > h.Right() {
		return false
	}
	if h.Y > other.Top() || other.Y > h.Top() {
		return false
	}
	return true
}

// OutsideWindow reports whether any edge of h leaves the playfield of the
// given pixel resolution. The playfield is centred on the origin.
func OutsideWindow(h Hitbox, resolution mgl64.Vec2) bool {
	halfW, halfH := resolution[0]/2, resolution[1]/2
	return h.X < -halfW || h.Right() > halfW || h.Y < -halfH || h.Top() > halfH
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
