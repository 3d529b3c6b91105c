// Package room builds the runtime level representation from an exported
// mesh scene: a start position, convex collision brushes derived from the
// geometry, and spawn directives parsed from object names.
package room

import "github.com/mastrost/Coiil/pkg/math"

// Plane is a half-space boundary. Points p with N·p <= D are inside.
type Plane struct {
	N math.Vec3 // unit normal
	D float32
}

// Contains reports whether p lies in the inside half-space.
func (pl Plane) Contains(p math.Vec3) bool {
	return pl.N.Dot(p) <= pl.D
}

// Convex is one collision brush: the intersection of its planes' inside
// half-spaces. One brush is built per collidable mesh, with at least one
// plane per face; bevel planes only add.
type Convex struct {
	Planes []Plane
}

// Contains reports whether p lies inside the brush.
func (c *Convex) Contains(p math.Vec3) bool {
	for _, pl := range c.Planes {
		if !pl.Contains(p) {
			return false
		}
	}
	return true
}

// Thing is a deferred spawn request: construct a game object of TypeName at
// Pos, configured with positional arguments keyed "0", "1", ….
type Thing struct {
	Pos      math.Vec3
	TypeName string
	Config   map[string]string
}

// Room is the loaded level, handed off to physics (Colliders) and entity
// construction (Things). Immutable after Load returns.
type Room struct {
	Start     math.Vec3i
	Colliders []Convex
	Things    []Thing
}
