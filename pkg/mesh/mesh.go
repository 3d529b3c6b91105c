// Package mesh defines the in-memory scene representation handed to the
// room loader: a list of named triangle meshes in source order.
package mesh

import "github.com/mastrost/Coiil/pkg/math"

// Face is a triangle, three indices into the owning mesh's vertex array.
// Vertex order follows the right-hand rule so the face normal points
// outward; the loader does not verify this.
type Face struct {
	I1, I2, I3 int
}

// Mesh is one named object from the scene.
type Mesh struct {
	Name     string
	Vertices []math.Vec3
	Faces    []Face
}

// Centroid returns the arithmetic mean of all vertex positions.
// Returns the zero vector for an empty mesh.
func (m *Mesh) Centroid() math.Vec3 {
	if len(m.Vertices) == 0 {
		return math.Vec3{}
	}
	var sum math.Vec3
	for _, v := range m.Vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1 / float32(len(m.Vertices)))
}

// Scene is an ordered list of meshes as exported by the authoring tool.
type Scene struct {
	Meshes []Mesh
}
