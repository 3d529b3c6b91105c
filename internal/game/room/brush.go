package room

import (
	"go.uber.org/zap"

	"github.com/mastrost/Coiil/pkg/math"
	"github.com/mastrost/Coiil/pkg/mesh"
)

// faceNormal computes the outward face normal under the right-hand rule.
// Outward winding is a content precondition; an inverted face silently
// flips its half-space.
func faceNormal(m *mesh.Mesh, f mesh.Face) math.Vec3 {
	a := m.Vertices[f.I1]
	b := m.Vertices[f.I2]
	c := m.Vertices[f.I3]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// buildBrush derives one half-space plane per triangle face.
func buildBrush(m *mesh.Mesh) Convex {
	brush := Convex{Planes: make([]Plane, 0, len(m.Faces))}
	for _, f := range m.Faces {
		n := faceNormal(m, f)
		brush.Planes = append(brush.Planes, Plane{N: n, D: n.Dot(m.Vertices[f.I1])})
	}
	return brush
}

// edgeKey identifies an undirected mesh edge by its endpoint positions,
// ordered so that V1 precedes V2 under the exact lexicographic point order.
// Both triangles sharing an edge then produce the same key.
type edgeKey struct {
	V1, V2 math.Vec3
}

func makeEdgeKey(a, b math.Vec3) edgeKey {
	return edgeKey{math.Min(a, b), math.Max(a, b)}
}

// bevelSharpEdges appends a truncating plane for every edge whose two
// incident faces meet at 90 degrees or more. Without these, collision
// response can snag on the exact edge between two face planes. Edges with
// an incident-face count other than 2 (open boundaries, non-manifold
// geometry) are diagnosed and skipped.
func bevelSharpEdges(m *mesh.Mesh, brush *Convex, log *zap.SugaredLogger) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	normals := make(map[edgeKey][]math.Vec3)
	var order []edgeKey // first-seen order keeps the output deterministic

	addEdge := func(a, b, n math.Vec3) {
		k := makeEdgeKey(a, b)
		if _, seen := normals[k]; !seen {
			order = append(order, k)
		}
		normals[k] = append(normals[k], n)
	}

	for _, f := range m.Faces {
		n := faceNormal(m, f)
		a := m.Vertices[f.I1]
		b := m.Vertices[f.I2]
		c := m.Vertices[f.I3]
		addEdge(a, b, n)
		addEdge(b, c, n)
		addEdge(c, a, n)
	}

	for _, k := range order {
		incident := normals[k]
		if len(incident) != 2 {
			log.Warnf("bevel: mesh %q: %d faces are incident to the same edge", m.Name, len(incident))
			continue
		}

		n1, n2 := incident[0], incident[1]
		if n1.Dot(n2) > 0 {
			continue // acute edge, face planes suffice
		}

		n3 := n1.Add(n2).Normalize()
		brush.Planes = append(brush.Planes, Plane{N: n3, D: n3.Dot(k.V1)})
	}
}
