package room

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mastrost/Coiil/pkg/math"
	"github.com/mastrost/Coiil/pkg/mesh"
)

// Object name prefixes, tested in this order. First match wins. These are
// the authoring convention shared with the level exporter and must not
// change without re-exporting every level.
const (
	prefixStart     = "f.start"
	prefixNoCollide = "nocollide."
	prefixThing     = "f."
)

// DefaultStart is the spawn position used when the scene has no start
// marker.
var DefaultStart = math.Vec3i{X: 0, Y: 0, Z: 2}

// Options configure a room load. The zero value is usable: diagnostics are
// discarded, a bad spawn directive fails the load, and the start position
// falls back to DefaultStart.
type Options struct {
	Log *zap.SugaredLogger

	// SkipBadDirectives drops spawn directives whose name fails to parse
	// instead of failing the whole load.
	SkipBadDirectives bool

	// Start overrides DefaultStart as the fallback start position.
	Start *math.Vec3i
}

// Load builds a Room from the scene's meshes, in source order. Meshes are
// dispatched on their name: "f.start" sets the start position,
// "nocollide.*" is render-only decoration, "f.<call>" becomes a spawn
// directive and anything else becomes a collision brush. Empty meshes are
// diagnosed and skipped.
func Load(scene *mesh.Scene, opts Options) (*Room, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	start := DefaultStart
	if opts.Start != nil {
		start = *opts.Start
	}

	r := &Room{Start: start}

	for i := range scene.Meshes {
		m := &scene.Meshes[i]

		if len(m.Vertices) == 0 {
			log.Warnf("object %q has no vertices", m.Name)
			continue
		}

		switch {
		case strings.HasPrefix(m.Name, prefixStart):
			if len(m.Faces) == 0 {
				log.Warnf("start marker %q has no faces, using its first vertex", m.Name)
				r.Start = math.Truncate(m.Vertices[0])
				continue
			}
			r.Start = math.Truncate(m.Vertices[m.Faces[0].I1])

		case strings.HasPrefix(m.Name, prefixNoCollide):
			// decoration, nothing to collide with or spawn

		case strings.HasPrefix(m.Name, prefixThing):
			typeName, config, err := parseFormula(m.Name[len(prefixThing):])
			if err != nil {
				if opts.SkipBadDirectives {
					log.Warnf("object %q: skipping bad spawn directive: %v", m.Name, err)
					continue
				}
				return nil, fmt.Errorf("object %q: %w", m.Name, err)
			}
			r.Things = append(r.Things, Thing{
				Pos:      m.Centroid(),
				TypeName: typeName,
				Config:   config,
			})

		default:
			brush := buildBrush(m)
			bevelSharpEdges(m, &brush, log)
			r.Colliders = append(r.Colliders, brush)
		}
	}

	return r, nil
}
