// Package formats provides parsers for scene and asset file formats.
package formats

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mastrost/Coiil/pkg/math"
	"github.com/mastrost/Coiil/pkg/mesh"
)

// OBJ format errors.
var (
	ErrMalformedOBJVertex = errors.New("malformed OBJ vertex")
	ErrMalformedOBJFace   = errors.New("malformed OBJ face")
	ErrOBJIndexOutOfRange = errors.New("OBJ face index out of range")
)

// objBuilder accumulates one named object while its faces are read.
// OBJ vertex indices are global to the file; remap keeps each output mesh
// self-contained by copying the vertices it references.
type objBuilder struct {
	out   mesh.Mesh
	remap map[int]int // global vertex index -> local index in out.Vertices
}

func newObjBuilder(name string) *objBuilder {
	return &objBuilder{
		out:   mesh.Mesh{Name: name},
		remap: make(map[int]int),
	}
}

func (b *objBuilder) localIndex(global int, verts []math.Vec3) int {
	if idx, ok := b.remap[global]; ok {
		return idx
	}
	idx := len(b.out.Vertices)
	b.out.Vertices = append(b.out.Vertices, verts[global])
	b.remap[global] = idx
	return idx
}

// ParseOBJ parses a Wavefront OBJ scene from raw bytes. Only the subset
// used by level exports is understood: object starts (o/g), vertex
// positions (v) and faces (f). Faces with more than three vertices are
// fan-triangulated. Texture and normal indices in v/vt/vn references are
// read and discarded.
func ParseOBJ(data []byte) (*mesh.Scene, error) {
	scene := &mesh.Scene{}

	var verts []math.Vec3
	var cur *objBuilder

	flush := func() {
		if cur != nil {
			scene.Meshes = append(scene.Meshes, cur.out)
			cur = nil
		}
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "o", "g":
			flush()
			name := ""
			if len(fields) > 1 {
				name = fields[1]
			}
			cur = newObjBuilder(name)

		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedOBJVertex, lineNo, line)
			}
			var p [3]float32
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedOBJVertex, lineNo, line)
				}
				p[i] = float32(f)
			}
			verts = append(verts, math.Vec3{X: p[0], Y: p[1], Z: p[2]})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedOBJFace, lineNo, line)
			}
			if cur == nil {
				cur = newObjBuilder("")
			}
			indices := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				global, err := parseFaceRef(ref, len(verts))
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %q", err, lineNo, line)
				}
				indices = append(indices, cur.localIndex(global, verts))
			}
			// Fan triangulation around the first vertex.
			for i := 2; i < len(indices); i++ {
				cur.out.Faces = append(cur.out.Faces, mesh.Face{
					I1: indices[0],
					I2: indices[i-1],
					I3: indices[i],
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	flush()
	return scene, nil
}

// parseFaceRef resolves one face vertex reference ("7", "7/2", "7/2/5" or
// "7//5") to a zero-based global vertex index. OBJ indices are 1-based;
// negative indices count back from the most recent vertex.
func parseFaceRef(ref string, vertCount int) (int, error) {
	if slash := strings.IndexByte(ref, '/'); slash >= 0 {
		ref = ref[:slash]
	}
	idx, err := strconv.Atoi(ref)
	if err != nil || idx == 0 {
		return 0, ErrMalformedOBJFace
	}
	if idx < 0 {
		idx = vertCount + idx
	} else {
		idx--
	}
	if idx < 0 || idx >= vertCount {
		return 0, ErrOBJIndexOutOfRange
	}
	return idx, nil
}

// LoadOBJ reads and parses an OBJ scene file.
func LoadOBJ(path string) (*mesh.Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	scene, err := ParseOBJ(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return scene, nil
}
