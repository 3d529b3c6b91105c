package room

import (
	"errors"
	"testing"

	"github.com/mastrost/Coiil/pkg/math"
	"github.com/mastrost/Coiil/pkg/mesh"
)

func startMarker(at math.Vec3) mesh.Mesh {
	return mesh.Mesh{
		Name: "f.start",
		Vertices: []math.Vec3{
			at,
			at.Add(math.Vec3{X: 1}),
			at.Add(math.Vec3{Y: 1}),
		},
		Faces: []mesh.Face{{I1: 0, I2: 1, I3: 2}},
	}
}

func TestLoad_FullScene(t *testing.T) {
	scene := &mesh.Scene{Meshes: []mesh.Mesh{
		unitCube("wall"),
		{Name: "empty"}, // no vertices, skipped with a diagnostic
		startMarker(math.Vec3{X: 5.9, Y: 2.2, Z: 3.0}),
		planarQuad("nocollide.deco1"),
		{
			Name:     "f.door(5)",
			Vertices: []math.Vec3{{X: 2, Y: 0, Z: 0}, {X: 4, Y: 0, Z: 0}, {X: 3, Y: 3, Z: 0}},
			Faces:    []mesh.Face{{I1: 0, I2: 1, I3: 2}},
		},
		planarQuad("floor"),
	}}

	r, err := Load(scene, Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Start comes from the marker's first face vertex, truncated to grid.
	if r.Start != (math.Vec3i{X: 5, Y: 2, Z: 3}) {
		t.Errorf("Start = %v, want (5,2,3)", r.Start)
	}

	// Only "wall" and "floor" collide, in source order.
	if len(r.Colliders) != 2 {
		t.Fatalf("expected 2 colliders, got %d", len(r.Colliders))
	}
	if len(r.Colliders[0].Planes) != 24 {
		t.Errorf("collider 0 should be the cube (24 planes), got %d", len(r.Colliders[0].Planes))
	}
	if len(r.Colliders[1].Planes) != 2 {
		t.Errorf("collider 1 should be the quad (2 planes), got %d", len(r.Colliders[1].Planes))
	}

	if len(r.Things) != 1 {
		t.Fatalf("expected 1 thing, got %d", len(r.Things))
	}
	door := r.Things[0]
	if door.TypeName != "door" {
		t.Errorf("thing type = %q, want 'door'", door.TypeName)
	}
	if door.Config["0"] != "5" || len(door.Config) != 1 {
		t.Errorf("thing config = %v, want {0:5}", door.Config)
	}
	if door.Pos != (math.Vec3{X: 3, Y: 1, Z: 0}) {
		t.Errorf("thing pos = %v, want centroid (3,1,0)", door.Pos)
	}
}

func TestLoad_DefaultStart(t *testing.T) {
	r, err := Load(&mesh.Scene{}, Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if r.Start != DefaultStart {
		t.Errorf("Start = %v, want default %v", r.Start, DefaultStart)
	}
}

func TestLoad_StartOverride(t *testing.T) {
	alt := math.Vec3i{X: 9, Y: 9, Z: 9}
	r, err := Load(&mesh.Scene{}, Options{Start: &alt})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if r.Start != alt {
		t.Errorf("Start = %v, want override %v", r.Start, alt)
	}
}

func TestLoad_MarkersProduceNoGeometry(t *testing.T) {
	scene := &mesh.Scene{Meshes: []mesh.Mesh{
		startMarker(math.Vec3{}),
		planarQuad("nocollide.deco1"),
	}}

	r, err := Load(scene, Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(r.Colliders) != 0 || len(r.Things) != 0 {
		t.Errorf("markers and decoration produced output: %d colliders, %d things",
			len(r.Colliders), len(r.Things))
	}
}

func TestLoad_BadDirectiveFailsLoad(t *testing.T) {
	scene := &mesh.Scene{Meshes: []mesh.Mesh{
		{
			Name:     `f.bad("oops`,
			Vertices: []math.Vec3{{X: 1}},
		},
	}}

	_, err := Load(scene, Options{})
	if !errors.Is(err, ErrUnterminatedString) {
		t.Fatalf("Load error = %v, want %v", err, ErrUnterminatedString)
	}
}

func TestLoad_BadDirectiveSkippedWhenConfigured(t *testing.T) {
	scene := &mesh.Scene{Meshes: []mesh.Mesh{
		{
			Name:     "f.bad(unterminated",
			Vertices: []math.Vec3{{X: 1}},
		},
		{
			Name:     "f.door",
			Vertices: []math.Vec3{{X: 1}},
		},
	}}

	r, err := Load(scene, Options{SkipBadDirectives: true})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(r.Things) != 1 || r.Things[0].TypeName != "door" {
		t.Errorf("expected only the valid directive to survive, got %v", r.Things)
	}
}

func TestLoad_ColliderOrderPreserved(t *testing.T) {
	scene := &mesh.Scene{Meshes: []mesh.Mesh{
		planarQuad("a"),
		unitCube("b"),
		planarQuad("nocollide.skipme"),
		planarQuad("c"),
	}}

	r, err := Load(scene, Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []int{2, 24, 2}
	if len(r.Colliders) != len(want) {
		t.Fatalf("expected %d colliders, got %d", len(want), len(r.Colliders))
	}
	for i, n := range want {
		if len(r.Colliders[i].Planes) != n {
			t.Errorf("collider %d has %d planes, want %d", i, len(r.Colliders[i].Planes), n)
		}
	}
}
