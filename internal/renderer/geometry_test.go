package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewSphereGeometryCounts(t *testing.T) {
	geom, err := NewSphereGeometry(0.5, 32, 32)
	if err != nil {
		t.Fatalf("NewSphereGeometry failed: %v", err)
	}

	if got, want := geom.VertexCount(), 33*33; got != want {
		t.Errorf("Expected %d vertices, got %d", want, got)
	}
	if got, want := len(geom.Indices), 32*(2*32-2)*3; got != want {
		t.Errorf("Expected %d indices, got %d", want, got)
	}
	if got := len(geom.InterleavedData()); got != geom.VertexCount()*8 {
		t.Errorf("Interleaved data should hold 8 floats per vertex, got %d", got)
	}
}

func TestSphereVerticesLieOnRadius(t *testing.T) {
	geom, err := NewSphereGeometry(0.5, 16, 8)
	if err != nil {
		t.Fatalf("NewSphereGeometry failed: %v", err)
	}

	for i, p := range geom.Positions {
		if math.Abs(float64(p.Len())-0.5) > 1e-5 {
			t.Fatalf("Vertex %d at distance %f, want 0.5", i, p.Len())
		}
		if math.Abs(float64(geom.Normals[i].Len())-1) > 1e-5 {
			t.Fatalf("Normal %d is not unit length", i)
		}
	}
	if math.Abs(float64(geom.BoundingRadius())-0.5) > 1e-5 {
		t.Errorf("Expected bounding radius 0.5, got %f", geom.BoundingRadius())
	}
}

func TestSphereIndicesInRange(t *testing.T) {
	geom, err := NewSphereGeometry(1, 8, 4)
	if err != nil {
		t.Fatalf("NewSphereGeometry failed: %v", err)
	}
	for _, idx := range geom.Indices {
		if int(idx) >= geom.VertexCount() {
			t.Fatalf("Index %d out of range (%d vertices)", idx, geom.VertexCount())
		}
	}
}

func TestInvalidSphereGeometry(t *testing.T) {
	cases := []struct {
		name   string
		radius float32
		w, h   int
	}{
		{"zero radius", 0, 32, 32},
		{"negative radius", -1, 32, 32},
		{"nan radius", float32(math.NaN()), 32, 32},
		{"too few width segments", 1, 2, 32},
		{"too few height segments", 1, 32, 1},
	}
	for _, c := range cases {
		if _, err := NewSphereGeometry(c.radius, c.w, c.h); !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("%s: expected ErrInvalidGeometry, got %v", c.name, err)
		}
	}
}

func TestNewPlaneGeometry(t *testing.T) {
	geom, err := NewPlaneGeometry(5, 5, 1, 1)
	if err != nil {
		t.Fatalf("NewPlaneGeometry failed: %v", err)
	}

	if geom.VertexCount() != 4 {
		t.Errorf("Expected 4 vertices, got %d", geom.VertexCount())
	}
	if len(geom.Indices) != 6 {
		t.Errorf("Expected 6 indices, got %d", len(geom.Indices))
	}
	for _, n := range geom.Normals {
		if n != (mgl32.Vec3{0, 0, 1}) {
			t.Errorf("Plane normals should face +Z, got %v", n)
		}
	}
	for _, p := range geom.Positions {
		if math.Abs(float64(p.X())) != 2.5 || math.Abs(float64(p.Y())) != 2.5 {
			t.Errorf("Corner %v should sit at +-2.5", p)
		}
	}
}

func TestInvalidPlaneGeometry(t *testing.T) {
	if _, err := NewPlaneGeometry(0, 5, 1, 1); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry for zero width, got %v", err)
	}
	if _, err := NewPlaneGeometry(5, 5, 0, 1); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("Expected ErrInvalidGeometry for zero segments, got %v", err)
	}
}
