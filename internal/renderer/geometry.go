package renderer

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidGeometry is returned when shape parameters cannot describe a mesh.
var ErrInvalidGeometry = errors.New("invalid geometry")

type GeometryKind int

const (
	SPHERE_GEOMETRY GeometryKind = iota
	PLANE_GEOMETRY
)

// Geometry holds the shape parameters and the generated vertex data.
type Geometry struct {
	Kind GeometryKind

	// Sphere
	Radius         float32
	WidthSegments  int
	HeightSegments int

	// Plane
	Width  float32
	Height float32

	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// NewSphereGeometry builds a UV sphere centred on the origin.
func NewSphereGeometry(radius float32, widthSegments, heightSegments int) (*Geometry, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("sphere radius %v must be positive: %w", radius, ErrInvalidGeometry)
	}
	if widthSegments < 3 {
		return nil, fmt.Errorf("sphere needs at least 3 width segments, got %d: %w", widthSegments, ErrInvalidGeometry)
	}
	if heightSegments < 2 {
		return nil, fmt.Errorf("sphere needs at least 2 height segments, got %d: %w", heightSegments, ErrInvalidGeometry)
	}

	g := &Geometry{
		Kind:           SPHERE_GEOMETRY,
		Radius:         radius,
		WidthSegments:  widthSegments,
		HeightSegments: heightSegments,
	}

	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		theta := v * math32.Pi
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			phi := u * 2 * math32.Pi

			normal := mgl32.Vec3{
				-math32.Cos(phi) * math32.Sin(theta),
				math32.Cos(theta),
				math32.Sin(phi) * math32.Sin(theta),
			}
			g.Positions = append(g.Positions, normal.Mul(radius))
			g.Normals = append(g.Normals, normal)
			g.UVs = append(g.UVs, mgl32.Vec2{u, 1 - v})
		}
	}

	stride := uint32(widthSegments + 1)
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(iy)*stride + uint32(ix+1)
			b := uint32(iy)*stride + uint32(ix)
			c := uint32(iy+1)*stride + uint32(ix)
			d := uint32(iy+1)*stride + uint32(ix+1)

			// The pole rows collapse to a point, so only one triangle per quad.
			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}
	return g, nil
}

// NewPlaneGeometry builds a width x height plane in the XY plane facing +Z.
func NewPlaneGeometry(width, height float32, widthSegments, heightSegments int) (*Geometry, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("plane size %vx%v must be positive: %w", width, height, ErrInvalidGeometry)
	}
	if widthSegments < 1 || heightSegments < 1 {
		return nil, fmt.Errorf("plane needs at least one segment per side, got %dx%d: %w", widthSegments, heightSegments, ErrInvalidGeometry)
	}

	g := &Geometry{
		Kind:           PLANE_GEOMETRY,
		Width:          width,
		Height:         height,
		WidthSegments:  widthSegments,
		HeightSegments: heightSegments,
	}

	segW := width / float32(widthSegments)
	segH := height / float32(heightSegments)
	for iy := 0; iy <= heightSegments; iy++ {
		y := float32(iy)*segH - height/2
		for ix := 0; ix <= widthSegments; ix++ {
			x := float32(ix)*segW - width/2
			g.Positions = append(g.Positions, mgl32.Vec3{x, -y, 0})
			g.Normals = append(g.Normals, mgl32.Vec3{0, 0, 1})
			g.UVs = append(g.UVs, mgl32.Vec2{
				float32(ix) / float32(widthSegments),
				1 - float32(iy)/float32(heightSegments),
			})
		}
	}

	stride := uint32(widthSegments + 1)
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(iy)*stride + uint32(ix)
			b := uint32(iy+1)*stride + uint32(ix)
			c := uint32(iy+1)*stride + uint32(ix+1)
			d := uint32(iy)*stride + uint32(ix+1)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g, nil
}

// VertexCount is the number of generated vertices.
func (g *Geometry) VertexCount() int {
	return len(g.Positions)
}

// InterleavedData packs position, uv and normal per vertex (stride 8 floats),
// the layout the GL backend binds to attribute locations 0, 1 and 2.
func (g *Geometry) InterleavedData() []float32 {
	data := make([]float32, 0, len(g.Positions)*8)
	for i, p := range g.Positions {
		uv := g.UVs[i]
		n := g.Normals[i]
		data = append(data, p.X(), p.Y(), p.Z(), uv.X(), uv.Y(), n.X(), n.Y(), n.Z())
	}
	return data
}

// BoundingRadius is the distance from the local origin to the farthest vertex.
func (g *Geometry) BoundingRadius() float32 {
	var maxSq float32
	for _, p := range g.Positions {
		if d := p.Dot(p); d > maxSq {
			maxSq = d
		}
	}
	return math32.Sqrt(maxSq)
}
