package frustum

import "github.com/go-gl/mathgl/mgl32"

// Plane is the set of points p with Normal·p + D = 0. Points with a positive signed distance are
// on the side the normal points to.
type Plane struct {
	Normal mgl32.Vec3
	D      float32
}

// NewPlaneFromPoints returns the plane through a, b and c with unit normal (b-a)x(c-a).
// Collinear points give a zero normal.
func NewPlaneFromPoints(a, b, c mgl32.Vec3) Plane {
	n := b.Sub(a).Cross(c.Sub(a))
	if l := n.Len(); l > 0 {
		n = n.Mul(1 / l)
	}
	return Plane{Normal: n, D: -n.Dot(a)}
}

// Distance returns the signed distance from the plane to p.
func (p Plane) Distance(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.D
}

// Flip returns the same plane with the opposite orientation.
func (p Plane) Flip() Plane {
	return Plane{Normal: p.Normal.Mul(-1), D: -p.D}
}
