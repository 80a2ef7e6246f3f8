// Package frustum implements the view frustum of a pinhole camera, used to cull map regions that a
// depth frame cannot see.
package frustum

import (
	"github.com/go-gl/mathgl/mgl32"

	"go.viam.com/chisel/spatialmath"
)

// Plane indices.
const (
	Left = iota
	Right
	Bottom
	Top
	Near
	Far
)

// Corner indices. Near corners come first, each in image order: top-left, top-right,
// bottom-right, bottom-left (image v grows downward).
const (
	NearTopLeft = iota
	NearTopRight
	NearBottomRight
	NearBottomLeft
	FarTopLeft
	FarTopRight
	FarBottomRight
	FarBottomLeft
)

// Frustum is a truncated pyramid bounded by six planes whose normals point inward.
// The zero value contains every point until SetFromParams is called.
type Frustum struct {
	Planes  [6]Plane
	Corners [8]mgl32.Vec3
	Origin  mgl32.Vec3
}

// New returns an empty frustum.
func New() *Frustum {
	return &Frustum{}
}

// SetFromParams computes the frustum of a pinhole camera at pose view (camera to world), looking
// down its local +z axis with +y down. The image plane corners are back-projected with the given
// focal lengths and principal point to the near and far distances.
func (f *Frustum) SetFromParams(view spatialmath.Transform, near, far, fx, fy, cx, cy, width, height float32) {
	pixels := [4][2]float32{{0, 0}, {width, 0}, {width, height}, {0, height}}
	for i, px := range pixels {
		f.Corners[i] = view.Apply(backProject(px[0], px[1], near, fx, fy, cx, cy))
		f.Corners[i+4] = view.Apply(backProject(px[0], px[1], far, fx, fy, cx, cy))
	}
	f.Origin = view.Translation()

	c := f.Corners
	f.Planes[Left] = NewPlaneFromPoints(f.Origin, c[NearBottomLeft], c[NearTopLeft])
	f.Planes[Right] = NewPlaneFromPoints(f.Origin, c[NearTopRight], c[NearBottomRight])
	f.Planes[Bottom] = NewPlaneFromPoints(f.Origin, c[NearBottomRight], c[NearBottomLeft])
	f.Planes[Top] = NewPlaneFromPoints(f.Origin, c[NearTopLeft], c[NearTopRight])
	f.Planes[Near] = NewPlaneFromPoints(c[NearTopLeft], c[NearTopRight], c[NearBottomRight])
	f.Planes[Far] = NewPlaneFromPoints(c[FarTopLeft], c[FarBottomRight], c[FarTopRight])

	// Fix up orientation against the centroid so that mirrored poses still face inward.
	center := f.Center()
	for i := range f.Planes {
		if f.Planes[i].Distance(center) < 0 {
			f.Planes[i] = f.Planes[i].Flip()
		}
	}
}

func backProject(u, v, z, fx, fy, cx, cy float32) mgl32.Vec3 {
	return mgl32.Vec3{z * (u - cx) / fx, z * (v - cy) / fy, z}
}

// Center returns the centroid of the corners.
func (f *Frustum) Center() mgl32.Vec3 {
	var sum mgl32.Vec3
	for _, c := range f.Corners {
		sum = sum.Add(c)
	}
	return sum.Mul(1.0 / float32(len(f.Corners)))
}

// Contains reports whether p is inside or on the boundary of the frustum.
func (f *Frustum) Contains(p mgl32.Vec3) bool {
	for _, plane := range f.Planes {
		if plane.Distance(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether a sphere may overlap the frustum. It can return false positives
// near the frustum edges.
func (f *Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, plane := range f.Planes {
		if plane.Distance(center) < -radius {
			return false
		}
	}
	return true
}

// IntersectsBox reports whether the axis-aligned box [lo, hi] may overlap the frustum, testing the
// box vertex furthest along each plane normal. It can return false positives near the edges.
func (f *Frustum) IntersectsBox(lo, hi mgl32.Vec3) bool {
	for _, plane := range f.Planes {
		var p mgl32.Vec3
		for axis := 0; axis < 3; axis++ {
			if plane.Normal[axis] >= 0 {
				p[axis] = hi[axis]
			} else {
				p[axis] = lo[axis]
			}
		}
		if plane.Distance(p) < 0 {
			return false
		}
	}
	return true
}

// BoundingBox returns the axis-aligned bounds of the frustum corners.
func (f *Frustum) BoundingBox() (lo, hi mgl32.Vec3) {
	lo, hi = f.Corners[0], f.Corners[0]
	for _, c := range f.Corners[1:] {
		for axis := 0; axis < 3; axis++ {
			if c[axis] < lo[axis] {
				lo[axis] = c[axis]
			}
			if c[axis] > hi[axis] {
				hi[axis] = c[axis]
			}
		}
	}
	return lo, hi
}
