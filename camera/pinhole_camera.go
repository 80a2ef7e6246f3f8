// Package camera implements the pinhole camera model used to move between voxels and depth
// image pixels: projection, unprojection, frustum setup and image bounds tests.
//
// All math is single precision. Points share the mgl32.Vec3 type whether they hold a camera frame
// point (x, y, z), a pixel with depth (u, v, z), or just a pixel (u, v, ignored).
package camera

import (
	"reflect"

	"github.com/go-gl/mathgl/mgl32"

	"go.viam.com/chisel/spatialmath"
)

// FrustumBuilder populates a view frustum from a camera pose and projection parameters.
type FrustumBuilder interface {
	SetFromParams(view spatialmath.Transform, near, far, fx, fy, cx, cy, width, height float32)
}

// PinholeCamera is an ideal pinhole camera with independent x/y focal lengths.
//
// The camera borrows its intrinsics; they must outlive it and must not be mutated while the camera
// is in use. Once configured, a PinholeCamera is safe for concurrent use. The zero value behaves
// as a camera with all-zero intrinsics and configuration.
type PinholeCamera struct {
	Intrinsics *Intrinsics
	Width      int
	Height     int
	Near       float32
	Far        float32
}

// NewPinholeCamera returns a camera with the given intrinsics, image size and clipping planes.
func NewPinholeCamera(intrinsics *Intrinsics, width, height int, near, far float32) *PinholeCamera {
	return &PinholeCamera{
		Intrinsics: intrinsics,
		Width:      width,
		Height:     height,
		Near:       near,
		Far:        far,
	}
}

// Project maps a camera frame point to (u, v, z). The depth is carried through unchanged.
// z == 0 is not checked and yields Inf or NaN pixel coordinates.
func (c *PinholeCamera) Project(point mgl32.Vec3) mgl32.Vec3 {
	x, y, z := point.Elem()
	invZ := 1 / z
	return mgl32.Vec3{
		c.Intrinsics.GetFx()*x*invZ + c.Intrinsics.GetCx(),
		c.Intrinsics.GetFy()*y*invZ + c.Intrinsics.GetCy(),
		z,
	}
}

// Unproject maps (u, v, z) back to a camera frame point. It is the inverse of Project.
// Zero focal lengths are not checked and yield Inf or NaN.
func (c *PinholeCamera) Unproject(point mgl32.Vec3) mgl32.Vec3 {
	u, v, z := point.Elem()
	return mgl32.Vec3{
		z * ((u - c.Intrinsics.GetCx()) / c.Intrinsics.GetFx()),
		z * ((v - c.Intrinsics.GetCy()) / c.Intrinsics.GetFy()),
		z,
	}
}

// SetupFrustum fills frustum with the view volume of the camera at pose view.
//
// NOTE: fy is passed as both the horizontal and the vertical focal length. Culling is
// conservative enough to tolerate it; switching the horizontal value to fx changes which chunks
// get integrated and needs its own review.
//
// A nil frustum is a programming error and panics.
func (c *PinholeCamera) SetupFrustum(view spatialmath.Transform, frustum FrustumBuilder) {
	if isNil(frustum) {
		panic("camera: SetupFrustum called with nil frustum")
	}
	frustum.SetFromParams(
		view,
		c.Near,
		c.Far,
		c.Intrinsics.GetFy(),
		c.Intrinsics.GetFy(),
		c.Intrinsics.GetCx(),
		c.Intrinsics.GetCy(),
		float32(c.Width),
		float32(c.Height),
	)
}

// IsPointOnImage reports whether the pixel (x, y) lies in [0, width) x [0, height).
// The third component is ignored.
func (c *PinholeCamera) IsPointOnImage(point mgl32.Vec3) bool {
	return point.X() >= 0 && point.Y() >= 0 &&
		point.X() < float32(c.Width) && point.Y() < float32(c.Height)
}

func isNil(frustum FrustumBuilder) bool {
	if frustum == nil {
		return true
	}
	v := reflect.ValueOf(frustum)
	switch v.Kind() { //nolint:exhaustive
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
