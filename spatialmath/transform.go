// Package spatialmath defines the rigid transforms used to place a camera in the world.
package spatialmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/geo/r3"
)

// Transform is a rigid transformation (rotation followed by translation) stored as a homogeneous
// matrix. The zero value is not a valid transform; use NewTransform.
type Transform struct {
	Mat mgl32.Mat4
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{mgl32.Ident4()}
}

// NewTransformFromRotation returns a transform rotated about x, then y, then z by the specified
// number of degrees.
func NewTransformFromRotation(x, y, z float32) Transform {
	return Transform{mgl32.HomogRotate3DZ(mgl32.DegToRad(z)).Mul4(
		mgl32.HomogRotate3DY(mgl32.DegToRad(y)).Mul4(
			mgl32.HomogRotate3DX(mgl32.DegToRad(x))))}
}

// NewTransformFromPose builds a transform from a translation and an orientation quaternion.
// The quaternion is normalized before use.
func NewTransformFromPose(translation r3.Vector, orientation mgl32.Quat) Transform {
	m := orientation.Normalize().Mat4()
	m.SetCol(3, mgl32.Vec4{float32(translation.X), float32(translation.Y), float32(translation.Z), 1})
	return Transform{m}
}

// Rotation returns the upper left 3x3 rotation block.
func (t Transform) Rotation() mgl32.Mat3 {
	return t.Mat.Mat3()
}

// Translation returns the XYZ translation.
func (t Transform) Translation() mgl32.Vec3 {
	return t.Mat.Col(3).Vec3()
}

// Quaternion returns the rotation as a unit quaternion.
func (t Transform) Quaternion() mgl32.Quat {
	return mgl32.Mat4ToQuat(t.Mat)
}

// Apply maps a point from the transform's local frame into its parent frame.
func (t Transform) Apply(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, t.Mat)
}

// ApplyRotation rotates a direction without translating it.
func (t Transform) ApplyRotation(v mgl32.Vec3) mgl32.Vec3 {
	return t.Rotation().Mul3x1(v)
}

// Compose returns t * other, i.e. other is applied first.
func (t Transform) Compose(other Transform) Transform {
	return Transform{t.Mat.Mul4(other.Mat)}
}

// Inverse returns the inverse rigid transform. Uses the transpose of the rotation rather than a
// general matrix inverse.
func (t Transform) Inverse() Transform {
	rt := t.Rotation().Transpose()
	tr := rt.Mul3x1(t.Translation()).Mul(-1)
	m := rt.Mat4()
	m.SetCol(3, tr.Vec4(1))
	return Transform{m}
}

// SetTranslation replaces the translation component.
func (t *Transform) SetTranslation(v mgl32.Vec3) {
	t.Mat.SetCol(3, v.Vec4(1))
}

// ApproxEqual reports whether every matrix element of t and other differ by at most epsilon.
func (t Transform) ApproxEqual(other Transform, epsilon float32) bool {
	for i := range t.Mat {
		if mgl32.Abs(t.Mat[i]-other.Mat[i]) > epsilon {
			return false
		}
	}
	return true
}

// R3ToVec3 converts a double precision vector to a single precision one.
func R3ToVec3(v r3.Vector) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

// Vec3ToR3 converts a single precision vector to a double precision one.
func Vec3ToR3(v mgl32.Vec3) r3.Vector {
	return r3.Vector{X: float64(v.X()), Y: float64(v.Y()), Z: float64(v.Z())}
}

// Finite reports whether all components of v are finite.
func Finite(v mgl32.Vec3) bool {
	for _, c := range v {
		if math.IsInf(float64(c), 0) || math.IsNaN(float64(c)) {
			return false
		}
	}
	return true
}
