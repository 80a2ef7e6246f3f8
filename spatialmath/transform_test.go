package spatialmath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestIdentity(t *testing.T) {
	tf := NewTransform()
	p := mgl32.Vec3{1, -2, 3}
	test.That(t, tf.Apply(p), test.ShouldResemble, p)
	test.That(t, tf.Translation(), test.ShouldResemble, mgl32.Vec3{})
}

func TestRotation(t *testing.T) {
	tf := NewTransformFromRotation(0, 0, 90)
	out := tf.Apply(mgl32.Vec3{1, 0, 0})
	test.That(t, out.X(), test.ShouldAlmostEqual, 0, 1e-6)
	test.That(t, out.Y(), test.ShouldAlmostEqual, 1, 1e-6)
	test.That(t, out.Z(), test.ShouldAlmostEqual, 0, 1e-6)
}

func TestPoseAndInverse(t *testing.T) {
	q := mgl32.QuatRotate(mgl32.DegToRad(30), mgl32.Vec3{0, 1, 0})
	tf := NewTransformFromPose(r3.Vector{X: 1, Y: 2, Z: -3}, q)
	test.That(t, tf.Translation(), test.ShouldResemble, mgl32.Vec3{1, 2, -3})

	p := mgl32.Vec3{0.5, -0.25, 4}
	back := tf.Inverse().Apply(tf.Apply(p))
	test.That(t, back.ApproxEqualThreshold(p, 1e-5), test.ShouldBeTrue)

	test.That(t, tf.Compose(tf.Inverse()).ApproxEqual(NewTransform(), 1e-5), test.ShouldBeTrue)
	got := tf.Quaternion()
	test.That(t, got.W, test.ShouldAlmostEqual, q.W, 1e-5)
	for i := range q.V {
		test.That(t, got.V[i], test.ShouldAlmostEqual, q.V[i], 1e-5)
	}
}

func TestApplyRotationIgnoresTranslation(t *testing.T) {
	tf := NewTransform()
	tf.SetTranslation(mgl32.Vec3{10, 10, 10})
	test.That(t, tf.ApplyRotation(mgl32.Vec3{0, 0, 1}), test.ShouldResemble, mgl32.Vec3{0, 0, 1})
	test.That(t, tf.Apply(mgl32.Vec3{0, 0, 1}), test.ShouldResemble, mgl32.Vec3{10, 10, 11})
}

func TestApproxEqualAbsolute(t *testing.T) {
	a := NewTransform()
	b := NewTransform()
	b.Mat[12] = -1e-7
	test.That(t, a.ApproxEqual(b, 1e-5), test.ShouldBeTrue)

	b.Mat[12] = 1e-3
	test.That(t, a.ApproxEqual(b, 1e-5), test.ShouldBeFalse)

	b = NewTransform()
	b.Mat[0] = 1.00001
	test.That(t, a.ApproxEqual(b, 1e-4), test.ShouldBeTrue)
	test.That(t, a.ApproxEqual(b, 1e-6), test.ShouldBeFalse)
}
