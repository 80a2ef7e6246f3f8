package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"go.viam.com/test"

	"go.viam.com/chisel/frustum"
	"go.viam.com/chisel/spatialmath"
)

func TestFrustumContainsUnprojectedPixels(t *testing.T) {
	cam := newTestCamera()
	view := spatialmath.NewTransformFromRotation(10, 20, 30)
	view.SetTranslation(mgl32.Vec3{1, -2, 0.5})

	f := frustum.New()
	cam.SetupFrustum(view, f)

	for _, depth := range []float32{0.2, 1, 4.5, 9.5} {
		for v := 1; v < cam.Height; v += 47 {
			for u := 1; u < cam.Width; u += 53 {
				local := cam.Unproject(mgl32.Vec3{float32(u), float32(v), depth})
				if !f.Contains(view.Apply(local)) {
					t.Fatalf("pixel (%d, %d) at depth %v is outside the frustum", u, v, depth)
				}
			}
		}
	}

	// behind the camera, before near and past far
	for _, depth := range []float32{-1, 0.05, 12} {
		local := cam.Unproject(mgl32.Vec3{320, 240, depth})
		test.That(t, f.Contains(view.Apply(local)), test.ShouldBeFalse)
	}
}

func TestFrustumUsesVerticalFocalLengthTwice(t *testing.T) {
	// fx < fy: the true horizontal field of view is wider than the frustum built from fy.
	cam := NewPinholeCamera(NewIntrinsics(400, 600, 320, 240), 640, 480, 0.1, 10)
	view := spatialmath.NewTransform()

	f := frustum.New()
	cam.SetupFrustum(view, f)

	test.That(t, f.Contains(cam.Unproject(mgl32.Vec3{320, 240, 2})), test.ShouldBeTrue)
	// vertical extent follows fy, so rows near the top edge stay inside
	test.That(t, f.Contains(cam.Unproject(mgl32.Vec3{320, 10, 2})), test.ShouldBeTrue)
	// columns near the left edge fall outside since the frustum's horizontal extent uses fy too
	test.That(t, f.Contains(cam.Unproject(mgl32.Vec3{10, 240, 2})), test.ShouldBeFalse)

	// the frustum's corner at the image's left edge sits at x = -z*cx/fy
	test.That(t, f.Corners[frustum.NearTopLeft].X(), test.ShouldAlmostEqual, -0.1*320.0/600.0, 1e-6)
}
