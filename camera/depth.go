package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// DepthImage is a row-major buffer of metric depths. A zero or non-finite value means no reading.
type DepthImage struct {
	Width  int
	Height int
	Data   []float32
}

// NewDepthImage returns a zeroed depth image of the given size.
func NewDepthImage(width, height int) *DepthImage {
	return &DepthImage{Width: width, Height: height, Data: make([]float32, width*height)}
}

// At returns the depth at pixel (u, v). It panics if the pixel is out of range.
func (img *DepthImage) At(u, v int) float32 {
	return img.Data[v*img.Width+u]
}

// Set stores the depth at pixel (u, v).
func (img *DepthImage) Set(u, v int, depth float32) {
	img.Data[v*img.Width+u] = depth
}

// IsDepthValid reports whether d is a usable reading within the camera's clipping range.
func (c *PinholeCamera) IsDepthValid(d float32) bool {
	if math.IsNaN(float64(d)) || math.IsInf(float64(d), 0) {
		return false
	}
	return d >= c.Near && d <= c.Far
}

// DepthImageToPoints unprojects every stride-th pixel of img that holds a valid depth, returning
// camera frame points in row-major order.
func (c *PinholeCamera) DepthImageToPoints(img *DepthImage, stride int) ([]mgl32.Vec3, error) {
	if img == nil {
		return nil, errors.New("depth image is nil")
	}
	if img.Width != c.Width || img.Height != c.Height {
		return nil, errors.Errorf("depth image and camera dimensions don't match Image(%d,%d) != Camera(%d,%d)",
			img.Width, img.Height, c.Width, c.Height)
	}
	if stride < 1 {
		return nil, errors.Errorf("stride must be at least 1, got %d", stride)
	}

	pixels := make([]mgl32.Vec3, 0, (img.Width/stride+1)*(img.Height/stride+1))
	for v := 0; v < img.Height; v += stride {
		for u := 0; u < img.Width; u += stride {
			pixels = append(pixels, mgl32.Vec3{float32(u), float32(v), img.At(u, v)})
		}
	}
	valid := lo.Filter(pixels, func(px mgl32.Vec3, _ int) bool {
		return c.IsDepthValid(px.Z())
	})
	return lo.Map(valid, func(px mgl32.Vec3, _ int) mgl32.Vec3 {
		return c.Unproject(px)
	}), nil
}

// SampleDepth projects a camera frame point into img and returns the depth measured at the pixel
// containing it. ok is false when the point is behind the camera, falls off the image, or the
// pixel holds no valid reading. A nil img has no readings.
func (c *PinholeCamera) SampleDepth(img *DepthImage, point mgl32.Vec3) (depth float32, ok bool) {
	if img == nil || point.Z() <= 0 {
		return 0, false
	}
	px := c.Project(point)
	if !c.IsPointOnImage(px) {
		return 0, false
	}
	u, v := int(px.X()), int(px.Y())
	if u >= img.Width || v >= img.Height {
		return 0, false
	}
	d := img.At(u, v)
	if !c.IsDepthValid(d) {
		return 0, false
	}
	return d, true
}

// PointsOnImage returns the subset of camera frame points that project inside the image and lie in
// front of the camera.
func (c *PinholeCamera) PointsOnImage(points []mgl32.Vec3) []mgl32.Vec3 {
	return lo.Filter(points, func(p mgl32.Vec3, _ int) bool {
		return p.Z() > 0 && c.IsPointOnImage(c.Project(p))
	})
}
