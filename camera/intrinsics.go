package camera

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"
	"gonum.org/v1/gonum/mat"
)

// ErrNoIntrinsics is when a camera does not have intrinsics parameters or other parameters.
var ErrNoIntrinsics = errors.New("camera intrinsic parameters are not available")

// NewNoIntrinsicsError is used when the intrinsics are not defined.
func NewNoIntrinsicsError(msg string) error {
	return errors.Wrap(ErrNoIntrinsics, msg)
}

// Intrinsics holds the focal lengths and principal point of a pinhole camera, all in pixels.
type Intrinsics struct {
	Fx float32 `json:"fx" mapstructure:"fx"`
	Fy float32 `json:"fy" mapstructure:"fy"`
	Cx float32 `json:"ppx" mapstructure:"ppx"`
	Cy float32 `json:"ppy" mapstructure:"ppy"`
}

// NewIntrinsics returns intrinsics with the given focal lengths and principal point.
func NewIntrinsics(fx, fy, cx, cy float32) *Intrinsics {
	return &Intrinsics{Fx: fx, Fy: fy, Cx: cx, Cy: cy}
}

// GetFx returns the focal length along x. Nil intrinsics read as zero.
func (in *Intrinsics) GetFx() float32 {
	if in == nil {
		return 0
	}
	return in.Fx
}

// GetFy returns the focal length along y. Nil intrinsics read as zero.
func (in *Intrinsics) GetFy() float32 {
	if in == nil {
		return 0
	}
	return in.Fy
}

// GetCx returns the principal point x offset. Nil intrinsics read as zero.
func (in *Intrinsics) GetCx() float32 {
	if in == nil {
		return 0
	}
	return in.Cx
}

// GetCy returns the principal point y offset. Nil intrinsics read as zero.
func (in *Intrinsics) GetCy() float32 {
	if in == nil {
		return 0
	}
	return in.Cy
}

// CheckValid checks if the fields for Intrinsics have valid inputs. All problems are reported.
func (in *Intrinsics) CheckValid() error {
	if in == nil {
		return NewNoIntrinsicsError("intrinsics do not exist")
	}
	var errs error
	if in.Fx <= 0 {
		errs = multierr.Append(errs, NewNoIntrinsicsError(fmt.Sprintf("invalid focal length Fx = %#v", in.Fx)))
	}
	if in.Fy <= 0 {
		errs = multierr.Append(errs, NewNoIntrinsicsError(fmt.Sprintf("invalid focal length Fy = %#v", in.Fy)))
	}
	if in.Cx < 0 {
		errs = multierr.Append(errs, NewNoIntrinsicsError(fmt.Sprintf("invalid principal X point Cx = %#v", in.Cx)))
	}
	if in.Cy < 0 {
		errs = multierr.Append(errs, NewNoIntrinsicsError(fmt.Sprintf("invalid principal Y point Cy = %#v", in.Cy)))
	}
	return errs
}

// CameraMatrix returns the 3x3 camera matrix.
// Camera matrix:
// [[fx 0 cx],
//
//	[0 fy cy],
//	[0 0  1]]
func (in *Intrinsics) CameraMatrix() *mat.Dense {
	if in == nil {
		return nil
	}
	return mat.NewDense(3, 3, []float64{
		float64(in.Fx), 0, float64(in.Cx),
		0, float64(in.Fy), float64(in.Cy),
		0, 0, 1,
	})
}

// NewIntrinsicsFromJSONFile reads intrinsics from a JSON file.
func NewIntrinsicsFromJSONFile(jsonPath string) (*Intrinsics, error) {
	//nolint:gosec
	jsonFile, err := os.Open(jsonPath)
	if err != nil {
		return nil, errors.Wrap(err, "error opening JSON file")
	}
	defer utils.UncheckedErrorFunc(jsonFile.Close)

	byteValue, err := io.ReadAll(jsonFile)
	if err != nil {
		return nil, errors.Wrap(err, "error reading JSON data")
	}
	intrinsics := &Intrinsics{}
	if err := json.Unmarshal(byteValue, intrinsics); err != nil {
		return nil, errors.Wrap(err, "error parsing JSON string")
	}
	return intrinsics, nil
}
