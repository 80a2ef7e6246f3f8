package cli

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"go.viam.com/chisel/camera"
	"go.viam.com/chisel/frustum"
	"go.viam.com/chisel/logging"
	"go.viam.com/chisel/spatialmath"
)

// ProjectAction is the corresponding Action for 'project'.
func ProjectAction(c *cli.Context) error {
	cam, err := loadCamera(c)
	if err != nil {
		return err
	}
	p, err := parseFloats(c, 3)
	if err != nil {
		return err
	}
	px := cam.Project(mgl32.Vec3{p[0], p[1], p[2]})
	printf(c, "%g %g %g", px.X(), px.Y(), px.Z())
	return nil
}

// UnprojectAction is the corresponding Action for 'unproject'.
func UnprojectAction(c *cli.Context) error {
	cam, err := loadCamera(c)
	if err != nil {
		return err
	}
	p, err := parseFloats(c, 3)
	if err != nil {
		return err
	}
	pt := cam.Unproject(mgl32.Vec3{p[0], p[1], p[2]})
	printf(c, "%g %g %g", pt.X(), pt.Y(), pt.Z())
	return nil
}

// OnImageAction is the corresponding Action for 'on-image'.
func OnImageAction(c *cli.Context) error {
	cam, err := loadCamera(c)
	if err != nil {
		return err
	}
	p, err := parseFloats(c, 2)
	if err != nil {
		return err
	}
	printf(c, "%t", cam.IsPointOnImage(mgl32.Vec3{p[0], p[1], 0}))
	return nil
}

// FrustumAction is the corresponding Action for 'frustum'.
func FrustumAction(c *cli.Context) error {
	cam, err := loadCamera(c)
	if err != nil {
		return err
	}
	translation, err := vectorFlag(c, flagTranslation)
	if err != nil {
		return err
	}
	rotation, err := vectorFlag(c, flagRotation)
	if err != nil {
		return err
	}

	view := spatialmath.NewTransformFromRotation(float32(rotation.X), float32(rotation.Y), float32(rotation.Z))
	view.SetTranslation(spatialmath.R3ToVec3(translation))

	f := frustum.New()
	cam.SetupFrustum(view, f)
	for i, corner := range f.Corners {
		printf(c, "corner %d: %g %g %g", i, corner.X(), corner.Y(), corner.Z())
	}
	minPt, maxPt := f.BoundingBox()
	printf(c, "bounds: [%g %g %g] [%g %g %g]", minPt.X(), minPt.Y(), minPt.Z(), maxPt.X(), maxPt.Y(), maxPt.Z())
	return nil
}

// setupLogger installs a logger writing to the app's error output as the global logger.
func setupLogger(c *cli.Context) error {
	level, err := logging.LevelFromString(c.String(flagLogLevel))
	if err != nil {
		return errors.Wrapf(err, "--%s", flagLogLevel)
	}
	logger := logging.NewBlankLogger("pinhole")
	logger.SetLevel(level)
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	logging.ReplaceGlobal(logger)
	return nil
}

func loadCamera(c *cli.Context) (*camera.PinholeCamera, error) {
	cfg, err := camera.NewConfigFromJSONFile(c.Path(flagConfig))
	if err != nil {
		return nil, err
	}
	return camera.NewPinholeCameraFromConfig(cfg, logging.Global().Sublogger("camera"))
}

func parseFloats(c *cli.Context, n int) ([]float32, error) {
	if c.Args().Len() != n {
		return nil, errors.Errorf("expected %d arguments, got %d", n, c.Args().Len())
	}
	var parseErr error
	values := lo.Map(c.Args().Slice(), func(arg string, i int) float32 {
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil && parseErr == nil {
			parseErr = errors.Wrapf(err, "argument %d", i+1)
		}
		return float32(v)
	})
	return values, parseErr
}

func vectorFlag(c *cli.Context, name string) (r3.Vector, error) {
	v := c.Float64Slice(name)
	switch len(v) {
	case 0:
		return r3.Vector{}, nil
	case 3:
		return r3.Vector{X: v[0], Y: v[1], Z: v[2]}, nil
	default:
		return r3.Vector{}, errors.Errorf("--%s needs 3 values, got %d", name, len(v))
	}
}

func printf(c *cli.Context, format string, a ...interface{}) {
	//nolint:errcheck
	fmt.Fprintf(c.App.Writer, format+"\n", a...)
}
