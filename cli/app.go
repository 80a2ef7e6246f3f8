// Package cli contains the pinhole command line tool.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	flagConfig      = "config"
	flagLogLevel    = "log-level"
	flagTranslation = "translation"
	flagRotation    = "rotation"
)

var app = &cli.App{
	Name:            "pinhole",
	Usage:           "project points through a pinhole camera model",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.PathFlag{
			Name:     flagConfig,
			Aliases:  []string{"c"},
			Required: true,
			Usage:    "load camera configuration from `FILE`",
		},
		&cli.StringFlag{
			Name:  flagLogLevel,
			Value: "info",
			Usage: "log `LEVEL` (debug, info, warn or error)",
		},
	},
	Before: setupLogger,
	Commands: []*cli.Command{
		{
			Name:      "project",
			Usage:     "project a camera frame point to a pixel and depth",
			ArgsUsage: "<x> <y> <z>",
			Action:    ProjectAction,
		},
		{
			Name:      "unproject",
			Usage:     "unproject a pixel with depth to a camera frame point",
			ArgsUsage: "<u> <v> <depth>",
			Action:    UnprojectAction,
		},
		{
			Name:      "on-image",
			Usage:     "check whether a pixel lies on the image",
			ArgsUsage: "<u> <v>",
			Action:    OnImageAction,
		},
		{
			Name:  "frustum",
			Usage: "print the view frustum corners and bounding box for a camera pose",
			Flags: []cli.Flag{
				&cli.Float64SliceFlag{
					Name:  flagTranslation,
					Usage: "camera position in the world as `X,Y,Z`",
				},
				&cli.Float64SliceFlag{
					Name:  flagRotation,
					Usage: "camera rotation about x, y, z in degrees as `RX,RY,RZ`",
				},
			},
			Action: FrustumAction,
		},
	},
}

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter
// set to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	app.Writer = out
	app.ErrWriter = errOut
	return app
}
