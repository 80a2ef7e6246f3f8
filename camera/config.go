package camera

import (
	"encoding/json"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/chisel/logging"
)

// Config describes a pinhole camera: its intrinsics, image size and depth range in meters.
type Config struct {
	Intrinsics *Intrinsics `json:"intrinsic_parameters" mapstructure:"intrinsic_parameters"`
	Width      int         `json:"width_px" mapstructure:"width_px"`
	Height     int         `json:"height_px" mapstructure:"height_px"`
	Near       float32     `json:"near_m" mapstructure:"near_m"`
	Far        float32     `json:"far_m" mapstructure:"far_m"`
}

// Validate ensures all parts of the config are valid. path is used to prefix error messages.
func (cfg *Config) Validate(path string) error {
	var errs error
	if err := cfg.Intrinsics.CheckValid(); err != nil {
		errs = multierr.Append(errs, errors.Wrapf(err, "%s.intrinsic_parameters", path))
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = multierr.Append(errs, errors.Errorf("%s: invalid image size (%d, %d)", path, cfg.Width, cfg.Height))
	}
	if cfg.Near <= 0 {
		errs = multierr.Append(errs, errors.Errorf("%s: near_m must be positive, got %v", path, cfg.Near))
	}
	if cfg.Far <= cfg.Near {
		errs = multierr.Append(errs, errors.Errorf("%s: far_m (%v) must be greater than near_m (%v)", path, cfg.Far, cfg.Near))
	}
	return errs
}

// NewConfigFromAttributes decodes a generic attribute map, such as one nested in a larger
// JSON config, into a Config.
func NewConfigFromAttributes(attrs map[string]interface{}) (*Config, error) {
	cfg := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attrs); err != nil {
		return nil, errors.Wrap(err, "error decoding camera attributes")
	}
	return cfg, nil
}

// NewConfigFromJSONFile reads a Config from a JSON file.
func NewConfigFromJSONFile(jsonPath string) (*Config, error) {
	//nolint:gosec
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading camera config")
	}
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "error parsing camera config")
	}
	return cfg, nil
}

// NewPinholeCameraFromConfig validates cfg and builds a camera from it. The camera borrows
// cfg.Intrinsics.
func NewPinholeCameraFromConfig(cfg *Config, logger logging.Logger) (*PinholeCamera, error) {
	if cfg == nil {
		return nil, errors.New("camera config is nil")
	}
	if err := cfg.Validate("camera"); err != nil {
		return nil, err
	}
	logger.Debugw("pinhole camera configured",
		"fx", cfg.Intrinsics.Fx, "fy", cfg.Intrinsics.Fy,
		"cx", cfg.Intrinsics.Cx, "cy", cfg.Intrinsics.Cy,
		"width", cfg.Width, "height", cfg.Height,
		"near", cfg.Near, "far", cfg.Far)
	return NewPinholeCamera(cfg.Intrinsics, cfg.Width, cfg.Height, cfg.Near, cfg.Far), nil
}
