package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvCameraFile names the environment variable that overrides the tuning file path.
const EnvCameraFile = "RTSCAM_CONFIG"

// DefaultCameraFile is read from the working directory when EnvCameraFile is unset.
const DefaultCameraFile = "camera.yaml"

// ErrInvalidCamera is returned when a camera config fails validation.
var ErrInvalidCamera = errors.New("invalid camera config")

// CameraFilePath returns the tuning file path to load and watch.
func CameraFilePath() string {
	if p := os.Getenv(EnvCameraFile); p != "" {
		return p
	}
	return DefaultCameraFile
}

// LoadCameraFile overlays the YAML file at path on top of base. Keys missing
// from the file keep their base value. A missing file returns base unchanged.
func LoadCameraFile(path string, base CameraConfig) (CameraConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return base, fmt.Errorf("read camera file %s: %w", path, err)
	}
	return ParseCamera(data, base)
}

// ParseCamera overlays YAML data on top of base and validates the result.
func ParseCamera(data []byte, base CameraConfig) (CameraConfig, error) {
	out := base

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("parse camera config: %w", err)
	}

	if err := out.Validate(); err != nil {
		return base, err
	}
	return out, nil
}

// Validate reports values the camera systems cannot work with.
func (c CameraConfig) Validate() error {
	switch {
	case c.KeyboardPanSpeed < 0:
		return fmt.Errorf("%w: keyboard_pan_speed %v is negative", ErrInvalidCamera, c.KeyboardPanSpeed)
	case c.MousePanSpeed < 0:
		return fmt.Errorf("%w: mouse_pan_speed %v is negative", ErrInvalidCamera, c.MousePanSpeed)
	case c.EdgePanSize < 0:
		return fmt.Errorf("%w: edge_pan_size %v is negative", ErrInvalidCamera, c.EdgePanSize)
	case c.PanSpeedStep <= 0:
		return fmt.Errorf("%w: pan_speed_step must be positive", ErrInvalidCamera)
	case c.ZoomSpeed < 0:
		return fmt.Errorf("%w: zoom_speed %v is negative", ErrInvalidCamera, c.ZoomSpeed)
	case c.MinZoomDistance <= 0:
		return fmt.Errorf("%w: min_zoom_distance must be positive", ErrInvalidCamera)
	case c.RotationSpeed < 0:
		return fmt.Errorf("%w: rotation_speed %v is negative", ErrInvalidCamera, c.RotationSpeed)
	case c.FOV <= 0 || c.FOV >= 180:
		return fmt.Errorf("%w: fov %v outside (0, 180)", ErrInvalidCamera, c.FOV)
	case c.RecenterDuration < 0:
		return fmt.Errorf("%w: recenter_duration %v is negative", ErrInvalidCamera, c.RecenterDuration)
	}
	return nil
}
