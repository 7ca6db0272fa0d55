package detect

import (
	"image"

	"github.com/armorup/famtree/internal/tuning"
)

// Detector is the face-detection capability. Implementations return zero or
// more face bounding boxes in absolute pixel coordinates, origin top-left.
// They report failure through the error return and must never panic.
type Detector interface {
	Detect(img image.Image, s Sensitivity) ([]image.Rectangle, error)
}

// Sensitivity bundles the parameters of one detection pass.
type Sensitivity struct {
	ScaleFactor float64
	ShiftFactor float64
	MinSize     int
	MinQuality  float32
}

// Strict is the default detection pass.
func Strict(cfg tuning.Config) Sensitivity {
	return Sensitivity{
		ScaleFactor: cfg.StrictScaleFactor,
		ShiftFactor: cfg.StrictShiftFactor,
		MinSize:     cfg.StrictMinSize,
		MinQuality:  cfg.StrictMinQuality,
	}
}

// Lenient recovers weak detections when the strict pass finds nothing.
func Lenient(cfg tuning.Config) Sensitivity {
	return Sensitivity{
		ScaleFactor: cfg.LenientScaleFactor,
		ShiftFactor: cfg.LenientShiftFactor,
		MinSize:     cfg.LenientMinSize,
		MinQuality:  cfg.LenientMinQuality,
	}
}
