package detect

import "image"

// NullDetector reports no faces. It stands in whenever the cascade model is
// unavailable, so every image takes the center-crop fallback.
type NullDetector struct{}

func (NullDetector) Detect(image.Image, Sensitivity) ([]image.Rectangle, error) {
	return nil, nil
}
