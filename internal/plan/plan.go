package plan

import (
	"math"

	"github.com/armorup/famtree/internal/tuning"
	"github.com/armorup/famtree/internal/types"
)

// Plan computes the square crop window for one source image. It is pure:
// identical inputs always produce the identical rectangle.
//
// With a face, the window is sized so the face fills FaceFillRatio of the
// thumbnail height and is centered on the face, nudged upward by
// HairlineBias to include hair and forehead (detectors typically bound
// eyebrow-to-chin). Without one, the window is the largest square that fits,
// centered horizontally and biased to the upper third where head-shot
// subjects tend to sit.
func Plan(dims types.ImageDimensions, face *types.FaceRegion, cfg tuning.Config) types.CropRect {
	minDim := dims.Width
	if dims.Height < minDim {
		minDim = dims.Height
	}

	var cx, cy, size int
	if face != nil {
		size = int(float64(face.Height) / cfg.FaceFillRatio)
		if size > minDim {
			size = minDim
		}
		cx = face.CenterX
		cy = face.CenterY - int(float64(face.Height)*cfg.HairlineBias)
	} else {
		size = minDim
		cx = dims.Width / 2
		cy = dims.Height / 3
	}

	left := int(math.Floor(float64(cx) - float64(size)/2))
	top := int(math.Floor(float64(cy) - float64(size)/2))
	right := left + size
	bottom := top + size

	// The window never exceeds the image, so out-of-bounds edges are fixed
	// by translating the whole square back inside, never by shrinking it.
	if left < 0 {
		left, right = 0, size
	}
	if top < 0 {
		top, bottom = 0, size
	}
	if right > dims.Width {
		left, right = dims.Width-size, dims.Width
	}
	if bottom > dims.Height {
		top, bottom = dims.Height-size, dims.Height
	}

	// Final safety clamp
	if left < 0 {
		left = 0
	}
	if top < 0 {
		top = 0
	}
	if right > dims.Width {
		right = dims.Width
	}
	if bottom > dims.Height {
		bottom = dims.Height
	}

	return types.CropRect{Left: left, Top: top, Right: right, Bottom: bottom}
}
