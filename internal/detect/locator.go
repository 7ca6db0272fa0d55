package detect

import (
	"image"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/armorup/famtree/internal/logger"
	"github.com/armorup/famtree/internal/tuning"
	"github.com/armorup/famtree/internal/types"
)

// Locator picks the best face in an image, or reports that there is none.
type Locator struct {
	det Detector
	cfg tuning.Config
}

func NewLocator(det Detector, cfg tuning.Config) *Locator {
	return &Locator{det: det, cfg: cfg}
}

// Locate runs the detector with the strict preset, retries once with the
// lenient preset when nothing is found, and returns the largest region.
// Detector failures are suppressed: detection is best-effort and the caller
// always has the center-crop fallback.
func (l *Locator) Locate(name string, img image.Image) (types.FaceRegion, bool) {
	faces, err := l.det.Detect(img, Strict(l.cfg))
	if err == nil && len(faces) == 0 {
		faces, err = l.det.Detect(img, Lenient(l.cfg))
	}
	if err != nil {
		logger.WithFields(logrus.Fields{"file": name, "error": err}).Warn("face detection failed, using center crop")
		return types.FaceRegion{}, false
	}
	if len(faces) == 0 {
		logger.WithField("file", name).Debug("no face detected")
		return types.FaceRegion{}, false
	}

	best := pickLargest(faces)
	region := types.FaceRegion{
		CenterX: best.Min.X + best.Dx()/2,
		CenterY: best.Min.Y + best.Dy()/2,
		Height:  best.Dy(),
		Width:   best.Dx(),
	}
	logger.WithFields(logrus.Fields{"file": name, "face_height": region.Height}).Debug("face detected")
	return region, true
}

// pickLargest returns the rectangle with the greatest area. Equal areas are
// broken by leftmost, then topmost coordinate so repeated runs agree no
// matter what order the detector emitted them in.
func pickLargest(faces []image.Rectangle) image.Rectangle {
	ranked := make([]image.Rectangle, len(faces))
	copy(ranked, faces)
	sort.Slice(ranked, func(i, j int) bool {
		ai, aj := ranked[i].Dx()*ranked[i].Dy(), ranked[j].Dx()*ranked[j].Dy()
		if ai != aj {
			return ai > aj
		}
		if ranked[i].Min.X != ranked[j].Min.X {
			return ranked[i].Min.X < ranked[j].Min.X
		}
		return ranked[i].Min.Y < ranked[j].Min.Y
	})
	return ranked[0]
}
