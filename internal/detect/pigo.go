package detect

import (
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"

	"github.com/armorup/famtree/internal/tuning"
)

// PigoDetector runs the pigo pixel-intensity cascade classifier in-process.
type PigoDetector struct {
	classifier *pigo.Pigo
	clusterIoU float64
}

// NewPigoDetector reads and unpacks a binary cascade (facefinder) model.
func NewPigoDetector(cascadePath string, cfg tuning.Config) (*PigoDetector, error) {
	data, err := os.ReadFile(cascadePath)
	if err != nil {
		return nil, fmt.Errorf("reading cascade model: %w", err)
	}
	classifier, err := pigo.NewPigo().Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("unpacking cascade model: %w", err)
	}
	return &PigoDetector{classifier: classifier, clusterIoU: cfg.ClusterIoU}, nil
}

// Detect runs one cascade pass over the image. Overlapping raw detections
// are clustered by IoU and anything below the pass's quality cutoff is
// discarded. Pigo reports a detection as a center and scale; each is
// converted to the bounding square around that center.
func (d *PigoDetector) Detect(img image.Image, s Sensitivity) ([]image.Rectangle, error) {
	src := pigo.ImgToNRGBA(img)
	pixels := pigo.RgbToGrayscale(src)
	cols, rows := src.Bounds().Dx(), src.Bounds().Dy()

	maxSize := cols
	if rows < maxSize {
		maxSize = rows
	}
	if s.MinSize >= maxSize {
		// Image is smaller than the smallest detectable face
		return nil, nil
	}

	params := pigo.CascadeParams{
		MinSize:     s.MinSize,
		MaxSize:     maxSize,
		ShiftFactor: s.ShiftFactor,
		ScaleFactor: s.ScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pixels,
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := d.classifier.RunCascade(params, 0.0)
	dets = d.classifier.ClusterDetections(dets, d.clusterIoU)

	var faces []image.Rectangle
	for _, det := range dets {
		if det.Q < s.MinQuality {
			continue
		}
		half := det.Scale / 2
		faces = append(faces, image.Rect(det.Col-half, det.Row-half, det.Col-half+det.Scale, det.Row-half+det.Scale))
	}
	return faces, nil
}
