package render

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/armorup/famtree/internal/tuning"
	"github.com/armorup/famtree/internal/types"
)

// OutputExt is the extension of every generated thumbnail; source extensions
// are normalized to it.
const OutputExt = ".png"

// Renderer turns a planned crop window into the final thumbnail file.
type Renderer struct {
	cfg tuning.Config
}

func New(cfg tuning.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Render crops src to rect, resizes the square to the fixed thumbnail edge
// with Lanczos resampling and writes a PNG at dst. The encode goes to a
// temporary sibling file that is renamed into place on success, so a failure
// never leaves a partial thumbnail behind.
func (r *Renderer) Render(src image.Image, rect types.CropRect, dst string) error {
	flat := flatten(src)
	cropped := imaging.Crop(flat, rect.Bounds())
	thumb := imaging.Resize(cropped, r.cfg.ThumbSize, r.cfg.ThumbSize, imaging.Lanczos)

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	// Quality is honored by lossy encoders only; PNG output ignores it
	if err := imaging.Encode(tmp, thumb, imaging.PNG, imaging.JPEGQuality(r.cfg.EncodingQuality)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encoding thumbnail: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("placing thumbnail: %w", err)
	}
	return nil
}

// flatten composes images that carry transparency onto an opaque white
// background. Fully opaque sources pass through untouched.
func flatten(src image.Image) image.Image {
	if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
		return src
	}
	bg := imaging.New(src.Bounds().Dx(), src.Bounds().Dy(), color.White)
	return imaging.Overlay(bg, src, image.Pt(0, 0), 1.0)
}
