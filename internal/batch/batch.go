package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	// Registers the webp decoder used by imaging.Open
	_ "golang.org/x/image/webp"

	"github.com/armorup/famtree/internal/detect"
	"github.com/armorup/famtree/internal/logger"
	"github.com/armorup/famtree/internal/plan"
	"github.com/armorup/famtree/internal/render"
	"github.com/armorup/famtree/internal/tuning"
	"github.com/armorup/famtree/internal/types"
	"github.com/armorup/famtree/internal/utils"
)

// Runner drives one category's batch: list, locate, plan, render.
type Runner struct {
	locator  *detect.Locator
	renderer *render.Renderer
	cfg      tuning.Config
}

func New(locator *detect.Locator, renderer *render.Renderer, cfg tuning.Config) *Runner {
	return &Runner{locator: locator, renderer: renderer, cfg: cfg}
}

// Run processes every accepted image directly under srcDir into dstDir.
// Subdirectories are not descended into. Per-file failures are logged and
// skipped; only a missing source directory aborts the whole category.
func (r *Runner) Run(srcDir, dstDir string, faceDetection bool) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return fmt.Errorf("listing source directory: %w", err)
	}
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return fmt.Errorf("creating destination directory: %w", err)
	}

	// os.ReadDir returns entries sorted by filename, which keeps the
	// processing order and the logs reproducible.
	var names []string
	for _, e := range entries {
		if e.IsDir() || !utils.AcceptedImage(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}

	mode := "center crop"
	if faceDetection {
		mode = "face detection"
	}
	logger.WithFields(logrus.Fields{"dir": srcDir, "count": len(names), "mode": mode}).Info("processing images")

	bar := progressbar.NewOptions(len(names),
		progressbar.OptionSetDescription(filepath.Base(srcDir)),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
	)

	failures := 0
	for _, name := range names {
		if err := r.processFile(srcDir, dstDir, name, faceDetection); err != nil {
			failures++
			logger.WithFields(logrus.Fields{"file": name, "error": err}).Error("skipping file")
		}
		bar.Add(1)
	}
	bar.Finish()

	if failures > 0 {
		logger.WithFields(logrus.Fields{"dir": srcDir, "failed": failures, "total": len(names)}).Warn("batch finished with failures")
	}
	return nil
}

// processFile generates one thumbnail: decode, locate the face (when
// enabled), plan the crop window, render.
func (r *Runner) processFile(srcDir, dstDir, name string, faceDetection bool) error {
	src, err := imaging.Open(filepath.Join(srcDir, name))
	if err != nil {
		return fmt.Errorf("decoding image: %w", err)
	}
	dims := types.ImageDimensions{Width: src.Bounds().Dx(), Height: src.Bounds().Dy()}

	var face *types.FaceRegion
	if faceDetection {
		if region, ok := r.locator.Locate(name, src); ok {
			face = &region
		}
	}

	rect := plan.Plan(dims, face, r.cfg)
	logger.WithFields(logrus.Fields{"file": name, "crop": rect.Size()}).Debug("crop planned")
	return r.renderer.Render(src, rect, filepath.Join(dstDir, utils.Stem(name)+render.OutputExt))
}
