package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/armorup/famtree/internal/batch"
	"github.com/armorup/famtree/internal/detect"
	"github.com/armorup/famtree/internal/logger"
	"github.com/armorup/famtree/internal/render"
	"github.com/armorup/famtree/internal/tuning"
	"github.com/armorup/famtree/internal/utils"
)

// ThumbOptions holds configuration for the thumbs command
type ThumbOptions struct {
	BaseDir     string
	CascadePath string
}

var thumbOpts ThumbOptions

var thumbsCmd = &cobra.Command{
	Use:   "thumbs",
	Short: "Generate face-centered square thumbnails for photos and doodles",
	Run: func(cmd *cobra.Command, args []string) {
		runThumbs(thumbOpts)
	},
}

func init() {
	thumbsCmd.Flags().StringVarP(&thumbOpts.BaseDir, "dir", "d", ".", "Base directory containing the photos/ and doodles/ subdirectories")
	thumbsCmd.Flags().StringVarP(&thumbOpts.CascadePath, "cascade", "c", "cascade/facefinder", "Path to the pigo facefinder cascade model")

	rootCmd.AddCommand(thumbsCmd)
}

// runThumbs drives both category batches: photos get face detection, doodles
// get the plain center-biased crop. A failed category is reported and skipped
// so the other one still runs.
func runThumbs(opts ThumbOptions) {
	info, err := os.Stat(opts.BaseDir)
	if err != nil {
		utils.Die("Base directory is not accessible", err)
	}
	if !info.IsDir() {
		utils.Die("Base path is not a directory", fmt.Errorf("got %s", opts.BaseDir))
	}

	cfg := tuning.Default()

	// Pick the detection backend once at startup. A missing or unreadable
	// cascade model degrades to the null detector, so thumbnails are still
	// produced via the center-crop fallback.
	var det detect.Detector
	if pd, err := detect.NewPigoDetector(opts.CascadePath, cfg); err == nil {
		det = pd
		logger.Info("using pigo face detection")
	} else {
		det = detect.NullDetector{}
		logger.WithError(err).Warn("face detection unavailable, using center crop")
	}

	runner := batch.New(detect.NewLocator(det, cfg), render.New(cfg), cfg)

	categories := []struct {
		name          string
		faceDetection bool
	}{
		{"photos", true},
		{"doodles", false},
	}

	failed := 0
	for _, cat := range categories {
		src := filepath.Join(opts.BaseDir, cat.name)
		dst := filepath.Join(opts.BaseDir, "thumbs", cat.name)
		if err := runner.Run(src, dst, cat.faceDetection); err != nil {
			failed++
			logger.WithFields(logrus.Fields{"category": cat.name, "error": err}).Error("category batch aborted")
		}
	}

	if failed == len(categories) {
		utils.Die("All category batches failed", nil)
	}
	fmt.Fprintf(os.Stderr, "\n🏁 Done. Thumbnails saved to %s\n", filepath.Join(opts.BaseDir, "thumbs"))
}
