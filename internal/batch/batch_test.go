package batch

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/armorup/famtree/internal/detect"
	"github.com/armorup/famtree/internal/render"
	"github.com/armorup/famtree/internal/tuning"
)

// fixedFaceDetector always reports one face, regardless of sensitivity.
type fixedFaceDetector struct {
	face image.Rectangle
}

func (f fixedFaceDetector) Detect(image.Image, detect.Sensitivity) ([]image.Rectangle, error) {
	return []image.Rectangle{f.face}, nil
}

func newTestRunner(det detect.Detector) *Runner {
	cfg := tuning.Default()
	return New(detect.NewLocator(det, cfg), render.New(cfg), cfg)
}

func writeImage(t *testing.T, path string, w, h int) {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 180, B: 160, A: 255})
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("writing fixture %s: %v", path, err)
	}
}

func TestRunProcessesDirectory(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := filepath.Join(t.TempDir(), "thumbs")

	// 1. Populate the source directory
	writeImage(t, filepath.Join(srcDir, "b.png"), 64, 48)
	writeImage(t, filepath.Join(srcDir, "a.jpg"), 80, 80)
	writeImage(t, filepath.Join(srcDir, "UPPER.JPG"), 48, 64) // Extension match is case-insensitive

	// Non-image files and subdirectories are ignored
	os.WriteFile(filepath.Join(srcDir, "notes.txt"), []byte("not an image"), 0644)
	os.MkdirAll(filepath.Join(srcDir, "nested"), 0755)
	writeImage(t, filepath.Join(srcDir, "nested", "skip.png"), 32, 32)

	// A corrupt file with an accepted extension must be skipped, not fatal
	os.WriteFile(filepath.Join(srcDir, "corrupt.png"), []byte("garbage bytes"), 0644)

	// 2. Run the batch without face detection
	if err := newTestRunner(detect.NullDetector{}).Run(srcDir, dstDir, false); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// 3. Exactly the three valid images produce thumbnails, renamed to .png
	for _, want := range []string{"a.png", "b.png", "UPPER.png"} {
		out, err := imaging.Open(filepath.Join(dstDir, want))
		if err != nil {
			t.Errorf("missing thumbnail %s: %v", want, err)
			continue
		}
		if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 100 {
			t.Errorf("%s is %dx%d, want 100x100", want, out.Bounds().Dx(), out.Bounds().Dy())
		}
	}

	// 4. No partial or stray outputs for the skipped/corrupt files
	entries, err := os.ReadDir(dstDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		for _, e := range entries {
			t.Logf("found: %s", e.Name())
		}
		t.Errorf("expected 3 thumbnails, found %d entries", len(entries))
	}
}

func TestRunWithFaceDetection(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	writeImage(t, filepath.Join(srcDir, "portrait.jpeg"), 400, 400)

	det := fixedFaceDetector{face: image.Rect(150, 100, 250, 200)}
	if err := newTestRunner(det).Run(srcDir, dstDir, true); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	out, err := imaging.Open(filepath.Join(dstDir, "portrait.png"))
	if err != nil {
		t.Fatalf("missing thumbnail: %v", err)
	}
	if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 100 {
		t.Errorf("thumbnail is %dx%d, want 100x100", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestRunMissingSourceDir(t *testing.T) {
	dstDir := t.TempDir()

	err := newTestRunner(detect.NullDetector{}).Run(filepath.Join(dstDir, "nope"), dstDir, false)
	if err == nil {
		t.Fatal("expected an error for a missing source directory")
	}

	// The failed category must not have created any output
	entries, _ := os.ReadDir(dstDir)
	if len(entries) != 0 {
		t.Errorf("expected no output, found %d entries", len(entries))
	}
}
