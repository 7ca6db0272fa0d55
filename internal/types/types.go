package types

import "image"

// ImageDimensions is the pixel size of a decoded source image
type ImageDimensions struct {
	Width  int
	Height int
}

// FaceRegion is a detected face: its center point and vertical extent in
// source-image pixel coordinates. Width is zero when the detector does not
// report one.
type FaceRegion struct {
	CenterX int
	CenterY int
	Height  int
	Width   int
}

// CropRect is the square window selected from the source image.
// Invariant: 0 <= Left < Right <= width, 0 <= Top < Bottom <= height,
// Right-Left == Bottom-Top.
type CropRect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Size returns the edge length of the square window.
func (r CropRect) Size() int {
	return r.Right - r.Left
}

// Bounds converts the window to a stdlib rectangle for the image codec.
func (r CropRect) Bounds() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}
