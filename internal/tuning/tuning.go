package tuning

// Config holds the magic numbers and thresholds for thumbnail generation.
// These were tuned empirically against the family photo corpus and are
// centralized here so they can be adjusted without touching geometry or
// detection code.
type Config struct {
	// Crop geometry
	FaceFillRatio float64 // Default: 0.65 (fraction of thumbnail height the face occupies; smaller = looser crop)
	HairlineBias  float64 // Default: 0.05 (upward shift of the crop center, in face heights, to include hair/forehead)

	// Detection: strict default pass
	StrictScaleFactor float64 // Default: 1.1 (cascade scale step)
	StrictShiftFactor float64 // Default: 0.1 (detection window stride)
	StrictMinSize     int     // Default: 20 (smallest face edge in px)
	StrictMinQuality  float32 // Default: 5.0 (cascade score cutoff)

	// Detection: lenient retry pass, run only when the strict pass finds nothing
	LenientScaleFactor float64 // Default: 1.05
	LenientShiftFactor float64 // Default: 0.08
	LenientMinSize     int     // Default: 15
	LenientMinQuality  float32 // Default: 3.0

	ClusterIoU float64 // Default: 0.2 (overlap threshold for merging duplicate detections)

	// Output
	ThumbSize       int // Default: 100 (square edge of every thumbnail)
	EncodingQuality int // Default: 90 (honored by lossy encoders only)
}

// Default returns the standard values.
//
// FaceFillRatio implements the crop_size = face_height / ratio policy with
// no lower floor on the window size; the alternative face_height * 1.8
// sizing clamped to half the smaller image dimension was rejected because
// it over-widens crops around small faces in large images.
func Default() Config {
	return Config{
		FaceFillRatio:      0.65,
		HairlineBias:       0.05,
		StrictScaleFactor:  1.1,
		StrictShiftFactor:  0.1,
		StrictMinSize:      20,
		StrictMinQuality:   5.0,
		LenientScaleFactor: 1.05,
		LenientShiftFactor: 0.08,
		LenientMinSize:     15,
		LenientMinQuality:  3.0,
		ClusterIoU:         0.2,
		ThumbSize:          100,
		EncodingQuality:    90,
	}
}
