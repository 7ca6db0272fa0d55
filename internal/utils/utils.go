package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Die is the unified exit strategy for famtree.
// It prints a formatted error box and terminates the process.
func Die(context string, err error) {
	fmt.Fprintf(os.Stderr, "\n---------------------------------------------------------\n")
	fmt.Fprintf(os.Stderr, "🚨 FAMTREE ERROR: %s\n", context)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DETAILS: %v\n", err)
	}
	fmt.Fprintf(os.Stderr, "---------------------------------------------------------\n")
	os.Exit(1)
}

// acceptedExts are the source image extensions the batch picks up.
var acceptedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// AcceptedImage reports whether the filename has one of the supported image
// extensions. The check is case-insensitive.
func AcceptedImage(name string) bool {
	return acceptedExts[strings.ToLower(filepath.Ext(name))]
}

// Stem returns the filename without its extension, used to derive the output
// name of a thumbnail.
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
