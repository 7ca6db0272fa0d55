package utils

import "testing"

func TestAcceptedImage(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"portrait.png", true},
		{"scan.jpg", true},
		{"scan.jpeg", true},
		{"doodle.webp", true},
		{"SHOUTING.JPG", true}, // Extension check is case-insensitive
		{"mixed.WeBp", true},
		{"notes.txt", false},
		{"archive.png.zip", false}, // Only the final extension counts
		{"no_extension", false},
		{".png", true},
	}

	for _, tt := range tests {
		if got := AcceptedImage(tt.name); got != tt.want {
			t.Errorf("AcceptedImage(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"portrait.png", "portrait"},
		{"grandma.photo.jpeg", "grandma.photo"}, // Only the final extension is stripped
		{"no_extension", "no_extension"},
		{"UPPER.JPG", "UPPER"},
	}

	for _, tt := range tests {
		if got := Stem(tt.name); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
