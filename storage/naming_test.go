package storage

import (
	"imgresize/size"
	"testing"
)

func TestOutputName(t *testing.T) {
	s := size.Size{Width: 200, Height: 100}
	tests := []struct {
		source string
		want   string
	}{
		{"photo.jpg", "photo__200x100.jpg"},
		{"/var/images/photo.jpg", "photo__200x100.jpg"},
		{"./photo.PNG", "photo__200x100.PNG"},
		{"archive.tar.gz", "archive.tar__200x100.gz"},
		{"noext", "noext__200x100"},
		{".hidden", ".hidden__200x100"},
		{".hidden.webp", ".hidden__200x100.webp"},
		{"s3://bucket/albums/cat.webp", "cat__200x100.webp"},
	}

	for _, tc := range tests {
		if got := OutputName(tc.source, s); got != tc.want {
			t.Fatalf("OutputName(%q) = %q, want %q", tc.source, got, tc.want)
		}
	}
}
