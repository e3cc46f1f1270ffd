package image

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Type struct {
	s string
}

var (
	JPEG = Type{"jpeg"}
	PNG  = Type{"png"}
	GIF  = Type{"gif"}
	TIFF = Type{"tiff"}
	BMP  = Type{"bmp"}
	WEBP = Type{"webp"}
	AVIF = Type{"avif"}
)

func (t Type) String() string {
	return t.s
}

func (t Type) MIME() string {
	return "image/" + t.s
}

func MakeFromString(s string) (Type, error) {
	switch strings.ToLower(s) {
	case JPEG.s, "jpg":
		return JPEG, nil
	case PNG.s:
		return PNG, nil
	case GIF.s:
		return GIF, nil
	case TIFF.s, "tif":
		return TIFF, nil
	case BMP.s:
		return BMP, nil
	case WEBP.s:
		return WEBP, nil
	case AVIF.s:
		return AVIF, nil
	}

	return Type{}, fmt.Errorf("unknown type: %s", s)
}

// MakeFromExtension derives the type from a file name such as "photo.JPG".
func MakeFromExtension(name string) (Type, error) {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return Type{}, fmt.Errorf("no extension: %s", name)
	}
	return MakeFromString(ext)
}
