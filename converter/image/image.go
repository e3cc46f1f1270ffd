package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
	"image"
	"imgresize/size"
	"io"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

type Encoder interface {
	Encode(ctx context.Context, img image.Image, quality float32) (io.Reader, int64, error)
}

// CustomImage is a decoded image together with the format it was stored in.
type CustomImage struct {
	img    image.Image
	format Type
}

// Decode reads the whole of reader, detects its format and decodes it. With
// autoOrient the EXIF orientation tag is applied to the pixels.
func Decode(reader io.Reader, autoOrient bool) (*CustomImage, error) {
	buf, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	_, name, err := image.DecodeConfig(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	t, err := MakeFromString(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	img, err := imaging.Decode(bytes.NewReader(buf), imaging.AutoOrientation(autoOrient))
	if err != nil {
		return nil, err
	}

	return &CustomImage{img: img, format: t}, nil
}

func (ci *CustomImage) Format() Type {
	return ci.format
}

func (ci *CustomImage) Size() size.Size {
	b := ci.img.Bounds()
	return size.Size{Width: b.Dx(), Height: b.Dy()}
}

func (ci *CustomImage) Transform(funcs ...Transform) error {
	for _, f := range funcs {
		img, err := f(ci.img)
		if err != nil {
			return err
		}
		ci.img = img
	}
	return nil
}

func (ci *CustomImage) Encode(ctx context.Context, enc Encoder, quality float32) (io.Reader, int64, error) {
	return enc.Encode(ctx, ci.img, quality)
}
