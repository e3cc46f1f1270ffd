package image

import (
	"image"
	"imgresize/size"
)

type Transform func(image.Image) (image.Image, error)

// WithSize resamples the image to exactly s. An image already of that size is
// returned untouched.
func WithSize(s size.Size, r Resampler) Transform {
	return func(img image.Image) (image.Image, error) {
		b := img.Bounds()
		if b.Dx() == s.Width && b.Dy() == s.Height {
			return img, nil
		}

		return r.Resample(img, s.Width, s.Height)
	}
}
