//go:build vips

package image

import (
	"bytes"
	"fmt"
	"github.com/h2non/bimg"
	"image"
	"image/png"
)

func init() {
	engines[Vips] = newVipsResampler
}

var vipsInterpolators = map[string]bimg.Interpolator{
	"lanczos":    bimg.Bicubic,
	"catmullrom": bimg.Bicubic,
	"linear":     bimg.Bilinear,
	"nearest":    bimg.Nearest,
}

type vipsResampler struct {
	interpolator bimg.Interpolator
}

func newVipsResampler(filter string) (Resampler, error) {
	f, ok := vipsInterpolators[filter]
	if !ok {
		return nil, fmt.Errorf("unknown filter for engine %s: %s", Vips, filter)
	}
	return &vipsResampler{interpolator: f}, nil
}

// Resample hands the pixels to libvips as a lossless PNG and decodes its output.
func (r *vipsResampler) Resample(img image.Image, width, height int) (image.Image, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	out, err := bimg.NewImage(buf.Bytes()).Process(bimg.Options{
		Width:        width,
		Height:       height,
		Force:        true,
		Interpolator: r.interpolator,
		Type:         bimg.PNG,
	})
	if err != nil {
		return nil, fmt.Errorf("vips resize: %w", err)
	}

	return png.Decode(bytes.NewReader(out))
}
