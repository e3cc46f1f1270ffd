package image

import (
	"fmt"
	"github.com/nfnt/resize"
	"image"
)

var nfntFilters = map[string]resize.InterpolationFunction{
	"lanczos":    resize.Lanczos3,
	"catmullrom": resize.Bicubic,
	"mitchell":   resize.MitchellNetravali,
	"linear":     resize.Bilinear,
	"nearest":    resize.NearestNeighbor,
}

type nfntResampler struct {
	interp resize.InterpolationFunction
}

func newNfntResampler(filter string) (Resampler, error) {
	f, ok := nfntFilters[filter]
	if !ok {
		return nil, fmt.Errorf("unknown filter for engine %s: %s", Nfnt, filter)
	}
	return &nfntResampler{interp: f}, nil
}

func (r *nfntResampler) Resample(img image.Image, width, height int) (image.Image, error) {
	return resize.Resize(uint(width), uint(height), img, r.interp), nil
}
