package image

import (
	"fmt"
	"github.com/disintegration/imaging"
	"image"
)

var imagingFilters = map[string]imaging.ResampleFilter{
	"lanczos":    imaging.Lanczos,
	"catmullrom": imaging.CatmullRom,
	"mitchell":   imaging.MitchellNetravali,
	"linear":     imaging.Linear,
	"box":        imaging.Box,
	"nearest":    imaging.NearestNeighbor,
}

type imagingResampler struct {
	filter imaging.ResampleFilter
}

func newImagingResampler(filter string) (Resampler, error) {
	f, ok := imagingFilters[filter]
	if !ok {
		return nil, fmt.Errorf("unknown filter for engine %s: %s", Imaging, filter)
	}
	return &imagingResampler{filter: f}, nil
}

func (r *imagingResampler) Resample(img image.Image, width, height int) (image.Image, error) {
	return imaging.Resize(img, width, height, r.filter), nil
}
