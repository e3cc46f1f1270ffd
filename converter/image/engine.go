package image

import (
	"fmt"
	"image"
	"strings"
)

// Resampler scales an image to an exact width and height.
type Resampler interface {
	Resample(img image.Image, width, height int) (image.Image, error)
}

type Engine struct {
	s string
}

var (
	Imaging = Engine{"imaging"}
	Nfnt    = Engine{"nfnt"}
	Vips    = Engine{"vips"}
)

func (e Engine) String() string {
	return e.s
}

func MakeEngineFromString(s string) (Engine, error) {
	switch strings.ToLower(s) {
	case Imaging.s:
		return Imaging, nil
	case Nfnt.s:
		return Nfnt, nil
	case Vips.s:
		return Vips, nil
	}

	return Engine{}, fmt.Errorf("unknown engine: %s", s)
}

// engines holds the constructors compiled into this binary. Vips registers
// itself only in builds with the vips tag.
var engines = map[Engine]func(filter string) (Resampler, error){
	Imaging: newImagingResampler,
	Nfnt:    newNfntResampler,
}

// NewResampler returns the resampler of the named engine using the named filter.
func NewResampler(engine, filter string) (Resampler, error) {
	e, err := MakeEngineFromString(engine)
	if err != nil {
		return nil, err
	}

	newResampler, ok := engines[e]
	if !ok {
		return nil, fmt.Errorf("engine %s is not available in this build", e)
	}
	return newResampler(strings.ToLower(filter))
}
