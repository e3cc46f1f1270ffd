package size

import (
	"fmt"
	"math"
)

var (
	errScaleWithBoth = &Error{
		Reason:  ConflictingParams,
		Message: "cannot combine explicit width and height with a scale factor",
	}
	errScaleWithOne = &Error{
		Reason:  ConflictingParams,
		Message: "cannot combine a single dimension with a scale factor",
	}
	errNonPositive = &Error{
		Reason:  NonPositiveParam,
		Message: "width, height and scale must be greater than zero",
	}
)

// specified reports whether v was supplied with a non-zero value. Zero counts
// as absent for the conflict rules.
func specified[T int | float64](v *T) bool {
	return v != nil && *v != 0
}

func nonPositive[T int | float64](v *T) bool {
	return v != nil && !(*v > 0)
}

// Validate applies the parameter policy without looking at any image. Conflicts
// are checked first, then the advisory, then positivity of every supplied value.
func Validate(p Params) (Advisory, error) {
	w, h, s := specified(p.Width), specified(p.Height), specified(p.Scale)

	advisory := NoAdvisory
	switch {
	case s && w && h:
		return NoAdvisory, errScaleWithBoth
	case s && (w || h):
		return NoAdvisory, errScaleWithOne
	case w && h:
		advisory = AspectRatioRisk
	}

	if nonPositive(p.Width) || nonPositive(p.Height) || nonPositive(p.Scale) {
		return NoAdvisory, errNonPositive
	}
	return advisory, nil
}

// Resolve validates p and computes the target size for an image of the given
// original size. Derived dimensions are truncated toward zero.
func Resolve(original Size, p Params) (Resolution, error) {
	advisory, err := Validate(p)
	if err != nil {
		return Resolution{}, err
	}

	if original.Width <= 0 || original.Height <= 0 {
		return Resolution{}, degenerate("source image has a degenerate size %s", original)
	}

	var target Size
	switch w, h, s := specified(p.Width), specified(p.Height), specified(p.Scale); {
	case w && h:
		target = Size{Width: *p.Width, Height: *p.Height}
	case s:
		target, err = scaled(original, *p.Scale)
	case w:
		target = Size{Width: *p.Width}
		target.Height, err = mulDiv(*p.Width, original.Height, original.Width)
	case h:
		target = Size{Height: *p.Height}
		target.Width, err = mulDiv(*p.Height, original.Width, original.Height)
	default:
		target = original
	}
	if err != nil {
		return Resolution{}, err
	}

	if target.Width < 1 || target.Height < 1 {
		return Resolution{}, degenerate("resizing %s to %s leaves no pixels", original, target)
	}
	if target.Width > MaxDimension || target.Height > MaxDimension {
		return Resolution{}, degenerate("target size %s exceeds the maximum dimension", target)
	}
	return Resolution{Size: target, Advisory: advisory}, nil
}

func scaled(original Size, scale float64) (Size, error) {
	w := math.Floor(float64(original.Width) * scale)
	h := math.Floor(float64(original.Height) * scale)
	if w > MaxDimension || h > MaxDimension {
		return Size{}, degenerate("scaling %s by %g exceeds the maximum dimension", original, scale)
	}
	return Size{Width: int(w), Height: int(h)}, nil
}

// mulDiv returns floor(a*b/c) for positive operands.
func mulDiv(a, b, c int) (int, error) {
	if a > MaxDimension || b > MaxDimension {
		return 0, degenerate("dimension %d exceeds the maximum dimension", max(a, b))
	}
	v := int64(a) * int64(b) / int64(c)
	if v > MaxDimension {
		return 0, degenerate("derived dimension %d exceeds the maximum dimension", v)
	}
	return int(v), nil
}

func degenerate(format string, args ...any) *Error {
	return &Error{Reason: DegenerateSize, Message: fmt.Sprintf(format, args...)}
}
