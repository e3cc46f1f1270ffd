package size

import "fmt"

// MaxDimension is the largest width or height a resolution may produce.
const MaxDimension = 1<<31 - 1

// Size is a pair of pixel dimensions.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Params holds the sizing parameters a caller supplied. A nil field was not supplied.
type Params struct {
	Width  *int
	Height *int
	Scale  *float64
}

func Int(v int) *int {
	return &v
}

func Float(v float64) *float64 {
	return &v
}

type Advisory struct {
	s string
}

var (
	NoAdvisory      = Advisory{}
	AspectRatioRisk = Advisory{"aspect-ratio-risk"}
)

func (a Advisory) String() string {
	return a.s
}

// Message is the text shown to a user before the resize continues.
func (a Advisory) Message() string {
	switch a {
	case AspectRatioRisk:
		return "specifying both width and height may distort the image proportions"
	default:
		return ""
	}
}

// Resolution is the outcome of a successful Resolve.
type Resolution struct {
	Size     Size
	Advisory Advisory
}
