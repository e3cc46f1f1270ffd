package size

import "errors"

// Reason classifies a fatal resolution error.
type Reason struct {
	s string
}

var (
	ConflictingParams = Reason{"conflicting-params"}
	NonPositiveParam  = Reason{"non-positive-param"}
	DegenerateSize    = Reason{"degenerate-size"}
)

func (r Reason) String() string {
	return r.s
}

type Error struct {
	Reason  Reason
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ReasonOf reports the Reason of the first *Error in err's chain.
func ReasonOf(err error) (Reason, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Reason, true
	}
	return Reason{}, false
}
