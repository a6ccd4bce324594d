package bitsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// A Bit is a single logic value, either Lo or Hi. No unknown or floating
// state is modeled: every signal either resolves to a concrete value or
// the evaluation fails.
type Bit uint8

// Logic levels.
const (
	Lo Bit = 0
	Hi Bit = 1
)

// Errors reported by the engine. Call sites wrap these with operation
// context; use errors.Cause to classify.
var (
	// ErrInvalidInput reports an input outside {Lo, Hi}. The offending
	// call is rejected before any evaluation takes place.
	ErrInvalidInput = errors.New("invalid logic value")

	// ErrDivergentFeedback reports that a feedback network failed to
	// reach a fixed point within the iteration cap. This is unreachable
	// for valid two-value inputs and indicates a library defect.
	ErrDivergentFeedback = errors.New("feedback network did not converge")
)

// Valid reports whether b is a well-formed logic value.
func (b Bit) Valid() bool {
	return b == Lo || b == Hi
}

func (b Bit) String() string {
	return strconv.Itoa(int(b))
}

// checkBits rejects malformed inputs before any evaluation.
func checkBits(op string, bits ...Bit) error {
	for _, b := range bits {
		if !b.Valid() {
			return errors.Wrapf(ErrInvalidInput, "%s: got %d", op, b)
		}
	}
	return nil
}
