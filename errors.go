package binwire

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF reports a decode step that needed more bytes than the
	// input had left.
	ErrUnexpectedEOF = errors.New("binwire: unexpected end of input")

	// ErrInvalidDiscriminant reports a byte pattern that maps to no valid
	// value of the target type (e.g. a bool byte other than 0x00/0x01).
	ErrInvalidDiscriminant = errors.New("binwire: invalid discriminant")

	// ErrMalformedString reports a string payload that is not valid UTF-8.
	ErrMalformedString = errors.New("binwire: malformed UTF-8 string payload")

	// ErrInvalidLength reports a negative length prefix.
	ErrInvalidLength = errors.New("binwire: invalid length prefix")
)

// DecodeError wraps the failure of a single decode step with the byte offset
// the cursor was at when the step began. Unwrap exposes the cause so callers
// can errors.Is against the package sentinels.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func failAt(off int, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err // already positioned; keep the innermost offset
	}
	return &DecodeError{Offset: off, Err: err}
}
