package codec

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/binwire"
)

// ErrTrailingBytes reports input left over after a complete value was decoded.
var ErrTrailingBytes = errors.New("codec: trailing bytes after value")

// Wire bridges a binwire.Serial into a Codec. Unlike running the Get directly,
// Decode here treats the input as exactly one value: trailing bytes are an
// error. S must be set.
type Wire[V any] struct {
	S binwire.Serial[V]
}

var _ Codec[string] = Wire[string]{}

func (c Wire[V]) Encode(v V) ([]byte, error) {
	return binwire.Encode(c.S, v), nil
}

func (c Wire[V]) Decode(b []byte) (V, error) {
	v, n, err := c.S.Deserialize().Run(b)
	if err != nil {
		var zero V
		return zero, err
	}
	if n != len(b) {
		var zero V
		return zero, fmt.Errorf("%w: %d of %d bytes consumed", ErrTrailingBytes, n, len(b))
	}
	return v, nil
}
