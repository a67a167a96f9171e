package codec

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput  = errors.New("codec: empty input")
	ErrUnknownCode = errors.New("codec: unknown codec code")
)

// Registry multiplexes several codecs for the same value type behind a
// single-byte discriminant: Encode prepends the code of the chosen codec,
// Decode dispatches on the first byte. This lets a deployment migrate between
// codecs while still reading payloads written by the old one.
//
// A Registry is not safe for concurrent Register; register everything up
// front, then share freely.
type Registry[V any] struct {
	codecs map[byte]Codec[V]
}

func NewRegistry[V any]() *Registry[V] {
	return &Registry[V]{codecs: make(map[byte]Codec[V])}
}

// Register binds code to c. Re-registering a code is rejected: silently
// replacing a codec would make old payloads undecodable.
func (r *Registry[V]) Register(code byte, c Codec[V]) error {
	if c == nil {
		return fmt.Errorf("codec: nil codec for code 0x%02x", code)
	}
	if _, dup := r.codecs[code]; dup {
		return fmt.Errorf("codec: code 0x%02x already registered", code)
	}
	r.codecs[code] = c
	return nil
}

// Encode encodes v with the codec registered under code and prepends the code
// byte.
func (r *Registry[V]) Encode(code byte, v V) ([]byte, error) {
	c, ok := r.codecs[code]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownCode, code)
	}
	payload, err := c.Encode(v)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, 1+len(payload))
	out = append(out, code)
	return append(out, payload...), nil
}

// Decode dispatches b's first byte to the matching codec.
func (r *Registry[V]) Decode(b []byte) (V, error) {
	var zero V
	if len(b) == 0 {
		return zero, ErrEmptyInput
	}
	c, ok := r.codecs[b[0]]
	if !ok {
		return zero, fmt.Errorf("%w: 0x%02x", ErrUnknownCode, b[0])
	}
	return c.Decode(b[1:])
}
