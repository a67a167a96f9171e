package codec

import "fmt"

// Limit wraps another codec to cap the payload size accepted by Decode.
// Encode is forwarded to Inner unchanged. MaxDecode <= 0 disables the cap.
//
// Typical use: protect against oversized or malicious inputs coming from a
// shared store or an untrusted peer.
type Limit[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
	// MaxDecode is the maximum permitted payload length, in bytes.
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }

func (c Limit[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("codec: payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
