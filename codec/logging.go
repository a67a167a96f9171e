package codec

import (
	"github.com/unkn0wn-root/binwire"
)

// Logging wraps another codec and reports encode/decode failures through a
// binwire.Logger. Successes are not logged; this is a failure tap, not an
// access log. A nil Log disables logging.
type Logging[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
	// Log receives failure events. Nil means disabled.
	Log binwire.Logger
	// Name tags every event so multiple wrapped codecs stay distinguishable.
	Name string
}

func (c Logging[V]) Encode(v V) ([]byte, error) {
	b, err := c.Inner.Encode(v)
	if err != nil && c.Log != nil {
		c.Log.Error("codec.encode_failed", binwire.Fields{
			"codec": c.Name,
			"error": err.Error(),
		})
	}
	return b, err
}

func (c Logging[V]) Decode(b []byte) (V, error) {
	v, err := c.Inner.Decode(b)
	if err != nil && c.Log != nil {
		c.Log.Error("codec.decode_failed", binwire.Fields{
			"codec":     c.Name,
			"input_len": len(b),
			"error":     err.Error(),
		})
	}
	return v, err
}
