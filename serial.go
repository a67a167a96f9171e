package binwire

// Serial is the bidirectional wire contract for values of type V: Serialize
// describes how a value becomes bytes, Deserialize how bytes become a value.
// For every instance the round-trip law holds: decoding the encoding of x
// yields a value equal to x, bit-for-bit.
//
// Instances are expected to be stateless; the ones in this package are
// zero-size structs safe to use from any goroutine.
type Serial[V any] interface {
	Serialize(V) Put
	Deserialize() Get[V]
}

// Encode materializes v's wire bytes in one call.
func Encode[V any](s Serial[V], v V) []byte {
	return s.Serialize(v).Bytes()
}

// Decode decodes a single V from the start of b. Trailing bytes are ignored;
// run the Get yourself (or use codec.Wire) when they should be rejected.
func Decode[V any](s Serial[V], b []byte) (V, error) {
	v, _, err := s.Deserialize().Run(b)
	return v, err
}
