// Package codec provides a pluggable []byte codec surface on top of binwire
// and a few batteries-included backends (CBOR, msgpack, JSON, protobuf), plus
// wrappers for size limits, failure logging and multi-codec dispatch.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
