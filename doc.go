// Package binwire implements a composable binary serialization core: a pair of
// small primitives - an append-only byte builder (Put) and a positional byte
// consumer (Get) - plus a generic wire contract (Serial) tying value types to a
// fixed, big-endian byte layout.
//
// Components:
//   - Put: immutable builder of an ordered byte sequence. Concat composes.
//   - Get[A]: one decode step over an internal cursor. Compose with Map and
//     FlatMap; the only byte-touching primitive is ByReadingBytes.
//   - Serial[V]: Serialize(V) Put / Deserialize() Get[V]. Instances exist for
//     bool, fixed-width ints, floats, strings, raw blobs and UUIDs.
//
// The wire format is raw and headerless: no magic, no version tag, no padding.
// Both sides must agree on type and order out of band. Callers that need
// self-delimiting records can wrap encoded bytes with the frame subpackage;
// callers that want a pluggable []byte codec surface (CBOR, msgpack, protobuf,
// size limits, failure logging) use the codec subpackage.
//
// decode(encode(x)) == x holds bit-for-bit for every instance and every finite
// value, including NaN/Inf float patterns and the empty string.
//
// Platform-width int and uint have no Serial instance on purpose: their size is
// machine-dependent, which breaks byte-exact interoperability. Convert to a
// fixed-width type at the call site.
package binwire
