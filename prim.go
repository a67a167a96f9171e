package binwire

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"
)

// Wire layouts, all big-endian, no padding:
//
//	bool    1 byte, 0x00=false 0x01=true, anything else is invalid
//	intN    N/8 bytes, two's complement bit pattern of the unsigned encoding
//	uintN   N/8 bytes, most significant byte first
//	floatN  N/8 bytes, IEEE 754 bit pattern encoded like uintN
//	string  int64 byte length | UTF-8 payload
//	blob    int64 byte length | raw payload
//
// Platform-width int/uint deliberately have no instance here.

// Bool is the Serial instance for bool.
type Bool struct{}

var _ Serial[bool] = Bool{}

var getBool = ByReadingBytes(1, func(b []byte) (bool, error) {
	switch b[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, fmt.Errorf("%w: bool byte 0x%02x", ErrInvalidDiscriminant, b[0])
	}
})

func (Bool) Serialize(v bool) Put {
	return ByWritingBytes(1, func(b []byte) {
		if v {
			b[0] = 0x01
		}
	})
}

func (Bool) Deserialize() Get[bool] { return getBool }

// Uint8 is the Serial instance for uint8.
type Uint8 struct{}

var _ Serial[uint8] = Uint8{}

var getUint8 = ByReadingBytes(1, func(b []byte) (uint8, error) { return b[0], nil })

func (Uint8) Serialize(v uint8) Put {
	return ByWritingBytes(1, func(b []byte) { b[0] = v })
}

func (Uint8) Deserialize() Get[uint8] { return getUint8 }

// Int8 is the Serial instance for int8. The wire byte is the two's complement
// reinterpretation of the unsigned byte.
type Int8 struct{}

var _ Serial[int8] = Int8{}

var getInt8 = Map(getUint8, func(v uint8) int8 { return int8(v) })

func (Int8) Serialize(v int8) Put { return Uint8{}.Serialize(uint8(v)) }

func (Int8) Deserialize() Get[int8] { return getInt8 }

// Uint16 is the Serial instance for uint16.
type Uint16 struct{}

var _ Serial[uint16] = Uint16{}

var getUint16 = ByReadingBytes(2, func(b []byte) (uint16, error) {
	return binary.BigEndian.Uint16(b), nil
})

func (Uint16) Serialize(v uint16) Put {
	return ByWritingBytes(2, func(b []byte) { binary.BigEndian.PutUint16(b, v) })
}

func (Uint16) Deserialize() Get[uint16] { return getUint16 }

// Int16 is the Serial instance for int16.
type Int16 struct{}

var _ Serial[int16] = Int16{}

var getInt16 = Map(getUint16, func(v uint16) int16 { return int16(v) })

func (Int16) Serialize(v int16) Put { return Uint16{}.Serialize(uint16(v)) }

func (Int16) Deserialize() Get[int16] { return getInt16 }

// Uint32 is the Serial instance for uint32.
type Uint32 struct{}

var _ Serial[uint32] = Uint32{}

var getUint32 = ByReadingBytes(4, func(b []byte) (uint32, error) {
	return binary.BigEndian.Uint32(b), nil
})

func (Uint32) Serialize(v uint32) Put {
	return ByWritingBytes(4, func(b []byte) { binary.BigEndian.PutUint32(b, v) })
}

func (Uint32) Deserialize() Get[uint32] { return getUint32 }

// Int32 is the Serial instance for int32.
type Int32 struct{}

var _ Serial[int32] = Int32{}

var getInt32 = Map(getUint32, func(v uint32) int32 { return int32(v) })

func (Int32) Serialize(v int32) Put { return Uint32{}.Serialize(uint32(v)) }

func (Int32) Deserialize() Get[int32] { return getInt32 }

// Uint64 is the Serial instance for uint64.
type Uint64 struct{}

var _ Serial[uint64] = Uint64{}

var getUint64 = ByReadingBytes(8, func(b []byte) (uint64, error) {
	return binary.BigEndian.Uint64(b), nil
})

func (Uint64) Serialize(v uint64) Put {
	return ByWritingBytes(8, func(b []byte) { binary.BigEndian.PutUint64(b, v) })
}

func (Uint64) Deserialize() Get[uint64] { return getUint64 }

// Int64 is the Serial instance for int64.
type Int64 struct{}

var _ Serial[int64] = Int64{}

var getInt64 = Map(getUint64, func(v uint64) int64 { return int64(v) })

func (Int64) Serialize(v int64) Put { return Uint64{}.Serialize(uint64(v)) }

func (Int64) Deserialize() Get[int64] { return getInt64 }

// Float32 is the Serial instance for float32. The wire bytes are the IEEE 754
// bit pattern, so NaN payloads survive the round trip unchanged.
type Float32 struct{}

var _ Serial[float32] = Float32{}

var getFloat32 = Map(getUint32, math.Float32frombits)

func (Float32) Serialize(v float32) Put {
	return Uint32{}.Serialize(math.Float32bits(v))
}

func (Float32) Deserialize() Get[float32] { return getFloat32 }

// Float64 is the Serial instance for float64.
type Float64 struct{}

var _ Serial[float64] = Float64{}

var getFloat64 = Map(getUint64, math.Float64frombits)

func (Float64) Serialize(v float64) Put {
	return Uint64{}.Serialize(math.Float64bits(v))
}

func (Float64) Deserialize() Get[float64] { return getFloat64 }

// String is the Serial instance for string: an int64 big-endian byte count
// (UTF-8 bytes, not runes) followed by the raw payload. The empty string is
// eight zero bytes and no payload.
//
// Decoding fails with ErrInvalidLength on a negative count and with
// ErrMalformedString when the payload is not valid UTF-8. Corruption is never
// papered over with a fallback value.
type String struct{}

var _ Serial[string] = String{}

var getString = FlatMap(getInt64, func(n int64) Get[string] {
	if n < 0 {
		return failWith[string](fmt.Errorf("%w: string length %d", ErrInvalidLength, n))
	}
	if n > int64(math.MaxInt) {
		return failWith[string](ErrUnexpectedEOF)
	}
	return ByReadingBytes(int(n), func(b []byte) (string, error) {
		if !utf8.Valid(b) {
			return "", ErrMalformedString
		}
		return string(b), nil
	})
})

func (String) Serialize(v string) Put {
	n := len(v)
	return Int64{}.Serialize(int64(n)).Concat(
		ByWritingBytes(n, func(b []byte) { copy(b, v) }))
}

func (String) Deserialize() Get[string] { return getString }

// Blob is the Serial instance for raw byte slices: same framing as String but
// the payload is opaque, no validation. The decoded slice is a copy and never
// aliases the input.
type Blob struct{}

var _ Serial[[]byte] = Blob{}

var getBlob = FlatMap(getInt64, func(n int64) Get[[]byte] {
	if n < 0 {
		return failWith[[]byte](fmt.Errorf("%w: blob length %d", ErrInvalidLength, n))
	}
	if n > int64(math.MaxInt) {
		return failWith[[]byte](ErrUnexpectedEOF)
	}
	return ByReadingBytes(int(n), func(b []byte) ([]byte, error) {
		out := make([]byte, len(b))
		copy(out, b)
		return out, nil
	})
})

func (Blob) Serialize(v []byte) Put {
	n := len(v)
	return Int64{}.Serialize(int64(n)).Concat(
		ByWritingBytes(n, func(b []byte) { copy(b, v) }))
}

func (Blob) Deserialize() Get[[]byte] { return getBlob }
