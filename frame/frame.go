// Package frame wraps encoded payloads in a self-delimiting record so they can
// sit in storage or on a stream next to other data. The binwire core itself is
// headerless on purpose; framing is strictly opt-in and caller-side.
package frame

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/cespare/xxhash/v2"
)

const (
	version byte = 1

	flagChecksum byte = 1 << 0
)

var (
	ErrCorrupt  = errors.New("frame: corrupt record")
	ErrChecksum = errors.New("frame: payload checksum mismatch")

	magic4 = [...]byte{'B', 'W', 'R', 'E'}
)

// Record: magic(4) | ver(1) | flags(1) | sum(8, xxhash64 be, if flagChecksum) | plen(4 be) | payload(plen)
const (
	headerLen = 4 + 1 + 1
	sumLen    = 8
	plenLen   = 4
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Encode wraps payload in a record. With withSum set, an xxhash64 of the
// payload is carried so Decode can detect bit rot.
func Encode(payload []byte, withSum bool) []byte {
	total := headerLen + plenLen + len(payload)
	if withSum {
		total += sumLen
	}

	var buf bytes.Buffer
	buf.Grow(total)

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var flags byte
	if withSum {
		flags |= flagChecksum
	}
	buf.WriteByte(flags)

	var u8 [8]byte
	var u4 [4]byte

	if withSum {
		binary.BigEndian.PutUint64(u8[:], xxhash.Sum64(payload))
		buf.Write(u8[:])
	}

	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// Decode unwraps a record produced by Encode. Trailing bytes after the payload
// are rejected. The returned payload is a zero-copy subslice of b.
func Decode(b []byte) ([]byte, error) {
	if len(b) < headerLen || !hasMagic(b) || b[4] != version {
		return nil, ErrCorrupt
	}

	flags := b[5]
	if flags&^flagChecksum != 0 {
		return nil, ErrCorrupt
	}

	off := headerLen

	// sum
	var sum uint64
	if flags&flagChecksum != 0 {
		if off+sumLen > len(b) {
			return nil, ErrCorrupt
		}
		sum = binary.BigEndian.Uint64(b[off : off+sumLen])
		off += sumLen
	}

	// plen
	if off+plenLen > len(b) {
		return nil, ErrCorrupt
	}
	plen := int(binary.BigEndian.Uint32(b[off : off+plenLen]))
	off += plenLen
	if plen < 0 || plen != len(b)-off {
		return nil, ErrCorrupt
	}

	payload := b[off : off+plen]
	if flags&flagChecksum != 0 && xxhash.Sum64(payload) != sum {
		return nil, ErrChecksum
	}
	return payload, nil
}
