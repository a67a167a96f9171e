package frame

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func mustDecode(t *testing.T, b []byte) []byte {
	t.Helper()
	p, err := Decode(b)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	return p
}

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("x"),
		[]byte{0, 1, 2, 3, 4},
		bytes.Repeat([]byte{0xAB}, 1<<12),
	}
	for _, payload := range cases {
		for _, withSum := range []bool{false, true} {
			enc := Encode(payload, withSum)
			got := mustDecode(t, enc)
			if !bytes.Equal(got, payload) {
				t.Fatalf("withSum=%v: got %x want %x", withSum, got, payload)
			}
		}
	}
}

func TestRejectsTrailingBytes(t *testing.T) {
	enc := Encode([]byte("x"), true)
	enc = append(enc, 0xDE, 0xAD)
	if _, err := Decode(enc); err == nil {
		t.Fatalf("expected error on trailing bytes")
	}
}

func TestCorruptHeaders(t *testing.T) {
	enc := Encode([]byte("abc"), true)

	// bad magic
	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'X'
	if _, err := Decode(badMagic); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("bad magic: err = %v", err)
	}

	// wrong version
	badVer := append([]byte(nil), enc...)
	badVer[4] = version + 1
	if _, err := Decode(badVer); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("bad version: err = %v", err)
	}

	// unknown flag bit
	badFlags := append([]byte(nil), enc...)
	badFlags[5] |= 0x80
	if _, err := Decode(badFlags); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("bad flags: err = %v", err)
	}

	// plen announces more than available
	// layout with checksum: 4 magic + 1 ver + 1 flags + 8 sum => plen at 14
	tooLong := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(tooLong[14:18], uint32(len("abc")+1))
	if _, err := Decode(tooLong); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("plen beyond buffer: err = %v", err)
	}

	// truncated buffer
	trunc := enc[:len(enc)-1]
	if _, err := Decode(trunc); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("truncated: err = %v", err)
	}
}

func TestTruncatedHeaderFields(t *testing.T) {
	enc := Encode([]byte("abc"), true)
	// cut inside the checksum field
	if _, err := Decode(enc[:headerLen+3]); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("cut in sum: err = %v", err)
	}
	// cut inside the plen field
	if _, err := Decode(enc[:headerLen+sumLen+2]); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("cut in plen: err = %v", err)
	}
}

func TestChecksumMismatch(t *testing.T) {
	enc := Encode([]byte("payload"), true)
	flipped := append([]byte(nil), enc...)
	flipped[len(flipped)-1] ^= 0x01
	if _, err := Decode(flipped); !errors.Is(err, ErrChecksum) {
		t.Fatalf("err = %v, want ErrChecksum", err)
	}
}

func TestNoChecksumSkipsValidation(t *testing.T) {
	enc := Encode([]byte("payload"), false)
	flipped := append([]byte(nil), enc...)
	flipped[len(flipped)-1] ^= 0x01
	// without the checksum flag corruption goes undetected here; that is the
	// caller's trade-off when withSum is false
	got := mustDecode(t, flipped)
	if bytes.Equal(got, []byte("payload")) {
		t.Fatalf("expected flipped payload to decode as-is")
	}
}

func TestZeroCopyPayload(t *testing.T) {
	enc := Encode([]byte("Z"), false)
	p := mustDecode(t, enc)
	p[0] = 'Q'
	p2 := mustDecode(t, enc)
	if p2[0] != 'Q' {
		t.Fatalf("expected zero-copy slice into enc buffer")
	}
}
