package binwire

// Put is an immutable, append-only builder of a byte sequence. A Put knows how
// many bytes it will emit and how to fill them; nothing is materialized until
// Bytes or AppendTo. Concat never mutates either operand.
//
// The zero value is an empty Put and is ready to use.
type Put struct {
	size int
	fill func(b []byte)
}

// ByWritingBytes constructs a Put of exactly n bytes. fill is handed a
// zero-initialized buffer of length n and must fill it completely; bytes it
// leaves untouched stay zero. Panics if n is negative.
func ByWritingBytes(n int, fill func(b []byte)) Put {
	if n < 0 {
		panic("binwire: negative Put size")
	}
	return Put{size: n, fill: fill}
}

// Concat returns a Put emitting p's bytes immediately followed by q's.
// Associative: (a.Concat(b)).Concat(c) and a.Concat(b.Concat(c)) are
// byte-identical.
func (p Put) Concat(q Put) Put {
	if p.size == 0 {
		return q
	}
	if q.size == 0 {
		return p
	}
	return Put{
		size: p.size + q.size,
		fill: func(b []byte) {
			p.fill(b[:p.size])
			q.fill(b[p.size:])
		},
	}
}

// Size reports the exact number of bytes this Put emits.
func (p Put) Size() int { return p.size }

// Bytes materializes the sequence into a fresh buffer.
func (p Put) Bytes() []byte {
	return p.AppendTo(nil)
}

// AppendTo materializes the sequence onto dst and returns the extended slice.
func (p Put) AppendTo(dst []byte) []byte {
	if p.size == 0 {
		return dst
	}
	off := len(dst)
	dst = append(dst, make([]byte, p.size)...)
	p.fill(dst[off:])
	return dst
}
