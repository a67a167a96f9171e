package binwire

// cursor tracks a decode position inside one Run. It only ever moves forward:
// a step advances it by exactly the bytes it consumed on success and leaves it
// untouched on failure.
type cursor struct {
	buf []byte
	off int
}

// Get is one composable decode step: given the remaining input it yields a
// value of type A and advances the cursor, or fails. Steps are pure
// descriptions - building a Get consumes nothing; only Run does.
//
// Decoding is strict left-to-right with no backtracking: once a step fails the
// whole Run fails at that offset.
type Get[A any] struct {
	step func(c *cursor) (A, error)
}

// ByReadingBytes is the byte-touching primitive every other Get is built from.
// It reads exactly n bytes at the cursor and hands them (in input order) to
// decode. Fails with ErrUnexpectedEOF if fewer than n bytes remain, or with
// decode's error if the bytes do not form a valid A. The cursor is unchanged
// on any failure.
//
// The slice passed to decode aliases the input; decode must not retain it.
func ByReadingBytes[A any](n int, decode func(b []byte) (A, error)) Get[A] {
	if n < 0 {
		panic("binwire: negative read size")
	}
	return Get[A]{step: func(c *cursor) (A, error) {
		var zero A
		if len(c.buf)-c.off < n {
			return zero, failAt(c.off, ErrUnexpectedEOF)
		}
		v, err := decode(c.buf[c.off : c.off+n])
		if err != nil {
			return zero, failAt(c.off, err)
		}
		c.off += n
		return v, nil
	}}
}

// Pure yields v without consuming input. It is the unit for FlatMap and is
// handy as the terminal step of a chain.
func Pure[A any](v A) Get[A] {
	return Get[A]{step: func(*cursor) (A, error) { return v, nil }}
}

// failWith is a step that consumes nothing and fails at the current offset.
func failWith[A any](err error) Get[A] {
	return Get[A]{step: func(c *cursor) (A, error) {
		var zero A
		return zero, failAt(c.off, err)
	}}
}

// Map applies a pure function to g's result. Consumes exactly what g consumes
// and introduces no new failure mode.
func Map[A, B any](g Get[A], f func(A) B) Get[B] {
	return Get[B]{step: func(c *cursor) (B, error) {
		a, err := g.step(c)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}}
}

// FlatMap runs g, then feeds its result to f to pick the next step, carrying
// the cursor through in sequence. This is what lets a decoded length drive how
// many bytes the following step reads. If g fails, f is never called and the
// failure propagates unchanged.
func FlatMap[A, B any](g Get[A], f func(A) Get[B]) Get[B] {
	return Get[B]{step: func(c *cursor) (B, error) {
		a, err := g.step(c)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a).step(c)
	}}
}

// Run decodes from the start of input. It returns the value and the number of
// bytes consumed; trailing bytes are not an error - rejecting them is the
// caller's policy. On failure the error is a *DecodeError positioned at the
// offset of the failing step.
func (g Get[A]) Run(input []byte) (A, int, error) {
	c := cursor{buf: input}
	v, err := g.step(&c)
	if err != nil {
		var zero A
		return zero, c.off, err
	}
	return v, c.off, nil
}
