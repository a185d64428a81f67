package scratch

// Buffer wraps a slice with reuse-friendly semantics.
type Buffer[T any] struct {
	data []T
}

// New returns a zero-filled Buffer of the given length.
func New[T any](length int) *Buffer[T] {
	if length < 0 {
		length = 0
	}
	return &Buffer[T]{data: make([]T, length)}
}

// Slice returns the underlying slice.
func (b *Buffer[T]) Slice() []T {
	return b.data
}

// Len returns the current length.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer[T]) Cap() int {
	return cap(b.data)
}

// Resize sets the length to n, reusing existing capacity when possible.
// The contents after Resize are unspecified; call Zero if they matter.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	if n <= cap(b.data) {
		b.data = b.data[:n]
		return
	}
	b.data = make([]T, n)
}

// Zero sets all values to the zero value of T.
func (b *Buffer[T]) Zero() {
	clear(b.data)
}

// Split cuts the buffer into parts consecutive slices of length n each. Each part has its capacity capped at n.
// The buffer must hold at least parts*n values.
func (b *Buffer[T]) Split(parts, n int) [][]T {
	out := make([][]T, parts)
	for i := range out {
		out[i] = b.data[i*n : (i+1)*n : (i+1)*n]
	}
	return out
}
