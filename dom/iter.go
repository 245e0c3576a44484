package dom

// Iterator is a single-pass pull iterator. Next returns the next item, or
// ok == false once the sequence is exhausted; an exhausted iterator stays
// exhausted no matter how often Next is called again.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Fallible is an iterator that can also explain an empty result: NotFound
// manufactures the error the iterator would report if it had to fail at
// its current position.
type Fallible[T any] interface {
	Iterator[T]
	NotFound() error
}

// TryNext returns the iterator's next item or, when the iterator is
// exhausted, the iterator's own contextual not-found error instead of a
// bare end-of-sequence signal. Exhaustion during plain iteration is not an
// error; only this bridge converts it into one, on demand.
func TryNext[T any](it Fallible[T]) (T, error) {
	if v, ok := it.Next(); ok {
		return v, nil
	}
	var zero T
	return zero, it.NotFound()
}
