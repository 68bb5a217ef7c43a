package iter

import (
	"context"

	"github.com/nyxlang/nyxc/internal/optional"
)

// Closer is satisfied by anything holding a resource an Iterator should
// release once a caller is done pulling values from it.
type Closer interface {
	Close(ctx context.Context) error
}

// Iterator yields a sequence of values, one Next call at a time, until it
// reports optional.None.
type Iterator[T any] interface {
	Next(ctx context.Context) optional.Optional[T]
	Closer
}

// Lookahead is an Iterator that additionally supports peeking n values
// ahead of the current position without consuming them.
type Lookahead[T any] interface {
	Iterator[T]
	Lookahead(ctx context.Context, n uint8) optional.Optional[T]
}

// Filter decides whether a value pulled from an Iterator should be kept.
type Filter[T any] interface {
	Keep(ctx context.Context, v T) bool
}

// NewSlice converts a slice of values into an Iterator implementation.
func NewSlice[T any](vs []T) Iterator[T] {
	return &iteratorSlice[T]{slice: vs, offset: -1}
}

type iteratorSlice[T any] struct {
	slice  []T
	offset int
}

func (it *iteratorSlice[T]) Next(ctx context.Context) optional.Optional[T] {
	it.offset = it.offset + 1
	if it.offset >= len(it.slice) {
		return optional.None[T]()
	}
	return optional.Some(it.slice[it.offset])
}

func (it *iteratorSlice[T]) Close(ctx context.Context) error {
	return nil
}

// NewIteratorFilter wraps an iterator with a filter so that only values that
// pass the filter are returned.
func NewIteratorFilter[T any](it Iterator[T], f Filter[T]) Iterator[T] {
	return &iteratorFilter[T]{
		iter:   it,
		filter: f,
	}
}

type iteratorFilter[T any] struct {
	iter   Iterator[T]
	filter Filter[T]
}

func (it *iteratorFilter[T]) Next(ctx context.Context) optional.Optional[T] {
	for {
		v := it.iter.Next(ctx)
		if !v.IsPresent() {
			return v
		}
		if it.filter.Keep(ctx, v.Value()) {
			return v
		}
	}
}

func (it *iteratorFilter[T]) Close(ctx context.Context) error {
	return it.iter.Close(ctx)
}

// NewLookahead wraps an iterator in a Lookahead implementation to enable
// peeking at the next n values.
func NewLookahead[T any](it Iterator[T], n uint8) Lookahead[T] {
	return &lookahead[T]{
		iter: it,
		n:    n,
	}
}

type lookahead[T any] struct {
	iter  Iterator[T]
	n     uint8
	peeks []optional.Optional[T]
}

func (look *lookahead[T]) init(ctx context.Context) {
	if look.peeks == nil {
		look.peeks = make([]optional.Optional[T], look.n+1)
		for x := 0; x <= int(look.n); x = x + 1 {
			look.peeks[x] = look.iter.Next(ctx)
		}
	}
}

func (look *lookahead[T]) Next(ctx context.Context) optional.Optional[T] {
	if look.peeks == nil {
		look.init(ctx)
		return look.peeks[0]
	}
	copy(look.peeks, look.peeks[1:])
	look.peeks[len(look.peeks)-1] = look.iter.Next(ctx)
	return look.peeks[0]
}

func (look *lookahead[T]) Close(ctx context.Context) error {
	return look.iter.Close(ctx)
}

func (look *lookahead[T]) Lookahead(ctx context.Context, n uint8) optional.Optional[T] {
	if look.peeks == nil {
		look.init(ctx)
	}
	if n > look.n {
		return optional.None[T]()
	}
	return look.peeks[n]
}

// FilterFunc is an adaptor for simple filter functions that makes them
// compatible with the Filter interface. Use like:
//
//	FilterFunc[T](func(ctx context.Context, val T) bool { return true })
//
// Note that this type should never be referenced directly in any signature.
// Always use Filter as an input or output type.
type FilterFunc[T any] func(ctx context.Context, val T) bool

func (f FilterFunc[T]) Keep(ctx context.Context, val T) bool {
	return f(ctx, val)
}

// NewReader converts a byte source into an Iterator[byte], reading one byte
// at a time. The scanner wraps this in a Lookahead so it can peek ahead
// without a bespoke two-character pushback buffer.
func NewReader(r Reader) Iterator[byte] {
	return &readerIterator{r: r}
}

// Reader is the minimal byte source the scanner needs; a plain io.Reader
// satisfies it.
type Reader interface {
	Read(p []byte) (int, error)
}

type readerIterator struct {
	r   Reader
	buf [1]byte
}

func (it *readerIterator) Next(ctx context.Context) optional.Optional[byte] {
	n, err := it.r.Read(it.buf[:])
	if n == 0 || err != nil {
		return optional.None[byte]()
	}
	return optional.Some(it.buf[0])
}

func (it *readerIterator) Close(ctx context.Context) error {
	if c, ok := it.r.(Closer); ok {
		return c.Close(ctx)
	}
	return nil
}
