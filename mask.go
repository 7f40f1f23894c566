package csvframe

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// bitmask is a fixed-length inclusion mask backed by a roaring bitmap.
// Position i is included when bit i is set. A bitmask is treated as
// immutable once its owning DataFrame is constructed; transforms clone
// it first.
type bitmask struct {
	bits *roaring.Bitmap
	size int
}

// newBitmask creates a mask of the given length, either all-included or
// all-excluded.
func newBitmask(size int, full bool) *bitmask {
	rb := roaring.New()
	if full && size > 0 {
		rb.AddRange(0, uint64(size))
	}
	return &bitmask{bits: rb, size: size}
}

// len returns the mask length, which equals the underlying container length.
func (m *bitmask) len() int {
	return m.size
}

// count returns the number of included positions.
func (m *bitmask) count() int {
	return int(m.bits.GetCardinality())
}

// test reports whether position i is included.
func (m *bitmask) test(i int) bool {
	return i >= 0 && i < m.size && m.bits.Contains(uint32(i))
}

// set marks position i as included.
func (m *bitmask) set(i int) {
	m.bits.Add(uint32(i))
}

// unset marks position i as excluded.
func (m *bitmask) unset(i int) {
	m.bits.Remove(uint32(i))
}

// clone returns a deep copy of the mask.
func (m *bitmask) clone() *bitmask {
	return &bitmask{bits: m.bits.Clone(), size: m.size}
}

// equal reports whether both masks have the same length and the same
// included positions.
func (m *bitmask) equal(other *bitmask) bool {
	return m.size == other.size && m.bits.Equals(other.bits)
}

// and returns the element-wise conjunction of two same-length masks.
func (m *bitmask) and(other *bitmask) (*bitmask, error) {
	if m.size != other.size {
		return nil, fmt.Errorf("%w: %d vs %d", ErrSizeMismatch, m.size, other.size)
	}
	bits := m.bits.Clone()
	bits.And(other.bits)
	return &bitmask{bits: bits, size: m.size}, nil
}

// or returns the element-wise disjunction of two same-length masks.
func (m *bitmask) or(other *bitmask) (*bitmask, error) {
	if m.size != other.size {
		return nil, fmt.Errorf("%w: %d vs %d", ErrSizeMismatch, m.size, other.size)
	}
	bits := m.bits.Clone()
	bits.Or(other.bits)
	return &bitmask{bits: bits, size: m.size}, nil
}

// indices returns the included positions in ascending order.
func (m *bitmask) indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := m.bits.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
