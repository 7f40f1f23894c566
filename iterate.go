package csvframe

import (
	"fmt"
	"iter"
)

// maskedSeq returns a lazy, restartable sequence over items that yields
// only the positions included in the mask, in order, together with their
// original index. It fails when the container and mask lengths differ.
// The same helper traverses rows over a table and cells within a row.
func maskedSeq[S ~[]E, E any](items S, m *bitmask) (iter.Seq2[int, E], error) {
	if len(items) != m.len() {
		return nil, fmt.Errorf("%w: container length %d, mask length %d", ErrSizeMismatch, len(items), m.len())
	}
	return func(yield func(int, E) bool) {
		for i := range m.indices() {
			if !yield(i, items[i]) {
				return
			}
		}
	}, nil
}
