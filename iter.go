package dataset

import "iter"

// All yields each position and its instance in index order. Every pass reads
// the dataset's current state.
func (d *Dataset) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i := 0; i < d.Len(); i++ {
			if !yield(i, d.row(i)) {
				return
			}
		}
	}
}

// Rows yields each instance in index order.
func (d *Dataset) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, r := range d.All() {
			if !yield(r) {
				return
			}
		}
	}
}

// Batches yields consecutive runs of at most size instances as column slices,
// keyed by the position of their first instance. A size below 1 yields
// nothing.
func (d *Dataset) Batches(size int) iter.Seq2[int, Columns] {
	return func(yield func(int, Columns) bool) {
		if size < 1 {
			return
		}
		for start := 0; start < d.Len(); start += size {
			b, err := d.GetSlice(Range(start, start+size))
			if err != nil {
				return
			}
			if !yield(start, b) {
				return
			}
		}
	}
}
