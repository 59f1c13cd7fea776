package dataset

import (
	"fmt"
	"math/rand/v2"
)

// Shuffle reorders the instances with one uniformly random permutation
// applied to every column, and returns the receiver.
func (d *Dataset) Shuffle() *Dataset {
	d.reindex(rand.Perm(d.Len()))
	return d
}

// ShuffleWith is like Shuffle but draws the permutation from r.
func (d *Dataset) ShuffleWith(r *rand.Rand) *Dataset {
	d.reindex(r.Perm(d.Len()))
	return d
}

// Permute reorders the instances so that new position j holds what was at
// perm[j]. perm must be a permutation of 0..Len()-1.
func (d *Dataset) Permute(perm []int) error {
	n := d.Len()
	if len(perm) != n {
		return &Error{
			Code:    CodeInvalidPermutation,
			Message: fmt.Sprintf("permutation has %d entries for length %d", len(perm), n),
			Params:  map[string]any{"size": len(perm), "length": n},
		}
	}
	seen := make([]bool, n)
	for j, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return &Error{
				Code:    CodeInvalidPermutation,
				Message: fmt.Sprintf("entry %d (%d) is out of range or repeated", j, p),
				Params:  map[string]any{"position": j, "index": p},
			}
		}
		seen[p] = true
	}
	d.reindex(perm)
	return nil
}

func (d *Dataset) reindex(order []int) {
	for _, name := range d.names {
		col := d.cols[name]
		reindexed := make([]any, len(order))
		for j, i := range order {
			reindexed[j] = col[i]
		}
		d.cols[name] = reindexed
	}
}
