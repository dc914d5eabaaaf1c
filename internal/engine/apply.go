package engine

import "ringron/internal/method"

// apply grows rows by one application of work and returns the extended
// slice.
//
// work.Rows() new rows are appended, never taking the total past budget.
// With cover set the last place of each new row holds the cover bell. The
// bell at place p of the last existing row (bell p+1 when rows is empty)
// is then written to work[p][i] on the i-th new row. A place without an
// entry keeps its bell, and a short list leaves its bell on the last place
// it named, so every new row is fully assigned unless two bells clash. An
// empty work is a no-op.
func apply(rows []Row, bells int, work method.Track, budget int, cover bool) []Row {
	if len(work) == 0 {
		return rows
	}
	width := bells
	if cover {
		width++
	}

	prev := len(rows) - 1
	n := work.Rows()
	for i := 0; i < n && len(rows) < budget; i++ {
		r := newRow(width)
		if cover {
			r.Places[width-1] = width
		}
		rows = append(rows, r)
	}

	// Held bells are written first so that a bell moved onto a held
	// place wins; validation rejects the clash later.
	for _, moving := range []bool{false, true} {
		for p := 0; p < bells; p++ {
			dst, ok := work[p]
			if ok != moving {
				continue
			}
			bell := p + 1
			if prev >= 0 {
				bell = rows[prev].Places[p]
			}
			place := p
			for curr := prev + 1; curr < len(rows); curr++ {
				if i := curr - prev - 1; i < len(dst) {
					place = dst[i]
				}
				rows[curr].Places[place] = bell
			}
		}
	}
	return rows
}
