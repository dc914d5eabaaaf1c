package engine

import "ringron/internal/method"

// assembler accumulates the lead rows of one extent.
type assembler struct {
	tables method.Tables
	bells  int
	budget int
	cover  bool
	rows   []Row
}

func (a *assembler) apply(work method.Track) {
	a.rows = apply(a.rows, a.bells, work, a.budget, a.cover)
}

func (a *assembler) full() bool { return len(a.rows) >= a.budget }

// addLeadStart applies the start variant chosen by the type of the
// previous lead. Most methods define none.
func (a *assembler) addLeadStart(prev method.LeadType) {
	a.apply(a.tables.Start(prev))
}

// addLead applies the tracks and then the lead-end table of lt. A bob or
// single is called on the last row before its lead end. Once the budget is
// full a lead adds nothing, not even its call.
func (a *assembler) addLead(lt method.LeadType) {
	if a.full() {
		return
	}
	a.apply(a.tables.Tracks)
	a.markLast(lt)
	a.apply(a.tables.End(lt))
}

func (a *assembler) markLast(lt method.LeadType) {
	if len(a.rows) == 0 {
		return
	}
	last := &a.rows[len(a.rows)-1]
	switch lt {
	case method.Bob:
		last.Bob = true
	case method.Single:
		last.Single = true
	}
}
