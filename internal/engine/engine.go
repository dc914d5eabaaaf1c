package engine

import (
	"fmt"
	"math/rand/v2"

	"ringron/internal/method"
)

// Options are the per-request ringing choices.
type Options struct {
	Cover   bool // add a cover bell; ignored unless the method is coverable
	Intros  int  // rounds before "Go"
	Courses int  // repetitions of the extent definition
}

// DefaultOptions rings one course after one round of rounds, uncovered.
func DefaultOptions() Options { return Options{Intros: 1, Courses: 1} }

// Config is unchanged for the life of an Engine.
type Config struct {
	// Shuffler varies mutable extents. Nil means a randomly seeded one.
	Shuffler *Shuffler
}

type Engine struct{ shuffler *Shuffler }

func New(c Config) *Engine {
	s := c.Shuffler
	if s == nil {
		s = NewShuffler(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	}
	return &Engine{shuffler: s}
}

/* -------------------------------------------------------------------------- */
/*                                   Build                                    */
/* -------------------------------------------------------------------------- */

// Build expands extent id of m. On error no Extent is returned.
func (e *Engine) Build(m *method.Method, id int, opt Options) (*Extent, error) {
	info, ok := m.Extent(id)
	switch {
	case !ok:
		return nil, &PreconditionError{Method: m.Name(), ExtentID: id, Err: ErrUnknownExtent}
	case m.NumberOfBells() <= 0:
		return nil, &PreconditionError{Method: m.Name(), ExtentID: id, Err: ErrNoBells}
	case opt.Intros < 0:
		return nil, &PreconditionError{Method: m.Name(), ExtentID: id, Err: ErrBadIntros}
	case opt.Courses < 1:
		return nil, &PreconditionError{Method: m.Name(), ExtentID: id, Err: ErrBadCourses}
	}

	def := info.Definition
	if info.Mutable {
		def = e.shuffler.Shuffle(def)
	}
	leads, err := method.ParseLeads(def)
	if err != nil {
		return nil, fmt.Errorf("%s extent %d: %w", m.Name(), id, err)
	}

	cover := opt.Cover && m.Coverable()
	width := m.NumberOfBells()
	if cover {
		width++
	}

	a := &assembler{
		tables: m.Tables(),
		bells:  m.NumberOfBells(),
		budget: info.Length * opt.Courses,
		cover:  cover,
	}
	// A plain "previous lead" forces a plain start on the first lead.
	last := method.Plain
	for c := 0; c < opt.Courses; c++ {
		for _, lt := range leads {
			a.addLeadStart(last)
			a.addLead(lt)
			last = lt
		}
	}

	rows := make([]Row, 0, 2*opt.Intros+len(a.rows)+3)
	for i := 0; i < opt.Intros; i++ {
		rows = appendRound(rows, width)
	}
	if opt.Intros > 0 {
		// Backstroke of the last intro round.
		rows[2*opt.Intros-1].Go = true
	}
	rows = append(rows, a.rows...)

	if n := len(rows); n >= 2 {
		rows[n-2].ThatsAll = true
	} else if n == 1 {
		rows[0].ThatsAll = true
	}

	// Finish on a backstroke so the closing rounds start at handstroke.
	if len(rows)%2 != 0 {
		rows = append(rows, roundsRow(width))
	}
	rows = appendRound(rows, width)
	rows[len(rows)-2].Stand = true

	if err := validate(rows, width); err != nil {
		return nil, fmt.Errorf("%s extent %d: %w", m.Name(), id, err)
	}

	return &Extent{
		method:     m.Name(),
		name:       info.Name,
		length:     info.Length,
		bells:      width,
		cover:      cover,
		definition: def,
		rows:       rows,
	}, nil
}

// appendRound adds a handstroke and a backstroke of rounds.
func appendRound(rows []Row, width int) []Row {
	return append(rows, roundsRow(width), roundsRow(width))
}

func validate(rows []Row, width int) error {
	seen := make([]bool, width+1)
	for i, r := range rows {
		if len(r.Places) != width {
			return fmt.Errorf("%w: row %d has %d places, want %d", ErrInvalidRow, i, len(r.Places), width)
		}
		clear(seen)
		for _, b := range r.Places {
			if b < 1 || b > width || seen[b] {
				return fmt.Errorf("%w: row %d %s", ErrInvalidRow, i, r)
			}
			seen[b] = true
		}
	}
	return nil
}
