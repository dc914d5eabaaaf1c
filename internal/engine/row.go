package engine

import (
	"strconv"
	"strings"
)

// Unassigned marks a place no bell has been written to yet.
const Unassigned = 0

// Call is an instruction announced by the conductor.
type Call string

const (
	CallGo       Call = "Go"
	CallBob      Call = "Bob"
	CallSingle   Call = "Single"
	CallThatsAll Call = "That's all"
	CallStand    Call = "Stand next"
)

// Row assigns a bell (1-based) to every place (0-based) for one stroke.
type Row struct {
	Places []int

	Go       bool
	Bob      bool
	Single   bool
	ThatsAll bool
	Stand    bool
}

func newRow(width int) Row { return Row{Places: make([]int, width)} }

func roundsRow(width int) Row {
	r := newRow(width)
	for p := range r.Places {
		r.Places[p] = p + 1
	}
	return r
}

func (r Row) clone() Row {
	r.Places = append([]int(nil), r.Places...)
	return r
}

// Calls lists the calls on r in announcement order.
func (r Row) Calls() []Call {
	var out []Call
	if r.Go {
		out = append(out, CallGo)
	}
	if r.Bob {
		out = append(out, CallBob)
	}
	if r.Single {
		out = append(out, CallSingle)
	}
	if r.ThatsAll {
		out = append(out, CallThatsAll)
	}
	if r.Stand {
		out = append(out, CallStand)
	}
	return out
}

// IsRounds reports whether every bell is in its home place.
func (r Row) IsRounds() bool {
	for p, b := range r.Places {
		if b != p+1 {
			return false
		}
	}
	return true
}

const bellSymbols = "1234567890ETABCD"

// BellSymbol is the conventional single-character name of bell b, or its
// number when there is none.
func BellSymbol(b int) string {
	if b >= 1 && b <= len(bellSymbols) {
		return bellSymbols[b-1 : b]
	}
	if b == Unassigned {
		return "."
	}
	return strconv.Itoa(b)
}

// String renders r compactly ("13245"); rows wider than sixteen bells are
// space separated.
func (r Row) String() string {
	var b strings.Builder
	wide := len(r.Places) > len(bellSymbols)
	for i, bell := range r.Places {
		if wide && i > 0 {
			b.WriteByte(' ')
		}
		if wide {
			b.WriteString(strconv.Itoa(bell))
		} else {
			b.WriteString(BellSymbol(bell))
		}
	}
	return b.String()
}

// Stroke alternates hand, back, hand... from the first row of an extent.
type Stroke int

const (
	Handstroke Stroke = iota
	Backstroke
)

// StrokeAt is the stroke of row i.
func StrokeAt(i int) Stroke { return Stroke(i % 2) }

func (s Stroke) String() string {
	if s == Backstroke {
		return "back"
	}
	return "hand"
}
