// Package method holds the static permutation tables of one ringing method
// and the extents (compositions) defined for it. A Method is immutable once
// loaded; every accessor hands out copies.
package method

import (
	"fmt"
	"sort"
)

// Section names of a method definition.
const (
	SectionInfo        = "INFO"
	SectionTracks      = "TRACKS"
	SectionPlainStart  = "PLAIN_START"
	SectionPlain       = "PLAIN"
	SectionBobStart    = "BOB_START"
	SectionBob         = "BOB"
	SectionSingleStart = "SINGLE_START"
	SectionSingle      = "SINGLE"

	extentPrefix = "EXTENT-"
)

// ExtentSection returns the section name for extent id.
func ExtentSection(id int) string { return fmt.Sprintf("%s%d", extentPrefix, id) }

// Track maps a 0-based place to the 0-based places the bell found there
// visits on the following rows, one entry per row.
type Track map[int][]int

// Rows is the length of the longest destination list.
func (t Track) Rows() int {
	n := 0
	for _, dst := range t {
		if len(dst) > n {
			n = len(dst)
		}
	}
	return n
}

// Clone returns a deep copy of t.
func (t Track) Clone() Track {
	out := make(Track, len(t))
	for p, dst := range t {
		out[p] = append([]int(nil), dst...)
	}
	return out
}

// Places returns the places with an entry, ascending.
func (t Track) Places() []int {
	out := make([]int, 0, len(t))
	for p := range t {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// Tables groups the track maps of a method. Only Tracks is required; an
// empty optional table applies nothing.
type Tables struct {
	Tracks      Track
	PlainStart  Track
	Plain       Track
	BobStart    Track
	Bob         Track
	SingleStart Track
	Single      Track
}

// Start returns the lead-start table used after a lead of type prev.
func (t Tables) Start(prev LeadType) Track {
	switch prev {
	case Bob:
		return t.BobStart
	case Single:
		return t.SingleStart
	default:
		return t.PlainStart
	}
}

// End returns the lead-end table for a lead of type lt.
func (t Tables) End(lt LeadType) Track {
	switch lt {
	case Bob:
		return t.Bob
	case Single:
		return t.Single
	default:
		return t.Plain
	}
}

func (t Tables) clone() Tables {
	return Tables{
		Tracks:      t.Tracks.Clone(),
		PlainStart:  t.PlainStart.Clone(),
		Plain:       t.Plain.Clone(),
		BobStart:    t.BobStart.Clone(),
		Bob:         t.Bob.Clone(),
		SingleStart: t.SingleStart.Clone(),
		Single:      t.Single.Clone(),
	}
}

func (t Tables) sections() []struct {
	name  string
	track Track
} {
	return []struct {
		name  string
		track Track
	}{
		{SectionTracks, t.Tracks},
		{SectionPlainStart, t.PlainStart},
		{SectionPlain, t.Plain},
		{SectionBobStart, t.BobStart},
		{SectionBob, t.Bob},
		{SectionSingleStart, t.SingleStart},
		{SectionSingle, t.Single},
	}
}

// Info is the INFO section.
type Info struct {
	Name      string
	Bells     int
	Coverable bool
}

// ExtentInfo is one EXTENT-<id> section.
type ExtentInfo struct {
	Name       string
	Length     int
	Definition string
	Mutable    bool
}

// Method is a validated method definition.
type Method struct {
	source  string
	info    Info
	tables  Tables
	extents []ExtentInfo
}

// New validates and assembles a method. Extent ids are positions in extents
// starting at 1. Failures are reported as *ParseError against source.
func New(source string, info Info, tables Tables, extents []ExtentInfo) (*Method, error) {
	if info.Name == "" {
		return nil, &ParseError{Source: source, Section: SectionInfo, Key: "name", Err: ErrMissingKey}
	}
	if info.Bells <= 0 {
		return nil, &ParseError{Source: source, Section: SectionInfo, Key: "bells", Err: ErrBadNumber}
	}
	if len(tables.Tracks) == 0 {
		return nil, &ParseError{Source: source, Section: SectionTracks, Err: ErrMissingSection}
	}
	for p := 0; p < info.Bells; p++ {
		if len(tables.Tracks[p]) == 0 {
			return nil, &ParseError{Source: source, Section: SectionTracks, Key: fmt.Sprint(p + 1), Err: ErrMissingKey}
		}
	}
	for _, s := range tables.sections() {
		for _, p := range s.track.Places() {
			if p < 0 || p >= info.Bells {
				return nil, &ParseError{Source: source, Section: s.name, Key: fmt.Sprint(p + 1), Err: ErrBadPlace}
			}
			for _, d := range s.track[p] {
				if d < 0 || d >= info.Bells {
					return nil, &ParseError{Source: source, Section: s.name, Key: fmt.Sprint(p + 1),
						Err: fmt.Errorf("%w: destination %d", ErrBadPlace, d+1)}
				}
			}
		}
	}
	for i, x := range extents {
		sec := ExtentSection(i + 1)
		if x.Name == "" {
			return nil, &ParseError{Source: source, Section: sec, Key: "NAME", Err: ErrMissingKey}
		}
		if x.Length <= 0 {
			return nil, &ParseError{Source: source, Section: sec, Key: "LENGTH", Err: ErrBadNumber}
		}
		leads, err := ParseLeads(x.Definition)
		if err != nil {
			return nil, &ParseError{Source: source, Section: sec, Key: "DEFINITION", Err: err}
		}
		if len(leads) == 0 {
			return nil, &ParseError{Source: source, Section: sec, Key: "DEFINITION",
				Err: fmt.Errorf("%w: no leads", ErrBadDefinition)}
		}
	}

	m := &Method{
		source:  source,
		info:    info,
		tables:  tables.clone(),
		extents: append([]ExtentInfo(nil), extents...),
	}
	return m, nil
}

func (m *Method) String() string { return m.info.Name }

// Name is the method name from INFO.
func (m *Method) Name() string { return m.info.Name }

// Source names the file or reader the method was loaded from.
func (m *Method) Source() string { return m.source }

// NumberOfBells excludes any cover bell.
func (m *Method) NumberOfBells() int { return m.info.Bells }

// Coverable reports whether a cover bell may be added.
func (m *Method) Coverable() bool { return m.info.Coverable }

// Tables returns a copy of the track maps.
func (m *Method) Tables() Tables { return m.tables.clone() }

// ExtentIDs lists the defined extent ids in order.
func (m *Method) ExtentIDs() []int {
	ids := make([]int, len(m.extents))
	for i := range m.extents {
		ids[i] = i + 1
	}
	return ids
}

// ExtentExists reports whether EXTENT-<id> is defined.
func (m *Method) ExtentExists(id int) bool { return id >= 1 && id <= len(m.extents) }

// Extent returns the definition of extent id.
func (m *Method) Extent(id int) (ExtentInfo, bool) {
	if !m.ExtentExists(id) {
		return ExtentInfo{}, false
	}
	return m.extents[id-1], true
}

// ExtentName returns "" for an unknown id; likewise for the other
// per-extent accessors.
func (m *Method) ExtentName(id int) string {
	x, _ := m.Extent(id)
	return x.Name
}

func (m *Method) ExtentLength(id int) int {
	x, _ := m.Extent(id)
	return x.Length
}

func (m *Method) ExtentDefinition(id int) string {
	x, _ := m.Extent(id)
	return x.Definition
}

func (m *Method) ExtentMutable(id int) bool {
	x, _ := m.Extent(id)
	return x.Mutable
}

// ExtentSize is the number of strikes (rows times bells) of an extent rung
// with the given intro and course counts: every course, the intro rounds and
// the two closing rounds.
func (m *Method) ExtentSize(id int, cover bool, intros, courses int) int {
	bells := m.info.Bells
	if m.info.Coverable && cover {
		bells++
	}
	size := m.ExtentLength(id) * bells * courses
	size += intros * bells * 2
	size += bells * 2
	return size
}
