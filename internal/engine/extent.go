package engine

// Extent is a finished composition. It is read-only: accessors return
// copies of the rows.
type Extent struct {
	method     string
	name       string
	length     int
	bells      int
	cover      bool
	definition string
	rows       []Row
}

// Method is the name of the method the extent was built from.
func (x *Extent) Method() string { return x.method }

// Name is the extent name.
func (x *Extent) Name() string { return x.name }

// Length is the nominal number of lead rows per course.
func (x *Extent) Length() int { return x.length }

// NumberOfBells includes the cover bell when there is one.
func (x *Extent) NumberOfBells() int { return x.bells }

func (x *Extent) Cover() bool { return x.cover }

// Definition is the lead sequence actually rung, after any shuffling.
func (x *Extent) Definition() string { return x.definition }

// Len is the number of rows.
func (x *Extent) Len() int { return len(x.rows) }

// Row returns a copy of row i.
func (x *Extent) Row(i int) Row { return x.rows[i].clone() }

// Rows returns a copy of every row.
func (x *Extent) Rows() []Row {
	out := make([]Row, len(x.rows))
	for i, r := range x.rows {
		out[i] = r.clone()
	}
	return out
}

// Size is the number of strikes: rows times bells.
func (x *Extent) Size() int { return len(x.rows) * x.bells }

// Each calls fn for every row in order until fn returns false. The row
// passed to fn is a copy.
func (x *Extent) Each(fn func(i int, r Row) bool) {
	for i, r := range x.rows {
		if !fn(i, r.clone()) {
			return
		}
	}
}
