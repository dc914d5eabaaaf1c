package method

import (
	"fmt"
	"unicode"
)

// LeadType selects which lead-end tables a lead uses.
type LeadType int

const (
	Plain LeadType = iota
	Bob
	Single
)

func (t LeadType) String() string {
	switch t {
	case Plain:
		return "plain"
	case Bob:
		return "bob"
	case Single:
		return "single"
	default:
		return fmt.Sprintf("LeadType(%d)", int(t))
	}
}

// ParseLeads resolves a definition string into lead types. Run separators
// ('-') and whitespace are formatting and are dropped.
func ParseLeads(def string) ([]LeadType, error) {
	leads := make([]LeadType, 0, len(def))
	for i, r := range def {
		switch {
		case r == 'p' || r == 'P':
			leads = append(leads, Plain)
		case r == 'b' || r == 'B':
			leads = append(leads, Bob)
		case r == 's' || r == 'S':
			leads = append(leads, Single)
		case r == '-' || unicode.IsSpace(r):
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrUnknownLead, r, i)
		}
	}
	return leads, nil
}
