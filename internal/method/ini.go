package method

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// iniEntry is one key of an INI section with the line it started on.
type iniEntry struct {
	value string
	line  int
}

type iniSection struct {
	name string
	line int
	keys map[string]iniEntry
}

// iniDoc is the raw form of a .mcf file. Keys and section names are case
// sensitive; '#' and ';' start full-line comments; indented lines continue
// the previous value.
type iniDoc struct {
	source   string
	sections map[string]*iniSection
	order    []string
}

func parseINI(source string, r io.Reader) (*iniDoc, error) {
	doc := &iniDoc{source: source, sections: map[string]*iniSection{}}
	var (
		cur     *iniSection
		lastKey string
	)
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		raw := strings.TrimRight(sc.Text(), "\r")
		line := strings.TrimSpace(raw)
		if line == "" {
			lastKey = ""
			continue
		}
		if line[0] == '#' || line[0] == ';' {
			continue
		}
		if raw[0] == ' ' || raw[0] == '\t' {
			if cur == nil || lastKey == "" {
				return nil, &ParseError{Source: source, Line: ln, Err: fmt.Errorf("%w: unexpected indentation", ErrSyntax)}
			}
			e := cur.keys[lastKey]
			e.value += " " + line
			cur.keys[lastKey] = e
			continue
		}
		if line[0] == '[' {
			if !strings.HasSuffix(line, "]") {
				return nil, &ParseError{Source: source, Line: ln, Err: fmt.Errorf("%w: unterminated section header", ErrSyntax)}
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			if _, dup := doc.sections[name]; dup {
				return nil, &ParseError{Source: source, Line: ln, Section: name, Err: ErrDuplicate}
			}
			cur = &iniSection{name: name, line: ln, keys: map[string]iniEntry{}}
			doc.sections[name] = cur
			doc.order = append(doc.order, name)
			lastKey = ""
			continue
		}
		if cur == nil {
			return nil, &ParseError{Source: source, Line: ln, Err: fmt.Errorf("%w: key outside a section", ErrSyntax)}
		}
		i := strings.IndexAny(line, "=:")
		if i <= 0 {
			return nil, &ParseError{Source: source, Line: ln, Section: cur.name, Err: fmt.Errorf("%w: expected key = value", ErrSyntax)}
		}
		key := strings.TrimSpace(line[:i])
		if _, dup := cur.keys[key]; dup {
			return nil, &ParseError{Source: source, Line: ln, Section: cur.name, Key: key, Err: ErrDuplicate}
		}
		cur.keys[key] = iniEntry{value: strings.TrimSpace(line[i+1:]), line: ln}
		lastKey = key
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return doc, nil
}

func (d *iniDoc) has(section string) bool {
	_, ok := d.sections[section]
	return ok
}

func (d *iniDoc) errAt(section, key string, err error) *ParseError {
	pe := &ParseError{Source: d.source, Section: section, Key: key, Err: err}
	if s, ok := d.sections[section]; ok {
		pe.Line = s.line
		if e, ok := s.keys[key]; ok {
			pe.Line = e.line
		}
	}
	return pe
}

func (d *iniDoc) str(section, key string) (string, error) {
	s, ok := d.sections[section]
	if !ok {
		return "", d.errAt(section, "", ErrMissingSection)
	}
	e, ok := s.keys[key]
	if !ok || e.value == "" {
		return "", d.errAt(section, key, ErrMissingKey)
	}
	return e.value, nil
}

func (d *iniDoc) positive(section, key string) (int, error) {
	v, err := d.str(section, key)
	if err != nil {
		return 0, err
	}
	n, ok := atoiPositive(v)
	if !ok {
		return 0, d.errAt(section, key, fmt.Errorf("%w: %q", ErrBadNumber, v))
	}
	return n, nil
}

func (d *iniDoc) boolean(section, key string, fallback bool) (bool, error) {
	s, ok := d.sections[section]
	if !ok {
		return fallback, nil
	}
	e, ok := s.keys[key]
	if !ok {
		return fallback, nil
	}
	switch strings.ToLower(e.value) {
	case "1", "yes", "true", "on":
		return true, nil
	case "0", "no", "false", "off":
		return false, nil
	}
	return false, d.errAt(section, key, fmt.Errorf("%w: %q", ErrBadBool, e.value))
}

// track reads a table section. A missing section yields an empty Track.
func (d *iniDoc) track(section string) (Track, error) {
	t := Track{}
	s, ok := d.sections[section]
	if !ok {
		return t, nil
	}
	for key, e := range s.keys {
		place, ok := atoiPositive(key)
		if !ok {
			return nil, d.errAt(section, key, fmt.Errorf("%w: %q", ErrBadPlace, key))
		}
		dst, err := parsePlaces(e.value)
		if err != nil {
			return nil, d.errAt(section, key, err)
		}
		t[place-1] = dst
	}
	return t, nil
}
