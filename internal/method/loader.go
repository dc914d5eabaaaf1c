package method

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Load reads a method definition from path. ".yaml"/".yml" files use the
// YAML layout; anything else is read as an INI (.mcf) file.
func Load(path string) (*Method, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(fh, path)
	default:
		return Parse(fh, path)
	}
}

// Parse reads an INI method definition. source is used in error messages.
func Parse(r io.Reader, source string) (*Method, error) {
	doc, err := parseINI(source, r)
	if err != nil {
		return nil, err
	}
	return decodeINI(doc)
}

func decodeINI(doc *iniDoc) (*Method, error) {
	var (
		info Info
		err  error
	)
	if info.Name, err = doc.str(SectionInfo, "name"); err != nil {
		return nil, err
	}
	if info.Bells, err = doc.positive(SectionInfo, "bells"); err != nil {
		return nil, err
	}
	if info.Coverable, err = doc.boolean(SectionInfo, "coverable", false); err != nil {
		return nil, err
	}

	if !doc.has(SectionTracks) {
		return nil, doc.errAt(SectionTracks, "", ErrMissingSection)
	}
	var tables Tables
	for _, dst := range []struct {
		name  string
		track *Track
	}{
		{SectionTracks, &tables.Tracks},
		{SectionPlainStart, &tables.PlainStart},
		{SectionPlain, &tables.Plain},
		{SectionBobStart, &tables.BobStart},
		{SectionBob, &tables.Bob},
		{SectionSingleStart, &tables.SingleStart},
		{SectionSingle, &tables.Single},
	} {
		if *dst.track, err = doc.track(dst.name); err != nil {
			return nil, err
		}
	}

	var extents []ExtentInfo
	for id := 1; doc.has(ExtentSection(id)); id++ {
		sec := ExtentSection(id)
		var x ExtentInfo
		if x.Name, err = doc.str(sec, "NAME"); err != nil {
			return nil, err
		}
		if x.Length, err = doc.positive(sec, "LENGTH"); err != nil {
			return nil, err
		}
		if x.Definition, err = doc.str(sec, "DEFINITION"); err != nil {
			return nil, err
		}
		if x.Mutable, err = doc.boolean(sec, "MUTABLE", false); err != nil {
			return nil, err
		}
		extents = append(extents, x)
	}
	for _, name := range doc.order {
		if !strings.HasPrefix(name, extentPrefix) {
			continue
		}
		id, err := strconv.Atoi(strings.TrimPrefix(name, extentPrefix))
		if err != nil || id > len(extents) {
			return nil, doc.errAt(ExtentSection(len(extents)+1), "",
				fmt.Errorf("%w: %s is not contiguous", ErrMissingSection, name))
		}
	}

	m, err := New(doc.source, info, tables, extents)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) && pe.Line == 0 {
			pe.Line = doc.errAt(pe.Section, pe.Key, nil).Line
		}
		return nil, err
	}
	return m, nil
}

func atoiPositive(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// parsePlaces converts a whitespace separated list of 1-based places to
// 0-based places.
func parsePlaces(s string) ([]int, error) {
	f := strings.Fields(s)
	out := make([]int, 0, len(f))
	for _, v := range f {
		n, ok := atoiPositive(v)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadNumber, v)
		}
		out = append(out, n-1)
	}
	return out, nil
}
