package method

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlMethod is the YAML layout of a method definition. Table values may be
// written as "2 3 4" or as [2, 3, 4]; places are 1-based as in .mcf files.
type yamlMethod struct {
	Info struct {
		Name      string `yaml:"name"`
		Bells     int    `yaml:"bells"`
		Coverable bool   `yaml:"coverable"`
	} `yaml:"info"`
	Tracks      yamlTrack `yaml:"tracks"`
	PlainStart  yamlTrack `yaml:"plain_start"`
	Plain       yamlTrack `yaml:"plain"`
	BobStart    yamlTrack `yaml:"bob_start"`
	Bob         yamlTrack `yaml:"bob"`
	SingleStart yamlTrack `yaml:"single_start"`
	Single      yamlTrack `yaml:"single"`
	Extents     []struct {
		Name       string `yaml:"name"`
		Length     int    `yaml:"length"`
		Definition string `yaml:"definition"`
		Mutable    bool   `yaml:"mutable"`
	} `yaml:"extents"`
}

type yamlTrack map[string]yamlPlaces

type yamlPlaces []int

func (p *yamlPlaces) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		dst, err := parsePlaces(n.Value)
		if err != nil {
			return err
		}
		for i := range dst {
			dst[i]++
		}
		*p = dst
		return nil
	case yaml.SequenceNode:
		var dst []int
		if err := n.Decode(&dst); err != nil {
			return err
		}
		*p = dst
		return nil
	}
	return fmt.Errorf("line %d: %w: expected a place list", n.Line, ErrSyntax)
}

func (t yamlTrack) convert(source, section string) (Track, error) {
	out := make(Track, len(t))
	for key, dst := range t {
		place, ok := atoiPositive(key)
		if !ok {
			return nil, &ParseError{Source: source, Section: section, Key: key, Err: fmt.Errorf("%w: %q", ErrBadPlace, key)}
		}
		places := make([]int, len(dst))
		for i, d := range dst {
			if d <= 0 {
				return nil, &ParseError{Source: source, Section: section, Key: key, Err: fmt.Errorf("%w: %d", ErrBadNumber, d)}
			}
			places[i] = d - 1
		}
		out[place-1] = places
	}
	return out, nil
}

// ParseYAML reads a YAML method definition. Extent ids follow list order
// starting at 1.
func ParseYAML(r io.Reader, source string) (*Method, error) {
	var doc yamlMethod
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Source: source, Section: SectionInfo, Err: ErrMissingSection}
		}
		if errors.Is(err, ErrBadNumber) {
			return nil, &ParseError{Source: source, Err: err}
		}
		return nil, &ParseError{Source: source, Err: fmt.Errorf("%w: %v", ErrSyntax, err)}
	}

	info := Info{Name: doc.Info.Name, Bells: doc.Info.Bells, Coverable: doc.Info.Coverable}
	var (
		tables Tables
		err    error
	)
	for _, s := range []struct {
		name  string
		src   yamlTrack
		track *Track
	}{
		{SectionTracks, doc.Tracks, &tables.Tracks},
		{SectionPlainStart, doc.PlainStart, &tables.PlainStart},
		{SectionPlain, doc.Plain, &tables.Plain},
		{SectionBobStart, doc.BobStart, &tables.BobStart},
		{SectionBob, doc.Bob, &tables.Bob},
		{SectionSingleStart, doc.SingleStart, &tables.SingleStart},
		{SectionSingle, doc.Single, &tables.Single},
	} {
		if *s.track, err = s.src.convert(source, s.name); err != nil {
			return nil, err
		}
	}

	extents := make([]ExtentInfo, 0, len(doc.Extents))
	for _, x := range doc.Extents {
		extents = append(extents, ExtentInfo{Name: x.Name, Length: x.Length, Definition: x.Definition, Mutable: x.Mutable})
	}
	return New(source, info, tables, extents)
}
