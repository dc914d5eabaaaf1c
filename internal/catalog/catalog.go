// Package catalog collects the method definitions available to the CLI.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ringron/internal/config"
	"ringron/internal/method"
)

// Patterns matched in the data directory when no files are configured.
var Patterns = []string{"*.mcf", "*.yaml", "*.yml"}

// maxParallel bounds concurrent method loads.
const maxParallel = 8

// Entry names one extent of one method.
type Entry struct {
	Method   string
	ExtentID int
	Name     string
}

// Catalog is a set of methods keyed by name. It is read-only once opened.
type Catalog struct {
	methods []*method.Method
	byName  map[string]*method.Method
}

// Open loads cfg.Methods (relative paths resolve against cfg.DataDir), or
// every file in cfg.DataDir matching Patterns when the list is empty. Any
// load failure or duplicate method name fails the whole catalog.
func Open(cfg *config.Config, log *zap.Logger) (*Catalog, error) {
	if log == nil {
		log = zap.NewNop()
	}
	paths, err := resolve(cfg)
	if err != nil {
		return nil, err
	}
	log.Debug("loading methods", zap.String("data_dir", cfg.DataDir), zap.Int("files", len(paths)))

	loaded := make([]*method.Method, len(paths))
	var g errgroup.Group
	g.SetLimit(maxParallel)
	for i, p := range paths {
		g.Go(func() error {
			m, err := method.Load(p)
			if err != nil {
				return err
			}
			loaded[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := &Catalog{byName: make(map[string]*method.Method, len(loaded))}
	for _, m := range loaded {
		key := strings.ToLower(m.Name())
		if prev, ok := c.byName[key]; ok {
			return nil, fmt.Errorf("duplicate method %q in %s and %s", m.Name(), prev.Source(), m.Source())
		}
		c.byName[key] = m
		c.methods = append(c.methods, m)
		log.Debug("method loaded",
			zap.String("method", m.Name()),
			zap.String("source", m.Source()),
			zap.Int("extents", len(m.ExtentIDs())))
	}
	sort.Slice(c.methods, func(i, j int) bool { return c.methods[i].Name() < c.methods[j].Name() })
	return c, nil
}

func resolve(cfg *config.Config) ([]string, error) {
	if len(cfg.Methods) > 0 {
		out := make([]string, len(cfg.Methods))
		for i, p := range cfg.Methods {
			if !filepath.IsAbs(p) && cfg.DataDir != "" {
				p = filepath.Join(cfg.DataDir, p)
			}
			out[i] = p
		}
		return out, nil
	}

	if _, err := os.Stat(cfg.DataDir); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	var out []string
	for _, pat := range Patterns {
		matches, err := filepath.Glob(filepath.Join(cfg.DataDir, pat))
		if err != nil {
			return nil, err
		}
		out = append(out, matches...)
	}
	sort.Strings(out)
	return out, nil
}

// Methods returns the methods sorted by name.
func (c *Catalog) Methods() []*method.Method {
	return append([]*method.Method(nil), c.methods...)
}

// Lookup finds a method by name, ignoring case.
func (c *Catalog) Lookup(name string) (*method.Method, bool) {
	m, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// Entries lists every extent of every method, methods by name and extents
// by id.
func (c *Catalog) Entries() []Entry {
	var out []Entry
	for _, m := range c.methods {
		for _, id := range m.ExtentIDs() {
			out = append(out, Entry{Method: m.Name(), ExtentID: id, Name: m.ExtentName(id)})
		}
	}
	return out
}
