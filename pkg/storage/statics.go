package storage

import (
	"sort"

	"go.uber.org/zap"
)

// Globals holds values that live for the whole run. They are initialised once
// by whoever owns the Globals value, not by package initialisation.
type Globals struct {
	GlobalVar  int
	FileStatic int
}

// Statics owns per-call-site state that must survive repeated calls. It
// replaces hidden function-local statics with an explicit context that has a
// defined initialisation (first Site call) and teardown (Close).
type Statics struct {
	sites  map[string]*Site
	logger *zap.Logger
}

// Site is the persistent state for one call site.
type Site struct {
	name  string
	value int
}

// NewStatics creates an empty context. A nil logger is replaced by a nop logger.
func NewStatics(logger *zap.Logger) *Statics {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Statics{sites: make(map[string]*Site), logger: logger}
}

// Site returns the state for name, creating it on first reach.
func (s *Statics) Site(name string) *Site {
	site, ok := s.sites[name]
	if !ok {
		site = &Site{name: name}
		s.sites[name] = site
		s.logger.Debug("static initialized", zap.String("site", name))
	}
	return site
}

// Next increments the site's counter and returns the new value.
func (c *Site) Next() int {
	c.value++
	return c.value
}

// Value returns the current counter without changing it.
func (c *Site) Value() int { return c.value }

// Name returns the call-site name.
func (c *Site) Name() string { return c.name }

// Close tears down every site, returning their final values keyed by name.
func (s *Statics) Close() map[string]int {
	final := make(map[string]int, len(s.sites))
	names := make([]string, 0, len(s.sites))
	for name := range s.sites {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		final[name] = s.sites[name].value
		s.logger.Debug("static destroyed", zap.String("site", name), zap.Int("value", final[name]))
	}
	s.sites = make(map[string]*Site)
	return final
}
