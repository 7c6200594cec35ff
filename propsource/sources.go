package propsource

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/cliprops/assert"
	"slices"
	"sync"
)

var (
	ErrSourceNotFound = errors.New("property source not found")
	ErrSelfRelative   = errors.New("property source cannot be positioned relative to itself")
)

// Sources is an ordered group of [PropertySource], where earlier sources take precedence.
// Source names are unique, so adding a source with a name that's already present will move it to the new position.
//
// Sources is safe for concurrent use.
type Sources struct {
	mux     sync.RWMutex
	sources []PropertySource
}

// NewSources creates [Sources] in the given order of precedence.
func NewSources(sources ...PropertySource) *Sources {
	s := new(Sources)
	for _, src := range sources {
		s.AddLast(src)
	}
	return s
}

func (s *Sources) indexOf(name string) int {
	return slices.IndexFunc(s.sources, func(src PropertySource) bool {
		return src.Name() == name
	})
}

func (s *Sources) removeIfPresent(name string) {
	if idx := s.indexOf(name); idx >= 0 {
		s.sources = slices.Delete(s.sources, idx, idx+1)
	}
}

// AddFirst adds a source with the highest precedence.
func (s *Sources) AddFirst(src PropertySource) {
	assert.NotNil("property source", src)
	s.mux.Lock()
	defer s.mux.Unlock()
	s.removeIfPresent(src.Name())
	s.sources = slices.Insert(s.sources, 0, src)
}

// AddLast adds a source with the lowest precedence.
func (s *Sources) AddLast(src PropertySource) {
	assert.NotNil("property source", src)
	s.mux.Lock()
	defer s.mux.Unlock()
	s.removeIfPresent(src.Name())
	s.sources = append(s.sources, src)
}

// AddBefore adds a source with higher precedence than the one named relative.
func (s *Sources) AddBefore(relative string, src PropertySource) error {
	return s.addRelative(relative, src, 0)
}

// AddAfter adds a source with lower precedence than the one named relative.
func (s *Sources) AddAfter(relative string, src PropertySource) error {
	return s.addRelative(relative, src, 1)
}

func (s *Sources) addRelative(relative string, src PropertySource, offset int) error {
	assert.NotNil("property source", src)
	if src.Name() == relative {
		return fmt.Errorf("%w: %s", ErrSelfRelative, relative)
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.indexOf(relative) < 0 {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, relative)
	}
	s.removeIfPresent(src.Name())
	idx := s.indexOf(relative) + offset
	s.sources = slices.Insert(s.sources, idx, src)
	return nil
}

// Replace swaps the source with the given name for src, keeping its position.
func (s *Sources) Replace(name string, src PropertySource) error {
	assert.NotNil("property source", src)
	s.mux.Lock()
	defer s.mux.Unlock()
	idx := s.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, name)
	}
	s.sources[idx] = src
	return nil
}

// Remove removes and returns the named source, or nil if it's not present.
func (s *Sources) Remove(name string) PropertySource {
	s.mux.Lock()
	defer s.mux.Unlock()
	idx := s.indexOf(name)
	if idx < 0 {
		return nil
	}
	src := s.sources[idx]
	s.sources = slices.Delete(s.sources, idx, idx+1)
	return src
}

// Get returns the named source.
func (s *Sources) Get(name string) (PropertySource, bool) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	idx := s.indexOf(name)
	if idx < 0 {
		return nil, false
	}
	return s.sources[idx], true
}

func (s *Sources) Contains(name string) bool {
	_, ok := s.Get(name)
	return ok
}

func (s *Sources) Len() int {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return len(s.sources)
}

// Names returns the source names in order of precedence.
func (s *Sources) Names() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	names := make([]string, len(s.sources))
	for i, src := range s.sources {
		names[i] = src.Name()
	}
	return names
}

// All returns a snapshot of the sources in order of precedence.
func (s *Sources) All() []PropertySource {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return slices.Clone(s.sources)
}
