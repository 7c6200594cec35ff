package propsource

import (
	"github.com/saylorsolutions/cliprops/assert"
	"maps"
	"slices"
)

var _ PropertySource = (*MapSource)(nil)

// MapSource is a fixed set of properties, most often used for defaults.
type MapSource struct {
	name  string
	props map[string]string
}

// NewMapSource creates a [MapSource] with a copy of props.
// A blank name will panic.
func NewMapSource(name string, props map[string]string) *MapSource {
	assert.NotBlank("source name", name)
	cp := make(map[string]string, len(props))
	maps.Copy(cp, props)
	return &MapSource{name: name, props: cp}
}

func (s *MapSource) Name() string {
	return s.name
}

func (s *MapSource) ContainsProperty(name string) bool {
	_, ok := s.props[name]
	return ok
}

func (s *MapSource) Property(name string) (string, bool) {
	val, ok := s.props[name]
	return val, ok
}

// PropertyNames returns the property names sorted alphabetically.
func (s *MapSource) PropertyNames() []string {
	names := slices.Collect(maps.Keys(s.props))
	if names == nil {
		return []string{}
	}
	slices.Sort(names)
	return names
}
