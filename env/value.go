package env

import (
	"github.com/saylorsolutions/cliprops/propsource"
	"os"
	"slices"
	"strings"
	"unicode/utf8"
)

// SourceName is the default name of an environment [Source].
const SourceName = "systemEnvironment"

var _ propsource.PropertySource = (*Source)(nil)

// Source is a [propsource.PropertySource] backed by a snapshot of the process environment.
//
// Property names are matched case-insensitive, and dots and dashes may stand in for underscores.
// So the property "server.port" will match the variable SERVER_PORT.
// If a prefix is given, then only variables starting with the prefix are visible, and the prefix is not part of the property name.
type Source struct {
	name   string
	prefix string
	vars   map[string]string
	names  []string
}

// NewSource snapshots the current environment.
// The name defaults to [SourceName] if not given.
func NewSource(prefix string, name ...string) *Source {
	return FromEnviron(os.Environ(), prefix, name...)
}

// FromEnviron creates a [Source] from "KEY=value" pairs in the same form as [os.Environ].
// Malformed pairs are skipped.
func FromEnviron(environ []string, prefix string, name ...string) *Source {
	srcName := SourceName
	if len(name) > 0 && len(strings.TrimSpace(name[0])) > 0 {
		srcName = name[0]
	}
	s := &Source{
		name:   srcName,
		prefix: prefix,
		vars:   map[string]string{},
		names:  []string{},
	}
	for i := 0; i < len(environ); i++ {
		key, val, found := strings.Cut(environ[i], "=")
		if !found || len(key) == 0 {
			continue
		}
		rest, ok := cutPrefixFold(key, prefix)
		if !ok || len(rest) == 0 {
			continue
		}
		lower := strings.ToLower(rest)
		if _, dupe := s.vars[lower]; !dupe {
			s.names = append(s.names, rest)
		}
		s.vars[lower] = val
	}
	slices.Sort(s.names)
	return s
}

// cutPrefixFold is [strings.CutPrefix] with case folding.
// Runes are compared one at a time, since folded runes may differ in encoded length.
func cutPrefixFold(s, prefix string) (string, bool) {
	for len(prefix) > 0 {
		if len(s) == 0 {
			return "", false
		}
		pr, pn := utf8.DecodeRuneInString(prefix)
		sr, sn := utf8.DecodeRuneInString(s)
		if pr != sr && !strings.EqualFold(string(pr), string(sr)) {
			return "", false
		}
		prefix, s = prefix[pn:], s[sn:]
	}
	return s, true
}

func (s *Source) Name() string {
	return s.name
}

// Prefix returns the prefix as given when the Source was created.
func (s *Source) Prefix() string {
	return s.prefix
}

func candidates(name string) []string {
	name = strings.ToLower(name)
	underscored := strings.NewReplacer(".", "_", "-", "_").Replace(name)
	if underscored == name {
		return []string{name}
	}
	return []string{
		name,
		strings.ReplaceAll(name, ".", "_"),
		strings.ReplaceAll(name, "-", "_"),
		underscored,
	}
}

func (s *Source) lookup(name string) (string, bool) {
	for _, candidate := range candidates(name) {
		if val, ok := s.vars[candidate]; ok {
			return val, true
		}
	}
	return "", false
}

func (s *Source) ContainsProperty(name string) bool {
	_, ok := s.lookup(name)
	return ok
}

// Property returns the variable's value as is, which may be empty.
func (s *Source) Property(name string) (string, bool) {
	return s.lookup(name)
}

// PropertyNames returns the variable names, minus any prefix, sorted alphabetically.
func (s *Source) PropertyNames() []string {
	return slices.Clone(s.names)
}
