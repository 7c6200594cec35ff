package propsource

import (
	"github.com/saylorsolutions/cliprops/assert"
	"github.com/saylorsolutions/cliprops/cmdline"
	"strings"
)

var _ OptionSource = (*Adapter)(nil)

// Adapter is an [OptionSource] backed by a [cmdline.ParsedCommandLine].
// It only reads from the command line it wraps, so it's safe for concurrent use.
type Adapter struct {
	parsed *cmdline.ParsedCommandLine
}

// NewAdapter wraps the given command line.
// Passing a nil command line will panic.
func NewAdapter(parsed *cmdline.ParsedCommandLine) *Adapter {
	if parsed == nil {
		panic("nil command line")
	}
	return &Adapter{parsed: parsed}
}

// CommandLine returns the wrapped command line.
func (a *Adapter) CommandLine() *cmdline.ParsedCommandLine {
	return a.parsed
}

// ContainsOption reports whether the named option was given.
// Either the short or long name may be used, and a blank name will panic.
func (a *Adapter) ContainsOption(name string) bool {
	assert.NotBlank("option name", name)
	return a.parsed.HasOption(name)
}

// OptionValues returns the arguments of the named option.
//
// If the option is absent, then nil and false are returned.
// If it was given without an argument (e.g. "--foo"), then an empty slice and true are returned.
// Otherwise, each argument is returned in the order the parser collected it (e.g. "--foo=bar --foo=baz" is ["bar", "baz"]).
func (a *Adapter) OptionValues(name string) ([]string, bool) {
	assert.NotBlank("option name", name)
	if !a.parsed.HasOption(name) {
		return nil, false
	}
	vals := a.parsed.Values(name)
	if vals == nil {
		return []string{}, true
	}
	return vals, true
}

// NonOptionArgs returns the positional arguments verbatim.
func (a *Adapter) NonOptionArgs() []string {
	return a.parsed.Args()
}

// PropertyNames returns a name for each recognized option in parser order.
// The long name is used if it's not blank, otherwise the short name is used.
// Names aren't sorted or de-duplicated, so a repeated option will be listed once per occurrence.
func (a *Adapter) PropertyNames() []string {
	opts := a.parsed.Options()
	names := make([]string, 0, len(opts))
	for _, opt := range opts {
		if len(strings.TrimSpace(opt.Long)) > 0 {
			names = append(names, opt.Long)
			continue
		}
		names = append(names, opt.Short)
	}
	return names
}
