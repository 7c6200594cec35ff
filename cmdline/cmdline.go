package cmdline

import (
	"github.com/saylorsolutions/cliprops/assert"
	"github.com/saylorsolutions/cliprops/structures/set"
	"slices"
	"strings"
)

// Option is a single recognized option occurrence.
// Values is nil when the option was given without an argument.
type Option struct {
	Short  string
	Long   string
	Values []string
}

// Matches reports whether name refers to this option by either its short or long name.
// Leading dashes in name are ignored.
func (o Option) Matches(name string) bool {
	name = stripDashes(name)
	if len(name) == 0 {
		return false
	}
	return name == o.Short || name == o.Long
}

func (o Option) clone() Option {
	o.Values = slices.Clone(o.Values)
	return o
}

func stripDashes(name string) string {
	return strings.TrimLeft(name, "-")
}

// ParsedCommandLine is an immutable view of recognized options and the leftover positional arguments.
// It's safe for concurrent use.
type ParsedCommandLine struct {
	options []Option
	args    []string
	names   set.Set[string]
}

// New creates a [ParsedCommandLine] from already recognized options and non-option arguments.
// Options are kept in the order given, and are copied so later changes to the inputs have no effect.
//
// Each option must have at least a short or a long name, or this function will panic.
func New(args []string, opts ...Option) *ParsedCommandLine {
	cp := make([]Option, len(opts))
	for i, opt := range opts {
		assert.True("option has a name", len(opt.Short) > 0 || len(opt.Long) > 0)
		cp[i] = opt.clone()
	}
	return newParsed(cp, slices.Clone(args))
}

func newParsed(opts []Option, args []string) *ParsedCommandLine {
	names := set.New[string]()
	for _, opt := range opts {
		if len(opt.Short) > 0 {
			names.Add(opt.Short)
		}
		if len(opt.Long) > 0 {
			names.Add(opt.Long)
		}
	}
	if args == nil {
		args = []string{}
	}
	return &ParsedCommandLine{
		options: opts,
		args:    args,
		names:   names,
	}
}

// HasOption reports whether the named option was given, with or without an argument.
func (p *ParsedCommandLine) HasOption(name string) bool {
	return p.names.Has(stripDashes(name))
}

// Values returns every argument given to the named option, across repeated occurrences and in the order they were parsed.
// Nil is returned if the option is absent, or was only given without arguments.
func (p *ParsedCommandLine) Values(name string) []string {
	var vals []string
	for _, opt := range p.options {
		if opt.Matches(name) {
			vals = append(vals, opt.Values...)
		}
	}
	if len(vals) == 0 {
		return nil
	}
	return vals
}

// Options returns a copy of the recognized option occurrences in parser order.
func (p *ParsedCommandLine) Options() []Option {
	opts := make([]Option, len(p.options))
	for i, opt := range p.options {
		opts[i] = opt.clone()
	}
	return opts
}

// Args returns a copy of the non-option arguments in their original order.
// The result is never nil.
func (p *ParsedCommandLine) Args() []string {
	args := make([]string, len(p.args))
	copy(args, p.args)
	return args
}
