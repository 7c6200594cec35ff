package propsource

import (
	"github.com/saylorsolutions/cliprops/assert"
	"github.com/saylorsolutions/cliprops/cmdline"
	"strings"
	"sync"
)

const (
	CommandLineSourceName            = "commandLineArgs" // CommandLineSourceName is the default name of a [CommandLineSource].
	DefaultNonOptionArgsPropertyName = "nonOptionArgs"   // DefaultNonOptionArgsPropertyName is the default property name for positional arguments.
	valueSeparator                   = ","
)

var _ PropertySource = (*CommandLineSource)(nil)

// CommandLineSource renders an [OptionSource] as a [PropertySource].
//
// Option values are joined with a comma, and an option without arguments renders as an empty string.
// Positional arguments are joined under the non-option args property name, and only exist if at least one was given.
type CommandLineSource struct {
	name    string
	options OptionSource

	mux               sync.RWMutex
	nonOptionArgsName string
}

// NewCommandLineSource creates a [CommandLineSource] for the given options.
// The name defaults to [CommandLineSourceName] if not given.
//
// Passing a nil OptionSource will panic.
func NewCommandLineSource(options OptionSource, name ...string) *CommandLineSource {
	if options == nil {
		panic("nil option source")
	}
	srcName := CommandLineSourceName
	if len(name) > 0 {
		assert.NotBlank("source name", name[0])
		srcName = name[0]
	}
	return &CommandLineSource{
		name:              srcName,
		options:           options,
		nonOptionArgsName: DefaultNonOptionArgsPropertyName,
	}
}

// FromCommandLine is a shortcut for wrapping parsed in an [Adapter] and passing it to [NewCommandLineSource].
func FromCommandLine(parsed *cmdline.ParsedCommandLine, name ...string) *CommandLineSource {
	return NewCommandLineSource(NewAdapter(parsed), name...)
}

func (s *CommandLineSource) Name() string {
	return s.name
}

// Options returns the wrapped [OptionSource].
func (s *CommandLineSource) Options() OptionSource {
	return s.options
}

// NonOptionArgsPropertyName returns the property name that positional arguments are exposed as.
func (s *CommandLineSource) NonOptionArgsPropertyName() string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.nonOptionArgsName
}

// SetNonOptionArgsPropertyName changes the property name that positional arguments are exposed as.
// The previous name will no longer report positional arguments, unless an option happens to have the same name.
func (s *CommandLineSource) SetNonOptionArgsPropertyName(name string) {
	assert.NotBlank("non-option args property name", name)
	s.mux.Lock()
	defer s.mux.Unlock()
	s.nonOptionArgsName = name
}

// ContainsProperty reports whether an option with this name was given.
// For the non-option args property, this reports whether any positional arguments were given.
func (s *CommandLineSource) ContainsProperty(name string) bool {
	if name == s.NonOptionArgsPropertyName() {
		return len(s.options.NonOptionArgs()) > 0
	}
	return s.options.ContainsOption(name)
}

// Property returns the comma separated values of the named option, or an empty string if it was given without arguments.
// For the non-option args property, the comma separated positional arguments are returned.
func (s *CommandLineSource) Property(name string) (string, bool) {
	if name == s.NonOptionArgsPropertyName() {
		args := s.options.NonOptionArgs()
		if len(args) == 0 {
			return "", false
		}
		return strings.Join(args, valueSeparator), true
	}
	vals, ok := s.options.OptionValues(name)
	if !ok {
		return "", false
	}
	return strings.Join(vals, valueSeparator), true
}

// OptionValues returns the individual values of the named option, following the same rules as [OptionSource.OptionValues].
func (s *CommandLineSource) OptionValues(name string) ([]string, bool) {
	return s.options.OptionValues(name)
}

// NonOptionArgs returns the positional arguments.
func (s *CommandLineSource) NonOptionArgs() []string {
	return s.options.NonOptionArgs()
}

// PropertyNames returns the names of the given options.
// The non-option args property name is not included.
func (s *CommandLineSource) PropertyNames() []string {
	return s.options.PropertyNames()
}
