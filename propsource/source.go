package propsource

// PropertySource is a named provider of string properties.
type PropertySource interface {
	// Name identifies the source within [Sources].
	Name() string
	// ContainsProperty reports whether the source has a value for name.
	ContainsProperty(name string) bool
	// Property returns the value for name, and false if the source doesn't have it.
	Property(name string) (string, bool)
	// PropertyNames lists the names this source can enumerate.
	PropertyNames() []string
}

// OptionSource is the lookup contract that a [CommandLineSource] renders into properties.
// An [Adapter] is the usual implementation.
type OptionSource interface {
	// ContainsOption reports whether the option was given, with or without arguments.
	ContainsOption(name string) bool
	// OptionValues returns nil and false if the option is absent, an empty slice and true if it was given without arguments,
	// and its arguments in parser order otherwise.
	OptionValues(name string) ([]string, bool)
	// NonOptionArgs returns the positional arguments in their original order, and never nil.
	NonOptionArgs() []string
	// PropertyNames returns the name of each recognized option, in parser order.
	PropertyNames() []string
}
