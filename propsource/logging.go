package propsource

import (
	"log/slog"
)

var _ OptionSource = (*loggingOptionSource)(nil)

type loggingOptionSource struct {
	impl OptionSource
	log  *slog.Logger
}

// WithLogging wraps an [OptionSource] so every lookup is logged at [slog.LevelDebug].
// The wrapped source's results are returned unchanged.
//
// Passing a nil OptionSource or logger will panic.
func WithLogging(impl OptionSource, log *slog.Logger) OptionSource {
	if impl == nil {
		panic("nil option source")
	}
	if log == nil {
		panic("nil logger")
	}
	return &loggingOptionSource{impl: impl, log: log}
}

func (l *loggingOptionSource) ContainsOption(name string) bool {
	found := l.impl.ContainsOption(name)
	l.log.Debug("Checked for option", "name", name, "present", found)
	return found
}

func (l *loggingOptionSource) OptionValues(name string) ([]string, bool) {
	vals, ok := l.impl.OptionValues(name)
	switch {
	case !ok:
		l.log.Debug("No option is present", "name", name)
	case len(vals) == 0:
		l.log.Debug("Option has no arguments", "name", name)
	default:
		l.log.Debug("Option has arguments", "name", name, "values", vals)
	}
	return vals, ok
}

func (l *loggingOptionSource) NonOptionArgs() []string {
	args := l.impl.NonOptionArgs()
	l.log.Debug("Read non-option arguments", "count", len(args))
	return args
}

func (l *loggingOptionSource) PropertyNames() []string {
	names := l.impl.PropertyNames()
	l.log.Debug("Listed property names", "names", names)
	return names
}
