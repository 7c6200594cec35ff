package cmdline

import (
	"errors"
	"fmt"
	flag "github.com/spf13/pflag"
	"slices"
)

var (
	ErrParse = errors.New("failed to parse command line")
)

// Parse parses args with the given [flag.FlagSet] and records every option occurrence in order.
//
// The FlagSet is updated just as [flag.FlagSet.Parse] would, so typed getters still work afterward.
// Flags that are declared to not need an argument (like bool flags) are recorded without values when given bare.
// Slice flags record only the elements appended by each occurrence.
//
// Passing a nil FlagSet will panic.
func Parse(fs *flag.FlagSet, args []string) (*ParsedCommandLine, error) {
	if fs == nil {
		panic("nil flag set")
	}
	var opts []Option
	err := fs.ParseAll(args, func(f *flag.Flag, value string) error {
		var prior int
		sv, isSlice := f.Value.(flag.SliceValue)
		if isSlice && f.Changed {
			prior = len(sv.GetSlice())
		}
		if err := fs.Set(f.Name, value); err != nil {
			return err
		}
		opt := Option{Short: f.Shorthand, Long: f.Name}
		switch {
		case isSlice:
			current := sv.GetSlice()
			if prior > len(current) {
				prior = 0
			}
			opt.Values = slices.Clone(current[prior:])
		case len(f.NoOptDefVal) > 0 && value == f.NoOptDefVal:
			// Given bare, no argument to record.
		default:
			opt.Values = []string{value}
		}
		opts = append(opts, opt)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return newParsed(opts, slices.Clone(fs.Args())), nil
}

// FromFlagSet creates a [ParsedCommandLine] from a [flag.FlagSet] that has already been parsed.
//
// Since the FlagSet only retains final values, each changed flag is recorded once.
// Flags are visited in the FlagSet's own order, which is lexicographical unless SortFlags is false.
// A flag whose value equals its NoOptDefVal is recorded without values.
//
// Passing a nil FlagSet will panic.
func FromFlagSet(fs *flag.FlagSet) *ParsedCommandLine {
	if fs == nil {
		panic("nil flag set")
	}
	var opts []Option
	fs.Visit(func(f *flag.Flag) {
		opt := Option{Short: f.Shorthand, Long: f.Name}
		if sv, ok := f.Value.(flag.SliceValue); ok {
			opt.Values = slices.Clone(sv.GetSlice())
		} else if val := f.Value.String(); len(f.NoOptDefVal) == 0 || val != f.NoOptDefVal {
			opt.Values = []string{val}
		}
		opts = append(opts, opt)
	})
	return newParsed(opts, slices.Clone(fs.Args()))
}
