package cmdline

import (
	"github.com/spf13/cobra"
	"slices"
)

// FromCommand creates a [ParsedCommandLine] from within a [cobra.Command]'s run function, with the args the run function was given.
//
// Cobra merges persistent flags inherited from parent commands into the command's own flags before running it, so those are included the same way as [FromFlagSet].
// If the command has DisableFlagParsing set, then every arg is kept as a non-option argument.
//
// Passing a nil Command will panic.
func FromCommand(cmd *cobra.Command, args []string) *ParsedCommandLine {
	if cmd == nil {
		panic("nil command")
	}
	if cmd.DisableFlagParsing {
		return newParsed(nil, slices.Clone(args))
	}
	return newParsed(FromFlagSet(cmd.Flags()).options, slices.Clone(args))
}
