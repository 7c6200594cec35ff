/*
Package cli structures a CLI as a tree of sub-commands, where each [Command] receives its command line as a [cmdline.ParsedCommandLine].

Handing over the parsed command line instead of a flag set means a command can wrap it with [propsource.FromCommandLine] and resolve its settings from flags, environment, and files in one place.

A few policies apply.
  - User-visible output goes to STDERR by default, and can be redirected with the [Printer].
  - Flags are [pflag] posix style flags, and are not interspersed with arguments by default. A command may opt in with its own [flag.FlagSet.SetInterspersed].
  - The '-h' and '--help' flags are set up for every command, and print usage built from [Command.Usage], flag usages, and sub-commands.
  - Returning a [UsageError] from a command or [PreExec] prints the error followed by the command's usage. Command line parsing errors are reported the same way.

# Invocation

	CLI_NAME [SUB-COMMAND...] [FLAGS...] [ARGS...]

Use [CommandSet.RespondUsage] to print the top level usage when the CLI is called without arguments or with a help flag.

[pflag]: https://github.com/spf13/pflag
*/
package cli
