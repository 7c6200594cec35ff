/*
Package cmdline captures the result of command line parsing as an immutable [ParsedCommandLine].

Parsing itself is delegated to [pflag]. Use [Parse] to parse arguments and record every option occurrence in the order it appeared,
or [FromFlagSet] to snapshot a [pflag.FlagSet] that something else already parsed.
Inside a [cobra] command, [FromCommand] does the same with the command's merged flags and run args.
A [ParsedCommandLine] can also be assembled by hand with [New], which is useful for other parsers and for tests.

[pflag]: https://github.com/spf13/pflag
[cobra]: https://github.com/spf13/cobra
*/
package cmdline
