/*
Package cliprops exposes a parsed command line as a property source, so flags and positional arguments can be queried the same way as environment variables, files, and defaults.

The pieces are split up by concern:
  - [github.com/saylorsolutions/cliprops/cmdline] captures an immutable snapshot of what [pflag] parsed.
  - [github.com/saylorsolutions/cliprops/propsource] adapts that snapshot into a property source, and provides a small layered resolver to compose sources by precedence.
  - [github.com/saylorsolutions/cliprops/env] and [github.com/saylorsolutions/cliprops/yamlsource] provide the other common sources.
  - [github.com/saylorsolutions/cliprops/cli] structures a CLI as sub-commands that each receive their parsed command line.

Multi-valued flags are rendered as a comma separated string, flags without an argument are rendered as an empty string, and positional arguments are exposed under a single property name that defaults to "nonOptionArgs".

[pflag]: https://github.com/spf13/pflag
*/
package cliprops
