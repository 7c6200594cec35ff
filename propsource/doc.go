/*
Package propsource provides named, queryable property sources, and an adapter that exposes a parsed command line as one.

# Command line properties

An [Adapter] wraps a [cmdline.ParsedCommandLine] and answers option lookups with three possible outcomes:
  - The option is absent, so lookups report not found and a [Resolver] falls through to the next source.
  - The option was given without an argument (like "--verbose"), so it's present with no values. This renders as an empty string.
  - The option was given one or more values (like "--foo=bar --foo=baz"), which are returned in the order they were parsed. This renders as "bar,baz".

A [CommandLineSource] turns those lookups into a [PropertySource].
Positional arguments aren't listed as property names, but they're available as a comma separated value under [DefaultNonOptionArgsPropertyName], which can be changed with [CommandLineSource.SetNonOptionArgsPropertyName].

# Layering

[Sources] is an ordered set of sources, and a [Resolver] asks each in turn until one has the requested property.
A typical setup puts the command line first, then the environment, then files, then defaults.
*/
package propsource
