package main

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/cliprops/assert"
	"github.com/saylorsolutions/cliprops/cli"
	"github.com/saylorsolutions/cliprops/cmdline"
	"github.com/saylorsolutions/cliprops/env"
	"github.com/saylorsolutions/cliprops/propsource"
	"github.com/saylorsolutions/cliprops/yamlsource"
	flag "github.com/spf13/pflag"
	"io"
	"log/slog"
	"slices"
	"strings"
	"text/tabwriter"
)

const (
	definesSourceName = "commandLineDefines"
	defaultEnvPrefix  = "PROPDUMP_"
	unknownSource     = "-"
	sourcesUsage      = `
Sources are consulted in this order:
  1. Command line options, with positional arguments under the non-option key
  2. Defines given with -D key=value
  3. Environment variables starting with the env prefix
  4. The YAML file given with --config
`
)

var (
	errInvalidDefine     = errors.New("invalid define, expected key=value")
	errBlankNonOptionKey = errors.New("non-option key must not be blank")
)

// newCommandSet creates the propdump command tree.
// Results are printed to out, and verbose lookup logs go to logOut.
func newCommandSet(out, logOut io.Writer, environ []string) *cli.CommandSet {
	set := cli.NewCommandSet("propdump")
	set.Printer().Redirect(out)
	set.BeforeExec(validateNonOptionKey)

	dump := set.AddCommand("dump", "Prints resolved configuration properties", "d").
		Usage("dump [FLAGS] [ARGS...]\n%s", sourcesUsage)
	sourceFlags(dump.Flags())
	dump.Flags().StringArrayP("get", "g", nil, "Only print these properties, failing if any are missing")
	dump.Flags().SetInterspersed(true)
	dump.Does(func(parsed *cmdline.ParsedCommandLine, printer *cli.Printer) error {
		return runDump(parsed, printer, logOut, environ)
	})

	sources := set.AddCommand("sources", "Lists property sources from highest to lowest precedence", "src").
		Usage("sources [FLAGS]\n%s", sourcesUsage)
	sourceFlags(sources.Flags())
	sources.Does(func(parsed *cmdline.ParsedCommandLine, printer *cli.Printer) error {
		r, _, err := resolver(parsed, logOut, environ)
		if err != nil {
			return err
		}
		for _, name := range r.Sources().Names() {
			printer.Println(name)
		}
		return nil
	})
	return set
}

func sourceFlags(fs *flag.FlagSet) {
	fs.SortFlags = false
	fs.StringP("config", "c", "", "YAML file to load properties from")
	fs.String("env-prefix", defaultEnvPrefix, "Only environment variables with this prefix are used")
	fs.String("non-option-key", propsource.DefaultNonOptionArgsPropertyName, "Property name for positional arguments")
	fs.StringArrayP("define", "D", nil, "Defines a property as key=value, may be repeated")
	fs.BoolP("verbose", "v", false, "Logs property lookups to stderr")
}

// run prints top level usage when asked, and executes a sub-command otherwise.
func run(set *cli.CommandSet, args []string) error {
	if set.RespondUsage(args, "Prints the configuration properties resolved from the command line, environment, and a YAML file.") {
		return nil
	}
	return set.Exec(args)
}

func validateNonOptionKey(parsed *cmdline.ParsedCommandLine) error {
	if !parsed.HasOption("non-option-key") {
		return nil
	}
	if key := strings.Join(parsed.Values("non-option-key"), ""); len(strings.TrimSpace(key)) == 0 {
		return cli.NewUsageError("%w", errBlankNonOptionKey)
	}
	return nil
}

func parseDefines(defines []string) (map[string]string, error) {
	props := map[string]string{}
	errs := assert.CollectErrors()
	for _, define := range defines {
		key, val, found := strings.Cut(define, "=")
		key = strings.TrimSpace(key)
		if !found || len(key) == 0 {
			errs.Addf("%w: '%s'", errInvalidDefine, define)
			continue
		}
		props[key] = val
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return props, nil
}

// resolver layers the command line over defines, the environment, and the config file.
func resolver(parsed *cmdline.ParsedCommandLine, logOut io.Writer, environ []string) (*propsource.Resolver, *propsource.CommandLineSource, error) {
	adapter := propsource.NewAdapter(parsed)
	cmdSource := propsource.NewCommandLineSource(adapter)
	sources := propsource.NewSources(cmdSource)
	r := propsource.NewResolver(sources)

	if r.Enabled("verbose") {
		log := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
		cmdSource = propsource.NewCommandLineSource(propsource.WithLogging(adapter, log))
		if err := sources.Replace(propsource.CommandLineSourceName, cmdSource); err != nil {
			return nil, nil, err
		}
	}
	cmdSource.SetNonOptionArgsPropertyName(r.String("non-option-key", propsource.DefaultNonOptionArgsPropertyName))

	defineVals, _ := cmdSource.OptionValues("define")
	defines, err := parseDefines(defineVals)
	if err != nil {
		return nil, nil, cli.NewUsageError("%w", err)
	}
	sources.AddLast(propsource.NewMapSource(definesSourceName, defines))
	sources.AddLast(env.FromEnviron(environ, r.String("env-prefix", defaultEnvPrefix)))

	if config := r.String("config", ""); len(config) > 0 {
		file, err := yamlsource.Load(config)
		if err != nil {
			return nil, nil, err
		}
		sources.AddLast(file)
	}
	return r, cmdSource, nil
}

func runDump(parsed *cmdline.ParsedCommandLine, printer *cli.Printer, logOut io.Writer, environ []string) error {
	r, cmdSource, err := resolver(parsed, logOut, environ)
	if err != nil {
		return err
	}
	keys, _ := cmdSource.OptionValues("get")
	if len(keys) > 0 {
		if err := r.Require(keys...); err != nil {
			return err
		}
	} else {
		keys = r.PropertyNames()
		nonOptionKey := cmdSource.NonOptionArgsPropertyName()
		if cmdSource.ContainsProperty(nonOptionKey) && !slices.Contains(keys, nonOptionKey) {
			keys = append(keys, nonOptionKey)
		}
	}
	return printProperties(printer, r, keys)
}

func printProperties(printer *cli.Printer, r *propsource.Resolver, keys []string) error {
	if !printer.IsTerminal() {
		for _, key := range keys {
			val, _ := r.Property(key)
			printer.Printf("%s=%s\n", key, val)
		}
		return nil
	}
	tw := tabwriter.NewWriter(printer.Writer(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
	for _, key := range keys {
		_, _ = fmt.Fprintln(tw, propertyRow(r, key))
	}
	return tw.Flush()
}

// propertyRow formats a tab separated key, value, and source name, using [unknownSource] when no source has the key.
func propertyRow(r *propsource.Resolver, key string) string {
	val, src, ok := r.Lookup(key)
	srcName := unknownSource
	if ok && src != nil {
		srcName = src.Name()
	}
	return key + "\t" + val + "\t" + srcName
}
