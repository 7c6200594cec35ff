package cli

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/cliprops/cmdline"
	flag "github.com/spf13/pflag"
	"regexp"
	"slices"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	HelpPatterns      = []string{"--help", "-h"} // HelpPatterns is a slice of flags that should trigger the output of usage information with the top-level [CommandSet].

	keyCleansePattern = regexp.MustCompile(`\s`)
)

const helpFlag = "help"

// CommandFunc is executed by a [Command] once its flags have been parsed.
// The parsed command line includes every option occurrence in order, and the remaining positional arguments.
type CommandFunc = func(parsed *cmdline.ParsedCommandLine, printer *Printer) error

// Command is an executable function in a CLI.
// It should be linked to a [CommandSet] to establish a tree of commands available to the user.
type Command struct {
	CommandSet
	flags      *flag.FlagSet
	exec       CommandFunc
	key        string
	parent     string
	shortUsage string
	longUsage  string
	aliases    []string
}

func cleanseKey(key string) string {
	return keyCleansePattern.ReplaceAllString(strings.ToLower(key), "")
}

func joinPath(parent, key string) string {
	if len(parent) == 0 {
		return key
	}
	return parent + " " + key
}

func newCommand(key string, set *CommandSet, shortUsage string) *Command {
	key = cleanseKey(key)
	fs := flag.NewFlagSet(key, flag.ContinueOnError)
	fs.BoolP(helpFlag, "h", false, "Prints this usage information")
	fs.SetInterspersed(false)
	cmd := &Command{
		CommandSet: CommandSet{
			printer: set.Printer(),
			parent:  joinPath(set.parent, key),
			preExec: set.preExec,
		},
		flags:      fs,
		key:        key,
		parent:     set.parent,
		shortUsage: shortUsage,
	}
	fs.Usage = cmd.printUsage
	return cmd
}

// Does specifies the [CommandFunc] that should be executed by this [Command].
// Until this is called, executing the command prints its usage.
func (c *Command) Does(commandFunc CommandFunc) *Command {
	if commandFunc == nil {
		return c
	}
	c.exec = commandFunc
	return c
}

// Parent retrieves the parent [Command] name.
func (c *Command) Parent() string {
	return c.parent
}

// CommandPath returns the reference chain for this [Command].
func (c *Command) CommandPath() string {
	return joinPath(c.parent, c.key)
}

// Flags returns the [flag.FlagSet] for this [Command].
func (c *Command) Flags() *flag.FlagSet {
	return c.flags
}

// Usage sets a longer description of the [Command] that is output when a [HelpPatterns] flag is passed.
// The parent path is prepended, so "get [FLAGS] FILE" for a command under "my-cli" reads "my-cli get [FLAGS] FILE".
//
// The short description is output before this, and flag and sub-command usages after.
func (c *Command) Usage(format string, args ...any) *Command {
	text := fmt.Sprintf(format, args...)
	if len(text) == 0 {
		c.longUsage = ""
		return c
	}
	c.longUsage = joinPath(c.parent, text)
	return c
}

func (c *Command) usageText() string {
	var buf strings.Builder
	buf.WriteString(c.shortUsage + "\n")
	if len(c.longUsage) > 0 {
		buf.WriteString("\nUSAGE:\n" + c.longUsage)
		if !strings.HasSuffix(c.longUsage, "\n") {
			buf.WriteString("\n")
		}
	}
	buf.WriteString("\nFLAGS\n")
	buf.WriteString(c.flags.FlagUsages())
	if len(c.commands) > 0 {
		buf.WriteString("\nCOMMANDS\n")
		buf.WriteString(c.CommandUsages())
	}
	return buf.String()
}

func (c *Command) printUsage() {
	c.Printer().Print(c.usageText())
}

// Exec executes the command with given arguments.
// If the first argument names a sub-command, then that is executed instead.
//
// Flags are parsed with [cmdline.Parse], and parse failures are returned as a [UsageError].
// A [UsageError] returned from a [PreExec] or the [CommandFunc] is printed along with usage information before it's returned.
func (c *Command) Exec(args []string) error {
	if len(args) > 0 {
		if sub, ok := c.lookup(args[0]); ok {
			return sub.Exec(args[1:])
		}
	}
	parsed, err := cmdline.Parse(c.flags, args)
	if err != nil {
		return c.usageFailure(asUsageError(err))
	}
	if help, _ := c.flags.GetBool(helpFlag); help || c.exec == nil {
		c.printUsage()
		return nil
	}
	if err := c.preExec.run(parsed); err != nil {
		return c.usageFailure(err)
	}
	if err := c.exec(parsed, c.Printer()); err != nil {
		return c.usageFailure(err)
	}
	return nil
}

func (c *Command) usageFailure(err error) error {
	if errors.Is(err, &UsageError{}) {
		c.Printer().Println(err)
		c.Printer().Println()
		c.printUsage()
	}
	return err
}

// CommandSet is a group of [Command].
type CommandSet struct {
	commands map[string]*Command
	aliases  map[string]*Command
	printer  *Printer
	parent   string
	preExec  *preExecChain
}

// NewCommandSet is used to set up a top level [CommandSet] as the root of a CLI's command structure.
//
// Note: the parent(s) passed to this function will be used to populate sub-command usage information.
// So they should only contain the commands used to invoke this [CommandSet].
func NewCommandSet(parent ...string) *CommandSet {
	return &CommandSet{
		printer: NewPrinter(),
		parent:  strings.Join(parent, " "),
		preExec: new(preExecChain),
	}
}

// Parent retrieves the parent [CommandSet] name.
func (s *CommandSet) Parent() string {
	return s.parent
}

// AddCommand adds a sub-command to this [CommandSet].
// The key parameter will be cleansed to remove spaces, and normalize to lower-case.
// Aliases may be added as a way to support shorter variants of the same [Command].
func (s *CommandSet) AddCommand(key, shortUsage string, aliases ...string) *Command {
	if s.preExec == nil {
		s.preExec = new(preExecChain)
	}
	cmd := newCommand(key, s, shortUsage)
	if s.commands == nil {
		s.commands = map[string]*Command{}
	}
	s.commands[cmd.key] = cmd
	for _, alias := range aliases {
		alias = cleanseKey(alias)
		if len(alias) == 0 {
			continue
		}
		if s.aliases == nil {
			s.aliases = map[string]*Command{}
		}
		s.aliases[alias] = cmd
		cmd.aliases = append(cmd.aliases, alias)
	}
	slices.Sort(cmd.aliases)
	return cmd
}

// Printer returns the cached [Printer] for this [CommandSet].
// Commands added to the set share it.
func (s *CommandSet) Printer() *Printer {
	if s.printer == nil {
		s.printer = NewPrinter()
	}
	return s.printer
}

func (s *CommandSet) lookup(key string) (*Command, bool) {
	key = strings.ToLower(key)
	if cmd, ok := s.commands[key]; ok {
		return cmd, true
	}
	cmd, ok := s.aliases[key]
	return cmd, ok
}

// Exec executes this [CommandSet].
// It's expected that the first 1+ arguments include the key/alias for a sub-command, matched case-insensitive.
func (s *CommandSet) Exec(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no arguments", ErrUnknownCommand)
	}
	cmd, ok := s.lookup(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return cmd.Exec(args[1:])
}

// RespondUsage prints usage information for this [CommandSet] if args is empty, or starts with one of [HelpPatterns].
// The args should not include the program name, so this is normally called with os.Args[1:].
// If usage information was printed, then true will be returned.
func (s *CommandSet) RespondUsage(args []string, format string, vals ...any) bool {
	if len(args) > 0 && !slices.Contains(HelpPatterns, args[0]) {
		return false
	}
	text := fmt.Sprintf(format, vals...)
	if len(text) > 0 {
		text = "\n\n" + strings.TrimSuffix(text, "\n")
	}
	s.Printer().Printf("%s%s\n\nCOMMANDS:\n%s", s.parent, text, s.CommandUsages())
	return true
}

// CommandUsages returns a string including the usage information for sub-commands in this [CommandSet].
//
// The sub-command keys will be sorted alphabetically before output, with any aliases listed after the key.
func (s *CommandSet) CommandUsages() string {
	var (
		buf    strings.Builder
		keys   = make([]string, 0, len(s.commands))
		labels = make(map[string]string, len(s.commands))
		maxLen int
	)
	for key, cmd := range s.commands {
		keys = append(keys, key)
		labels[key] = strings.Join(append([]string{key}, cmd.aliases...), ", ")
		maxLen = max(maxLen, len(labels[key]))
	}
	slices.Sort(keys)
	for _, key := range keys {
		buf.WriteString(fmt.Sprintf("  %-*s\t%s\n", maxLen, labels[key], s.commands[key].shortUsage))
	}
	return buf.String()
}
