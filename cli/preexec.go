package cli

import (
	"github.com/saylorsolutions/cliprops/cmdline"
	"sync"
)

// PreExec runs right before a [Command] executes, with the command line the command was given.
type PreExec func(parsed *cmdline.ParsedCommandLine) error

// preExecChain is shared by every [CommandSet] and [Command] in a tree.
type preExecChain struct {
	mux sync.Mutex
	fns []PreExec
}

func (c *preExecChain) add(fn PreExec) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.fns = append(c.fns, fn)
}

func (c *preExecChain) run(parsed *cmdline.ParsedCommandLine) error {
	if c == nil {
		return nil
	}
	c.mux.Lock()
	fns := c.fns
	c.mux.Unlock()
	for _, fn := range fns {
		if err := fn(parsed); err != nil {
			return err
		}
	}
	return nil
}

// BeforeExec registers a [PreExec] for every [Command] in this tree, including commands added later.
// If a PreExec returns an error, then the command is not executed and the error is returned from Exec instead.
// Nothing runs when a command only prints usage.
//
// Passing a nil PreExec will panic.
func (s *CommandSet) BeforeExec(fn PreExec) *CommandSet {
	if fn == nil {
		panic("nil pre-exec function")
	}
	if s.preExec == nil {
		s.preExec = new(preExecChain)
	}
	s.preExec.add(fn)
	return s
}
