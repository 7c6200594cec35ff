package assert

import (
	"fmt"
	"strings"
)

// Collector gathers errors from a validation pass so that every failure is reported together.
// Errors with the same message are only kept once, so validating the same input twice doesn't repeat the report.
//
// A Collector is itself an error once anything has been added, and [errors.Is] and [errors.As] see each collected error.
// It's not safe for concurrent use.
type Collector struct {
	sep  string
	errs []error
	msgs map[string]struct{}
}

// CollectErrors creates a Collector that separates messages with sep, or a newline if sep isn't given.
func CollectErrors(sep ...string) *Collector {
	c := &Collector{sep: "\n", msgs: map[string]struct{}{}}
	if len(sep) > 0 {
		c.sep = sep[0]
	}
	return c
}

// Add collects err, ignoring nil and any error with a message that was already collected.
func (c *Collector) Add(err error) *Collector {
	if err == nil {
		return c
	}
	msg := err.Error()
	if _, dupe := c.msgs[msg]; dupe {
		return c
	}
	if c.msgs == nil {
		c.msgs = map[string]struct{}{}
	}
	c.msgs[msg] = struct{}{}
	c.errs = append(c.errs, err)
	return c
}

// Addf collects fmt.Errorf(format, args...), so "%w" may be used to wrap a sentinel.
func (c *Collector) Addf(format string, args ...any) *Collector {
	return c.Add(fmt.Errorf(format, args...))
}

// Err returns nil if nothing was collected, otherwise the Collector itself.
func (c *Collector) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c
}

func (c *Collector) Error() string {
	msgs := make([]string, len(c.errs))
	for i, err := range c.errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, c.sep)
}

func (c *Collector) Unwrap() []error {
	return c.errs
}
