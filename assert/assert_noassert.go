//go:build noassert

package assert

// With the noassert tag every check short circuits, and Disable/Enable have no effect.
func active() bool {
	return false
}
