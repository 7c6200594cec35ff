//go:build !noassert

package assert

func active() bool {
	return !disabled.Load()
}
