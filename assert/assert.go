package assert

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"sync/atomic"
)

var disabled atomic.Bool

// Disable will disable assertion evaluation globally.
// This is concurrency safe, but can have side effects in other goroutines that use assertions.
func Disable() {
	disabled.Store(true)
}

// Enable can be used to re-enable assertion evaluation if Disable was called previously.
func Enable() {
	disabled.Store(false)
}

func callerDetails() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("'%s#%d'", file, line)
}

func fail(label, caller string) {
	panic(fmt.Sprintf("assertion '%s' failed at %s", label, caller))
}

// True will panic with descriptive information if result is not true.
func True(label string, result bool) {
	if !active() {
		return
	}
	if !result {
		fail(label, callerDetails())
	}
}

// NotBlank will panic if s is empty or only contains whitespace.
func NotBlank(label string, s string) {
	if !active() {
		return
	}
	if len(strings.TrimSpace(s)) == 0 {
		fail(label, callerDetails())
	}
}

// NotNil will panic if val is nil.
// Typed nil values (a nil pointer stored in an interface, for example) are also considered nil.
func NotNil(label string, val any) {
	if !active() {
		return
	}
	if isNil(val) {
		fail(label, callerDetails())
	}
}

func isNil(val any) bool {
	if val == nil {
		return true
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
