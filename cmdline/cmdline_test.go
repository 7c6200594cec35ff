package cmdline

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew_Copies(t *testing.T) {
	args := []string{"a", "b"}
	vals := []string{"v1"}
	parsed := New(args, Option{Short: "1", Long: "o1", Values: vals})
	args[0] = "changed"
	vals[0] = "changed"

	assert.Equal(t, []string{"a", "b"}, parsed.Args())
	assert.Equal(t, []string{"v1"}, parsed.Values("o1"))

	opts := parsed.Options()
	opts[0].Values[0] = "changed again"
	assert.Equal(t, []string{"v1"}, parsed.Values("o1"), "Options should return a copy")
}

func TestNew_Unnamed(t *testing.T) {
	assert.Panics(t, func() {
		New(nil, Option{Values: []string{"v"}})
	})
}

func TestParsedCommandLine_HasOption(t *testing.T) {
	parsed := New(nil,
		Option{Short: "1", Long: "o1", Values: []string{"v1"}},
		Option{Short: "x"},
	)
	tests := map[string]struct {
		name     string
		expected bool
	}{
		"Long":           {name: "o1", expected: true},
		"Short":          {name: "1", expected: true},
		"Long dashes":    {name: "--o1", expected: true},
		"Short dash":     {name: "-x", expected: true},
		"Short only":     {name: "x", expected: true},
		"Absent":         {name: "o3", expected: false},
		"Only dashes":    {name: "--", expected: false},
		"Empty":          {name: "", expected: false},
		"Case sensitive": {name: "O1", expected: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parsed.HasOption(tc.name))
		})
	}
}

func TestParsedCommandLine_Values(t *testing.T) {
	parsed := New(nil,
		Option{Long: "foo", Values: []string{"bar"}},
		Option{Long: "flag"},
		Option{Short: "f", Long: "foo", Values: []string{"baz"}},
	)
	assert.Equal(t, []string{"bar", "baz"}, parsed.Values("foo"))
	assert.Equal(t, []string{"baz"}, parsed.Values("f"))
	assert.Nil(t, parsed.Values("flag"))
	assert.True(t, parsed.HasOption("flag"))
	assert.Nil(t, parsed.Values("missing"))
}

func TestParsedCommandLine_Args_NeverNil(t *testing.T) {
	parsed := New(nil)
	assert.NotNil(t, parsed.Args())
	assert.Empty(t, parsed.Args())
	assert.Empty(t, parsed.Options())
}
