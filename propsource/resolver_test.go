package propsource

import (
	"github.com/saylorsolutions/cliprops/cmdline"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func testResolver(t *testing.T, args ...string) *Resolver {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.String("port", "", "Port to listen on")
	fs.BoolP("verbose", "v", false, "Verbose output")
	fs.StringArray("tag", nil, "Tags")
	parsed, err := cmdline.Parse(fs, args)
	require.NoError(t, err)

	return NewResolver(NewSources(
		FromCommandLine(parsed),
		NewMapSource("defaults", map[string]string{
			"port":     "8080",
			"host":     "localhost",
			"timeout":  "5s",
			"ratio":    "0.5",
			"enabled":  "Yes",
			"disabled": "off",
			"bogus":    "blah",
			"blank":    "  ",
		}),
	))
}

func TestResolver_Precedence(t *testing.T) {
	r := testResolver(t, "--port=9090", "file")

	val, src, ok := r.Lookup("port")
	assert.True(t, ok)
	assert.Equal(t, "9090", val)
	assert.Equal(t, CommandLineSourceName, src.Name())

	val, src, ok = r.Lookup("host")
	assert.True(t, ok)
	assert.Equal(t, "localhost", val)
	assert.Equal(t, "defaults", src.Name())

	_, src, ok = r.Lookup("missing")
	assert.False(t, ok)
	assert.Nil(t, src)

	assert.Equal(t, "file", r.String(DefaultNonOptionArgsPropertyName, ""))
	assert.Equal(t, "8080", testResolver(t).String("port", ""), "Defaults should apply when the option is absent")
}

func TestResolver_String(t *testing.T) {
	r := testResolver(t, "--verbose")
	assert.Equal(t, "", r.String("verbose", "default"), "A valueless option is present with an empty value")
	assert.Equal(t, "default", r.String("missing", "default"))
}

func TestResolver_Strings(t *testing.T) {
	r := testResolver(t, "--tag=a", "--tag", "b, c", "--tag=")
	assert.Equal(t, []string{"a", "b", "c"}, r.Strings("tag"))
	assert.Nil(t, r.Strings("missing"))
	assert.Equal(t, []string{}, r.Strings("blank"))
}

func TestResolver_Bool(t *testing.T) {
	r := testResolver(t, "--verbose")
	tests := map[string]struct {
		key        string
		defaultVal bool
		expected   bool
	}{
		"Truthy mixed case": {key: "enabled", expected: true},
		"Falsy":             {key: "disabled", defaultVal: true, expected: false},
		"Not a bool":        {key: "bogus", defaultVal: true, expected: true},
		"Missing":           {key: "missing", defaultVal: true, expected: true},
		"Blank":             {key: "blank", expected: false},
		"Valueless":         {key: "verbose", expected: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Bool(tc.key, tc.defaultVal))
		})
	}
	assert.True(t, r.BoolIf("bogus", false, map[bool][]string{true: {"BLAH"}}))
	assert.False(t, r.BoolIf("enabled", false, nil))
}

func TestResolver_Enabled(t *testing.T) {
	r := testResolver(t, "-v")
	assert.True(t, r.Enabled("verbose"))
	assert.True(t, r.Enabled("enabled"))
	assert.False(t, r.Enabled("disabled"))
	assert.False(t, r.Enabled("missing"))
	assert.False(t, testResolver(t, "--verbose=false").Enabled("verbose"))
}

func TestResolver_Numbers(t *testing.T) {
	r := testResolver(t, "--port= 9090")
	assert.Equal(t, int64(9090), r.Int("port", -1))
	assert.Equal(t, int64(-1), r.Int("host", -1))
	assert.Equal(t, int64(-1), r.Int("missing", -1))
	assert.Equal(t, 0.5, r.Float("ratio", -1))
	assert.Equal(t, -1.0, r.Float("host", -1))
	assert.Equal(t, 5*time.Second, r.Duration("timeout", time.Minute))
	assert.Equal(t, time.Minute, r.Duration("host", time.Minute))
	assert.Equal(t, time.Minute, r.Duration("blank", time.Minute))
}

func TestResolver_Require(t *testing.T) {
	r := testResolver(t, "--verbose")
	assert.NoError(t, r.Require("verbose", "host"))

	err := r.Require("host", "db.url", "db.user")
	assert.ErrorIs(t, err, ErrMissingProperty)
	assert.Equal(t, "missing required property: db.url, missing required property: db.user", err.Error())

	err = r.Require("db.url", "db.url")
	assert.Equal(t, "missing required property: db.url", err.Error(), "Repeated keys should be reported once")
}

func TestResolver_PropertyNames(t *testing.T) {
	r := testResolver(t, "--port=1", "--verbose", "--tag=a", "--tag=b")
	assert.Equal(t, []string{
		"port", "verbose", "tag",
		"blank", "bogus", "disabled", "enabled", "host", "ratio", "timeout",
	}, r.PropertyNames())
}

func TestNewResolver_Nil(t *testing.T) {
	assert.Panics(t, func() {
		NewResolver(nil)
	})
}
