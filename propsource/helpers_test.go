package propsource

import (
	"github.com/saylorsolutions/cliprops/cmdline"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"testing"
)

const (
	option1         = "o1"
	option1Argument = "v1"
	option2         = "o2"
	option2Argument = "v2"
	option3         = "o3"
	nonOptionArg1   = "/path/to/file1"
	nonOptionArg2   = "/path/to/file2"
)

// parseOptionArgsOnly parses "--o1=v1 --o2", where o2 doesn't take an argument.
func parseOptionArgsOnly(t *testing.T) *cmdline.ParsedCommandLine {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.StringP(option1, "1", "", option1+" description")
	fs.BoolP(option2, "2", false, option2+" description")
	parsed, err := cmdline.Parse(fs, []string{"--" + option1 + "=" + option1Argument, "--" + option2})
	require.NoError(t, err)
	return parsed
}

// parseWithNonOptionArgs parses "--o1=v1 --o2=v2 /path/to/file1 /path/to/file2".
func parseWithNonOptionArgs(t *testing.T) *cmdline.ParsedCommandLine {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.StringP(option1, "1", "", option1+" description")
	fs.StringP(option2, "2", "", option2+" description")
	parsed, err := cmdline.Parse(fs, []string{
		"--" + option1 + "=" + option1Argument,
		"--" + option2 + "=" + option2Argument,
		nonOptionArg1,
		nonOptionArg2,
	})
	require.NoError(t, err)
	return parsed
}

func parseEmpty(t *testing.T) *cmdline.ParsedCommandLine {
	parsed, err := cmdline.Parse(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	require.NoError(t, err)
	return parsed
}
