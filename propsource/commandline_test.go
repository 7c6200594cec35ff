package propsource

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

const (
	nonDefaultSourceName                = "nonDefaultPropertySourceName"
	nonDefaultNonOptionArgsPropertyName = "nonDefaultNonOptionArgsPropertyName"
)

func TestCommandLineSource_DefaultName(t *testing.T) {
	src := FromCommandLine(parseEmpty(t))
	assert.Equal(t, CommandLineSourceName, src.Name())
	assert.Equal(t, DefaultNonOptionArgsPropertyName, src.NonOptionArgsPropertyName())
}

func TestCommandLineSource_Name(t *testing.T) {
	src := FromCommandLine(parseEmpty(t), nonDefaultSourceName)
	assert.NotEqual(t, CommandLineSourceName, src.Name())
	assert.Equal(t, nonDefaultSourceName, src.Name())
}

func TestCommandLineSource_Options(t *testing.T) {
	src := FromCommandLine(parseEmpty(t))
	assert.NotNil(t, src.Options())
	assert.IsType(t, &Adapter{}, src.Options())
}

func TestCommandLineSource_OptionArgsOnly(t *testing.T) {
	var src PropertySource = FromCommandLine(parseOptionArgsOnly(t))

	assert.True(t, src.ContainsProperty(option1))
	assert.True(t, src.ContainsProperty(option2))
	assert.False(t, src.ContainsProperty(option3))

	val, ok := src.Property(option1)
	assert.True(t, ok)
	assert.Equal(t, option1Argument, val)

	val, ok = src.Property(option2)
	assert.True(t, ok)
	assert.Equal(t, "", val)

	_, ok = src.Property(option3)
	assert.False(t, ok)

	assert.False(t, src.ContainsProperty(DefaultNonOptionArgsPropertyName))
	_, ok = src.Property(DefaultNonOptionArgsPropertyName)
	assert.False(t, ok)
}

func TestCommandLineSource_NonOptionArgs(t *testing.T) {
	var src PropertySource = FromCommandLine(parseWithNonOptionArgs(t))

	assert.True(t, src.ContainsProperty(option1))
	assert.True(t, src.ContainsProperty(option2))
	assert.True(t, src.ContainsProperty(DefaultNonOptionArgsPropertyName))

	val, _ := src.Property(option1)
	assert.Equal(t, option1Argument, val)
	val, _ = src.Property(option2)
	assert.Equal(t, option2Argument, val)
	val, ok := src.Property(DefaultNonOptionArgsPropertyName)
	assert.True(t, ok)
	assert.Equal(t, nonOptionArg1+","+nonOptionArg2, val)

	assert.Equal(t, []string{option1, option2}, src.PropertyNames())
}

func TestCommandLineSource_SetNonOptionArgsPropertyName(t *testing.T) {
	src := FromCommandLine(parseWithNonOptionArgs(t))
	expected := nonOptionArg1 + "," + nonOptionArg2

	for i := 0; i < 2; i++ {
		src.SetNonOptionArgsPropertyName(nonDefaultNonOptionArgsPropertyName)
		assert.Equal(t, nonDefaultNonOptionArgsPropertyName, src.NonOptionArgsPropertyName())

		assert.False(t, src.ContainsProperty(DefaultNonOptionArgsPropertyName))
		_, ok := src.Property(DefaultNonOptionArgsPropertyName)
		assert.False(t, ok)

		assert.True(t, src.ContainsProperty(nonDefaultNonOptionArgsPropertyName))
		val, ok := src.Property(nonDefaultNonOptionArgsPropertyName)
		assert.True(t, ok)
		assert.Equal(t, expected, val)
	}
}

func TestCommandLineSource_MultipleValues(t *testing.T) {
	src := FromCommandLine(parseWithNonOptionArgs(t))
	vals, ok := src.OptionValues(option1)
	assert.True(t, ok)
	assert.Equal(t, []string{option1Argument}, vals)
	assert.Equal(t, []string{nonOptionArg1, nonOptionArg2}, src.NonOptionArgs())
}

func TestNewCommandLineSource_Nil(t *testing.T) {
	assert.Panics(t, func() {
		NewCommandLineSource(nil)
	})
}
