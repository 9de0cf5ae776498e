package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	require := require.New(t)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(flags)
	require.NoError(flags.Parse(nil))

	c, err := New(flags, "")
	require.NoError(err)

	require.Equal(2, c.GetInt("rows"))
	require.Equal(2, c.GetInt("cols"))
	require.Equal(0, c.GetInt("aod-rows"))
	require.Equal(0, c.GetInt("extra-stages"))
	require.Equal("none", c.GetString("objective"))
	require.False(c.GetBool("debug"))
	require.Equal("", c.GetString("circuit"))
}

func TestConfig_FlagsOverrideDefaults(t *testing.T) {
	require := require.New(t)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(flags)
	require.NoError(flags.Parse([]string{
		"--rows=3", "--cols=4", "--extra-stages=2", "--objective=transfers", "--debug",
	}))

	c, err := New(flags, "")
	require.NoError(err)

	require.Equal(3, c.GetInt("rows"))
	require.Equal(4, c.GetInt("cols"))
	require.Equal(2, c.GetInt("extra-stages"))
	require.Equal("transfers", c.GetString("objective"))
	require.True(c.GetBool("debug"))
}
