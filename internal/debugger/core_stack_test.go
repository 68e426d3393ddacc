package debugger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetFrameVariables_IncludesArgumentsWhenRequested(t *testing.T) {
	c := newTestCoreWithTarget(t)

	vars, err := c.GetFrameVariables(nil, true)
	require.NoError(t, err)

	var sawArg, sawLocal bool
	for _, v := range vars {
		if v.IsArg {
			sawArg = true
			require.Equal(t, "argument", v.Scope)
		} else {
			sawLocal = true
			require.Equal(t, "local", v.Scope)
		}
	}
	require.True(t, sawArg, "expected at least one argument when includeArguments=true")
	require.True(t, sawLocal, "expected at least one local variable")
}

func TestGetFrameVariables_OmitsArgumentsWhenNotRequested(t *testing.T) {
	c := newTestCoreWithTarget(t)

	vars, err := c.GetFrameVariables(nil, false)
	require.NoError(t, err)
	for _, v := range vars {
		require.False(t, v.IsArg, "argument %q leaked through with includeArguments=false", v.Name)
	}
}

func TestGetFrameArguments_OnlyReturnsArguments(t *testing.T) {
	c := newTestCoreWithTarget(t)

	vars, err := c.GetFrameArguments(nil)
	require.NoError(t, err)
	require.NotEmpty(t, vars)
	for _, v := range vars {
		require.True(t, v.IsArg)
		require.Equal(t, "argument", v.Scope)
	}
}

func TestGetVariableInfo_ResolvesKnownVariable(t *testing.T) {
	c := newTestCoreWithTarget(t)

	info, err := c.GetVariableInfo("local_var")
	require.NoError(t, err)
	require.Equal(t, "local_var", info.Name)
	require.NotNil(t, info.Address)
}

func TestGetVariableInfo_UnknownVariableIsInvalidParameter(t *testing.T) {
	c := newTestCoreWithTarget(t)

	_, err := c.GetVariableInfo("does_not_exist")
	require.Error(t, err)
}
