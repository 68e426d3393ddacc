package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequireString_MissingIsInvalidParameter(t *testing.T) {
	_, err := requireString(map[string]interface{}{}, "name")
	require.Error(t, err)
}

func TestRequireString_WrongTypeIsInvalidParameter(t *testing.T) {
	_, err := requireString(map[string]interface{}{"name": 5}, "name")
	require.Error(t, err)
}

func TestRequireAddress_AcceptsJSONNumber(t *testing.T) {
	n, err := requireAddress(map[string]interface{}{"address": float64(4096)}, "address")
	require.NoError(t, err)
	require.Equal(t, uint64(4096), n)
}

func TestRequireAddress_AcceptsHexString(t *testing.T) {
	n, err := requireAddress(map[string]interface{}{"address": "0x1000"}, "address")
	require.NoError(t, err)
	require.Equal(t, uint64(0x1000), n)
}

func TestRequireAddress_AcceptsDecimalString(t *testing.T) {
	n, err := requireAddress(map[string]interface{}{"address": "4096"}, "address")
	require.NoError(t, err)
	require.Equal(t, uint64(4096), n)
}

func TestRequireAddress_RejectsGarbageString(t *testing.T) {
	_, err := requireAddress(map[string]interface{}{"address": "not-a-number"}, "address")
	require.Error(t, err)
}

func TestRequireAddress_MissingIsError(t *testing.T) {
	_, err := requireAddress(map[string]interface{}{}, "address")
	require.Error(t, err)
}

func TestOptAddress_MissingReturnsNil(t *testing.T) {
	n, err := optAddress(map[string]interface{}{}, "address")
	require.NoError(t, err)
	require.Nil(t, n)
}

func TestOptAddress_PropagatesParseError(t *testing.T) {
	_, err := optAddress(map[string]interface{}{"address": "nope"}, "address")
	require.Error(t, err)
}

func TestCheckDenylist_RejectsDangerousExpressionTokens(t *testing.T) {
	dangerous := []string{
		`system("rm -rf /")`,
		"exec(\"/bin/sh\")",
		"fork()",
		"kill(pid, 9)",
		"delete ptr",
		"free(ptr)",
		"malloc(16)",
		"memcpy(dst, src, 8)",
		"strcpy(a, b)",
		"exit(1)",
		"_exit(1)",
		"remove(\"/tmp/x\")",
	}
	for _, expr := range dangerous {
		t.Run(expr, func(t *testing.T) {
			err := checkDenylist(expr, expressionDenylist)
			require.Error(t, err)
		})
	}
}

func TestCheckDenylist_AllowsOrdinaryExpression(t *testing.T) {
	err := checkDenylist("x + y * 2", expressionDenylist)
	require.NoError(t, err)
}

func TestCheckDenylist_IsCaseInsensitive(t *testing.T) {
	err := checkDenylist(`SYSTEM("ls")`, expressionDenylist)
	require.Error(t, err)
}

func TestCheckDenylist_CommandDenylistRejectsLifecycleCommands(t *testing.T) {
	dangerous := []string{
		"process kill",
		"process detach",
		"quit",
		"target delete",
		"settings clear",
		"platform disconnect",
		"gdb-remote 1234",
	}
	for _, cmd := range dangerous {
		t.Run(cmd, func(t *testing.T) {
			err := checkDenylist(cmd, commandDenylist)
			require.Error(t, err)
		})
	}
}

func TestRequireExpression_RejectsDenylistedExpression(t *testing.T) {
	_, err := requireExpression(map[string]interface{}{"expression": `system("x")`}, "expression")
	require.Error(t, err)
}

func TestRequireExpression_AllowsSafeExpression(t *testing.T) {
	s, err := requireExpression(map[string]interface{}{"expression": "a + b"}, "expression")
	require.NoError(t, err)
	require.Equal(t, "a + b", s)
}

func TestRequireCommand_RejectsDenylistedCommand(t *testing.T) {
	_, err := requireCommand(map[string]interface{}{"text": "process kill"}, "text")
	require.Error(t, err)
}

func TestRequireCommand_AllowsSafeCommand(t *testing.T) {
	s, err := requireCommand(map[string]interface{}{"text": "bt"}, "text")
	require.NoError(t, err)
	require.Equal(t, "bt", s)
}

func TestRequireBytes_ParsesNumberArray(t *testing.T) {
	b, err := requireBytes(map[string]interface{}{"data": []interface{}{float64(1), float64(2), float64(255)}}, "data")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 255}, b)
}

func TestRequireBytes_RejectsNonArray(t *testing.T) {
	_, err := requireBytes(map[string]interface{}{"data": "not an array"}, "data")
	require.Error(t, err)
}

func TestOptStringSlice_FiltersNonStringEntries(t *testing.T) {
	out := optStringSlice(map[string]interface{}{"list": []interface{}{"a", 5, "b"}}, "list")
	require.Equal(t, []string{"a", "b"}, out)
}
