package debugger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jowharshamshiri/incode-go/internal/lldb"
)

func newTestCoreWithTarget(t *testing.T) *Core {
	t.Helper()
	c, err := New(lldb.NewMockBinding(), zap.NewNop(), "")
	require.NoError(t, err)
	_, err = c.LaunchProcess("/bin/true", nil, nil)
	require.NoError(t, err)
	return c
}

func TestSetBreakpoint_RequiresActiveTarget(t *testing.T) {
	c, err := New(lldb.NewMockBinding(), zap.NewNop(), "")
	require.NoError(t, err)
	_, err = c.SetBreakpoint("0x1000")
	require.Error(t, err)
}

func TestSetBreakpoint_IDsAreMonotonicAndUnique(t *testing.T) {
	c := newTestCoreWithTarget(t)

	id1, err := c.SetBreakpoint("0x1000")
	require.NoError(t, err)
	id2, err := c.SetBreakpoint("main.c:42")
	require.NoError(t, err)
	id3, err := c.SetBreakpoint("0x2000")
	require.NoError(t, err)

	require.Less(t, id1, id2)
	require.Less(t, id2, id3)

	seen := map[uint32]bool{}
	for _, id := range []uint32{id1, id2, id3} {
		require.False(t, seen[id], "breakpoint id %d must be unique", id)
		seen[id] = true
	}
}

func TestSetBreakpoint_NewIDsDoNotCollideWithSeeded(t *testing.T) {
	c := newTestCoreWithTarget(t)
	bps, err := c.ListBreakpoints()
	require.NoError(t, err)
	require.Len(t, bps, 2)
	seeded := map[uint32]bool{bps[0].ID: true, bps[1].ID: true}

	id, err := c.SetBreakpoint("0x1000")
	require.NoError(t, err)
	require.False(t, seeded[id])
}

func TestSetBreakpoint_ByAddressParsesHex(t *testing.T) {
	c := newTestCoreWithTarget(t)
	id, err := c.SetBreakpoint("0xdeadbeef")
	require.NoError(t, err)
	require.NotZero(t, id)
}

func TestSetBreakpoint_FunctionNameNotImplemented(t *testing.T) {
	c := newTestCoreWithTarget(t)
	_, err := c.SetBreakpoint("main")
	require.Error(t, err)
}

func TestDeleteBreakpoint_RemovesIt(t *testing.T) {
	c := newTestCoreWithTarget(t)
	id, err := c.SetBreakpoint("0x1000")
	require.NoError(t, err)

	require.NoError(t, c.DeleteBreakpoint(id))

	err = c.DeleteBreakpoint(id)
	require.Error(t, err, "deleting an already-deleted breakpoint must fail")
}

func TestEnableDisableBreakpoint_RoundTrips(t *testing.T) {
	c := newTestCoreWithTarget(t)
	id, err := c.SetBreakpoint("0x1000")
	require.NoError(t, err)

	disabled, err := c.DisableBreakpoint(id)
	require.NoError(t, err)
	require.True(t, disabled)

	enabled, err := c.EnableBreakpoint(id)
	require.NoError(t, err)
	require.True(t, enabled)
}

func TestParseAddress_AcceptsHexAndDecimal(t *testing.T) {
	v, err := ParseAddress("0x2a")
	require.NoError(t, err)
	require.Equal(t, uint64(42), v)

	v, err = ParseAddress("42")
	require.NoError(t, err)
	require.Equal(t, uint64(42), v)
}

func TestParseAddress_RejectsGarbage(t *testing.T) {
	_, err := ParseAddress("not-an-address")
	require.Error(t, err)
}

func TestRunUntil_RequiresExactlyOneTarget(t *testing.T) {
	c := newTestCoreWithTarget(t)
	err := c.RunUntil(nil, nil, nil)
	require.Error(t, err)
}
