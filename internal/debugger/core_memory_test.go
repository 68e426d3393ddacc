package debugger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jowharshamshiri/incode-go/internal/incodeerr"
	"github.com/jowharshamshiri/incode-go/internal/lldb"
)

func newTestCoreWithProcess(t *testing.T) *Core {
	t.Helper()
	c, err := New(lldb.NewMockBinding(), zap.NewNop(), "")
	require.NoError(t, err)
	_, err = c.LaunchProcess("/bin/true", nil, nil)
	require.NoError(t, err)
	return c
}

func TestReadMemory_RejectsOverCap(t *testing.T) {
	c := newTestCoreWithProcess(t)
	_, err := c.ReadMemory(0x1000, MaxReadMemoryBytes+1)
	require.Error(t, err)
	require.True(t, incodeerr.Is(err, incodeerr.DebuggerOp))
}

func TestReadMemory_AllowsExactlyAtCap(t *testing.T) {
	c := newTestCoreWithProcess(t)
	data, err := c.ReadMemory(0x1000, MaxReadMemoryBytes)
	require.NoError(t, err)
	require.Len(t, data, MaxReadMemoryBytes)
	for i, b := range data {
		require.Equal(t, byte(i%256), b)
	}
}

func TestReadMemory_RequiresActiveProcess(t *testing.T) {
	c, err := New(lldb.NewMockBinding(), zap.NewNop(), "")
	require.NoError(t, err)
	_, err = c.ReadMemory(0x1000, 16)
	require.Error(t, err)
}

func TestWriteMemory_RejectsOverCap(t *testing.T) {
	c := newTestCoreWithProcess(t)
	data := make([]byte, MaxWriteMemoryBytes+1)
	_, err := c.WriteMemory(0x1000, data)
	require.Error(t, err)
}

func TestWriteMemory_AllowsWithinCap(t *testing.T) {
	c := newTestCoreWithProcess(t)
	n, err := c.WriteMemory(0x1000, []byte{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, uint32(4), n)
}

func TestSearchMemory_RejectsOverCap(t *testing.T) {
	c := newTestCoreWithProcess(t)
	_, err := c.SearchMemory(0x1000, MaxSearchMemoryBytes+1, []byte{0x01})
	require.Error(t, err)
}

func TestSearchMemory_RejectsEmptyPattern(t *testing.T) {
	c := newTestCoreWithProcess(t)
	_, err := c.SearchMemory(0x1000, 256, nil)
	require.Error(t, err)
}

// The mock's ProcessReadMemory fills each chunk with byte(i % 256)
// relative to the chunk start, so a pattern anchored at a known
// in-chunk offset must be found at the matching absolute address.
func TestSearchMemory_FindsMatchWithinSingleChunk(t *testing.T) {
	c := newTestCoreWithProcess(t)
	pattern := []byte{10, 11, 12}
	matches, err := c.SearchMemory(0x2000, 64, pattern)
	require.NoError(t, err)
	require.Contains(t, matches, uint64(0x2000+10))
}

func TestSearchMemory_FindsMatchAcrossChunkBoundary(t *testing.T) {
	c := newTestCoreWithProcess(t)
	// searchChunkSize is 64 KiB; byte(i % 256) repeats every 256 bytes,
	// so the boundary at offset searchChunkSize always lands on i%256==0,
	// giving a deterministic run of 0,1,2,... to match across the seam.
	pattern := []byte{254, 255, 0, 1}
	length := uint64(searchChunkSize + 64)
	matches, err := c.SearchMemory(0, length, pattern)
	require.NoError(t, err)
	require.Contains(t, matches, uint64(searchChunkSize-2))
}

func TestDisassemble_RejectsOverCap(t *testing.T) {
	c := newTestCoreWithProcess(t)
	_, err := c.Disassemble(0x1000, MaxDisassembleCount+1)
	require.Error(t, err)
}

func TestDisassemble_ReturnsRequestedCount(t *testing.T) {
	c := newTestCoreWithProcess(t)
	insns, err := c.Disassemble(0x1000, 5)
	require.NoError(t, err)
	require.Len(t, insns, 5)
}
