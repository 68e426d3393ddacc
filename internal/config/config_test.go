package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("INCODE_LLDB_PATH", "")
	t.Setenv("INCODE_DEBUG", "")
	t.Setenv("INCODE_SESSION_DIR", "")
	t.Setenv("INCODE_READ_MEMORY_CAP_BYTES", "")
	t.Setenv("INCODE_WRITE_MEMORY_CAP_BYTES", "")

	cfg := Load()
	require.Equal(t, "", cfg.LldbPath)
	require.False(t, cfg.Debug)
	require.Equal(t, 1024*1024, cfg.ReadMemoryCapBytes)
	require.Equal(t, 1024*1024, cfg.WriteMemoryCapBytes)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INCODE_DEBUG", "true")
	t.Setenv("INCODE_READ_MEMORY_CAP_BYTES", "2048")

	cfg := Load()
	require.True(t, cfg.Debug)
	require.Equal(t, 2048, cfg.ReadMemoryCapBytes)
}

func TestValidate_RejectsMissingLldbPath(t *testing.T) {
	cfg := Load()
	cfg.LldbPath = "/does/not/exist/liblldb.so"
	require.Error(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveCaps(t *testing.T) {
	cfg := Load()
	cfg.ReadMemoryCapBytes = 0
	require.Error(t, cfg.Validate())
}
