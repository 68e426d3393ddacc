// Package config provides configuration loading for incode.
//
// Configuration is loaded from environment variables with sensible
// defaults, following the same getEnv*/Validate() shape the teacher's
// contextd configuration package uses, reduced to the handful of
// settings a single-process stdio debugger control plane needs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds incode's runtime configuration. Every field has an
// environment variable source and, for the two CLI-visible ones, a
// flag override applied by cmd/incode after Load.
type Config struct {
	// LldbPath optionally names a specific lldb shared library. When
	// set it is only checked for existence (Validate, debugger.New);
	// the binding is not pointed at it.
	LldbPath string

	// Debug raises the logger to debug level when true.
	Debug bool

	// SessionDir is where save_session/load_session artifacts are
	// written by default, when a tool call omits an explicit path.
	SessionDir string

	// ReadMemoryCapBytes/WriteMemoryCapBytes carry the 1 MiB memory
	// operation caps for validation and display only; debugger.Core
	// enforces its own MaxReadMemoryBytes/MaxWriteMemoryBytes
	// constants, not these fields.
	ReadMemoryCapBytes  int
	WriteMemoryCapBytes int
}

func getEnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return parsed
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return parsed
}

// Load reads configuration from environment variables, falling back
// to defaults for anything unset.
func Load() *Config {
	return &Config{
		LldbPath:            getEnvString("INCODE_LLDB_PATH", ""),
		Debug:               getEnvBool("INCODE_DEBUG", false),
		SessionDir:          getEnvString("INCODE_SESSION_DIR", filepath.Join(os.TempDir(), "sessions")),
		ReadMemoryCapBytes:  getEnvInt("INCODE_READ_MEMORY_CAP_BYTES", 1024*1024),
		WriteMemoryCapBytes: getEnvInt("INCODE_WRITE_MEMORY_CAP_BYTES", 1024*1024),
	}
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.LldbPath != "" {
		if _, err := os.Stat(c.LldbPath); err != nil {
			return fmt.Errorf("lldb_path does not exist: %s", c.LldbPath)
		}
	}
	if c.ReadMemoryCapBytes <= 0 {
		return fmt.Errorf("read memory cap must be positive, got %d", c.ReadMemoryCapBytes)
	}
	if c.WriteMemoryCapBytes <= 0 {
		return fmt.Errorf("write memory cap must be positive, got %d", c.WriteMemoryCapBytes)
	}
	return nil
}
