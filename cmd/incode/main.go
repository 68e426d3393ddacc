// Command incode is an MCP server that exposes an in-process LLDB
// debugger as a catalog of JSON-RPC tools on standard input/output.
//
// Usage:
//
//	incode [--debug] [--lldb-path PATH]
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jowharshamshiri/incode-go/internal/config"
	"github.com/jowharshamshiri/incode-go/internal/debugger"
	"github.com/jowharshamshiri/incode-go/internal/lldb"
	"github.com/jowharshamshiri/incode-go/internal/rpcloop"
	"github.com/jowharshamshiri/incode-go/internal/tools"
)

var (
	version  = "dev"
	debug    bool
	lldbPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "incode",
	Short:   "MCP server exposing LLDB as a catalog of JSON-RPC debugging tools",
	Version: version,
	RunE:    run,
}

func init() {
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug-level logging")
	rootCmd.Flags().StringVar(&lldbPath, "lldb-path", "", "path to a specific lldb shared library")
}

// run wires Config -> zap logger -> lldb binding -> debugger.Core ->
// tool registry -> rpcloop.Loop and runs the loop to completion on
// stdin/stdout.
func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if lldbPath != "" {
		cfg.LldbPath = lldbPath
	}
	if debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to construct logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	binding := newBinding()

	core, err := debugger.New(binding, logger, cfg.LldbPath)
	if err != nil {
		log.Fatalf("debugger initialization failed: %v", err)
	}
	defer func() {
		if err := core.Cleanup(); err != nil {
			logger.Warn("cleanup failed", zap.Error(err))
		}
	}()

	registry, err := tools.NewDefaultRegistry(cfg.SessionDir)
	if err != nil {
		return fmt.Errorf("failed to build tool registry: %w", err)
	}

	logger.Info("starting incode",
		zap.String("version", version),
		zap.Int("tool_count", registry.Len()),
		zap.String("session_dir", cfg.SessionDir),
	)

	loop := rpcloop.New(core, registry, logger, version)
	return loop.Run(os.Stdin, os.Stdout)
}

// newLogger builds a stderr-only zap logger: stdout is reserved
// exclusively for JSON-RPC response frames.
func newLogger(debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
