//go:build !lldb_cgo

package main

import "github.com/jowharshamshiri/incode-go/internal/lldb"

// newBinding returns the deterministic mock seam used for builds
// without a live lldb library (the default). Build with -tags
// lldb_cgo to link against the real native library instead.
func newBinding() lldb.Binding {
	return lldb.NewMockBinding()
}
