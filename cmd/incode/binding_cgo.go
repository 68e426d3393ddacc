//go:build lldb_cgo

package main

import "github.com/jowharshamshiri/incode-go/internal/lldb"

// newBinding returns the cgo-backed binding against the real native
// library, selected by building with -tags lldb_cgo.
func newBinding() lldb.Binding {
	return lldb.NewCgoBinding()
}
