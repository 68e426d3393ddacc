package tools

import (
	"fmt"

	"github.com/jowharshamshiri/incode-go/internal/debugger"
)

// MemoryInspectionTools returns the read/write/search/disassemble and
// address-space mapping tool set.
func MemoryInspectionTools() []*Tool {
	return []*Tool{
		{
			Name:        "read_memory",
			Description: "Read up to 1 MiB of memory from the current process",
			Category:    CategoryMemoryInspection,
			Properties: Schema{
				"address": map[string]interface{}{"type": "string"},
				"size":    map[string]interface{}{"type": "integer"},
			},
			Required: []string{"address", "size"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				address, err := requireAddress(args, "address")
				if err != nil {
					return FromError(err)
				}
				size, err := requireUint32(args, "size")
				if err != nil {
					return FromError(err)
				}
				data, err := core.ReadMemory(address, size)
				if err != nil {
					return FromError(err)
				}
				return JSON(map[string]interface{}{"address": address, "bytes": data})
			},
		},
		{
			Name:        "write_memory",
			Description: "Write up to 1 MiB of memory into the current process",
			Category:    CategoryMemoryInspection,
			Properties: Schema{
				"address": map[string]interface{}{"type": "string"},
				"data":    map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "integer"}},
			},
			Required: []string{"address", "data"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				address, err := requireAddress(args, "address")
				if err != nil {
					return FromError(err)
				}
				data, err := requireBytes(args, "data")
				if err != nil {
					return FromError(err)
				}
				written, err := core.WriteMemory(address, data)
				if err != nil {
					return FromError(err)
				}
				return Success(fmt.Sprintf("wrote %d bytes at 0x%x", written, address))
			},
		},
		{
			Name:        "disassemble",
			Description: "Disassemble up to 1000 instructions starting at an address",
			Category:    CategoryMemoryInspection,
			Properties: Schema{
				"address": map[string]interface{}{"type": "string"},
				"count":   map[string]interface{}{"type": "integer"},
			},
			Required: []string{"address", "count"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				address, err := requireAddress(args, "address")
				if err != nil {
					return FromError(err)
				}
				count, err := requireUint32(args, "count")
				if err != nil {
					return FromError(err)
				}
				instrs, err := core.Disassemble(address, count)
				if err != nil {
					return FromError(err)
				}
				return JSON(instrs)
			},
		},
		{
			Name:        "search_memory",
			Description: "Search a range of process memory for a byte pattern",
			Category:    CategoryMemoryInspection,
			Properties: Schema{
				"pattern": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "integer"}},
				"start":   map[string]interface{}{"type": "string"},
				"size":    map[string]interface{}{"type": "integer"},
			},
			Required: []string{"pattern"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				pattern, err := requireBytes(args, "pattern")
				if err != nil {
					return FromError(err)
				}
				start, err := optAddress(args, "start")
				if err != nil {
					return FromError(err)
				}
				startAddr := uint64(0)
				if start != nil {
					startAddr = *start
				}
				size, err := optUint32(args, "size")
				if err != nil {
					return FromError(err)
				}
				length := uint64(debugger.MaxSearchMemoryBytes)
				if size != nil {
					length = uint64(*size)
				}
				matches, err := core.SearchMemory(startAddr, length, pattern)
				if err != nil {
					return FromError(err)
				}
				return JSON(matches)
			},
		},
		{
			Name:        "get_memory_regions",
			Description: "List the mapped memory regions of the current process",
			Category:    CategoryMemoryInspection,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				regions, err := core.GetMemoryRegions()
				if err != nil {
					return FromError(err)
				}
				return JSON(regions)
			},
		},
		{
			Name:        "dump_memory",
			Description: "Read memory and write it to a file on disk",
			Category:    CategoryMemoryInspection,
			Properties: Schema{
				"address": map[string]interface{}{"type": "string"},
				"size":    map[string]interface{}{"type": "integer"},
				"path":    map[string]interface{}{"type": "string"},
			},
			Required: []string{"address", "size", "path"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				address, err := requireAddress(args, "address")
				if err != nil {
					return FromError(err)
				}
				size, err := requireUint32(args, "size")
				if err != nil {
					return FromError(err)
				}
				path, err := requireString(args, "path")
				if err != nil {
					return FromError(err)
				}
				written, err := core.DumpMemoryToFile(address, size, path)
				if err != nil {
					return FromError(err)
				}
				return Success(fmt.Sprintf("wrote %d bytes to %s", written, path))
			},
		},
		{
			Name:        "memory_map",
			Description: "Return a module-segment view of the current target's address space",
			Category:    CategoryMemoryInspection,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				m, err := core.GetMemoryMap()
				if err != nil {
					return FromError(err)
				}
				return JSON(m)
			},
		},
	}
}
