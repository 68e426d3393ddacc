package tools

import (
	"github.com/jowharshamshiri/incode-go/internal/debugger"
)

// DebugInformationTools returns the source/function/line/compile-unit
// inspection tool set.
func DebugInformationTools() []*Tool {
	return []*Tool{
		{
			Name:        "get_source_code",
			Description: "Return a windowed source listing around a line",
			Category:    CategoryDebugInformation,
			Properties: Schema{
				"file":          map[string]interface{}{"type": "string"},
				"line":          map[string]interface{}{"type": "integer"},
				"context_lines": map[string]interface{}{"type": "integer"},
			},
			Required: []string{"file", "line"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				file, err := requireString(args, "file")
				if err != nil {
					return FromError(err)
				}
				line, err := requireUint32(args, "line")
				if err != nil {
					return FromError(err)
				}
				context, err := optUint32(args, "context_lines")
				if err != nil {
					return FromError(err)
				}
				ctx := uint32(5)
				if context != nil {
					ctx = *context
				}
				code, err := core.GetSourceCode(file, line, ctx)
				if err != nil {
					return FromError(err)
				}
				return JSON(code)
			},
		},
		{
			Name:        "list_functions",
			Description: "List functions, optionally filtered to one module",
			Category:    CategoryDebugInformation,
			Properties: Schema{
				"module": map[string]interface{}{"type": "string"},
			},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				module := optString(args, "module")
				fns, err := core.ListFunctions(module)
				if err != nil {
					return FromError(err)
				}
				return JSON(fns)
			},
		},
		{
			Name:        "get_line_info",
			Description: "Resolve an address to its source file and line",
			Category:    CategoryDebugInformation,
			Properties: Schema{
				"address": map[string]interface{}{"type": "string"},
			},
			Required: []string{"address"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				address, err := requireAddress(args, "address")
				if err != nil {
					return FromError(err)
				}
				loc, err := core.GetLineInfo(address)
				if err != nil {
					return FromError(err)
				}
				return JSON(loc)
			},
		},
		{
			Name:        "get_debug_info",
			Description: "Summarize the debug information available for the current target",
			Category:    CategoryDebugInformation,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				info, err := core.GetDebugInfo()
				if err != nil {
					return FromError(err)
				}
				return JSON(info)
			},
		},
	}
}
