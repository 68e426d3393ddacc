package tools

import (
	"fmt"

	"github.com/jowharshamshiri/incode-go/internal/debugger"
)

// BreakpointTools returns the breakpoint and watchpoint management
// tool set.
func BreakpointTools() []*Tool {
	return []*Tool{
		{
			Name:        "set_breakpoint",
			Description: "Set a breakpoint at a hex address or file:line location",
			Category:    CategoryBreakpoints,
			Properties: Schema{
				"location": map[string]interface{}{"type": "string"},
			},
			Required: []string{"location"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				location, err := requireString(args, "location")
				if err != nil {
					return FromError(err)
				}
				id, err := core.SetBreakpoint(location)
				if err != nil {
					return FromError(err)
				}
				return JSON(map[string]interface{}{"success": true, "id": id, "location": location})
			},
		},
		{
			Name:        "set_watchpoint",
			Description: "Set a read/write watchpoint on a memory address",
			Category:    CategoryBreakpoints,
			Properties: Schema{
				"address": map[string]interface{}{"type": "string"},
				"size":    map[string]interface{}{"type": "integer"},
				"read":    map[string]interface{}{"type": "boolean"},
				"write":   map[string]interface{}{"type": "boolean"},
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
				read := optBool(args, "read", true)
				write := optBool(args, "write", true)
				id, err := core.SetWatchpoint(address, size, read, write)
				if err != nil {
					return FromError(err)
				}
				return JSON(map[string]interface{}{"id": id})
			},
		},
		{
			Name:        "list_breakpoints",
			Description: "List all breakpoints on the current target",
			Category:    CategoryBreakpoints,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				list, err := core.ListBreakpoints()
				if err != nil {
					return FromError(err)
				}
				return JSON(list)
			},
		},
		{
			Name:        "delete_breakpoint",
			Description: "Delete a breakpoint by id",
			Category:    CategoryBreakpoints,
			Properties: Schema{
				"id": map[string]interface{}{"type": "integer"},
			},
			Required: []string{"id"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				id, err := requireUint32(args, "id")
				if err != nil {
					return FromError(err)
				}
				if err := core.DeleteBreakpoint(id); err != nil {
					return FromError(err)
				}
				return Success(fmt.Sprintf("deleted breakpoint %d", id))
			},
		},
		{
			Name:        "enable_breakpoint",
			Description: "Enable a breakpoint by id",
			Category:    CategoryBreakpoints,
			Properties: Schema{
				"id": map[string]interface{}{"type": "integer"},
			},
			Required: []string{"id"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				id, err := requireUint32(args, "id")
				if err != nil {
					return FromError(err)
				}
				enabled, err := core.EnableBreakpoint(id)
				if err != nil {
					return FromError(err)
				}
				return JSON(map[string]interface{}{"id": id, "enabled": enabled})
			},
		},
		{
			Name:        "disable_breakpoint",
			Description: "Disable a breakpoint by id",
			Category:    CategoryBreakpoints,
			Properties: Schema{
				"id": map[string]interface{}{"type": "integer"},
			},
			Required: []string{"id"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				id, err := requireUint32(args, "id")
				if err != nil {
					return FromError(err)
				}
				disabled, err := core.DisableBreakpoint(id)
				if err != nil {
					return FromError(err)
				}
				return JSON(map[string]interface{}{"id": id, "disabled": disabled})
			},
		},
		{
			Name:        "set_conditional_breakpoint",
			Description: "Set a breakpoint with an attached condition expression",
			Category:    CategoryBreakpoints,
			Properties: Schema{
				"location":  map[string]interface{}{"type": "string"},
				"condition": map[string]interface{}{"type": "string"},
			},
			Required: []string{"location", "condition"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				location, err := requireString(args, "location")
				if err != nil {
					return FromError(err)
				}
				condition, err := requireExpression(args, "condition")
				if err != nil {
					return FromError(err)
				}
				id, err := core.SetConditionalBreakpoint(location, condition)
				if err != nil {
					return FromError(err)
				}
				return JSON(map[string]interface{}{"id": id})
			},
		},
		{
			Name:        "breakpoint_commands",
			Description: "Check a command list against a breakpoint (the commands are not attached by this binding)",
			Category:    CategoryBreakpoints,
			Properties: Schema{
				"id":       map[string]interface{}{"type": "integer"},
				"commands": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
			},
			Required: []string{"id", "commands"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				id, err := requireUint32(args, "id")
				if err != nil {
					return FromError(err)
				}
				commands := optStringSlice(args, "commands")
				for _, cmd := range commands {
					if err := checkDenylist(cmd, commandDenylist); err != nil {
						return FromError(err)
					}
				}
				ok, err := core.SetBreakpointCommands(id, commands)
				if err != nil {
					return FromError(err)
				}
				return JSON(map[string]interface{}{"id": id, "ok": ok})
			},
		},
	}
}
