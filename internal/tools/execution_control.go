package tools

import (
	"github.com/jowharshamshiri/incode-go/internal/debugger"
	"github.com/jowharshamshiri/incode-go/internal/incodeerr"
)

// ExecutionControlTools returns the stepping/continue/run-until/
// interrupt tool set.
func ExecutionControlTools() []*Tool {
	return []*Tool{
		{
			Name:        "continue_execution",
			Description: "Resume the current process",
			Category:    CategoryExecutionControl,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				if err := core.ContinueExecution(); err != nil {
					return FromError(err)
				}
				return Success("continued")
			},
		},
		{
			Name:        "step_over",
			Description: "Step over the current source line",
			Category:    CategoryExecutionControl,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				if err := core.StepOver(); err != nil {
					return FromError(err)
				}
				return Success("stepped over")
			},
		},
		{
			Name:        "step_into",
			Description: "Step into the current source line's call",
			Category:    CategoryExecutionControl,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				if err := core.StepInto(); err != nil {
					return FromError(err)
				}
				return Success("stepped into")
			},
		},
		{
			Name:        "step_out",
			Description: "Run until the current function returns",
			Category:    CategoryExecutionControl,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				if err := core.StepOut(); err != nil {
					return FromError(err)
				}
				return Success("stepped out")
			},
		},
		{
			Name:        "step_instruction",
			Description: "Step a single machine instruction, optionally stepping over calls",
			Category:    CategoryExecutionControl,
			Properties: Schema{
				"step_over": map[string]interface{}{"type": "boolean"},
			},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				stepOver := optBool(args, "step_over", false)
				if err := core.StepInstruction(stepOver); err != nil {
					return FromError(err)
				}
				return Success("stepped instruction")
			},
		},
		{
			Name:        "run_until",
			Description: "Run until a given address, or a file:line, is reached",
			Category:    CategoryExecutionControl,
			Properties: Schema{
				"address": map[string]interface{}{"type": "string"},
				"file":    map[string]interface{}{"type": "string"},
				"line":    map[string]interface{}{"type": "integer"},
			},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				address, err := optAddress(args, "address")
				if err != nil {
					return FromError(err)
				}
				file := optString(args, "file")
				line, err := optUint32(args, "line")
				if err != nil {
					return FromError(err)
				}
				if address == nil && (file == nil || line == nil) {
					return FromError(incodeerr.NewInvalidParameterError("either address or file and line must be provided"))
				}
				if err := core.RunUntil(address, file, line); err != nil {
					return FromError(err)
				}
				return Success("run until target reached")
			},
		},
		{
			Name:        "interrupt_execution",
			Description: "Send an asynchronous interrupt to the running process",
			Category:    CategoryExecutionControl,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				if err := core.InterruptExecution(); err != nil {
					return FromError(err)
				}
				return Success("interrupted")
			},
		},
	}
}
