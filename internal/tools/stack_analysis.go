package tools

import (
	"github.com/jowharshamshiri/incode-go/internal/debugger"
)

// StackAnalysisTools returns the backtrace/frame inspection tool set.
func StackAnalysisTools() []*Tool {
	return []*Tool{
		{
			Name:        "get_backtrace",
			Description: "Return a formatted backtrace of the current thread",
			Category:    CategoryStackAnalysis,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				lines, err := core.GetBacktrace()
				if err != nil {
					return FromError(err)
				}
				return JSON(lines)
			},
		},
		{
			Name:        "select_frame",
			Description: "Select a stack frame by index on the current thread",
			Category:    CategoryStackAnalysis,
			Properties: Schema{
				"index": map[string]interface{}{"type": "integer"},
			},
			Required: []string{"index"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				index, err := requireUint32(args, "index")
				if err != nil {
					return FromError(err)
				}
				info, err := core.SelectFrame(index)
				if err != nil {
					return FromError(err)
				}
				return JSON(info)
			},
		},
		{
			Name:        "get_frame_info",
			Description: "Return detail for a frame, defaulting to the currently selected frame",
			Category:    CategoryStackAnalysis,
			Properties: Schema{
				"index": map[string]interface{}{"type": "integer"},
			},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				index, err := optUint32(args, "index")
				if err != nil {
					return FromError(err)
				}
				info, err := core.GetFrameInfo(index)
				if err != nil {
					return FromError(err)
				}
				return JSON(info)
			},
		},
		{
			Name:        "get_frame_variables",
			Description: "Return the local variables (and optionally arguments) of a frame",
			Category:    CategoryStackAnalysis,
			Properties: Schema{
				"index":             map[string]interface{}{"type": "integer"},
				"include_arguments": map[string]interface{}{"type": "boolean"},
			},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				index, err := optUint32(args, "index")
				if err != nil {
					return FromError(err)
				}
				includeArgs := optBool(args, "include_arguments", false)
				vars, err := core.GetFrameVariables(index, includeArgs)
				if err != nil {
					return FromError(err)
				}
				return JSON(vars)
			},
		},
		{
			Name:        "get_frame_arguments",
			Description: "Return only the arguments of a frame",
			Category:    CategoryStackAnalysis,
			Properties: Schema{
				"index": map[string]interface{}{"type": "integer"},
			},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				index, err := optUint32(args, "index")
				if err != nil {
					return FromError(err)
				}
				vars, err := core.GetFrameArguments(index)
				if err != nil {
					return FromError(err)
				}
				return JSON(vars)
			},
		},
		{
			Name:        "evaluate_in_frame",
			Description: "Evaluate an expression in the context of a frame",
			Category:    CategoryStackAnalysis,
			Properties: Schema{
				"index":      map[string]interface{}{"type": "integer"},
				"expression": map[string]interface{}{"type": "string"},
			},
			Required: []string{"expression"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				index, err := optUint32(args, "index")
				if err != nil {
					return FromError(err)
				}
				expr, err := requireExpression(args, "expression")
				if err != nil {
					return FromError(err)
				}
				result, err := core.EvaluateInFrame(index, expr)
				if err != nil {
					return FromError(err)
				}
				return Success(result)
			},
		},
	}
}
