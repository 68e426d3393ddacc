package tools

import (
	"github.com/jowharshamshiri/incode-go/internal/debugger"
)

// VariableTools returns the variable/symbol/expression inspection
// tool set.
func VariableTools() []*Tool {
	return []*Tool{
		{
			Name:        "get_variables",
			Description: "Return the variables visible in the currently selected frame",
			Category:    CategoryVariables,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				vars, err := core.GetVariables()
				if err != nil {
					return FromError(err)
				}
				return JSON(vars)
			},
		},
		{
			Name:        "get_global_variables",
			Description: "Return module-scope global variables",
			Category:    CategoryVariables,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				vars, err := core.GetGlobalVariables()
				if err != nil {
					return FromError(err)
				}
				return JSON(vars)
			},
		},
		{
			Name:        "evaluate_expression",
			Description: "Evaluate an expression at target scope",
			Category:    CategoryVariables,
			Properties: Schema{
				"expression": map[string]interface{}{"type": "string"},
			},
			Required: []string{"expression"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				expr, err := requireExpression(args, "expression")
				if err != nil {
					return FromError(err)
				}
				result, err := core.EvaluateExpression(expr)
				if err != nil {
					return FromError(err)
				}
				return Success(result)
			},
		},
		{
			Name:        "get_variable_info",
			Description: "Return full detail (address, byte size) for a named variable",
			Category:    CategoryVariables,
			Properties: Schema{
				"name": map[string]interface{}{"type": "string"},
			},
			Required: []string{"name"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				name, err := requireString(args, "name")
				if err != nil {
					return FromError(err)
				}
				info, err := core.GetVariableInfo(name)
				if err != nil {
					return FromError(err)
				}
				return JSON(info)
			},
		},
		{
			Name:        "set_variable",
			Description: "Assign a value to a named register value in the current frame",
			Category:    CategoryVariables,
			Properties: Schema{
				"name":  map[string]interface{}{"type": "string"},
				"value": map[string]interface{}{"type": "string"},
			},
			Required: []string{"name", "value"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				name, err := requireString(args, "name")
				if err != nil {
					return FromError(err)
				}
				value, err := requireString(args, "value")
				if err != nil {
					return FromError(err)
				}
				ok, err := core.SetVariable(name, value)
				if err != nil {
					return FromError(err)
				}
				return JSON(map[string]interface{}{"ok": ok})
			},
		},
		{
			Name:        "lookup_symbol",
			Description: "Resolve a symbol name to its address and owning module",
			Category:    CategoryVariables,
			Properties: Schema{
				"name": map[string]interface{}{"type": "string"},
			},
			Required: []string{"name"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				name, err := requireString(args, "name")
				if err != nil {
					return FromError(err)
				}
				info, err := core.LookupSymbol(name)
				if err != nil {
					return FromError(err)
				}
				return JSON(info)
			},
		},
	}
}
