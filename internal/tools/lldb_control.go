package tools

import (
	"github.com/jowharshamshiri/incode-go/internal/debugger"
)

// LldbControlTools returns the raw command execution and settings
// mutation tool set.
func LldbControlTools() []*Tool {
	return []*Tool{
		{
			Name:        "execute_command",
			Description: "Execute a raw lldb command line, rejecting dangerous prefixes",
			Category:    CategoryLldbControl,
			Properties: Schema{
				"text": map[string]interface{}{"type": "string"},
			},
			Required: []string{"text"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				text, err := requireCommand(args, "text")
				if err != nil {
					return FromError(err)
				}
				out, err := core.ExecuteCommand(text)
				if err != nil {
					return FromError(err)
				}
				return Success(out)
			},
		},
		{
			Name:        "set_lldb_settings",
			Description: "Set an lldb settings value and report the resulting value",
			Category:    CategoryLldbControl,
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
				result, err := core.SetLldbSettings(name, value)
				if err != nil {
					return FromError(err)
				}
				return JSON(result)
			},
		},
	}
}
