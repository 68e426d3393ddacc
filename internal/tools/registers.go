package tools

import (
	"github.com/jowharshamshiri/incode-go/internal/debugger"
)

// RegisterTools returns the CPU register inspection/mutation tool
// set.
func RegisterTools() []*Tool {
	return []*Tool{
		{
			Name:        "get_registers",
			Description: "Return the register state of a thread's selected frame",
			Category:    CategoryRegisters,
			Properties: Schema{
				"thread_id":        map[string]interface{}{"type": "integer"},
				"include_metadata": map[string]interface{}{"type": "boolean"},
			},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				tid, err := optUint32(args, "thread_id")
				if err != nil {
					return FromError(err)
				}
				includeMeta := optBool(args, "include_metadata", true)
				state, err := core.GetRegisters(tid, includeMeta)
				if err != nil {
					return FromError(err)
				}
				return JSON(state)
			},
		},
		{
			Name:        "set_register",
			Description: "Set a named register's value",
			Category:    CategoryRegisters,
			Properties: Schema{
				"name":      map[string]interface{}{"type": "string"},
				"value":     map[string]interface{}{"type": "string"},
				"thread_id": map[string]interface{}{"type": "integer"},
			},
			Required: []string{"name", "value"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				name, err := requireString(args, "name")
				if err != nil {
					return FromError(err)
				}
				value, err := requireAddress(args, "value")
				if err != nil {
					return FromError(err)
				}
				tid, err := optUint32(args, "thread_id")
				if err != nil {
					return FromError(err)
				}
				ok, err := core.SetRegister(name, value, tid)
				if err != nil {
					return FromError(err)
				}
				return JSON(map[string]interface{}{"ok": ok})
			},
		},
		{
			Name:        "get_register_info",
			Description: "Return detail for a single named register",
			Category:    CategoryRegisters,
			Properties: Schema{
				"name":      map[string]interface{}{"type": "string"},
				"thread_id": map[string]interface{}{"type": "integer"},
			},
			Required: []string{"name"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				name, err := requireString(args, "name")
				if err != nil {
					return FromError(err)
				}
				tid, err := optUint32(args, "thread_id")
				if err != nil {
					return FromError(err)
				}
				info, err := core.GetRegisterInfo(name, tid)
				if err != nil {
					return FromError(err)
				}
				return JSON(info)
			},
		},
		{
			Name:        "save_register_state",
			Description: "Snapshot the full register state for later comparison",
			Category:    CategoryRegisters,
			Properties: Schema{
				"thread_id": map[string]interface{}{"type": "integer"},
			},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				tid, err := optUint32(args, "thread_id")
				if err != nil {
					return FromError(err)
				}
				state, err := core.SaveRegisterState(tid)
				if err != nil {
					return FromError(err)
				}
				return JSON(state)
			},
		},
	}
}
