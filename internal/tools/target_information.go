package tools

import (
	"github.com/jowharshamshiri/incode-go/internal/debugger"
)

// TargetInformationTools returns the target/platform/module and
// native-library-version inspection tool set.
func TargetInformationTools() []*Tool {
	return []*Tool{
		{
			Name:        "get_target_info",
			Description: "Summarize the current target's triple, architecture, and format",
			Category:    CategoryTargetInformation,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				info, err := core.GetTargetInfo()
				if err != nil {
					return FromError(err)
				}
				return JSON(info)
			},
		},
		{
			Name:        "get_platform_info",
			Description: "Summarize the current target's platform",
			Category:    CategoryTargetInformation,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				info, err := core.GetPlatformInfo()
				if err != nil {
					return FromError(err)
				}
				return JSON(info)
			},
		},
		{
			Name:        "list_modules",
			Description: "List the modules loaded into the current target",
			Category:    CategoryTargetInformation,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				modules, err := core.ListModules()
				if err != nil {
					return FromError(err)
				}
				return JSON(modules)
			},
		},
		{
			Name:        "get_lldb_version",
			Description: "Return the native debugger library's version",
			Category:    CategoryTargetInformation,
			Properties: Schema{
				"include_build_info": map[string]interface{}{"type": "boolean"},
			},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				includeBuildInfo := optBool(args, "include_build_info", false)
				return JSON(core.GetLldbVersion(includeBuildInfo))
			},
		},
	}
}
