package tools

import (
	"fmt"

	"github.com/jowharshamshiri/incode-go/internal/debugger"
)

// AdvancedAnalysisTools returns the crash-analysis and core-dump tool
// set.
func AdvancedAnalysisTools() []*Tool {
	return []*Tool{
		{
			Name:        "analyze_crash",
			Description: "Synthesize a crash analysis from the current process or a core file",
			Category:    CategoryAdvancedAnalysis,
			Properties: Schema{
				"core_path": map[string]interface{}{"type": "string"},
			},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				corePath := optString(args, "core_path")
				analysis, err := core.AnalyzeCrash(corePath)
				if err != nil {
					return FromError(err)
				}
				return JSON(analysis)
			},
		},
		{
			Name:        "generate_core_dump",
			Description: "Save a core dump of the current process to disk",
			Category:    CategoryAdvancedAnalysis,
			Properties: Schema{
				"path": map[string]interface{}{"type": "string"},
			},
			Required: []string{"path"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				path, err := requireString(args, "path")
				if err != nil {
					return FromError(err)
				}
				size, err := core.GenerateCoreDump(path)
				if err != nil {
					return FromError(err)
				}
				return Success(fmt.Sprintf("core dump written to %s (%d bytes)", path, size))
			},
		},
	}
}
