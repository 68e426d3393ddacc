package tools

import (
	"fmt"
	"strings"

	"github.com/jowharshamshiri/incode-go/internal/debugger"
)

// ProcessControlTools returns the process lifecycle tool set: launch,
// attach, detach, kill, inspect, and enumerate host processes.
func ProcessControlTools() []*Tool {
	return []*Tool{
		{
			Name:        "launch_process",
			Description: "Launch an executable under the debugger and make it the current process",
			Category:    CategoryProcessControl,
			Properties: Schema{
				"path": map[string]interface{}{"type": "string", "description": "Path to the executable"},
				"args": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
				"env":  map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
			},
			Required: []string{"path"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				path, err := requireString(args, "path")
				if err != nil {
					return FromError(err)
				}
				argv := optStringSlice(args, "args")
				env := optStringSlice(args, "env")
				pid, err := core.LaunchProcess(path, argv, env)
				if err != nil {
					return FromError(err)
				}
				return Success(fmt.Sprintf("launched pid %d", pid))
			},
		},
		{
			Name:        "attach_to_process",
			Description: "Attach to an already-running process by pid",
			Category:    CategoryProcessControl,
			Properties: Schema{
				"pid": map[string]interface{}{"type": "integer"},
			},
			Required: []string{"pid"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				pid, err := requireAddress(args, "pid")
				if err != nil {
					return FromError(err)
				}
				if err := core.AttachToProcess(pid); err != nil {
					return FromError(err)
				}
				return Success(fmt.Sprintf("attached to pid %d", pid))
			},
		},
		{
			Name:        "detach_process",
			Description: "Detach from the current process, leaving it running",
			Category:    CategoryProcessControl,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				if err := core.DetachProcess(); err != nil {
					return FromError(err)
				}
				return Success("detached")
			},
		},
		{
			Name:        "kill_process",
			Description: "Terminate the current process",
			Category:    CategoryProcessControl,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				if err := core.KillProcess(); err != nil {
					return FromError(err)
				}
				return Success("killed")
			},
		},
		{
			Name:        "get_process_info",
			Description: "Return the pid and state name of the current process",
			Category:    CategoryProcessControl,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				info, err := core.GetProcessInfo()
				if err != nil {
					return FromError(err)
				}
				return JSON(info)
			},
		},
		{
			Name:        "list_processes",
			Description: "List processes visible to the host operating system",
			Category:    CategoryProcessControl,
			Properties: Schema{
				"filter":         map[string]interface{}{"type": "string"},
				"include_system": map[string]interface{}{"type": "boolean"},
			},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				procs, err := core.ListProcesses()
				if err != nil {
					return FromError(err)
				}
				includeSystem := optBool(args, "include_system", false)
				filter := optString(args, "filter")
				out := procs[:0:0]
				for _, p := range procs {
					if !includeSystem && (p.PID == 1 || p.PPID == 0) {
						continue
					}
					if filter != nil && *filter != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(*filter)) {
						continue
					}
					out = append(out, p)
				}
				return JSON(out)
			},
		},
	}
}
