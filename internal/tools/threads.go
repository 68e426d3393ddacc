package tools

import (
	"github.com/jowharshamshiri/incode-go/internal/debugger"
)

// ThreadTools returns the thread enumeration/selection tool set. Per
// spec.md's open question on thread suspend/resume, those two entries
// always return Error — the facade has no native binding for them.
func ThreadTools() []*Tool {
	return []*Tool{
		{
			Name:        "list_threads",
			Description: "List the threads of the current process",
			Category:    CategoryThreads,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				threads, err := core.ListThreads()
				if err != nil {
					return FromError(err)
				}
				return JSON(threads)
			},
		},
		{
			Name:        "select_thread",
			Description: "Select a thread by its native thread id",
			Category:    CategoryThreads,
			Properties: Schema{
				"thread_id": map[string]interface{}{"type": "integer"},
			},
			Required: []string{"thread_id"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				tid, err := requireUint32(args, "thread_id")
				if err != nil {
					return FromError(err)
				}
				info, err := core.SelectThread(tid)
				if err != nil {
					return FromError(err)
				}
				return JSON(info)
			},
		},
		{
			Name:        "get_thread_info",
			Description: "Return detail for a thread by its native thread id",
			Category:    CategoryThreads,
			Properties: Schema{
				"thread_id": map[string]interface{}{"type": "integer"},
			},
			Required: []string{"thread_id"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				tid, err := requireUint32(args, "thread_id")
				if err != nil {
					return FromError(err)
				}
				info, err := core.GetThreadInfo(tid)
				if err != nil {
					return FromError(err)
				}
				return JSON(info)
			},
		},
		{
			Name:        "suspend_thread",
			Description: "Suspend a thread (not implemented by this binding)",
			Category:    CategoryThreads,
			Properties: Schema{
				"thread_id": map[string]interface{}{"type": "integer"},
			},
			Required: []string{"thread_id"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				tid, err := requireUint32(args, "thread_id")
				if err != nil {
					return FromError(err)
				}
				if err := core.SuspendThread(tid); err != nil {
					return FromError(err)
				}
				return Success("suspended")
			},
		},
		{
			Name:        "resume_thread",
			Description: "Resume a thread (not implemented by this binding)",
			Category:    CategoryThreads,
			Properties: Schema{
				"thread_id": map[string]interface{}{"type": "integer"},
			},
			Required: []string{"thread_id"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				tid, err := requireUint32(args, "thread_id")
				if err != nil {
					return FromError(err)
				}
				if err := core.ResumeThread(tid); err != nil {
					return FromError(err)
				}
				return Success("resumed")
			},
		},
	}
}
