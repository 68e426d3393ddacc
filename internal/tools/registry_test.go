package tools

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jowharshamshiri/incode-go/internal/debugger"
)

// allToolNames is the canonical ≈65-name tool catalog fixed by
// spec.md §6's naming table.
var allToolNames = []string{
	"launch_process", "attach_to_process", "detach_process", "kill_process",
	"get_process_info", "list_processes", "continue_execution", "step_over",
	"step_into", "step_out", "step_instruction", "run_until", "interrupt_execution",
	"set_breakpoint", "set_watchpoint", "list_breakpoints", "delete_breakpoint",
	"enable_breakpoint", "disable_breakpoint", "set_conditional_breakpoint",
	"breakpoint_commands", "get_backtrace", "select_frame", "get_frame_info",
	"get_frame_variables", "get_frame_arguments", "evaluate_in_frame",
	"read_memory", "write_memory", "disassemble", "search_memory",
	"get_memory_regions", "dump_memory", "memory_map", "get_variables",
	"get_global_variables", "evaluate_expression", "get_variable_info",
	"set_variable", "lookup_symbol", "list_threads", "select_thread",
	"get_thread_info", "suspend_thread", "resume_thread", "get_registers",
	"set_register", "get_register_info", "save_register_state",
	"get_source_code", "list_functions", "get_line_info", "get_debug_info",
	"get_target_info", "get_platform_info", "list_modules", "get_lldb_version",
	"set_lldb_settings", "execute_command", "create_session", "save_session",
	"load_session", "cleanup_session", "analyze_crash", "generate_core_dump",
}

func TestNewDefaultRegistry_CoversEveryCanonicalName(t *testing.T) {
	r, err := NewDefaultRegistry(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, len(allToolNames), r.Len())

	for _, name := range allToolNames {
		t.Run(name, func(t *testing.T) {
			tool, ok := r.Get(name)
			require.True(t, ok, "tool %q must be registered", name)
			require.NotNil(t, tool.Execute)
			require.NotEmpty(t, tool.Description)
		})
	}
}

func TestRegistry_UnknownNameFails(t *testing.T) {
	r, err := NewDefaultRegistry(t.TempDir())
	require.NoError(t, err)
	_, ok := r.Get("not_a_real_tool")
	require.False(t, ok)
}

func TestRegistry_DuplicateRegistrationFails(t *testing.T) {
	r := NewRegistry()
	makeTool := func() *Tool {
		return &Tool{
			Name:        "x",
			Description: "d",
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				return Success("ok")
			},
		}
	}
	require.NoError(t, r.Register(makeTool()))
	require.Error(t, r.Register(makeTool()))
	require.Equal(t, 1, r.Len())
}

func TestRegistry_RegisterAllIsAtomicOnDuplicate(t *testing.T) {
	r := NewRegistry()
	exec := func(core *debugger.Core, args map[string]interface{}) Response { return Success("ok") }
	err := r.RegisterAll([]*Tool{
		{Name: "a", Description: "d", Execute: exec},
		{Name: "a", Description: "d", Execute: exec},
	})
	require.Error(t, err)
	require.Equal(t, 0, r.Len())
}
