package tools

// NewDefaultRegistry builds the full ~65-tool catalog fixed by the
// external interface's tool name list. sessionDir is passed through to
// the session-management tools as the save/load artifact directory.
func NewDefaultRegistry(sessionDir string) (*Registry, error) {
	r := NewRegistry()
	groups := [][]*Tool{
		ProcessControlTools(),
		ExecutionControlTools(),
		BreakpointTools(),
		StackAnalysisTools(),
		MemoryInspectionTools(),
		VariableTools(),
		ThreadTools(),
		RegisterTools(),
		DebugInformationTools(),
		TargetInformationTools(),
		LldbControlTools(),
		SessionManagementTools(sessionDir),
		AdvancedAnalysisTools(),
	}
	for _, g := range groups {
		if err := r.RegisterAll(g); err != nil {
			return nil, err
		}
	}
	return r, nil
}
