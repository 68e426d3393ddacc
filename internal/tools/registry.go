package tools

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jowharshamshiri/incode-go/internal/debugger"
)

// Category groups related tools for the registry's catalog, matching
// spec.md's thirteen-category organization.
type Category string

const (
	CategoryProcessControl    Category = "process_control"
	CategoryExecutionControl  Category = "execution_control"
	CategoryBreakpoints       Category = "breakpoints"
	CategoryStackAnalysis     Category = "stack_analysis"
	CategoryMemoryInspection  Category = "memory_inspection"
	CategoryVariables         Category = "variables"
	CategoryThreads           Category = "threads"
	CategoryRegisters         Category = "registers"
	CategoryDebugInformation  Category = "debug_information"
	CategoryTargetInformation Category = "target_information"
	CategoryLldbControl       Category = "lldb_control"
	CategorySessionManagement Category = "session_management"
	CategoryAdvancedAnalysis  Category = "advanced_analysis"
)

// Schema is a JSON-schema-shaped argument description, rendered
// verbatim into tools/list's inputSchema.properties.
type Schema map[string]interface{}

// Tool is one registered MCP tool.
type Tool struct {
	Name        string
	Description string
	Category    Category
	Properties  Schema
	Required    []string
	Execute     func(core *debugger.Core, args map[string]interface{}) Response
}

// Registry is the name -> Tool map the JSON-RPC loop dispatches
// through. It is read-heavy after startup registration, so an
// RWMutex guards it the way the teacher's ToolRegistry does, even
// though the single-threaded request loop never mutates it
// concurrently with a lookup.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*Tool
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// Register adds tool to the registry. A duplicate name is a
// programmer error caught at startup.
func (r *Registry) Register(tool *Tool) error {
	if tool == nil || tool.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("tool %q already registered", tool.Name)
	}
	r.tools[tool.Name] = tool
	return nil
}

// RegisterAll registers a batch, failing atomically if any tool is
// invalid or duplicated.
func (r *Registry) RegisterAll(list []*Tool) error {
	seen := make(map[string]bool, len(list))
	for i, t := range list {
		if t == nil || t.Name == "" {
			return fmt.Errorf("tool at index %d has empty name", i)
		}
		if seen[t.Name] {
			return fmt.Errorf("tool %q duplicated in batch", t.Name)
		}
		seen[t.Name] = true
		if _, exists := r.Get(t.Name); exists {
			return fmt.Errorf("tool %q already registered", t.Name)
		}
	}
	for _, t := range list {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// Get resolves a tool name to its definition, or (nil, false) for an
// unknown name — the dispatcher totality property (spec.md §8) covers
// every name ever Register'd, not names outside the catalog.
func (r *Registry) Get(name string) (*Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// List returns all registered tools, sorted by name for stable
// tools/list output.
func (r *Registry) List() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len reports how many tools are registered.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}
