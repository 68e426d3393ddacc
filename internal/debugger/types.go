// Package debugger implements the debugger facade (Core) that wraps
// the lldb.Binding seam into a memory-safe, error-typed, testable
// surface, porting the value records and state machine of the
// upstream incode project's lldb_manager module.
package debugger

import "time"

// BreakpointInfo describes one breakpoint or watchpoint.
type BreakpointInfo struct {
	ID        uint32  `json:"id"`
	Enabled   bool    `json:"enabled"`
	HitCount  uint32  `json:"hit_count"`
	Location  string  `json:"location"`
	Condition *string `json:"condition,omitempty"`
}

// FrameInfo describes one stack frame.
type FrameInfo struct {
	Index        uint32  `json:"index"`
	FunctionName string  `json:"function_name"`
	PC           uint64  `json:"pc"`
	SP           uint64  `json:"sp"`
	Module       *string `json:"module,omitempty"`
	File         *string `json:"file,omitempty"`
	Line         *uint32 `json:"line,omitempty"`
}

// StackFrame is a lighter-weight frame summary embedded in ThreadInfo.
type StackFrame struct {
	Index        uint32  `json:"index"`
	FunctionName string  `json:"function_name"`
	FilePath     *string `json:"file_path,omitempty"`
	LineNumber   *uint32 `json:"line_number,omitempty"`
	Address      uint64  `json:"address"`
	IsInlined    bool    `json:"is_inlined"`
}

// ThreadInfo describes one thread of the current process.
type ThreadInfo struct {
	ThreadID     uint64      `json:"thread_id"`
	Index        uint32      `json:"index"`
	Name         *string     `json:"name,omitempty"`
	State        string      `json:"state"`
	StopReason   *string     `json:"stop_reason,omitempty"`
	QueueName    *string     `json:"queue_name,omitempty"`
	FrameCount   uint32      `json:"frame_count"`
	CurrentFrame *StackFrame `json:"current_frame,omitempty"`
}

// RegisterInfo describes one CPU register.
type RegisterInfo struct {
	Name         string `json:"name"`
	Value        uint64 `json:"value"`
	Size         uint32 `json:"size"`
	RegisterType string `json:"register_type"`
	Format       string `json:"format"`
	IsValid      bool   `json:"is_valid"`
}

// RegisterState is a full snapshot of registers at a moment in time.
type RegisterState struct {
	Registers  map[string]RegisterInfo `json:"registers"`
	Timestamp  time.Time               `json:"timestamp"`
	ThreadID   *uint32                 `json:"thread_id,omitempty"`
	FrameIndex *uint32                 `json:"frame_index,omitempty"`
}

// Variable is a named value snapshot from a frame or global scope.
type Variable struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Type     string  `json:"type"`
	Scope    string  `json:"scope"`
	IsArg    bool    `json:"is_argument"`
	Location *string `json:"location,omitempty"`
}

// VariableInfo is the richer detail returned by get_variable_info.
type VariableInfo struct {
	Variable
	Address  *uint64 `json:"address,omitempty"`
	ByteSize uint32  `json:"byte_size"`
}

// MemoryRegion describes one mapped region of the target's address
// space.
type MemoryRegion struct {
	StartAddress uint64  `json:"start_address"`
	EndAddress   uint64  `json:"end_address"`
	Size         uint64  `json:"size"`
	Permissions  string  `json:"permissions"`
	Name         *string `json:"name,omitempty"`
}

// MemorySegment is one entry of a detailed MemoryMap.
type MemorySegment struct {
	Name       string `json:"name"`
	VMAddress  uint64 `json:"vm_address"`
	VMSize     uint64 `json:"vm_size"`
	FileOffset uint64 `json:"file_offset"`
	FileSize   uint64 `json:"file_size"`
}

// MemoryMap is the detailed module-segment view of the address space.
type MemoryMap struct {
	TotalSegments int             `json:"total_segments"`
	TotalVMSize   uint64          `json:"total_vm_size"`
	Segments      []MemorySegment `json:"segments"`
	LoadAddress   uint64          `json:"load_address"`
	Slide         uint64          `json:"slide"`
}

// SymbolInfo is the result of a symbol lookup.
type SymbolInfo struct {
	Name         string  `json:"name"`
	Address      uint64  `json:"address"`
	Module       *string `json:"module,omitempty"`
	CompileUnit  *string `json:"compile_unit,omitempty"`
	Kind         string  `json:"kind"`
}

// ModuleInfo describes one loaded module.
type ModuleInfo struct {
	Name       string  `json:"name"`
	Path       string  `json:"path"`
	UUID       string  `json:"uuid"`
	Version    string  `json:"version"`
	Triple     string  `json:"triple"`
	NumSymbols uint32  `json:"num_symbols"`
	DebugInfo  *string `json:"debug_info,omitempty"`
}

// FunctionInfo describes one function symbol.
type FunctionInfo struct {
	Name         string `json:"name"`
	StartAddress uint64 `json:"start_address"`
	EndAddress   uint64 `json:"end_address"`
	Module       string `json:"module"`
}

// SourceLine is one line of a SourceCode listing.
type SourceLine struct {
	Number  uint32 `json:"number"`
	Text    string `json:"text"`
	Current bool   `json:"current"`
}

// SourceCode is a windowed listing around a line.
type SourceCode struct {
	File    string       `json:"file"`
	Line    uint32       `json:"line"`
	Column  uint32       `json:"column"`
	Lines   []SourceLine `json:"lines"`
}

// SourceLocation is an address-to-source mapping.
type SourceLocation struct {
	File   string `json:"file"`
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

// CompilationUnit describes one compile unit of debug info.
type CompilationUnit struct {
	FileName string `json:"file_name"`
	Language string `json:"language"`
	Producer string `json:"producer"`
}

// DebugInfo summarizes the debug information available for the
// current target.
type DebugInfo struct {
	HasDebugInfo     bool              `json:"has_debug_info"`
	CompilationUnits []CompilationUnit `json:"compilation_units"`
}

// TargetInfo summarizes the current target.
type TargetInfo struct {
	Triple           string `json:"triple"`
	Architecture     string `json:"architecture"`
	ExecutableFormat string `json:"executable_format"`
	Endianness       string `json:"endianness"`
	ExecutablePath   string `json:"executable_path"`
	NumModules       uint32 `json:"num_modules"`
}

// PlatformInfo summarizes the current platform.
type PlatformInfo struct {
	Name           string `json:"name"`
	OSDescription  string `json:"os_description"`
	OSBuild        string `json:"os_build"`
	Hostname       string `json:"hostname"`
	WorkingDir     string `json:"working_directory"`
}

// LldbVersionInfo describes the native debugger library's version.
type LldbVersionInfo struct {
	Version             string  `json:"version"`
	BuildNumber         *string `json:"build_number,omitempty"`
	APIVersion          string  `json:"api_version"`
	BuildDate           *string `json:"build_date,omitempty"`
	BuildConfiguration  *string `json:"build_configuration,omitempty"`
	Compiler            *string `json:"compiler,omitempty"`
	Platform            string  `json:"platform"`
}

// CrashAnalysis is the synthesized report from analyze_crash.
type CrashAnalysis struct {
	Backtrace       []string `json:"backtrace"`
	RegisterCount   int      `json:"register_count"`
	TopRegions      []MemoryRegion `json:"top_regions"`
	TopModules      []ModuleInfo   `json:"top_modules"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// ProcessInfo is one row of list_processes output.
type ProcessInfo struct {
	PID     uint32 `json:"pid"`
	PPID    uint32 `json:"ppid"`
	State   string `json:"state"`
	Name    string `json:"name"`
	RSSKiB  uint64 `json:"rss_kib"`
}
