// Package lldb declares the minimal ABI the debugger facade needs from
// the native LLDB shared library, following the foreign-function
// catalog of the upstream incode project's lldb_manager module. No
// code outside this package may reach for the native library directly;
// everything above this seam talks to the Binding interface.
package lldb

// Handle is an opaque native object reference. The zero Handle is the
// sentinel "null" value every foreign constructor may return on
// failure.
type Handle uint64

// Valid reports whether h is a non-null handle.
func (h Handle) Valid() bool { return h != 0 }

// ProcessState mirrors the lldb::StateType enumeration returned by
// SBProcessGetState.
type ProcessState uint32

const (
	StateInvalid    ProcessState = 1
	StateUnloaded   ProcessState = 2
	StateConnected  ProcessState = 3
	StateAttaching  ProcessState = 4
	StateLaunching  ProcessState = 5
	StateStopped    ProcessState = 6
	StateRunning    ProcessState = 7
	StateStepping   ProcessState = 8
	StateCrashed    ProcessState = 9
	StateDetached   ProcessState = 10
	StateExited     ProcessState = 11
	StateSuspended  ProcessState = 12
)

// StateName maps a process state code to its human-readable name, per
// the facade's get_process_info contract.
func StateName(s ProcessState) string {
	switch s {
	case StateInvalid:
		return "Invalid"
	case StateUnloaded:
		return "Unloaded"
	case StateConnected:
		return "Connected"
	case StateAttaching:
		return "Attaching"
	case StateLaunching:
		return "Launching"
	case StateStopped:
		return "Stopped"
	case StateRunning:
		return "Running"
	case StateStepping:
		return "Stepping"
	case StateCrashed:
		return "Crashed"
	case StateDetached:
		return "Detached"
	case StateExited:
		return "Exited"
	case StateSuspended:
		return "Suspended"
	default:
		return "Unknown"
	}
}

// Binding is the full native surface the debugger facade depends on.
// CgoBinding (build-tagged lldb_cgo) implements it against liblldb;
// MockBinding implements it deterministically for tests and for
// environments without a native debugger.
type Binding interface {
	DebuggerCreate() Handle
	DebuggerDestroy(debugger Handle)
	DebuggerSetAsync(debugger Handle, async bool)
	DebuggerGetVersion() string
	DebuggerGetBuildConfiguration() string

	TargetCreate(debugger Handle, filename string) Handle
	TargetLaunchSimple(target Handle, argv, envp []string, workingDir string) Handle
	TargetGetProcess(target Handle) Handle
	TargetGetTriple(target Handle) string
	TargetGetPlatform(target Handle) Handle
	TargetGetExecutable(target Handle) Handle
	TargetGetNumModules(target Handle) uint32
	TargetGetModuleAtIndex(target Handle, index uint32) Handle
	TargetReadInstructions(target Handle, address uint64, count uint32) Handle
	TargetGetNumBreakpoints(target Handle) uint32
	TargetGetBreakpointAtIndex(target Handle, index uint32) Handle
	TargetFindBreakpointByID(target Handle, id uint32) Handle
	TargetBreakpointCreateByAddress(target Handle, address uint64) Handle
	TargetBreakpointCreateByLocation(target Handle, file string, line uint32) Handle
	TargetWatchAddress(target Handle, address uint64, size uint32, read, write bool) Handle
	TargetGetNumCompileUnits(target Handle) uint32
	TargetGetCompileUnitAtIndex(target Handle, index uint32) Handle

	PlatformGetName(platform Handle) string
	PlatformGetOSBuild(platform Handle) string
	PlatformGetOSDescription(platform Handle) string
	PlatformGetHostname(platform Handle) string
	PlatformGetWorkingDirectory(platform Handle) Handle

	ModuleGetFileSpec(module Handle) Handle
	ModuleGetUUIDString(module Handle) string
	ModuleGetVersion(module Handle) string
	ModuleGetObjectName(module Handle) string
	ModuleGetTriple(module Handle) string
	ModuleGetNumSymbols(module Handle) uint32
	ModuleGetSymbolAtIndex(module Handle, index uint32) Handle

	FileSpecGetFilename(fileSpec Handle) string
	FileSpecGetDirectory(fileSpec Handle) string
	FileSpecGetPath(fileSpec Handle) string

	SymbolGetName(symbol Handle) string
	SymbolGetStartAddress(symbol Handle) Handle
	SymbolGetEndAddress(symbol Handle) Handle
	AddressGetLoadAddress(address, target Handle) uint64

	CompileUnitGetFileSpec(unit Handle) Handle
	CompileUnitGetLanguage(unit Handle) uint32
	CompileUnitGetProducer(unit Handle) string

	ProcessGetProcessID(process Handle) uint64
	ProcessGetState(process Handle) ProcessState
	ProcessAttachToProcessWithID(target Handle, pid uint64) Handle
	ProcessDetach(process Handle) bool
	ProcessKill(process Handle) bool
	ProcessContinue(process Handle) bool
	ProcessGetNumThreads(process Handle) uint32
	ProcessGetThreadAtIndex(process Handle, index uint32) Handle
	ProcessGetSelectedThread(process Handle) Handle
	ProcessReadMemory(process Handle, address uint64, size uint32) []byte
	ProcessWriteMemory(process Handle, address uint64, data []byte) uint32
	ProcessSendAsyncInterrupt(process Handle) bool
	ProcessSaveCore(process Handle, path string) bool

	ThreadGetThreadID(thread Handle) uint64
	ThreadGetIndexID(thread Handle) uint32
	ThreadGetNumFrames(thread Handle) uint32
	ThreadGetFrameAtIndex(thread Handle, index uint32) Handle
	ThreadGetSelectedFrame(thread Handle) Handle
	ThreadSetSelectedFrame(thread, frame Handle) bool
	ThreadStepOver(thread Handle) bool
	ThreadStepInto(thread Handle) bool
	ThreadStepOut(thread Handle) bool
	ThreadStepInstruction(thread Handle, stepOver bool) bool
	ThreadRunToAddress(thread Handle, address uint64) bool

	FrameGetDisplayFunctionName(frame Handle) string
	FrameGetPC(frame Handle) uint64
	FrameGetSP(frame Handle) uint64
	FrameGetModule(frame Handle) Handle
	FrameGetLineEntry(frame Handle) Handle
	FrameGetRegisters(frame Handle) Handle
	FrameGetVariables(frame Handle, arguments, locals bool) Handle

	LineEntryGetFileSpec(entry Handle) Handle
	LineEntryGetLine(entry Handle) uint32
	LineEntryGetColumn(entry Handle) uint32

	ValueListGetSize(list Handle) uint32
	ValueListGetValueAtIndex(list Handle, index uint32) Handle
	ValueGetName(value Handle) string
	ValueGetValueAsUnsigned(value Handle) uint64
	ValueSetValueFromCString(value Handle, s string) bool

	VariableListGetSize(list Handle) uint32
	VariableListGetValueAtIndex(list Handle, index uint32) Handle
	VariableGetName(v Handle) string
	VariableGetValue(v Handle) string
	VariableGetTypeName(v Handle) string
	VariableGetIsArgument(v Handle) bool

	BreakpointGetID(bp Handle) uint32
	BreakpointIsEnabled(bp Handle) bool
	BreakpointSetEnabled(bp Handle, enabled bool)
	BreakpointSetCondition(bp Handle, condition string)
	BreakpointGetHitCount(bp Handle) uint32
	BreakpointDelete(bp Handle) bool
}
