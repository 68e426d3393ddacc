package lldb

import (
	"fmt"
	"os"
	"sync"
)

func writeMockCoreFile(path string) error {
	return os.WriteFile(path, []byte("MOCKCORE"), 0o644)
}

// kind discriminates the logical native object class a Handle denotes,
// standing in for the Rust mock's raw pointer-range tricks (0x100 for
// breakpoints, 0x200 for frames, and so on) with a typed registry.
type kind int

const (
	kindDebugger kind = iota
	kindTarget
	kindProcess
	kindThread
	kindFrame
	kindModule
	kindSymbol
	kindPlatform
	kindFileSpec
	kindCompileUnit
	kindValueList
	kindValue
	kindLineEntry
	kindInstructionList
	kindDirectory
	kindVariableList
	kindVariable
)

type object struct {
	kind  kind
	index uint32 // meaning depends on kind: frame/thread/module/symbol/value index
}

type breakpointRecord struct {
	id        uint32
	enabled   bool
	hitCount  uint32
	condition string
	location  string
}

// MockBinding is the deterministic seam used outside of lldb_cgo
// builds. It reproduces the same observable values the upstream
// project's #[cfg(test)] mock module returns (pid 12345, Running state
// 7, two threads with three frames each, two pre-seeded breakpoints,
// pattern-filled memory) so the rest of the system can be exercised
// without a live debugger.
type MockBinding struct {
	mu      sync.Mutex
	objects map[Handle]object
	next    uint64

	breakpoints  []*breakpointRecord
	nextBpID     uint32
}

// NewMockBinding constructs a MockBinding with its fixed breakpoint
// seed (two breakpoints, matching SBTargetGetNumBreakpoints' mock
// value of 2).
func NewMockBinding() *MockBinding {
	m := &MockBinding{
		objects: make(map[Handle]object),
	}
	m.breakpoints = []*breakpointRecord{
		{id: 1, enabled: true, hitCount: 0, location: "breakpoint_1"},
		{id: 2, enabled: true, hitCount: 0, location: "breakpoint_2"},
	}
	m.nextBpID = 3
	return m
}

func (m *MockBinding) alloc(k kind, index uint32) Handle {
	m.next++
	h := Handle(m.next)
	m.objects[h] = object{kind: k, index: index}
	return h
}

func (m *MockBinding) lookup(h Handle) (object, bool) {
	o, ok := m.objects[h]
	return o, ok
}

func (m *MockBinding) DebuggerCreate() Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindDebugger, 0)
}

func (m *MockBinding) DebuggerDestroy(Handle)              {}
func (m *MockBinding) DebuggerSetAsync(Handle, bool)        {}
func (m *MockBinding) DebuggerGetVersion() string           { return "lldb-1500.0.0 (mock)" }
func (m *MockBinding) DebuggerGetBuildConfiguration() string { return "Release (mock)" }

func (m *MockBinding) TargetCreate(debugger Handle, filename string) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindTarget, 0)
}

func (m *MockBinding) TargetLaunchSimple(target Handle, argv, envp []string, workingDir string) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindProcess, 0)
}

func (m *MockBinding) TargetGetProcess(target Handle) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindProcess, 0)
}

func (m *MockBinding) TargetGetTriple(Handle) string { return "x86_64-apple-macosx" }

func (m *MockBinding) TargetGetPlatform(target Handle) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindPlatform, 0)
}

func (m *MockBinding) TargetGetExecutable(target Handle) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindFileSpec, 0)
}

func (m *MockBinding) TargetGetNumModules(Handle) uint32 { return 1 }

func (m *MockBinding) TargetGetModuleAtIndex(target Handle, index uint32) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindModule, index)
}

func (m *MockBinding) TargetReadInstructions(target Handle, address uint64, count uint32) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindInstructionList, 0)
}

func (m *MockBinding) TargetGetNumBreakpoints(Handle) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return uint32(len(m.breakpoints))
}

func (m *MockBinding) TargetGetBreakpointAtIndex(target Handle, index uint32) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	if int(index) >= len(m.breakpoints) {
		return 0
	}
	return Handle(0x1000 + uint64(index))
}

func (m *MockBinding) findBreakpoint(h Handle) *breakpointRecord {
	if h >= 0x1000 && h < 0x1000+Handle(len(m.breakpoints)) {
		return m.breakpoints[h-0x1000]
	}
	for _, bp := range m.breakpoints {
		if Handle(bp.id) == h {
			return bp
		}
	}
	return nil
}

func (m *MockBinding) TargetFindBreakpointByID(target Handle, id uint32) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, bp := range m.breakpoints {
		if bp.id == id {
			return Handle(0x1000 + uint64(i))
		}
	}
	return 0
}

func (m *MockBinding) TargetBreakpointCreateByAddress(target Handle, address uint64) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	bp := &breakpointRecord{id: m.nextBpID, enabled: true, location: fmt.Sprintf("0x%x", address)}
	m.nextBpID++
	m.breakpoints = append(m.breakpoints, bp)
	return Handle(0x1000 + uint64(len(m.breakpoints)-1))
}

func (m *MockBinding) TargetBreakpointCreateByLocation(target Handle, file string, line uint32) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	bp := &breakpointRecord{id: m.nextBpID, enabled: true, location: fmt.Sprintf("%s:%d", file, line)}
	m.nextBpID++
	m.breakpoints = append(m.breakpoints, bp)
	return Handle(0x1000 + uint64(len(m.breakpoints)-1))
}

func (m *MockBinding) TargetWatchAddress(target Handle, address uint64, size uint32, read, write bool) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindValue, 0)
}

func (m *MockBinding) TargetGetNumCompileUnits(Handle) uint32 { return 1 }

func (m *MockBinding) TargetGetCompileUnitAtIndex(target Handle, index uint32) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindCompileUnit, index)
}

func (m *MockBinding) PlatformGetName(Handle) string         { return "host" }
func (m *MockBinding) PlatformGetOSBuild(Handle) string      { return "24.5.0" }
func (m *MockBinding) PlatformGetOSDescription(Handle) string { return "macOS 15.0" }
func (m *MockBinding) PlatformGetHostname(Handle) string     { return "localhost" }

func (m *MockBinding) PlatformGetWorkingDirectory(platform Handle) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindDirectory, 0)
}

func (m *MockBinding) ModuleGetFileSpec(module Handle) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindFileSpec, 0)
}

func (m *MockBinding) ModuleGetUUIDString(Handle) string { return "12345678-1234-5678-9ABC-DEF012345678" }
func (m *MockBinding) ModuleGetVersion(Handle) string    { return "1.0.0" }
func (m *MockBinding) ModuleGetObjectName(Handle) string { return "test_binary" }
func (m *MockBinding) ModuleGetTriple(Handle) string     { return "x86_64-apple-macosx" }
func (m *MockBinding) ModuleGetNumSymbols(Handle) uint32 { return 10 }

func (m *MockBinding) ModuleGetSymbolAtIndex(module Handle, index uint32) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindSymbol, index)
}

func (m *MockBinding) FileSpecGetFilename(Handle) string { return "main.cpp" }
func (m *MockBinding) FileSpecGetDirectory(Handle) string { return "/src" }
func (m *MockBinding) FileSpecGetPath(Handle) string     { return "/usr/bin/test" }

func (m *MockBinding) SymbolGetName(h Handle) string {
	o, ok := m.lookup(h)
	if !ok {
		return "main"
	}
	switch o.index % 3 {
	case 0:
		return "main"
	case 1:
		return "foo"
	default:
		return "bar"
	}
}

func (m *MockBinding) SymbolGetStartAddress(symbol Handle) Handle {
	o, _ := m.lookup(symbol)
	return Handle(0x1000 + uint64(o.index)*0x100)
}

func (m *MockBinding) SymbolGetEndAddress(symbol Handle) Handle {
	o, _ := m.lookup(symbol)
	return Handle(0x1100 + uint64(o.index)*0x100)
}

func (m *MockBinding) AddressGetLoadAddress(address, target Handle) uint64 {
	return uint64(address)
}

func (m *MockBinding) CompileUnitGetFileSpec(unit Handle) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindFileSpec, 0)
}
func (m *MockBinding) CompileUnitGetLanguage(Handle) uint32 { return 1 } // C++
func (m *MockBinding) CompileUnitGetProducer(Handle) string { return "clang" }

func (m *MockBinding) ProcessGetProcessID(Handle) uint64 { return 12345 }
func (m *MockBinding) ProcessGetState(Handle) ProcessState { return StateRunning }

func (m *MockBinding) ProcessAttachToProcessWithID(target Handle, pid uint64) Handle {
	if pid == 99999 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindProcess, 0)
}

func (m *MockBinding) ProcessDetach(Handle) bool   { return true }
func (m *MockBinding) ProcessKill(Handle) bool     { return true }
func (m *MockBinding) ProcessContinue(Handle) bool { return true }
func (m *MockBinding) ProcessGetNumThreads(Handle) uint32 { return 2 }

func (m *MockBinding) ProcessGetThreadAtIndex(process Handle, index uint32) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindThread, index)
}

func (m *MockBinding) ProcessGetSelectedThread(process Handle) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindThread, 0)
}

func (m *MockBinding) ProcessReadMemory(process Handle, address uint64, size uint32) []byte {
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = byte(i % 256)
	}
	return buf
}

func (m *MockBinding) ProcessWriteMemory(process Handle, address uint64, data []byte) uint32 {
	return uint32(len(data))
}

func (m *MockBinding) ProcessSendAsyncInterrupt(Handle) bool { return true }

// ProcessSaveCore writes a small placeholder core file so callers can
// exercise the existence/size check the facade performs; it carries
// no real process image.
func (m *MockBinding) ProcessSaveCore(process Handle, path string) bool {
	return writeMockCoreFile(path) == nil
}

func (m *MockBinding) ThreadGetThreadID(thread Handle) uint64 {
	o, ok := m.lookup(thread)
	if !ok {
		return 12345
	}
	return 12345 + uint64(o.index)
}

func (m *MockBinding) ThreadGetIndexID(thread Handle) uint32 {
	o, ok := m.lookup(thread)
	if !ok {
		return 0
	}
	return o.index
}

func (m *MockBinding) ThreadGetNumFrames(Handle) uint32 { return 3 }

func (m *MockBinding) ThreadGetFrameAtIndex(thread Handle, index uint32) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindFrame, index)
}

func (m *MockBinding) ThreadGetSelectedFrame(thread Handle) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindFrame, 0)
}

func (m *MockBinding) ThreadSetSelectedFrame(thread, frame Handle) bool { return true }
func (m *MockBinding) ThreadStepOver(Handle) bool                      { return true }
func (m *MockBinding) ThreadStepInto(Handle) bool                      { return true }
func (m *MockBinding) ThreadStepOut(Handle) bool                       { return true }
func (m *MockBinding) ThreadStepInstruction(Handle, bool) bool         { return true }
func (m *MockBinding) ThreadRunToAddress(Handle, uint64) bool          { return true }

func (m *MockBinding) FrameGetDisplayFunctionName(frame Handle) string {
	o, ok := m.lookup(frame)
	if !ok {
		return "unknown"
	}
	switch o.index {
	case 0:
		return "main"
	case 1:
		return "foo"
	case 2:
		return "bar"
	default:
		return "unknown"
	}
}

func (m *MockBinding) FrameGetPC(frame Handle) uint64 {
	o, ok := m.lookup(frame)
	if !ok {
		return 0x401000
	}
	return 0x401000 + uint64(o.index)*0x100
}

func (m *MockBinding) FrameGetSP(frame Handle) uint64 {
	o, ok := m.lookup(frame)
	if !ok {
		return 0x7fff0000
	}
	return 0x7fff0000 - uint64(o.index)*0x1000
}

func (m *MockBinding) FrameGetModule(frame Handle) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindModule, 0)
}

func (m *MockBinding) FrameGetLineEntry(frame Handle) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindLineEntry, 0)
}

func (m *MockBinding) FrameGetRegisters(frame Handle) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindValueList, 0)
}

// mockVariableSet is the fixed local/argument catalog every frame
// reports, matching the literal values get_frame_variables and
// get_frame_arguments used to return directly.
var mockVariableSet = []struct {
	name  string
	value string
	typ   string
	isArg bool
}{
	{"argc", "1", "int", true},
	{"local_var", "42", "int", false},
	{"buffer", "0x7fff5fbff000", "char*", false},
}

// FrameGetVariables returns a handle whose index encodes which of
// mockVariableSet's entries (arguments, locals, or both) it includes.
func (m *MockBinding) FrameGetVariables(frame Handle, arguments, locals bool) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	var mask uint32
	if arguments {
		mask |= 1
	}
	if locals {
		mask |= 2
	}
	return m.alloc(kindVariableList, mask)
}

func (m *MockBinding) variableIndicesLocked(mask uint32) []uint32 {
	var idx []uint32
	for i, v := range mockVariableSet {
		if v.isArg && mask&1 == 0 {
			continue
		}
		if !v.isArg && mask&2 == 0 {
			continue
		}
		idx = append(idx, uint32(i))
	}
	return idx
}

func (m *MockBinding) VariableListGetSize(list Handle) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.lookup(list)
	if !ok {
		return 0
	}
	return uint32(len(m.variableIndicesLocked(o.index)))
}

func (m *MockBinding) VariableListGetValueAtIndex(list Handle, index uint32) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.lookup(list)
	if !ok {
		return m.alloc(kindVariable, uint32(len(mockVariableSet)))
	}
	idxs := m.variableIndicesLocked(o.index)
	if int(index) >= len(idxs) {
		return m.alloc(kindVariable, uint32(len(mockVariableSet)))
	}
	return m.alloc(kindVariable, idxs[index])
}

func (m *MockBinding) VariableGetName(v Handle) string {
	o, ok := m.lookup(v)
	if !ok || int(o.index) >= len(mockVariableSet) {
		return ""
	}
	return mockVariableSet[o.index].name
}

func (m *MockBinding) VariableGetValue(v Handle) string {
	o, ok := m.lookup(v)
	if !ok || int(o.index) >= len(mockVariableSet) {
		return ""
	}
	return mockVariableSet[o.index].value
}

func (m *MockBinding) VariableGetTypeName(v Handle) string {
	o, ok := m.lookup(v)
	if !ok || int(o.index) >= len(mockVariableSet) {
		return ""
	}
	return mockVariableSet[o.index].typ
}

func (m *MockBinding) VariableGetIsArgument(v Handle) bool {
	o, ok := m.lookup(v)
	if !ok || int(o.index) >= len(mockVariableSet) {
		return false
	}
	return mockVariableSet[o.index].isArg
}

func (m *MockBinding) LineEntryGetFileSpec(entry Handle) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindFileSpec, 0)
}
func (m *MockBinding) LineEntryGetLine(Handle) uint32   { return 42 }
func (m *MockBinding) LineEntryGetColumn(Handle) uint32 { return 1 }

// mockRegisterSet is the fixed register catalog the Rust mock reports:
// rax/rbx/rip/rsp/rbp with the same sample values.
var mockRegisterSet = []struct {
	name     string
	value    uint64
	size     uint32
	regType  string
}{
	{"rax", 0x12345678, 8, "general"},
	{"rbx", 0x87654321, 8, "general"},
	{"rip", 0x100001234, 8, "program_counter"},
	{"rsp", 0x7fff5fbff000, 8, "stack_pointer"},
	{"rbp", 0x7fff5fbff100, 8, "stack_pointer"},
}

func (m *MockBinding) ValueListGetSize(list Handle) uint32 {
	return uint32(len(mockRegisterSet))
}

func (m *MockBinding) ValueListGetValueAtIndex(list Handle, index uint32) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.alloc(kindValue, index)
}

func (m *MockBinding) ValueGetName(value Handle) string {
	o, ok := m.lookup(value)
	if !ok || int(o.index) >= len(mockRegisterSet) {
		return "rax"
	}
	return mockRegisterSet[o.index].name
}

func (m *MockBinding) ValueGetValueAsUnsigned(value Handle) uint64 {
	o, ok := m.lookup(value)
	if !ok || int(o.index) >= len(mockRegisterSet) {
		return 0x12345678
	}
	return mockRegisterSet[o.index].value
}

func (m *MockBinding) ValueSetValueFromCString(value Handle, s string) bool { return true }

func (m *MockBinding) BreakpointGetID(bp Handle) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r := m.findBreakpoint(bp); r != nil {
		return r.id
	}
	return 0
}

func (m *MockBinding) BreakpointIsEnabled(bp Handle) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r := m.findBreakpoint(bp); r != nil {
		return r.enabled
	}
	return false
}

func (m *MockBinding) BreakpointSetEnabled(bp Handle, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r := m.findBreakpoint(bp); r != nil {
		r.enabled = enabled
	}
}

func (m *MockBinding) BreakpointSetCondition(bp Handle, condition string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r := m.findBreakpoint(bp); r != nil {
		r.condition = condition
	}
}

func (m *MockBinding) BreakpointGetHitCount(bp Handle) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r := m.findBreakpoint(bp); r != nil {
		return r.hitCount
	}
	return 0
}

func (m *MockBinding) BreakpointDelete(bp Handle) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.breakpoints {
		if Handle(0x1000+uint64(i)) == bp || Handle(r.id) == bp {
			m.breakpoints = append(m.breakpoints[:i], m.breakpoints[i+1:]...)
			return true
		}
	}
	return false
}

var _ Binding = (*MockBinding)(nil)
