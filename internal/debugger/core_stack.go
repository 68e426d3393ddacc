package debugger

import (
	"fmt"
	"time"

	"github.com/jowharshamshiri/incode-go/internal/incodeerr"
	"github.com/jowharshamshiri/incode-go/internal/lldb"
)

// GetBacktrace formats the current thread's frames as
// "#i: <name> (PC: 0x..., SP: 0x...)" lines.
func (c *Core) GetBacktrace() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	thread, err := c.selectedThreadLocked("backtrace")
	if err != nil {
		return nil, err
	}

	n := c.binding.ThreadGetNumFrames(thread)
	lines := make([]string, 0, n)
	for i := uint32(0); i < n; i++ {
		frame := c.binding.ThreadGetFrameAtIndex(thread, i)
		if !frame.Valid() {
			lines = append(lines, fmt.Sprintf("#%d: <invalid frame>", i))
			continue
		}
		name := c.binding.FrameGetDisplayFunctionName(frame)
		if name == "" {
			name = "unknown"
		}
		pc := c.binding.FrameGetPC(frame)
		sp := c.binding.FrameGetSP(frame)
		lines = append(lines, fmt.Sprintf("#%d: %s (PC: 0x%x, SP: 0x%x)", i, name, pc, sp))
	}
	if len(lines) == 0 {
		lines = append(lines, "No stack frames available")
	}
	return lines, nil
}

func (c *Core) frameInfoLocked(frame lldb.Handle, index uint32) FrameInfo {
	name := c.binding.FrameGetDisplayFunctionName(frame)
	if name == "" {
		name = "unknown"
	}
	pc := c.binding.FrameGetPC(frame)
	sp := c.binding.FrameGetSP(frame)

	var module, file *string
	var line *uint32
	if mod := c.binding.FrameGetModule(frame); mod.Valid() {
		fs := c.binding.ModuleGetFileSpec(mod)
		modName := c.binding.FileSpecGetFilename(fs)
		module = &modName
	}
	if entry := c.binding.FrameGetLineEntry(frame); entry.Valid() {
		fs := c.binding.LineEntryGetFileSpec(entry)
		fname := c.binding.FileSpecGetFilename(fs)
		dir := c.binding.FileSpecGetDirectory(fs)
		full := fname
		if dir != "" {
			full = dir + "/" + fname
		}
		file = &full
		l := c.binding.LineEntryGetLine(entry)
		line = &l
	}

	return FrameInfo{
		Index:        index,
		FunctionName: name,
		PC:           pc,
		SP:           sp,
		Module:       module,
		File:         file,
		Line:         line,
	}
}

// SelectFrame sets the selected frame on the selected thread and
// returns its FrameInfo.
func (c *Core) SelectFrame(index uint32) (*FrameInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	thread, err := c.selectedThreadLocked("frame selection")
	if err != nil {
		return nil, err
	}

	n := c.binding.ThreadGetNumFrames(thread)
	if index >= n {
		return nil, incodeerr.NewDebuggerOpError(fmt.Sprintf("frame index %d out of range (0-%d)", index, n-1))
	}
	frame := c.binding.ThreadGetFrameAtIndex(thread, index)
	if !frame.Valid() {
		return nil, incodeerr.NewDebuggerOpError(fmt.Sprintf("invalid frame at index %d", index))
	}
	if !c.binding.ThreadSetSelectedFrame(thread, frame) {
		return nil, incodeerr.NewDebuggerOpError(fmt.Sprintf("failed to select frame %d", index))
	}
	c.currentFrameIndex = index

	info := c.frameInfoLocked(frame, index)
	return &info, nil
}

// GetFrameInfo returns FrameInfo for the given index, or the current
// frame index if index is nil.
func (c *Core) GetFrameInfo(index *uint32) (*FrameInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	thread, err := c.selectedThreadLocked("frame info")
	if err != nil {
		return nil, err
	}
	target := c.currentFrameIndex
	if index != nil {
		target = *index
	}
	frame := c.binding.ThreadGetFrameAtIndex(thread, target)
	if !frame.Valid() {
		return nil, incodeerr.NewDebuggerOpError(fmt.Sprintf("invalid frame at index %d", target))
	}
	info := c.frameInfoLocked(frame, target)
	return &info, nil
}

func (c *Core) frameAtLocked(index *uint32) (lldb.Handle, uint32, error) {
	thread, err := c.selectedThreadLocked("frame access")
	if err != nil {
		return 0, 0, err
	}
	target := c.currentFrameIndex
	if index != nil {
		target = *index
	}
	frame := c.binding.ThreadGetFrameAtIndex(thread, target)
	if !frame.Valid() {
		return 0, 0, incodeerr.NewDebuggerOpError(fmt.Sprintf("invalid frame at index %d", target))
	}
	return frame, target, nil
}

// GetFrameVariables returns the local variables (and, if
// includeArguments, the arguments) visible in the given frame,
// sourced through the native binding's value-list seam the same way
// GetRegisters reads FrameGetRegisters.
func (c *Core) GetFrameVariables(index *uint32, includeArguments bool) ([]Variable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	frame, _, err := c.frameAtLocked(index)
	if err != nil {
		return nil, err
	}

	list := c.binding.FrameGetVariables(frame, includeArguments, true)
	return c.variablesFromListLocked(list), nil
}

func (c *Core) GetFrameArguments(index *uint32) ([]Variable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	frame, _, err := c.frameAtLocked(index)
	if err != nil {
		return nil, err
	}
	list := c.binding.FrameGetVariables(frame, true, false)
	return c.variablesFromListLocked(list), nil
}

func (c *Core) variablesFromListLocked(list lldb.Handle) []Variable {
	size := c.binding.VariableListGetSize(list)
	vars := make([]Variable, 0, size)
	for i := uint32(0); i < size; i++ {
		v := c.binding.VariableListGetValueAtIndex(list, i)
		isArg := c.binding.VariableGetIsArgument(v)
		scope := "local"
		if isArg {
			scope = "argument"
		}
		vars = append(vars, Variable{
			Name:  c.binding.VariableGetName(v),
			Value: c.binding.VariableGetValue(v),
			Type:  c.binding.VariableGetTypeName(v),
			Scope: scope,
			IsArg: isArg,
		})
	}
	return vars
}

// EvaluateInFrame checks that the given frame exists and returns the
// placeholder string "<result of `expr`>". The expression itself is
// not evaluated: no native interpreter is called and no literal is
// coerced.
func (c *Core) EvaluateInFrame(index *uint32, expr string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, _, err := c.frameAtLocked(index); err != nil {
		return "", err
	}
	return fmt.Sprintf("<result of `%s`>", expr), nil
}

// --- Registers -----------------------------------------------------------

func (c *Core) GetRegisters(threadID *uint32, includeMetadata bool) (*RegisterState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentThread.Valid() {
		return nil, incodeerr.NewThreadError("no current thread selected")
	}
	frame := c.binding.ThreadGetSelectedFrame(c.currentThread)
	if !frame.Valid() {
		return nil, incodeerr.NewFrameError("no current frame available")
	}
	list := c.binding.FrameGetRegisters(frame)
	if !list.Valid() {
		return nil, incodeerr.NewFrameError("cannot access registers")
	}

	regs := make(map[string]RegisterInfo)
	n := c.binding.ValueListGetSize(list)
	for i := uint32(0); i < n; i++ {
		v := c.binding.ValueListGetValueAtIndex(list, i)
		if !v.Valid() {
			continue
		}
		name := c.binding.ValueGetName(v)
		if name == "" {
			continue
		}
		regs[name] = RegisterInfo{
			Name:         name,
			Value:        c.binding.ValueGetValueAsUnsigned(v),
			Size:         8,
			RegisterType: registerTypeFor(name),
			Format:       "hex",
			IsValid:      true,
		}
	}

	var tid *uint32
	if threadID != nil {
		tid = threadID
	}
	frameIdx := c.currentFrameIndex
	return &RegisterState{
		Registers:  regs,
		Timestamp:  time.Now(),
		ThreadID:   tid,
		FrameIndex: &frameIdx,
	}, nil
}

func registerTypeFor(name string) string {
	switch name {
	case "rip", "eip", "pc":
		return "program_counter"
	case "rsp", "esp", "rbp", "ebp", "sp":
		return "stack_pointer"
	default:
		return "general"
	}
}

func (c *Core) SetRegister(name string, value uint64, threadID *uint32) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentThread.Valid() {
		return false, incodeerr.NewThreadError("no current thread selected")
	}
	frame := c.binding.ThreadGetSelectedFrame(c.currentThread)
	if !frame.Valid() {
		return false, incodeerr.NewFrameError("no current frame available")
	}
	list := c.binding.FrameGetRegisters(frame)
	if !list.Valid() {
		return false, incodeerr.NewFrameError("cannot access registers")
	}

	n := c.binding.ValueListGetSize(list)
	for i := uint32(0); i < n; i++ {
		v := c.binding.ValueListGetValueAtIndex(list, i)
		if !v.Valid() {
			continue
		}
		if c.binding.ValueGetName(v) == name {
			ok := c.binding.ValueSetValueFromCString(v, fmt.Sprintf("0x%x", value))
			return ok, nil
		}
	}
	return false, incodeerr.NewInvalidParameterError(fmt.Sprintf("register %q not found", name))
}

func (c *Core) GetRegisterInfo(name string, threadID *uint32) (*RegisterInfo, error) {
	state, err := c.GetRegisters(threadID, true)
	if err != nil {
		return nil, err
	}
	reg, ok := state.Registers[name]
	if !ok {
		return nil, incodeerr.NewInvalidParameterError(fmt.Sprintf("register %q not found", name))
	}
	return &reg, nil
}

func (c *Core) SaveRegisterState(threadID *uint32) (*RegisterState, error) {
	return c.GetRegisters(threadID, true)
}

// --- Threads ---------------------------------------------------------------

func (c *Core) threadInfoLocked(thread lldb.Handle, index uint32) ThreadInfo {
	tid := c.binding.ThreadGetThreadID(thread)
	frameCount := c.binding.ThreadGetNumFrames(thread)

	var current *StackFrame
	if frameCount > 0 {
		frame := c.binding.ThreadGetFrameAtIndex(thread, 0)
		if frame.Valid() {
			info := c.frameInfoLocked(frame, 0)
			current = &StackFrame{
				Index:        0,
				FunctionName: info.FunctionName,
				FilePath:     info.File,
				LineNumber:   info.Line,
				Address:      info.PC,
			}
		}
	}

	name := "thread"
	state := "stopped"
	return ThreadInfo{
		ThreadID:     tid,
		Index:        index,
		Name:         &name,
		State:        state,
		FrameCount:   frameCount,
		CurrentFrame: current,
	}
}

func (c *Core) ListThreads() ([]ThreadInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentProcess.Valid() {
		return nil, incodeerr.NewProcessNotFoundError("no active process")
	}
	n := c.binding.ProcessGetNumThreads(c.currentProcess)
	out := make([]ThreadInfo, 0, n)
	for i := uint32(0); i < n; i++ {
		thread := c.binding.ProcessGetThreadAtIndex(c.currentProcess, i)
		if !thread.Valid() {
			continue
		}
		out = append(out, c.threadInfoLocked(thread, i))
	}
	return out, nil
}

func (c *Core) SelectThread(threadID uint32) (*ThreadInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentProcess.Valid() {
		return nil, incodeerr.NewProcessNotFoundError("no active process")
	}
	n := c.binding.ProcessGetNumThreads(c.currentProcess)
	for i := uint32(0); i < n; i++ {
		thread := c.binding.ProcessGetThreadAtIndex(c.currentProcess, i)
		if !thread.Valid() {
			continue
		}
		if uint32(c.binding.ThreadGetThreadID(thread)) == threadID {
			c.currentThread = thread
			c.currentThreadID = &threadID
			info := c.threadInfoLocked(thread, i)
			return &info, nil
		}
	}
	return nil, incodeerr.NewThreadError(fmt.Sprintf("thread %d not found", threadID))
}

func (c *Core) GetThreadInfo(threadID uint32) (*ThreadInfo, error) {
	threads, err := c.ListThreads()
	if err != nil {
		return nil, err
	}
	for _, t := range threads {
		if uint32(t.ThreadID) == threadID {
			return &t, nil
		}
	}
	return nil, incodeerr.NewThreadError(fmt.Sprintf("thread %d not found", threadID))
}

// SuspendThread and ResumeThread are reserved tool names with no
// native implementation, per the source's own placeholder status.
func (c *Core) SuspendThread(threadID uint32) error {
	return incodeerr.NewNotImplementedError("suspend_thread")
}

func (c *Core) ResumeThread(threadID uint32) error {
	return incodeerr.NewNotImplementedError("resume_thread")
}
