package debugger

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jowharshamshiri/incode-go/internal/incodeerr"
	"github.com/jowharshamshiri/incode-go/internal/lldb"
	"github.com/jowharshamshiri/incode-go/internal/session"
)

const (
	// MaxReadMemoryBytes is the 1 MiB cap on a single read_memory call.
	MaxReadMemoryBytes = 1024 * 1024
	// MaxWriteMemoryBytes is the 1 MiB cap on a single write_memory call.
	MaxWriteMemoryBytes = 1024 * 1024
	// MaxSearchMemoryBytes is the 100 MiB cap on a single search_memory call.
	MaxSearchMemoryBytes = 100 * 1024 * 1024
	// MaxDisassembleCount is the instruction-count cap on disassemble.
	MaxDisassembleCount = 1000

	searchChunkSize = 64 * 1024
)

// Core is the debugger facade: it owns the one native debugger handle,
// the optional current target/process/thread and current frame index,
// and the session registry, and exposes the ~60 safe operations tools
// call into. It is guarded by a mutex rather than Rust's
// Arc<Mutex<_>>, matching the single-threaded-at-a-time access pattern
// the JSON-RPC loop guarantees.
type Core struct {
	mu sync.Mutex

	binding  lldb.Binding
	logger   *zap.Logger
	debugger lldb.Handle

	currentTarget     lldb.Handle
	currentProcess    lldb.Handle
	currentThread     lldb.Handle
	currentThreadID   *uint32
	currentFrameIndex uint32
	targetPath        *string

	sessions       *session.Registry
	currentSession *uuid.UUID
}

// New constructs a Core. If path is non-empty, it must name an
// existing file; failure to find it, or a null handle from the native
// debugger constructor, is a DebuggerInit error. The native library is
// set to synchronous mode.
func New(binding lldb.Binding, logger *zap.Logger, path string) (*Core, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, incodeerr.NewDebuggerInitError(fmt.Sprintf("lldb path does not exist: %s", path))
		}
	}

	h := binding.DebuggerCreate()
	if !h.Valid() {
		return nil, incodeerr.NewDebuggerInitError("failed to create native debugger instance")
	}
	binding.DebuggerSetAsync(h, false)

	return &Core{
		binding:  binding,
		logger:   logger,
		debugger: h,
		sessions: session.NewRegistry(),
	}, nil
}

// Cleanup destroys the debugger instance and clears the session
// registry. Safe to call exactly once; subsequent calls are no-ops.
func (c *Core) Cleanup() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.debugger.Valid() {
		return nil
	}
	c.binding.DebuggerDestroy(c.debugger)
	c.debugger = 0
	c.currentTarget = 0
	c.currentProcess = 0
	c.currentThread = 0
	c.currentThreadID = nil
	c.currentFrameIndex = 0
	c.sessions = session.NewRegistry()
	return nil
}

// --- Session management -----------------------------------------------

// CreateSession allocates a new DebuggingSession and makes it current.
func (c *Core) CreateSession() *session.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.sessions.Create()
	id := s.ID
	c.currentSession = &id
	return s
}

// CurrentSessionID returns the id of the current session, or false if
// no session has been created or loaded yet.
func (c *Core) CurrentSessionID() (uuid.UUID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentSession == nil {
		return uuid.UUID{}, false
	}
	return *c.currentSession, true
}

func (c *Core) GetSession(id uuid.UUID) (*session.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessions.Get(id)
}

func (c *Core) UpdateSessionState(id uuid.UUID, state session.State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessions.UpdateState(id, state)
}

// SaveSession serializes the session to the stable on-wire schema,
// first syncing its snapshot fields from current facade state.
func (c *Core) SaveSession(id uuid.UUID) ([]byte, error) {
	c.mu.Lock()
	s, err := c.sessions.Get(id)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	s.TargetPath = c.targetPath
	if c.currentProcess.Valid() {
		pid := c.binding.ProcessGetProcessID(c.currentProcess)
		s.ProcessID = &pid
	}
	s.CurrentThreadID = c.currentThreadID
	s.CurrentFrameIndex = c.currentFrameIndex
	s.HasTarget = c.currentTarget.Valid()
	s.HasProcess = c.currentProcess.Valid()
	s.HasThread = c.currentThread.Valid()
	c.mu.Unlock()

	return c.sessions.Save(id)
}

// LoadSession parses a saved document and installs it as current.
func (c *Core) LoadSession(data []byte) (*session.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, err := c.sessions.Load(data)
	if err != nil {
		return nil, err
	}
	id := s.ID
	c.currentSession = &id
	c.targetPath = s.TargetPath
	c.currentFrameIndex = s.CurrentFrameIndex
	c.currentThreadID = s.CurrentThreadID
	return s, nil
}

// CleanupSession removes a session from the registry and, if it was
// current, clears the current target/process/thread/frame state.
func (c *Core) CleanupSession(id uuid.UUID) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.sessions.Cleanup(id); err != nil {
		return "", err
	}
	if c.currentSession != nil && *c.currentSession == id {
		c.currentSession = nil
		c.currentTarget = 0
		c.currentProcess = 0
		c.currentThread = 0
		c.currentThreadID = nil
		c.currentFrameIndex = 0
	}
	return fmt.Sprintf("session %s cleaned up", id), nil
}

// --- Process control ---------------------------------------------------

// LaunchProcess creates a target for path, launches it with argv/env,
// and makes the resulting process current.
func (c *Core) LaunchProcess(path string, argv, env []string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := os.Stat(path); err != nil {
		return 0, incodeerr.NewProcessNotFoundError(fmt.Sprintf("executable not found: %s", path))
	}

	target := c.binding.TargetCreate(c.debugger, path)
	if !target.Valid() {
		return 0, incodeerr.NewDebuggerOpError("failed to create target")
	}

	fullArgv := append([]string{path}, argv...)
	process := c.binding.TargetLaunchSimple(target, fullArgv, env, "")
	if !process.Valid() {
		return 0, incodeerr.NewDebuggerOpError(fmt.Sprintf("failed to launch process: %s", path))
	}

	c.currentTarget = target
	c.currentProcess = process
	c.targetPath = &path

	if c.currentSession != nil {
		_ = c.sessions.UpdateState(*c.currentSession, session.Running)
	}

	pid := c.binding.ProcessGetProcessID(process)
	return pid, nil
}

// AttachToProcess attaches to an already-running process by pid.
func (c *Core) AttachToProcess(pid uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	target := c.binding.TargetCreate(c.debugger, "")
	if !target.Valid() {
		return incodeerr.NewDebuggerOpError("failed to create target for attach")
	}

	process := c.binding.ProcessAttachToProcessWithID(target, pid)
	if !process.Valid() {
		return incodeerr.NewProcessNotFoundError(fmt.Sprintf("process %d not found", pid))
	}

	if c.binding.ProcessGetState(process) == lldb.StateInvalid {
		return incodeerr.NewDebuggerOpError(fmt.Sprintf("attach to %d left process in invalid state", pid))
	}

	c.currentTarget = target
	c.currentProcess = process

	if c.currentSession != nil {
		_ = c.sessions.UpdateState(*c.currentSession, session.Attached)
	}
	return nil
}

func (c *Core) DetachProcess() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentProcess.Valid() {
		return incodeerr.NewDebuggerOpError("no active process to detach")
	}
	if !c.binding.ProcessDetach(c.currentProcess) {
		return incodeerr.NewDebuggerOpError("failed to detach process")
	}
	c.currentProcess = 0
	c.currentTarget = 0
	if c.currentSession != nil {
		_ = c.sessions.UpdateState(*c.currentSession, session.Created)
	}
	return nil
}

func (c *Core) KillProcess() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentProcess.Valid() {
		return incodeerr.NewDebuggerOpError("no active process to kill")
	}
	if !c.binding.ProcessKill(c.currentProcess) {
		return incodeerr.NewDebuggerOpError("failed to kill process")
	}
	c.currentProcess = 0
	c.currentTarget = 0
	if c.currentSession != nil {
		_ = c.sessions.UpdateState(*c.currentSession, session.Terminated)
	}
	return nil
}

func (c *Core) ContinueExecution() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentProcess.Valid() {
		return incodeerr.NewDebuggerOpError("no active process to continue")
	}
	if !c.binding.ProcessContinue(c.currentProcess) {
		return incodeerr.NewDebuggerOpError("failed to continue execution")
	}
	return nil
}

// ProcessInfoSnapshot is the {pid, state_name} result of GetProcessInfo.
type ProcessInfoSnapshot struct {
	PID       uint64 `json:"pid"`
	StateName string `json:"state_name"`
}

func (c *Core) GetProcessInfo() (*ProcessInfoSnapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentProcess.Valid() {
		return nil, incodeerr.NewDebuggerOpError("no active process")
	}
	pid := c.binding.ProcessGetProcessID(c.currentProcess)
	state := c.binding.ProcessGetState(c.currentProcess)
	return &ProcessInfoSnapshot{PID: pid, StateName: lldb.StateName(state)}, nil
}

// --- Stepping ------------------------------------------------------------

func (c *Core) selectedThreadLocked(op string) (lldb.Handle, error) {
	if !c.currentProcess.Valid() {
		return 0, incodeerr.NewDebuggerOpError(fmt.Sprintf("no active process for %s", op))
	}
	thread := c.binding.ProcessGetSelectedThread(c.currentProcess)
	if !thread.Valid() {
		return 0, incodeerr.NewDebuggerOpError(fmt.Sprintf("no selected thread for %s", op))
	}
	return thread, nil
}

func (c *Core) StepOver() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	thread, err := c.selectedThreadLocked("step over")
	if err != nil {
		return err
	}
	if !c.binding.ThreadStepOver(thread) {
		return incodeerr.NewDebuggerOpError("failed to step over")
	}
	return nil
}

func (c *Core) StepInto() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	thread, err := c.selectedThreadLocked("step into")
	if err != nil {
		return err
	}
	if !c.binding.ThreadStepInto(thread) {
		return incodeerr.NewDebuggerOpError("failed to step into")
	}
	return nil
}

func (c *Core) StepOut() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	thread, err := c.selectedThreadLocked("step out")
	if err != nil {
		return err
	}
	if !c.binding.ThreadStepOut(thread) {
		return incodeerr.NewDebuggerOpError("failed to step out")
	}
	return nil
}

func (c *Core) StepInstruction(stepOver bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	thread, err := c.selectedThreadLocked("instruction step")
	if err != nil {
		return err
	}
	if !c.binding.ThreadStepInstruction(thread, stepOver) {
		return incodeerr.NewDebuggerOpError("failed to step instruction")
	}
	return nil
}

// RunUntil requires exactly one of {address} or {file, line}.
func (c *Core) RunUntil(address *uint64, file *string, line *uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentProcess.Valid() {
		return incodeerr.NewDebuggerOpError("no active process for run until")
	}
	if !c.currentTarget.Valid() {
		return incodeerr.NewDebuggerOpError("no active target for run until")
	}

	switch {
	case address != nil && (file != nil || line != nil):
		return incodeerr.NewDebuggerOpError("run until takes either an address or a file and line, not both")

	case address != nil:
		thread := c.binding.ProcessGetSelectedThread(c.currentProcess)
		if !thread.Valid() {
			return incodeerr.NewDebuggerOpError("no selected thread for run until address")
		}
		if !c.binding.ThreadRunToAddress(thread, *address) {
			return incodeerr.NewDebuggerOpError(fmt.Sprintf("failed to run until address 0x%x", *address))
		}
		return nil

	case file != nil && line != nil:
		bp := c.binding.TargetBreakpointCreateByLocation(c.currentTarget, *file, *line)
		if !bp.Valid() {
			return incodeerr.NewDebuggerOpError(fmt.Sprintf("failed to create temporary breakpoint at %s:%d", *file, *line))
		}
		if !c.binding.ProcessContinue(c.currentProcess) {
			return incodeerr.NewDebuggerOpError("failed to continue to breakpoint")
		}
		// The temporary breakpoint is left installed after the hit;
		// cleanup-on-hit is an open item inherited from the source.
		return nil

	default:
		return incodeerr.NewDebuggerOpError("either address or file:line must be specified")
	}
}

func (c *Core) InterruptExecution() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentProcess.Valid() {
		return incodeerr.NewDebuggerOpError("no active process to interrupt")
	}
	if !c.binding.ProcessSendAsyncInterrupt(c.currentProcess) {
		return incodeerr.NewDebuggerOpError("failed to interrupt process execution")
	}
	return nil
}

// --- Breakpoints ---------------------------------------------------------

// ParseAddress accepts a hex ("0x..." or "0X...") or decimal string and
// returns the decoded unsigned value, or InvalidParameter.
func ParseAddress(s string) (uint64, error) {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "0x") {
		v, err := strconv.ParseUint(lower[2:], 16, 64)
		if err != nil {
			return 0, incodeerr.NewInvalidParameterError(fmt.Sprintf("invalid address: %s", s))
		}
		return v, nil
	}
	v, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return 0, incodeerr.NewInvalidParameterError(fmt.Sprintf("invalid address: %s", s))
	}
	return v, nil
}

// SetBreakpoint accepts a hex address, a file:line, or (not yet
// implemented) a bare function name, and returns the native
// breakpoint id.
func (c *Core) SetBreakpoint(location string) (uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentTarget.Valid() {
		return 0, incodeerr.NewDebuggerOpError("no active target for breakpoint")
	}

	switch {
	case strings.HasPrefix(strings.ToLower(location), "0x"):
		addr, err := ParseAddress(location)
		if err != nil {
			return 0, err
		}
		bp := c.binding.TargetBreakpointCreateByAddress(c.currentTarget, addr)
		if !bp.Valid() {
			return 0, incodeerr.NewDebuggerOpError(fmt.Sprintf("failed to create breakpoint at address %s", location))
		}
		return c.binding.BreakpointGetID(bp), nil

	case strings.Contains(location, ":"):
		parts := strings.SplitN(location, ":", 2)
		file, lineStr := parts[0], parts[1]
		line, err := strconv.ParseUint(lineStr, 10, 32)
		if err != nil {
			return 0, incodeerr.NewDebuggerOpError(fmt.Sprintf("invalid line number: %s", lineStr))
		}
		bp := c.binding.TargetBreakpointCreateByLocation(c.currentTarget, file, uint32(line))
		if !bp.Valid() {
			return 0, incodeerr.NewDebuggerOpError(fmt.Sprintf("failed to create breakpoint at %s:%d", file, line))
		}
		return c.binding.BreakpointGetID(bp), nil

	default:
		return 0, incodeerr.NewNotImplementedError("function name breakpoints")
	}
}

func (c *Core) SetWatchpoint(address uint64, size uint32, read, write bool) (uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentTarget.Valid() {
		return 0, incodeerr.NewDebuggerOpError("no active target for watchpoint")
	}
	wp := c.binding.TargetWatchAddress(c.currentTarget, address, size, read, write)
	if !wp.Valid() {
		return 0, incodeerr.NewDebuggerOpError(fmt.Sprintf("failed to create watchpoint at address 0x%x", address))
	}
	return 1, nil
}

func (c *Core) ListBreakpoints() ([]BreakpointInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentTarget.Valid() {
		return nil, incodeerr.NewDebuggerOpError("no active target for breakpoint listing")
	}
	n := c.binding.TargetGetNumBreakpoints(c.currentTarget)
	out := make([]BreakpointInfo, 0, n)
	for i := uint32(0); i < n; i++ {
		bp := c.binding.TargetGetBreakpointAtIndex(c.currentTarget, i)
		if !bp.Valid() {
			continue
		}
		out = append(out, BreakpointInfo{
			ID:       c.binding.BreakpointGetID(bp),
			Enabled:  c.binding.BreakpointIsEnabled(bp),
			HitCount: c.binding.BreakpointGetHitCount(bp),
			Location: fmt.Sprintf("breakpoint_%d", c.binding.BreakpointGetID(bp)),
		})
	}
	return out, nil
}

func (c *Core) findBreakpointByID(id uint32) (lldb.Handle, error) {
	bp := c.binding.TargetFindBreakpointByID(c.currentTarget, id)
	if !bp.Valid() {
		return 0, incodeerr.NewDebuggerOpError(fmt.Sprintf("breakpoint %d not found", id))
	}
	return bp, nil
}

func (c *Core) EnableBreakpoint(id uint32) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentTarget.Valid() {
		return false, incodeerr.NewDebuggerOpError("no active target for breakpoint enable")
	}
	bp, err := c.findBreakpointByID(id)
	if err != nil {
		return false, err
	}
	c.binding.BreakpointSetEnabled(bp, true)
	return c.binding.BreakpointIsEnabled(bp), nil
}

func (c *Core) DisableBreakpoint(id uint32) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentTarget.Valid() {
		return false, incodeerr.NewDebuggerOpError("no active target for breakpoint disable")
	}
	bp, err := c.findBreakpointByID(id)
	if err != nil {
		return false, err
	}
	c.binding.BreakpointSetEnabled(bp, false)
	return !c.binding.BreakpointIsEnabled(bp), nil
}

func (c *Core) SetConditionalBreakpoint(location, condition string) (uint32, error) {
	id, err := c.SetBreakpoint(location)
	if err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	bp, err := c.findBreakpointByID(id)
	if err != nil {
		return 0, incodeerr.NewDebuggerOpError(fmt.Sprintf("failed to find newly created breakpoint %d", id))
	}
	c.binding.BreakpointSetCondition(bp, condition)
	return id, nil
}

func (c *Core) SetBreakpointCommands(id uint32, commands []string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentTarget.Valid() {
		return false, incodeerr.NewDebuggerOpError("no active target for breakpoint commands")
	}
	if _, err := c.findBreakpointByID(id); err != nil {
		return false, err
	}
	// The command list is joined with newlines, but the joined script
	// is not attached to the breakpoint: Binding has no breakpoint
	// action-list call. Success is reported once the id is found.
	_ = strings.Join(commands, "\n")
	return true, nil
}

func (c *Core) DeleteBreakpoint(id uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentTarget.Valid() {
		return incodeerr.NewDebuggerOpError("no active target for breakpoint deletion")
	}
	n := c.binding.TargetGetNumBreakpoints(c.currentTarget)
	for i := uint32(0); i < n; i++ {
		bp := c.binding.TargetGetBreakpointAtIndex(c.currentTarget, i)
		if !bp.Valid() {
			continue
		}
		if c.binding.BreakpointGetID(bp) == id {
			if !c.binding.BreakpointDelete(bp) {
				return incodeerr.NewDebuggerOpError(fmt.Sprintf("failed to delete breakpoint %d", id))
			}
			return nil
		}
	}
	return incodeerr.NewDebuggerOpError(fmt.Sprintf("breakpoint %d not found", id))
}
