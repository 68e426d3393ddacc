package tools

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jowharshamshiri/incode-go/internal/debugger"
	"github.com/jowharshamshiri/incode-go/internal/incodeerr"
)

// sessionIDOrCurrent resolves key if present, otherwise falls back to
// core's current session. Both original and spec use this: the vast
// majority of calls omit session_id and mean "the session I'm in".
func sessionIDOrCurrent(core *debugger.Core, args map[string]interface{}, key, noCurrentMsg string) (uuid.UUID, error) {
	if s := optString(args, key); s != nil {
		id, err := uuid.Parse(*s)
		if err != nil {
			return uuid.UUID{}, incodeerr.NewInvalidParameterError("invalid session_id: " + *s)
		}
		return id, nil
	}
	id, ok := core.CurrentSessionID()
	if !ok {
		return uuid.UUID{}, incodeerr.NewDebuggerOpError(noCurrentMsg)
	}
	return id, nil
}

// SessionManagementTools returns the session lifecycle tool set.
// sessionDir is where save_session writes its JSON artifact; it is
// created on first save. load_session reads whatever file_path it is
// given.
func SessionManagementTools(sessionDir string) []*Tool {
	return []*Tool{
		{
			Name:        "create_session",
			Description: "Create a new debugging session and make it current",
			Category:    CategorySessionManagement,
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				s := core.CreateSession()
				return JSON(map[string]interface{}{"session_id": s.ID.String(), "state": s.State})
			},
		},
		{
			Name:        "save_session",
			Description: "Serialize a session to its stable on-wire JSON schema and write it to disk",
			Category:    CategorySessionManagement,
			Properties: Schema{
				"session_name": map[string]interface{}{"type": "string"},
				"session_id":   map[string]interface{}{"type": "string", "description": "UUID of the session to save (optional, uses current session if not specified)"},
			},
			Required: []string{"session_name"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				name, err := requireString(args, "session_name")
				if err != nil {
					return FromError(err)
				}
				id, err := sessionIDOrCurrent(core, args, "session_id", "No current session to save")
				if err != nil {
					return FromError(err)
				}
				data, err := core.SaveSession(id)
				if err != nil {
					return FromError(err)
				}
				if err := os.MkdirAll(sessionDir, 0o755); err != nil {
					return FromError(incodeerr.WrapIo(err))
				}
				path := filepath.Join(sessionDir, name+".json")
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return FromError(incodeerr.WrapIo(err))
				}
				return JSON(map[string]interface{}{"success": true, "path": path})
			},
		},
		{
			Name:        "load_session",
			Description: "Read a previously saved session artifact from disk and install it as current",
			Category:    CategorySessionManagement,
			Properties: Schema{
				"file_path": map[string]interface{}{"type": "string"},
			},
			Required: []string{"file_path"},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				path, err := requireString(args, "file_path")
				if err != nil {
					return FromError(err)
				}
				data, err := os.ReadFile(path)
				if err != nil {
					return FromError(incodeerr.WrapIo(err))
				}
				s, err := core.LoadSession(data)
				if err != nil {
					return FromError(err)
				}
				return JSON(map[string]interface{}{"success": true, "session_id": s.ID.String(), "state": s.State})
			},
		},
		{
			Name:        "cleanup_session",
			Description: "Remove a session from the registry and clear its state if current",
			Category:    CategorySessionManagement,
			Properties: Schema{
				"session_id":    map[string]interface{}{"type": "string", "description": "UUID of the session to clean up (optional, uses current session if not specified)"},
				"force_cleanup": map[string]interface{}{"type": "boolean"},
			},
			Execute: func(core *debugger.Core, args map[string]interface{}) Response {
				id, err := sessionIDOrCurrent(core, args, "session_id", "No current session to cleanup")
				if err != nil {
					return FromError(err)
				}
				_ = optBool(args, "force_cleanup", false)
				msg, err := core.CleanupSession(id)
				if err != nil {
					return FromError(err)
				}
				return Success(msg)
			},
		},
	}
}
