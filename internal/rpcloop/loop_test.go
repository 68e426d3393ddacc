package rpcloop

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jowharshamshiri/incode-go/internal/debugger"
	"github.com/jowharshamshiri/incode-go/internal/lldb"
	"github.com/jowharshamshiri/incode-go/internal/tools"
)

func newTestLoop(t *testing.T) *Loop {
	t.Helper()
	core, err := debugger.New(lldb.NewMockBinding(), zap.NewNop(), "")
	require.NoError(t, err)
	registry, err := tools.NewDefaultRegistry(t.TempDir())
	require.NoError(t, err)
	return New(core, registry, zap.NewNop(), "test")
}

// runLines feeds requestLines through Run and returns every response
// line, including the unsolicited startup initialize response.
func runLines(t *testing.T, loop *Loop, requestLines ...string) []map[string]interface{} {
	t.Helper()
	in := strings.NewReader(strings.Join(requestLines, "\n") + "\n")
	var out bytes.Buffer
	err := loop.Run(in, &out)
	require.NoError(t, err)

	var lines []map[string]interface{}
	for _, l := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
		if l == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(l), &m))
		lines = append(lines, m)
	}
	return lines
}

func TestRun_EmitsUnsolicitedInitializeOnStartup(t *testing.T) {
	loop := newTestLoop(t)
	lines := runLines(t, loop)
	require.Len(t, lines, 1)
	result := lines[0]["result"].(map[string]interface{})
	require.Equal(t, "2024-11-05", result["protocolVersion"])
	require.Nil(t, lines[0]["id"])
}

func TestS1_Initialize(t *testing.T) {
	loop := newTestLoop(t)
	lines := runLines(t, loop, `{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	require.Len(t, lines, 2)
	resp := lines[1]
	require.Equal(t, float64(1), resp["id"])
	result := resp["result"].(map[string]interface{})
	require.Equal(t, "2024-11-05", result["protocolVersion"])
	serverInfo := result["serverInfo"].(map[string]interface{})
	require.Equal(t, "incode", serverInfo["name"])
}

func TestS2_ListTools(t *testing.T) {
	loop := newTestLoop(t)
	lines := runLines(t, loop, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	require.Len(t, lines, 2)
	result := lines[1]["result"].(map[string]interface{})
	toolList := result["tools"].([]interface{})
	require.Equal(t, loop.registry.Len(), len(toolList))

	found := false
	for _, raw := range toolList {
		entry := raw.(map[string]interface{})
		if entry["name"] == "set_breakpoint" {
			found = true
		}
	}
	require.True(t, found, "tools/list must include set_breakpoint")
}

func TestS3_SetBreakpointByFileLine(t *testing.T) {
	loop := newTestLoop(t)
	_, err := loop.core.LaunchProcess("/bin/true", nil, nil)
	require.NoError(t, err)

	lines := runLines(t, loop, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"set_breakpoint","arguments":{"location":"main.c:42"}}}`)
	require.Len(t, lines, 2)
	result := lines[1]["result"].(map[string]interface{})
	content := result["content"].([]interface{})[0].(map[string]interface{})
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(content["text"].(string)), &payload))
	require.Equal(t, true, payload["success"])
	require.Equal(t, "main.c:42", payload["location"])
}

func TestS4_ReadMemoryOversizeRequest(t *testing.T) {
	loop := newTestLoop(t)
	_, err := loop.core.LaunchProcess("/bin/true", nil, nil)
	require.NoError(t, err)

	lines := runLines(t, loop, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"read_memory","arguments":{"address":"0x1000","size":2097152}}}`)
	require.Len(t, lines, 2)
	result := lines[1]["result"].(map[string]interface{})
	content := result["content"].([]interface{})[0].(map[string]interface{})
	text := content["text"].(string)
	require.True(t, strings.HasPrefix(text, "Error:"))
	require.Contains(t, text, "too large")
}

func TestS5_SaveThenLoadSession(t *testing.T) {
	loop := newTestLoop(t)

	createLine := `{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"name":"create_session","arguments":{}}}`
	lines := runLines(t, loop, createLine)
	require.Len(t, lines, 2)
	createText := contentText(t, lines[1])
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(createText), &created))
	sessionID := created["session_id"].(string)

	saveLine := `{"jsonrpc":"2.0","id":6,"method":"tools/call","params":{"name":"save_session","arguments":{"session_name":"t"}}}`
	lines = runLines(t, loop, saveLine)
	saveText := contentText(t, lines[1])
	var saved map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(saveText), &saved))
	path := saved["path"].(string)
	require.NotEmpty(t, path)

	cleanupLine := `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"cleanup_session","arguments":{"force_cleanup":true}}}`
	lines = runLines(t, loop, cleanupLine)
	require.NotContains(t, contentText(t, lines[1]), "Error:")

	loadLine := `{"jsonrpc":"2.0","id":8,"method":"tools/call","params":{"name":"load_session","arguments":{"file_path":"` + path + `"}}}`
	lines = runLines(t, loop, loadLine)
	loadText := contentText(t, lines[1])
	var loaded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(loadText), &loaded))
	require.Equal(t, sessionID, loaded["session_id"])
}

func TestS6_UnknownMethod(t *testing.T) {
	loop := newTestLoop(t)
	lines := runLines(t, loop, `{"jsonrpc":"2.0","id":9,"method":"frobnicate"}`)
	require.Len(t, lines, 2)
	errObj := lines[1]["error"].(map[string]interface{})
	require.Contains(t, errObj["message"], "Unknown method")
}

func TestRun_DispatcherNeverPanicsOnUnknownToolName(t *testing.T) {
	loop := newTestLoop(t)
	lines := runLines(t, loop, `{"jsonrpc":"2.0","id":10,"method":"tools/call","params":{"name":"not_a_real_tool","arguments":{}}}`)
	require.Len(t, lines, 2)
	errObj := lines[1]["error"]
	require.NotNil(t, errObj)
}

func contentText(t *testing.T, resp map[string]interface{}) string {
	t.Helper()
	result := resp["result"].(map[string]interface{})
	content := result["content"].([]interface{})[0].(map[string]interface{})
	return content["text"].(string)
}
