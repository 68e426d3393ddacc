// Package rpcloop implements the JSON-RPC request/response loop that
// sits between the MCP transport (newline-delimited JSON on standard
// streams) and the tool registry, grounded on the teacher's daemon
// request-handling loop in cmd/contextd/main.go.
package rpcloop

import (
	"bufio"
	"encoding/json"
	"io"

	"go.uber.org/zap"

	"github.com/jowharshamshiri/incode-go/internal/debugger"
	"github.com/jowharshamshiri/incode-go/internal/tools"
)

const protocolVersion = "2024-11-05"

// ServerInfo is the initialize response's serverInfo record.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// request is the envelope of one JSON-RPC line.
type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// response is the envelope of one JSON-RPC reply line. Result and
// Error are mutually exclusive; omitempty keeps whichever is unset out
// of the wire frame.
type response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id,omitempty"`
	Result  interface{} `json:"result,omitempty"`
	Error   *rpcError   `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type callParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

type contentItem struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type callResult struct {
	Content []contentItem `json:"content"`
}

// Loop owns the stdin/stdout framing and dispatches parsed requests
// to the tool registry, mutating the one shared debugger.Core exactly
// as the single-threaded cooperative model of spec.md §5 requires.
type Loop struct {
	core     *debugger.Core
	registry *tools.Registry
	logger   *zap.Logger
	version  string
}

// New constructs a Loop over the given core and registry.
func New(core *debugger.Core, registry *tools.Registry, logger *zap.Logger, version string) *Loop {
	return &Loop{core: core, registry: registry, logger: logger, version: version}
}

func (l *Loop) initializeResult() map[string]interface{} {
	return map[string]interface{}{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]interface{}{
			"tools": map[string]interface{}{"listChanged": true},
		},
		"serverInfo": ServerInfo{Name: "incode", Version: l.version},
	}
}

func (l *Loop) toolsListResult() map[string]interface{} {
	list := l.registry.List()
	out := make([]map[string]interface{}, 0, len(list))
	for _, t := range list {
		props := t.Properties
		if props == nil {
			props = tools.Schema{}
		}
		required := t.Required
		if required == nil {
			required = []string{}
		}
		out = append(out, map[string]interface{}{
			"name":        t.Name,
			"description": t.Description,
			"inputSchema": map[string]interface{}{
				"type":       "object",
				"properties": props,
				"required":   required,
			},
		})
	}
	return map[string]interface{}{"tools": out}
}

// dispatch handles initialize/tools/list/tools/call by method name,
// returning the JSON-RPC result value. A non-nil *rpcError means the
// method itself is unrecognized (a protocol error) rather than a tool
// failure (which is folded into the result's content text).
func (l *Loop) dispatch(req request) (interface{}, *rpcError) {
	switch req.Method {
	case "initialize":
		return l.initializeResult(), nil

	case "tools/list":
		return l.toolsListResult(), nil

	case "tools/call":
		var params callParams
		if len(req.Params) > 0 {
			if err := json.Unmarshal(req.Params, &params); err != nil {
				return nil, &rpcError{Code: -1, Message: "invalid tools/call params: " + err.Error()}
			}
		}
		tool, ok := l.registry.Get(params.Name)
		if !ok {
			return nil, &rpcError{Code: -1, Message: "Unknown tool: " + params.Name}
		}
		resp := tool.Execute(l.core, params.Arguments)
		return callResult{Content: []contentItem{{Type: "text", Text: resp.Content()}}}, nil

	default:
		return nil, &rpcError{Code: -1, Message: "Unknown method: " + req.Method}
	}
}

// handleLine parses and dispatches a single request line, returning
// the response to write. A parse failure yields a bodyless-id error
// object per spec.md §6.
func (l *Loop) handleLine(line []byte) response {
	var req request
	if err := json.Unmarshal(line, &req); err != nil {
		l.logger.Warn("failed to parse request line", zap.Error(err))
		return response{JSONRPC: "2.0", Error: &rpcError{Code: -1, Message: "parse error: " + err.Error()}}
	}

	result, rpcErr := l.dispatch(req)
	if rpcErr != nil {
		return response{JSONRPC: "2.0", ID: req.ID, Error: rpcErr}
	}
	return response{JSONRPC: "2.0", ID: req.ID, Result: result}
}

// Run reads newline-delimited requests from in and writes
// newline-delimited responses to out, emitting an unsolicited
// initialize response first. It returns on a clean EOF; any
// unexpected scanner error is returned to the caller.
func (l *Loop) Run(in io.Reader, out io.Writer) error {
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	if err := l.writeResponse(writer, response{
		JSONRPC: "2.0",
		Result:  l.initializeResult(),
	}); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		resp := l.handleLine(line)
		if err := l.writeResponse(writer, resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (l *Loop) writeResponse(w *bufio.Writer, resp response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		l.logger.Warn("failed to marshal response", zap.Error(err))
		data, _ = json.Marshal(response{JSONRPC: "2.0", Error: &rpcError{Code: -1, Message: "internal marshal error"}})
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	return w.Flush()
}
