// Package tools implements the ~65 MCP tools exposed by incode: a
// name-keyed registry of thin adapters that coerce JSON-RPC arguments,
// call into debugger.Core, and translate the result (or error) into a
// ToolResponse, grounded on the teacher's internal/mcp/tool_registry.go
// registration pattern and the original incode project's tools/*.rs
// per-category split.
package tools

import "encoding/json"

// Response is the tagged-union result every tool produces: exactly
// one of Text (for Success/Error) or Value (for the Json variant) is
// meaningful, selected by Kind.
type Response struct {
	Kind  Kind
	Text  string
	Value interface{}
}

// Kind discriminates the ToolResponse variant.
type Kind int

const (
	KindSuccess Kind = iota
	KindError
	KindJSON
)

// Success builds a Success(text) response.
func Success(text string) Response { return Response{Kind: KindSuccess, Text: text} }

// Errorf builds an Error(text) response. This is a tool-level failure
// visible to the calling agent, not a JSON-RPC protocol error.
func Errorf(text string) Response { return Response{Kind: KindError, Text: text} }

// FromError converts a facade error into an Error(text) response.
func FromError(err error) Response { return Errorf(err.Error()) }

// JSON builds a Json(value) response.
func JSON(value interface{}) Response { return Response{Kind: KindJSON, Value: value} }

// Content renders the response into the single MCP content-array
// string the JSON-RPC loop wraps as {"type":"text","text":...}.
func (r Response) Content() string {
	switch r.Kind {
	case KindError:
		return "Error: " + r.Text
	case KindJSON:
		data, err := json.Marshal(r.Value)
		if err != nil {
			return "Error: " + err.Error()
		}
		return string(data)
	default:
		return r.Text
	}
}
