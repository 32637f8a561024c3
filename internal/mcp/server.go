/*
Package mcp implements the MCP server that exposes the tool catalog.

The server uses line-delimited JSON-RPC 2.0 over stdio and exposes 4 tools:
  - toolbelt_search: Rank catalog tools against a free-text query
  - toolbelt_popular: List the most popular tools
  - toolbelt_recent: List recent search queries
  - toolbelt_run: Run a text tool (JSON formatter, Markdown, ...) locally
*/
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/khanglvm/toolbelt/internal/finder"
	"github.com/khanglvm/toolbelt/internal/search"
	"github.com/khanglvm/toolbelt/internal/transform"
	"go.uber.org/zap"
)

// JSON-RPC error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeToolFailure    = -32000
)

// maxLineSize bounds one JSON-RPC message; tool input can be a whole document.
const maxLineSize = 4 * 1024 * 1024

// Server represents the toolbelt MCP server.
type Server struct {
	finder  *finder.Service
	version string

	out io.Writer
	mu  sync.Mutex
}

// NewServer creates a new MCP server over the given search service.
func NewServer(f *finder.Service, version string) *Server {
	return &Server{finder: f, version: version}
}

// Run reads requests from r and writes responses to w until r is exhausted
// or ctx is cancelled.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	s.out = w

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		response, err := s.handleRequest(line)
		if err != nil {
			s.sendError(err)
			continue
		}

		if response != nil {
			s.sendResponse(response)
		}
	}

	return scanner.Err()
}

// MCPRequest represents an incoming MCP JSON-RPC request.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing MCP JSON-RPC response.
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents an MCP error.
type MCPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// handleRequest processes an incoming MCP request. Notifications get no response.
func (s *Server) handleRequest(data []byte) (*MCPResponse, error) {
	var req MCPRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("invalid JSON-RPC request: %w", err)
	}

	zap.L().Debug("mcp request", zap.String("method", req.Method), zap.Any("id", req.ID))

	switch req.Method {
	case "initialize":
		return s.handleInitialize(&req)
	case "tools/list":
		return s.handleToolsList(&req)
	case "tools/call":
		return s.handleToolsCall(&req)
	case "ping":
		return &MCPResponse{JSONRPC: "2.0", ID: req.ID, Result: map[string]interface{}{}}, nil
	}

	if strings.HasPrefix(req.Method, "notifications/") {
		return nil, nil
	}

	return errorResponse(req.ID, codeMethodNotFound, "Method not found"), nil
}

// handleInitialize handles the MCP initialize request.
func (s *Server) handleInitialize(req *MCPRequest) (*MCPResponse, error) {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "toolbelt",
				"version": s.version,
			},
		},
	}, nil
}

// handleToolsList returns the tool definitions.
func (s *Server) handleToolsList(req *MCPRequest) (*MCPResponse, error) {
	limitProp := map[string]interface{}{
		"type":        "integer",
		"description": "Maximum number of results (default 20)",
		"minimum":     1,
	}

	tools := []map[string]interface{}{
		{
			"name": "toolbelt_search",
			"description": fmt.Sprintf(`Search the toolbelt catalog of %d utilities (PDF, image, developer, text, converter and SEO tools).

WHEN TO USE: When the user needs a tool for a task, e.g. "compress a pdf", "format json", "epoch to date".

Returns: Ranked tools with title, category, link and relevance score.`, s.finder.Catalog().Len()),
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"query": map[string]interface{}{
						"type":        "string",
						"description": "Free-text description of the task or tool name",
					},
					"limit": limitProp,
				},
				"required": []string{"query"},
			},
		},
		{
			"name":        "toolbelt_popular",
			"description": "List the most popular tools in the catalog.",
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"limit": limitProp,
				},
			},
		},
		{
			"name":        "toolbelt_recent",
			"description": "List recent search queries, most recent first.",
			"inputSchema": map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			"name": "toolbelt_run",
			"description": fmt.Sprintf(`Run a text tool locally and return its output.

AVAILABLE TOOLS: %s

Options are tool specific, e.g. {"mode": "minify"} for json-formatter or {"from": "16"} for number-base-converter.`, strings.Join(transform.IDs(), ", ")),
			"inputSchema": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"tool": map[string]interface{}{
						"type":        "string",
						"description": "Tool id or catalog title",
						"enum":        transform.IDs(),
					},
					"input": map[string]interface{}{
						"type":        "string",
						"description": "Text to transform",
					},
					"options": map[string]interface{}{
						"type":                 "object",
						"description":          "Tool options as string values",
						"additionalProperties": map[string]interface{}{"type": "string"},
					},
				},
				"required": []string{"tool", "input"},
			},
		},
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": tools,
		},
	}, nil
}

// handleToolsCall handles tool execution requests.
func (s *Server) handleToolsCall(req *MCPRequest) (*MCPResponse, error) {
	var params struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}

	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, codeInvalidParams, fmt.Sprintf("invalid params: %v", err)), nil
	}

	var result string
	var err error

	switch params.Name {
	case "toolbelt_search":
		query, _ := params.Arguments["query"].(string)
		result, err = s.execSearch(query, intArg(params.Arguments, "limit"))
	case "toolbelt_popular":
		result = formatResults(s.finder.Popular(intArg(params.Arguments, "limit")))
	case "toolbelt_recent":
		result = formatRecent(s.finder.Recent())
	case "toolbelt_run":
		tool, _ := params.Arguments["tool"].(string)
		input, _ := params.Arguments["input"].(string)
		result, err = s.execRun(tool, input, stringMap(params.Arguments["options"]))
	default:
		return errorResponse(req.ID, codeInvalidParams, fmt.Sprintf("Unknown tool: %s", params.Name)), nil
	}

	if err != nil {
		return errorResponse(req.ID, codeToolFailure, err.Error()), nil
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": result,
				},
			},
		},
	}, nil
}

func (s *Server) execSearch(query string, limit int) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", errors.New("query is required")
	}

	results := s.finder.Search(query, limit)
	if len(results) == 0 {
		return fmt.Sprintf("No tools match '%s'.", query), nil
	}
	return formatResults(results), nil
}

// execRun resolves tool by processor id or catalog title and runs it.
func (s *Server) execRun(tool, input string, opts transform.Options) (string, error) {
	id := tool
	if rec, ok := s.finder.Catalog().ByTitle(tool); ok {
		id = transform.ProcessorID(rec.Href)
	}

	res, err := transform.Run(id, input, opts)
	if err != nil {
		if suggestion, ok := search.Suggest(tool, s.finder.Catalog().Records()); ok {
			return "", fmt.Errorf("%w (did you mean '%s'?)", err, suggestion)
		}
		return "", err
	}
	if !res.OK() {
		return "", errors.New(res.Error)
	}
	return res.Output, nil
}

func formatResults(results []search.ScoredResult) string {
	var b strings.Builder
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s [%s] (score %d)\n   %s\n   %s\n", i+1, r.Title, r.Category, r.Score, r.Href, r.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatRecent(queries []string) string {
	if len(queries) == 0 {
		return "No recent searches."
	}
	var b strings.Builder
	b.WriteString("Recent searches:\n")
	for _, q := range queries {
		fmt.Fprintf(&b, "  • %s\n", q)
	}
	return strings.TrimRight(b.String(), "\n")
}

// intArg reads a JSON number argument; absent or malformed values give 0.
func intArg(args map[string]interface{}, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n
		}
	}
	return 0
}

// stringMap converts a JSON object into tool options, stringifying scalars.
func stringMap(v interface{}) transform.Options {
	m, ok := v.(map[string]interface{})
	if !ok {
		return transform.Options{}
	}
	opts := make(transform.Options, len(m))
	for k, val := range m {
		switch val := val.(type) {
		case string:
			opts[k] = val
		case nil:
		default:
			opts[k] = fmt.Sprint(val)
		}
	}
	return opts
}

func errorResponse(id interface{}, code int, message string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &MCPError{Code: code, Message: message},
	}
}

// sendResponse writes a JSON-RPC response as one line.
func (s *Server) sendResponse(resp *MCPResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		zap.L().Error("failed to marshal response", zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.out, string(data)); err != nil {
		zap.L().Warn("failed to write response", zap.Error(err))
	}
}

// sendError writes a parse error response.
func (s *Server) sendError(err error) {
	s.sendResponse(errorResponse(nil, codeParseError, err.Error()))
}
