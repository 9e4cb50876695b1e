// Package server implements the MCP (Model Context Protocol) server
// exposing spec.md §6's embedding API (add-input / do-cycle /
// query-concept / answer / save-memory / load-memory / get-metrics) as MCP
// tools over stdio; the reserved word count goes through add-input.
//
// Grounded on teacher's internal/server/server.go: an *mcp.Server wrapping
// a thin coordinator struct, one mcp.AddTool call per tool with a typed
// request/response struct, JSON results via toJSONContent. The teacher's
// response-formatting layer (internal/claudecode/format, RESPONSE_FORMAT
// env gate) is dropped — NARS responses are small, fixed-shape structs
// with nothing to compact — see DESIGN.md.
package server

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"nars/internal/engine"
	"nars/internal/term"
)

// Server coordinates one engine.Engine and exposes it over MCP.
type Server struct {
	engine *engine.Engine
}

// New wraps e for MCP tool registration.
func New(e *engine.Engine) *Server {
	return &Server{engine: e}
}

// RegisterTools registers every embedding-API tool on mcpServer.
func (s *Server) RegisterTools(mcpServer *mcp.Server) {
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "add-input",
		Description: "Feed one line of Narsese (or a reserved word: count, cycle, save, load) into the reasoner",
	}, s.handleAddInput)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "do-cycle",
		Description: "Run one or more working cycles",
	}, s.handleDoCycle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "query-concept",
		Description: "Look up the current best belief and desire for a term",
	}, s.handleQueryConcept)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "answer",
		Description: "Retrieve the best recorded answer to a question about a term",
	}, s.handleAnswer)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "save-memory",
		Description: "Persist the current memory snapshot to a path",
	}, s.handleSaveMemory)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "load-memory",
		Description: "Load a memory snapshot from a path into the current memory",
	}, s.handleLoadMemory)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "get-metrics",
		Description: "Get control-cycle and inference-rule telemetry",
	}, s.handleGetMetrics)
}

// AddInputRequest is one raw line of input (spec.md §6's add_input).
type AddInputRequest struct {
	Text string `json:"text"`
}

// AddInputResponse mirrors engine.Result.
type AddInputResponse struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message"`
}

func (s *Server) handleAddInput(ctx context.Context, req *mcp.CallToolRequest, input AddInputRequest) (*mcp.CallToolResult, *AddInputResponse, error) {
	result := s.engine.AddInput(input.Text)
	response := &AddInputResponse{Accepted: result.Accepted, Message: result.Message}
	return &mcp.CallToolResult{Content: toJSONContent(response)}, response, nil
}

// DoCycleRequest runs Count working cycles (default 1).
type DoCycleRequest struct {
	Count int `json:"count,omitempty"`
}

// DoCycleResponse reports the cycle counter after running.
type DoCycleResponse struct {
	CyclesElapsed uint64 `json:"cycles_elapsed"`
}

func (s *Server) handleDoCycle(ctx context.Context, req *mcp.CallToolRequest, input DoCycleRequest) (*mcp.CallToolResult, *DoCycleResponse, error) {
	count := input.Count
	if count <= 0 {
		count = 1
	}
	for i := 0; i < count; i++ {
		s.engine.DoCycle()
	}
	response := &DoCycleResponse{CyclesElapsed: s.engine.CyclesElapsed()}
	return &mcp.CallToolResult{Content: toJSONContent(response)}, response, nil
}

// QueryConceptRequest names the term to inspect.
type QueryConceptRequest struct {
	Term string `json:"term"`
}

// TruthReport is a JSON-friendly (frequency, confidence) pair.
type TruthReport struct {
	Frequency  float64 `json:"frequency"`
	Confidence float64 `json:"confidence"`
}

// QueryConceptResponse reports whether a concept exists for the term and,
// if so, its strongest belief and desire.
type QueryConceptResponse struct {
	Found  bool         `json:"found"`
	Belief *TruthReport `json:"belief,omitempty"`
	Desire *TruthReport `json:"desire,omitempty"`
}

func (s *Server) handleQueryConcept(ctx context.Context, req *mcp.CallToolRequest, input QueryConceptRequest) (*mcp.CallToolResult, *QueryConceptResponse, error) {
	t, err := term.FromString(input.Term)
	if err != nil {
		return nil, nil, err
	}
	c, ok := s.engine.QueryConcept(t)
	if !ok {
		response := &QueryConceptResponse{Found: false}
		return &mcp.CallToolResult{Content: toJSONContent(response)}, response, nil
	}

	response := &QueryConceptResponse{Found: true}
	if belief, ok := c.BestBelief(); ok {
		tv := belief.Truth()
		response.Belief = &TruthReport{Frequency: tv.F, Confidence: tv.C}
	}
	if desire, ok := c.BestDesire(); ok {
		dv := desire.Desire()
		response.Desire = &TruthReport{Frequency: dv.F, Confidence: dv.C}
	}
	return &mcp.CallToolResult{Content: toJSONContent(response)}, response, nil
}

// AnswerRequest names the question term to look up.
type AnswerRequest struct {
	Term string `json:"term"`
}

// AnswerResponse reports the best recorded answer, if any.
type AnswerResponse struct {
	Found bool         `json:"found"`
	Truth *TruthReport `json:"truth,omitempty"`
}

func (s *Server) handleAnswer(ctx context.Context, req *mcp.CallToolRequest, input AnswerRequest) (*mcp.CallToolResult, *AnswerResponse, error) {
	t, err := term.FromString(input.Term)
	if err != nil {
		return nil, nil, err
	}
	j, ok := s.engine.Answer(t)
	if !ok {
		response := &AnswerResponse{Found: false}
		return &mcp.CallToolResult{Content: toJSONContent(response)}, response, nil
	}
	tv := j.Truth()
	response := &AnswerResponse{Found: true, Truth: &TruthReport{Frequency: tv.F, Confidence: tv.C}}
	return &mcp.CallToolResult{Content: toJSONContent(response)}, response, nil
}

// SaveMemoryRequest/LoadMemoryRequest name the snapshot path.
type SaveMemoryRequest struct {
	Path string `json:"path"`
}
type LoadMemoryRequest struct {
	Path string `json:"path"`
}

// StatusResponse is a generic ok/error wrapper for void operations.
type StatusResponse struct {
	OK bool `json:"ok"`
}

func (s *Server) handleSaveMemory(ctx context.Context, req *mcp.CallToolRequest, input SaveMemoryRequest) (*mcp.CallToolResult, *StatusResponse, error) {
	if err := s.engine.SaveMemory(input.Path); err != nil {
		return nil, nil, err
	}
	response := &StatusResponse{OK: true}
	return &mcp.CallToolResult{Content: toJSONContent(response)}, response, nil
}

func (s *Server) handleLoadMemory(ctx context.Context, req *mcp.CallToolRequest, input LoadMemoryRequest) (*mcp.CallToolResult, *StatusResponse, error) {
	if err := s.engine.LoadMemory(input.Path); err != nil {
		return nil, nil, err
	}
	response := &StatusResponse{OK: true}
	return &mcp.CallToolResult{Content: toJSONContent(response)}, response, nil
}

// GetMetricsRequest takes no parameters.
type GetMetricsRequest struct{}

// GetMetricsResponse surfaces every counter in internal/metrics.Metrics.
type GetMetricsResponse struct {
	Cycle map[string]int64 `json:"cycle"`
	Rules map[string]int   `json:"rules"`
}

func (s *Server) handleGetMetrics(ctx context.Context, req *mcp.CallToolRequest, input GetMetricsRequest) (*mcp.CallToolResult, *GetMetricsResponse, error) {
	m := s.engine.Metrics()
	response := &GetMetricsResponse{
		Cycle: m.Cycle.GetStats(),
		Rules: m.Rules.RuleUsage(),
	}
	return &mcp.CallToolResult{Content: toJSONContent(response)}, response, nil
}

// toJSONContent converts data to an MCP TextContent slice. The teacher's
// RESPONSE_FORMAT compaction layer (internal/claudecode/format) has no
// analogue here: every response above is already a small, fixed-shape
// struct.
func toJSONContent(data interface{}) []mcp.Content {
	jsonData, err := json.Marshal(data)
	if err != nil {
		jsonData, _ = json.Marshal(map[string]string{"error": err.Error()})
	}
	return []mcp.Content{&mcp.TextContent{Text: string(jsonData)}}
}
