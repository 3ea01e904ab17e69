// Package mcp provides an MCP (Model Context Protocol) server that exposes
// cronalpha's reliability analysis as MCP tools for AI assistants.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"math"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/valter-silva-au/cronalpha/internal/core"
	"github.com/valter-silva-au/cronalpha/internal/storage"
	"github.com/valter-silva-au/cronalpha/pkg/models"
)

// Server wraps cronalpha services and exposes them as MCP tools.
type Server struct {
	server *gomcp.Server
	calc   core.Calculator
	loader storage.TableLoader
	items  []string
}

// NewServer creates a new MCP server reading files with opts. opts.Items is
// the default item selection for path requests; items named in a request
// replace it rather than narrowing it.
func NewServer(calc core.Calculator, opts storage.LoadOptions, version string) *Server {
	if version == "" {
		version = "dev"
	}

	items := opts.Items
	opts.Items = nil
	s := &Server{
		calc:   calc,
		loader: storage.NewTableLoader(opts),
		items:  items,
	}

	s.server = gomcp.NewServer(
		&gomcp.Implementation{Name: "cronalpha", Version: version},
		nil,
	)

	s.registerTools()

	return s
}

// Run starts the MCP server on stdio, blocking until the client disconnects
// or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &gomcp.StdioTransport{})
}

// MCPServer returns the underlying mcp.Server for testing purposes.
func (s *Server) MCPServer() *gomcp.Server {
	return s.server
}

// --- Tool input/output types ---

type tableInput struct {
	Path  string      `json:"path,omitempty" jsonschema:"path to a .csv, .tsv, .xlsx or .sqlite file holding one row per respondent and one column per item"`
	Rows  [][]float64 `json:"rows,omitempty" jsonschema:"inline score table, one inner array per respondent"`
	Items []string    `json:"items,omitempty" jsonschema:"item names for inline rows, or the item columns to select from path"`
}

// Non-finite floats are carried as strings because JSON has no NaN or Inf.
type alphaOutput struct {
	Alpha                    string   `json:"alpha"`
	AlphaValue               *float64 `json:"alpha_value,omitempty"`
	MeanInterItemCorrelation string   `json:"mean_inter_item_correlation"`
	Items                    []string `json:"items"`
	Respondents              int      `json:"respondents"`
	Pairs                    int      `json:"pairs"`
}

type matrixOutput struct {
	Items  []string   `json:"items"`
	Matrix [][]string `json:"matrix"`
}

// --- Tool registration ---

func (s *Server) registerTools() {
	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "compute_alpha",
		Description: "Compute Cronbach's alpha (standardized, from the mean inter-item Pearson correlation) for a score table given by file path or inline rows.",
	}, s.handleComputeAlpha)

	gomcp.AddTool(s.server, &gomcp.Tool{
		Name:        "correlation_matrix",
		Description: "Return the inter-item Pearson correlation matrix for a score table given by file path or inline rows. Entries involving a constant item are NaN.",
	}, s.handleCorrelationMatrix)
}

// --- Tool handlers ---

func (s *Server) handleComputeAlpha(ctx context.Context, _ *gomcp.CallToolRequest, input tableInput) (*gomcp.CallToolResult, alphaOutput, error) {
	table, err := s.table(ctx, input)
	if err != nil {
		return errorResult(err.Error()), alphaOutput{}, nil
	}

	res, err := s.calc.Analyze(table)
	if err != nil {
		return errorResult(fmt.Sprintf("computing alpha: %s", err)), alphaOutput{}, nil
	}

	out := alphaOutput{
		Alpha:                    models.FormatFloat(res.Alpha),
		MeanInterItemCorrelation: models.FormatFloat(res.MeanInterItemCorrelation),
		Items:                    table.Items(),
		Respondents:              res.Respondents,
		Pairs:                    res.Pairs,
	}
	if !math.IsNaN(res.Alpha) && !math.IsInf(res.Alpha, 0) {
		v := res.Alpha
		out.AlphaValue = &v
	}
	return nil, out, nil
}

func (s *Server) handleCorrelationMatrix(ctx context.Context, _ *gomcp.CallToolRequest, input tableInput) (*gomcp.CallToolResult, matrixOutput, error) {
	table, err := s.table(ctx, input)
	if err != nil {
		return errorResult(err.Error()), matrixOutput{}, nil
	}

	m, err := s.calc.Correlate(table)
	if err != nil {
		return errorResult(fmt.Sprintf("computing correlations: %s", err)), matrixOutput{}, nil
	}

	out := matrixOutput{
		Items:  m.Items(),
		Matrix: make([][]string, m.Size()),
	}
	for i := range out.Matrix {
		out.Matrix[i] = make([]string, m.Size())
		for j := range out.Matrix[i] {
			out.Matrix[i][j] = models.FormatFloat(m.At(i, j))
		}
	}
	return nil, out, nil
}

// --- Helpers ---

var errTableSource = errors.New("exactly one of path or rows is required")

// table builds the ScoreTable named by input from either a file or inline rows.
func (s *Server) table(ctx context.Context, input tableInput) (*models.ScoreTable, error) {
	hasPath := input.Path != ""
	hasRows := len(input.Rows) > 0
	if hasPath == hasRows {
		return nil, errTableSource
	}

	if hasRows {
		var items []string
		if len(input.Items) > 0 {
			items = input.Items
		}
		table, err := models.NewScoreTable(items, input.Rows)
		if err != nil {
			return nil, fmt.Errorf("reading rows: %w", err)
		}
		return table, nil
	}

	table, err := s.loader.Load(ctx, input.Path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", input.Path, err)
	}
	items := s.items
	if len(input.Items) > 0 {
		items = input.Items
	}
	if len(items) > 0 {
		if table, err = table.Select(items); err != nil {
			return nil, fmt.Errorf("selecting items: %w", err)
		}
	}
	return table, nil
}

func errorResult(msg string) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: msg}},
		IsError: true,
	}
}
