// Package mcpserver exposes the coloring engine and the map generators as
// Model Context Protocol tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mapcolor/builder"
	"github.com/katalvlaran/mapcolor/coloring"
	"github.com/katalvlaran/mapcolor/core"
	"github.com/katalvlaran/mapcolor/internal/config"
	"github.com/katalvlaran/mapcolor/internal/metrics"
	"github.com/katalvlaran/mapcolor/replay"
)

const (
	serverName    = "mapcolor-mcp"
	paletteURI    = "mapcolor://palette"
	metricsSource = "mcp"
)

// ErrBadArgument reports a missing or malformed tool argument.
var ErrBadArgument = errors.New("mcpserver: bad argument")

// TraceStep is one search step with its human-readable explanation.
type TraceStep struct {
	Region      string `json:"region" jsonschema_description:"Region the step acts on"`
	Color       int    `json:"color" jsonschema_description:"Attempted color, 0 on backtracking steps"`
	Accepted    bool   `json:"accepted" jsonschema_description:"Whether the color was assigned"`
	Undo        bool   `json:"undo" jsonschema_description:"Whether the step retracts the region's color"`
	Explanation string `json:"explanation"`
}

// SolveResponse is the structured result of solve_coloring.
type SolveResponse struct {
	Solved     bool              `json:"solved" jsonschema_description:"Whether a complete coloring was found"`
	Order      []string          `json:"order" jsonschema_description:"Search order of the regions"`
	Assignment map[string]int    `json:"assignment,omitempty" jsonschema_description:"Region to color (1-based), present when solved"`
	Colors     map[string]string `json:"colors,omitempty" jsonschema_description:"Region to palette color name, present when solved"`
	Trials     int               `json:"trials"`
	Undos      int               `json:"undos"`
	Steps      int               `json:"steps"`
	Trace      []TraceStep       `json:"trace,omitempty" jsonschema_description:"Every step, when include_trace is set"`
}

// Server wraps an MCPServer with the coloring tools registered.
type Server struct {
	cfg       config.Config
	log       *slog.Logger
	metrics   *metrics.Recorder
	mcpServer *server.MCPServer
}

// NewServer creates the MCP server and registers its tools and resources.
func NewServer(cfg config.Config, version string, log *slog.Logger, rec *metrics.Recorder) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		cfg:       cfg,
		log:       log,
		metrics:   rec,
		mcpServer: server.NewMCPServer(serverName, version),
	}
	s.registerTools()
	s.registerResources()

	return s
}

// ServeStdio serves on stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	solveTool := mcp.NewTool("solve_coloring",
		mcp.WithDescription("Color a map so that no two bordering regions share a color, by backtracking search. Key order of the map is the search order."),
		mcp.WithString("map", mcp.Required(), mcp.Description(`Adjacency as a JSON or YAML object: {"region": ["neighbour", ...]}`)),
		mcp.WithNumber("num_colors", mcp.Required(), mcp.Description("Number of available colors")),
		mcp.WithBoolean("include_trace", mcp.Description("Return every search step with an explanation")),
		mcp.WithOutputSchema[SolveResponse](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolve))

	generateTool := mcp.NewTool("generate_map",
		mcp.WithDescription("Generate a map fixture as ordered YAML."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("One of: cycle, path, star, wheel, complete, bipartite, grid, platonic, random, regular")),
		mcp.WithNumber("n", mcp.Required(), mcp.Description("Number of regions (grid: side length)")),
		mcp.WithNumber("p", mcp.Description("Border probability for random maps")),
		mcp.WithNumber("degree", mcp.Description("Border count per region for regular maps")),
		mcp.WithBoolean("center", mcp.Description("Add a hub region to Platonic solids")),
		mcp.WithNumber("seed", mcp.Description("Seed for random and regular maps")),
	)
	s.mcpServer.AddTool(generateTool, s.handleGenerate)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(paletteURI, "Color palette",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := json.Marshal(replay.DefaultPalette)
		if err != nil {
			return nil, fmt.Errorf("encode palette: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      paletteURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SolveResponse, error) {
	src, _ := args["map"].(string)
	if src == "" {
		return SolveResponse{}, fmt.Errorf("%w: map is required", ErrBadArgument)
	}
	k, ok := args["num_colors"].(float64)
	if !ok || k != float64(int(k)) {
		return SolveResponse{}, fmt.Errorf("%w: num_colors must be an integer", ErrBadArgument)
	}
	withTrace, _ := args["include_trace"].(bool)

	m, err := core.ParseYAML([]byte(src))
	if err != nil {
		return SolveResponse{}, fmt.Errorf("%w: map: %v", ErrBadArgument, err)
	}
	if s.cfg.MaxColors > 0 && int(k) > s.cfg.MaxColors {
		return SolveResponse{}, fmt.Errorf("%w: num_colors=%d exceeds %d", ErrBadArgument, int(k), s.cfg.MaxColors)
	}
	if s.cfg.MaxRegions > 0 && m.Len() > s.cfg.MaxRegions {
		return SolveResponse{}, fmt.Errorf("%w: %d regions exceed %d", ErrBadArgument, m.Len(), s.cfg.MaxRegions)
	}

	if s.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.RequestTimeout)
		defer cancel()
	}

	start := time.Now()
	res, err := coloring.Solve(m, int(k),
		coloring.WithContext(ctx),
		coloring.WithMaxSteps(s.cfg.MaxSteps),
	)
	s.metrics.Observe(metricsSource, res, err, time.Since(start))
	if err != nil {
		s.log.Warn("MCP solve failed", "error", err, "regions", m.Len(), "colors", int(k))
		return SolveResponse{}, fmt.Errorf("solve failed: %w", err)
	}

	return newSolveResponse(m.Regions(), res, withTrace), nil
}

func newSolveResponse(order []string, res *coloring.Result, withTrace bool) SolveResponse {
	out := SolveResponse{
		Solved: res.Solved,
		Order:  order,
		Trials: res.Stats.Trials,
		Undos:  res.Stats.Undos,
		Steps:  len(res.Trace),
	}
	if res.Solved {
		out.Assignment = make(map[string]int, len(res.Assignment))
		out.Colors = make(map[string]string, len(res.Assignment))
		for r, c := range res.Assignment {
			out.Assignment[r] = int(c)
			out.Colors[r] = replay.DefaultPalette.Swatch(c).Name
		}
	}
	if withTrace {
		out.Trace = make([]TraceStep, len(res.Trace))
		for i, st := range res.Trace {
			out.Trace[i] = TraceStep{
				Region:      st.Region,
				Color:       int(st.Color),
				Accepted:    st.Accepted,
				Undo:        st.Undo,
				Explanation: replay.Explain(st, replay.DefaultPalette),
			}
		}
	}

	return out
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := builder.Params{
		Kind:       builder.Kind(request.GetString("kind", "")),
		N:          request.GetInt("n", 0),
		P:          request.GetFloat("p", 0.5),
		Degree:     request.GetInt("degree", 3),
		WithCenter: request.GetBool("center", false),
	}
	seed := int64(request.GetInt("seed", 1))

	ctor, err := builder.Lookup(p)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	m, err := builder.BuildMap(nil, []builder.BuilderOption{builder.WithSeed(seed)}, ctor)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode map: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
