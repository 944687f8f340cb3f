// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the fortune corpus to LLM clients via stdio transport.
package mcpserver

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/fortuna/internal/fortune"
)

const formatURI = "fortune://format"

// Server wraps the MCP server with fortune tools.
type Server struct {
	mcp *server.MCPServer
	svc *fortune.Service
}

// New creates a new MCP server with all fortune tools registered.
func New(svc *fortune.Service, version string) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"fortuna",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("random_fortune",
		mcp.WithDescription("Return a random quote from a random fortune file."),
	), s.randomFortune)

	s.mcp.AddTool(mcp.NewTool("fortune_of_the_day",
		mcp.WithDescription("Return a random quote drawn from every fortune file, subdirectories included."),
	), s.fortuneOfTheDay)

	s.mcp.AddTool(mcp.NewTool("search_fortunes",
		mcp.WithDescription("Search quotes for a text or regular expression. "+
			"Each hit is followed by a line containing a single %."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Text or regular expression to look for")),
		mcp.WithBoolean("insensitive", mcp.Description("Ignore case")),
		mcp.WithBoolean("highlight", mcp.Description("Wrap literal matches in ANSI color codes (not with regex)")),
		mcp.WithBoolean("first_only", mcp.Description("Stop after the first hit")),
		mcp.WithBoolean("regex", mcp.Description("Treat query as a regular expression")),
	), s.searchFortunes)

	s.mcp.AddTool(mcp.NewTool("list_fortune_files",
		mcp.WithDescription("List every file of the fortune corpus."),
	), s.listFortuneFiles)

	s.mcp.AddResource(
		mcp.NewResource(formatURI, "Fortune File Format",
			mcp.WithResourceDescription("How quotes are laid out in fortune files."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readFormatResource,
	)

	return s
}

// Serve handles MCP requests from in and writes responses to out until
// ctx is cancelled or in is exhausted.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer, errLog *log.Logger) error {
	stdio := server.NewStdioServer(s.mcp)
	if errLog != nil {
		stdio.SetErrorLogger(errLog)
	}
	return stdio.Listen(ctx, in, out)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) randomFortune(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	quote, err := s.svc.PickFromOneFile(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(quote), nil
}

func (s *Server) fortuneOfTheDay(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	quote, err := s.svc.PickFromAllFiles(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(quote), nil
}

func (s *Server) searchFortunes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts := fortune.SearchOptions{
		Query:       query,
		Insensitive: req.GetBool("insensitive", false),
		Highlight:   req.GetBool("highlight", false),
		FirstOnly:   req.GetBool("first_only", false),
		Regex:       req.GetBool("regex", false),
	}

	var buf bytes.Buffer
	matches, err := s.svc.Find(ctx, &buf, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(matches) == 0 {
		return mcp.NewToolResultText("no matches found"), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func (s *Server) listFortuneFiles(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	files, err := s.svc.Files()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(strings.Join(files, "\n")), nil
}

func (s *Server) readFormatResource(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      formatURI,
			MIMEType: "text/markdown",
			Text:     FormatContract,
		},
	}, nil
}
