// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

// Package server binds the conversion engine to the MCP tool-call surface.
// Conversion failures are reported as successful calls carrying error-shaped
// string payloads; only malformed requests (unknown tool, missing required
// argument) surface as protocol-level errors.
package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	docconv "github.com/nicholasgasior/docconv-go"
)

// New builds the MCP server with every document conversion tool registered.
func New(engine *docconv.Engine, version string) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(
		"document-converter",
		version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	registerTools(s, engine)
	return s
}

// ServeStdio serves over stdin/stdout framing.
func ServeStdio(s *mcpserver.MCPServer) error {
	return mcpserver.ServeStdio(s)
}

// ServeHTTP serves the streamable HTTP transport on addr.
func ServeHTTP(s *mcpserver.MCPServer, addr string) error {
	return mcpserver.NewStreamableHTTPServer(s).Start(addr)
}

// ServeSSE serves the SSE transport on addr.
func ServeSSE(s *mcpserver.MCPServer, addr string) error {
	return mcpserver.NewSSEServer(s).Start(addr)
}

func registerTools(s *mcpserver.MCPServer, engine *docconv.Engine) {
	convertTool := mcp.NewTool("convert_document",
		mcp.WithDescription("Convert document from one format to another"),
		mcp.WithString("content", mcp.Required(),
			mcp.Description("Document content (text or base64 for binary formats)")),
		mcp.WithString("input_format", mcp.Required(),
			mcp.Enum(docconv.InputFormats...),
			mcp.Description("Input document format")),
		mcp.WithString("output_format", mcp.Required(),
			mcp.Enum(docconv.OutputFormats...),
			mcp.Description("Output document format")),
		mcp.WithString("filename",
			mcp.Description("Optional filename for context")),
	)
	s.AddTool(convertTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content, err := req.RequireString("content")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		inputFormat, err := req.RequireString("input_format")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		outputFormat, err := req.RequireString("output_format")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result := engine.ConvertDocument(docconv.Request{
			Content:      content,
			InputFormat:  inputFormat,
			OutputFormat: outputFormat,
			Filename:     req.GetString("filename", ""),
		})
		return mcp.NewToolResultText(result), nil
	})

	listTool := mcp.NewTool("list_supported_formats",
		mcp.WithDescription("List all supported input and output formats"),
	)
	s.AddTool(listTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(engine.FormatReport()), nil
	})

	batchTool := mcp.NewTool("convert_file_batch",
		mcp.WithDescription("Convert multiple files to the same output format"),
		mcp.WithArray("files", mcp.Required(),
			mcp.Description("List of files to convert"),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"content":      map[string]any{"type": "string"},
					"input_format": map[string]any{"type": "string"},
					"filename":     map[string]any{"type": "string"},
				},
				"required": []any{"content", "input_format"},
			})),
		mcp.WithString("output_format", mcp.Required(),
			mcp.Enum(docconv.OutputFormats...),
			mcp.Description("Target output format for all files")),
	)
	s.AddTool(batchTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Files        []docconv.BatchItem `json:"files"`
			OutputFormat string              `json:"output_format"`
		}
		if err := req.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(engine.BatchReport(args.Files, args.OutputFormat)), nil
	})

	detectTool := mcp.NewTool("detect_format",
		mcp.WithDescription("Detect the document format of raw or base64 encoded content"),
		mcp.WithString("content", mcp.Required(),
			mcp.Description("Document content to sniff")),
	)
	s.AddTool(detectTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content, err := req.RequireString("content")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(engine.DetectFormat(content)), nil
	})

	urlTool := mcp.NewTool("convert_url",
		mcp.WithDescription("Fetch a web page and convert it to markdown"),
		mcp.WithString("url", mcp.Required(),
			mcp.Description("HTTP or HTTPS URL to fetch")),
	)
	s.AddTool(urlTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url, err := req.RequireString("url")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		md, err := engine.ConvertURL(ctx, url)
		if err != nil {
			return mcp.NewToolResultText("Error during conversion: " + err.Error()), nil
		}
		return mcp.NewToolResultText(md), nil
	})
}
