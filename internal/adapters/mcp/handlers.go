package mcpadapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
)

func (s *Server) handleAnalyzeDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.analyzer.AnalyzeDocument(ctx, id)
	if err != nil {
		return s.failure(id, err)
	}
	s.recorder.RecordAnalysis(ToolAnalyzeDocument, result.Stats.WordCount, string(result.Sentiment.Sentiment))
	return jsonResult(result)
}

func (s *Server) handleSentiment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result := s.analyzer.Sentiment(ctx, text)
	s.recorder.RecordAnalysis(ToolGetSentiment, -1, string(result.Sentiment))
	return jsonResult(result)
}

func (s *Server) handleKeywords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := req.GetInt("limit", s.keywordLimit)
	return jsonResult(s.analyzer.Keywords(ctx, text, limit))
}

func (s *Server) handleReadability(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.analyzer.Readability(ctx, text))
}

func (s *Server) handleStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result := s.analyzer.Stats(ctx, text)
	s.recorder.RecordAnalysis(ToolGetTextStatistics, result.WordCount, "")
	return jsonResult(result)
}

func (s *Server) handleAddDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tags, err := optionalStrings(req, "tags")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := s.catalog.Add(ctx, domain.NewDocument{
		Title:    title,
		Content:  content,
		Author:   optionalString(req, "author"),
		Category: optionalString(req, "category"),
		Tags:     tags,
	})
	if err != nil {
		return s.failure("", err)
	}
	s.recorder.RecordDocumentAdded()
	return jsonResult(newAddedView(doc))
}

func (s *Server) handleSearchDocuments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	docs, err := s.catalog.Search(ctx, query)
	if err != nil {
		return s.failure("", err)
	}

	out := make([]searchResultView, 0, len(docs))
	for _, d := range docs {
		out = append(out, newSearchResultView(d, s.snippetLength))
	}
	return jsonResult(out)
}

func (s *Server) handleListDocuments(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docs, err := s.catalog.List(ctx)
	if err != nil {
		return s.failure("", err)
	}

	out := make([]listItemView, 0, len(docs))
	for _, d := range docs {
		out = append(out, newListItemView(d))
	}
	return jsonResult(out)
}

func (s *Server) handleGetDocumentInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, err := s.catalog.Get(ctx, id)
	if err != nil {
		return s.failure(id, err)
	}
	return jsonResult(doc)
}

// failure renders a missing document as the not-found payload, which callers
// treat as data. Any other error becomes a tool error result.
func (s *Server) failure(id string, err error) (*mcp.CallToolResult, error) {
	if domain.IsKind(err, domain.ErrDocumentNotFound) {
		return jsonResult(errorView{Error: domain.NotFoundMessage(id)})
	}
	s.logger.Error("mcp_tool_failed", "document_id", id, "error", err)
	return mcp.NewToolResultErrorFromErr("tool execution failed", err), nil
}

func jsonResult(payload any) (*mcp.CallToolResult, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("encode result", err), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}

// optionalString treats a missing key, JSON null and a non-string value alike.
func optionalString(req mcp.CallToolRequest, key string) *string {
	v, ok := req.GetArguments()[key].(string)
	if !ok {
		return nil
	}
	return &v
}

func optionalStrings(req mcp.CallToolRequest, key string) ([]string, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return []string{}, nil
	}
	tags, err := req.RequireStringSlice(key)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return tags, nil
}
