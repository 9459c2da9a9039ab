package mcpadapter

import (
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	ToolAnalyzeDocument     = "analyze_document"
	ToolGetSentiment        = "get_sentiment"
	ToolExtractKeywords     = "extract_keywords"
	ToolAddDocument         = "add_document"
	ToolSearchDocuments     = "search_documents"
	ToolListDocuments       = "list_documents"
	ToolGetDocumentInfo     = "get_document_info"
	ToolGetReadabilityScore = "get_readability_score"
	ToolGetTextStatistics   = "get_text_statistics"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool(ToolAnalyzeDocument,
		mcp.WithDescription("Perform complete analysis of a stored document: sentiment, keywords, readability and statistics."),
		mcp.WithString("document_id", mcp.Required(), mcp.Description("The ID of the document to analyze")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.handleAnalyzeDocument)

	s.mcp.AddTool(mcp.NewTool(ToolGetSentiment,
		mcp.WithDescription("Analyze the sentiment of any text."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to analyze for sentiment")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.handleSentiment)

	s.mcp.AddTool(mcp.NewTool(ToolExtractKeywords,
		mcp.WithDescription("Extract the top keywords from text with frequency and relevance scores."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to extract keywords from")),
		mcp.WithNumber("limit", mcp.DefaultNumber(float64(s.keywordLimit)), mcp.Description("Maximum number of keywords to return")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.handleKeywords)

	s.mcp.AddTool(mcp.NewTool(ToolAddDocument,
		mcp.WithDescription("Add a new document to the document store."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Document title")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Document content")),
		mcp.WithString("author", mcp.Description("Document author")),
		mcp.WithString("category", mcp.Description("Document category")),
		mcp.WithArray("tags", mcp.WithStringItems(), mcp.Description("List of tags")),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.handleAddDocument)

	s.mcp.AddTool(mcp.NewTool(ToolSearchDocuments,
		mcp.WithDescription("Search documents by content, title or tags."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.handleSearchDocuments)

	s.mcp.AddTool(mcp.NewTool(ToolListDocuments,
		mcp.WithDescription("List all documents in the store with basic information."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.handleListDocuments)

	s.mcp.AddTool(mcp.NewTool(ToolGetDocumentInfo,
		mcp.WithDescription("Get the full record of a document, including its content."),
		mcp.WithString("document_id", mcp.Required(), mcp.Description("The ID of the document")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.handleGetDocumentInfo)

	s.mcp.AddTool(mcp.NewTool(ToolGetReadabilityScore,
		mcp.WithDescription("Calculate Flesch readability metrics for text."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to analyze for readability")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.handleReadability)

	s.mcp.AddTool(mcp.NewTool(ToolGetTextStatistics,
		mcp.WithDescription("Get basic statistics of text: words, sentences, characters and paragraphs."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The text to analyze")),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), s.handleStats)
}
