package httpadapter

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
)

type documentsResponse struct {
	Documents []domain.Document `json:"documents"`
	Count     int               `json:"count"`
}

type textRequest struct {
	Text string `json:"text"`
}

type keywordsRequest struct {
	Text  string `json:"text"`
	Limit *int   `json:"limit"`
}

func (rt *Router) listDocuments(w http.ResponseWriter, r *http.Request) {
	var (
		docs []domain.Document
		err  error
	)
	if q, ok := r.URL.Query()["q"]; ok {
		docs, err = rt.catalog.Search(r.Context(), q[0])
	} else {
		docs, err = rt.catalog.List(r.Context())
	}
	if err != nil {
		rt.writeDomainError(w, r, err, "")
		return
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	writeJSON(w, http.StatusOK, documentsResponse{Documents: docs, Count: len(docs)})
}

func (rt *Router) addDocument(w http.ResponseWriter, r *http.Request) {
	var in domain.NewDocument
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := rt.catalog.Add(r.Context(), in)
	if err != nil {
		rt.writeDomainError(w, r, err, "")
		return
	}
	w.Header().Set("Location", "/v1/documents/"+doc.ID)
	writeJSON(w, http.StatusCreated, doc)
}

func (rt *Router) getDocument(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["document_id"]
	doc, err := rt.catalog.Get(r.Context(), id)
	if err != nil {
		rt.writeDomainError(w, r, err, id)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (rt *Router) analyzeDocument(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["document_id"]
	result, err := rt.analyzer.AnalyzeDocument(r.Context(), id)
	if err != nil {
		rt.writeDomainError(w, r, err, id)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) analyzeSentiment(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rt.analyzer.Sentiment(r.Context(), req.Text))
}

func (rt *Router) extractKeywords(w http.ResponseWriter, r *http.Request) {
	var req keywordsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit := rt.cfg.KeywordLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	writeJSON(w, http.StatusOK, rt.analyzer.Keywords(r.Context(), req.Text, limit))
}

func (rt *Router) analyzeReadability(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rt.analyzer.Readability(r.Context(), req.Text))
}

func (rt *Router) analyzeStats(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rt.analyzer.Stats(r.Context(), req.Text))
}
