package httpadapter

import (
	"net/http"

	"github.com/kirillkom/document-analyzer/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound
	case domain.IsKind(err, domain.ErrTemporary):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage keeps internal details out of 5xx responses.
func errorMessage(err error, documentID string) string {
	switch mapErrorToHTTPStatus(err) {
	case http.StatusNotFound:
		return domain.NotFoundMessage(documentID)
	case http.StatusBadRequest:
		return err.Error()
	case http.StatusServiceUnavailable:
		return "temporarily unavailable, retry later"
	default:
		return "internal error"
	}
}
