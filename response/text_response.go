package response

import (
	"net/http"
)

type TextResponse struct {
	ContentType string
	Body        []byte
}

func (h *TextResponse) GetContentType() string {
	if h.ContentType == "" {
		return "text/plain; charset=utf-8"
	}
	return h.ContentType
}

func (h *TextResponse) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", h.GetContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.Body)
}
