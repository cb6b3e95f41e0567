package response

import (
	"bytes"
	"html/template"
	"net/http"
)

type HTMLResponse struct {
	Template *template.Template
	Data     any
}

func (h *HTMLResponse) GetContentType() string {
	return "text/html; charset=utf-8"
}

func (h *HTMLResponse) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", h.GetContentType())
	if h.Template == nil {
		http.Error(w, "html template is not set", http.StatusInternalServerError)
		return
	}
	// executed into a buffer so a template error still gets a 500
	buf := new(bytes.Buffer)
	if err := h.Template.Execute(buf, h.Data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(buf.Bytes())
}
