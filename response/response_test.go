package response

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTypeByName(t *testing.T) {
	assert.Equal(t, "application/yaml; charset=utf-8", ContentTypeByName("swagger.yaml"))
	assert.Equal(t, "application/yaml; charset=utf-8", ContentTypeByName("api/spec.YML"))
	assert.Equal(t, "application/json; charset=utf-8", ContentTypeByName("openapi.json"))
	assert.Equal(t, "application/octet-stream", ContentTypeByName("blob"))
}

func TestFileResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	(&FileResponse{Filename: "swagger.yaml", Body: []byte("openapi: 3.0.0\n")}).Write(rec)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "openapi: 3.0.0\n", rec.Body.String())
}

func TestHTMLResponse(t *testing.T) {
	tmpl := template.Must(template.New("page").Parse(`<title>{{.}}</title>`))
	rec := httptest.NewRecorder()
	(&HTMLResponse{Template: tmpl, Data: "<Pets>"}).Write(rec)
	assert.Equal(t, "<title>&lt;Pets&gt;</title>", rec.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	(&HTMLResponse{}).Write(rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestTextResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	(&TextResponse{
		ContentType: "text/javascript; charset=utf-8",
		Body:        []byte("window.ui = null;"),
	}).Write(rec)
	assert.Equal(t, "text/javascript; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "window.ui = null;", rec.Body.String())
}
