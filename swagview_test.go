package swagview

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstore = "openapi: 3.0.3\ninfo:\n  title: Petstore\n  version: 1.0.0\npaths: {}\n"

func newTestServer(docsPath ...string) (*Server, *bytes.Buffer) {
	out := new(bytes.Buffer)
	s := New(docsPath...)
	s.SetLogger(&defaultLogger{out: out})
	s.Registry = NewRegistry()
	s.Documents = fstest.MapFS{"swagger.yaml": {Data: []byte(petstore)}}
	return s, out
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServerHandler(t *testing.T) {
	s, out := newTestServer()
	h, err := s.Handler()
	require.NoError(t, err)

	rec := get(t, h, "/docs")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/docs/", rec.Header().Get("Location"))

	rec = get(t, h, "/docs/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Petstore 1.0.0 - Swagger UI</title>")

	rec = get(t, h, "/docs/swagger.yaml")
	assert.Equal(t, petstore, rec.Body.String())

	rec = get(t, h, "/docs/swagger-initializer.js")
	assert.Contains(t, rec.Body.String(), `docExpansion: "none"`)

	assert.Equal(t, http.StatusNotFound, get(t, h, "/other").Code)

	_, ok := s.Registry.UI()
	assert.True(t, ok)
	assert.Contains(t, out.String(), "Started server process")
	assert.Contains(t, out.String(), "/docs/swagger.yaml")
}

func TestServerHandlerRoot(t *testing.T) {
	s, _ := newTestServer("/")
	assert.Equal(t, "", s.DocsPath())
	h, err := s.Handler()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(t, h, "/").Code)
	assert.Equal(t, petstore, get(t, h, "/swagger.yaml").Body.String())
}

func TestServerBootstrapOnce(t *testing.T) {
	s, _ := newTestServer()
	first, err := s.Bootstrap()
	require.NoError(t, err)
	_, err = s.Handler()
	require.NoError(t, err)
	second, err := s.Bootstrap()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestServerDocumentFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "petstore-v1.yml")
	require.NoError(t, os.WriteFile(file, []byte(petstore), 0o644))

	s, _ := newTestServer("/api/docs/")
	s.SetDocumentFile(file)
	assert.Equal(t, "/api/docs", s.DocsPath())
	h, err := s.Handler()
	require.NoError(t, err)
	assert.Equal(t, petstore, get(t, h, "/api/docs/swagger.yaml").Body.String())
}

func TestServerLogLevel(t *testing.T) {
	s, out := newTestServer()
	s.SetLogLevel(LogWarning | LogError | LogFail)
	_, err := s.Handler()
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestServerSetLoggerKeepsLevel(t *testing.T) {
	s, _ := newTestServer()
	s.SetLogLevel(LogError | LogFail)
	out := new(bytes.Buffer)
	s.SetLogger(&defaultLogger{out: out})
	_, err := s.Handler()
	require.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestServerStartedLoggedOnce(t *testing.T) {
	s, out := newTestServer()
	_, err := s.Handler()
	require.NoError(t, err)
	_, err = s.Handler()
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out.String(), "Started server process"))
}

func TestServerShutdownBeforeRun(t *testing.T) {
	s, _ := newTestServer()
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestParseLogLevel(t *testing.T) {
	level, ok := ParseLogLevel("warn")
	assert.True(t, ok)
	assert.Equal(t, LogWarning|LogError|LogFail, level)
	level, ok = ParseLogLevel("debug")
	assert.True(t, ok)
	assert.Equal(t, LogAll, level)
	_, ok = ParseLogLevel("verbose")
	assert.False(t, ok)
}

func TestDocumentFile(t *testing.T) {
	docs := DocumentFile("swagger.yaml", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := docs.Open("other.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = docs.Open("../swagger.yaml")
	assert.ErrorIs(t, err, os.ErrInvalid)
	_, err = docs.Open("swagger.yaml")
	assert.Error(t, err)
}
