package response

import (
	"mime"
	"net/http"
	"path"
	"strings"
)

var contentTypes = map[string]string{
	".yaml": "application/yaml; charset=utf-8",
	".yml":  "application/yaml; charset=utf-8",
	".json": "application/json; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".png":  "image/png",
	".html": "text/html; charset=utf-8",
}

// FileResponse writes a file body inline, the content type follows the file extension
type FileResponse struct {
	Filename string
	Body     []byte
}

func (f *FileResponse) GetContentType() string {
	return ContentTypeByName(f.Filename)
}

func (f *FileResponse) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", f.GetContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Body)
}

// ContentTypeByName returns the content type for a file name
func ContentTypeByName(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
