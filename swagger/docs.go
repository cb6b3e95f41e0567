package swagger

import (
	"bytes"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/goodluckxu-go/swagview/openapi"
	"github.com/goodluckxu-go/swagview/response"
)

// DefaultAssetsURL is where the browser loads swagger-ui-dist from when no local assets are given
const DefaultAssetsURL = "https://unpkg.com/swagger-ui-dist@5"

const defaultTitle = "Swagger UI"

// Assets locates the swagger-ui-dist files. FS wins over BaseURL.
type Assets struct {
	BaseURL string
	FS      fs.FS
}

// Engine builds viewers. The zero value loads the bundle from DefaultAssetsURL
// and serves no local document.
type Engine struct {
	// page title, the document info title is used when empty
	Title string

	// favicon href, omitted when empty unless Assets.FS holds favicon-32x32.png
	Favicon string

	Assets Assets

	// source of relative document urls
	Documents fs.FS
}

type Router struct {
	Path    string
	Handler http.HandlerFunc
}

// UI is a constructed viewer. It serves every path in Routes relative to its mount point.
type UI struct {
	engine      Engine
	config      Config
	initializer []byte
	docPath     string
	routers     []Router
	handlers    map[string]http.HandlerFunc
	modTime     time.Time
}

// Construct builds the viewer for config. Only the config is checked, the
// document is handed to the browser as it is on every request.
func (e *Engine) Construct(config Config) (*UI, error) {
	config = config.Clone()
	initializer, err := config.Initializer()
	if err != nil {
		return nil, err
	}
	ui := &UI{
		engine:      *e,
		config:      config,
		initializer: initializer,
		docPath:     documentPath(config.URL),
		handlers:    map[string]http.HandlerFunc{},
		modTime:     time.Now().UTC().Truncate(time.Second),
	}
	ui.addRouter("/", ui.handleIndex)
	ui.addRouter(cssIndexPath, ui.handleStatic("text/css; charset=utf-8", []byte(cssIndex)))
	ui.addRouter(jsSwaggerInitializerPath, ui.handleStatic("text/javascript; charset=utf-8", initializer))
	if e.Assets.FS != nil {
		for _, p := range []string{cssSwaggerUiPath, jsSwaggerUiBundlePath, jsSwaggerUiStandalonePresetPath, faviconPath} {
			ui.addRouter(p, ui.handleAsset(p))
		}
	}
	if ui.docPath != "" {
		ui.addRouter("/"+ui.docPath, ui.handleDocument)
	}
	return ui, nil
}

// Config returns a copy of the config the viewer was constructed with
func (u *UI) Config() Config {
	return u.config.Clone()
}

// Initializer returns the rendered swagger-initializer.js
func (u *UI) Initializer() []byte {
	return bytes.Clone(u.initializer)
}

func (u *UI) Routes() []Router {
	return slices.Clone(u.routers)
}

// DocumentPath is the served path of the document, empty when the browser fetches it elsewhere
func (u *UI) DocumentPath() string {
	if u.docPath == "" {
		return ""
	}
	return "/" + u.docPath
}

// ServeHTTP Implement http.Handler interface
func (u *UI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Path
	if p == "" || p == "/index.html" {
		p = "/"
	}
	handler, ok := u.handlers[p]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	handler(w, r)
}

func (u *UI) addRouter(p string, handler http.HandlerFunc) {
	u.routers = append(u.routers, Router{Path: p, Handler: handler})
	u.handlers[p] = handler
}

func (u *UI) handleIndex(writer http.ResponseWriter, request *http.Request) {
	title := defaultTitle
	if t := u.title(); t != "" {
		title = t + " - " + defaultTitle
	}
	data := indexData{
		Title:         title,
		CssIndex:      "." + cssIndexPath,
		JsInitializer: "." + jsSwaggerInitializerPath,
		MountID:       strings.TrimPrefix(u.config.DomID, "#"),
		Favicon:       u.engine.Favicon,
	}
	if u.engine.Assets.FS != nil {
		data.CssSwaggerUI = "." + cssSwaggerUiPath
		data.JsBundle = "." + jsSwaggerUiBundlePath
		data.JsPreset = "." + jsSwaggerUiStandalonePresetPath
		if data.Favicon == "" {
			if _, err := fs.Stat(u.engine.Assets.FS, strings.TrimPrefix(faviconPath, "/")); err == nil {
				data.Favicon = "." + faviconPath
			}
		}
	} else {
		base := strings.TrimSuffix(u.engine.Assets.BaseURL, "/")
		if base == "" {
			base = DefaultAssetsURL
		}
		data.CssSwaggerUI = base + cssSwaggerUiPath
		data.JsBundle = base + jsSwaggerUiBundlePath
		data.JsPreset = base + jsSwaggerUiStandalonePresetPath
	}
	(&response.HTMLResponse{Template: indexTemplate, Data: data}).Write(writer)
}

// title reads the document on every request
func (u *UI) title() string {
	if u.engine.Title != "" {
		return u.engine.Title
	}
	if u.docPath == "" || u.engine.Documents == nil {
		return ""
	}
	body, err := fs.ReadFile(u.engine.Documents, u.docPath)
	if err != nil {
		return ""
	}
	info, err := openapi.ReadInfo(body)
	if err != nil {
		return ""
	}
	return info.DisplayTitle()
}

func (u *UI) handleStatic(contentType string, body []byte) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if u.handleCache(writer, request) {
			return
		}
		(&response.TextResponse{ContentType: contentType, Body: body}).Write(writer)
	}
}

func (u *UI) handleAsset(p string) http.HandlerFunc {
	name := strings.TrimPrefix(p, "/")
	return func(writer http.ResponseWriter, request *http.Request) {
		body, err := fs.ReadFile(u.engine.Assets.FS, name)
		if err != nil {
			http.NotFound(writer, request)
			return
		}
		if u.handleCache(writer, request) {
			return
		}
		(&response.FileResponse{Filename: name, Body: body}).Write(writer)
	}
}

func (u *UI) handleDocument(writer http.ResponseWriter, request *http.Request) {
	if u.engine.Documents == nil {
		http.Error(writer, "document "+u.config.URL+" is not available", http.StatusNotFound)
		return
	}
	body, err := fs.ReadFile(u.engine.Documents, u.docPath)
	if err != nil {
		http.Error(writer, "document "+u.config.URL+" is not available", http.StatusNotFound)
		return
	}
	writer.Header().Set("Cache-Control", "no-cache")
	(&response.FileResponse{Filename: u.docPath, Body: body}).Write(writer)
}

func (u *UI) handleCache(writer http.ResponseWriter, request *http.Request) bool {
	if since := request.Header.Get("If-Modified-Since"); since != "" {
		if t, err := http.ParseTime(since); err == nil && !u.modTime.After(t) {
			writer.WriteHeader(http.StatusNotModified)
			return true
		}
	}
	writer.Header().Set("Last-Modified", u.modTime.Format(http.TimeFormat))
	writer.Header().Set("Cache-Control", "max-age=86400")
	return false
}

// documentPath returns the fs path for a relative document url, empty for urls the browser resolves elsewhere
func documentPath(rawURL string) string {
	uri, err := url.Parse(rawURL)
	if err != nil || uri.Scheme != "" || uri.Host != "" || strings.HasPrefix(uri.Path, "/") {
		return ""
	}
	p := path.Clean(uri.Path)
	if !fs.ValidPath(p) || p == "." {
		return ""
	}
	return p
}
