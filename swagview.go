package swagview

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/goodluckxu-go/swagview/app"
	"github.com/goodluckxu-go/swagview/swagger"
)

// New It is a newly created viewer server
func New(docsPath ...string) *Server {
	dPath := "/docs"
	if len(docsPath) > 0 {
		dPath = docsPath[0]
	}
	return &Server{
		log:      &levelHandleLogger{log: newDefaultLogger(), level: LogAll},
		addr:     ":8080",
		docsPath: cleanDocsPath(dPath),
	}
}

type Server struct {
	// page title, the document info title is used when empty
	Title string

	Favicon string

	// where the browser loads swagger-ui-dist from
	Assets swagger.Assets

	// holds the document the viewer config points at
	Documents fs.FS

	// Global() when nil
	Registry *Registry

	log          Logger
	addr         string
	docsPath     string
	mu           sync.Mutex
	bootstrapper *Bootstrapper
	httpServer   *http.Server
	closed       bool
	started      sync.Once
}

// SetLogger It is a function for setting custom logs, the current log level is kept
func (s *Server) SetLogger(log Logger) {
	level := LogAll
	if l, ok := s.log.(*levelHandleLogger); ok {
		level = l.level
	}
	s.log = &levelHandleLogger{log: log, level: level}
}

// SetLogLevel keeps only the given levels of the current logger
func (s *Server) SetLogLevel(level LogLevel) {
	if l, ok := s.log.(*levelHandleLogger); ok {
		l.level = level
		return
	}
	s.log = &levelHandleLogger{log: s.log, level: level}
}

// Logger It is a method of obtaining logs
func (s *Server) Logger() Logger {
	return s.log
}

// SetDocumentFile serves the file at path as the viewer document
func (s *Server) SetDocumentFile(path string) {
	s.Documents = DocumentFile(swagger.DefaultConfig().URL, path)
}

// DocsPath is the mount prefix of the viewer, "" when mounted at the root
func (s *Server) DocsPath() string {
	return s.docsPath
}

// Bootstrap constructs the viewer once and publishes it under HandleName
func (s *Server) Bootstrap() (*swagger.UI, error) {
	s.mu.Lock()
	if s.bootstrapper == nil {
		s.bootstrapper = NewBootstrapper(&swagger.Engine{
			Title:     s.Title,
			Favicon:   s.Favicon,
			Assets:    s.Assets,
			Documents: s.Documents,
		}, s.Registry)
	}
	b := s.bootstrapper
	s.mu.Unlock()
	return b.Bootstrap()
}

// Handler Return to http.Handler interface
func (s *Server) Handler() (http.Handler, error) {
	s.started.Do(func() {
		pid := strconv.Itoa(os.Getpid())
		if isDefaultLogger(s.log) {
			pid = colorDebug(pid)
		}
		s.log.Info("Started server process [%v]", pid)
	})
	ui, err := s.Bootstrap()
	if err != nil {
		s.log.Error("Viewer construction failed: %v", err)
		return nil, err
	}
	mux := http.NewServeMux()
	app.Mux(mux, s.docsPath, ui)
	debugPrintRouter(s.log, s.docsPath, ui.Routes())
	return mux, nil
}

// Run attaches the viewer to a http.Server and starts listening and serving HTTP requests.
// Note: this method will block the calling goroutine until Shutdown is called or an error happens.
func (s *Server) Run(addr ...string) error {
	if len(addr) > 0 {
		s.addr = addr[0]
	}
	handler, err := s.Handler()
	if err != nil {
		return err
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.httpServer = &http.Server{Addr: s.addr, Handler: handler}
	srv := s.httpServer
	s.mu.Unlock()
	s.log.Info("Swagview running on http://%v%v/ (Press CTRL+C to quit)", printAddr(s.addr), s.docsPath)
	if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops a server started by Run
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	srv := s.httpServer
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	s.log.Info("Shutting down")
	return srv.Shutdown(ctx)
}
