package app

import (
	"net/http"

	"github.com/goodluckxu-go/swagview/swagger"
)

// Mux mounts ui under prefix, prefix "" mounts it at the root.
// The bare prefix redirects to prefix + "/" so the page's relative links resolve.
func Mux(mux *http.ServeMux, prefix string, ui *swagger.UI) {
	if prefix == "" {
		mux.Handle("/", ui)
		return
	}
	mux.Handle(prefix+"/", http.StripPrefix(prefix, ui))
	mux.Handle(prefix, http.RedirectHandler(prefix+"/", http.StatusMovedPermanently))
}
