package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goodluckxu-go/swagview/swagger"
)

// Gin mounts every route of ui on a gin router group at prefix
func Gin(router gin.IRouter, prefix string, ui *swagger.UI) {
	group := router.Group(prefix)
	for _, r := range ui.Routes() {
		handler := r.Handler
		group.GET(r.Path, gin.WrapF(handler))
		group.HEAD(r.Path, gin.WrapF(handler))
		if r.Path == "/" {
			group.GET("/index.html", gin.WrapF(handler))
			group.HEAD("/index.html", gin.WrapF(handler))
		}
	}
	if prefix != "" && prefix != "/" {
		router.GET(prefix, func(ctx *gin.Context) {
			ctx.Redirect(http.StatusMovedPermanently, prefix+"/")
		})
	}
}
