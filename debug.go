package swagview

import (
	"strings"

	"github.com/goodluckxu-go/swagview/swagger"
)

func debugPrintRouter(log Logger, prefix string, routers []swagger.Router) {
	if log == nil {
		return
	}
	log.Debug("All routes:")
	headMethod := "METHODS"
	headPath := "PATH"
	methods := "GET,HEAD"
	maxMethodLen := len(methods)
	maxPathLen := len(headPath)
	for _, router := range routers {
		if pathLen := len(prefix + router.Path); pathLen > maxPathLen {
			maxPathLen = pathLen
		}
	}
	log.Debug(strings.Repeat("-", maxMethodLen+maxPathLen+7))
	log.Debug("| %v | %v |", spanFill(headMethod, len(headMethod), maxMethodLen),
		spanFill(headPath, len(headPath), maxPathLen))
	for _, router := range routers {
		p := prefix + router.Path
		log.Debug("| %v | %v |", spanFill(methods, len(methods), maxMethodLen), spanFill(p, len(p), maxPathLen))
	}
	log.Debug(strings.Repeat("-", maxMethodLen+maxPathLen+7))
}
