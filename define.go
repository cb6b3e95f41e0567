package swagview

import "github.com/goodluckxu-go/swagview/swagger"

// HandleName is the name the constructed viewer is published under
const HandleName = swagger.HandleName

type LogLevel uint

const (
	LogInfo LogLevel = 1 << iota
	LogDebug
	LogWarning
	LogError
	LogFail
)

const LogAll = LogInfo | LogDebug | LogWarning | LogError | LogFail

// ParseLogLevel maps a level name to every level at or above it
func ParseLogLevel(name string) (LogLevel, bool) {
	switch name {
	case "debug":
		return LogAll, true
	case "info":
		return LogInfo | LogWarning | LogError | LogFail, true
	case "warning", "warn":
		return LogWarning | LogError | LogFail, true
	case "error":
		return LogError | LogFail, true
	case "fatal":
		return LogFail, true
	}
	return 0, false
}
