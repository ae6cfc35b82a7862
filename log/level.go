package log

import (
	"strings"

	"github.com/astaxie/beego/logs"
)

const defaultLogLevel = logs.LevelDebug

var levelMap = map[string]int{
	"emergency":     logs.LevelEmergency,
	"alert":         logs.LevelAlert,
	"critical":      logs.LevelCritical,
	"error":         logs.LevelError,
	"warn":          logs.LevelWarning,
	"warning":       logs.LevelWarning,
	"notice":        logs.LevelNotice,
	"info":          logs.LevelInformational,
	"informational": logs.LevelInformational,
	"debug":         logs.LevelDebug,
}

// GetLevel maps a level name to its beego level. Unknown names map to debug.
func GetLevel(level string) int {
	ele, ok := levelMap[strings.ToLower(level)]
	if !ok {
		return defaultLogLevel
	}
	return ele
}

func ValidLevel(level string) bool {
	_, ok := levelMap[strings.ToLower(level)]
	return ok
}
