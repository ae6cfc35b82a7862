package log

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"sync"

	"github.com/astaxie/beego/logs"
	"github.com/copernet/briskcoin/errcode"
	"github.com/pkg/errors"
)

const logFileName = "debug.log"

var (
	mlog *logs.BeeLogger

	moduleLock sync.RWMutex
	mapModule  = make(map[string]struct{})
)

type logConfig struct {
	Filename string `json:"filename,omitempty"`
	Level    int    `json:"level"`
	Rotate   bool   `json:"rotate,omitempty"`
	Daily    bool   `json:"daily,omitempty"`
	MaxDays  int64  `json:"maxdays,omitempty"`
	MaxLines int    `json:"maxlines,omitempty"`
	MaxSize  int    `json:"maxsize,omitempty"`
}

func init() {
	mlog = logs.NewLogger()
	mlog.EnableFuncCallDepth(true)
	mlog.SetLogFuncCallDepth(3)
}

// InitLogger sends output to dir/debug.log, or to the console when dir is
// empty, dropping anything below strLevel.
func InitLogger(dir, strLevel string) error {
	if !ValidLevel(strLevel) {
		return errcode.NewWithDesc(errcode.ErrorInvalidLogLevel, strLevel)
	}
	level := GetLevel(strLevel)

	adapter := logs.AdapterConsole
	cfg := logConfig{Level: level}
	if dir != "" {
		adapter = logs.AdapterFile
		cfg.Filename = filepath.Join(dir, logFileName)
		cfg.Rotate = true
		cfg.Daily = true
		cfg.MaxDays = 7
	}

	config, err := json.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshal log config")
	}

	mlog.Reset()
	mlog.SetLevel(level)
	if err := mlog.SetLogger(adapter, string(config)); err != nil {
		return errors.Wrapf(err, "set %s log adapter", adapter)
	}
	mlog.Debug("log config: %s", config)
	return nil
}

func GetLogger() *logs.BeeLogger {
	return mlog
}

// SetModules replaces the set of modules Print writes for.
func SetModules(modules []string) {
	moduleLock.Lock()
	defer moduleLock.Unlock()

	mapModule = make(map[string]struct{}, len(modules))
	for _, m := range modules {
		mapModule[strings.ToLower(m)] = struct{}{}
	}
}

func IsIncludeModule(module string) bool {
	moduleLock.RLock()
	defer moduleLock.RUnlock()

	_, ok := mapModule[strings.ToLower(module)]
	return ok
}

// Print logs at the named level if module has been enabled with SetModules.
func Print(module string, level string, format string, reason ...interface{}) {
	if !IsIncludeModule(module) {
		return
	}
	switch GetLevel(level) {
	case logs.LevelEmergency:
		mlog.Emergency(format, reason...)
	case logs.LevelAlert:
		mlog.Alert(format, reason...)
	case logs.LevelCritical:
		mlog.Critical(format, reason...)
	case logs.LevelError:
		mlog.Error(format, reason...)
	case logs.LevelWarning:
		mlog.Warning(format, reason...)
	case logs.LevelNotice:
		mlog.Notice(format, reason...)
	case logs.LevelInformational:
		mlog.Informational(format, reason...)
	default:
		mlog.Debug(format, reason...)
	}
}

func Emergency(format string, v ...interface{}) {
	mlog.Emergency(format, v...)
}

func Alert(format string, v ...interface{}) {
	mlog.Alert(format, v...)
}

func Critical(format string, v ...interface{}) {
	mlog.Critical(format, v...)
}

func Error(format string, v ...interface{}) {
	mlog.Error(format, v...)
}

func Warn(format string, v ...interface{}) {
	mlog.Warning(format, v...)
}

func Notice(format string, v ...interface{}) {
	mlog.Notice(format, v...)
}

func Info(format string, v ...interface{}) {
	mlog.Informational(format, v...)
}

func Debug(format string, v ...interface{}) {
	mlog.Debug(format, v...)
}

// Closure defers building an expensive log argument until it is formatted.
type Closure func() string

func (c Closure) String() string {
	return c()
}

func InitLogClosure(c func() string) Closure {
	return Closure(c)
}
