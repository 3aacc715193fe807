package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level orders log verbosity from Debug (everything) to Error (failures only).
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// backendLevels maps Level onto go-logging's reversed scale. Anything not
// listed is treated as Error.
var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

func (l Level) backend() logging.Level {
	if lvl, ok := backendLevels[l]; ok {
		return lvl
	}
	return logging.ERROR
}

var lineFormat = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var (
	backend logging.LeveledBackend
	level   = Notice
)

// Logger is what renderer, scene and cmd log through. A *logging.Logger
// satisfies it.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Notice(v ...interface{})
	Noticef(format string, v ...interface{})
	Warning(v ...interface{})
	Warningf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for module name; the name shows up in each line.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink sends output from every module to w without touching the level.
func SetSink(w io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), lineFormat)
	backend = logging.AddModuleLevel(formatted)
	logging.SetBackend(backend)
	SetLevel(level)
}

// SetLevel drops messages below l for all modules.
func SetLevel(l Level) {
	level = l
	backend.SetLevel(l.backend(), "")
}

func init() {
	SetSink(os.Stderr)
}
