package utils

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

const timeFormat = "2006/01/02 15:04:05.000000"

var (
	mu       sync.Mutex
	loggers  = make(map[string]*logHandle)
	level    = logrus.InfoLevel
	colorful = SupportANSIColor(os.Stderr.Fd())
)

type logHandle struct {
	*logrus.Logger

	name     string
	colorful bool
}

func (l *logHandle) Format(e *logrus.Entry) ([]byte, error) {
	lvl := strings.ToUpper(e.Level.String())
	if l.colorful {
		var color int
		switch e.Level {
		case logrus.DebugLevel, logrus.TraceLevel:
			color = 34 // blue
		case logrus.WarnLevel:
			color = 33 // yellow
		case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
			color = 31 // red
		default:
			color = 32 // green
		}
		lvl = fmt.Sprintf("\033[1;%dm%s\033[0m", color, lvl)
	}
	line := fmt.Sprintf("%s %s[%d] <%s>: %s\n",
		e.Time.Format(timeFormat), l.name, os.Getpid(), lvl, strings.TrimRight(e.Message, "\n"))
	return []byte(line), nil
}

func newLogger(name string) *logHandle {
	l := &logHandle{Logger: logrus.New(), name: name, colorful: colorful}
	l.Formatter = l
	l.SetLevel(level)
	return l
}

// GetLogger returns the logger registered under name, creating it on first use.
func GetLogger(name string) *logHandle {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}
	l := newLogger(name)
	loggers[name] = l
	return l
}

// SetLogLevel sets the level of all loggers, including ones created later.
func SetLogLevel(lvl logrus.Level) {
	mu.Lock()
	defer mu.Unlock()
	level = lvl
	for _, l := range loggers {
		l.SetLevel(lvl)
	}
}

func DisableLogColor() {
	mu.Lock()
	defer mu.Unlock()
	colorful = false
	for _, l := range loggers {
		l.colorful = false
	}
}

// SupportANSIColor reports whether fd is a terminal that understands ANSI escapes.
func SupportANSIColor(fd uintptr) bool {
	return isatty.IsTerminal(fd) && runtime.GOOS != "windows"
}
