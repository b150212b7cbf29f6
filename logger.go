package dia

import (
	"io/ioutil"
	"log"
)

func init() {
	log.SetFlags(0) // quiet by default
}

// NewLogger returns a logger with max prefix len 11. Output is
// discarded until SetOutput is called.
func NewLogger() *Logger {
	l := &Logger{
		Logger: log.New(ioutil.Discard, "", log.Flags()),
	}
	l.SetMaxIDLen(11)
	return l
}

type Logger struct {
	*log.Logger
	debug bool
	// prefix trimming
	maxLen uint
}

func (l *Logger) SetDebug(v bool) { l.debug = v }

// SetMaxIDLen configures the logger to trim the prefix to number of
// characters. Use 0 to not trim.
func (l *Logger) SetMaxIDLen(max uint) {
	l.maxLen = max
}

// SetLogPrefix uses the given id as prefix, trimmed from the left to
// the configured max length.
func (l *Logger) SetLogPrefix(v string) {
	v = newPrefix(v, l.maxLen)
	l.SetPrefix(v + " ")
}

// Debug logs v only when debug is enabled.
func (l *Logger) Debug(v ...interface{}) {
	if !l.debug {
		return
	}
	l.Print(v...)
}

// ----------------------------------------

func newPrefix(s string, width uint) string {
	if v := uint(len(s)); width > 0 && v > width {
		return prefixStr + s[v-width:]
	}
	return s
}

const prefixStr = "~"
