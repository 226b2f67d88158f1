package logging

import (
	"sync"
)

// Logger is a type that is responsible for storing and logging output from the
// formatter as necessary
type Logger struct {
	errorCount int // Total encountered errors
	LogLevel   int

	// warnings is a list of all warnings to be logged at the end of formatting
	warnings []LogMessage

	// m is the mutex used to synchonize the printing of messages: files are
	// formatted concurrently and may report at the same time
	m *sync.Mutex
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors and closing notification (success/fail)
	LogLevelWarning        // errors, warnings, and closing message
	LogLevelVerbose        // errors, warnings, version and progress summary, closing message (DEFAULT)
)

// newLogger creates a new logger struct
func newLogger(loglevel int) Logger {
	return Logger{
		LogLevel: loglevel,
		m:        &sync.Mutex{},
	}
}

// handleMsg prompts to logger to process a message -- errors are displayed
// immediately and warnings are held until the end of the run
func (l *Logger) handleMsg(lm LogMessage) {
	l.m.Lock()
	defer l.m.Unlock()

	if lm.isError() {
		l.errorCount++

		if l.LogLevel > LogLevelSilent {
			displayEndPhase(false)
			lm.display()
		}
	} else {
		l.warnings = append(l.warnings, lm)
	}
}

// counts returns the number of errors and warnings logged so far
func (l *Logger) counts() (int, int) {
	l.m.Lock()
	defer l.m.Unlock()

	return l.errorCount, len(l.warnings)
}
