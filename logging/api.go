package logging

import (
	"errors"
	"fmt"
	"os"
)

// logger is a global reference to a shared Logger (created/initialized with the
// CLI, but separated for general usage)
var logger = newLogger(LogLevelVerbose)

// Initialize initializes the global logger with the provided log level
func Initialize(loglevelname string) {
	logger = newLogger(LogLevelFromName(loglevelname))
}

// LogLevelFromName converts the name of a log level into its enumerated value
func LogLevelFromName(loglevelname string) int {
	switch loglevelname {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warn", "warning":
		return LogLevelWarning
	// everything else (including invalid log levels) should default to verbose
	default:
		return LogLevelVerbose
	}
}

// ShouldProceed indicates whether or not the log module has encountered any
// errors.  Files are formatted concurrently so errors accumulate here rather
// than stopping the run.
func ShouldProceed() bool {
	errorCount, _ := logger.counts()
	return errorCount == 0
}

// Counts returns the number of errors and warnings logged so far
func Counts() (int, int) {
	return logger.counts()
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.  Most log functions will simply fail silently if below their appropriate
// log level.

// LogFormatError logs an error encountered formatting a file.  If the error
// carries a source position (see Positioned), the offending line is shown.
func LogFormatError(path string, err error) {
	fm := &FormatMessage{
		Path:    path,
		Message: err.Error(),
		IsError: true,
	}

	var perr Positioned
	if errors.As(err, &perr) {
		line, col, msg := perr.Position()
		fm.Position = &TextPosition{Line: line, Col: col}
		fm.Message = msg
	}

	logger.handleMsg(fm)
}

// LogFormatWarning logs a warning about a formatted file.  pos may be nil.
func LogFormatWarning(path string, pos *TextPosition, message string) {
	logger.handleMsg(&FormatMessage{
		Path:     path,
		Position: pos,
		Message:  message,
		IsError:  false,
	})
}

// LogConfigError logs an error related to the formatter configuration
func LogConfigError(kind, message string) {
	logger.handleMsg(&ConfigMessage{Kind: kind, Message: message, IsError: true})
}

// LogConfigWarning logs a warning related to the formatter configuration
func LogConfigWarning(kind, message string) {
	logger.handleMsg(&ConfigMessage{Kind: kind, Message: message, IsError: false})
}

// LogFatal logs a fatal error that was not expected and exits the program
func LogFatal(message string, args ...interface{}) {
	if logger.LogLevel > LogLevelSilent {
		logger.m.Lock()
		displayEndPhase(false)
		displayFatalError(fmt.Sprintf(message, args...))
		logger.m.Unlock()
	}

	os.Exit(1)
}

// Positioned is implemented by errors which know where in a source file they
// occurred.  Position returns the line, column and the message without
// position information.
type Positioned interface {
	error
	Position() (int, int, string)
}

// -----------------------------------------------------------------------------
// Below are all the "aesthetic" reporting functions that will only run if the
// log level is to verbose.

// ReportHeader reports the header displayed before formatting begins
func ReportHeader(profile string, width int) {
	if logger.LogLevel == LogLevelVerbose {
		displayHeader(profile, width)
	}
}

// showProgress indicates whether phases display a spinner.  The spinner is
// drawn on standard output so it must be off whenever results are printed
// there.
var showProgress = true

// ShowProgress enables or disables the phase spinner
func ShowProgress(show bool) {
	showProgress = show
}

// BeginPhase begins a new phase of the run (displaying a spinner)
func BeginPhase(phase string) {
	if logger.LogLevel == LogLevelVerbose && showProgress {
		logger.m.Lock()
		displayBeginPhase(phase)
		logger.m.Unlock()
	}
}

// EndPhase ends the current phase successfully if no errors were logged
func EndPhase() {
	logger.m.Lock()
	displayEndPhase(logger.errorCount == 0)
	logger.m.Unlock()
}

// ReportFinished displays all deferred warnings and the closing message
func ReportFinished() {
	errorCount, warningCount := logger.counts()

	if logger.LogLevel >= LogLevelWarning {
		for _, warning := range logger.warnings {
			warning.display()
		}
	}

	if logger.LogLevel > LogLevelSilent {
		displayFinished(errorCount == 0, errorCount, warningCount)
	}
}
