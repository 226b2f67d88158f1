package logging

// LogMessage is a message which the logger can display
type LogMessage interface {
	isError() bool
	display()
}

// TextPosition locates a message in a source file.  Lines and columns are
// 1-based.
type TextPosition struct {
	Line, Col int
}

// FormatMessage is an error or warning produced while formatting a file
type FormatMessage struct {
	// Path is the path of the file being formatted
	Path string

	// Position may be nil if the message does not concern a particular
	// place in the file
	Position *TextPosition

	Message string
	IsError bool
}

func (fm *FormatMessage) isError() bool {
	return fm.IsError
}

// ConfigMessage is an error or warning regarding the configuration
type ConfigMessage struct {
	Kind    string
	Message string
	IsError bool
}

func (cm *ConfigMessage) isError() bool {
	return cm.IsError
}
