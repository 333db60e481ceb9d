package logger

// Logger is the structured logging interface used throughout the tracker.
// Components pass a short component name plus an optional field map.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

type nopLogger struct{}

// Nop returns a logger that discards everything. Used as the default
// when a component is constructed without an explicit logger.
func Nop() Logger {
	return nopLogger{}
}

func (nopLogger) Debug(component, message string, fields map[string]interface{})   {}
func (nopLogger) Info(component, message string, fields map[string]interface{})    {}
func (nopLogger) Warning(component, message string, fields map[string]interface{}) {}
func (nopLogger) Error(component string, err error, fields map[string]interface{}) {}
