package webstorage

// DefaultLogger is a no-op logger implementation
type DefaultLogger struct{}

// Debug implements Logger.Debug
func (l *DefaultLogger) Debug(format string, args ...interface{}) {}

// Info implements Logger.Info
func (l *DefaultLogger) Info(format string, args ...interface{}) {}

// Warn implements Logger.Warn
func (l *DefaultLogger) Warn(format string, args ...interface{}) {}

// Error implements Logger.Error
func (l *DefaultLogger) Error(format string, args ...interface{}) {}

// NewDefaultLogger creates a new default no-op logger
func NewDefaultLogger() Logger {
	return &DefaultLogger{}
}

// namedLogger prefixes every message with the storage name.
type namedLogger struct {
	name string
	next Logger
}

func newNamedLogger(name string, next Logger) Logger {
	if next == nil {
		next = NewDefaultLogger()
	}
	if name == "" {
		return next
	}
	return &namedLogger{name: name, next: next}
}

func (l *namedLogger) Debug(format string, args ...interface{}) {
	l.next.Debug("["+l.name+"] "+format, args...)
}

func (l *namedLogger) Info(format string, args ...interface{}) {
	l.next.Info("["+l.name+"] "+format, args...)
}

func (l *namedLogger) Warn(format string, args ...interface{}) {
	l.next.Warn("["+l.name+"] "+format, args...)
}

func (l *namedLogger) Error(format string, args ...interface{}) {
	l.next.Error("["+l.name+"] "+format, args...)
}
