package models

const (
	RequestLoggerName = "request-logger"
	BooksLoggerName   = "books-logger"
)

// LogLevel is one of the level names accepted by the log level facility.
type LogLevel string

const (
	LogLevelError LogLevel = "ERROR"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelTrace LogLevel = "TRACE"
)

var AvailableLogLevels = []LogLevel{
	LogLevelError,
	LogLevelWarn,
	LogLevelInfo,
	LogLevelDebug,
	LogLevelTrace,
}

// ParseLogLevel matches s exactly (case-sensitive) against the available levels.
func ParseLogLevel(s string) (LogLevel, bool) {
	for _, l := range AvailableLogLevels {
		if string(l) == s {
			return l, true
		}
	}
	return "", false
}
