package logger

// Logger provides a standardized logging interface for the iNaturalist Go client.
// It defines methods for different log levels (Debug, Info, Warn, Error) so users
// can plug in their preferred logging implementation or use the provided Noop
// logger to disable logging entirely.
//
// The logger is used throughout the client for:
// - Scheduler lifecycle (queue activation, drain, rate-limiting transitions)
// - Request dispatch debugging
// - Recovered panics raised by request callbacks
// - Authentication state changes
//
// Transport failures are reported to the originating request only
// and are never logged here.
//
// Usage Example:
//
//	client := inaturalist_go.NewClient(inaturalist_go.WithLogger(myLogger))
//
//	// Print everything from Info and above to stdout
//	client := inaturalist_go.NewClient(
//	    inaturalist_go.WithLogger(logger.NewStdOut(logger.LevelInfo)),
//	)
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
