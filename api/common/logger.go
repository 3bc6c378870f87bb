package common

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Log Levels
// --------------------------------------------------------------------------

// LogLevel controls how verbose a logger is. Higher levels include all
// lower ones.
type LogLevel int

const (
	CRITICAL LogLevel = iota
	ERROR
	WARNING
	INFO
	DEBUG
)

// --------------------------------------------------------------------------
// Logger Interface
// --------------------------------------------------------------------------

// ILogger is the leveled logger used by all server and client components.
type ILogger interface {
	SetLevel(level LogLevel)
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Panicf(format string, args ...interface{})
}

// vanadiumLogger implements the ILogger interface with custom formatting
type vanadiumLogger struct {
	name   string
	level  LogLevel
	logger *log.Logger
}

func (l *vanadiumLogger) SetLevel(level LogLevel) {
	l.level = level
}

func (l *vanadiumLogger) Debugf(format string, args ...interface{}) {
	if l.level >= DEBUG {
		l.log("DEBUG", format, args...)
	}
}

func (l *vanadiumLogger) Infof(format string, args ...interface{}) {
	if l.level >= INFO {
		l.log("INFO", format, args...)
	}
}

func (l *vanadiumLogger) Warningf(format string, args ...interface{}) {
	if l.level >= WARNING {
		l.log("WARN", format, args...)
	}
}

func (l *vanadiumLogger) Errorf(format string, args ...interface{}) {
	if l.level >= ERROR {
		l.log("ERROR", format, args...)
	}
}

func (l *vanadiumLogger) Panicf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// log formats and writes a log message. this internal helper is used by the public methods
func (l *vanadiumLogger) log(levelStr string, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("%-5s | %-15s | %s", levelStr, l.name, message)
}

// --------------------------------------------------------------------------
// Logger Registry
// --------------------------------------------------------------------------

var loggers = xsync.NewMapOf[string, ILogger]()

// GetLogger returns the logger registered under the given name, creating it
// with level INFO on first use. Loggers are shared, every caller asking for
// the same name gets the same instance.
func GetLogger(name string) ILogger {
	l, _ := loggers.LoadOrCompute(name, func() ILogger {
		return &vanadiumLogger{
			name:   name,
			level:  INFO,
			logger: log.New(os.Stdout, "", log.Ldate|log.Ltime),
		}
	})
	return l
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// parseLogLevel converts a string level to LogLevel
func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warning", "warn":
		return WARNING
	case "error":
		return ERROR
	default:
		panic(fmt.Sprintf("invalid log level: %s. must be one of debug, info, warn, error", level))
	}
}

// --------------------------------------------------------------------------
// Logger initialization
// --------------------------------------------------------------------------

// InitLoggers sets the configured level on all loggers used by the service.
func InitLoggers(config ServerConfig) {
	for _, name := range []string{"store", "server", "client", "codec"} {
		GetLogger(name).SetLevel(parseLogLevel(config.LogLevel))
	}
}
