package utils

import (
	"io"
	"log"
	"os"
)

// Logger writes levelled log lines for the game host
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger creates a logger writing to out, or stderr when out is nil
func NewLogger(out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		infoLogger:  log.New(out, "[LIFE-INFO] ", log.Ldate|log.Ltime),
		warnLogger:  log.New(out, "[LIFE-WARN] ", log.Ldate|log.Ltime),
		errorLogger: log.New(out, "[LIFE-ERROR] ", log.Ldate|log.Ltime),
	}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return NewLogger(io.Discard)
}

func (l *Logger) Info(msg string) {
	l.infoLogger.Println(msg)
}

func (l *Logger) Warn(msg string) {
	l.warnLogger.Println(msg)
}

func (l *Logger) Error(msg string) {
	l.errorLogger.Println(msg)
}

// Event logs a game lifecycle event with its generation
func (l *Logger) Event(eventType string, generation int, details string) {
	l.infoLogger.Printf("[EVENT:%s] gen=%d | %s", eventType, generation, details)
}
