// Package paggrt holds the ambient runtime state shared by every pagg
// command: log severity, the active Logger, and the small error types used
// to distinguish user-input mistakes from programmer errors.
package paggrt

import "time"

// ModeFlag is a logging severity threshold.
type ModeFlag uint

const (
	DebugMode ModeFlag = iota
	InfoMode
	WarningMode
	ErrorMode
	CriticalMode
	SilentMode
)

var (
	// Verbose is set by -verbose on the pagg CLIs that take it (all but
	// pagg-bfs) and gates Debugf output.
	Verbose bool

	mode   ModeFlag
	logger Logger = stdLogger{}
)

// Logger lets pagg log through whatever sink the current run configured,
// defaulting to stdout and optionally rotating to a file via LogConfig.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Criticalf(format string, args ...interface{})
	Shutdown()
}

// SetLogMode sets the minimum severity that gets written.
func SetLogMode(newMode ModeFlag) {
	mode = newMode
}

func Debugf(format string, args ...interface{}) {
	if mode <= DebugMode && Verbose {
		logger.Debugf(format, args...)
	}
}

func Infof(format string, args ...interface{}) {
	if mode <= InfoMode {
		logger.Infof(format, args...)
	}
}

func Warningf(format string, args ...interface{}) {
	if mode <= WarningMode {
		logger.Warningf(format, args...)
	}
}

func Errorf(format string, args ...interface{}) {
	if mode <= ErrorMode {
		logger.Errorf(format, args...)
	}
}

func Criticalf(format string, args ...interface{}) {
	if mode <= CriticalMode {
		logger.Criticalf(format, args...)
	}
}

func Shutdown() {
	logger.Shutdown()
}

// TimeLog appends elapsed time since its creation to every message logged
// through it. The generator CLIs use one to bracket their whole run:
//
//	t := paggrt.NewTimeLog()
//	... do work ...
//	t.Infof("run finished")
type TimeLog struct {
	start time.Time
}

func NewTimeLog() TimeLog {
	return TimeLog{time.Now()}
}

func (t TimeLog) Debugf(format string, args ...interface{}) {
	Debugf(format+": %s", append(args, time.Since(t.start))...)
}

func (t TimeLog) Infof(format string, args ...interface{}) {
	Infof(format+": %s", append(args, time.Since(t.start))...)
}

func (t TimeLog) Warningf(format string, args ...interface{}) {
	Warningf(format+": %s", append(args, time.Since(t.start))...)
}
