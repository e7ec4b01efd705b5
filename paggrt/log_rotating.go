package paggrt

import (
	"fmt"
	"log"

	"github.com/natefinch/lumberjack"
)

// LogConfig configures an on-disk rotating log, mirroring the shape of a
// production service's -logfile flag. Zero value means "log to stdout".
type LogConfig struct {
	Logfile string
	MaxSize int // megabytes
	MaxAge  int // days
}

type rotatingLogger struct {
	*lumberjack.Logger
}

// SetLogger installs a rotating file logger per c, or leaves the default
// stdout logger in place if c.Logfile is empty.
func (c *LogConfig) SetLogger() {
	if c == nil || c.Logfile == "" {
		Infof("logging to stdout; no -logfile given")
		return
	}
	fmt.Printf("logging to: %s\n", c.Logfile)
	l := &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize,
		MaxAge:   c.MaxAge,
	}
	log.SetOutput(l)
	logger = rotatingLogger{l}
}

func (rl rotatingLogger) Debugf(format string, args ...interface{}) {
	log.Printf("   DEBUG "+format, args...)
}

func (rl rotatingLogger) Infof(format string, args ...interface{}) {
	log.Printf("    INFO "+format, args...)
}

func (rl rotatingLogger) Warningf(format string, args ...interface{}) {
	log.Printf(" WARNING "+format, args...)
}

func (rl rotatingLogger) Errorf(format string, args ...interface{}) {
	log.Printf("   ERROR "+format, args...)
}

func (rl rotatingLogger) Criticalf(format string, args ...interface{}) {
	log.Printf("CRITICAL "+format, args...)
}

func (rl rotatingLogger) Shutdown() {
	if rl.Logger != nil {
		rl.Close()
	}
}
