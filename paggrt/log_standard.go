package paggrt

import (
	"log"
	"os"
)

// The standard library's global logger writes to stderr by default; pagg
// logs go to stdout unless SetLogger installs a rotating file sink.
func init() {
	log.SetOutput(os.Stdout)
}

// stdLogger is the default Logger, writing through the standard library's
// global logger until SetLogger installs a rotating file sink.
type stdLogger struct{}

func (stdLogger) Debugf(format string, args ...interface{}) {
	log.Printf("   DEBUG "+format, args...)
}

func (stdLogger) Infof(format string, args ...interface{}) {
	log.Printf("    INFO "+format, args...)
}

func (stdLogger) Warningf(format string, args ...interface{}) {
	log.Printf(" WARNING "+format, args...)
}

func (stdLogger) Errorf(format string, args ...interface{}) {
	log.Printf("   ERROR "+format, args...)
}

func (stdLogger) Criticalf(format string, args ...interface{}) {
	log.Printf("CRITICAL "+format, args...)
}

func (stdLogger) Shutdown() {}
