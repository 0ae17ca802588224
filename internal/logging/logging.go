// Package logging configures the process-wide logrus logger.
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It works with default settings before Init is
// called, so library code and tests can log without setup.
var Log = logrus.New()

// Init applies environment configuration. Call once at startup.
//
//	LOG_LEVEL:  panic|fatal|error|warn|info|debug|trace (default info)
//	LOG_FORMAT: "json" for machine-readable output, anything else for text
func Init() {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	Log.SetOutput(os.Stderr)
}
