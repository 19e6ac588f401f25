package msprep

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process-wide logrus.Logger every component's
// *logrus.Entry is derived from, replacing the teacher's bare log.Printf
// calls with structured fields (scan, charge, component, task).
func NewLogger(debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
