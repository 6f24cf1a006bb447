package nRFModel

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Formatter = new(logrus.TextFormatter)
	l.Level = logrus.InfoLevel
	l.Out = os.Stderr
	return l
}

// SetLogger replaces the package logger, nil restores the default one
func SetLogger(l *logrus.Logger) {
	if nil == l {
		l = newLogger()
	}
	log = l
}

// invariantViolation reports a register value the chip can never produce.
// It does not return: logrus panics after writing the entry.
func invariantViolation(fields logrus.Fields, message string) {
	log.WithFields(fields).Panic(message)
}
