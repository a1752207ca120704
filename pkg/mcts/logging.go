package mcts

import "github.com/sirupsen/logrus"

// log is the package-wide structured logger. Callers embedding this module in a larger
// application can reconfigure it (formatter, level, output) via SetLogger.
var log = logrus.New()

// SetLogger replaces the package-wide logger, e.g. to route mcts' status/event lines through an
// application's own logrus instance.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

func debugf(fields logrus.Fields, format string, args ...interface{}) {
	log.WithFields(fields).Debugf(format, args...)
}

func infof(fields logrus.Fields, format string, args ...interface{}) {
	log.WithFields(fields).Infof(format, args...)
}

func warnf(fields logrus.Fields, format string, args ...interface{}) {
	log.WithFields(fields).Warnf(format, args...)
}
