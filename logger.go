package quadrilateral

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// loggerPtr stores the active logger. Accessed atomically so that SetLogger
// can be called concurrently with containment checks on other goroutines.
var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// A logger that discards everything. The level is set to panic so that
// entries are never even formatted.
func newNopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger configures the logger for this package. By default nothing is
// logged. Pass nil to go back to the silent default.
//
// Log levels used:
//   - debug: the derived shape of every classified quadrilateral
//   - warn: quadrilaterals that cannot be classified
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *logrus.Logger {
	return loggerPtr.Load()
}
