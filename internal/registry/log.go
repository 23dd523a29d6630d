package registry

import (
	"io"
	"log"
	"sync/atomic"
)

var logger atomic.Pointer[log.Logger]

func init() {
	logger.Store(log.New(io.Discard, "", 0))
}

// SetLogger routes registry load messages to l. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger.Store(l)
}

func logf(format string, args ...any) {
	logger.Load().Printf("[Registry] "+format, args...)
}
