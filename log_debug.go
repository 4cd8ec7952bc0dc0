//go:build debug

package voronoi2d

import (
	"log"
	"os"
)

// Debug logger instance
var logger = log.New(os.Stderr, "[voronoi2d DEBUG] ", log.LstdFlags)

// logDebugf logs a sweep-tracing message if debug logging is enabled.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
