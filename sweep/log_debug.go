//go:build debug

package sweep

import (
	"log"
	"os"
)

var debugLogger = log.New(os.Stderr, "[sweepgeom/sweep DEBUG] ", log.LstdFlags)

func logDebugf(format string, v ...interface{}) {
	debugLogger.Printf(format, v...)
}
