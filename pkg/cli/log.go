package cli

import (
	"fmt"
	"log"
	"os"
)

var (
	logger    = log.New(os.Stderr, "depthify: ", 0)
	debugMode bool
)

// setDebug toggles debug output for the rest of the process.
func setDebug(on bool) {
	debugMode = on
}

func debugf(format string, args ...interface{}) {
	if debugMode {
		fmt.Fprintf(os.Stderr, "depthify-debug: "+format+"\n", args...)
	}
}
