package logging

import (
	"io"
	"log"
	"os"
)

var (
	Debug   *log.Logger
	Sizer   *log.Logger
	Enabled bool
)

func init() {
	// Only enable logging if WRAPEXPLORER_DEBUG environment variable is set
	if os.Getenv("WRAPEXPLORER_DEBUG") == "" {
		Debug = log.New(io.Discard, "", 0)
		Sizer = log.New(io.Discard, "", 0)
		Enabled = false
		return
	}

	Enabled = true

	// Open debug.log once for all loggers
	debugFile, err := os.OpenFile("debug.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		// Fallback to stderr if we can't open the file
		Debug = log.New(os.Stderr, "[DEBUG] ", log.Ldate|log.Ltime)
		Sizer = log.New(os.Stderr, "[SIZER] ", log.Ldate|log.Ltime)
		return
	}

	Debug = log.New(debugFile, "", log.Lmicroseconds)
	Sizer = log.New(debugFile, "", log.Lmicroseconds)
}
