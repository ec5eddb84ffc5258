package utils

import (
	"log"
	"strings"
)

// LogEvent prints a standardized log line with module/action.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(module, action, message string) {
	log.Printf("[%s] action=%s msg=%s", strings.ToUpper(module), action, message)
}
