package server

import (
	"fmt"
	"log"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RequestLogger implements core.Logger by tagging each message with a render ID
type RequestLogger struct {
	renderID string
	out      *log.Logger
}

// NewRequestLogger creates a logger for a specific render
func NewRequestLogger(renderID string, out *log.Logger) core.Logger {
	return &RequestLogger{
		renderID: renderID,
		out:      out,
	}
}

// Printf implements core.Logger interface
func (rl *RequestLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	rl.out.Printf("[%s] %s", rl.renderID, message)
}
