package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
	serverLog   core.Logger
}

// NewWebLogger creates a new web logger for a specific render. Every message
// is also written to serverLog, tagged with renderID.
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage, serverLog core.Logger) core.Logger {
	if serverLog == nil {
		serverLog = core.NopLogger{}
	}
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
		serverLog:   serverLog,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	wl.serverLog.Printf("[%s] %s", wl.renderID, message)

	if wl.consoleChan == nil {
		return
	}

	level := "info"
	if strings.HasPrefix(message, "Render warning") {
		level = "warning"
	} else if strings.HasPrefix(message, "Render stopped") {
		level = "error"
	}

	// Never block the render on a slow client
	select {
	case wl.consoleChan <- ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
		Level:     level,
	}:
	default:
	}
}
