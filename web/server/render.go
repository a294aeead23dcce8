package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// RenderComplete is the final event of a streamed render
type RenderComplete struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	ImageData    string `json:"imageData"` // Base64 encoded PNG
	TotalSamples int    `json:"totalSamples"`
	Tiles        int    `json:"tiles"`
	ElapsedMs    int64  `json:"elapsedMs"`
}

// handleRender renders one image and responds with the PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	pipeline, err := s.setupRenderingPipeline(req, s.logger)
	if err != nil {
		writeError(w, pipelineErrorStatus(err), err.Error())
		return
	}

	img, stats, err := pipeline.Raytracer.Render(r.Context())
	if err != nil {
		// Client went away; nobody is listening for the response
		s.logger.Printf("Render of %s abandoned: %v\n", req.Scene, err)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleRenderStream renders one image while streaming its log over SSE,
// then sends the image in a "complete" event
func (s *Server) handleRenderStream(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	// Single writer goroutine owns w
	sseEventChan := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		s.writeSSEEvents(ctx, w, sseEventChan)
		close(writerDone)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan, s.logger)
	consoleDone := make(chan struct{})
	go func() {
		s.streamConsoleMessages(ctx, consoleChan, sseEventChan)
		close(consoleDone)
	}()

	img, stats, err := s.renderWithLogger(ctx, req, webLogger)
	close(consoleChan)
	<-consoleDone

	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	imageData, err := imageToBase64PNG(img)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	data, err := json.Marshal(RenderComplete{
		Width:        img.Bounds().Dx(),
		Height:       img.Bounds().Dy(),
		ImageData:    imageData,
		TotalSamples: stats.TotalSamples,
		Tiles:        stats.Tiles,
		ElapsedMs:    stats.Elapsed.Milliseconds(),
	})
	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: "complete", Data: string(data)}:
	case <-ctx.Done():
	}
}

func (s *Server) renderWithLogger(ctx context.Context, req *RenderRequest, logger core.Logger) (*image.RGBA, renderer.RenderStats, error) {
	pipeline, err := s.setupRenderingPipeline(req, logger)
	if err != nil {
		return nil, renderer.RenderStats{}, err
	}
	return pipeline.Raytracer.Render(ctx)
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents writes events until the channel is closed or the client
// leaves. After a failed write the remaining events are drained unwritten.
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, sseEventChan <-chan SSEEvent) {
	broken := false
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				return
			}
			if broken {
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
				broken = true
				continue
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			return
		}
	}
}

// streamConsoleMessages forwards console messages until consoleChan is closed
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, sseEventChan chan<- SSEEvent) {
	for consoleMsg := range consoleChan {
		data, err := json.Marshal(consoleMsg)
		if err != nil {
			s.logger.Printf("Error marshaling console message: %v\n", err)
			continue
		}

		select {
		case sseEventChan <- SSEEvent{Type: "console", Data: string(data)}:
		case <-ctx.Done():
		}
	}
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan<- SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
	}
}

// pipelineErrorStatus maps setup errors to HTTP status codes
func pipelineErrorStatus(err error) int {
	if errors.Is(err, scene.ErrUnknownScene) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
