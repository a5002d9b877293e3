package service

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/apex/log"

	"github.com/ironsheep/image-transfer/internal/pipeline"
)

// maxRequestSize bounds a single request line; image payloads are base64 encoded inline.
const maxRequestSize = 64 << 20

const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeProcessing     = -32000
)

// Server handles image service requests.
type Server struct {
	addr      string
	version   string
	processor pipeline.Processor
}

// Request represents an incoming JSON-RPC request
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response represents an outgoing JSON-RPC response
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error represents a JSON-RPC error
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a server that advertises addr and runs images through p.
func New(addr, version string, p pipeline.Processor) *Server {
	return &Server{
		addr:      addr,
		version:   version,
		processor: p,
	}
}

// Run serves requests read from r, writing responses to w, until r is
// exhausted or ctx is cancelled.
//
// Lines are read on a separate goroutine so that cancellation is seen while
// waiting for input. After cancellation that goroutine stays blocked in
// r.Read until r returns; callers that need it gone must close r.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	lines, errc := readLines(ctx, r)
	encoder := json.NewEncoder(w)

	for {
		var line []byte
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-errc
			}
			line = l
		}

		// A line and cancellation can be ready together; cancellation wins.
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(line) == 0 {
			continue
		}

		var resp *Response
		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			log.WithError(err).Warn("failed to parse request")
			resp = s.errorResponse(nil, codeParseError, "Parse error", err.Error())
		} else {
			resp = s.handleRequest(ctx, &req)
		}

		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				return fmt.Errorf("failed to encode response: %w", err)
			}
		}
	}
}

// readLines scans r line by line onto the returned channel, which is closed
// when scanning stops. Exactly one value is then sent on the error channel:
// nil at end of input, the scanner error, or ctx.Err() if cancelled.
func readLines(ctx context.Context, r io.Reader) (<-chan []byte, <-chan error) {
	lines := make(chan []byte)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		buf := make([]byte, 0, 64*1024)
		scanner.Buffer(buf, maxRequestSize)

		for scanner.Scan() {
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errc <- fmt.Errorf("scanner error: %w", err)
			return
		}
		errc <- nil
	}()

	return lines, errc
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(ctx context.Context, req *Request) *Response {
	log.WithField("method", req.Method).Debug("request")

	switch req.Method {
	case "initialize":
		return s.result(req.ID, map[string]interface{}{
			"serverInfo": map[string]interface{}{
				"name":    "image-service",
				"version": s.version,
				"address": s.addr,
			},
			"methods": []string{"ping", "image/process", "image/classify"},
		})
	case "notifications/initialized":
		return nil
	case "ping":
		return s.result(req.ID, map[string]interface{}{})
	case "image/process":
		return s.handleProcess(ctx, req)
	case "image/classify":
		return s.handleClassify(req)
	default:
		return s.errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), "")
	}
}

func (s *Server) result(id interface{}, v interface{}) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      id,
		Result:  v,
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *Response {
	resp := &Response{
		JSONRPC: "2.0",
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	}
	if data != "" {
		resp.Error.Data = data
	}
	return resp
}
