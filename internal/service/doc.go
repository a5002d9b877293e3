// Package service implements the image service as a JSON-RPC 2.0 endpoint over a byte stream.
//
// The service reads one JSON-RPC request per line and writes one response per
// line. The binary wires it to stdin and stdout; tests use in-memory buffers.
//
// # Methods
//
//   - initialize: Handshake; returns server info including the advertised address
//   - ping: Health check; returns an empty object
//   - image/process: Rotate and/or mean-filter a transfer image
//   - image/classify: Report the color classification and statistics of a transfer image
//
// # Message Shapes
//
// image/process params:
//
//	{"image": {"color": 1, "data": "<base64>", "width": 4, "height": 3},
//	 "rotate": "NINETY_DEG", "mean": true}
//
// The result is the processed transfer image in the same shape as "image".
//
// image/classify params:
//
//	{"image": {...}}
//
// The result holds "color", "grayscale", "width", "height" and "stats".
//
// # Errors
//
// Standard JSON-RPC error codes are used:
//   - -32700: Parse error (line is not valid JSON; the response id is null)
//   - -32601: Method not found
//   - -32602: Invalid params (params of the wrong shape or an unknown rotation)
//   - -32000: Processing failed (undecodable or unencodable image)
//
// Blank lines are ignored. Run returns when the input ends or its context is
// cancelled, even while waiting for the next line.
package service
