// Package cli defines the command-line surface of the two transfer roles.
//
// Each Role selects a fixed flag schema:
//
//	client:  --port --host --input --output (required), --rotate, --mean
//	service: --host --port (required)
//
// Parse runs a role's schema over an argument list and returns the recognized
// flags as Args. NewCommand exposes the same schema as a cobra command so the
// binaries get usage output and non-zero exits for free. A missing required flag
// is reported as an error naming the flag.
package cli
