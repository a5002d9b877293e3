// Package pipeline applies the image operations a client can request from the service.
//
// Two operations are supported and run in this order:
//   - Rotation by a quarter, half, or three-quarter turn counter-clockwise
//   - A 3x3 mean (box) filter
//
// Process decodes a transfer image, applies the requested operations, and
// repackages the result in the same container format with a fresh color
// classification. Quarter turns swap the declared width and height.
package pipeline
