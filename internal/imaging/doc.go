// Package imaging provides the image primitives shared by the transfer client and service.
//
// This package converts between decoded images and the encoded bytes that travel
// inside a transfer message, and classifies images as grayscale or color before
// they are packaged. All operations are stateless and work with standard Go
// image.Image values wrapped in an Image, which carries the container format the
// bytes were decoded from.
//
// # Picture Capability
//
// Classification and packaging are written against the Picture interface rather
// than a concrete image type:
//   - Format: the container format tag ("png", "jpeg", "gif", "bmp", "tiff", "webp")
//   - Mode: the pixel representation derived from the concrete Go image type
//   - Dimensions: width and height in pixels
//   - Pixel: 8-bit R, G, B, A channel values at a 0-based coordinate
//   - Encode: the image re-encoded into a named container format
//
// Tests and alternative image backends can substitute their own Picture.
//
// # Coordinate System
//
// Pixel coordinates are 0-based and relative to the image origin, so (0,0) is
// always the top-left pixel even when the underlying image bounds do not start
// at zero.
//
// # Formats
//
// Decoding autodetects PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding supports
// PNG, JPEG, GIF, BMP and TIFF; WebP is decode-only and encoding it returns
// ErrUnsupportedFormat.
//
// # Thread Safety
//
// No function in this package holds shared state. Concurrent calls on different
// images are safe; concurrent calls on the same image are safe as long as the
// caller does not mutate it.
package imaging
