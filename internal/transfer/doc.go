// Package transfer defines the flat image message exchanged between the client and the service.
//
// A transfer Image carries an encoded image in its original container format
// together with its color classification and the width and height the sender
// declares. The four fields and their JSON names are the wire schema:
//
//	{"color": 0, "data": "<base64>", "width": 2, "height": 3}
//
// Messages are built once per outgoing image and are not modified afterwards.
// Width and height are passed through as given; nothing checks them against
// the pixel grid encoded in Data.
package transfer
