package cli

import "fmt"

// Role selects which flag schema a command accepts.
type Role int

const (
	Client Role = iota
	Service
)

func (r Role) String() string {
	switch r {
	case Client:
		return "client"
	case Service:
		return "service"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// option describes one flag in a role's schema.
type option struct {
	name     string
	usage    string
	required bool
	boolean  bool
}

var clientSchema = []option{
	{name: "port", usage: "Port used by the client to communicate with the service", required: true},
	{name: "host", usage: "Host address of the service", required: true},
	{name: "input", usage: "Input directory containing the images to send", required: true},
	{name: "output", usage: "Output directory for the processed images", required: true},
	{name: "rotate", usage: "Rotation to apply: NONE, NINETY_DEG, ONE_EIGHTY_DEG, TWO_SEVENTY_DEG"},
	{name: "mean", usage: "Apply a mean blur filter to each image", boolean: true},
}

var serviceSchema = []option{
	{name: "host", usage: "Host address the service is reachable at", required: true},
	{name: "port", usage: "Port the service is exposed on", required: true},
}

// schema returns the options of r. Unknown roles have none.
func (r Role) schema() []option {
	switch r {
	case Client:
		return clientSchema
	case Service:
		return serviceSchema
	}
	return nil
}
