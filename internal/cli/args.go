package cli

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-transfer/internal/pipeline"
)

// ErrHelp is returned by Parse when the arguments asked for help instead of running.
var ErrHelp = errors.New("help requested")

// Args maps flag names to parsed values: string for value flags, bool for switches.
//
// Switches are always present. A value flag that was not given and has no
// default is absent.
type Args map[string]any

// String returns the value of a string flag, or "" if it is absent.
func (a Args) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Bool returns the value of a switch, or false if it is absent.
func (a Args) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

// ClientOptions is the typed form of the client's Args.
type ClientOptions struct {
	Host   string
	Port   string
	Input  string
	Output string
	Rotate pipeline.Rotation
	Mean   bool
}

// Address returns host:port of the service the client talks to.
func (o ClientOptions) Address() string {
	return net.JoinHostPort(o.Host, o.Port)
}

// Pipeline returns the processing options the client requests.
func (o ClientOptions) Pipeline() pipeline.Options {
	return pipeline.Options{Rotate: o.Rotate, Mean: o.Mean}
}

// ServiceOptions is the typed form of the service's Args.
type ServiceOptions struct {
	Host string
	Port string
}

// Address returns host:port the service advertises.
func (o ServiceOptions) Address() string {
	return net.JoinHostPort(o.Host, o.Port)
}

// Client converts a to ClientOptions, validating the rotation name.
func (a Args) Client() (ClientOptions, error) {
	rot, err := pipeline.ParseRotation(a.String("rotate"))
	if err != nil {
		return ClientOptions{}, fmt.Errorf("invalid argument %q for \"--rotate\" flag: must be one of %s",
			a.String("rotate"), strings.Join(pipeline.RotationNames(), ", "))
	}
	return ClientOptions{
		Host:   a.String("host"),
		Port:   a.String("port"),
		Input:  a.String("input"),
		Output: a.String("output"),
		Rotate: rot,
		Mean:   a.Bool("mean"),
	}, nil
}

// Service converts a to ServiceOptions.
func (a Args) Service() ServiceOptions {
	return ServiceOptions{
		Host: a.String("host"),
		Port: a.String("port"),
	}
}

// RunFunc is called with the parsed flags once a command's arguments validate.
type RunFunc func(cmd *cobra.Command, args Args) error

// NewCommand builds a cobra command that accepts the flag schema of role.
//
// Required flags are enforced by cobra before run is called. For the client
// role the rotation name is validated as well. run may be nil.
func NewCommand(role Role, run RunFunc) *cobra.Command {
	schema := role.schema()

	cmd := &cobra.Command{
		Use:   "image-" + strings.ToLower(role.String()),
		Short: fmt.Sprintf("Image transfer %s", role),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := collect(cmd, schema)
			if err != nil {
				return err
			}
			if role == Client {
				if _, err := args.Client(); err != nil {
					return err
				}
			}
			if run == nil {
				return nil
			}
			return run(cmd, args)
		},
	}

	for _, o := range schema {
		if o.boolean {
			cmd.Flags().Bool(o.name, false, o.usage)
		} else {
			cmd.Flags().String(o.name, "", o.usage)
		}
		if o.required {
			_ = cmd.MarkFlagRequired(o.name)
		}
	}

	return cmd
}

// Parse parses args against the flag schema of role.
//
// Parse never prints; usage and error output are left to the caller. It
// returns ErrHelp if args contain -h or --help.
func Parse(role Role, args []string) (Args, error) {
	var parsed Args
	cmd := NewCommand(role, func(_ *cobra.Command, a Args) error {
		parsed = a
		return nil
	})

	// cobra falls back to os.Args when args is nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, ErrHelp
	}
	return parsed, nil
}

func collect(cmd *cobra.Command, schema []option) (Args, error) {
	args := make(Args, len(schema))
	flags := cmd.Flags()
	for _, o := range schema {
		if o.boolean {
			v, err := flags.GetBool(o.name)
			if err != nil {
				return nil, err
			}
			args[o.name] = v
			continue
		}

		v, err := flags.GetString(o.name)
		if err != nil {
			return nil, err
		}
		if v == "" && !flags.Changed(o.name) {
			continue
		}
		args[o.name] = v
	}
	return args, nil
}
