package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-transfer/internal/cli"
	"github.com/ironsheep/image-transfer/internal/pipeline"
	"github.com/ironsheep/image-transfer/internal/service"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var verbose bool

func main() {
	// Logs go to stderr; stdout carries responses.
	log.SetHandler(clihandler.New(os.Stderr))

	cmd := cli.NewCommand(cli.Service, run)
	cmd.Long = "Serves image/process and image/classify requests as newline-delimited JSON-RPC on stdin/stdout."
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	cmd.SilenceErrors = true
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose logging")

	if err := cmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args cli.Args) error {
	cmd.SilenceUsage = true
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	opts := args.Service()
	log.WithField("address", opts.Address()).Debugf("image-service %s", Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := service.New(opts.Address(), Version, pipeline.Local{})
	if err := srv.Run(ctx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
