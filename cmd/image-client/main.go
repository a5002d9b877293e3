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
	"github.com/ironsheep/image-transfer/internal/client"
	"github.com/ironsheep/image-transfer/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var verbose bool

func main() {
	log.SetHandler(clihandler.Default)

	cmd := cli.NewCommand(cli.Client, run)
	cmd.Long = "Packages every image in --input, applies the requested rotation and mean filter, and writes the results to --output."
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

	opts, err := args.Client()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// No network transport: images are processed in-process.
	summary, err := client.Run(ctx, opts, pipeline.Local{})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"processed": summary.Processed,
		"grayscale": summary.Grayscale,
		"skipped":   summary.Skipped,
	}).Info("done")
	return nil
}
