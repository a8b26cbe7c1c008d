// Package cli contains the commands of the natid command-line tool.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"natid/internal/nationalid/service"
	"natid/pkg/domain"
	"natid/pkg/platform/random"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	country    string
	idType     string
	jsonOutput bool
	seed       uint64
	verbose    bool
}

// request builds a service request. An empty --type defaults to the kind
// issued by --country.
func (o *options) request(regionHint, number string) service.Request {
	req := service.ParseRequest(o.country, o.idType, regionHint, number)
	if o.idType == "" {
		req.Type = domain.DefaultIDType(req.Country)
	}
	return req
}

func (o *options) service(stderr io.Writer) *service.Service {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	opts := []service.Option{
		service.WithLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))),
	}
	if o.seed != 0 {
		opts = append(opts, service.WithRandom(random.NewSeeded(o.seed)))
	}
	return service.New(opts...)
}

// NewRootCmd creates a new root command instance.
// This is useful for testing to get a fresh command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "natid",
		Short: "Format, generate and validate Canadian SINs and US SSNs",
		Long: "natid formats, validates and synthesizes national identification numbers.\n" +
			"Generated numbers are plausible test data, never real identities.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags (available to all subcommands)
	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.country, "country", "c", "CA", "Issuing country: CA or US")
	flags.StringVarP(&opts.idType, "type", "t", "", "Identifier type: SIN or SSN (default: inferred from country)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")
	flags.Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible generation (0 = random)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging to stderr")

	cmd.AddCommand(
		newFormatCmd(opts),
		newGenerateCmd(opts),
		newValidateCmd(opts),
		newRegionsCmd(opts),
	)
	return cmd
}

// ExecuteContext runs a fresh command tree with os.Args and returns the exit code.
func ExecuteContext(ctx context.Context) int {
	cmd := NewRootCmd()
	cmd.SetContext(ctx)
	return RunCLI(cmd, os.Args[1:], os.Stdout, os.Stderr)
}
