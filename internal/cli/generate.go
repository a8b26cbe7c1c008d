package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"natid/internal/nationalid/service"
)

type generateOutput struct {
	Numbers []string `json:"numbers"`
}

func newGenerateCmd(opts *options) *cobra.Command {
	var count int
	var regionHint string
	var formatted bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize plausible numbers, optionally biased toward a region",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 || count > service.MaxBatchSize {
				return fmt.Errorf("--count must be between 1 and %d", service.MaxBatchSize)
			}
			svc := opts.service(cmd.ErrOrStderr())
			numbers := svc.GenerateBatch(cmd.Context(), opts.request(regionHint, ""), count, formatted)
			if numbers == nil {
				return ErrUnsupported
			}

			if opts.jsonOutput {
				writeJSON(cmd.OutOrStdout(), generateOutput{Numbers: numbers})
				return nil
			}
			for _, n := range numbers {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "How many numbers to generate")
	cmd.Flags().StringVarP(&regionHint, "region", "r", "", "Province or state hint (e.g. ON, TX)")
	cmd.Flags().BoolVarP(&formatted, "formatted", "f", false, "Print numbers in display format")
	return cmd
}
