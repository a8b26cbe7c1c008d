package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type formatOutput struct {
	Input     string `json:"input"`
	Formatted string `json:"formatted"`
}

func newFormatCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "format NUMBER...",
		Short: "Render numbers in display format (DDD-DDD-DDD or DDD-DD-DDDD)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := opts.service(cmd.ErrOrStderr())
			out := make([]formatOutput, 0, len(args))
			for _, arg := range args {
				formatted := svc.Format(cmd.Context(), opts.request("", arg))
				if formatted == "" {
					return ErrUnsupported
				}
				out = append(out, formatOutput{Input: arg, Formatted: formatted})
			}

			if opts.jsonOutput {
				writeJSON(cmd.OutOrStdout(), out)
				return nil
			}
			for _, o := range out {
				fmt.Fprintln(cmd.OutOrStdout(), o.Formatted)
			}
			return nil
		},
	}
}
