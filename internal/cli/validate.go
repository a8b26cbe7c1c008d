package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"natid/internal/nationalid/models"
)

type validateOutput struct {
	Input            string `json:"input"`
	Success          bool   `json:"success"`
	Code             int    `json:"code"`
	Error            string `json:"error"`
	NormalizedNumber string `json:"normalized_number"`
	Region           string `json:"region"`
}

func newValidateCmd(opts *options) *cobra.Command {
	var mask bool

	cmd := &cobra.Command{
		Use:   "validate NUMBER...",
		Short: "Check numbers against structural rules; exits 1 if any is invalid",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := opts.service(cmd.ErrOrStderr())
			req := opts.request("", "")
			if !req.Type.IssuedBy(req.Country) {
				return ErrUnsupported
			}

			results := make([]validateOutput, 0, len(args))
			allValid := true
			for _, arg := range args {
				req.Number = arg
				out := svc.Validate(cmd.Context(), req)
				allValid = allValid && out.Valid
				v := validateOutput{
					Input:            arg,
					Success:          out.Valid,
					Code:             int(out.ErrorKind),
					Error:            out.ErrorKind.String(),
					NormalizedNumber: out.NormalizedNumber,
					Region:           out.Region,
				}
				if mask {
					v.Input = models.Mask(v.Input)
					v.NormalizedNumber = models.Mask(v.NormalizedNumber)
				}
				results = append(results, v)
			}

			if opts.jsonOutput {
				writeJSON(cmd.OutOrStdout(), results)
			} else {
				for _, r := range results {
					fmt.Fprintln(cmd.OutOrStdout(), describe(r))
				}
			}
			if !allValid {
				return ErrInvalidNumber
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&mask, "mask", "m", false, "Mask all but the last four digits in output")
	return cmd
}

func describe(r validateOutput) string {
	switch {
	case r.Success && r.Region != "":
		return fmt.Sprintf("%s\tvalid\tregion=%s", r.Input, r.Region)
	case r.Success:
		return fmt.Sprintf("%s\tvalid\tregion=unassigned", r.Input)
	case r.Error != "":
		return fmt.Sprintf("%s\tinvalid\t%s", r.Input, r.Error)
	default:
		return fmt.Sprintf("%s\tinvalid\tchecksum mismatch", r.Input)
	}
}
