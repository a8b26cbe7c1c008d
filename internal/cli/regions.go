package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"natid/pkg/domain"
)

type regionsOutput struct {
	Country string   `json:"country"`
	Regions []string `json:"regions"`
}

func newRegionsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List the region hints accepted by generate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			country := domain.ParseCountry(opts.country)
			regions := opts.service(cmd.ErrOrStderr()).Regions(country)
			if regions == nil {
				return ErrUnsupported
			}
			if opts.jsonOutput {
				writeJSON(cmd.OutOrStdout(), regionsOutput{Country: country.String(), Regions: regions})
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(regions, " "))
			return nil
		},
	}
}
