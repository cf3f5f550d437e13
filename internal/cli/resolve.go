package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/store/schema"
)

// NewResolveCommand creates the resolve command
func NewResolveCommand(rootOpts *RootOptions, factory ServicesFactory) *cobra.Command {
	var query domain.FactorQuery
	var year int

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "List the emissions factors matching a classification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("year") {
				query.Year = &year
			}
			return withServices(cmd, rootOpts, factory, func(ctx context.Context, svc *Services) error {
				factors, err := svc.Resolver.Resolve(ctx, query, nil)
				if err != nil {
					return err
				}
				return output(cmd.OutOrStdout(), rootOpts, factors, func(w io.Writer) {
					writeFactors(w, factors)
				})
			})
		},
	}

	cmd.Flags().StringVar(&query.Scope, "scope", "", "GHG protocol scope, e.g. \"SCOPE 1\"")
	cmd.Flags().StringVar(&query.Level1, "level-1", "", "level 1 of the classification")
	cmd.Flags().StringVar(&query.Level2, "level-2", "", "level 2 of the classification")
	cmd.Flags().StringVar(&query.Level3, "level-3", "", "level 3 of the classification")
	cmd.Flags().StringVar(&query.Level4, "level-4", "", "level 4 of the classification")
	cmd.Flags().StringVar(&query.ActivityUOM, "uom", "", "activity unit of measure")
	cmd.Flags().StringVar(&query.DivisionType, "division-type", "", "grid division type")
	cmd.Flags().StringVar(&query.DivisionID, "division-id", "", "grid division id")
	cmd.Flags().IntVar(&year, "year", 0, "data year")

	return cmd
}

func writeFactors(w io.Writer, factors []schema.EmissionsFactor) {
	if len(factors) == 0 {
		fmt.Fprintln(w, "No factors found")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "UUID\tSCOPE\tCLASSIFICATION\tYEAR\tFACTOR")
	for i := range factors {
		f := &factors[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s %s/%s\n",
			f.UUID, f.Scope, classification(f), f.Year,
			f.CO2EquivalentEmissions, f.CO2EquivalentEmissionsUOM, f.ActivityUOM)
	}
	_ = tw.Flush()
}

func classification(f *schema.EmissionsFactor) string {
	out := f.Level1
	for _, level := range []string{f.Level2, f.Level3, f.Level4} {
		if level != "" {
			out += " > " + level
		}
	}
	return out
}
