package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/emissions"
)

type computeOptions struct {
	activity domain.Activity
	amount   string
	year     int

	utilityID string
	thruDate  string
}

// NewComputeCommand creates the compute command
func NewComputeCommand(rootOpts *RootOptions, factory ServicesFactory) *cobra.Command {
	opts := &computeOptions{}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the emissions of an activity or of a utility usage",
		Long: `Compute the emissions of an activity classified by scope and levels,
or of an electricity usage billed by a utility when --utility-id is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(opts.amount)
			if err != nil {
				return fmt.Errorf("%w: amount %q", domain.ErrInvalidAmount, opts.amount)
			}
			if cmd.Flags().Changed("year") {
				opts.activity.Year = &opts.year
			}

			return withServices(cmd, rootOpts, factory, func(ctx context.Context, svc *Services) error {
				var result *domain.EmissionsResult
				if opts.utilityID != "" {
					result, err = svc.Emissions.UsageEmissions(ctx, emissions.UsageRequest{
						UtilityID: opts.utilityID,
						ThruDate:  opts.thruDate,
						Usage:     amount,
						UsageUOM:  opts.activity.ActivityUOM,
					})
				} else {
					activity := opts.activity
					activity.Amount = amount
					result, err = svc.Emissions.ActivityEmissions(ctx, activity)
				}
				if err != nil {
					return err
				}
				return output(cmd.OutOrStdout(), rootOpts, result, func(w io.Writer) {
					writeEmissions(w, result)
				})
			})
		},
	}

	cmd.Flags().StringVar(&opts.amount, "amount", "", "activity amount or electricity usage")
	cmd.Flags().StringVar(&opts.activity.ActivityUOM, "uom", "", "unit of the amount")
	cmd.Flags().StringVar(&opts.activity.Scope, "scope", "", "GHG protocol scope")
	cmd.Flags().StringVar(&opts.activity.Level1, "level-1", "", "level 1 of the classification")
	cmd.Flags().StringVar(&opts.activity.Level2, "level-2", "", "level 2 of the classification")
	cmd.Flags().StringVar(&opts.activity.Level3, "level-3", "", "level 3 of the classification")
	cmd.Flags().StringVar(&opts.activity.Level4, "level-4", "", "level 4 of the classification")
	cmd.Flags().IntVar(&opts.year, "year", 0, "data year")
	cmd.Flags().StringVar(&opts.utilityID, "utility-id", "", "utility lookup item uuid")
	cmd.Flags().StringVar(&opts.thruDate, "thru-date", "", "end of the billing period (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("uom")

	return cmd
}

func writeEmissions(w io.Writer, result *domain.EmissionsResult) {
	fmt.Fprintf(w, "%s %s CO2e (%d, factor %s)\n", result.Value.String(), result.UOM, result.Year, result.FactorID)
	if !result.RenewableAmount.IsZero() || !result.NonRenewableAmount.IsZero() {
		fmt.Fprintf(w, "  renewable:     %s\n", result.RenewableAmount.String())
		fmt.Fprintf(w, "  non-renewable: %s\n", result.NonRenewableAmount.String())
	}
	if result.DivisionType != "" {
		fmt.Fprintf(w, "  division:      %s %s\n", result.DivisionType, result.DivisionID)
	}
}
