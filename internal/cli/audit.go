package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/feral-file/carbon-engine/internal/domain"
	"github.com/feral-file/carbon-engine/internal/ledger"
)

// ErrNotConserved is returned when an audited asset does not balance
var ErrNotConserved = errors.New("asset quantities are not conserved")

// NewAuditCommand creates the audit command
func NewAuditCommand(rootOpts *RootOptions, factory ServicesFactory) *cobra.Command {
	return &cobra.Command{
		Use:       "audit <token|product> <asset-id>",
		Short:     "Check that an asset's holder balances add up to its counters",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(domain.AssetKindToken), string(domain.AssetKindProduct)},
		RunE: func(cmd *cobra.Command, args []string) error {
			assetID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid asset id %q", args[1])
			}

			return withServices(cmd, rootOpts, factory, func(ctx context.Context, svc *Services) error {
				report, err := svc.Ledger.Audit(ctx, domain.AssetKind(args[0]), assetID)
				if err != nil {
					return err
				}
				if err := output(cmd.OutOrStdout(), rootOpts, report, func(w io.Writer) {
					writeReport(w, report)
				}); err != nil {
					return err
				}
				if !report.Conserved || !report.RetiredMatches {
					return ErrNotConserved
				}
				return nil
			})
		},
	}
}

func writeReport(w io.Writer, r *ledger.ConservationReport) {
	fmt.Fprintf(w, "%s %d: %d holder(s)\n", r.Kind, r.AssetID, r.Holders)
	fmt.Fprintf(w, "  total issued:  %s\n", r.TotalIssued.String())
	fmt.Fprintf(w, "  received:      %s\n", r.Received.String())
	fmt.Fprintf(w, "  available:     %s\n", r.Available.String())
	fmt.Fprintf(w, "  retired:       %s (counter %s)\n", r.Retired.String(), r.TotalRetired.String())
	fmt.Fprintf(w, "  transferred:   %s\n", r.Transferred.String())
	if r.Conserved && r.RetiredMatches {
		fmt.Fprintln(w, "  conserved")
		return
	}
	fmt.Fprintf(w, "  NOT conserved: discrepancy %s\n", r.Discrepancy.String())
}
