package cli

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/feral-file/carbon-engine/internal/importer"
)

// NewImportCommand creates the import command and its subcommands
func NewImportCommand(rootOpts *RootOptions, factory ServicesFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load lookup data from CSV files",
	}

	cmd.AddCommand(newImportFileCommand(rootOpts, factory, importer.KindFactors,
		"Load emissions factors",
		func(ctx context.Context, imp importer.Importer, path string, opts importer.Options) (*importer.Result, error) {
			return imp.ImportFactors(ctx, path, opts)
		}))
	cmd.AddCommand(newImportFileCommand(rootOpts, factory, importer.KindUtilities,
		"Load utility lookup items",
		func(ctx context.Context, imp importer.Importer, path string, opts importer.Options) (*importer.Result, error) {
			return imp.ImportUtilities(ctx, path, opts)
		}))
	cmd.AddCommand(newImportStatusCommand(rootOpts, factory))

	return cmd
}

type importFunc func(ctx context.Context, imp importer.Importer, path string, opts importer.Options) (*importer.Result, error)

func newImportFileCommand(rootOpts *RootOptions, factory ServicesFactory, kind importer.Kind, short string, run importFunc) *cobra.Command {
	var opts importer.Options

	cmd := &cobra.Command{
		Use:   string(kind) + " <csv-file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, rootOpts, factory, func(ctx context.Context, svc *Services) error {
				result, err := run(ctx, svc.Importer, args[0], opts)
				if result != nil {
					if outErr := output(cmd.OutOrStdout(), rootOpts, result, func(w io.Writer) {
						writeResult(w, result)
					}); outErr != nil {
						return outErr
					}
				}
				return err
			})
		},
	}

	cmd.Flags().StringVar(&opts.Source, "source", "", "source recorded on every row (default: file name)")
	cmd.Flags().StringVar(&opts.SourceYear, "source-year", "", "source year recorded on every row")
	if kind == importer.KindFactors {
		cmd.Flags().StringVar(&opts.Type, "type", "", "factor type recorded on rows without one")
	}

	return cmd
}

func newImportStatusCommand(rootOpts *RootOptions, factory ServicesFactory) *cobra.Command {
	return &cobra.Command{
		Use:       "status <factors|utilities>",
		Short:     "Show the latest import of a kind",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(importer.KindFactors), string(importer.KindUtilities)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, rootOpts, factory, func(ctx context.Context, svc *Services) error {
				result, err := svc.Importer.LastImport(ctx, importer.Kind(args[0]))
				if err != nil {
					return err
				}
				if result == nil {
					return fmt.Errorf("no %s import recorded", args[0])
				}
				return output(cmd.OutOrStdout(), rootOpts, result, func(w io.Writer) {
					writeResult(w, result)
				})
			})
		},
	}
}

func writeResult(w io.Writer, result *importer.Result) {
	fmt.Fprintf(w, "Imported %s from %s at %s\n", result.Kind, result.File, result.ImportedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  rows:    %d\n", result.Rows)
	fmt.Fprintf(w, "  loaded:  %d\n", result.Loaded)
	fmt.Fprintf(w, "  failed:  %d\n", result.Failed)
	fmt.Fprintf(w, "  ignored: %d\n", result.IgnoredCount())

	reasons := make([]string, 0, len(result.Ignored))
	for reason := range result.Ignored {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(w, "    %s: %d\n", reason, result.Ignored[reason])
	}

	fmt.Fprintf(w, "  total:   %d\n", result.Total)
}
