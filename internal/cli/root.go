package cli

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/feral-file/carbon-engine/internal/adapter"
	"github.com/feral-file/carbon-engine/internal/emissions"
	"github.com/feral-file/carbon-engine/internal/factor"
	"github.com/feral-file/carbon-engine/internal/importer"
	"github.com/feral-file/carbon-engine/internal/ledger"
)

// RootOptions holds global flags for all commands
type RootOptions struct {
	ConfigFile string
	EnvPath    string
	Format     string // "json" | "text"

	json adapter.JSON
}

// ValidFormats defines the allowed output formats
var ValidFormats = []string{"text", "json"}

// Services are what the commands operate on
type Services struct {
	Importer  importer.Importer
	Resolver  factor.Resolver
	Emissions emissions.Service
	Ledger    ledger.Service
}

// ServicesFactory connects the services once flags are parsed. The returned func releases them.
type ServicesFactory func(ctx context.Context, opts *RootOptions) (*Services, func(), error)

// NewRootCommand creates the root command of carbonctl
func NewRootCommand(factory ServicesFactory) *cobra.Command {
	opts := &RootOptions{json: adapter.NewJSON()}

	cmd := &cobra.Command{
		Use:   "carbonctl",
		Short: "Operate the carbon engine",
		Long:  "Load lookup data, resolve factors, compute emissions and audit ledger assets.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to configuration file")
	cmd.PersistentFlags().StringVar(&opts.EnvPath, "env", "config/", "path to environment files")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewImportCommand(opts, factory))
	cmd.AddCommand(NewResolveCommand(opts, factory))
	cmd.AddCommand(NewComputeCommand(opts, factory))
	cmd.AddCommand(NewAuditCommand(opts, factory))

	return cmd
}

// withServices runs fn with connected services and releases them afterwards
func withServices(cmd *cobra.Command, opts *RootOptions, factory ServicesFactory, fn func(ctx context.Context, svc *Services) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	svc, release, err := factory(ctx, opts)
	if err != nil {
		return err
	}
	if release != nil {
		defer release()
	}
	return fn(ctx, svc)
}

// output writes v as indented JSON, or calls text for the text format
func output(w io.Writer, opts *RootOptions, v any, text func(w io.Writer)) error {
	if opts.Format == "json" {
		data, err := opts.json.MarshalIndent(v)
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	text(w)
	return nil
}
