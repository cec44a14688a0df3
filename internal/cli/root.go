package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgeo/construct"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Workers int    // elements constructed concurrently; 0 or 1 is sequential
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the geoc CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "geoc",
		Short: "geoc - exact geometric constructions",
		Long: `Construct circles and spheres from points, squared radii, planes, normals and spheres
with exact rational arithmetic.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Workers < 1 {
				return fmt.Errorf("invalid workers %d: must be at least 1", opts.Workers)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log dispatch decisions to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().IntVarP(&opts.Workers, "workers", "w", 1, "elements constructed concurrently")

	cmd.AddCommand(NewCircleCommand(opts))
	cmd.AddCommand(NewSphereCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewSignaturesCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// logger returns a Debug-level text logger on w when verbose, else one that
// discards everything.
func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	if !o.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// constructOptions translates the global flags into construction options.
func (o *RootOptions) constructOptions(cmd *cobra.Command) []construct.Option {
	opts := []construct.Option{construct.WithLogger(o.logger(cmd.ErrOrStderr()))}
	if o.Workers > 1 {
		opts = append(opts, construct.WithWorkers(o.Workers))
	}
	return opts
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	format := o.Format
	if format == "" {
		format = "text"
	}
	return &OutputFormatter{Format: format, Writer: cmd.OutOrStdout()}
}
