package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvgeo/construct"
	"github.com/katalvlaran/lvgeo/geom"
)

// SignatureResult is the output shape of one dispatch table entry.
type SignatureResult struct {
	Name     string   `json:"name"`
	Operands []string `json:"operands"`
	Dims     []string `json:"dims"`
	Op       string   `json:"op"`
}

// NewSignaturesCommand creates the signatures command.
func NewSignaturesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "signatures <circle|sphere>",
		Short:         "List the constructions of a kind in precedence order",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignatures(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runSignatures(opts *RootOptions, name string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	kind, err := geom.ParseKind(name)
	if err != nil {
		_ = formatter.Error(err)
		return WrapExitError(ExitCommandError, "signatures", err)
	}
	sigs := construct.Signatures(kind)
	if sigs == nil {
		err := fmt.Errorf("%s has no constructors: %w", kind, geom.ErrUnsupportedCombination)
		_ = formatter.Error(err)
		return WrapExitError(ExitCommandError, "signatures", err)
	}

	out := make([]SignatureResult, len(sigs))
	for i, s := range sigs {
		r := SignatureResult{Name: s.Name, Op: s.Op.String()}
		for _, k := range s.Operands {
			r.Operands = append(r.Operands, k.String())
		}
		for _, d := range s.Dims {
			r.Dims = append(r.Dims, d.String())
		}
		out[i] = r
	}

	if formatter.Format == "json" {
		return formatter.encode(CLIResponse{Status: "ok", Data: out})
	}
	for i, r := range out {
		fmt.Fprintf(formatter.Writer, "%d. %s: %s (%s) -> %s\n",
			i+1, r.Name, strings.Join(r.Operands, ", "), strings.Join(r.Dims, ", "), r.Op)
	}
	return nil
}
