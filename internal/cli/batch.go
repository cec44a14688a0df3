package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgeo/construct"
	"github.com/katalvlaran/lvgeo/geom"
)

// BatchFile is a YAML document listing constructions to run.
//
//	constructions:
//	  - name: unit
//	    kind: circle
//	    args:
//	      - kind: point
//	        values: ["0,0"]
//	      - kind: number
//	        name: r2
//	        values: [1, ~, 1/4]
type BatchFile struct {
	Constructions []BatchEntry `yaml:"constructions"`
}

// BatchEntry is one construction.
type BatchEntry struct {
	// Name labels the entry in output.
	Name string `yaml:"name"`

	// Kind is the target kind, "circle" or "sphere".
	Kind string `yaml:"kind"`

	// DefaultDim is the dimension of an empty result; 0 keeps the kind's default.
	DefaultDim int `yaml:"default_dim,omitempty"`

	Args []BatchArg `yaml:"args"`
}

// BatchArg is one construction argument. Values are scalar nodes in the
// element syntax of ParseArgument; null (~) is a missing element.
type BatchArg struct {
	Kind   string      `yaml:"kind"`
	Name   string      `yaml:"name,omitempty"`
	Values []yaml.Node `yaml:"values"`
}

// BatchResult is the outcome of one entry.
type BatchResult struct {
	Name   string        `json:"name"`
	Status string        `json:"status"`
	Result *VectorResult `json:"result,omitempty"`
	Error  *CLIError     `json:"error,omitempty"`
}

// LoadBatch reads and decodes a batch file. Unknown fields are rejected.
func LoadBatch(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return DecodeBatch(bytes.NewReader(data))
}

// DecodeBatch decodes a batch document from r.
func DecodeBatch(r io.Reader) (*BatchFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var bf BatchFile
	if err := dec.Decode(&bf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("batch file is empty: %w", ErrInvalidInput)
		}
		return nil, fmt.Errorf("parse batch file: %v: %w", err, ErrInvalidInput)
	}
	if len(bf.Constructions) == 0 {
		return nil, fmt.Errorf("batch file has no constructions: %w", ErrInvalidInput)
	}
	return &bf, nil
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Run the constructions listed in a YAML file",
		Long: `Run every construction of a YAML batch file and report each result.

A failing construction does not stop the others; the command exits with
status 1 when any construction failed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runBatch(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	bf, err := LoadBatch(path)
	if err != nil {
		_ = formatter.Error(err)
		return WrapExitError(ExitCommandError, "load batch", err)
	}

	cOpts := opts.constructOptions(cmd)
	results := make([]BatchResult, len(bf.Constructions))
	failed := 0
	for i, entry := range bf.Constructions {
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		v, err := entry.run(cOpts)
		if err != nil {
			failed++
			results[i] = BatchResult{Name: name, Status: "error", Error: &CLIError{Code: ErrorCode(err), Message: err.Error()}}
			continue
		}
		res := NewVectorResult(name, v)
		results[i] = BatchResult{Name: name, Status: "ok", Result: &res}
	}

	if err := formatter.Batch(results); err != nil {
		return err
	}
	if failed > 0 {
		return WrapExitError(ExitFailure, fmt.Sprintf("%d of %d constructions failed", failed, len(results)), nil)
	}
	return nil
}

// run builds the entry with opts plus its own default dimension.
func (e BatchEntry) run(opts []construct.Option) (geom.Vector, error) {
	kind, err := geom.ParseKind(e.Kind)
	if err != nil {
		return geom.Vector{}, err
	}
	if e.DefaultDim != 0 {
		d, err := geom.ParseDim(e.DefaultDim)
		if err != nil {
			return geom.Vector{}, err
		}
		opts = append(opts[:len(opts):len(opts)], construct.WithDefaultDim(d))
	}

	args := make([]any, 0, len(e.Args))
	for i, a := range e.Args {
		v, err := a.vector()
		if err != nil {
			return geom.Vector{}, fmt.Errorf("argument %d: %w", i, err)
		}
		if a.Name != "" {
			args = append(args, construct.Named(a.Name, v))
			continue
		}
		args = append(args, v)
	}
	return construct.Build(kind, args, opts...)
}

func (a BatchArg) vector() (geom.Vector, error) {
	kind, err := geom.ParseKind(a.Kind)
	if err != nil {
		return geom.Vector{}, err
	}
	texts := make([]*string, len(a.Values))
	for i := range a.Values {
		n := &a.Values[i]
		if n.Kind != yaml.ScalarNode {
			return geom.Vector{}, fmt.Errorf("line %d: value must be a scalar: %w", n.Line, ErrInvalidInput)
		}
		if n.ShortTag() == "!!null" {
			continue
		}
		texts[i] = &n.Value
	}
	return ParseElements(kind, texts)
}

// Batch writes the results of a batch run.
func (f *OutputFormatter) Batch(results []BatchResult) error {
	if f.Format == "json" {
		return f.encode(CLIResponse{Status: "ok", Data: results})
	}
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(f.Writer)
		}
		if r.Result != nil {
			writeVectorText(f.Writer, *r.Result)
			continue
		}
		fmt.Fprintf(f.Writer, "# %s\nError [%s]: %s\n", r.Name, r.Error.Code, r.Error.Message)
	}
	return nil
}
