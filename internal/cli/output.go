package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvgeo/geom"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Every construction succeeded
	ExitFailure      = 1 // A construction failed (dimension mismatch, degenerate input, ...)
	ExitCommandError = 2 // Unreadable input (bad flag values, missing batch file, ...)
)

// ExitError carries the exit code a command should terminate with.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// Error codes reported in output, one per error class.
const (
	CodeDimensionMismatch      = "dimension_mismatch"
	CodeLengthMismatch         = "length_mismatch"
	CodeUnsupportedCombination = "unsupported_combination"
	CodeDegenerateConstruction = "degenerate_construction"
	CodeConversionUnsupported  = "conversion_unsupported"
	CodeInvalidInput           = "invalid_input"
	CodeGeneric                = "error"
)

var errorCodes = []struct {
	target error
	code   string
}{
	{geom.ErrDimensionMismatch, CodeDimensionMismatch},
	{geom.ErrLengthMismatch, CodeLengthMismatch},
	{geom.ErrUnsupportedCombination, CodeUnsupportedCombination},
	{geom.ErrDegenerateConstruction, CodeDegenerateConstruction},
	{geom.ErrConversionUnsupported, CodeConversionUnsupported},
	{ErrInvalidInput, CodeInvalidInput},
	{geom.ErrUnknownKind, CodeInvalidInput},
}

// ErrorCode maps err onto its stable output code.
func ErrorCode(err error) string {
	for _, c := range errorCodes {
		if errors.Is(err, c.target) {
			return c.code
		}
	}
	return CodeGeneric
}

// VectorResult is the output shape of one constructed vector. Missing
// elements are null in JSON.
type VectorResult struct {
	Name     string    `json:"name,omitempty"`
	Kind     string    `json:"kind"`
	Dim      string    `json:"dim"`
	Len      int       `json:"len"`
	Elements []*string `json:"elements"`
}

// NewVectorResult renders v.
func NewVectorResult(name string, v geom.Vector) VectorResult {
	res := VectorResult{
		Name:     name,
		Kind:     v.Kind().String(),
		Dim:      v.Dim().String(),
		Len:      v.Len(),
		Elements: make([]*string, v.Len()),
	}
	for i, e := range v.Elements() {
		if e != nil {
			s := e.String()
			res.Elements[i] = &s
		}
	}
	return res
}

// CLIResponse is the JSON envelope of every command.
type CLIResponse struct {
	Status string    `json:"status"`
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

// CLIError is the error part of a response.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OutputFormatter writes results as text or JSON.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func (f *OutputFormatter) encode(resp CLIResponse) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetEscapeHTML(false)
	return enc.Encode(resp)
}

// Vector writes one construction result.
func (f *OutputFormatter) Vector(res VectorResult) error {
	if f.Format == "json" {
		return f.encode(CLIResponse{Status: "ok", Data: res})
	}
	writeVectorText(f.Writer, res)
	return nil
}

func writeVectorText(w io.Writer, res VectorResult) {
	if res.Name != "" {
		fmt.Fprintf(w, "# %s\n", res.Name)
	}
	fmt.Fprintf(w, "%s[%s] len=%d\n", res.Kind, res.Dim, res.Len)
	for i, e := range res.Elements {
		if e == nil {
			fmt.Fprintf(w, "[%d] %s\n", i, geom.MissingLabel)
			continue
		}
		fmt.Fprintf(w, "[%d] %s\n", i, *e)
	}
}

// Error writes a failure.
func (f *OutputFormatter) Error(err error) error {
	code := ErrorCode(err)
	if f.Format == "json" {
		return f.encode(CLIResponse{Status: "error", Error: &CLIError{Code: code, Message: err.Error()}})
	}
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, err)
	return nil
}
