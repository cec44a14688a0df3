package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeo/geom"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	out, errBuf := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errBuf.String(), err
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "geoc", cmd.Use)

	for _, name := range []string{"circle", "sphere", "batch", "signatures"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "command %s should exist", name)
		assert.Equal(t, name, sub.Name())
	}

	workers := cmd.PersistentFlags().Lookup("workers")
	require.NotNil(t, workers)
	assert.Equal(t, "1", workers.DefValue)
	assert.Equal(t, "text", cmd.PersistentFlags().Lookup("format").DefValue)
}

func TestGlobalFlagValidation(t *testing.T) {
	_, _, err := execute(t, "--format", "yaml", "signatures", "circle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")

	_, _, err = execute(t, "--workers", "0", "signatures", "circle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid workers")
}

func TestCircleGolden(t *testing.T) {
	tests := []struct {
		golden string
		args   []string
		code   int
	}{
		{"circle_text", []string{"circle", "--point", "0,0;1,1", "--number", "4;NA"}, ExitSuccess},
		{"circle_json", []string{"--format", "json", "circle", "-p", "0,0,0", "-n", "1", "--vector", "0,0,1"}, ExitSuccess},
		{"circle_dimension_error", []string{"circle", "--point", "0,0,0", "--number", "4"}, ExitFailure},
		{"circle_degenerate_json", []string{"--format", "json", "circle", "-p", "0,0", "-p", "1,1", "-p", "2,2"}, ExitFailure},
		{"sphere_text", []string{"sphere", "--point", "0,0,0", "--point", "0,0,4", "--workers", "4"}, ExitSuccess},
		{"signatures_circle", []string{"signatures", "circle"}, ExitSuccess},
	}

	for _, tc := range tests {
		t.Run(tc.golden, func(t *testing.T) {
			out, _, err := execute(t, tc.args...)
			if tc.code == ExitSuccess {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tc.code, GetExitCode(err))
			}
			newGoldie(t).Assert(t, tc.golden, []byte(out))
		})
	}
}

func TestBatchGolden(t *testing.T) {
	path := filepath.Join("testdata", "batch.yaml")

	for _, format := range []string{"text", "json"} {
		t.Run(format, func(t *testing.T) {
			out, _, err := execute(t, "--format", format, "batch", path)
			require.Error(t, err, "the mixed entry fails")
			assert.Equal(t, ExitFailure, GetExitCode(err))
			assert.Contains(t, err.Error(), "1 of 4 constructions failed")
			newGoldie(t).Assert(t, "batch_"+format, []byte(out))
		})
	}
}

func TestBatchErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "batch", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = DecodeBatch(strings.NewReader(""))
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = DecodeBatch(strings.NewReader("constructions: []\n"))
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = DecodeBatch(strings.NewReader("constructions:\n  - name: x\n    kind: circle\n    radius: 2\n"))
	require.ErrorIs(t, err, ErrInvalidInput)

	bf, err := DecodeBatch(strings.NewReader("constructions:\n  - kind: cone\n    args: []\n  - kind: circle\n    args:\n      - kind: point\n        values: [[0, 0]]\n"))
	require.NoError(t, err)
	_, err = bf.Constructions[0].run(nil)
	require.ErrorIs(t, err, geom.ErrUnknownKind)
	assert.Equal(t, CodeInvalidInput, ErrorCode(err))
	_, err = bf.Constructions[1].run(nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestVerboseLogsDispatch(t *testing.T) {
	out, stderr, err := execute(t, "-v", "circle", "--point", "0,0", "--number", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "circle[2D] len=1")
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, `signature="center and squared radius"`)

	_, stderr, err = execute(t, "circle", "--point", "0,0", "--number", "1")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestCircleParseErrors(t *testing.T) {
	out, _, err := execute(t, "circle", "--point", "0,zero")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.True(t, strings.HasPrefix(out, "Error [invalid_input]: "))

	_, _, err = execute(t, "circle", "--default-dim", "4")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	out, _, err = execute(t, "circle", "--default-dim", "3")
	require.NoError(t, err)
	assert.Equal(t, "circle[3D] len=0\n", out)
}

func TestSphereFromGreatCircle(t *testing.T) {
	out, _, err := execute(t, "sphere", "--circle", "0,0,0,4,0,0,1;1,1,1,1/4,1,0,0")
	require.NoError(t, err)
	assert.Equal(t, "sphere[3D] len=2\n[0] Sphere(center=(0, 0, 0), r2=4)\n[1] Sphere(center=(1, 1, 1), r2=1/4)\n", out)

	bf, err := DecodeBatch(strings.NewReader("constructions:\n  - kind: sphere\n    args:\n      - kind: circle\n        values: [\"0,0,2,9,0,1,0\"]\n"))
	require.NoError(t, err)
	v, err := bf.Constructions[0].run(nil)
	require.NoError(t, err)
	assert.Equal(t, "sphere[3D]{Sphere(center=(0, 0, 2), r2=9)}", v.String())

	_, _, err = execute(t, "sphere", "--circle", "0,0,4")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err), "2D circles have no diametral sphere")
}
