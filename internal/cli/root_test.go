package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexshd/orderbench"
)

const (
	fixturePath = "../../testdata/target/Gamma0.5/Strength1.0_Lattice6_6_1_Time600.json"
	seriesPath  = "../../testdata/series.tsv"
)

// runCommand executes the root command with args and returns stdout and
// stderr.
func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// parseTSV splits "a<TAB>b" lines into two columns.
func parseTSV(t *testing.T, out string) (first, second []float64) {
	t.Helper()
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 2, "line %q", line)

		a, err := strconv.ParseFloat(fields[0], 64)
		require.NoError(t, err)
		b, err := strconv.ParseFloat(fields[1], 64)
		require.NoError(t, err)

		first = append(first, a)
		second = append(second, b)
	}
	return first, second
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := NewRootCommand()

	for _, name := range []string{"config", "log-level", "bins"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing persistent flag %q", name)
	}

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"meta", "order", "plot", "config", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestGetCLIContext_Missing(t *testing.T) {
	_, err := GetCLIContext(&cobra.Command{})
	assert.Error(t, err)
}

func TestMetaCommand(t *testing.T) {
	tests := map[string]string{
		"FileType": "json",
		"Gamma":    "0.5",
		"Metadata": "1.0_6_6_1",
	}
	for action, want := range tests {
		t.Run(action, func(t *testing.T) {
			stdout, _, err := runCommand(t, "meta", fixturePath, action)
			require.NoError(t, err)
			assert.Equal(t, want+"\n", stdout)
		})
	}
}

func TestMetaCommand_Errors(t *testing.T) {
	_, _, err := runCommand(t, "meta", fixturePath, "Lattice")
	assert.True(t, errors.Is(err, orderbench.ErrUnknownAction), "err = %v", err)

	_, _, err = runCommand(t, "meta", "no/metadata/here.json", "Gamma")
	assert.True(t, errors.Is(err, orderbench.ErrMalformedPath), "err = %v", err)

	_, _, err = runCommand(t, "meta", fixturePath)
	assert.Error(t, err, "missing action argument")
}

func TestOrderCommand_Output(t *testing.T) {
	stdout, stderr, err := runCommand(t, "order", fixturePath, "TRUE", "false")
	require.NoError(t, err)

	c6, magSq := parseTSV(t, stdout)
	approx := cmpopts.EquateApprox(0, 1e-12)

	if diff := cmp.Diff([]float64{1, -1, 1}, c6, approx); diff != "" {
		t.Errorf("c6 mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{4.0 / 3.0, 1, 0}, magSq, approx); diff != "" {
		t.Errorf("|ψ|² mismatch (-want +got):\n%s", diff)
	}

	assert.Contains(t, stderr, "analysis complete")
	assert.Contains(t, stderr, "dropped=1")
	assert.Contains(t, stderr, "records=4")
}

func TestOrderCommand_Quiet(t *testing.T) {
	stdout, _, err := runCommand(t, "order", fixturePath, "false", "False")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestOrderCommand_Plot(t *testing.T) {
	stdout, _, err := runCommand(t, "--bins", "5", "order", fixturePath, "false", "true")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Order parameter densities")
	assert.Contains(t, stdout, "n=3")
}

func TestOrderCommand_DebugLogsDroppedSamples(t *testing.T) {
	_, stderr, err := runCommand(t, "--log-level", "debug", "order", fixturePath, "false", "false")
	require.NoError(t, err)
	assert.Contains(t, stderr, "DBG")
}

func TestOrderCommand_InvalidFlags(t *testing.T) {
	tests := [][]string{
		{"order", fixturePath, "yes", "false"},
		{"order", fixturePath, "true", "1"},
		{"order", fixturePath, "true"},
	}
	for _, args := range tests {
		stdout, _, err := runCommand(t, args...)
		assert.Error(t, err, "args %v", args)
		assert.Empty(t, stdout, "args %v", args)
	}
}

func TestOrderCommand_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Gamma1.0", "Strength1.0_Lattice6_6_1_Time600.json")
	_, _, err := runCommand(t, "order", path, "true", "false")
	assert.True(t, errors.Is(err, os.ErrNotExist), "err = %v", err)
}

func TestOrderCommand_Save(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "orderbench.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("output_dir: "+filepath.Join(dir, "results")+"\n"), 0o644))

	_, stderr, err := runCommand(t, "--config", cfgFile, "order", "--save", fixturePath, "false", "false")
	require.NoError(t, err)
	assert.Contains(t, stderr, "series saved")

	saved := filepath.Join(dir, "results", "Gamma0.5", "1.0_6_6_1.txt")
	c6, magSq, err := orderbench.LoadColumnsFile(saved)
	require.NoError(t, err)
	assert.Len(t, c6, 3)
	assert.Len(t, magSq, 3)
}

func TestOrderCommand_PerLayer(t *testing.T) {
	stdout, _, err := runCommand(t, "order", "--per-layer", fixturePath, "true", "false")
	require.NoError(t, err)

	// Height 1: per-layer analysis matches the folded one.
	c6, _ := parseTSV(t, stdout)
	assert.Len(t, c6, 3)
}

func TestPlotCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "plot", seriesPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "● c6")
	assert.Contains(t, stdout, "◆ |ψ|²")

	_, _, err = runCommand(t, "plot", filepath.Join(t.TempDir(), "missing.tsv"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "err = %v", err)
}

func TestConfigCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "--bins", "20", "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "bins: 20")
	assert.Contains(t, stdout, "output_dir: ./target")

	_, _, err = runCommand(t, "--bins", "-1", "config")
	assert.Error(t, err)

	_, _, err = runCommand(t, "--log-level", "loud", "config")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "orderbench dev (commit: unknown, built: unknown)\n", stdout)
}

func TestParseFlag(t *testing.T) {
	for _, in := range []string{"true", "True", "TRUE", "tRuE"} {
		v, err := parseFlag("f", in)
		require.NoError(t, err)
		assert.True(t, v, in)
	}
	for _, in := range []string{"false", "FALSE", "False"} {
		v, err := parseFlag("f", in)
		require.NoError(t, err)
		assert.False(t, v, in)
	}
	for _, in := range []string{"", "1", "0", "yes", "t", " true"} {
		_, err := parseFlag("f", in)
		assert.Error(t, err, "%q", in)
	}
}
