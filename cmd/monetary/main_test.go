package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/govalues/monetary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "monetary.env")
	require.NoError(t, os.WriteFile(filename, []byte(data), 0o600))
	return filename
}

func TestRun_Format(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default order", []string{"format", "USD", "10.5"}, "10.50 USD\n"},
		{"half up", []string{"format", "USD", "-0.125"}, "-0.13 USD\n"},
		{"numeric code", []string{"format", "978", "1"}, "1.00 EUR\n"},
		{"rounded style", []string{"format", "-style", "rounded", "JPY", "2.5"}, "2.00 JPY\n"},
		{"fast style", []string{"format", "-style", "fast", "CHF", "10.12345"}, "10.12 CHF\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := runArgs(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_FormatOrder(t *testing.T) {
	t.Run("environment", func(t *testing.T) {
		t.Setenv(envPrefix+monetary.ConfigKeyFormatOrder, "c-a")
		got, _, err := runArgs(t, "format", "USD", "10.5")
		require.NoError(t, err)
		assert.Equal(t, "USD 10.50\n", got)
	})

	t.Run("config file", func(t *testing.T) {
		filename := writeConfig(t, "toStringFormatOrder=\"currency amount\"\n")
		got, _, err := runArgs(t, "-config", filename, "format", "USD", "10.5")
		require.NoError(t, err)
		assert.Equal(t, "USD 10.50\n", got)
	})

	t.Run("config file before environment", func(t *testing.T) {
		t.Setenv(envPrefix+monetary.ConfigKeyFormatOrder, "ca")
		filename := writeConfig(t, "toStringFormatOrder=ac\n")
		got, _, err := runArgs(t, "-config", filename, "format", "USD", "10.5")
		require.NoError(t, err)
		assert.Equal(t, "10.50 USD\n", got)
	})

	t.Run("missing config file", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "missing.env")
		_, _, err := runArgs(t, "-config", filename, "format", "USD", "10.5")
		assert.Error(t, err)
	})
}

func TestRun_Parse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"amount first", []string{"parse", "10.50 USD"}, "USD 10.50\n"},
		{"currency first", []string{"parse", "USD 10.50"}, "USD 10.50\n"},
		{"joined arguments", []string{"parse", "USD", "10.5"}, "USD 10.50\n"},
		{"negative", []string{"parse", "--", "-0.13", "USD"}, "USD -0.13\n"},
		{"exact value", []string{"parse", "10.505 USD"}, "USD 10.505\n"},
		{"rounded style", []string{"parse", "-style", "rounded", "10.505 USD"}, "USD 10.50\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := runArgs(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_Round(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"standard", []string{"round", "10.505 USD"}, "USD 10.51\n"},
		{"standard at", []string{"round", "-at", "2030-01-01T00:00:00Z", "10.505 USD"}, "USD 10.51\n"},
		{"cash up", []string{"round", "-cash", "10.03 CHF"}, "CHF 10.05\n"},
		{"cash down", []string{"round", "-cash", "CHF 10.02"}, "CHF 10.00\n"},
		{"cash at", []string{"round", "-cash", "-at", "2030-01-01T00:00:00Z", "CHF 10.08"}, "CHF 10.10\n"},
		{"custom", []string{"round", "-id", "CHF-cash", "CHF 10.07"}, "CHF 10.05\n"},
		{"cash base", []string{"round", "-cash", "SEK 99.30"}, "SEK 99.50\n"},
		{"cash before cutover", []string{"round", "-cash", "-at", "2009-06-01T12:00:00Z", "SEK 99.30"}, "SEK 99.50\n"},
		{"cash after cutover", []string{"round", "-cash", "-at", "2011-06-01T12:00:00Z", "SEK 99.30"}, "SEK 99.00\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := runArgs(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_IDs(t *testing.T) {
	got, _, err := runArgs(t, "ids")
	require.NoError(t, err)
	assert.Equal(t, "CHF-cash\n", got)
}

func TestRun_Verbose(t *testing.T) {
	got, logs, err := runArgs(t, "-v", "format", "USD", "1")
	require.NoError(t, err)
	assert.Equal(t, "1.00 USD\n", got)
	assert.Contains(t, logs, "formatting amount")

	_, logs, err = runArgs(t, "format", "USD", "1")
	require.NoError(t, err)
	assert.NotContains(t, logs, "formatting amount")
}

func TestRun_Error(t *testing.T) {
	tests := map[string][]string{
		"missing command":    {},
		"unknown command":    {"convert", "USD", "EUR"},
		"unknown flag":       {"-unknown", "ids"},
		"format arguments":   {"format", "USD"},
		"format currency":    {"format", "ZZZ", "1"},
		"format amount":      {"format", "USD", "ten"},
		"format style":       {"format", "-style", "exact", "USD", "1"},
		"format fast digits": {"format", "-style", "fast", "USD", "1.123456"},
		"parse malformed":    {"parse", "10.50USD"},
		"parse unresolvable": {"parse", "10.50 ZZZ"},
		"round no standard":  {"round", "10 XXX"},
		"round no cash":      {"round", "-cash", "10.03 USD"},
		"round unknown id":   {"round", "-id", "unknown", "10.03 CHF"},
		"round id and cash":  {"round", "-id", "CHF-cash", "-cash", "10.03 CHF"},
		"round time":         {"round", "-at", "tomorrow", "10.03 CHF"},
		"ids arguments":      {"ids", "CHF"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			got, _, err := runArgs(t, args...)
			assert.Error(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestRun_Help(t *testing.T) {
	_, usage, err := runArgs(t, "-h")
	require.NoError(t, err)
	assert.Contains(t, usage, "format|ids|parse|round")
}
