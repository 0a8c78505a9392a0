package argsum_api

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	cli "github.com/urfave/cli/v2"
)

// runReadConfig parses args through a throwaway app carrying the real flag
// definitions and captures what ReadConfig makes of them
func runReadConfig(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	var config *Config
	var readErr error
	app := &cli.App{
		Name:  "argsum",
		Flags: SummaryFlags(),
		Action: func(Cctx *cli.Context) error {
			config, readErr = ReadConfig(Cctx)
			return nil
		},
	}
	if err := app.Run(append([]string{"argsum"}, args...)); err != nil {
		t.Fatal(err)
	}
	return config, readErr
}

func TestReadConfigDefaults(t *testing.T) {
	config, err := runReadConfig(t, "--output", "summary.tsv", "in.tsv")
	if err != nil {
		t.Fatal(err)
	}

	expect := &Config{
		Inputs: []string{"in.tsv"},
		Output: "summary.tsv",
		MinID:  90,
		Filter: true,
	}
	if !reflect.DeepEqual(config, expect) {
		t.Errorf("expected %+v, got %+v", expect, config)
	}
}

func TestReadConfigFlags(t *testing.T) {
	config, err := runReadConfig(t,
		"--output", "summary.xlsx",
		"--fofn", "reports.fofn",
		"--min-id", "95.5",
		"--no-filter",
		"--cluster", "out",
		"one.tsv", "two.tsv",
	)
	if err != nil {
		t.Fatal(err)
	}

	expect := &Config{
		Inputs:  []string{"one.tsv", "two.tsv"},
		Output:  "summary.xlsx",
		Fofn:    "reports.fofn",
		MinID:   95.5,
		Filter:  false,
		Cluster: "out",
	}
	if !reflect.DeepEqual(config, expect) {
		t.Errorf("expected %+v, got %+v", expect, config)
	}
}

func TestReadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `output: from_config.tsv
fofn: reports.fofn
min_id: 80
filter: false
cluster: out
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := runReadConfig(t, "--config", path, "in.tsv")
	if err != nil {
		t.Fatal(err)
	}

	expect := &Config{
		Inputs:  []string{"in.tsv"},
		Output:  "from_config.tsv",
		Fofn:    "reports.fofn",
		MinID:   80,
		Filter:  false,
		Cluster: "out",
	}
	if !reflect.DeepEqual(config, expect) {
		t.Errorf("expected %+v, got %+v", expect, config)
	}
}

func TestReadConfigFlagsWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `output: from_config.tsv
min_id: 80
filter: false
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := runReadConfig(t,
		"--config", path,
		"--output", "from_flag.tsv",
		"--min-id", "95",
		"in.tsv",
	)
	if err != nil {
		t.Fatal(err)
	}

	if config.Output != "from_flag.tsv" {
		t.Errorf("expected the command line output to win, got %q", config.Output)
	}
	if config.MinID != 95 {
		t.Errorf("expected the command line min-id to win, got %v", config.MinID)
	}
	if config.Filter {
		t.Error("expected the config file filter value to apply")
	}
}

func TestReadConfigNoOutput(t *testing.T) {
	if _, err := runReadConfig(t, "in.tsv"); err == nil {
		t.Error("expected an error when no output file is given")
	}
}

func TestReadConfigNoInput(t *testing.T) {
	_, err := runReadConfig(t, "--output", "summary.tsv")
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput, got %v", err)
	}
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := runReadConfig(t,
		"--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--output", "summary.tsv",
		"in.tsv",
	)
	if err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestReadConfigBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{{{ not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := runReadConfig(t, "--config", path, "--output", "summary.tsv", "in.tsv")
	if err == nil {
		t.Error("expected an error for an unparseable config file")
	}
}
