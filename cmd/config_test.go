package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/etnz/fintrack/config"
	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

func TestConfigCmd_Print(t *testing.T) {
	path, out := setup(t, "")
	if status := run(t, &configCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	got := out.String()
	for _, want := range []string{"# " + *configFile, "ledger_file: " + path, "currency: USD", "style: plain", "verbose: false"} {
		if !strings.Contains(got, want) {
			t.Errorf("output misses %q:\n%s", want, got)
		}
	}
}

func TestConfigCmd_Save(t *testing.T) {
	path, out := setup(t, "")
	eur := "eur"
	currency = &eur
	target := filepath.Join(t.TempDir(), "sub", config.FileName)
	configFile = &target

	if status := run(t, &configCmd{}, "-save"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if !strings.Contains(out.String(), "Saved to "+target) {
		t.Errorf("output misses the saved path:\n%s", out.String())
	}
	got, _, err := config.Load(target, "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := config.Config{LedgerFile: path, Currency: "EUR", Style: PlainStyle}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("saved config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigCmd_SaveDefaultPath(t *testing.T) {
	setup(t, "")
	home := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", home)
	xdg.Reload()
	empty := ""
	configFile = &empty

	if status := run(t, &configCmd{}, "-save"); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	want := filepath.Join(home, config.AppDir, config.FileName)
	if config.DefaultPath() != want {
		t.Fatalf("DefaultPath() = %q, want %q", config.DefaultPath(), want)
	}
	// the saved file is now found without -config
	if _, found, err := config.Load("", ""); err != nil || found != want {
		t.Errorf("Load() read %q (err %v), want %q", found, err, want)
	}
}
