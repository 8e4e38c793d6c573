// Copyright (c) 2026 FX Console Team
// FX Console - currency exchange console
// This source code is licensed under the MIT license found in the LICENSE file.
package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	cfg "github.com/toeirei/fxconsole/internal/config"
)

// isolate points the user config dir at an empty temp dir and runs from it,
// so no real fxconsole.yaml leaks into a test.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)
	return tmp
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.API.BaseURL != "http://localhost:8080" || c.API.Timeout != 0 {
		t.Fatalf("unexpected api defaults %+v", c.API)
	}
	if c.Pagination.PageSize != 6 || !c.Pagination.DiscardStale {
		t.Fatalf("unexpected pagination defaults %+v", c.Pagination)
	}
	if c.Language != "en" || c.Log.Level != "info" {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolate(t)
	yaml := "api:\n  base_url: https://fx.example.com\n  timeout: 5s\npagination:\n  page_size: 20\n  discard_stale: false\nlanguage: de\n"
	file := filepath.Join(tmp, "custom.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.API.BaseURL != "https://fx.example.com" || c.API.Timeout != 5*time.Second {
		t.Fatalf("unexpected api %+v", c.API)
	}
	if c.Pagination.PageSize != 20 || c.Pagination.DiscardStale {
		t.Fatalf("unexpected pagination %+v", c.Pagination)
	}
	if c.Language != "de" || c.Log.Level != "info" {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestLoadConfig_MissingExplicitFileFails(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "nope.yaml")
	if _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	isolate(t)
	if err := os.WriteFile("fxconsole.yaml", []byte("language: de\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("FXCONSOLE_LANGUAGE", "en")
	t.Setenv("FXCONSOLE_API_BASE_URL", "http://10.0.0.1:9000")

	c, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Language != "en" {
		t.Fatalf("env did not override file: %q", c.Language)
	}
	if c.API.BaseURL != "http://10.0.0.1:9000" {
		t.Fatalf("env did not override default: %q", c.API.BaseURL)
	}
}

func TestLoadConfig_FlagsWin(t *testing.T) {
	isolate(t)
	t.Setenv("FXCONSOLE_LANGUAGE", "de")

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "", "")
	if err := cmd.Flags().Set("language", "en"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	c, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Language != "en" {
		t.Fatalf("flag did not win: %q", c.Language)
	}
}

func TestValidate(t *testing.T) {
	good := cfg.Config{API: cfg.API{BaseURL: "http://x"}, Pagination: cfg.Pagination{PageSize: 6}}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	bad := []cfg.Config{
		{Pagination: cfg.Pagination{PageSize: 6}},
		{API: cfg.API{BaseURL: "http://x", Timeout: -time.Second}, Pagination: cfg.Pagination{PageSize: 6}},
		{API: cfg.API{BaseURL: "http://x"}},
	}
	for i, c := range bad {
		if err := c.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	isolate(t)

	c := cfg.Config{Language: "de"}
	c.API.BaseURL = "http://localhost:8080"
	c.Pagination.PageSize = 10

	path, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("unexpected permissions %v", info.Mode().Perm())
	}

	loaded, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Language != "de" || loaded.Pagination.PageSize != 10 {
		t.Fatalf("written config did not round trip: %+v", loaded)
	}
}
