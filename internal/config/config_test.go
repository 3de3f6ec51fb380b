package config_test

import (
	"testing"

	"github.com/keurnel/supdef/internal/config"
)

func TestValidateCmdlineTemplate(t *testing.T) {
	scenarios := []struct {
		name     string
		template string
		wantErr  bool
	}{
		{"all placeholders present", "#CC# #IN# -o #OUT#", false},
		{"missing CC", "#IN# -o #OUT#", true},
		{"missing IN", "#CC# -o #OUT#", true},
		{"missing OUT", "#CC# #IN#", true},
		{"empty", "", true},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			err := config.ValidateCmdlineTemplate(s.template)
			if (err != nil) != s.wantErr {
				t.Errorf("ValidateCmdlineTemplate(%q) error = %v, wantErr %v", s.template, err, s.wantErr)
			}
		})
	}
}

func TestNew_DefaultsWhenNoOverrides(t *testing.T) {
	cfg, err := config.New(config.Params{SearchPaths: []string{"a", "b"}}, func(string) bool { return true })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CCCmdline != config.DefaultCCCmdline {
		t.Errorf("expected default cmdline, got %q", cfg.CCCmdline)
	}
	if cfg.CCPath != config.DefaultCCPath {
		t.Errorf("expected default cc path, got %q", cfg.CCPath)
	}
	if len(cfg.SearchPaths) != 2 || cfg.SearchPaths[0] != "a" || cfg.SearchPaths[1] != "b" {
		t.Errorf("search paths not preserved in order: %v", cfg.SearchPaths)
	}
}

func TestNew_BadCmdlineAcceptDefault(t *testing.T) {
	cfg, err := config.New(config.Params{CCCmdline: "no placeholders here"}, func(string) bool { return true })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CCCmdline != config.DefaultCCCmdline {
		t.Errorf("expected fallback to default cmdline, got %q", cfg.CCCmdline)
	}
}

func TestNew_BadCmdlineRefuseDefault(t *testing.T) {
	_, err := config.New(config.Params{CCCmdline: "no placeholders here"}, func(string) bool { return false })
	if err == nil {
		t.Fatal("expected error when user refuses to continue with default")
	}
}

func TestNew_MissingCCPathAcceptDefault(t *testing.T) {
	cfg, err := config.New(config.Params{CCPath: "/does/not/exist/gcc"}, func(string) bool { return true })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.CCPath != config.DefaultCCPath {
		t.Errorf("expected fallback to default cc path, got %q", cfg.CCPath)
	}
}
