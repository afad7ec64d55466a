package configfinder

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/unitconv/internal/domain"
)

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	root := t.TempDir()

	// Partial config (no history/prompt)
	content := []byte("unitconv:\n  temperature:\n    enabled: false\n")
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.Temperature.Enabled {
		t.Fatalf("expected temperature disabled")
	}
	if !cfg.History.Enabled {
		t.Fatalf("expected history enabled by default")
	}
	if cfg.History.File != ".unitconv/history.jsonl" {
		t.Fatalf("expected default history file, got=%s", cfg.History.File)
	}
	if cfg.Prompt != domain.DefaultPrompt {
		t.Fatalf("expected default prompt, got=%q", cfg.Prompt)
	}
}

func TestLoadConfig_OverridesEverything(t *testing.T) {
	root := t.TempDir()
	content := []byte(`unitconv:
  temperature:
    enabled: true
  history:
    enabled: false
    file: logs/h.jsonl
  prompt: "> "
`)
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if !cfg.Temperature.Enabled || cfg.History.Enabled || cfg.History.File != "logs/h.jsonl" || cfg.Prompt != "> " {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("unitconv: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestResolve_FallsBackToDefaults(t *testing.T) {
	tmp := t.TempDir()

	res, err := Resolve(nil, tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Found {
		t.Fatalf("expected Found=false")
	}
	if res.Root != tmp {
		t.Fatalf("expected root=%s, got=%s", tmp, res.Root)
	}
	if res.Config != domain.DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", res.Config)
	}
}

func TestResolve_FindsConfigAbove(t *testing.T) {
	tmp := t.TempDir()
	nested := filepath.Join(tmp, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmp, ConfigFileName), []byte("unitconv:\n  prompt: \"?\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	res, err := Resolve(NewFinder(), nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Found || res.Root != tmp {
		t.Fatalf("expected root=%s found, got %+v", tmp, res)
	}
	if res.Config.Prompt != "?" {
		t.Fatalf("expected prompt from file, got %q", res.Config.Prompt)
	}
}

type stubLocator struct {
	root string
	err  error
}

func (s stubLocator) FindRoot(string) (string, error) { return s.root, s.err }

func TestResolve_UsesLocator(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("unitconv:\n  history:\n    enabled: false\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	res, err := Resolve(stubLocator{root: root}, "/somewhere/else")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Found || res.Root != root || res.Config.History.Enabled {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestResolve_LocatorFailureIsReturned(t *testing.T) {
	boom := &domain.OpError{Op: "configfinder.findroot", Kind: domain.KindExecution, Err: errors.New("permission denied")}

	res, err := Resolve(stubLocator{err: boom}, t.TempDir())
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected execution error, got %v", err)
	}
	if res.Found {
		t.Fatalf("expected Found=false")
	}
}
