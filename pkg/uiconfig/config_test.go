package uiconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devicelab-dev/uicore/pkg/action"
)

func TestDefaultMatchesActionDefaults(t *testing.T) {
	got := Default().ToOpArgs()
	want := action.DefaultOpArgs()
	if got != want {
		t.Errorf("Default().ToOpArgs() = %+v, want %+v", got, want)
	}
}

func TestLoadPartialOverridePreservesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uicore.yaml")
	if err := os.WriteFile(path, []byte("opArgs:\n  clickHoldMs: 250\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OpArgs.ClickHoldMs != 250 {
		t.Errorf("ClickHoldMs = %d, want 250 (overridden)", cfg.OpArgs.ClickHoldMs)
	}
	if cfg.OpArgs.LongClickHoldMs != action.DefaultOpArgs().LongClickHoldMs {
		t.Errorf("LongClickHoldMs = %d, want default %d (untouched)",
			cfg.OpArgs.LongClickHoldMs, action.DefaultOpArgs().LongClickHoldMs)
	}
}

func TestLoadFromDirWithNoFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFromDir failed: %v", err)
	}
	if cfg.ToOpArgs() != action.DefaultOpArgs() {
		t.Errorf("expected defaults when no config file present, got %+v", cfg.ToOpArgs())
	}
}
