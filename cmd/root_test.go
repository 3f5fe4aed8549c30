package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrisonrobin/tasklist/pkg/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSessionThenPrint(t *testing.T) {
	for _, storage := range []string{"json", "sqlite"} {
		t.Run(storage, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			file := filepath.Join(t.TempDir(), "tasks."+storage)

			input := "add\nn\n2030-1-1\n10:00\nWrite report\n\nend\n"
			out, err := execute(t, input, "--file", file, "--storage", storage, "--color", "never")
			if err != nil {
				t.Fatalf("session failed: %v\n%s", err, out)
			}
			if !strings.Contains(out, "Tasklist exiting!") {
				t.Errorf("expected exit message, got:\n%s", out)
			}

			out, err = execute(t, "", "print", "--file", file, "--storage", storage, "--color", "never")
			if err != nil {
				t.Fatalf("print failed: %v", err)
			}
			if !strings.Contains(out, "| 1  | 2030-01-01 | 10:00 | N | I |Write report") {
				t.Errorf("unexpected table:\n%s", out)
			}
		})
	}
}

func TestRejectsBadFlags(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := execute(t, "", "print", "--color", "rainbow"); err == nil {
		t.Error("expected error for unknown color mode")
	}
	if _, err := execute(t, "", "print", "--storage", "csv"); err == nil {
		t.Error("expected error for unknown storage")
	}
}

func TestConfigSetAndResolve(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := execute(t, "", "config", "set", "--calendar", "Work", "--storage", "sqlite", "--color", "never"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Calendar != "Work" || cfg.Storage != "sqlite" || cfg.Color != "never" {
		t.Fatalf("unexpected saved config %+v", cfg)
	}

	resolved, err := resolveConfig(&options{color: "always"})
	if err != nil {
		t.Fatal(err)
	}
	if resolved.Color != "always" || resolved.DataFile() != config.DefaultDBFile {
		t.Errorf("flags should override config: %+v", resolved)
	}

	out, err := execute(t, "", "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"calendar": "Work"`) {
		t.Errorf("unexpected config output:\n%s", out)
	}

	if _, err := execute(t, "", "config", "set", "--timezone", "Nowhere/Special"); err == nil {
		t.Error("expected error for unknown timezone")
	}
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")
	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "tasklist version 1.2.3" {
		t.Errorf("unexpected version output %q", out)
	}
}
