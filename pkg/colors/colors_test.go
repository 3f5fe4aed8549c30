package colors

import (
	"bytes"
	"testing"

	"github.com/harrisonrobin/tasklist/pkg/model"
)

func TestSwatch(t *testing.T) {
	if got := Swatch(PriorityBackground(model.Critical)); got != "\x1b[101m \x1b[0m" {
		t.Errorf("unexpected critical swatch %q", got)
	}
	if got := Swatch(PriorityBackground("X")); got != " " {
		t.Errorf("unknown priority should render a plain space, got %q", got)
	}
}

func TestBackgrounds(t *testing.T) {
	priorities := map[model.Priority]string{model.Critical: "101", model.High: "103", model.Normal: "102", model.Low: "104"}
	for p, want := range priorities {
		if got := PriorityBackground(p); got != want {
			t.Errorf("PriorityBackground(%v) = %s, want %s", p, got, want)
		}
	}
	due := map[model.DueTag]string{model.InTime: "102", model.Today: "103", model.Overdue: "101"}
	for d, want := range due {
		if got := DueBackground(d); got != want {
			t.Errorf("DueBackground(%v) = %s, want %s", d, got, want)
		}
	}
}

func TestModeEnabled(t *testing.T) {
	var buf bytes.Buffer
	if !Always.Enabled(&buf) {
		t.Error("Always should enable color")
	}
	if Never.Enabled(&buf) {
		t.Error("Never should disable color")
	}
	if Auto.Enabled(&buf) {
		t.Error("Auto should disable color for a non-terminal writer")
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(""); err != nil || m != Auto {
		t.Errorf("empty mode should default to auto, got %v %v", m, err)
	}
	if _, err := ParseMode("sometimes"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
