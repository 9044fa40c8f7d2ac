package cli

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/versionlens/pkg/state"
	"github.com/matzehuels/versionlens/pkg/watcher"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (watchModel, string) {
	t.Helper()
	path := writeManifest(t, t.TempDir(), "package.json", testManifest)
	m := newWatchModel(context.Background(), newTestWatcher(t), state.New(true), []string{path}, time.Second)
	return m, path
}

// runPass executes the pass command for path and feeds the result back.
func runPass(t *testing.T, m watchModel, path string, refresh bool) watchModel {
	t.Helper()
	msg := m.process(path, refresh)()
	next, _ := m.Update(msg)
	return next.(watchModel)
}

func TestWatchModelChanged(t *testing.T) {
	m, path := newTestModel(t)

	if got := m.changed(); len(got) != 1 || got[0] != path {
		t.Fatalf("first poll = %v, want [%s]", got, path)
	}
	if got := m.changed(); len(got) != 0 {
		t.Errorf("busy file polled again: %v", got)
	}

	m = runPass(t, m, path, false)
	if got := m.changed(); len(got) != 0 {
		t.Errorf("unchanged file reported: %v", got)
	}

	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	if got := m.changed(); len(got) != 1 {
		t.Errorf("touched file not reported: %v", got)
	}
}

func TestWatchModelMissingFile(t *testing.T) {
	m, path := newTestModel(t)
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if got := m.changed(); len(got) != 0 {
		t.Errorf("missing file reported as changed: %v", got)
	}
	if m.status[path].err == nil {
		t.Error("missing file should record an error")
	}
}

func TestWatchModelPassAndView(t *testing.T) {
	m, path := newTestModel(t)
	m.changed()
	m = runPass(t, m, path, false)

	s := m.status[path]
	if s.busy || s.err != nil || s.outcome != watcher.Published {
		t.Fatalf("status = %+v", s)
	}
	view := m.View()
	for _, want := range []string{"package.json", "react", "lodash", "inline badges on", "published"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestWatchModelRefreshBypassesDebounce(t *testing.T) {
	m, path := newTestModel(t)
	m = runPass(t, m, path, false)
	m = runPass(t, m, path, false)
	if got := m.status[path].outcome; got != watcher.Debounced {
		t.Fatalf("second pass = %s, want debounced", got)
	}
	m = runPass(t, m, path, true)
	if got := m.status[path].outcome; got != watcher.Published {
		t.Errorf("refresh = %s, want published", got)
	}
}

func TestWatchModelKeys(t *testing.T) {
	m, path := newTestModel(t)
	m = runPass(t, m, path, false)

	next, _ := m.Update(key("t"))
	m = next.(watchModel)
	if m.state.InlineEnabled() {
		t.Fatal("t did not toggle inline badges")
	}
	if view := m.View(); !strings.Contains(view, "inline badges off") || strings.Contains(view, "lodash") {
		t.Errorf("view with inline off:\n%s", view)
	}

	next, _ = m.Update(key("c"))
	m = next.(watchModel)
	if m.watcher.HasAnnotations(path) {
		t.Error("c did not clear annotations")
	}

	_, cmd := m.Update(key("r"))
	if cmd == nil {
		t.Error("r should schedule a refresh")
	}
	if !m.status[path].busy {
		t.Error("refresh should mark the file busy")
	}

	_, cmd = m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{time.Second, "just now"},
		{30 * time.Second, "30s ago"},
		{5 * time.Minute, "5m ago"},
		{3 * time.Hour, "3h ago"},
	}
	for _, tt := range tests {
		if got := formatAge(tt.d); got != tt.want {
			t.Errorf("formatAge(%s) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
