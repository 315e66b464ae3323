// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

package popup

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/rideroster/internal/tui/tuitest"
	"github.com/toeirei/rideroster/internal/tui/util"
)

type fakeView struct {
	text    string
	focused bool
	msgs    []tea.Msg
}

func (v *fakeView) Init() tea.Cmd { return nil }
func (v *fakeView) Update(msg tea.Msg) tea.Cmd {
	v.msgs = append(v.msgs, msg)
	return nil
}
func (v *fakeView) View() string                  { return v.text }
func (v *fakeView) Focus() (tea.Cmd, help.KeyMap) { v.focused = true; return nil, nil }
func (v *fakeView) Blur()                         { v.focused = false }
func (v *fakeView) got(want tea.Msg) bool {
	for _, m := range v.msgs {
		if reflect.DeepEqual(m, want) {
			return true
		}
	}
	return false
}

func newInjector() (*Injector, *fakeView) {
	base := &fakeView{text: strings.Repeat(strings.Repeat(".", 20)+"\n", 9) + strings.Repeat(".", 20)}
	return NewInjector(util.ModelPointer(base)), base
}

func TestInjector_OpenRoutesInputToPopup(t *testing.T) {
	inj, base := newInjector()
	base.focused = true
	pv := &fakeView{text: "hi"}

	tuitest.Drain(inj.Update, Open(util.ModelPointer(pv)), nil)
	if !inj.Open() || base.focused || !pv.focused {
		t.Fatalf("popup should take focus: open=%v base=%v popup=%v", inj.Open(), base.focused, pv.focused)
	}

	key := tuitest.Key("x")
	inj.Update(key)
	if base.got(key) || !pv.got(key) {
		t.Fatalf("key should reach the popup only")
	}

	tuitest.Drain(inj.Update, Close(), nil)
	if inj.Open() || !base.focused {
		t.Fatalf("close should refocus the base view")
	}
}

type everyone struct{}

func (everyone) Broadcast() {}

func TestInjector_BroadcastReachesBase(t *testing.T) {
	inj, base := newInjector()
	pv := &fakeView{}
	tuitest.Drain(inj.Update, Open(util.ModelPointer(pv)), nil)

	inj.Update(everyone{})
	if !base.got(everyone{}) || !pv.got(everyone{}) {
		t.Fatalf("broadcast should reach base and popup")
	}
}

func TestInjector_CloseModelRemovesThatPopup(t *testing.T) {
	inj, _ := newInjector()
	first, second := util.ModelPointer(&fakeView{text: "a"}), util.ModelPointer(&fakeView{text: "b"})
	tuitest.Drain(inj.Update, Open(first), nil)
	tuitest.Drain(inj.Update, Open(second), nil)

	tuitest.Drain(inj.Update, CloseModel(first), nil)
	if len(inj.popups) != 1 || inj.popups[0].model != second {
		t.Fatalf("expected only the second popup left")
	}
	// Closing an unknown model is a no-op.
	tuitest.Drain(inj.Update, CloseModel(first), nil)
	if len(inj.popups) != 1 {
		t.Fatalf("unexpected close")
	}
}

func TestInjector_OnCloseCallback(t *testing.T) {
	inj, _ := newInjector()
	called := false
	m := util.ModelPointer(&fakeView{})
	tuitest.Drain(inj.Update, OpenWithCallback(m, func(got *util.Model) tea.Cmd {
		called = got == m
		return nil
	}), nil)
	tuitest.Drain(inj.Update, Close(), nil)
	if !called {
		t.Fatalf("callback not run with the closed model")
	}
}

func TestInjector_ResizeShrinksPopup(t *testing.T) {
	inj, base := newInjector()
	pv := &fakeView{}
	tuitest.Drain(inj.Update, Open(util.ModelPointer(pv)), nil)

	inj.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if !base.got(tea.WindowSizeMsg{Width: 80, Height: 24}) {
		t.Fatalf("base should get the full size")
	}
	if !pv.got(tea.WindowSizeMsg{Width: 80 - reservedWidth, Height: 24 - reservedHeight}) {
		t.Fatalf("popup should get the reduced size, got %v", pv.msgs)
	}
}

func TestInjector_ViewCentersPopup(t *testing.T) {
	inj, _ := newInjector()
	tuitest.Drain(inj.Update, Open(util.ModelPointer(&fakeView{text: "hi"})), nil)

	lines := strings.Split(ansi.Strip(inj.View()), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected base height to be kept, got %d lines", len(lines))
	}
	found := false
	for _, l := range lines {
		if strings.Contains(l, "hi") {
			found = true
			if !strings.HasPrefix(l, ".") || !strings.HasSuffix(l, ".") {
				t.Fatalf("popup line should be framed by the base view: %q", l)
			}
		}
	}
	if !found {
		t.Fatalf("popup content missing:\n%s", strings.Join(lines, "\n"))
	}
}

func TestOverlay_TallerThanBase(t *testing.T) {
	out := overlay("ab", "1\n2\n3")
	if got := strings.Count(out, "\n") + 1; got != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", got, out)
	}
}

func TestTrigger_ShowAndClose(t *testing.T) {
	tr := NewTrigger()
	pv := &fakeView{text: "login"}
	tr.Register("login", func() *util.Model { return util.ModelPointer(pv) })
	inj, _ := newInjector()

	ref := tr.Show("login")
	if inj.Open() {
		t.Fatalf("Show must only queue")
	}
	tuitest.Drain(inj.Update, tr.Flush(), nil)
	if !inj.Open() || !pv.focused {
		t.Fatalf("flushed Show should open the popup")
	}
	if tr.Flush() != nil {
		t.Fatalf("queue should be empty after flush")
	}

	ref.Close()
	ref.Close()
	msgs := tuitest.Collect(tr.Flush())
	if len(msgs) != 1 {
		t.Fatalf("double close should queue once, got %d", len(msgs))
	}
	for _, m := range msgs {
		inj.Update(m)
	}
	if inj.Open() {
		t.Fatalf("popup should be closed")
	}
}

func TestTrigger_UnknownTemplate(t *testing.T) {
	tr := NewTrigger()
	ref := tr.Show("nope")
	ref.Close()
	if tr.Flush() != nil {
		t.Fatalf("unknown template should queue nothing")
	}
}
