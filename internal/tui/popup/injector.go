// Copyright (c) 2026 Rideroster Team
// Rideroster - rideshare account selection and login client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package popup draws modal views centered on top of another view.
package popup

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/rideroster/internal/tui/util"
)

const (
	reservedHeight int = 2
	reservedWidth  int = 6
)

// Broadcast messages reach the view under the popups as well as the
// newest popup. Everything else only reaches the newest popup.
type Broadcast interface {
	Broadcast()
}

type popup struct {
	model   *util.Model
	onClose func(*util.Model) tea.Cmd
}

// Injector shows child and, when any are open, the newest popup on top of
// it. Only the newest popup receives input.
type Injector struct {
	child  *util.Model
	popups []popup
	size   util.Size
}

func NewInjector(child *util.Model) *Injector {
	return &Injector{child: child}
}

func (m *Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if len(m.popups) > 0 {
			return tea.Batch(
				(*m.activeModel()).Update(m.popupSizeMsg()),
				(*m.child).Update(msg),
			)
		}
		return (*m.child).Update(msg)
	}

	switch msg := msg.(type) {
	case openMsg:
		return m.open(popup{model: msg.Model, onClose: msg.OnClose})
	case closeMsg:
		return m.close(msg.Model)
	case Broadcast:
		if len(m.popups) > 0 {
			return tea.Batch((*m.child).Update(msg), (*m.activeModel()).Update(msg))
		}
	}

	return (*m.activeModel()).Update(msg)
}

func (m *Injector) View() string {
	childView := (*m.child).View()
	if len(m.popups) == 0 {
		return childView
	}

	popupView := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Margin(0, 1).
		Render((*m.activeModel()).View())

	childView = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"}).
		Render(ansi.Strip(childView))

	return overlay(childView, popupView)
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	return (*m.activeModel()).Focus()
}

func (m *Injector) Blur() {
	(*m.activeModel()).Blur()
}

// Open reports whether any popup is showing.
func (m *Injector) Open() bool { return len(m.popups) > 0 }

var _ util.Model = (*Injector)(nil)

// overlay centers top over base. top is cut to fit; base is padded with
// blank lines when it is shorter than top.
func overlay(base, top string) string {
	baseWidth, baseHeight := lipgloss.Size(base)
	top = lipgloss.NewStyle().MaxWidth(max(baseWidth, 1)).Render(top)
	topWidth, topHeight := lipgloss.Size(top)

	baseLines := strings.Split(base, "\n")
	for len(baseLines) < topHeight {
		baseLines = append(baseLines, "")
	}
	offsetLeft := max((baseWidth-topWidth)/2, 0)
	offsetTop := max((max(baseHeight, topHeight)-topHeight)/2, 0)

	for i, line := range strings.Split(top, "\n") {
		row := baseLines[i+offsetTop]
		left := ansi.Truncate(row, offsetLeft, "")
		if pad := offsetLeft - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(row, offsetLeft+topWidth, "")
		baseLines[i+offsetTop] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

func (m *Injector) popupSizeMsg() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  max(m.size.Width-reservedWidth, 0),
		Height: max(m.size.Height-reservedHeight, 0),
	}
}

func (m *Injector) open(p popup) tea.Cmd {
	m.Blur()
	m.popups = append(m.popups, p)
	return tea.Batch(
		(*p.model).Init(),
		m.focusActiveModel(),
		(*m.activeModel()).Update(m.popupSizeMsg()),
	)
}

// close removes target, or the newest popup when target is nil. Focus only
// moves when the newest popup goes away.
func (m *Injector) close(target *util.Model) tea.Cmd {
	idx := len(m.popups) - 1
	if target != nil {
		idx = -1
		for i, p := range m.popups {
			if p.model == target {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return nil
	}

	top := idx == len(m.popups)-1
	p := m.popups[idx]
	if top {
		m.Blur()
	}
	m.popups = append(m.popups[:idx], m.popups[idx+1:]...)

	var onCloseCmd tea.Cmd
	if p.onClose != nil {
		onCloseCmd = p.onClose(p.model)
	}
	if !top {
		return onCloseCmd
	}
	return tea.Batch(m.focusActiveModel(), onCloseCmd)
}

func (m *Injector) activeModel() *util.Model {
	if len(m.popups) > 0 {
		return m.popups[len(m.popups)-1].model
	}
	return m.child
}

func (m *Injector) focusActiveModel() tea.Cmd {
	cmd, keyMap := m.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}
