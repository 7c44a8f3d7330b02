// Package tui hosts a dubstep.Controller inside a bubbletea program.
package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/librescoot/dubstep"
)

// frameMsg tells the program that the controller rendered a new frame
type frameMsg struct{}

// Model implements tea.Model around a step controller. Init mounts the
// controller and quitting tears it down.
type Model struct {
	ctrl     *dubstep.Controller[string]
	frames   chan struct{}
	done     chan struct{} // closed on quit
	quitting bool
}

// New builds a Model. title labels a step and may be nil; an empty title is
// not shown.
func New(cfg dubstep.Config, title func(step int) string, opts ...dubstep.Option) (Model, error) {
	frames := make(chan struct{}, 1)
	r := &frameRenderer{
		total:  cfg.Total,
		title:  title,
		styles: DefaultStyles(),
		frames: frames,
	}

	ctrl, err := dubstep.New[string](cfg, r, opts...)
	if err != nil {
		return Model{}, err
	}
	return Model{ctrl: ctrl, frames: frames, done: make(chan struct{})}, nil
}

// Controller returns the hosted controller
func (m Model) Controller() *dubstep.Controller[string] {
	return m.ctrl
}

// Init implements tea.Model interface.
func (m Model) Init() tea.Cmd {
	m.ctrl.Mount()
	return m.waitForFrame
}

func (m Model) waitForFrame() tea.Msg {
	select {
	case <-m.frames:
		return frameMsg{}
	case <-m.done:
		return nil
	}
}

// Update implements tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if m.quitting {
			return m, nil
		}
		return m, m.waitForFrame
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	actions := m.ctrl.Props().Actions
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		m.ctrl.Teardown()
		m.quitting = true
		close(m.done)
		return m, tea.Quit
	case "right", "l", " ", "space":
		actions.Next()
	case "left", "h":
		actions.Previous()
	case "p":
		actions.Play()
	case "s":
		actions.Pause()
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(key)
		// keys are 1-based, 0 selects the tenth step
		if n == 0 {
			n = 10
		}
		actions.StepIndex(n - 1)
	}
	return m, nil
}

// View implements tea.Model interface.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.ctrl.Output()
}
