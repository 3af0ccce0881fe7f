package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// spinnerFrames animate the live trial display.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Messages fed into the run display. trialStartMsg and trialDoneMsg come
// from the experiment hooks, runDoneMsg from the driver goroutine.
type (
	trialStartMsg struct {
		trial int
		size  int
	}
	trialDoneMsg struct {
		trial    int
		duration time.Duration
		err      error
	}
	runDoneMsg struct {
		trials int
		err    error
	}
	tickMsg time.Time
)

// teaHooks forwards experiment events into a bubbletea program.
type teaHooks struct {
	program *tea.Program
}

func (h *teaHooks) OnTrialStart(trial, graphSize int) {
	h.program.Send(trialStartMsg{trial: trial, size: graphSize})
}

func (h *teaHooks) OnTrialComplete(trial int, duration time.Duration, err error) {
	h.program.Send(trialDoneMsg{trial: trial, duration: duration, err: err})
}

// runModel is the bubbletea model behind the run command's live display.
type runModel struct {
	cancel context.CancelFunc

	minTrials int
	trials    int
	size      int
	lastDur   time.Duration
	started   time.Time
	frame     int

	done   bool
	result runDoneMsg
}

func newRunModel(cancel context.CancelFunc, minTrials int) runModel {
	return runModel{cancel: cancel, minTrials: minTrials, started: time.Now()}
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m runModel) Init() tea.Cmd {
	return tick()
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			// The driver notices the cancelled context and sends runDoneMsg.
			m.cancel()
		}
	case trialStartMsg:
		m.size = msg.size
	case trialDoneMsg:
		m.trials = msg.trial
		m.lastDur = msg.duration
	case runDoneMsg:
		m.done = true
		m.result = msg
		return m, tea.Quit
	case tickMsg:
		m.frame++
		return m, tick()
	}
	return m, nil
}

func (m runModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Sampling traversal groups"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q to stop"))
	b.WriteString("\n\n")

	frame := spinnerFrames[m.frame%len(spinnerFrames)]
	b.WriteString(fmt.Sprintf("%s trial %s of %s",
		styleIconSpinner.Render(frame),
		StyleNumber.Render(fmt.Sprintf("%d", m.trials+1)),
		StyleNumber.Render(fmt.Sprintf("%d", m.minTrials))))
	if m.size > 0 {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  (%d nodes)", m.size)))
	}
	b.WriteString("\n")

	elapsed := time.Since(m.started).Round(time.Second)
	parts := []string{elapsed.String()}
	if m.lastDur > 0 {
		parts = append(parts, fmt.Sprintf("last trial %s", m.lastDur.Round(time.Millisecond)))
	}
	if m.trials > 0 {
		rate := float64(m.trials) / time.Since(m.started).Seconds()
		parts = append(parts, fmt.Sprintf("%.1f trials/s", rate))
	}
	b.WriteString("  " + StyleDim.Render(strings.Join(parts, " · ")))
	b.WriteString("\n")

	return b.String()
}
