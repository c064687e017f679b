package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/mazetrace/pkg/pipeline"
)

const (
	minStep = 5 * time.Millisecond
	maxStep = 2 * time.Second
)

// =============================================================================
// PlaybackModel - Animated search trace
// =============================================================================

// tickMsg advances the animation. gen ties a tick to the timer chain that
// issued it so ticks from a chain stopped by pausing are dropped.
type tickMsg struct{ gen int }

// PlaybackModel is the bubbletea model that replays a search: visited cells
// appear in expansion order, then the path is drawn.
type PlaybackModel struct {
	Result   *pipeline.Result
	Frame    int // number of visited cells revealed
	ShowPath bool
	Paused   bool
	Step     time.Duration

	gen int
}

// NewPlaybackModel creates a playback of result at one frame per step.
func NewPlaybackModel(result *pipeline.Result, step time.Duration) PlaybackModel {
	if step <= 0 {
		step = pipeline.DefaultAnimationStep
	}
	return PlaybackModel{Result: result, Step: step}
}

// Done reports whether every frame has been shown.
func (m PlaybackModel) Done() bool { return m.ShowPath }

func (m PlaybackModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.Step, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m PlaybackModel) Init() tea.Cmd {
	return m.tick()
}

func (m PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			if m.Done() {
				return m, nil
			}
			m.Paused = !m.Paused
			m.gen++
			if m.Paused {
				return m, nil
			}
			return m, m.tick()
		case "right", "l":
			if m.Paused {
				m.advance()
			}
		case "enter", "s":
			m.Frame = len(m.Result.Search.Visited)
			m.ShowPath = true
			m.gen++
		case "+", "=":
			m.Step = max(m.Step/2, minStep)
		case "-":
			m.Step = min(m.Step*2, maxStep)
		}
	case tickMsg:
		if msg.gen != m.gen || m.Paused || m.Done() {
			return m, nil
		}
		m.advance()
		if m.Done() {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

// advance reveals the next visited cell, or the path once the trace is out.
func (m *PlaybackModel) advance() {
	if m.Frame < len(m.Result.Search.Visited) {
		m.Frame++
		return
	}
	m.ShowPath = true
}

func (m PlaybackModel) View() string {
	res, mz := m.Result.Search, m.Result.Maze

	var b strings.Builder
	b.WriteString(StyleTitle.Render(pipeline.Title(mz, res)))
	b.WriteString("\n\n")

	view := boardView{
		grid:    mz.Grid,
		start:   mz.Start,
		end:     mz.End,
		visited: res.Visited[:m.Frame],
	}
	if m.ShowPath {
		view.path = res.Path
	}
	b.WriteString(view.render())
	b.WriteString("\n\n")
	b.WriteString(legend())
	b.WriteString("\n\n")

	status := fmt.Sprintf("visited %d/%d", m.Frame, len(res.Visited))
	switch {
	case m.ShowPath && res.Found:
		status += fmt.Sprintf("  path length %d", res.Length)
	case m.ShowPath:
		status += "  no path"
	case m.Paused:
		status += "  paused"
	}
	b.WriteString(StyleValue.Render(status))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("space pause  → step  enter skip  +/- speed (%s)  q quit", m.Step)))
	b.WriteString("\n")
	return b.String()
}

// playback runs the animation until the user quits or ctx is cancelled.
func playback(ctx context.Context, w io.Writer, result *pipeline.Result, step time.Duration) error {
	p := tea.NewProgram(NewPlaybackModel(result, step), tea.WithContext(ctx), tea.WithOutput(w))
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
