// Package tui shows a live progress bar while a batch is generated.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zseed/internal/user"
)

// ErrInterrupted is returned when the user quits before generation finishes.
var ErrInterrupted = errors.New("generation interrupted")

const barWidth = 48

// Batch generates count users and reports progress through fn.
type Batch func(count int, fn func(done, total int)) ([]user.User, error)

// progressMsg carries generation progress into the program.
type progressMsg struct {
	done  int
	total int
}

// generatedMsg carries the finished batch.
type generatedMsg struct {
	users []user.User
	err   error
}

// progressModel renders the progress bar and holds the finished batch.
type progressModel struct {
	bar         progress.Model
	done        int
	total       int
	users       []user.User
	err         error
	finished    bool
	interrupted bool
}

func newProgressModel(total int) progressModel {
	return progressModel{
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth)),
		total: total,
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || key.Matches(msg, zstyle.KeyQuit) {
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		// leave room for the indent and the counter
		m.bar.Width = min(barWidth, max(10, msg.Width-24))
		return m, nil

	case progressMsg:
		m.done = msg.done
		m.total = msg.total
		return m, nil

	case generatedMsg:
		m.users = msg.users
		m.err = msg.err
		m.finished = true
		if msg.err == nil {
			m.done = m.total
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m progressModel) percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

func (m progressModel) View() string {
	s := "\n  " + zstyle.Title.Render("zseed") + "\n\n"
	s += "  " + m.bar.ViewAs(m.percent())
	s += "  " + zstyle.MutedText.Render(fmt.Sprintf("%d/%d users", m.done, m.total)) + "\n"

	switch {
	case m.err != nil:
		s += "\n  " + zstyle.StatusErr.Render(m.err.Error()) + "\n"
	case m.finished:
		s += "\n  " + zstyle.StatusOK.Render("done") + "\n"
	default:
		s += "\n  " + zstyle.MutedText.Render("q quit") + "\n"
	}
	return s
}

// step is how many records pass between progress messages.
func step(total int) int {
	return max(1, total/100)
}

// Generate runs batch while drawing a progress bar on out. It returns the
// batch once generation finishes, or ErrInterrupted if the user quits first.
func Generate(ctx context.Context, out io.Writer, count int, batch Batch) ([]user.User, error) {
	p := tea.NewProgram(newProgressModel(count), tea.WithContext(ctx), tea.WithOutput(out))

	// after a quit the batch still runs to the end; Send returns at once
	// because the program's context is done, and the process exits.
	go func() {
		every := step(count)
		users, err := batch(count, func(done, total int) {
			if done == total || done%every == 0 {
				p.Send(progressMsg{done: done, total: total})
			}
		})
		p.Send(generatedMsg{users: users, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil, ErrInterrupted
		}
		return nil, fmt.Errorf("progress: %w", err)
	}

	m, ok := final.(progressModel)
	if !ok {
		return nil, fmt.Errorf("progress: unexpected model %T", final)
	}
	if m.interrupted {
		return nil, ErrInterrupted
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}
