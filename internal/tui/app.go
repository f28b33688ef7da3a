package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/adjespin/internal/card"
	"github.com/f3rmion/adjespin/internal/clipboard"
	"github.com/f3rmion/adjespin/internal/machine"
	"github.com/f3rmion/adjespin/internal/reel"
	"github.com/f3rmion/adjespin/internal/tui/banner"
	"github.com/f3rmion/adjespin/internal/word"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
)

const (
	frameInterval = time.Second / 60
	reelRows      = 5
)

type state int

const (
	stateLoading state = iota
	stateReady
	stateSpinning
)

type progressMsg struct {
	done, total int
}

type loadedMsg struct {
	err error
}

type restoredMsg struct {
	word word.Enriched
	ok   bool
	err  error
}

type frameMsg time.Time

// transitionEndMsg fires once the reel has reached its final offset.
type transitionEndMsg struct {
	spin *reel.Spin
}

type copiedMsg struct {
	err error
}

// AppModel is the slot machine screen.
type AppModel struct {
	ctx     context.Context
	machine *machine.Machine
	copier  clipboard.Copier
	log     *zap.Logger

	width  int
	height int

	state     state
	loadErr   error
	progress  chan progressMsg
	done      int
	total     int
	spin      *reel.Spin
	lastFrame time.Time
	result    *word.Enriched
	status    string
	statusErr bool

	spinner  spinner.Model
	bar      progress.Model
	help     help.Model
	keys     keyMap
	showHelp bool
}

// NewApp creates the TUI for a machine that has not been loaded yet.
func NewApp(ctx context.Context, mach *machine.Machine, copier clipboard.Copier, logger *zap.Logger) AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = LoadingStyle

	return AppModel{
		ctx:      ctx,
		machine:  mach,
		copier:   copier,
		log:      logger.Named("tui"),
		state:    stateLoading,
		progress: make(chan progressMsg, len(mach.Source())+1),
		total:    len(mach.Source()),
		spinner:  sp,
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		help:     help.New(),
		keys:     defaultKeyMap(),
	}
}

// WithError returns a model stuck in the loading state showing err. It is
// used when the word list itself could not be read.
func (m AppModel) WithError(err error) AppModel {
	m.loadErr = err
	m.setStatus(err.Error(), true)
	return m
}

// Init starts loading unless the model already failed.
func (m AppModel) Init() tea.Cmd {
	if m.loadErr != nil {
		return m.restore()
	}
	return tea.Batch(
		m.spinner.Tick,
		m.load(),
		m.waitForProgress(),
		m.restore(),
	)
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading || m.loadErr != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progressMsg:
		m.done, m.total = msg.done, msg.total
		return m, m.waitForProgress()

	case loadedMsg:
		if msg.err != nil {
			m.log.Error("loading words failed", zap.Error(msg.err))
			m.loadErr = msg.err
			m.setStatus(msg.err.Error(), true)
			return m, nil
		}
		m.state = stateReady
		m.done = m.total
		return m, nil

	case restoredMsg:
		if msg.err != nil {
			m.log.Warn("restore failed", zap.Error(msg.err))
			return m, nil
		}
		if msg.ok && m.result == nil && m.spin == nil {
			w := msg.word
			m.result = &w
		}
		return m, nil

	case frameMsg:
		if m.state != stateSpinning || m.spin == nil {
			return m, nil
		}
		now := time.Time(msg)
		dt := now.Sub(m.lastFrame)
		m.lastFrame = now
		if m.spin.Advance(dt) {
			s := m.spin
			return m, func() tea.Msg { return transitionEndMsg{spin: s} }
		}
		return m, m.frame()

	case transitionEndMsg:
		// Stale or repeated ends are ignored; End fires the commit only once.
		if msg.spin != m.spin || !msg.spin.End() {
			return m, nil
		}
		final := msg.spin.Final()
		m.result = &final
		m.state = stateReady
		if err := m.machine.CommitErr(); err != nil {
			m.setStatus("could not save: "+err.Error(), true)
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.setStatus("copy failed: "+msg.err.Error(), true)
		} else {
			m.setStatus("copied to clipboard", false)
		}
		return m, nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay - any key closes it
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Spin):
		return m.startSpin()
	case key.Matches(msg, m.keys.Copy):
		if m.result == nil || m.state == stateSpinning || m.copier == nil {
			return m, nil
		}
		return m, m.copy(card.Format(*m.result))
	}
	return m, nil
}

func (m AppModel) startSpin() (tea.Model, tea.Cmd) {
	if m.state != stateReady {
		return m, nil
	}

	s, err := m.machine.Spin(m.ctx)
	switch {
	case errors.Is(err, machine.ErrNotReady), errors.Is(err, machine.ErrBusy):
		return m, nil
	case err != nil:
		m.log.Error("spin failed", zap.Error(err))
		m.setStatus(err.Error(), true)
		return m, nil
	}

	m.spin = s
	m.state = stateSpinning
	m.lastFrame = time.Now()
	m.setStatus("", false)
	return m, m.frame()
}

func (m *AppModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m AppModel) frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// load enriches the word list and closes the progress channel when done.
func (m AppModel) load() tea.Cmd {
	ch := m.progress
	return func() tea.Msg {
		defer close(ch)
		err := m.machine.Load(m.ctx, func(done, total int) {
			select {
			case ch <- progressMsg{done: done, total: total}:
			default:
			}
		})
		return loadedMsg{err: err}
	}
}

func (m AppModel) waitForProgress() tea.Cmd {
	ch := m.progress
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (m AppModel) restore() tea.Cmd {
	return func() tea.Msg {
		w, ok, err := m.machine.Restore(m.ctx)
		return restoredMsg{word: w, ok: ok, err: err}
	}
}

func (m AppModel) copy(text string) tea.Cmd {
	copier := m.copier
	return func() tea.Msg {
		return copiedMsg{err: copier.Copy(text)}
	}
}

// View renders the UI
func (m AppModel) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("adjespin"))
	b.WriteString(SubtitleStyle.Render("  spin for an adjective"))
	b.WriteString("\n\n")

	if m.state == stateLoading {
		b.WriteString(m.renderLoading())
	} else {
		b.WriteString(m.renderReel())
		b.WriteString("\n")
		if m.state != stateSpinning && m.result != nil {
			b.WriteString(m.renderResult(*m.result))
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(ErrorStyle.Render(m.status))
		} else {
			b.WriteString(CopiedStyle.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))

	return ContentStyle.Render(b.String())
}

func (m AppModel) renderLoading() string {
	if m.loadErr != nil {
		return LoadingStyle.Render("Loading words...") + "\n"
	}

	pct := 0.0
	if m.total > 0 {
		pct = float64(m.done) / float64(m.total)
	}
	line := m.spinner.View() + " " + LoadingStyle.Render("Looking up words...")
	count := HelpStyle.Render(fmt.Sprintf(" %d/%d", m.done, m.total))
	return line + "\n\n" + m.bar.ViewAs(pct) + count + "\n"
}

func (m AppModel) renderReel() string {
	var rows []string
	switch {
	case m.spin != nil:
		rows = m.spin.Window(reelRows)
	case m.result != nil:
		rows = make([]string, reelRows)
		rows[reelRows/2] = m.result.Word
	default:
		rows = make([]string, reelRows)
		rows[reelRows/2] = "?"
	}

	width := 0
	for _, r := range rows {
		width = max(width, runewidth.StringWidth(r))
	}
	if m.spin != nil {
		for _, item := range m.spin.Items() {
			width = max(width, runewidth.StringWidth(item))
		}
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		cell := center(r, width+2)
		if i == reelRows/2 {
			lines[i] = ReelCenterStyle.Render(cell)
		} else {
			lines[i] = ReelItemStyle.Render(cell)
		}
	}
	return ReelStyle.Render(strings.Join(lines, "\n"))
}

func (m AppModel) renderResult(w word.Enriched) string {
	var parts []string

	if m.width == 0 || banner.Width(w.Word) <= m.width-8 {
		parts = append(parts, BannerStyle.Render(banner.GetCached(w.Word)))
	}

	title := WordStyle.Render(w.Word)
	if w.Pronunciation != "" {
		title += " " + PronunciationStyle.Render("("+w.Pronunciation+")")
	}
	parts = append(parts, title)

	if w.HasDefinition() {
		parts = append(parts, DefinitionStyle.Render(w.Definition))
	} else {
		parts = append(parts, HelpStyle.Render("(no definition found)"))
	}
	if w.Example != "" {
		parts = append(parts, ExampleStyle.Render(`"`+w.Example+`"`))
	}

	panel := PanelStyle
	if m.width > 12 {
		panel = panel.Width(min(m.width-8, 72))
	}
	return panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(ColorText)

	helpText := titleStyle.Render("adjespin - adjective slot machine") + "\n\n"
	for _, b := range []key.Binding{m.keys.Spin, m.keys.Copy, m.keys.Help, m.keys.Quit} {
		h := b.Help()
		helpText += keyStyle.Render(h.Key) + descStyle.Render(h.Desc) + "\n"
	}

	helpText += "\n" + lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Render("Press any key to close")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSecondary).
		Padding(1, 2).
		Width(44)

	helpBox := boxStyle.Render(helpText)
	if m.width == 0 || m.height == 0 {
		return helpBox
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}

// center pads s with spaces to width cells.
func center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
