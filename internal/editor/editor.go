package editor

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"notemark/internal/complete"
	"notemark/internal/diag"
	"notemark/internal/source"
	"notemark/internal/validate"
)

// DefaultDebounce is the tooltip delay while the user keeps typing.
const DefaultDebounce = 300 * time.Millisecond

// tooltipMsg fires after the debounce interval. The sequence number
// identifies which edit scheduled it: a stale tick is ignored.
type tooltipMsg struct {
	seq uint64
}

// Model is the interactive note field: a single-line input with
// immediate marker validation, a debounced diagnostic tooltip, and a
// completion popup.
type Model struct {
	input       textinput.Model
	analyzer    *validate.Analyzer
	completions *complete.Source

	debounce time.Duration
	seq      uint64

	fs   *source.FileSet
	file *source.File
	bag  *diag.Bag

	popup      []popupItem
	popupIndex int
	tooltip    string

	width    int
	quitting bool
}

type popupItem struct {
	value  string
	label  string
	detail string
	anchor source.Span
}

// Option configures the editor model.
type Option func(*Model)

// WithDebounce overrides the tooltip delay.
func WithDebounce(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.debounce = d
		}
	}
}

// WithAnalyzer supplies a preconfigured analyzer.
func WithAnalyzer(a *validate.Analyzer) Option {
	return func(m *Model) {
		if a != nil {
			m.analyzer = a
		}
	}
}

// WithCompletions supplies a preconfigured completion source.
func WithCompletions(s *complete.Source) Option {
	return func(m *Model) {
		if s != nil {
			m.completions = s
		}
	}
}

// WithInitialValue pre-fills the input field.
func WithInitialValue(text string) Option {
	return func(m *Model) {
		m.input.SetValue(text)
		m.input.CursorEnd()
	}
}

// New builds the editor model.
func New(opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "Buy milk @tomorrow #high [groceries] +alice"
	ti.Prompt = "> "
	ti.Focus()

	m := &Model{
		input:       ti,
		analyzer:    validate.NewAnalyzer(),
		completions: complete.NewSource(),
		debounce:    DefaultDebounce,
		width:       80,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.revalidate()
	return m
}

// Run starts the interactive editor and returns the final input text.
func Run(opts ...Option) (string, error) {
	m := New(opts...)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	if fm, ok := final.(*Model); ok {
		return fm.input.Value(), nil
	}
	return m.input.Value(), nil
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tooltipMsg:
		if msg.seq == m.seq {
			m.tooltip = m.tooltipText()
		}
		return m, nil

	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.input.Width = msg.Width - 4
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyTab:
		if len(m.popup) > 0 {
			m.acceptCompletion(m.popup[m.popupIndex])
			return m, m.afterEdit()
		}
		return m, nil

	case tea.KeyDown:
		if len(m.popup) > 0 {
			m.popupIndex = (m.popupIndex + 1) % len(m.popup)
			return m, nil
		}

	case tea.KeyUp:
		if len(m.popup) > 0 {
			m.popupIndex = (m.popupIndex - 1 + len(m.popup)) % len(m.popup)
			return m, nil
		}

	case tea.KeyCtrlF:
		if m.applyFirstFix() {
			return m, m.afterEdit()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, tea.Batch(cmd, m.afterEdit())
}

// afterEdit recomputes validation and completions immediately and
// schedules the debounced tooltip. Bumping the sequence number cancels
// any tick still in flight.
func (m *Model) afterEdit() tea.Cmd {
	m.revalidate()
	m.seq++
	m.tooltip = ""
	seq := m.seq
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return tooltipMsg{seq: seq}
	})
}

// revalidate rebuilds the diagnostic list and the completion popup for
// the current snapshot. Validation is wholesale per keystroke.
func (m *Model) revalidate() {
	value := m.input.Value()
	m.fs, m.file, m.bag = m.analyzer.AnalyzeText("note", value)

	cursor := m.input.Position()
	cands := m.completions.At(value, cursor)
	m.popup = m.popup[:0]
	if ctx, ok := complete.ContextAt(value, cursor); ok {
		for _, c := range cands {
			m.popup = append(m.popup, popupItem{
				value:  c.Value,
				label:  c.Label,
				detail: c.Detail,
				anchor: ctx.Anchor,
			})
		}
	}
	if m.popupIndex >= len(m.popup) {
		m.popupIndex = 0
	}
}

// acceptCompletion replaces the query range with the chosen value and
// puts the cursor right after it.
func (m *Model) acceptCompletion(item popupItem) {
	value := m.input.Value()
	start, end := int(item.anchor.Start), int(item.anchor.End)
	if start < 0 || end < start || end > len(value) {
		return
	}
	next := value[:start] + item.value + value[end:]
	m.input.SetValue(next)
	m.input.SetCursor(start + len(item.value))
}

// applyFirstFix applies the first quick fix of the diagnostic under the
// cursor, falling back to the first diagnostic carrying one.
func (m *Model) applyFirstFix() bool {
	if m.bag == nil {
		return false
	}
	cursor := uint32(m.input.Position())

	var target *diag.Diagnostic
	items := m.bag.Items()
	for i := range items {
		if len(items[i].Fixes) == 0 {
			continue
		}
		if items[i].Primary.Start <= cursor && cursor <= items[i].Primary.End {
			target = &items[i]
			break
		}
		if target == nil {
			target = &items[i]
		}
	}
	if target == nil {
		return false
	}

	value := m.input.Value()
	start, end := int(target.Primary.Start), int(target.Primary.End)
	if start < 0 || end < start || end > len(value) {
		return false
	}
	replacement := target.Fixes[0].Replacement
	m.input.SetValue(value[:start] + replacement + value[end:])
	m.input.SetCursor(start + len(replacement))
	return true
}

// tooltipText picks the diagnostic under the cursor, preferring the
// highest severity when several overlap.
func (m *Model) tooltipText() string {
	if m.bag == nil {
		return ""
	}
	cursor := uint32(m.input.Position())

	var best *diag.Diagnostic
	items := m.bag.Items()
	for i := range items {
		d := &items[i]
		if d.Primary.Start <= cursor && cursor <= d.Primary.End {
			if best == nil || d.Severity > best.Severity {
				best = d
			}
		}
	}
	if best == nil {
		return ""
	}
	text := best.Message
	if best.Hint != "" {
		text += "\n" + best.Hint
	}
	return text
}
