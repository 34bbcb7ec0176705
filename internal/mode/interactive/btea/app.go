// ABOUTME: AppModel is the root Bubble Tea model: a form with two autocompleting fields
// ABOUTME: A textinput line, a multi-line textarea and a selectable input, each with its own binding

package btea

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/autocomplete-trigger/internal/log"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/component"
	"github.com/mauromedda/autocomplete-trigger/pkg/tui/trigger"
)

const defaultWidth = 80

// shared holds state that must survive Bubble Tea's value copies of AppModel.
type shared struct {
	registry *trigger.Registry
	fields   []*boundField
	note     string
}

// AppModel is the root model. Field 0 is Subject, 1 is Body, 2 is Tags.
type AppModel struct {
	sh     *shared
	deps   AppDeps
	focus  int
	width  int
	height int
}

// NewAppModel builds the form and attaches a trigger binding to each field.
func NewAppModel(deps AppDeps) (AppModel, error) {
	if deps.Source == nil {
		deps.Source = component.NewStaticSource(deps.Suggestions...)
	}

	sh := &shared{registry: trigger.NewRegistry()}

	line := &boundField{label: "Subject", line: newLineField("type " + deps.Trigger.Start + " to insert a value")}
	tags := &boundField{label: "Tags", input: component.NewInput()}
	tags.input.SetPlaceholder("comma separated; " + deps.Trigger.Start + " completes here too")
	area := &boundField{label: "Body", area: component.NewTextarea()}
	area.area.SetPlaceholder("multi-line text; " + deps.Trigger.Start + " works here too")

	for _, f := range []*boundField{line, area, tags} {
		f.list = component.NewSuggestionList(deps.Source, deps.Options)
		b, err := sh.registry.Attach(f.field(), deps.Trigger, f.list)
		if err != nil {
			sh.registry.DetachAll()
			return AppModel{}, fmt.Errorf("attaching %s field: %w", strings.ToLower(f.label), err)
		}
		f.binding = b
		sh.fields = append(sh.fields, f)
	}

	m := AppModel{sh: sh, deps: deps}
	m.sh.fields[0].focus()
	return m, nil
}

// Init starts the caret blink of the focused textinput.
func (m AppModel) Init() tea.Cmd {
	return m.focused().focus()
}

// Update routes messages to the appropriate handler.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case WordsReloadedMsg:
		// Rebuild rather than add so words removed from a file disappear.
		m.deps.Source.Set(append(slices.Clone(m.deps.Suggestions), msg.Words...)...)
		m.sh.note = fmt.Sprintf("word lists reloaded (%d suggestions)", len(m.deps.Source.Items()))
		log.Info("btea: word lists reloaded, %d words", len(msg.Words))
		return m, nil

	case WordsReloadErrorMsg:
		m.sh.note = "reload failed: " + msg.Err.Error()
		log.Warn("btea: %v", msg.Err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Blink and other textinput messages.
	if f := m.focused(); f.line != nil {
		var cmd tea.Cmd
		*f.line.in, cmd = f.line.in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.sh.registry.DetachAll()
		return m, tea.Quit
	}

	f := m.focused()
	if !f.list.IsOpen() {
		switch msg.Type {
		case tea.KeyTab:
			return m.moveFocus(1)
		case tea.KeyShiftTab:
			return m.moveFocus(-1)
		}
	}

	m.sh.note = ""
	_, cmd := f.handleKey(msg)
	return m, cmd
}

func (m AppModel) moveFocus(delta int) (tea.Model, tea.Cmd) {
	n := len(m.sh.fields)
	m.focused().blur()
	m.focus = (m.focus + delta + n) % n
	return m, m.focused().focus()
}

func (m AppModel) focused() *boundField {
	return m.sh.fields[m.focus]
}

// FocusedIndex returns the index of the focused field.
func (m AppModel) FocusedIndex() int {
	return m.focus
}

// FieldText returns the text of field i.
func (m AppModel) FieldText(i int) string {
	return m.sh.fields[i].field().Text()
}

// Binding returns the trigger binding of field i.
func (m AppModel) Binding(i int) *trigger.Binding {
	return m.sh.fields[i].binding
}

// Suggestions returns the suggestion list of field i.
func (m AppModel) Suggestions(i int) *component.SuggestionList {
	return m.sh.fields[i].list
}

// View renders the form, the popup under the focused field and a status line.
func (m AppModel) View() string {
	w := m.width
	if w <= 0 {
		w = defaultWidth
	}
	inner := max(w-4, 10)

	title := "autocomplete-trigger"
	if m.deps.Version != "" {
		title += " " + m.deps.Version
	}
	sections := []string{titleStyle.Render(title), ""}

	for i, f := range m.sh.fields {
		label, box := labelStyle, fieldStyle
		if i == m.focus {
			label, box = focusedLabelStyle, focusedFieldStyle
		}
		sections = append(sections, label.Render(f.label), box.Render(f.view(inner)))
		if i == m.focus {
			if popup := f.suggestionsView(min(inner, 40)); popup != "" {
				sections = append(sections, popupStyle.Render(popup))
			}
		}
		sections = append(sections, "")
	}

	sections = append(sections, m.statusLine(), statusStyle.Render(
		"tab switch field · ↑/↓ choose · enter/tab accept · esc close · ctrl+c quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m AppModel) statusLine() string {
	f := m.focused()
	if f.binding.Armed() {
		return armedStyle.Render(fmt.Sprintf("armed · query %q", f.binding.Query()))
	}
	if m.sh.note != "" {
		return statusStyle.Render(m.sh.note)
	}
	return statusStyle.Render(fmt.Sprintf("type %s to complete", m.deps.Trigger.Start))
}
