package prompt

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"github.com/garymjr/spaces/internal/ui/styles"
)

// SelectResult holds the result of a selection prompt.
type SelectResult struct {
	Value     string
	Index     int
	Cancelled bool
}

// stringSource implements fuzzy.Source over the option labels.
type stringSource []string

func (s stringSource) String(i int) string { return s[i] }
func (s stringSource) Len() int            { return len(s) }

type selectModel struct {
	prompt    string
	options   []string
	filter    textinput.Model
	filtered  []fuzzy.Match
	cursor    int
	selected  int
	done      bool
	cancelled bool
}

func (m selectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				m.selected = m.filtered[m.cursor].Index
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *selectModel) applyFilter() {
	query := strings.TrimSpace(m.filter.Value())
	if query == "" {
		// No filter: all options in original order.
		m.filtered = make([]fuzzy.Match, len(m.options))
		for i, opt := range m.options {
			m.filtered[i] = fuzzy.Match{Str: opt, Index: i}
		}
	} else {
		// Matches come back ranked best-first.
		m.filtered = fuzzy.FindFrom(query, stringSource(m.options))
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m selectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(m.prompt) + "\n")
	b.WriteString(m.filter.View() + "\n\n")

	const maxVisible = 10
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.filtered))

	for i := start; i < end; i++ {
		label := m.filtered[i].Str
		if i == m.cursor {
			b.WriteString(styles.AccentStyle.Render("> "+label) + "\n")
		} else {
			b.WriteString(styles.NormalStyle.Render("  "+label) + "\n")
		}
	}
	if len(m.filtered) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No matching items") + "\n")
	}
	if end < len(m.filtered) {
		b.WriteString(styles.MutedStyle.Render("  ...") + "\n")
	}

	b.WriteString(styles.MutedStyle.Render("\ntype to filter • ↑/↓ select • enter confirm • esc cancel"))
	return tea.NewView(b.String())
}

// Select shows a fuzzy-filtered selection prompt and returns the
// user's choice.
func Select(prompt string, options []string) (SelectResult, error) {
	if len(options) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	ti := textinput.New()
	ti.Placeholder = "filter"
	ti.Focus()
	ti.SetWidth(40)

	model := selectModel{
		prompt:   prompt,
		options:  options,
		filter:   ti,
		selected: -1,
	}
	model.applyFilter()

	finalModel, err := run(model)
	if err != nil {
		return SelectResult{}, err
	}
	m := finalModel.(selectModel)

	if m.cancelled || m.selected < 0 || m.selected >= len(options) {
		return SelectResult{Cancelled: true}, nil
	}
	return SelectResult{
		Value: options[m.selected],
		Index: m.selected,
	}, nil
}
