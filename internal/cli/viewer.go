package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/workplan/internal/render"
)

// viewerTab indexes the plan views the interactive browser cycles through.
type viewerTab int

const (
	tabGantt viewerTab = iota
	tabWeekly
	tabMonthly
	tabRoadmap
	tabSummary
	tabSuggestions
	tabCount
)

var tabTitles = [tabCount]string{
	"Schedule", "Weekly", "Monthly", "Roadmap", "Summary", "Suggestions",
}

type viewerKeys struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

var defaultViewerKeys = viewerKeys{
	Next: key.NewBinding(key.WithKeys("tab", "right", "l")),
	Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// viewerModel is the bubbletea model behind `workplan view`: a tab strip
// over a viewport showing one rendered view at a time. All content is
// rendered up front from the same Data every other command uses.
type viewerModel struct {
	data  *render.Data
	tab   viewerTab
	vp    viewport.Model
	keys  viewerKeys
	ready bool
}

func newViewerModel(d *render.Data) viewerModel {
	return viewerModel{
		data: d,
		vp:   viewport.New(0, 0),
		keys: defaultViewerKeys,
	}
}

func (m viewerModel) Init() tea.Cmd { return nil }

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 3
		if m.vp.Height < 1 {
			m.vp.Height = 1
		}
		m.vp.SetContent(m.content())
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.setTab((m.tab + 1) % tabCount)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.setTab((m.tab + tabCount - 1) % tabCount)
			return m, nil
		}
		if n := digitTab(msg); n >= 0 {
			m.setTab(viewerTab(n))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *viewerModel) setTab(t viewerTab) {
	m.tab = t
	m.vp.SetContent(m.content())
	m.vp.GotoTop()
}

// digitTab maps the keys 1..6 to a tab index, or -1.
func digitTab(msg tea.KeyMsg) int {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return -1
	}
	n := int(msg.Runes[0] - '1')
	if n < 0 || n >= int(tabCount) {
		return -1
	}
	return n
}

func (m viewerModel) content() string {
	switch m.tab {
	case tabWeekly:
		return render.WeeklyChart(m.data)
	case tabMonthly:
		return render.MonthlyChart(m.data)
	case tabRoadmap:
		return render.Roadmap(m.data)
	case tabSummary:
		return render.Summary(m.data)
	case tabSuggestions:
		return render.Suggestions(m.data)
	default:
		return render.Gantt(m.data)
	}
}

func (m viewerModel) View() string {
	if !m.ready {
		return "Loading workbook..."
	}
	return m.tabStrip() + "\n" + m.vp.View() + "\n" + m.footer()
}

func (m viewerModel) tabStrip() string {
	parts := make([]string, 0, int(tabCount))
	for i, title := range tabTitles {
		label := fmt.Sprintf(" %d %s ", i+1, title)
		if viewerTab(i) == m.tab {
			parts = append(parts, render.StyleHeader.Render(label))
		} else {
			parts = append(parts, render.Dim(label))
		}
	}
	return strings.Join(parts, "")
}

func (m viewerModel) footer() string {
	return render.Dim(" tab/←→ switch · 1-6 jump · ↑↓ scroll · q quit")
}
