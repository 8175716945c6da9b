package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/workplan/internal/calendar"
	"github.com/alexanderramin/workplan/internal/render"
	"github.com/alexanderramin/workplan/internal/teatest"
	"github.com/alexanderramin/workplan/internal/validate"
	"github.com/alexanderramin/workplan/internal/workbook"
)

func viewerData(t *testing.T) *render.Data {
	t.Helper()
	plan, report := validate.Check(workbook.Template())
	require.True(t, report.OK())
	return render.New(plan, nil, nil, calendar.Date(2026, 3, 18))
}

func newViewerDriver(t *testing.T) *teatest.Driver {
	t.Helper()
	drv := teatest.New(t, newViewerModel(viewerData(t)), teatest.WithSize(140, 40))
	drv.DrainInit()
	return drv
}

func TestViewer_StartsOnSchedule(t *testing.T) {
	drv := newViewerDriver(t)

	view := stripANSI(drv.View())
	require.Contains(t, view, "1 Schedule")
	require.Contains(t, view, "Product Analytics (BAU)")
	require.Contains(t, view, "q quit")
}

func TestViewer_ShowsLoadingBeforeFirstResize(t *testing.T) {
	drv := teatest.New(t, newViewerModel(viewerData(t)))
	drv.DrainInit()

	require.Contains(t, drv.View(), "Loading workbook")
}

func TestViewer_TabAdvancesThroughViews(t *testing.T) {
	drv := newViewerDriver(t)

	drv.PressTab()
	require.Contains(t, stripANSI(drv.View()), "Week of 16 Feb")

	drv.PressTab()
	require.Contains(t, stripANSI(drv.View()), "February 2026")
}

func TestViewer_TabWrapsAround(t *testing.T) {
	drv := newViewerDriver(t)

	for i := 0; i < int(tabCount); i++ {
		drv.PressTab()
	}
	require.Contains(t, stripANSI(drv.View()), "Product Analytics (BAU)")
}

func TestViewer_DigitJumpsToView(t *testing.T) {
	drv := newViewerDriver(t)

	drv.PressKey('5')
	view := stripANSI(drv.View())
	require.Contains(t, view, "TEAM")
	require.Contains(t, view, "Alex (Lead)")

	drv.PressKey('4')
	require.Contains(t, stripANSI(drv.View()), "Platform Rebuild")
}

func TestViewer_IgnoresDigitsOutsideRange(t *testing.T) {
	drv := newViewerDriver(t)

	drv.PressKey('9')
	require.Contains(t, stripANSI(drv.View()), "Product Analytics (BAU)")
}

func TestViewer_QuitKeys(t *testing.T) {
	for name, press := range map[string]func(*teatest.Driver){
		"q":      func(d *teatest.Driver) { d.PressKey('q') },
		"esc":    func(d *teatest.Driver) { d.PressEsc() },
		"ctrl+c": func(d *teatest.Driver) { d.PressCtrlC() },
	} {
		t.Run(name, func(t *testing.T) {
			drv := newViewerDriver(t)
			press(drv)
			require.True(t, drv.Quitting)
		})
	}
}

func TestViewer_ArrowKeysScrollContent(t *testing.T) {
	drv := teatest.New(t, newViewerModel(viewerData(t)), teatest.WithSize(140, 8))
	drv.DrainInit()

	before := drv.View()
	drv.PressDown()
	after := drv.View()
	require.NotEqual(t, before, after)

	drv.PressUp()
	require.Equal(t, before, drv.View())
}

func TestViewer_ResizeRerendersContent(t *testing.T) {
	drv := newViewerDriver(t)

	drv.Send(tea.WindowSizeMsg{Width: 140, Height: 6})
	require.Contains(t, stripANSI(drv.View()), "1 Schedule")
}
