package tui

import (
	"fmt"
	"ghrest/pkg/endpoint"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var headers = []string{"METHOD", "PATH", "NAME", "CATEGORY"}

var methodColors = map[endpoint.Method]tcell.Color{
	endpoint.MethodGet:    tcell.ColorGreen,
	endpoint.MethodPost:   tcell.ColorYellow,
	endpoint.MethodPut:    tcell.ColorBlue,
	endpoint.MethodPatch:  tcell.ColorDarkCyan,
	endpoint.MethodDelete: tcell.ColorRed,
}

func pad(input string) string {
	return fmt.Sprintf(" %s", input)
}

type endpointTable struct {
	View    *tview.Table
	routes  []*endpoint.Route
	visible []*endpoint.Route
}

func newEndpointTable(routes []*endpoint.Route) *endpointTable {
	table := tview.NewTable()
	table.
		SetBorders(false).
		SetFixed(1, 0).
		SetSelectable(true, false)

	et := &endpointTable{
		View:    table,
		routes:  routes,
		visible: routes,
	}
	et.redraw()

	return et
}

// Filter keeps the routes containing every word of text in their method,
// path, name or category, ignoring case.
func (et *endpointTable) Filter(text string) {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		et.visible = et.routes
		et.redraw()
		return
	}

	visible := make([]*endpoint.Route, 0)
	for _, r := range et.routes {
		haystack := strings.ToLower(strings.Join([]string{
			string(r.Method), r.Template, r.Name, r.Category,
		}, " "))
		matches := true
		for _, w := range words {
			if !strings.Contains(haystack, w) {
				matches = false
				break
			}
		}
		if matches {
			visible = append(visible, r)
		}
	}

	et.visible = visible
	et.redraw()
}

func (et *endpointTable) redraw() {
	et.View.Clear()

	headerStyle := tcell.StyleDefault.Bold(true)
	for i, h := range headers {
		et.View.SetCell(0, i,
			tview.NewTableCell(pad(h)).
				SetSelectable(false).
				SetStyle(headerStyle),
		)
	}

	for i, r := range et.visible {
		row := i + 1
		et.View.SetCell(row, 0, tview.NewTableCell(pad(string(r.Method))).SetTextColor(methodColors[r.Method]))
		et.View.SetCell(row, 1, tview.NewTableCell(pad(r.Template)).SetExpansion(1))
		et.View.SetCell(row, 2, tview.NewTableCell(pad(r.Name)))
		et.View.SetCell(row, 3, tview.NewTableCell(pad(r.Category)))
	}

	if len(et.visible) > 0 {
		et.View.Select(1, 0)
	}
}

// Selected is the route on the selected row, or nil when nothing is shown.
func (et *endpointTable) Selected() *endpoint.Route {
	row, _ := et.View.GetSelection()
	return et.routeAt(row)
}

func (et *endpointTable) routeAt(row int) *endpoint.Route {
	i := row - 1
	if i < 0 || i >= len(et.visible) {
		return nil
	}
	return et.visible[i]
}
