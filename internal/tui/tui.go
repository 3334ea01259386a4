package tui

import (
	"ghrest/pkg/endpoint"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Run shows the endpoint browser until the user quits with q or picks a
// route with Enter. The picked route is returned, nil when none was picked.
func Run(routes []*endpoint.Route) (*endpoint.Route, error) {
	var picked *endpoint.Route

	app := tview.NewApplication()
	table := newEndpointTable(routes)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	detailsView.SetBorder(true).SetTitle("Endpoint")
	detailsView.SetText(details(table.Selected()))

	table.View.SetSelectionChangedFunc(func(row, column int) {
		detailsView.SetText(details(table.routeAt(row)))
	})
	table.View.SetSelectedFunc(func(row, column int) {
		picked = table.routeAt(row)
		if picked != nil {
			app.Stop()
		}
	})

	searchInput := tview.NewInputField()
	searchInput.
		SetPlaceholder("Filter endpoints").
		SetChangedFunc(func(text string) {
			table.Filter(text)
			detailsView.SetText(details(table.Selected()))
		}).
		SetBorder(true).
		SetTitle("Filter")

	searchInput.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			if searchInput.GetText() != "" {
				searchInput.SetText("")
			} else {
				app.SetFocus(table.View)
			}
			return nil
		case tcell.KeyEnter:
			app.SetFocus(table.View)
			return nil
		}

		return event
	})

	table.View.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q':
			app.Stop()
			return nil
		case '/':
			app.SetFocus(searchInput)
			return nil
		}

		return event
	})

	grid := tview.NewGrid().
		SetRows(0, 3).
		SetColumns(0, 50).
		AddItem(table.View, 0, 0, 1, 1, 0, 0, true).
		AddItem(detailsView, 0, 1, 1, 1, 0, 0, false).
		AddItem(searchInput, 1, 0, 1, 2, 0, 0, false)

	err := app.SetRoot(grid, true).SetFocus(table.View).Run()
	if err != nil {
		return nil, err
	}

	return picked, nil
}
