package tui

import (
	"fmt"
	"ghrest/pkg/endpoint"
	"ghrest/pkg/github"
	"strings"

	"github.com/rivo/tview"
)

func details(r *endpoint.Route) string {
	if r == nil {
		return "No endpoint selected"
	}

	var b strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&b, "[yellow]%-9s[white] %s\n", label, tview.Escape(value))
	}

	line("Name", r.Name)
	line("Method", string(r.Method))
	line("Path", r.Template)
	line("Category", r.Category)
	if len(r.Params) == 0 {
		line("Params", "-")
	} else {
		line("Params", strings.Join(r.Params, ", "))
	}
	if t := github.ResponseType(r.Name); t != "" {
		line("Response", t)
	} else {
		line("Response", "-")
	}

	return b.String()
}
