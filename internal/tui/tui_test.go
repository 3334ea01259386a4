package tui

import (
	"ghrest/pkg/endpoint"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedRoutes() []*endpoint.Route {
	routes := endpoint.Routes()
	endpoint.SortRoutes(routes)
	return routes
}

func Test_endpointTable(t *testing.T) {
	t.Run("shows every route under a header", func(t *testing.T) {
		routes := sortedRoutes()
		table := newEndpointTable(routes)

		assert.Equal(t, len(routes)+1, table.View.GetRowCount())
		assert.Equal(t, " METHOD", table.View.GetCell(0, 0).Text)
		assert.Same(t, routes[0], table.Selected())
	})

	t.Run("filters on every word", func(t *testing.T) {
		table := newEndpointTable(sortedRoutes())
		table.Filter("delete  GISTS star")

		require.Equal(t, 2, table.View.GetRowCount())
		assert.Equal(t, "DeleteGistsgistIdStar", table.Selected().Name)
	})

	t.Run("shows everything again for an empty filter", func(t *testing.T) {
		routes := sortedRoutes()
		table := newEndpointTable(routes)
		table.Filter("zen")
		table.Filter(" ")
		assert.Equal(t, len(routes)+1, table.View.GetRowCount())
	})

	t.Run("selects nothing when nothing matches", func(t *testing.T) {
		table := newEndpointTable(sortedRoutes())
		table.Filter("nothing-at-all")
		assert.Nil(t, table.Selected())
		assert.Nil(t, table.routeAt(-1))
	})
}

func Test_details(t *testing.T) {
	t.Run("describes a route", func(t *testing.T) {
		r, ok := endpoint.Lookup("GetReposownerrepo")
		require.True(t, ok)

		d := details(r)
		assert.Contains(t, d, "GetReposownerrepo")
		assert.Contains(t, d, "/repos/{owner}/{repo}")
		assert.Contains(t, d, "owner, repo")
		assert.Contains(t, d, "github.FullRepository")
	})

	t.Run("handles no selection", func(t *testing.T) {
		assert.Equal(t, "No endpoint selected", details(nil))
	})
}
