package list

import (
	"bytes"
	"ghrest/internal/cli/paramutils"
	"ghrest/pkg/endpoint"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_fillFlagListCmdParams(t *testing.T) {
	t.Run("reads args and flags", func(t *testing.T) {
		params := &listCmdParams{}
		err := fillFlagListCmdParams(&paramutils.MockFlagSet{StringMap: map[string]interface{}{
			"method":   "post",
			"category": "issues",
			"params":   true,
		}}, []string{"comments"}, params)

		require.NoError(t, err)
		assert.Equal(t, &listCmdParams{
			Filter:     "comments",
			Method:     endpoint.MethodPost,
			Category:   "issues",
			ShowParams: true,
		}, params)
	})

	t.Run("fails on unknown methods", func(t *testing.T) {
		err := fillFlagListCmdParams(&paramutils.MockFlagSet{StringMap: map[string]interface{}{
			"method": "fetch",
		}}, nil, &listCmdParams{})
		assert.True(t, errors.Is(err, endpoint.ErrUnknownMethod))
	})
}

func Test_filterRoutes(t *testing.T) {
	t.Run("lists everything without filters", func(t *testing.T) {
		assert.Len(t, filterRoutes(&listCmdParams{}), len(endpoint.Routes()))
	})

	t.Run("filters by name or path ignoring case", func(t *testing.T) {
		routes := filterRoutes(&listCmdParams{Filter: "ZEN"})
		require.Len(t, routes, 1)
		assert.Equal(t, "GetZen", routes[0].Name)

		routes = filterRoutes(&listCmdParams{Filter: "/repos/{owner}/{repo}/pulls/{pull_number}/merge"})
		require.Len(t, routes, 2)
		assert.Equal(t, endpoint.MethodGet, routes[0].Method)
		assert.Equal(t, endpoint.MethodPut, routes[1].Method)
	})

	t.Run("filters by method and category", func(t *testing.T) {
		routes := filterRoutes(&listCmdParams{Method: endpoint.MethodDelete, Category: "Gists"})
		require.NotEmpty(t, routes)
		for _, r := range routes {
			assert.Equal(t, endpoint.MethodDelete, r.Method)
			assert.Equal(t, "gists", r.Category)
		}
	})
}

func Test_execute(t *testing.T) {
	t.Run("prints a table", func(t *testing.T) {
		out := &bytes.Buffer{}
		execute(out, &listCmdParams{Filter: "getreposownerrepoissuesissuenumbertimeline", ShowParams: true})

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, []string{"METHOD", "PATH", "NAME", "CATEGORY", "PARAMS"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{
			"GET",
			"/repos/{owner}/{repo}/issues/{issue_number}/timeline",
			"GetReposownerrepoIssuesissueNumberTimeline",
			"issues",
			"owner,", "repo,", "issue_number",
		}, strings.Fields(lines[1]))
	})

	t.Run("says when nothing matches", func(t *testing.T) {
		out := &bytes.Buffer{}
		execute(out, &listCmdParams{Filter: "nothing-at-all"})
		assert.Equal(t, "No endpoints found\n", out.String())
	})
}
