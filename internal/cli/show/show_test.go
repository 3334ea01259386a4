package show

import (
	"bytes"
	"ghrest/pkg/endpoint"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(out string) map[string]string {
	m := map[string]string{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		f := strings.Fields(line)
		m[f[0]] = strings.Join(f[1:], " ")
	}
	return m
}

func Test_execute(t *testing.T) {
	t.Run("prints the route", func(t *testing.T) {
		r, ok := endpoint.Lookup("GetReposownerrepo")
		require.True(t, ok)

		out := &bytes.Buffer{}
		execute(out, r)

		assert.Equal(t, map[string]string{
			"NAME":     "GetReposownerrepo",
			"METHOD":   "GET",
			"PATH":     "/repos/{owner}/{repo}",
			"CATEGORY": "repos",
			"PARAMS":   "owner, repo",
			"RESPONSE": "github.FullRepository",
		}, fields(out.String()))
	})

	t.Run("uses dashes for missing values", func(t *testing.T) {
		r, ok := endpoint.Lookup("DeleteReposownerrepo")
		require.True(t, ok)

		out := &bytes.Buffer{}
		execute(out, r)

		f := fields(out.String())
		assert.Equal(t, "-", f["RESPONSE"])
	})

	t.Run("prints a dash without params", func(t *testing.T) {
		r, ok := endpoint.Lookup("GetZen")
		require.True(t, ok)

		out := &bytes.Buffer{}
		execute(out, r)

		f := fields(out.String())
		assert.Equal(t, "-", f["PARAMS"])
		assert.Equal(t, "string", f["RESPONSE"])
	})
}
