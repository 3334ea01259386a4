package match

import (
	"bytes"
	"ghrest/internal/errcodes"
	"ghrest/pkg/endpoint"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_execute(t *testing.T) {
	t.Run("prints the route and its params", func(t *testing.T) {
		out := &bytes.Buffer{}
		err := execute(out, "get", "/repos/octocat/Hello-World/pulls/1347?per_page=1")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 5)
		assert.Equal(t, []string{"NAME", "GetReposownerrepoPullspullNumber"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"PATH", "/repos/{owner}/{repo}/pulls/{pull_number}"}, strings.Fields(lines[1]))
		assert.Equal(t, []string{"{owner}", "octocat"}, strings.Fields(lines[2]))
		assert.Equal(t, []string{"{repo}", "Hello-World"}, strings.Fields(lines[3]))
		assert.Equal(t, []string{"{pull_number}", "1347"}, strings.Fields(lines[4]))
	})

	t.Run("fails on unknown methods", func(t *testing.T) {
		err := execute(&bytes.Buffer{}, "fetch", "/zen")
		assert.True(t, errors.Is(err, endpoint.ErrUnknownMethod))
	})

	t.Run("fails when nothing matches", func(t *testing.T) {
		err := execute(&bytes.Buffer{}, "PATCH", "/zen")
		assert.True(t, errors.Is(err, errcodes.ErrNoMatchingEndpoint))
	})
}
