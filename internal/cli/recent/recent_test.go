package recent

import (
	"bytes"
	"ghrest/internal/persistance"
	"ghrest/pkg/endpoint"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPersistanceRepo struct {
	recent []*persistance.RecentEndpoint
	err    error
}

func (m *mockPersistanceRepo) AddRecent(endpoint.Endpoint) error { return m.err }

func (m *mockPersistanceRepo) GetRecent() ([]*persistance.RecentEndpoint, error) {
	return m.recent, m.err
}

func Test_execute(t *testing.T) {
	t.Run("prints recent endpoints in order", func(t *testing.T) {
		used := time.Date(2023, 3, 1, 12, 30, 0, 0, time.Local)
		out := &bytes.Buffer{}
		err := execute(out, &mockPersistanceRepo{recent: []*persistance.RecentEndpoint{
			{Name: "GetZen", Method: "GET", Path: "/zen", LastUsed: used},
			{Name: "GetReposownerrepo", Method: "GET", Path: "/repos/octocat/Hello-World", Params: []string{"octocat", "Hello-World"}, LastUsed: used.Add(-time.Hour)},
		}}, &recentCmdParams{})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, []string{"USED", "METHOD", "PATH", "NAME"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"2023-03-01", "12:30", "GET", "/zen", "GetZen"}, strings.Fields(lines[1]))
		assert.Equal(t, []string{"2023-03-01", "11:30", "GET", "/repos/octocat/Hello-World", "GetReposownerrepo"}, strings.Fields(lines[2]))
	})

	t.Run("escapes the bound params when asked to", func(t *testing.T) {
		out := &bytes.Buffer{}
		err := execute(out, &mockPersistanceRepo{recent: []*persistance.RecentEndpoint{
			{Name: "GetReposownerrepo", Method: "GET", Path: "/repos/octocat/a/b", Params: []string{"octocat", "a/b"}},
		}}, &recentCmdParams{Escape: true})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[1], "/repos/octocat/a%2Fb")
	})

	t.Run("keeps the recorded path of unknown endpoints", func(t *testing.T) {
		out := &bytes.Buffer{}
		err := execute(out, &mockPersistanceRepo{recent: []*persistance.RecentEndpoint{
			{Name: "GetRemovedLongAgo", Method: "GET", Path: "/removed"},
		}}, &recentCmdParams{Escape: true})
		require.NoError(t, err)
		assert.Contains(t, out.String(), "/removed")
	})

	t.Run("says when there is nothing", func(t *testing.T) {
		out := &bytes.Buffer{}
		err := execute(out, &mockPersistanceRepo{}, &recentCmdParams{})
		require.NoError(t, err)
		assert.Equal(t, "No recent endpoints\n", out.String())
	})

	t.Run("fails when the state cannot be read", func(t *testing.T) {
		vErr := errors.New("corrupt")
		err := execute(&bytes.Buffer{}, &mockPersistanceRepo{err: vErr}, &recentCmdParams{})
		assert.Equal(t, vErr, err)
	})
}
