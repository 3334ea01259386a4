package path

import (
	"bytes"
	"ghrest/internal/cli/paramutils"
	"ghrest/internal/persistance"
	"ghrest/pkg/endpoint"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPersistanceRepo struct {
	added []endpoint.Endpoint
	err   error
}

func (m *mockPersistanceRepo) AddRecent(e endpoint.Endpoint) error {
	m.added = append(m.added, e)
	return m.err
}

func (m *mockPersistanceRepo) GetRecent() ([]*persistance.RecentEndpoint, error) {
	return nil, m.err
}

func withRepo(t *testing.T, repo persistance.PersistanceRepo) {
	old := getPersistanceRepo
	getPersistanceRepo = func() persistance.PersistanceRepo { return repo }
	t.Cleanup(func() { getPersistanceRepo = old })
}

func Test_execute(t *testing.T) {
	defaults := paramutils.RepositoryParams{Owner: "octocat", Repo: "Hello-World"}

	t.Run("prints the request line", func(t *testing.T) {
		repo := &mockPersistanceRepo{}
		withRepo(t, repo)

		out := &bytes.Buffer{}
		err := execute(out, []string{"GetReposownerrepoContentspath", "docs/README.md"}, &pathCmdParams{Repository: defaults})
		require.NoError(t, err)
		assert.Equal(t, "GET /repos/octocat/Hello-World/contents/docs/README.md\n", out.String())

		require.Len(t, repo.added, 1)
		assert.Equal(t, "GetReposownerrepoContentspath", repo.added[0].Name())
	})

	t.Run("escapes when asked to", func(t *testing.T) {
		withRepo(t, &mockPersistanceRepo{})

		out := &bytes.Buffer{}
		err := execute(out, []string{"GetReposownerrepoContentspath", "docs/README.md"}, &pathCmdParams{
			Repository: defaults,
			Escape:     true,
		})
		require.NoError(t, err)
		assert.Equal(t, "GET /repos/octocat/Hello-World/contents/docs%2FREADME.md\n", out.String())
	})

	t.Run("prompts for missing values", func(t *testing.T) {
		withRepo(t, &mockPersistanceRepo{})
		old := promptParam
		defer func() { promptParam = old }()
		promptParam = func(p string) (string, error) { return "v-" + p, nil }

		out := &bytes.Buffer{}
		err := execute(out, []string{"DeleteOrgsorgActionsRunnersrunnerIdLabelsname"}, &pathCmdParams{})
		require.NoError(t, err)
		assert.Equal(t, "DELETE /orgs/v-org/actions/runners/v-runner_id/labels/v-name\n", out.String())
	})

	t.Run("does not fail when recording fails", func(t *testing.T) {
		withRepo(t, &mockPersistanceRepo{err: errors.New("read only")})

		out := &bytes.Buffer{}
		err := execute(out, []string{"GetZen"}, &pathCmdParams{})
		assert.NoError(t, err)
		assert.Equal(t, "GET /zen\n", out.String())
	})

	t.Run("fails for unknown endpoints", func(t *testing.T) {
		repo := &mockPersistanceRepo{}
		withRepo(t, repo)

		err := execute(&bytes.Buffer{}, []string{"GetNothing"}, &pathCmdParams{})
		assert.Error(t, err)
		assert.Empty(t, repo.added)
	})
}
