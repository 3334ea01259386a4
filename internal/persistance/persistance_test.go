package persistance

import (
	"ghrest/internal/pkg/fs"
	"ghrest/pkg/endpoint"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(t *testing.T) {
	old := now
	tick := time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}
	t.Cleanup(func() { now = old })
}

func TestXDGPersistanceRepo(t *testing.T) {
	t.Run("is empty without a state file", func(t *testing.T) {
		repo := NewXDGPersistanceRepo(fs.OS{}, t.TempDir())
		recent, err := repo.GetRecent()
		assert.NoError(t, err)
		assert.Empty(t, recent)
	})

	t.Run("keeps the most recent endpoint first", func(t *testing.T) {
		fixedNow(t)
		dir := filepath.Join(t.TempDir(), "ghrest")
		repo := NewXDGPersistanceRepo(fs.OS{}, dir)

		require.NoError(t, repo.AddRecent(endpoint.GetZen()))
		require.NoError(t, repo.AddRecent(endpoint.GetReposownerrepo("octocat", "Hello-World")))

		recent, err := NewXDGPersistanceRepo(fs.OS{}, dir).GetRecent()
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "GetReposownerrepo", recent[0].Name)
		assert.Equal(t, "/repos/octocat/Hello-World", recent[0].Path)
		assert.Equal(t, []string{"octocat", "Hello-World"}, recent[0].Params)
		assert.Equal(t, "GetZen", recent[1].Name)
		assert.True(t, recent[0].LastUsed.After(recent[1].LastUsed))
	})

	t.Run("replaces an endpoint used again", func(t *testing.T) {
		fixedNow(t)
		repo := NewXDGPersistanceRepo(fs.OS{}, t.TempDir())

		require.NoError(t, repo.AddRecent(endpoint.GetReposownerrepo("octocat", "Hello-World")))
		require.NoError(t, repo.AddRecent(endpoint.GetZen()))
		require.NoError(t, repo.AddRecent(endpoint.GetReposownerrepo("octocat", "Spoon-Knife")))

		recent, err := repo.GetRecent()
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "/repos/octocat/Spoon-Knife", recent[0].Path)
		assert.Equal(t, "GetZen", recent[1].Name)
	})

	t.Run("keeps a bounded history", func(t *testing.T) {
		fixedNow(t)
		repo := NewXDGPersistanceRepo(fs.OS{}, t.TempDir())

		added := 0
		for _, r := range endpoint.Routes() {
			if added == maxRecent+5 {
				break
			}
			e, err := r.Bind(make([]string, len(r.Params))...)
			require.NoError(t, err)
			require.NoError(t, repo.AddRecent(e))
			added++
		}

		recent, err := repo.GetRecent()
		require.NoError(t, err)
		assert.Len(t, recent, maxRecent)
	})

	t.Run("fails on a corrupt state file", func(t *testing.T) {
		repo := NewXDGPersistanceRepo(fs.MockFS{
			Files: map[string][]byte{filepath.Join("/state-dir", "state"): []byte("{")},
		}, "/state-dir")

		_, err := repo.GetRecent()
		assert.Error(t, err)
	})

	t.Run("fails when the state cannot be read", func(t *testing.T) {
		vErr := errors.New("read only")
		repo := NewXDGPersistanceRepo(fs.MockFS{Err: vErr}, "/state-dir")

		err := repo.AddRecent(endpoint.GetZen())
		assert.Equal(t, vErr, err)
	})
}

func TestRecentEndpoint_Endpoint(t *testing.T) {
	t.Run("binds the stored params", func(t *testing.T) {
		r := &RecentEndpoint{Name: "GetReposownerrepo", Params: []string{"octocat", "Hello-World"}}
		e, err := r.Endpoint()
		require.NoError(t, err)
		assert.True(t, e.Equal(endpoint.GetReposownerrepo("octocat", "Hello-World")))
	})

	t.Run("fails for unknown routes", func(t *testing.T) {
		r := &RecentEndpoint{Name: "GetGone"}
		_, err := r.Endpoint()
		assert.Error(t, err)
	})
}
