package call

import (
	"bytes"
	"context"
	"ghrest/internal/cli/paramutils"
	"ghrest/internal/errcodes"
	"ghrest/internal/persistance"
	"ghrest/internal/pkg/fs"
	"ghrest/pkg/client"
	"ghrest/pkg/endpoint"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPersistanceRepo struct {
	added []endpoint.Endpoint
}

func (m *mockPersistanceRepo) AddRecent(e endpoint.Endpoint) error {
	m.added = append(m.added, e)
	return nil
}

func (m *mockPersistanceRepo) GetRecent() ([]*persistance.RecentEndpoint, error) {
	return nil, nil
}

type request struct {
	method string
	path   string
	query  string
	accept string
	body   string
}

func newTestClient(t *testing.T, status int, body string) (*client.Client, *request) {
	req := &request{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.method = r.Method
		req.path = r.URL.EscapedPath()
		req.query = r.URL.RawQuery
		req.accept = r.Header.Get("Accept")
		b, _ := io.ReadAll(r.Body)
		req.body = string(b)

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	old := getPersistanceRepo
	repo := &mockPersistanceRepo{}
	getPersistanceRepo = func() persistance.PersistanceRepo { return repo }
	t.Cleanup(func() { getPersistanceRepo = old })

	return client.New(&client.Options{BaseURL: srv.URL}), req
}

func run(t *testing.T, c *client.Client, e endpoint.Endpoint, params *callCmdParams) (string, error) {
	out := &bytes.Buffer{}
	err := execute(context.Background(), out, io.Discard, c, e, params)
	return out.String(), err
}

func Test_execute(t *testing.T) {
	repoBody := `{"id":1296269,"full_name":"octocat/Hello-World","owner":{"login":"octocat"},"extra":true}`

	t.Run("prints the body indented", func(t *testing.T) {
		c, req := newTestClient(t, http.StatusOK, repoBody)
		out, err := run(t, c, endpoint.GetReposownerrepo("octocat", "Hello-World"), &callCmdParams{})
		require.NoError(t, err)

		assert.Equal(t, "GET", req.method)
		assert.Equal(t, "/repos/octocat/Hello-World", req.path)
		assert.Contains(t, out, "\n  \"full_name\": \"octocat/Hello-World\",\n")
		assert.True(t, strings.HasSuffix(out, "}\n"))
	})

	t.Run("prints text bodies as they are", func(t *testing.T) {
		c, _ := newTestClient(t, http.StatusOK, "Design for failure.")
		out, err := run(t, c, endpoint.GetZen(), &callCmdParams{})
		require.NoError(t, err)
		assert.Equal(t, "Design for failure.\n", out)
	})

	t.Run("sends query, body and accept header", func(t *testing.T) {
		c, req := newTestClient(t, http.StatusCreated, `{"number":1}`)
		_, err := run(t, c, endpoint.PostReposownerrepoIssues("octocat", "Hello-World"), &callCmdParams{
			Query:  map[string]string{"foo": "bar"},
			Data:   []byte(`{"title":"Found a bug"}`),
			Accept: "application/vnd.github.squirrel-girl-preview+json",
		})
		require.NoError(t, err)

		assert.Equal(t, "POST", req.method)
		assert.Equal(t, "foo=bar", req.query)
		assert.Equal(t, `{"title":"Found a bug"}`, req.body)
		assert.Equal(t, "application/vnd.github.squirrel-girl-preview+json", req.accept)
	})

	t.Run("selects a value", func(t *testing.T) {
		c, _ := newTestClient(t, http.StatusOK, repoBody)
		out, err := run(t, c, endpoint.GetReposownerrepo("octocat", "Hello-World"), &callCmdParams{Select: "owner.login"})
		require.NoError(t, err)
		assert.Equal(t, "octocat\n", out)
	})

	t.Run("fails when the selected path is missing", func(t *testing.T) {
		c, _ := newTestClient(t, http.StatusOK, repoBody)
		_, err := run(t, c, endpoint.GetReposownerrepo("octocat", "Hello-World"), &callCmdParams{Select: "nope"})
		assert.True(t, errors.Is(err, ErrNoValueAtPath))
	})

	t.Run("prints the typed response", func(t *testing.T) {
		c, _ := newTestClient(t, http.StatusOK, repoBody)
		out, err := run(t, c, endpoint.GetReposownerrepo("octocat", "Hello-World"), &callCmdParams{Typed: true})
		require.NoError(t, err)
		assert.Contains(t, out, `"id": 1296269`)
		assert.NotContains(t, out, "extra")
	})

	t.Run("prints a diffstat", func(t *testing.T) {
		diff := strings.Join([]string{
			"diff --git a/README.md b/README.md",
			"index 1111111..2222222 100644",
			"--- a/README.md",
			"+++ b/README.md",
			"@@ -1,1 +1,3 @@",
			" Hello",
			"+World",
			"+!",
			"",
		}, "\n")
		c, req := newTestClient(t, http.StatusOK, diff)
		out, err := run(t, c, endpoint.GetReposownerrepoPullspullNumber("octocat", "Hello-World", "1"), &callCmdParams{Diff: true})
		require.NoError(t, err)

		assert.Equal(t, client.DiffAccept, req.accept)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, []string{"README.md", "+2", "-0"}, strings.Fields(lines[1]))
		assert.Equal(t, []string{"1", "files", "+2", "-0"}, strings.Fields(lines[2]))
	})

	t.Run("returns api errors", func(t *testing.T) {
		c, _ := newTestClient(t, http.StatusNotFound, `{"message":"Not Found"}`)
		_, err := run(t, c, endpoint.GetReposownerrepo("octocat", "missing"), &callCmdParams{})

		var apiErr *client.Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})

	t.Run("records the endpoint", func(t *testing.T) {
		c, _ := newTestClient(t, http.StatusOK, `{}`)
		_, err := run(t, c, endpoint.GetZen(), &callCmdParams{})
		require.NoError(t, err)

		repo := getPersistanceRepo().(*mockPersistanceRepo)
		require.Len(t, repo.added, 1)
		assert.Equal(t, "GetZen", repo.added[0].Name())
	})
}

func Test_fillFlagCallCmdParams(t *testing.T) {
	old := filesystem
	defer func() { filesystem = old }()
	filesystem = fs.MockFS{Files: map[string][]byte{"issue.json": []byte(`{"title":"x"}`)}}

	t.Run("reads flags", func(t *testing.T) {
		params := &callCmdParams{}
		err := fillFlagCallCmdParams(&paramutils.MockFlagSet{StringMap: map[string]interface{}{
			"query":  []string{"state=open", "per_page=5"},
			"data":   "@issue.json",
			"select": "0.title",
		}}, params)
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"state": "open", "per_page": "5"}, params.Query)
		assert.Equal(t, `{"title":"x"}`, string(params.Data))
		assert.Equal(t, "0.title", params.Select)
	})

	t.Run("takes data as given without @", func(t *testing.T) {
		params := &callCmdParams{}
		err := fillFlagCallCmdParams(&paramutils.MockFlagSet{StringMap: map[string]interface{}{
			"data": `{"body":"hi"}`,
		}}, params)
		require.NoError(t, err)
		assert.Equal(t, `{"body":"hi"}`, string(params.Data))
	})

	t.Run("fails when the data file is missing", func(t *testing.T) {
		err := fillFlagCallCmdParams(&paramutils.MockFlagSet{StringMap: map[string]interface{}{
			"data": "@missing.json",
		}}, &callCmdParams{})
		assert.Error(t, err)
	})

	t.Run("fails on malformed queries", func(t *testing.T) {
		err := fillFlagCallCmdParams(&paramutils.MockFlagSet{StringMap: map[string]interface{}{
			"query": []string{"state"},
		}}, &callCmdParams{})
		assert.True(t, errors.Is(err, errcodes.ErrQueryMustBeKeyValue))
	})

	t.Run("fails when output flags are combined", func(t *testing.T) {
		err := fillFlagCallCmdParams(&paramutils.MockFlagSet{StringMap: map[string]interface{}{
			"typed": true,
			"diff":  true,
		}}, &callCmdParams{})
		assert.Equal(t, errcodes.ErrConflictingOutput, err)
	})
}
