package client

import (
	"context"
	"encoding/json"
	"ghrest/pkg/endpoint"
	"ghrest/pkg/github"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	header http.Header
	query  map[string]string
	body   []byte
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *recorded) {
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.EscapedPath()
		rec.header = r.Header.Clone()
		rec.query = map[string]string{}
		for k := range r.URL.Query() {
			rec.query[k] = r.URL.Query().Get(k)
		}
		rec.body, _ = io.ReadAll(r.Body)

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, rec
}

func TestClient_Do(t *testing.T) {
	t.Run("sends the endpoint method and path", func(t *testing.T) {
		srv, rec := newServer(t, http.StatusOK, `{"full_name": "octocat/Hello-World"}`)
		c := New(&Options{BaseURL: srv.URL, Token: "secret"})

		r, err := c.Do(context.Background(), endpoint.GetReposownerrepo("octocat", "Hello-World"), nil)
		require.NoError(t, err)

		assert.Equal(t, http.MethodGet, rec.method)
		assert.Equal(t, "/repos/octocat/Hello-World", rec.path)
		assert.Equal(t, "Bearer secret", rec.header.Get("Authorization"))
		assert.Equal(t, DefaultAccept, rec.header.Get("Accept"))
		assert.Equal(t, DefaultUserAgent, rec.header.Get("User-Agent"))
		assert.Equal(t, http.StatusOK, r.StatusCode)
		assert.Equal(t, "octocat/Hello-World", r.Get("full_name").String())
	})

	t.Run("sends query parameters and a JSON body", func(t *testing.T) {
		srv, rec := newServer(t, http.StatusCreated, `{"number": 1}`)
		c := New(&Options{BaseURL: srv.URL + "/"})

		_, err := c.Do(
			context.Background(),
			endpoint.PostReposownerrepoIssues("octocat", "Hello-World"),
			&RequestOptions{
				Query: map[string]string{"foo": "bar"},
				Body:  map[string]string{"title": "Found a bug"},
			},
		)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, rec.method)
		assert.Equal(t, "/repos/octocat/Hello-World/issues", rec.path)
		assert.Equal(t, "bar", rec.query["foo"])
		assert.Equal(t, "application/json", rec.header.Get("Content-Type"))

		body := map[string]string{}
		require.NoError(t, json.Unmarshal(rec.body, &body))
		assert.Equal(t, "Found a bug", body["title"])
	})

	t.Run("sends raw bodies as given", func(t *testing.T) {
		srv, rec := newServer(t, http.StatusOK, `<p>Hello</p>`)
		c := New(&Options{BaseURL: srv.URL})

		_, err := c.Do(context.Background(), endpoint.PostMarkdownRaw(), &RequestOptions{
			Body:        "Hello",
			ContentType: "text/plain",
		})
		require.NoError(t, err)

		assert.Equal(t, "Hello", string(rec.body))
		assert.Equal(t, "text/plain", rec.header.Get("Content-Type"))
	})

	t.Run("overrides the accept header per request", func(t *testing.T) {
		srv, rec := newServer(t, http.StatusOK, ``)
		c := New(&Options{BaseURL: srv.URL})

		_, err := c.Do(
			context.Background(),
			endpoint.GetReposownerrepoPullspullNumber("octocat", "Hello-World", "1"),
			&RequestOptions{Accept: DiffAccept},
		)
		require.NoError(t, err)
		assert.Equal(t, DiffAccept, rec.header.Get("Accept"))
	})

	t.Run("escapes the path when asked to", func(t *testing.T) {
		srv, rec := newServer(t, http.StatusOK, `{}`)
		c := New(&Options{BaseURL: srv.URL})

		_, err := c.Do(
			context.Background(),
			endpoint.GetReposownerrepo("octocat", "a/b"),
			&RequestOptions{Escape: true},
		)
		require.NoError(t, err)
		assert.Equal(t, "/repos/octocat/a%2Fb", rec.path)
	})

	t.Run("returns an api error for failed responses", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusUnprocessableEntity, `{
			"message": "Validation Failed",
			"documentation_url": "https://docs.github.com/rest",
			"errors": [{"resource": "Issue", "field": "title", "code": "missing_field"}]
		}`)
		c := New(&Options{BaseURL: srv.URL})

		r, err := c.Do(context.Background(), endpoint.PostReposownerrepoIssues("octocat", "Hello-World"), nil)

		var apiErr *Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Equal(t, "Validation Failed", apiErr.Message)
		assert.Equal(t, "https://docs.github.com/rest", apiErr.DocumentationURL)
		assert.Equal(t, []string{"title missing_field"}, apiErr.Errors)
		assert.Equal(t, "422 Validation Failed (title missing_field)", apiErr.Error())
		assert.NotNil(t, r)
	})

	t.Run("falls back to the status text", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusNotFound, ``)
		c := New(&Options{BaseURL: srv.URL})

		_, err := c.Do(context.Background(), endpoint.GetZen(), nil)

		var apiErr *Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "Not Found", apiErr.Message)
	})

	t.Run("fails for the zero endpoint", func(t *testing.T) {
		c := New(nil)
		_, err := c.Do(context.Background(), endpoint.Endpoint{}, nil)
		assert.Equal(t, ErrZeroEndpoint, err)
	})

	t.Run("fails when the server cannot be reached", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, ``)
		srv.Close()
		c := New(&Options{BaseURL: srv.URL, Timeout: time.Second})

		_, err := c.Do(context.Background(), endpoint.GetZen(), nil)
		assert.Error(t, err)
	})
}

func TestResponse_Decode(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"id": 1, "full_name": "octocat/Hello-World", "unknown": true}`)
	c := New(&Options{BaseURL: srv.URL})

	r, err := c.Do(context.Background(), endpoint.GetReposownerrepo("octocat", "Hello-World"), nil)
	require.NoError(t, err)

	v, err := r.Decode()
	require.NoError(t, err)
	assert.Equal(t, "octocat/Hello-World", v.(*github.FullRepository).FullName)
}

func TestResponse_Diff(t *testing.T) {
	body := strings.Join([]string{
		"diff --git a/docs/new.md b/docs/new.md",
		"new file mode 100644",
		"index 0000000..3b18e51",
		"--- /dev/null",
		"+++ b/docs/new.md",
		"@@ -0,0 +1,2 @@",
		"+one",
		"+two",
		"diff --git a/README.md b/README.md",
		"index 1111111..2222222 100644",
		"--- a/README.md",
		"+++ b/README.md",
		"@@ -1,3 +1,2 @@",
		" Hello",
		"-World",
		" !",
		"",
	}, "\n")

	t.Run("reads per file stats", func(t *testing.T) {
		stats, err := (&Response{Body: []byte(body)}).Diff()
		require.NoError(t, err)
		require.Len(t, stats, 2)

		assert.Equal(t, "docs/new.md", stats[0].Name)
		assert.Equal(t, "", stats[0].OldName)
		assert.Equal(t, 2, stats[0].Added)

		assert.Equal(t, "README.md", stats[1].Name)
		assert.Equal(t, 1, stats[1].Deleted)
		assert.Equal(t, 0, stats[1].Added)
	})

	t.Run("is empty for an empty body", func(t *testing.T) {
		stats, err := (&Response{}).Diff()
		assert.NoError(t, err)
		assert.Empty(t, stats)
	})
}

func TestDefaultClient(t *testing.T) {
	defer viper.Reset()

	t.Run("reads the configuration", func(t *testing.T) {
		viper.Set("github.base_url", "https://github.example.com/api/v3/")
		viper.Set("github.token", "secret")
		viper.Set("github.timeout", "5s")
		viper.Set("log.level", "debug")

		c, err := DefaultClient()
		require.NoError(t, err)
		assert.Equal(t, "https://github.example.com/api/v3", c.baseURL)
		assert.Equal(t, DefaultAccept, c.accept)
		assert.Equal(t, "https://github.example.com/api/v3/zen", c.URL(endpoint.GetZen(), false))
		assert.Equal(t, "debug", c.log.GetLevel().String())
	})

	t.Run("fails on an unknown log level", func(t *testing.T) {
		viper.Set("log.level", "loud")
		_, err := DefaultClient()
		assert.Error(t, err)
	})
}
