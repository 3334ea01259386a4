package github

import (
	"encoding/json"
	"ghrest/pkg/endpoint"
	"reflect"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponses(t *testing.T) {
	t.Run("every entry names a known route", func(t *testing.T) {
		for name := range responses {
			r, ok := endpoint.Lookup(name)
			if assert.True(t, ok, name) {
				assert.Equal(t, name, r.Name)
			}
		}
	})

	t.Run("every entry builds a pointer", func(t *testing.T) {
		for name, f := range responses {
			assert.NotNil(t, f(), name)
		}
	})

	t.Run("every shape decodes a minimal body", func(t *testing.T) {
		for name, f := range responses {
			var bodies []string
			switch typ := reflect.TypeOf(f()).Elem(); typ.Kind() {
			case reflect.String:
				continue
			case reflect.Slice:
				bodies = []string{`[]`}
				switch typ.Elem().Kind() {
				case reflect.Struct, reflect.Map, reflect.Ptr:
					bodies = append(bodies, `[{}]`)
				}
			default:
				bodies = []string{`{}`}
			}

			for _, body := range bodies {
				assert.NoError(t, json.Unmarshal([]byte(body), f()), "%s %s", name, body)
			}
		}
	})
}

func TestResponseFor(t *testing.T) {
	t.Run("returns a fresh value each time", func(t *testing.T) {
		e := endpoint.GetReposownerrepo("octocat", "Hello-World")
		a, ok := ResponseFor(e)
		require.True(t, ok)
		b, _ := ResponseFor(e)

		assert.IsType(t, &FullRepository{}, a)
		assert.NotSame(t, a, b)
	})

	t.Run("fails for routes without a body", func(t *testing.T) {
		_, ok := ResponseFor(endpoint.DeleteReposownerrepo("octocat", "Hello-World"))
		assert.False(t, ok)
	})

	t.Run("fails for the zero endpoint", func(t *testing.T) {
		_, ok := ResponseFor(endpoint.Endpoint{})
		assert.False(t, ok)
	})
}

func TestResponseType(t *testing.T) {
	assert.Equal(t, "github.FullRepository", ResponseType("GetReposownerrepo"))
	assert.Equal(t, "[]github.Issue", ResponseType("GetReposownerrepoIssues"))
	assert.Equal(t, "", ResponseType("DeleteReposownerrepo"))
	assert.True(t, HasResponse("GetZen"))
	assert.False(t, HasResponse("DeleteReposownerrepo"))
}

func TestDecode(t *testing.T) {
	t.Run("decodes a repository", func(t *testing.T) {
		body := []byte(`{
			"id": 1296269,
			"name": "Hello-World",
			"full_name": "octocat/Hello-World",
			"owner": {"login": "octocat", "id": 1},
			"private": false,
			"description": null,
			"license": {"key": "mit", "spdx_id": "MIT"},
			"parent": {"full_name": "someone/Hello-World"}
		}`)

		v, err := Decode(endpoint.GetReposownerrepo("octocat", "Hello-World"), body)
		require.NoError(t, err)

		repo := v.(*FullRepository)
		assert.Equal(t, int64(1296269), repo.ID)
		assert.Equal(t, "octocat/Hello-World", repo.FullName)
		assert.Equal(t, "octocat", repo.Owner.Login)
		assert.Nil(t, repo.Description)
		assert.Equal(t, "MIT", *repo.License.SpdxID)
		assert.Equal(t, "someone/Hello-World", repo.Parent.FullName)
	})

	t.Run("ignores unknown fields", func(t *testing.T) {
		body := []byte(`{"login": "octocat", "id": 1, "not_documented": {"nested": [1, 2]}}`)

		v, err := Decode(endpoint.GetUsersusername("octocat"), body)
		require.NoError(t, err)
		assert.Equal(t, "octocat", v.(*PublicUser).Login)
	})

	t.Run("decodes lists", func(t *testing.T) {
		body := []byte(`[{"number": 1347, "title": "Found a bug", "labels": [{"name": "bug"}]}]`)

		v, err := Decode(endpoint.GetReposownerrepoIssues("octocat", "Hello-World"), body)
		require.NoError(t, err)

		issues := *v.(*[]Issue)
		require.Len(t, issues, 1)
		assert.Equal(t, int64(1347), issues[0].Number)
		assert.Equal(t, "bug", issues[0].Labels[0].Name)
	})

	t.Run("decodes reaction counters", func(t *testing.T) {
		body := []byte(`{"id": 1, "body": "Me too", "reactions": {"total_count": 3, "+1": 2, "-1": 1}}`)

		v, err := Decode(endpoint.GetReposownerrepoIssuesCommentscommentId("octocat", "Hello-World", "1"), body)
		require.NoError(t, err)

		c := v.(*IssueComment)
		assert.Equal(t, int64(2), c.Reactions.PlusOne)
		assert.Equal(t, int64(1), c.Reactions.MinusOne)
	})

	t.Run("accepts labels given by name", func(t *testing.T) {
		body := []byte(`{"number": 1, "labels": ["bug", {"name": "ui", "color": "f29513"}]}`)

		v, err := Decode(endpoint.GetReposownerrepoIssuesissueNumber("octocat", "Hello-World", "1"), body)
		require.NoError(t, err)

		labels := v.(*Issue).Labels
		require.Len(t, labels, 2)
		assert.Equal(t, Label{Name: "bug"}, labels[0])
		assert.Equal(t, "ui", labels[1].Name)
		assert.Equal(t, "f29513", labels[1].Color)
	})

	t.Run("keeps loosely typed fields", func(t *testing.T) {
		body := []byte(`[{"id": "1", "type": "PushEvent", "payload": {"size": 1}}]`)

		v, err := Decode(endpoint.GetEvents(), body)
		require.NoError(t, err)

		events := *v.(*[]Event)
		assert.Equal(t, map[string]interface{}{"size": float64(1)}, events[0].Payload)
	})

	t.Run("reads plain text as is", func(t *testing.T) {
		v, err := Decode(endpoint.GetZen(), []byte("Keep it logically awesome."))
		require.NoError(t, err)
		assert.Equal(t, "Keep it logically awesome.", *v.(*string))
	})

	t.Run("fails without a registered shape", func(t *testing.T) {
		_, err := Decode(endpoint.DeleteReposownerrepo("octocat", "Hello-World"), nil)
		assert.True(t, errors.Is(err, ErrNoResponseShape))
	})

	t.Run("fails on malformed bodies", func(t *testing.T) {
		_, err := Decode(endpoint.GetReposownerrepo("octocat", "Hello-World"), []byte(`{"id": "not a number"`))
		assert.Error(t, err)
	})
}
