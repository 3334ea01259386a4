package endpoint

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		endpoint Endpoint
		method   Method
		path     string
	}{
		{"root", Get(), MethodGet, "/"},
		{"no parameters", GetAppHookDeliveries(), MethodGet, "/app/hook/deliveries"},
		{"repository", GetReposownerrepo("octocat", "Hello-World"), MethodGet, "/repos/octocat/Hello-World"},
		{
			"two trailing parameters",
			PutAuthorizationsClientsclientIdfingerprint("abc123", "fp1"),
			MethodPut,
			"/authorizations/clients/abc123/fp1",
		},
		{
			"parameters between literals",
			DeleteOrgsorgActionsRunnersrunnerIdLabelsname("my-org", "42", "gpu"),
			MethodDelete,
			"/orgs/my-org/actions/runners/42/labels/gpu",
		},
		{"zen", GetZen(), MethodGet, "/zen"},
		{
			"pull request",
			GetReposownerrepoPullspullNumber("octocat", "Hello-World", "1347"),
			MethodGet,
			"/repos/octocat/Hello-World/pulls/1347",
		},
		{
			"post",
			PostReposownerrepoIssues("octocat", "Hello-World"),
			MethodPost,
			"/repos/octocat/Hello-World/issues",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.method, tt.endpoint.Method())
			assert.Equal(t, tt.path, tt.endpoint.Path())
		})
	}
}

func TestEndpoint_Path(t *testing.T) {
	t.Run("does not escape values", func(t *testing.T) {
		e := GetReposownerrepo("octocat", "a/b")
		assert.Equal(t, "/repos/octocat/a/b", e.Path())
	})

	t.Run("escapes values when asked to", func(t *testing.T) {
		e := GetReposownerrepo("octocat", "a/b")
		assert.Equal(t, "/repos/octocat/a%2Fb", e.EscapedPath())
	})

	t.Run("keeps empty values", func(t *testing.T) {
		e := GetReposownerrepo("", "")
		assert.Equal(t, "/repos//", e.Path())
	})

	t.Run("is empty for the zero value", func(t *testing.T) {
		var e Endpoint
		assert.True(t, e.IsZero())
		assert.Equal(t, Method(""), e.Method())
		assert.Equal(t, "", e.Path())
		assert.Equal(t, "", e.EscapedPath())
		assert.Equal(t, "", e.String())
	})
}

func TestEndpoint_accessors(t *testing.T) {
	e := GetReposownerrepoContentspath("octocat", "Hello-World", "README.md")

	assert.Equal(t, "GetReposownerrepoContentspath", e.Name())
	assert.Equal(t, "/repos/{owner}/{repo}/contents/{path}", e.Route().Template)
	assert.Equal(t, []string{"octocat", "Hello-World", "README.md"}, e.Params())
	assert.Equal(t, "GET /repos/octocat/Hello-World/contents/README.md", e.String())
	assert.False(t, e.IsZero())

	t.Run("params are a copy", func(t *testing.T) {
		p := e.Params()
		p[0] = "someone-else"
		assert.Equal(t, "octocat", e.Params()[0])
	})
}

func TestEndpoint_Equal(t *testing.T) {
	a := GetReposownerrepo("octocat", "Hello-World")

	assert.True(t, a.Equal(GetReposownerrepo("octocat", "Hello-World")))
	assert.False(t, a.Equal(GetReposownerrepo("octocat", "Spoon-Knife")))
	assert.False(t, a.Equal(DeleteReposownerrepo("octocat", "Hello-World")))
	assert.True(t, Endpoint{}.Equal(Endpoint{}))
}

func TestRoute_Bind(t *testing.T) {
	r, ok := Lookup("GetReposownerrepo")
	require.True(t, ok)

	t.Run("binds in placeholder order", func(t *testing.T) {
		e, err := r.Bind("octocat", "Hello-World")
		assert.NoError(t, err)
		assert.True(t, e.Equal(GetReposownerrepo("octocat", "Hello-World")))
	})

	t.Run("fails with too few params", func(t *testing.T) {
		_, err := r.Bind("octocat")
		assert.True(t, errors.Is(err, ErrParamCount))
	})

	t.Run("fails with too many params", func(t *testing.T) {
		_, err := r.Bind("octocat", "Hello-World", "extra")
		assert.True(t, errors.Is(err, ErrParamCount))
	})
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
	}{
		{"GET", MethodGet},
		{"post", MethodPost},
		{" Put ", MethodPut},
		{"patch", MethodPatch},
		{"Delete", MethodDelete},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := ParseMethod(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, m)
		})
	}

	t.Run("fails on unknown verbs", func(t *testing.T) {
		_, err := ParseMethod("TRACE")
		assert.True(t, errors.Is(err, ErrUnknownMethod))
	})
}

func TestRoutes(t *testing.T) {
	all := Routes()
	require.Greater(t, len(all), 700)

	for _, r := range all {
		t.Run(r.String(), func(t *testing.T) {
			assert.Contains(t, Methods(), r.Method)
			assert.Equal(t, RouteName(r.Method, r.Template), r.Name)
			assert.Equal(t, strings.Count(r.Template, "{"), len(r.Params))

			values := make([]string, len(r.Params))
			for i := range values {
				values[i] = "~"
			}
			e, err := r.Bind(values...)
			require.NoError(t, err)

			p := e.Path()
			assert.NotContains(t, p, "{")
			assert.NotContains(t, p, "}")
			assert.Equal(t, len(r.Params), strings.Count(p, "/~"))
			assert.True(t, strings.HasPrefix(p, "/"))

			found, ok := Find(r.Method, r.Template)
			assert.True(t, ok)
			assert.Equal(t, r, found)

			named, ok := Lookup(r.Name)
			assert.True(t, ok)
			assert.Equal(t, r, named)
		})
	}
}

func TestRoutes_copies(t *testing.T) {
	t.Run("changing a listed route does not affect the registry", func(t *testing.T) {
		for _, r := range Routes() {
			if r.Name == "GetReposownerrepo" {
				r.Template = "/changed"
				r.Params[0] = "changed"
			}
		}

		r, ok := Lookup("GetReposownerrepo")
		require.True(t, ok)
		assert.Equal(t, "/repos/{owner}/{repo}", r.Template)
		assert.Equal(t, []string{"owner", "repo"}, r.Params)

		e, ok := Match(MethodGet, "/repos/octocat/Hello-World")
		require.True(t, ok)
		assert.Equal(t, "/repos/octocat/Hello-World", e.Path())
	})

	t.Run("changing a looked up route does not affect endpoints", func(t *testing.T) {
		r, ok := Lookup("GetZen")
		require.True(t, ok)
		r.Template = "/changed"

		assert.Equal(t, "/zen", GetZen().Path())
		found, _ := Find(MethodGet, "/zen")
		assert.Equal(t, "/zen", found.Template)
	})

	t.Run("endpoints bound from copies are equal", func(t *testing.T) {
		r, _ := Lookup("GetReposownerrepo")
		e, err := r.Bind("octocat", "Hello-World")
		require.NoError(t, err)
		assert.True(t, e.Equal(GetReposownerrepo("octocat", "Hello-World")))

		e.Route().Template = "/changed"
		assert.Equal(t, "/repos/octocat/Hello-World", e.Path())
	})
}

func TestLookup(t *testing.T) {
	t.Run("ignores case when there is no exact match", func(t *testing.T) {
		r, ok := Lookup("getzen")
		assert.True(t, ok)
		assert.Equal(t, "/zen", r.Template)
	})

	t.Run("fails for unknown names", func(t *testing.T) {
		_, ok := Lookup("GetNothingAtAll")
		assert.False(t, ok)
	})
}

func TestCategories(t *testing.T) {
	c := Categories()
	assert.Contains(t, c, "repos")
	assert.Contains(t, c, "oauth-authorizations")
	assert.IsIncreasing(t, c)
}

func TestSortRoutes(t *testing.T) {
	find := func(m Method, tmpl string) *Route {
		r, ok := Find(m, tmpl)
		require.True(t, ok)
		return r
	}
	rs := []*Route{
		find(MethodDelete, "/repos/{owner}/{repo}"),
		find(MethodGet, "/zen"),
		find(MethodGet, "/repos/{owner}/{repo}"),
		find(MethodPatch, "/repos/{owner}/{repo}"),
	}

	SortRoutes(rs)

	assert.Equal(t, "GetReposownerrepo", rs[0].Name)
	assert.Equal(t, "PatchReposownerrepo", rs[1].Name)
	assert.Equal(t, "DeleteReposownerrepo", rs[2].Name)
	assert.Equal(t, "GetZen", rs[3].Name)
}

func TestRouteName(t *testing.T) {
	tests := []struct {
		method   Method
		template string
		want     string
	}{
		{MethodGet, "/", "Get"},
		{MethodGet, "/enterprises/{enterprise}/audit-log", "GetEnterprisesenterpriseAuditLog"},
		{MethodGet, "/scim/v2/organizations/{org}/Users/{scim_user_id}", "GetScimV2OrganizationsorgUsersscimUserId"},
		{MethodPost, "/repos/{owner}/{repo}/pages/builds", "PostReposownerrepoPagesBuilds"},
		{MethodGet, "/codes_of_conduct", "GetCodesOfConduct"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RouteName(tt.method, tt.template))
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		path   string
		want   Endpoint
	}{
		{"root", MethodGet, "/", Get()},
		{"repository", MethodGet, "/repos/octocat/Hello-World", GetReposownerrepo("octocat", "Hello-World")},
		{"ignores the query", MethodGet, "/repos/octocat/Hello-World?per_page=1", GetReposownerrepo("octocat", "Hello-World")},
		{"prefers literals", MethodGet, "/gists/aa5a315d/star", GetGistsgistIdStar("aa5a315d")},
		{"falls back to placeholders", MethodGet, "/gists/aa5a315d/57a7f021", GetGistsgistIdsha("aa5a315d", "57a7f021")},
		{
			"absorbs trailing segments",
			MethodGet,
			"/repos/octocat/Hello-World/contents/docs/README.md",
			GetReposownerrepoContentspath("octocat", "Hello-World", "docs/README.md"),
		},
		{
			"absorbs refs with slashes",
			MethodGet,
			"/repos/octocat/Hello-World/git/ref/heads/main",
			GetReposownerrepoGitRefref("octocat", "Hello-World", "heads/main"),
		},
		{
			"uses the method",
			MethodDelete,
			"/orgs/my-org/actions/runners/42/labels/gpu",
			DeleteOrgsorgActionsRunnersrunnerIdLabelsname("my-org", "42", "gpu"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := Match(tt.method, tt.path)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(e), "got %s", e)
		})
	}

	t.Run("fails for unknown paths", func(t *testing.T) {
		_, ok := Match(MethodGet, "/not/a/github/path/at/all")
		assert.False(t, ok)
	})

	t.Run("fails for the wrong method", func(t *testing.T) {
		_, ok := Match(MethodPatch, "/zen")
		assert.False(t, ok)
	})

	t.Run("round trips every route", func(t *testing.T) {
		for _, r := range Routes() {
			values := make([]string, len(r.Params))
			for i := range values {
				values[i] = "x" + string(rune('a'+i))
			}
			e, _ := r.Bind(values...)
			m, ok := Match(e.Method(), e.Path())
			if assert.True(t, ok, r.Name) {
				assert.Equal(t, e.Path(), m.Path(), r.Name)
			}
		}
	})
}
