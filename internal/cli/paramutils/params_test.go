package paramutils

import (
	"ghrest/internal/errcodes"
	"ghrest/internal/gitutils"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPFlagSetWrapper(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("owner", "", "")
	flags.Bool("escape", false, "")
	flags.StringArray("query", nil, "")
	require.NoError(t, flags.Parse([]string{"--escape", "--query", "a=1", "--query", "b=2"}))

	w := NewFlagRepo(flags)
	assert.Equal(t, "fallback", w.GetStringOrDefault("owner", "fallback"))
	assert.Equal(t, "fallback", w.GetStringOrDefault("missing", "fallback"))
	assert.True(t, w.GetBoolOrDefault("escape", false))
	assert.True(t, w.GetBoolOrDefault("missing", true))
	assert.Equal(t, []string{"a=1", "b=2"}, w.GetStringArrayOrDefault("query", nil))
	assert.Nil(t, w.GetStringArrayOrDefault("missing", nil))
}

func TestFillRepositoryParams(t *testing.T) {
	defer viper.Reset()
	old := getWorkingDirectoryRemote
	defer func() { getWorkingDirectoryRemote = old }()

	remoteCalled := false
	getWorkingDirectoryRemote = func() (*gitutils.Remote, error) {
		remoteCalled = true
		return &gitutils.Remote{Host: "github.com", Owner: "from-git", Repo: "git-repo"}, nil
	}

	t.Run("prefers flags", func(t *testing.T) {
		remoteCalled = false
		p := &RepositoryParams{}
		FillRepositoryParams(&MockFlagSet{StringMap: map[string]interface{}{
			"owner": "octocat",
			"repo":  "Hello-World",
		}}, p)
		assert.Equal(t, RepositoryParams{Owner: "octocat", Repo: "Hello-World"}, *p)
		assert.False(t, remoteCalled)
	})

	t.Run("reads the configuration", func(t *testing.T) {
		viper.Set("default.owner", "from-config")
		defer viper.Reset()

		p := &RepositoryParams{}
		FillRepositoryParams(&MockFlagSet{}, p)
		assert.Equal(t, "from-config", p.Owner)
		assert.Equal(t, "git-repo", p.Repo)
	})

	t.Run("is empty when there is no remote", func(t *testing.T) {
		getWorkingDirectoryRemote = func() (*gitutils.Remote, error) {
			return nil, gitutils.ErrNoRemoteFound
		}
		p := &RepositoryParams{}
		FillRepositoryParams(&MockFlagSet{}, p)
		assert.Equal(t, RepositoryParams{}, *p)
	})
}

func TestFillPathParams(t *testing.T) {
	issue, err := LookupRoute("GetReposownerrepoIssuesissueNumber")
	require.NoError(t, err)
	defaults := &RepositoryParams{Owner: "octocat", Repo: "Hello-World"}

	t.Run("uses all args when they cover every placeholder", func(t *testing.T) {
		v, err := FillPathParams(issue, []string{"a", "b", "1"}, defaults, nil)
		assert.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "1"}, v)
	})

	t.Run("fills owner and repo from defaults", func(t *testing.T) {
		v, err := FillPathParams(issue, []string{"1347"}, defaults, nil)
		assert.NoError(t, err)
		assert.Equal(t, []string{"octocat", "Hello-World", "1347"}, v)
	})

	t.Run("only takes as many defaults as needed", func(t *testing.T) {
		v, err := FillPathParams(issue, []string{"Spoon-Knife", "1"}, defaults, nil)
		assert.NoError(t, err)
		assert.Equal(t, []string{"octocat", "Spoon-Knife", "1"}, v)
	})

	t.Run("prompts for what is left", func(t *testing.T) {
		var asked []string
		prompt := func(p string) (string, error) {
			asked = append(asked, p)
			return "42", nil
		}
		v, err := FillPathParams(issue, nil, defaults, prompt)
		assert.NoError(t, err)
		assert.Equal(t, []string{"octocat", "Hello-World", "42"}, v)
		assert.Equal(t, []string{"issue_number"}, asked)
	})

	t.Run("fails on a prompt error", func(t *testing.T) {
		vErr := errors.New("interrupt")
		_, err := FillPathParams(issue, nil, nil, func(string) (string, error) { return "", vErr })
		assert.Equal(t, vErr, err)
	})

	t.Run("fails when a value is missing and there is no prompt", func(t *testing.T) {
		_, err := FillPathParams(issue, nil, &RepositoryParams{}, nil)
		assert.True(t, errors.Is(err, errcodes.ErrMissingParam))
	})

	t.Run("fails with too many args", func(t *testing.T) {
		_, err := FillPathParams(issue, []string{"a", "b", "c", "d"}, defaults, nil)
		assert.True(t, errors.Is(err, errcodes.ErrTooManyParams))
	})
}

func TestParseKeyValues(t *testing.T) {
	t.Run("reads pairs", func(t *testing.T) {
		m, err := ParseKeyValues([]string{"state=open", "per_page=100", "q=a=b", "empty="})
		assert.NoError(t, err)
		assert.Equal(t, map[string]string{
			"state":    "open",
			"per_page": "100",
			"q":        "a=b",
			"empty":    "",
		}, m)
	})

	for _, p := range []string{"state", "=open"} {
		t.Run("fails for "+p, func(t *testing.T) {
			_, err := ParseKeyValues([]string{p})
			assert.True(t, errors.Is(err, errcodes.ErrQueryMustBeKeyValue))
		})
	}
}

func TestLookupRoute(t *testing.T) {
	t.Run("ignores case", func(t *testing.T) {
		r, err := LookupRoute("getzen")
		assert.NoError(t, err)
		assert.Equal(t, "GetZen", r.Name)
	})

	t.Run("fails without a name", func(t *testing.T) {
		_, err := LookupRoute("")
		assert.Equal(t, errcodes.ErrMissingEndpoint, err)
	})

	t.Run("fails for unknown names", func(t *testing.T) {
		_, err := LookupRoute("GetNothing")
		assert.True(t, errors.Is(err, errcodes.ErrUnknownEndpoint))
	})
}
