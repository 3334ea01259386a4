package paramutils

import (
	"ghrest/internal/errcodes"
	"ghrest/pkg/endpoint"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpointResolver_Resolve(t *testing.T) {
	t.Run("binds the named route", func(t *testing.T) {
		er := &EndpointResolver{Defaults: &RepositoryParams{Owner: "octocat", Repo: "Hello-World"}}
		e, err := er.Resolve([]string{"GetReposownerrepoPullspullNumber", "1347"})
		require.NoError(t, err)
		assert.True(t, e.Equal(endpoint.GetReposownerrepoPullspullNumber("octocat", "Hello-World", "1347")))
	})

	t.Run("prompts for the route without a name", func(t *testing.T) {
		var offered []*endpoint.Route
		er := &EndpointResolver{
			PromptRoute: func(routes []*endpoint.Route) (*endpoint.Route, error) {
				offered = routes
				r, _ := endpoint.Lookup("GetZen")
				return r, nil
			},
		}
		e, err := er.Resolve(nil)
		require.NoError(t, err)
		assert.True(t, e.Equal(endpoint.GetZen()))
		assert.Len(t, offered, len(endpoint.Routes()))
	})

	t.Run("requires a name without a route prompt", func(t *testing.T) {
		_, err := (&EndpointResolver{}).Resolve(nil)
		assert.Equal(t, errcodes.ErrMissingEndpoint, err)
	})

	t.Run("fails on a route prompt error", func(t *testing.T) {
		vErr := errors.New("interrupt")
		er := &EndpointResolver{
			PromptRoute: func([]*endpoint.Route) (*endpoint.Route, error) { return nil, vErr },
		}
		_, err := er.Resolve(nil)
		assert.Equal(t, vErr, err)
	})

	t.Run("fails for unknown names", func(t *testing.T) {
		_, err := (&EndpointResolver{}).Resolve([]string{"GetNothing"})
		assert.True(t, errors.Is(err, errcodes.ErrUnknownEndpoint))
	})
}
