package paramutils

import (
	"ghrest/pkg/endpoint"
)

// EndpointResolver turns NAME [PARAM...] arguments into a bound endpoint.
type EndpointResolver struct {
	Defaults *RepositoryParams
	// PromptRoute picks a route when no name is given. Without it a name
	// is required.
	PromptRoute func([]*endpoint.Route) (*endpoint.Route, error)
	PromptParam PromptFunc
}

func (er *EndpointResolver) Resolve(args []string) (endpoint.Endpoint, error) {
	name, rest := ParseNameArg(args)

	var (
		r   *endpoint.Route
		err error
	)
	if name == "" && er.PromptRoute != nil {
		routes := endpoint.Routes()
		endpoint.SortRoutes(routes)
		r, err = er.PromptRoute(routes)
	} else {
		r, err = LookupRoute(name)
	}
	if err != nil {
		return endpoint.Endpoint{}, err
	}

	values, err := FillPathParams(r, rest, er.Defaults, er.PromptParam)
	if err != nil {
		return endpoint.Endpoint{}, err
	}

	return r.Bind(values...)
}
