// Package github describes the bodies returned by the GitHub REST API and
// which endpoint returns which.
package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"ghrest/pkg/endpoint"
	"strings"

	"github.com/pkg/errors"
)

var ErrNoResponseShape = errors.New("no response shape registered")

func shape[T any]() interface{} {
	return new(T)
}

// ResponseFor returns a pointer to a fresh value of the response shape
// registered for the endpoint's route.
func ResponseFor(e endpoint.Endpoint) (interface{}, bool) {
	f, ok := responses[e.Name()]
	if !ok {
		return nil, false
	}
	return f(), true
}

func HasResponse(name string) bool {
	_, ok := responses[name]
	return ok
}

// ResponseType names the Go type of a route's response shape, e.g.
// "github.FullRepository" or "[]github.Issue".
func ResponseType(name string) string {
	f, ok := responses[name]
	if !ok {
		return ""
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", f()), "*")
}

// Decode reads body into the response shape of e. Fields missing from the
// shape are ignored. Plain text responses decode into a string shape as is.
func Decode(e endpoint.Endpoint, body []byte) (interface{}, error) {
	v, ok := ResponseFor(e)
	if !ok {
		return nil, errors.Wrap(ErrNoResponseShape, e.Name())
	}

	if s, ok := v.(*string); ok {
		trimmed := bytes.TrimSpace(body)
		if len(trimmed) == 0 || trimmed[0] != '"' {
			*s = string(body)
			return s, nil
		}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return nil, errors.Wrapf(err, "decoding %s response", e.Name())
	}

	return v, nil
}
