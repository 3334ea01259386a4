package endpoint

import (
	"net/url"
	"strings"

	"golang.org/x/exp/slices"
)

// Endpoint is a route bound to its path parameter values. The zero value
// has no method and an empty path.
type Endpoint struct {
	route  *Route
	params []string
}

func (e Endpoint) Method() Method {
	if e.route == nil {
		return ""
	}
	return e.route.Method
}

// Path substitutes the parameters into the template as given. Values are
// not escaped, so a value containing "/" adds segments to the path.
func (e Endpoint) Path() string {
	if e.route == nil {
		return ""
	}
	return expand(e.route.Template, e.params, nil)
}

// EscapedPath is Path with every value escaped as a single path segment.
func (e Endpoint) EscapedPath() string {
	if e.route == nil {
		return ""
	}
	return expand(e.route.Template, e.params, url.PathEscape)
}

func (e Endpoint) Name() string {
	if e.route == nil {
		return ""
	}
	return e.route.Name
}

// Route returns a copy of the route e is bound to, or nil for the zero
// value.
func (e Endpoint) Route() *Route {
	if e.route == nil {
		return nil
	}
	return e.route.clone()
}

func (e Endpoint) Params() []string {
	return slices.Clone(e.params)
}

func (e Endpoint) String() string {
	if e.route == nil {
		return ""
	}
	return string(e.Method()) + " " + e.Path()
}

func (e Endpoint) Equal(o Endpoint) bool {
	return e.route == o.route && slices.Equal(e.params, o.params)
}

func (e Endpoint) IsZero() bool {
	return e.route == nil
}

func expand(template string, params []string, escape func(string) string) string {
	var b strings.Builder
	b.Grow(len(template))

	i := 0
	for {
		start := strings.IndexByte(template, '{')
		if start < 0 {
			break
		}
		end := strings.IndexByte(template[start:], '}')
		if end < 0 {
			break
		}
		b.WriteString(template[:start])

		if i < len(params) {
			v := params[i]
			if escape != nil {
				v = escape(v)
			}
			b.WriteString(v)
		}
		i++
		template = template[start+end+1:]
	}
	b.WriteString(template)

	return b.String()
}
