package endpoint

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var ErrParamCount = errors.New("wrong number of path parameters")

// Route is one row of the endpoint table. Routes handed out by the registry
// are copies, changing one does not affect lookups or matching.
type Route struct {
	Name     string
	Category string
	Method   Method
	Template string
	// Params are the placeholder names in template order.
	Params []string

	segments []string
}

func (r *Route) String() string {
	return fmt.Sprintf("%s %s", r.Method, r.Template)
}

// Bind builds an Endpoint from values given in placeholder order. The
// endpoint refers to the registered route of the same name.
func (r *Route) Bind(params ...string) (Endpoint, error) {
	r = r.registered()
	if len(params) != len(r.Params) {
		return Endpoint{}, errors.Wrapf(
			ErrParamCount,
			"%s expects %d (%s), got %d",
			r.Name, len(r.Params), strings.Join(r.Params, ", "), len(params),
		)
	}

	return r.bind(params...), nil
}

func (r *Route) bind(params ...string) Endpoint {
	p := make([]string, len(params))
	copy(p, params)

	return Endpoint{route: r, params: p}
}

func (r *Route) clone() *Route {
	c := *r
	c.Params = slices.Clone(r.Params)
	return &c
}

func (r *Route) registered() *Route {
	if reg, ok := byName[r.Name]; ok {
		return reg
	}
	return r
}

// literals counts the non placeholder segments of the template.
func (r *Route) literals() int {
	n := 0
	for _, s := range r.segments {
		if !isPlaceholder(s) {
			n++
		}
	}
	return n
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func isPlaceholder(seg string) bool {
	return len(seg) > 2 && strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")
}

func parseParams(template string) []string {
	var params []string
	for _, seg := range splitPath(template) {
		if isPlaceholder(seg) {
			params = append(params, seg[1:len(seg)-1])
		}
	}
	return params
}
