package endpoint

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	routes     []*Route
	byName     = map[string]*Route{}
	byTemplate = map[string]*Route{}
)

func register(category, name string, method Method, template string) *Route {
	if want := RouteName(method, template); name != want {
		panic(fmt.Sprintf("endpoint: route %s %s registered as %s, want %s", method, template, name, want))
	}
	if _, ok := byName[name]; ok {
		panic("endpoint: duplicate route name " + name)
	}
	key := routeKey(method, template)
	if _, ok := byTemplate[key]; ok {
		panic("endpoint: duplicate route " + key)
	}

	r := &Route{
		Name:     name,
		Category: category,
		Method:   method,
		Template: template,
		Params:   parseParams(template),
		segments: splitPath(template),
	}
	routes = append(routes, r)
	byName[name] = r
	byTemplate[key] = r

	return r
}

func routeKey(method Method, template string) string {
	return string(method) + " " + template
}

// Routes returns a copy of every known route in registration order.
func Routes() []*Route {
	rs := make([]*Route, len(routes))
	for i, r := range routes {
		rs[i] = r.clone()
	}
	return rs
}

// Lookup finds a route by constructor name. An exact match wins over a
// case-insensitive one.
func Lookup(name string) (*Route, bool) {
	if r, ok := byName[name]; ok {
		return r.clone(), true
	}
	i := slices.IndexFunc(routes, func(r *Route) bool {
		return strings.EqualFold(r.Name, name)
	})
	if i < 0 {
		return nil, false
	}
	return routes[i].clone(), true
}

func Find(method Method, template string) (*Route, bool) {
	r, ok := byTemplate[routeKey(method, template)]
	if !ok {
		return nil, false
	}
	return r.clone(), true
}

// SortRoutes orders routes by template, then by verb in the order of
// Methods().
func SortRoutes(rs []*Route) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Template != rs[j].Template {
			return rs[i].Template < rs[j].Template
		}
		return rs[i].Method.order() < rs[j].Method.order()
	})
}

func Categories() []string {
	seen := map[string]struct{}{}
	for _, r := range routes {
		seen[r.Category] = struct{}{}
	}
	categories := maps.Keys(seen)
	sort.Strings(categories)

	return categories
}

// RouteName derives the constructor name of a route: the capitalised verb,
// then every literal segment split on "-", "_" and "." and capitalised, then
// every placeholder in lower camel case.
//
//	PUT /authorizations/clients/{client_id}/{fingerprint}
//	PutAuthorizationsClientsclientIdfingerprint
func RouteName(method Method, template string) string {
	var b strings.Builder
	b.WriteString(upperFirst(strings.ToLower(string(method))))

	for _, seg := range splitPath(template) {
		if isPlaceholder(seg) {
			words := strings.Split(seg[1:len(seg)-1], "_")
			b.WriteString(words[0])
			for _, w := range words[1:] {
				b.WriteString(upperFirst(w))
			}
			continue
		}
		words := strings.FieldsFunc(seg, func(r rune) bool {
			return r == '-' || r == '_' || r == '.'
		})
		for _, w := range words {
			b.WriteString(upperFirst(w))
		}
	}

	return b.String()
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// Match resolves a concrete request path back to the endpoint that
// produces it. Among the routes matching segment by segment the one with
// the most literal segments wins. A route ending in a placeholder may
// absorb the remaining segments, which is only tried when nothing matches
// exactly. Query strings are ignored.
func Match(method Method, path string) (Endpoint, bool) {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segs := splitPath(path)

	var (
		best       *Route
		bestParams []string
	)
	for _, r := range routes {
		if r.Method != method || len(r.segments) != len(segs) {
			continue
		}
		params, ok := matchSegments(r.segments, segs)
		if !ok {
			continue
		}
		if best == nil || r.literals() > best.literals() {
			best, bestParams = r, params
		}
	}
	if best != nil {
		return best.bind(bestParams...), true
	}

	for _, r := range routes {
		n := len(r.segments)
		if r.Method != method || n == 0 || n >= len(segs) || !isPlaceholder(r.segments[n-1]) {
			continue
		}
		params, ok := matchSegments(r.segments[:n-1], segs[:n-1])
		if !ok {
			continue
		}
		if best == nil || r.literals() > best.literals() {
			best = r
			bestParams = append(params, strings.Join(segs[n-1:], "/"))
		}
	}
	if best != nil {
		return best.bind(bestParams...), true
	}

	return Endpoint{}, false
}

func matchSegments(template, segs []string) ([]string, bool) {
	var params []string
	for i, t := range template {
		if isPlaceholder(t) {
			if segs[i] == "" {
				return nil, false
			}
			params = append(params, segs[i])
			continue
		}
		if t != segs[i] {
			return nil, false
		}
	}
	return params, true
}
