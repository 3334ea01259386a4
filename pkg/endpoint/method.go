package endpoint

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownMethod = errors.New("unknown http method")

type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodPatch  Method = "PATCH"
	MethodDelete Method = "DELETE"
)

func Methods() []Method {
	return []Method{MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete}
}

func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Methods() {
		if m == known {
			return m, nil
		}
	}

	return "", errors.Wrapf(ErrUnknownMethod, "%q", s)
}

// order is the position of m in Methods(), used to sort listings.
func (m Method) order() int {
	for i, known := range Methods() {
		if m == known {
			return i
		}
	}
	return len(Methods())
}
