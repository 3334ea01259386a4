package client

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// Error is a response outside the 2xx range.
type Error struct {
	StatusCode       int
	Message          string
	DocumentationURL string
	// Errors holds the messages of validation failures, if any.
	Errors   []string
	Response *Response
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%d %s", e.StatusCode, e.Message)
	if len(e.Errors) > 0 {
		msg += " (" + strings.Join(e.Errors, "; ") + ")"
	}
	return msg
}

func newError(r *Response) *Error {
	e := &Error{
		StatusCode: r.StatusCode,
		Response:   r,
	}

	parsed := gjson.ParseBytes(r.Body)
	if !gjson.ValidBytes(r.Body) || !parsed.IsObject() {
		e.Message = strings.TrimSpace(string(r.Body))
		if e.Message == "" {
			e.Message = http.StatusText(r.StatusCode)
		}
		return e
	}

	e.Message = parsed.Get("message").String()
	if e.Message == "" {
		e.Message = http.StatusText(r.StatusCode)
	}
	e.DocumentationURL = parsed.Get("documentation_url").String()

	parsed.Get("errors").ForEach(func(_, v gjson.Result) bool {
		switch {
		case v.Type == gjson.String:
			e.Errors = append(e.Errors, v.String())
		case v.Get("message").Exists():
			e.Errors = append(e.Errors, v.Get("message").String())
		case v.Get("code").Exists():
			e.Errors = append(e.Errors, fmt.Sprintf("%s %s", v.Get("field").String(), v.Get("code").String()))
		}
		return true
	})

	return e
}
