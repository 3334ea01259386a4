package client

import (
	"bytes"
	"ghrest/pkg/endpoint"
	"ghrest/pkg/github"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sourcegraph/go-diff/diff"
	"github.com/tidwall/gjson"
)

type Response struct {
	Endpoint   endpoint.Endpoint
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode reads the body into the response shape registered for the
// endpoint.
func (r *Response) Decode() (interface{}, error) {
	return github.Decode(r.Endpoint, r.Body)
}

// Get reads a single value from a JSON body using a gjson path.
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}

type FileStat struct {
	Name    string
	OldName string
	Added   int
	Changed int
	Deleted int
}

// Diff parses a body requested with the diff media type.
func (r *Response) Diff() ([]*FileStat, error) {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil, nil
	}

	diffs, err := diff.ParseMultiFileDiff(r.Body)
	if err != nil {
		return nil, errors.Wrap(err, "parsing diff")
	}

	stats := make([]*FileStat, 0, len(diffs))
	for _, d := range diffs {
		s := d.Stat()
		stats = append(stats, &FileStat{
			Name:    trimDiffPrefix(d.NewName),
			OldName: trimDiffPrefix(d.OrigName),
			Added:   int(s.Added),
			Changed: int(s.Changed),
			Deleted: int(s.Deleted),
		})
	}

	return stats, nil
}

func trimDiffPrefix(name string) string {
	if name == "/dev/null" {
		return ""
	}
	if strings.HasPrefix(name, "a/") || strings.HasPrefix(name, "b/") {
		return name[2:]
	}
	return name
}
