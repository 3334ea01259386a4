package browse

import (
	"bytes"
	"ghrest/pkg/endpoint"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func Test_runCmd(t *testing.T) {
	old := runTui
	defer func() { runTui = old }()

	run := func() (string, error) {
		out := &bytes.Buffer{}
		cmd := &cobra.Command{}
		cmd.SetOut(out)
		err := runCmd(cmd, nil)
		return out.String(), err
	}

	t.Run("prints the picked endpoint with its params", func(t *testing.T) {
		runTui = func(routes []*endpoint.Route) (*endpoint.Route, error) {
			assert.Len(t, routes, len(endpoint.Routes()))
			r, _ := endpoint.Lookup("GetReposownerrepoPullspullNumber")
			return r, nil
		}
		out, err := run()
		assert.NoError(t, err)
		assert.Equal(t, "GetReposownerrepoPullspullNumber <owner> <repo> <pull_number>\n", out)
	})

	t.Run("prints nothing when the user quits", func(t *testing.T) {
		runTui = func([]*endpoint.Route) (*endpoint.Route, error) { return nil, nil }
		out, err := run()
		assert.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("fails when the terminal cannot be used", func(t *testing.T) {
		vErr := errors.New("no tty")
		runTui = func([]*endpoint.Route) (*endpoint.Route, error) { return nil, vErr }
		_, err := run()
		assert.Equal(t, vErr, err)
	})
}
