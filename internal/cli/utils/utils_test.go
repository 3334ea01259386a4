package utils

import (
	"bytes"
	"ghrest/internal/errcodes"
	"ghrest/internal/systemcodes"
	"ghrest/pkg/client"
	"ghrest/pkg/endpoint"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"api errors", &client.Error{StatusCode: 404, Message: "Not Found"}, systemcodes.ErrorCodeRequest},
		{"wrapped api errors", errors.Wrap(&client.Error{StatusCode: 500}, "call"), systemcodes.ErrorCodeRequest},
		{"usage errors", errors.Wrap(errcodes.ErrUnknownEndpoint, "GetNothing"), systemcodes.ErrorCodeUsage},
		{"anything else", errors.New("boom"), systemcodes.ErrorCodeGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestRunCommandWrapper(t *testing.T) {
	old := exit
	defer func() { exit = old }()

	code := -1
	exit = func(c int) { code = c }

	t.Run("does not exit on success", func(t *testing.T) {
		code = -1
		RunCommandWrapper(func(*cobra.Command, []string) error { return nil })(&cobra.Command{}, nil)
		assert.Equal(t, -1, code)
	})

	t.Run("prints the error and exits", func(t *testing.T) {
		out := &bytes.Buffer{}
		cmd := &cobra.Command{}
		cmd.SetErr(out)

		RunCommandWrapper(func(*cobra.Command, []string) error {
			return errcodes.ErrMissingEndpoint
		})(cmd, nil)

		assert.Equal(t, systemcodes.ErrorCodeUsage, code)
		assert.Equal(t, "endpoint name is missing\n", out.String())
	})
}

func TestPromptRouteSelect(t *testing.T) {
	old := askOne
	defer func() { askOne = old }()

	zen, _ := endpoint.Lookup("GetZen")
	octocat, _ := endpoint.Lookup("GetOctocat")
	routes := []*endpoint.Route{zen, octocat}

	t.Run("returns the selected route", func(t *testing.T) {
		askOne = func(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
			assert.Equal(t, []string{"GET    /zen", "GET    /octocat"}, p.(*survey.Select).Options)
			*(response.(*string)) = "GET    /octocat"
			return nil
		}
		r, err := PromptRouteSelect(routes)
		require.NoError(t, err)
		assert.Same(t, octocat, r)
	})

	t.Run("fails when the prompt fails", func(t *testing.T) {
		vErr := errors.New("interrupt")
		askOne = func(survey.Prompt, interface{}, ...survey.AskOpt) error { return vErr }
		_, err := PromptRouteSelect(routes)
		assert.Equal(t, vErr, err)
	})

	t.Run("fails without routes", func(t *testing.T) {
		_, err := PromptRouteSelect(nil)
		assert.Equal(t, errcodes.ErrNothingSelected, err)
	})
}

func TestPromptParam(t *testing.T) {
	old := askOne
	defer func() { askOne = old }()

	askOne = func(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
		assert.Equal(t, "{owner}", p.(*survey.Input).Message)
		*(response.(*string)) = "octocat"
		return nil
	}

	v, err := PromptParam("owner")
	assert.NoError(t, err)
	assert.Equal(t, "octocat", v)
}
