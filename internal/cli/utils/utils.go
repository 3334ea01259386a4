package utils

import (
	"fmt"
	"ghrest/internal/errcodes"
	"ghrest/internal/systemcodes"
	"ghrest/pkg/client"
	"ghrest/pkg/endpoint"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var askOne = survey.AskOne

// PromptRouteSelect asks the user to pick one of routes.
func PromptRouteSelect(routes []*endpoint.Route) (*endpoint.Route, error) {
	if len(routes) == 0 {
		return nil, errcodes.ErrNothingSelected
	}

	options := make([]string, 0, len(routes))
	for _, r := range routes {
		options = append(options, fmt.Sprintf("%-6s %s", r.Method, r.Template))
	}

	var answer string
	prompt := &survey.Select{
		Message:  "Select an endpoint",
		Options:  options,
		PageSize: 15,
	}
	err := askOne(prompt, &answer)
	if err != nil {
		return nil, err
	}
	i := slices.Index(options, answer)
	if i < 0 {
		return nil, errcodes.ErrNothingSelected
	}

	return routes[i], nil
}

// PromptParam asks for the value of one path placeholder.
func PromptParam(placeholder string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: fmt.Sprintf("{%s}", placeholder),
	}
	err := askOne(prompt, &answer, survey.WithValidator(survey.Required))
	if err != nil {
		return "", err
	}

	return answer, nil
}

// ExitCode maps a command error to the process exit code.
func ExitCode(err error) int {
	var apiErr *client.Error
	if errors.As(err, &apiErr) {
		return systemcodes.ErrorCodeRequest
	}
	for _, u := range errcodes.Usage {
		if errors.Is(err, u) {
			return systemcodes.ErrorCodeUsage
		}
	}

	return systemcodes.ErrorCodeGeneric
}

type runCommandError func(*cobra.Command, []string) error
type runCommandNoError func(*cobra.Command, []string)

var exit = os.Exit

func RunCommandWrapper(fn runCommandError) runCommandNoError {
	return func(cmd *cobra.Command, args []string) {
		err := fn(cmd, args)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			exit(ExitCode(err))
		}
	}
}
