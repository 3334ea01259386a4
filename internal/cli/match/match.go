package match

import (
	"fmt"
	"ghrest/internal/cli/utils"
	"ghrest/internal/errcodes"
	"ghrest/pkg/endpoint"
	"io"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func runCmd(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errcodes.ErrMustSpecifyMethodPath
	}

	return execute(cmd.OutOrStdout(), args[0], args[1])
}

func execute(out io.Writer, method, path string) error {
	m, err := endpoint.ParseMethod(method)
	if err != nil {
		return err
	}

	e, ok := endpoint.Match(m, path)
	if !ok {
		return errors.Wrapf(errcodes.ErrNoMatchingEndpoint, "%s %s", m, path)
	}

	r := e.Route()
	table := uitable.New()
	table.AddRow("NAME", r.Name)
	table.AddRow("PATH", r.Template)
	for i, p := range r.Params {
		table.AddRow(fmt.Sprintf("{%s}", p), e.Params()[i])
	}

	fmt.Fprintln(out, table.String())

	return nil
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match METHOD PATH",
		Short: "Find the endpoint serving a request",
		Long:  `Finds the endpoint a concrete request path belongs to and prints its parameters`,
		Run:   utils.RunCommandWrapper(runCmd),
	}

	return cmd
}
