package show

import (
	"fmt"
	"ghrest/internal/cli/paramutils"
	"ghrest/internal/cli/utils"
	"ghrest/pkg/endpoint"
	"ghrest/pkg/github"
	"io"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func runCmd(cmd *cobra.Command, args []string) error {
	name, _ := paramutils.ParseNameArg(args)
	r, err := paramutils.LookupRoute(name)
	if err != nil {
		return err
	}

	execute(cmd.OutOrStdout(), r)

	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func execute(out io.Writer, r *endpoint.Route) {
	table := uitable.New()
	table.AddRow("NAME", r.Name)
	table.AddRow("METHOD", r.Method)
	table.AddRow("PATH", r.Template)
	table.AddRow("CATEGORY", r.Category)
	table.AddRow("PARAMS", orDash(strings.Join(r.Params, ", ")))
	table.AddRow("RESPONSE", orDash(github.ResponseType(r.Name)))

	fmt.Fprintln(out, table.String())
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Show an endpoint",
		Long:  `Shows the method, path template, parameters and response type of an endpoint`,
		Args:  cobra.ExactArgs(1),
		Run:   utils.RunCommandWrapper(runCmd),
	}

	return cmd
}
