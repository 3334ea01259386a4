package list

import (
	"fmt"
	"ghrest/internal/cli/paramutils"
	"ghrest/internal/cli/utils"
	"ghrest/pkg/endpoint"
	"io"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func runCmd(cmd *cobra.Command, args []string) error {
	flags := &paramutils.PFlagSetWrapper{Flags: cmd.Flags()}

	params := &listCmdParams{}
	err := fillFlagListCmdParams(flags, args, params)
	if err != nil {
		return err
	}

	execute(cmd.OutOrStdout(), params)

	return nil
}

func filterRoutes(params *listCmdParams) []*endpoint.Route {
	var routes []*endpoint.Route
	for _, r := range endpoint.Routes() {
		if params.matches(r) {
			routes = append(routes, r)
		}
	}
	endpoint.SortRoutes(routes)

	return routes
}

func execute(out io.Writer, params *listCmdParams) {
	routes := filterRoutes(params)
	if len(routes) == 0 {
		fmt.Fprintln(out, "No endpoints found")
		return
	}

	table := uitable.New()
	header := []interface{}{"METHOD", "PATH", "NAME", "CATEGORY"}
	if params.ShowParams {
		header = append(header, "PARAMS")
	}
	table.AddRow(header...)

	for _, r := range routes {
		row := []interface{}{r.Method, r.Template, r.Name, r.Category}
		if params.ShowParams {
			row = append(row, strings.Join(r.Params, ", "))
		}
		table.AddRow(row...)
	}

	fmt.Fprintln(out, table.String())
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [filter]",
		Aliases: []string{"ls"},
		Short:   "List endpoints",
		Long:    `Lists the known endpoints, optionally filtered by a part of their name or path`,
		Args:    cobra.MaximumNArgs(1),
		Run:     utils.RunCommandWrapper(runCmd),
	}

	cmd.Flags().StringP("method", "m", "", "only list endpoints using this HTTP method")
	cmd.Flags().StringP("category", "c", "", "only list endpoints in this category")
	cmd.Flags().Bool("params", false, "show path parameter names")

	return cmd
}
