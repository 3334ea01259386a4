package browse

import (
	"fmt"
	"ghrest/internal/cli/utils"
	"ghrest/internal/tui"
	"ghrest/pkg/endpoint"

	"github.com/spf13/cobra"
)

var runTui = tui.Run

func runCmd(cmd *cobra.Command, args []string) error {
	routes := endpoint.Routes()
	endpoint.SortRoutes(routes)

	picked, err := runTui(routes)
	if err != nil {
		return err
	}
	if picked == nil {
		return nil
	}

	usage := picked.Name
	for _, p := range picked.Params {
		usage += fmt.Sprintf(" <%s>", p)
	}
	fmt.Fprintln(cmd.OutOrStdout(), usage)

	return nil
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse endpoints interactively",
		Long: `Opens a filterable list of every endpoint. Press / to filter, Enter to
print the picked endpoint with its parameters and q to quit.`,
		Args: cobra.NoArgs,
		Run:  utils.RunCommandWrapper(runCmd),
	}

	return cmd
}
