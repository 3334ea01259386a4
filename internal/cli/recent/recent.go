package recent

import (
	"fmt"
	"ghrest/internal/cli/paramutils"
	"ghrest/internal/cli/utils"
	"ghrest/internal/persistance"
	"io"

	"github.com/gosuri/uitable"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type recentCmdParams struct {
	Escape bool
}

var getPersistanceRepo = persistance.GetRepo

func runCmd(cmd *cobra.Command, args []string) error {
	flags := &paramutils.PFlagSetWrapper{Flags: cmd.Flags()}
	params := &recentCmdParams{
		Escape: flags.GetBoolOrDefault("escape", false),
	}

	return execute(cmd.OutOrStdout(), getPersistanceRepo(), params)
}

// path binds the stored params again. Entries whose route is gone keep the
// path they were recorded with.
func path(r *persistance.RecentEndpoint, escape bool) string {
	e, err := r.Endpoint()
	if err != nil {
		log.Debug().Err(err).Str("name", r.Name).Msg("recent endpoint no longer resolves")
		return r.Path
	}
	if escape {
		return e.EscapedPath()
	}
	return e.Path()
}

func execute(out io.Writer, repo persistance.PersistanceRepo, params *recentCmdParams) error {
	recent, err := repo.GetRecent()
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		fmt.Fprintln(out, "No recent endpoints")
		return nil
	}

	table := uitable.New()
	table.AddRow("USED", "METHOD", "PATH", "NAME")
	for _, r := range recent {
		table.AddRow(r.LastUsed.Local().Format("2006-01-02 15:04"), r.Method, path(r, params.Escape), r.Name)
	}

	fmt.Fprintln(out, table.String())

	return nil
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently used endpoints",
		Long:  `Lists the endpoints recently used by path and call, most recent first`,
		Args:  cobra.NoArgs,
		Run:   utils.RunCommandWrapper(runCmd),
	}

	cmd.Flags().Bool("escape", false, "percent-encode the parameters")

	return cmd
}
