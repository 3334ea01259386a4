package path

import (
	"fmt"
	"ghrest/internal/cli/paramutils"
	"ghrest/internal/cli/utils"
	"ghrest/internal/persistance"
	"ghrest/pkg/endpoint"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type pathCmdParams struct {
	Repository paramutils.RepositoryParams
	Escape     bool
}

var (
	fillRepositoryParams = paramutils.FillRepositoryParams
	getPersistanceRepo   = persistance.GetRepo
	promptRoute          = utils.PromptRouteSelect
	promptParam          = utils.PromptParam
)

func runCmd(cmd *cobra.Command, args []string) error {
	flags := &paramutils.PFlagSetWrapper{Flags: cmd.Flags()}

	params := &pathCmdParams{}
	fillRepositoryParams(flags, &params.Repository)
	params.Escape = flags.GetBoolOrDefault("escape", false)

	return execute(cmd.OutOrStdout(), args, params)
}

func execute(out io.Writer, args []string, params *pathCmdParams) error {
	resolver := &paramutils.EndpointResolver{
		Defaults:    &params.Repository,
		PromptRoute: promptRoute,
		PromptParam: promptParam,
	}
	e, err := resolver.Resolve(args)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, format(e, params.Escape))

	err = getPersistanceRepo().AddRecent(e)
	if err != nil {
		log.Debug().Err(err).Msg("could not record recent endpoint")
	}

	return nil
}

func format(e endpoint.Endpoint, escape bool) string {
	if escape {
		return fmt.Sprintf("%s %s", e.Method(), e.EscapedPath())
	}
	return e.String()
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path [NAME] [PARAM...]",
		Short: "Print the request line of an endpoint",
		Long: `Binds the parameters to an endpoint and prints its method and path.
Owner and repository default to the --owner and --repo flags, the configuration
or the origin remote of the working directory. Anything missing is prompted for.`,
		Run: utils.RunCommandWrapper(runCmd),
	}

	cmd.Flags().Bool("escape", false, "percent-encode the parameters")

	return cmd
}
