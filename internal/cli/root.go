package cli

import (
	"fmt"
	"os"

	browsecmd "ghrest/internal/cli/browse"
	callcmd "ghrest/internal/cli/call"
	listcmd "ghrest/internal/cli/list"
	matchcmd "ghrest/internal/cli/match"
	pathcmd "ghrest/internal/cli/path"
	recentcmd "ghrest/internal/cli/recent"
	showcmd "ghrest/internal/cli/show"
	"ghrest/internal/configutils"
	"ghrest/internal/systemcodes"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func setupLogging(verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

var rootCmd = &cobra.Command{
	Use:     "ghrest",
	Short:   "ghrest command-line utility for the GitHub REST API",
	Long:    `Look up, bind and call GitHub REST API endpoints by name.`,
	Version: fmt.Sprintf("%v, commit %v, built at %v", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupLogging(verbose)

		path, err := cmd.Flags().GetString("config")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(systemcodes.ErrorCodeGeneric)
		}

		err = configutils.LoadGlobal(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(systemcodes.ErrorCodeGeneric)
		}
	},
}

func Execute() {
	rootCmd.AddCommand(
		listcmd.New(),
		showcmd.New(),
		pathcmd.New(),
		matchcmd.New(),
		callcmd.New(),
		recentcmd.New(),
		browsecmd.New(),
	)

	rootCmd.PersistentFlags().String("config", "", "config path")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug messages")
	rootCmd.PersistentFlags().StringP("owner", "o", "", "default value for {owner}")
	rootCmd.PersistentFlags().StringP("repo", "r", "", "default value for {repo}")

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(systemcodes.ErrorCodeUsage)
	}
}
