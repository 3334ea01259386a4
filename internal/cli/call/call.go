package call

import (
	"context"
	"encoding/json"
	"fmt"
	"ghrest/internal/cli/paramutils"
	"ghrest/internal/cli/utils"
	"ghrest/internal/persistance"
	"ghrest/pkg/client"
	"ghrest/pkg/endpoint"
	"io"
	"strings"

	"github.com/gosuri/uilive"
	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

var ErrNoValueAtPath = errors.New("no value at the selected path")

type doer interface {
	Do(context.Context, endpoint.Endpoint, *client.RequestOptions) (*client.Response, error)
}

var (
	newClient = func() (doer, error) {
		return client.DefaultClient()
	}
	fillRepositoryParams = paramutils.FillRepositoryParams
	getPersistanceRepo   = persistance.GetRepo
	promptRoute          = utils.PromptRouteSelect
	promptParam          = utils.PromptParam
)

func runCmd(cmd *cobra.Command, args []string) error {
	flags := &paramutils.PFlagSetWrapper{Flags: cmd.Flags()}

	params := &callCmdParams{}
	err := fillFlagCallCmdParams(flags, params)
	if err != nil {
		return err
	}
	fillRepositoryParams(flags, &params.Repository)

	resolver := &paramutils.EndpointResolver{
		Defaults:    &params.Repository,
		PromptRoute: promptRoute,
		PromptParam: promptParam,
	}
	e, err := resolver.Resolve(args)
	if err != nil {
		return err
	}

	c, err := newClient()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return execute(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), c, e, params)
}

func requestOptions(params *callCmdParams) *client.RequestOptions {
	o := &client.RequestOptions{
		Query:  params.Query,
		Accept: params.Accept,
		Escape: params.Escape,
	}
	if params.Diff && o.Accept == "" {
		o.Accept = client.DiffAccept
	}
	if len(params.Data) > 0 {
		o.Body = params.Data
	}

	return o
}

func execute(
	ctx context.Context,
	out io.Writer,
	progress io.Writer,
	c doer,
	e endpoint.Endpoint,
	params *callCmdParams,
) error {
	writer := uilive.New()
	writer.Out = progress
	writer.Start()

	fmt.Fprintf(writer, "%s ...\n", e)
	resp, err := c.Do(ctx, e, requestOptions(params))
	if resp != nil {
		fmt.Fprintf(writer, "%s %d\n", e, resp.StatusCode)
	} else {
		fmt.Fprintf(writer, "%s failed\n", e)
	}
	writer.Stop()

	if rErr := getPersistanceRepo().AddRecent(e); rErr != nil {
		log.Debug().Err(rErr).Msg("could not record recent endpoint")
	}
	if err != nil {
		return err
	}

	switch {
	case params.Diff:
		return printDiff(out, resp)
	case params.Typed:
		return printTyped(out, resp)
	case params.Select != "":
		return printSelected(out, resp, params.Select)
	}

	printBody(out, resp.Body)

	return nil
}

func printBody(out io.Writer, body []byte) {
	if len(body) == 0 {
		return
	}
	if !gjson.ValidBytes(body) {
		fmt.Fprintln(out, strings.TrimRight(string(body), "\n"))
		return
	}

	pretty := gjson.GetBytes(body, "@pretty").Raw
	fmt.Fprintln(out, strings.TrimRight(pretty, "\n"))
}

func printSelected(out io.Writer, resp *client.Response, path string) error {
	res := resp.Get(path)
	if !res.Exists() {
		return errors.Wrap(ErrNoValueAtPath, path)
	}

	if res.Type == gjson.String {
		fmt.Fprintln(out, res.String())
		return nil
	}
	printBody(out, []byte(res.Raw))

	return nil
}

func printTyped(out io.Writer, resp *client.Response) error {
	v, err := resp.Decode()
	if err != nil {
		return err
	}

	if s, ok := v.(*string); ok {
		fmt.Fprintln(out, strings.TrimRight(*s, "\n"))
		return nil
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))

	return nil
}

func printDiff(out io.Writer, resp *client.Response) error {
	stats, err := resp.Diff()
	if err != nil {
		return err
	}

	table := uitable.New()
	table.AddRow("FILE", "ADDED", "DELETED")
	added, deleted := 0, 0
	for _, s := range stats {
		name := s.Name
		if name == "" {
			name = s.OldName
		}
		table.AddRow(name, fmt.Sprintf("+%d", s.Added+s.Changed), fmt.Sprintf("-%d", s.Deleted+s.Changed))
		added += s.Added + s.Changed
		deleted += s.Deleted + s.Changed
	}
	table.AddRow(fmt.Sprintf("%d files", len(stats)), fmt.Sprintf("+%d", added), fmt.Sprintf("-%d", deleted))

	fmt.Fprintln(out, table.String())

	return nil
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call [NAME] [PARAM...]",
		Short: "Send a request to an endpoint",
		Long: `Sends one request to an endpoint and prints the response body.
Path parameters are filled in the same way as for the path command.`,
		Run: utils.RunCommandWrapper(runCmd),
	}

	cmd.Flags().StringArrayP("query", "q", nil, "query parameter in the form of key=value, repeatable")
	cmd.Flags().StringP("data", "d", "", "JSON request body, or @file to read it from a file")
	cmd.Flags().String("accept", "", "media type to request")
	cmd.Flags().StringP("select", "s", "", "print only the value at this gjson path")
	cmd.Flags().Bool("typed", false, "decode the body into its response type before printing")
	cmd.Flags().Bool("diff", false, "request the diff media type and print a diffstat")
	cmd.Flags().Bool("escape", false, "percent-encode the path parameters")

	return cmd
}
