package call

import (
	"ghrest/internal/cli/paramutils"
	"ghrest/internal/errcodes"
	"ghrest/internal/pkg/fs"
	"strings"

	"github.com/pkg/errors"
)

type callCmdParams struct {
	Repository paramutils.RepositoryParams
	Query      map[string]string
	Data       []byte
	Accept     string
	Select     string
	Typed      bool
	Diff       bool
	Escape     bool
}

var filesystem fs.Filesystem = fs.OS{}

// readData returns the request body given with --data. A value starting with
// "@" names a file to read it from.
func readData(d string) ([]byte, error) {
	if !strings.HasPrefix(d, "@") {
		return []byte(d), nil
	}

	data, err := filesystem.ReadFile(d[1:])
	if err != nil {
		return nil, errors.Wrap(err, "reading request body")
	}

	return data, nil
}

func fillFlagCallCmdParams(flags paramutils.FlagRepo, params *callCmdParams) error {
	query, err := paramutils.ParseKeyValues(flags.GetStringArrayOrDefault("query", nil))
	if err != nil {
		return err
	}
	params.Query = query

	if d := flags.GetStringOrDefault("data", ""); d != "" {
		params.Data, err = readData(d)
		if err != nil {
			return err
		}
	}

	params.Accept = flags.GetStringOrDefault("accept", "")
	params.Select = flags.GetStringOrDefault("select", "")
	params.Typed = flags.GetBoolOrDefault("typed", false)
	params.Diff = flags.GetBoolOrDefault("diff", false)
	params.Escape = flags.GetBoolOrDefault("escape", false)

	outputs := 0
	for _, set := range []bool{params.Typed, params.Diff, params.Select != ""} {
		if set {
			outputs++
		}
	}
	if outputs > 1 {
		return errcodes.ErrConflictingOutput
	}

	return nil
}
