package paramutils

import (
	"ghrest/internal/configutils"
	"ghrest/internal/errcodes"
	"ghrest/internal/gitutils"
	"ghrest/pkg/endpoint"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type FlagRepo interface {
	GetStringOrDefault(flag, d string) string
	GetBoolOrDefault(flag string, d bool) bool
	GetStringArrayOrDefault(flag string, d []string) []string
}

func NewFlagRepo(flags *pflag.FlagSet) FlagRepo {
	return &PFlagSetWrapper{Flags: flags}
}

type PFlagSetWrapper struct {
	Flags *pflag.FlagSet
}

func (fs *PFlagSetWrapper) GetStringOrDefault(flag, d string) string {
	s, err := fs.Flags.GetString(flag)
	if err != nil || s == "" {
		return d
	}

	return s
}

func (fs *PFlagSetWrapper) GetBoolOrDefault(flag string, d bool) bool {
	s, err := fs.Flags.GetBool(flag)
	if err != nil {
		return d
	}

	return s
}

func (fs *PFlagSetWrapper) GetStringArrayOrDefault(flag string, d []string) []string {
	s, err := fs.Flags.GetStringArray(flag)
	if err != nil || len(s) == 0 {
		return d
	}

	return s
}

// RepositoryParams are the values used for {owner} and {repo} placeholders
// the user did not pass.
type RepositoryParams struct {
	Owner string
	Repo  string
}

var getWorkingDirectoryRemote = gitutils.GetWorkingDirectoryRemote

// FillRepositoryParams reads the owner and repository from the flags, then
// the configuration, then the origin remote of the working directory.
func FillRepositoryParams(flags FlagRepo, params *RepositoryParams) {
	params.Owner = flags.GetStringOrDefault("owner", viper.GetString(configutils.KeyDefaultOwner))
	params.Repo = flags.GetStringOrDefault("repo", viper.GetString(configutils.KeyDefaultRepo))
	if params.Owner != "" && params.Repo != "" {
		return
	}

	remote, err := getWorkingDirectoryRemote()
	if err != nil {
		log.Debug().Err(err).Msg("no default repository from git remotes")
		return
	}
	if params.Owner == "" {
		params.Owner = remote.Owner
	}
	if params.Repo == "" {
		params.Repo = remote.Repo
	}
}

func (p *RepositoryParams) defaultFor(placeholder string) string {
	switch placeholder {
	case "owner":
		return p.Owner
	case "repo":
		return p.Repo
	}
	return ""
}

// PromptFunc asks for the value of a placeholder.
type PromptFunc func(placeholder string) (string, error)

// FillPathParams assigns values to every placeholder of r. When fewer args
// than placeholders are given, {owner} and {repo} take their defaults first,
// the args fill the remaining placeholders in order and prompt is asked for
// anything left. A nil prompt makes a missing value an error.
func FillPathParams(
	r *endpoint.Route,
	args []string,
	defaults *RepositoryParams,
	prompt PromptFunc,
) ([]string, error) {
	if len(args) > len(r.Params) {
		return nil, errors.Wrapf(errcodes.ErrTooManyParams, "%s takes %d", r.Name, len(r.Params))
	}
	if len(args) == len(r.Params) {
		return args, nil
	}

	values := make([]string, len(r.Params))
	filled := make([]bool, len(r.Params))
	need := len(r.Params) - len(args)
	if defaults != nil {
		for i, p := range r.Params {
			if need == 0 {
				break
			}
			if d := defaults.defaultFor(p); d != "" {
				values[i], filled[i] = d, true
				need--
			}
		}
	}

	next := 0
	for i, p := range r.Params {
		if filled[i] {
			continue
		}
		if next < len(args) {
			values[i] = args[next]
			next++
			continue
		}
		if prompt == nil {
			return nil, errors.Wrap(errcodes.ErrMissingParam, p)
		}
		v, err := prompt(p)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return values, nil
}

// ParseKeyValues reads key=value pairs. Later keys win.
func ParseKeyValues(pairs []string) (map[string]string, error) {
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, errors.Wrap(errcodes.ErrQueryMustBeKeyValue, p)
		}
		m[k] = v
	}

	return m, nil
}

// LookupRoute finds a route by constructor name, ignoring case.
func LookupRoute(name string) (*endpoint.Route, error) {
	if name == "" {
		return nil, errcodes.ErrMissingEndpoint
	}
	r, ok := endpoint.Lookup(name)
	if !ok {
		return nil, errors.Wrap(errcodes.ErrUnknownEndpoint, name)
	}

	return r, nil
}

func ParseNameArg(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}

	return args[0], args[1:]
}
