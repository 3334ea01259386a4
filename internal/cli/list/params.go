package list

import (
	"ghrest/internal/cli/paramutils"
	"ghrest/pkg/endpoint"
	"strings"
)

type listCmdParams struct {
	Filter     string
	Method     endpoint.Method
	Category   string
	ShowParams bool
}

func fillFlagListCmdParams(flags paramutils.FlagRepo, args []string, params *listCmdParams) error {
	if len(args) > 0 {
		params.Filter = args[0]
	}
	params.Category = flags.GetStringOrDefault("category", "")
	params.ShowParams = flags.GetBoolOrDefault("params", false)

	if m := flags.GetStringOrDefault("method", ""); m != "" {
		method, err := endpoint.ParseMethod(m)
		if err != nil {
			return err
		}
		params.Method = method
	}

	return nil
}

func (p *listCmdParams) matches(r *endpoint.Route) bool {
	if p.Method != "" && r.Method != p.Method {
		return false
	}
	if p.Category != "" && !strings.EqualFold(r.Category, p.Category) {
		return false
	}
	if p.Filter == "" {
		return true
	}

	f := strings.ToLower(p.Filter)
	return strings.Contains(strings.ToLower(r.Name), f) ||
		strings.Contains(strings.ToLower(r.Template), f)
}
