package endpoint

var (
	getGitignoreTemplates     = register("gitignore", "GetGitignoreTemplates", MethodGet, "/gitignore/templates")
	getGitignoreTemplatesname = register("gitignore", "GetGitignoreTemplatesname", MethodGet, "/gitignore/templates/{name}")
)

func GetGitignoreTemplates() Endpoint {
	return getGitignoreTemplates.bind()
}

func GetGitignoreTemplatesname(name string) Endpoint {
	return getGitignoreTemplatesname.bind(name)
}
