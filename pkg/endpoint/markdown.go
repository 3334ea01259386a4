package endpoint

var (
	postMarkdown    = register("markdown", "PostMarkdown", MethodPost, "/markdown")
	postMarkdownRaw = register("markdown", "PostMarkdownRaw", MethodPost, "/markdown/raw")
)

func PostMarkdown() Endpoint {
	return postMarkdown.bind()
}

func PostMarkdownRaw() Endpoint {
	return postMarkdownRaw.bind()
}
