package endpoint

var (
	getSearchCode         = register("search", "GetSearchCode", MethodGet, "/search/code")
	getSearchCommits      = register("search", "GetSearchCommits", MethodGet, "/search/commits")
	getSearchIssues       = register("search", "GetSearchIssues", MethodGet, "/search/issues")
	getSearchLabels       = register("search", "GetSearchLabels", MethodGet, "/search/labels")
	getSearchRepositories = register("search", "GetSearchRepositories", MethodGet, "/search/repositories")
	getSearchTopics       = register("search", "GetSearchTopics", MethodGet, "/search/topics")
	getSearchUsers        = register("search", "GetSearchUsers", MethodGet, "/search/users")
)

func GetSearchCode() Endpoint {
	return getSearchCode.bind()
}

func GetSearchCommits() Endpoint {
	return getSearchCommits.bind()
}

func GetSearchIssues() Endpoint {
	return getSearchIssues.bind()
}

func GetSearchLabels() Endpoint {
	return getSearchLabels.bind()
}

func GetSearchRepositories() Endpoint {
	return getSearchRepositories.bind()
}

func GetSearchTopics() Endpoint {
	return getSearchTopics.bind()
}

func GetSearchUsers() Endpoint {
	return getSearchUsers.bind()
}
