package endpoint

var (
	getOrgsorgInteractionLimits           = register("interactions", "GetOrgsorgInteractionLimits", MethodGet, "/orgs/{org}/interaction-limits")
	putOrgsorgInteractionLimits           = register("interactions", "PutOrgsorgInteractionLimits", MethodPut, "/orgs/{org}/interaction-limits")
	deleteOrgsorgInteractionLimits        = register("interactions", "DeleteOrgsorgInteractionLimits", MethodDelete, "/orgs/{org}/interaction-limits")
	getReposownerrepoInteractionLimits    = register("interactions", "GetReposownerrepoInteractionLimits", MethodGet, "/repos/{owner}/{repo}/interaction-limits")
	putReposownerrepoInteractionLimits    = register("interactions", "PutReposownerrepoInteractionLimits", MethodPut, "/repos/{owner}/{repo}/interaction-limits")
	deleteReposownerrepoInteractionLimits = register("interactions", "DeleteReposownerrepoInteractionLimits", MethodDelete, "/repos/{owner}/{repo}/interaction-limits")
	getUserInteractionLimits              = register("interactions", "GetUserInteractionLimits", MethodGet, "/user/interaction-limits")
	putUserInteractionLimits              = register("interactions", "PutUserInteractionLimits", MethodPut, "/user/interaction-limits")
	deleteUserInteractionLimits           = register("interactions", "DeleteUserInteractionLimits", MethodDelete, "/user/interaction-limits")
)

func GetOrgsorgInteractionLimits(org string) Endpoint {
	return getOrgsorgInteractionLimits.bind(org)
}

func PutOrgsorgInteractionLimits(org string) Endpoint {
	return putOrgsorgInteractionLimits.bind(org)
}

func DeleteOrgsorgInteractionLimits(org string) Endpoint {
	return deleteOrgsorgInteractionLimits.bind(org)
}

func GetReposownerrepoInteractionLimits(owner, repo string) Endpoint {
	return getReposownerrepoInteractionLimits.bind(owner, repo)
}

func PutReposownerrepoInteractionLimits(owner, repo string) Endpoint {
	return putReposownerrepoInteractionLimits.bind(owner, repo)
}

func DeleteReposownerrepoInteractionLimits(owner, repo string) Endpoint {
	return deleteReposownerrepoInteractionLimits.bind(owner, repo)
}

func GetUserInteractionLimits() Endpoint {
	return getUserInteractionLimits.bind()
}

func PutUserInteractionLimits() Endpoint {
	return putUserInteractionLimits.bind()
}

func DeleteUserInteractionLimits() Endpoint {
	return deleteUserInteractionLimits.bind()
}
