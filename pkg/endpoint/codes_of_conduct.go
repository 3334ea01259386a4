package endpoint

var (
	getCodesOfConduct                       = register("codes-of-conduct", "GetCodesOfConduct", MethodGet, "/codes_of_conduct")
	getCodesOfConductkey                    = register("codes-of-conduct", "GetCodesOfConductkey", MethodGet, "/codes_of_conduct/{key}")
	getReposownerrepoCommunityCodeOfConduct = register("codes-of-conduct", "GetReposownerrepoCommunityCodeOfConduct", MethodGet, "/repos/{owner}/{repo}/community/code_of_conduct")
)

func GetCodesOfConduct() Endpoint {
	return getCodesOfConduct.bind()
}

func GetCodesOfConductkey(key string) Endpoint {
	return getCodesOfConductkey.bind(key)
}

func GetReposownerrepoCommunityCodeOfConduct(owner, repo string) Endpoint {
	return getReposownerrepoCommunityCodeOfConduct.bind(owner, repo)
}
