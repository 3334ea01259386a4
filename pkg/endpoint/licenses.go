package endpoint

var (
	getLicenses              = register("licenses", "GetLicenses", MethodGet, "/licenses")
	getLicenseslicense       = register("licenses", "GetLicenseslicense", MethodGet, "/licenses/{license}")
	getReposownerrepoLicense = register("licenses", "GetReposownerrepoLicense", MethodGet, "/repos/{owner}/{repo}/license")
)

func GetLicenses() Endpoint {
	return getLicenses.bind()
}

func GetLicenseslicense(license string) Endpoint {
	return getLicenseslicense.bind(license)
}

func GetReposownerrepoLicense(owner, repo string) Endpoint {
	return getReposownerrepoLicense.bind(owner, repo)
}
