package endpoint

var (
	get        = register("meta", "Get", MethodGet, "/")
	getMeta    = register("meta", "GetMeta", MethodGet, "/meta")
	getOctocat = register("meta", "GetOctocat", MethodGet, "/octocat")
	getZen     = register("meta", "GetZen", MethodGet, "/zen")
)

func Get() Endpoint {
	return get.bind()
}

func GetMeta() Endpoint {
	return getMeta.bind()
}

func GetOctocat() Endpoint {
	return getOctocat.bind()
}

func GetZen() Endpoint {
	return getZen.bind()
}
