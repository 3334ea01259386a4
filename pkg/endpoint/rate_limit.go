package endpoint

var (
	getRateLimit = register("rate-limit", "GetRateLimit", MethodGet, "/rate_limit")
)

func GetRateLimit() Endpoint {
	return getRateLimit.bind()
}
