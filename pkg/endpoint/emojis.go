package endpoint

var (
	getEmojis = register("emojis", "GetEmojis", MethodGet, "/emojis")
)

func GetEmojis() Endpoint {
	return getEmojis.bind()
}
