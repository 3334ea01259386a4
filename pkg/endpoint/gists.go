package endpoint

var (
	getGists                           = register("gists", "GetGists", MethodGet, "/gists")
	postGists                          = register("gists", "PostGists", MethodPost, "/gists")
	getGistsPublic                     = register("gists", "GetGistsPublic", MethodGet, "/gists/public")
	getGistsStarred                    = register("gists", "GetGistsStarred", MethodGet, "/gists/starred")
	getGistsgistId                     = register("gists", "GetGistsgistId", MethodGet, "/gists/{gist_id}")
	patchGistsgistId                   = register("gists", "PatchGistsgistId", MethodPatch, "/gists/{gist_id}")
	deleteGistsgistId                  = register("gists", "DeleteGistsgistId", MethodDelete, "/gists/{gist_id}")
	getGistsgistIdComments             = register("gists", "GetGistsgistIdComments", MethodGet, "/gists/{gist_id}/comments")
	postGistsgistIdComments            = register("gists", "PostGistsgistIdComments", MethodPost, "/gists/{gist_id}/comments")
	getGistsgistIdCommentscommentId    = register("gists", "GetGistsgistIdCommentscommentId", MethodGet, "/gists/{gist_id}/comments/{comment_id}")
	patchGistsgistIdCommentscommentId  = register("gists", "PatchGistsgistIdCommentscommentId", MethodPatch, "/gists/{gist_id}/comments/{comment_id}")
	deleteGistsgistIdCommentscommentId = register("gists", "DeleteGistsgistIdCommentscommentId", MethodDelete, "/gists/{gist_id}/comments/{comment_id}")
	getGistsgistIdCommits              = register("gists", "GetGistsgistIdCommits", MethodGet, "/gists/{gist_id}/commits")
	getGistsgistIdForks                = register("gists", "GetGistsgistIdForks", MethodGet, "/gists/{gist_id}/forks")
	postGistsgistIdForks               = register("gists", "PostGistsgistIdForks", MethodPost, "/gists/{gist_id}/forks")
	getGistsgistIdStar                 = register("gists", "GetGistsgistIdStar", MethodGet, "/gists/{gist_id}/star")
	putGistsgistIdStar                 = register("gists", "PutGistsgistIdStar", MethodPut, "/gists/{gist_id}/star")
	deleteGistsgistIdStar              = register("gists", "DeleteGistsgistIdStar", MethodDelete, "/gists/{gist_id}/star")
	getGistsgistIdsha                  = register("gists", "GetGistsgistIdsha", MethodGet, "/gists/{gist_id}/{sha}")
	getUsersusernameGists              = register("gists", "GetUsersusernameGists", MethodGet, "/users/{username}/gists")
)

func GetGists() Endpoint {
	return getGists.bind()
}

func PostGists() Endpoint {
	return postGists.bind()
}

func GetGistsPublic() Endpoint {
	return getGistsPublic.bind()
}

func GetGistsStarred() Endpoint {
	return getGistsStarred.bind()
}

func GetGistsgistId(gistID string) Endpoint {
	return getGistsgistId.bind(gistID)
}

func PatchGistsgistId(gistID string) Endpoint {
	return patchGistsgistId.bind(gistID)
}

func DeleteGistsgistId(gistID string) Endpoint {
	return deleteGistsgistId.bind(gistID)
}

func GetGistsgistIdComments(gistID string) Endpoint {
	return getGistsgistIdComments.bind(gistID)
}

func PostGistsgistIdComments(gistID string) Endpoint {
	return postGistsgistIdComments.bind(gistID)
}

func GetGistsgistIdCommentscommentId(gistID, commentID string) Endpoint {
	return getGistsgistIdCommentscommentId.bind(gistID, commentID)
}

func PatchGistsgistIdCommentscommentId(gistID, commentID string) Endpoint {
	return patchGistsgistIdCommentscommentId.bind(gistID, commentID)
}

func DeleteGistsgistIdCommentscommentId(gistID, commentID string) Endpoint {
	return deleteGistsgistIdCommentscommentId.bind(gistID, commentID)
}

func GetGistsgistIdCommits(gistID string) Endpoint {
	return getGistsgistIdCommits.bind(gistID)
}

func GetGistsgistIdForks(gistID string) Endpoint {
	return getGistsgistIdForks.bind(gistID)
}

func PostGistsgistIdForks(gistID string) Endpoint {
	return postGistsgistIdForks.bind(gistID)
}

func GetGistsgistIdStar(gistID string) Endpoint {
	return getGistsgistIdStar.bind(gistID)
}

func PutGistsgistIdStar(gistID string) Endpoint {
	return putGistsgistIdStar.bind(gistID)
}

func DeleteGistsgistIdStar(gistID string) Endpoint {
	return deleteGistsgistIdStar.bind(gistID)
}

func GetGistsgistIdsha(gistID, sha string) Endpoint {
	return getGistsgistIdsha.bind(gistID, sha)
}

func GetUsersusernameGists(username string) Endpoint {
	return getUsersusernameGists.bind(username)
}
