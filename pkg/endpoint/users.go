package endpoint

var (
	getUser                             = register("users", "GetUser", MethodGet, "/user")
	patchUser                           = register("users", "PatchUser", MethodPatch, "/user")
	getUserBlocks                       = register("users", "GetUserBlocks", MethodGet, "/user/blocks")
	getUserBlocksusername               = register("users", "GetUserBlocksusername", MethodGet, "/user/blocks/{username}")
	putUserBlocksusername               = register("users", "PutUserBlocksusername", MethodPut, "/user/blocks/{username}")
	deleteUserBlocksusername            = register("users", "DeleteUserBlocksusername", MethodDelete, "/user/blocks/{username}")
	patchUserEmailVisibility            = register("users", "PatchUserEmailVisibility", MethodPatch, "/user/email/visibility")
	getUserEmails                       = register("users", "GetUserEmails", MethodGet, "/user/emails")
	postUserEmails                      = register("users", "PostUserEmails", MethodPost, "/user/emails")
	deleteUserEmails                    = register("users", "DeleteUserEmails", MethodDelete, "/user/emails")
	getUserFollowers                    = register("users", "GetUserFollowers", MethodGet, "/user/followers")
	getUserFollowing                    = register("users", "GetUserFollowing", MethodGet, "/user/following")
	getUserFollowingusername            = register("users", "GetUserFollowingusername", MethodGet, "/user/following/{username}")
	putUserFollowingusername            = register("users", "PutUserFollowingusername", MethodPut, "/user/following/{username}")
	deleteUserFollowingusername         = register("users", "DeleteUserFollowingusername", MethodDelete, "/user/following/{username}")
	getUserGpgKeys                      = register("users", "GetUserGpgKeys", MethodGet, "/user/gpg_keys")
	postUserGpgKeys                     = register("users", "PostUserGpgKeys", MethodPost, "/user/gpg_keys")
	getUserGpgKeysgpgKeyId              = register("users", "GetUserGpgKeysgpgKeyId", MethodGet, "/user/gpg_keys/{gpg_key_id}")
	deleteUserGpgKeysgpgKeyId           = register("users", "DeleteUserGpgKeysgpgKeyId", MethodDelete, "/user/gpg_keys/{gpg_key_id}")
	getUserKeys                         = register("users", "GetUserKeys", MethodGet, "/user/keys")
	postUserKeys                        = register("users", "PostUserKeys", MethodPost, "/user/keys")
	getUserKeyskeyId                    = register("users", "GetUserKeyskeyId", MethodGet, "/user/keys/{key_id}")
	deleteUserKeyskeyId                 = register("users", "DeleteUserKeyskeyId", MethodDelete, "/user/keys/{key_id}")
	getUserPublicEmails                 = register("users", "GetUserPublicEmails", MethodGet, "/user/public_emails")
	getUsers                            = register("users", "GetUsers", MethodGet, "/users")
	getUsersusername                    = register("users", "GetUsersusername", MethodGet, "/users/{username}")
	getUsersusernameFollowers           = register("users", "GetUsersusernameFollowers", MethodGet, "/users/{username}/followers")
	getUsersusernameFollowing           = register("users", "GetUsersusernameFollowing", MethodGet, "/users/{username}/following")
	getUsersusernameFollowingtargetUser = register("users", "GetUsersusernameFollowingtargetUser", MethodGet, "/users/{username}/following/{target_user}")
	getUsersusernameGpgKeys             = register("users", "GetUsersusernameGpgKeys", MethodGet, "/users/{username}/gpg_keys")
	getUsersusernameHovercard           = register("users", "GetUsersusernameHovercard", MethodGet, "/users/{username}/hovercard")
	getUsersusernameKeys                = register("users", "GetUsersusernameKeys", MethodGet, "/users/{username}/keys")
)

func GetUser() Endpoint {
	return getUser.bind()
}

func PatchUser() Endpoint {
	return patchUser.bind()
}

func GetUserBlocks() Endpoint {
	return getUserBlocks.bind()
}

func GetUserBlocksusername(username string) Endpoint {
	return getUserBlocksusername.bind(username)
}

func PutUserBlocksusername(username string) Endpoint {
	return putUserBlocksusername.bind(username)
}

func DeleteUserBlocksusername(username string) Endpoint {
	return deleteUserBlocksusername.bind(username)
}

func PatchUserEmailVisibility() Endpoint {
	return patchUserEmailVisibility.bind()
}

func GetUserEmails() Endpoint {
	return getUserEmails.bind()
}

func PostUserEmails() Endpoint {
	return postUserEmails.bind()
}

func DeleteUserEmails() Endpoint {
	return deleteUserEmails.bind()
}

func GetUserFollowers() Endpoint {
	return getUserFollowers.bind()
}

func GetUserFollowing() Endpoint {
	return getUserFollowing.bind()
}

func GetUserFollowingusername(username string) Endpoint {
	return getUserFollowingusername.bind(username)
}

func PutUserFollowingusername(username string) Endpoint {
	return putUserFollowingusername.bind(username)
}

func DeleteUserFollowingusername(username string) Endpoint {
	return deleteUserFollowingusername.bind(username)
}

func GetUserGpgKeys() Endpoint {
	return getUserGpgKeys.bind()
}

func PostUserGpgKeys() Endpoint {
	return postUserGpgKeys.bind()
}

func GetUserGpgKeysgpgKeyId(gpgKeyID string) Endpoint {
	return getUserGpgKeysgpgKeyId.bind(gpgKeyID)
}

func DeleteUserGpgKeysgpgKeyId(gpgKeyID string) Endpoint {
	return deleteUserGpgKeysgpgKeyId.bind(gpgKeyID)
}

func GetUserKeys() Endpoint {
	return getUserKeys.bind()
}

func PostUserKeys() Endpoint {
	return postUserKeys.bind()
}

func GetUserKeyskeyId(keyID string) Endpoint {
	return getUserKeyskeyId.bind(keyID)
}

func DeleteUserKeyskeyId(keyID string) Endpoint {
	return deleteUserKeyskeyId.bind(keyID)
}

func GetUserPublicEmails() Endpoint {
	return getUserPublicEmails.bind()
}

func GetUsers() Endpoint {
	return getUsers.bind()
}

func GetUsersusername(username string) Endpoint {
	return getUsersusername.bind(username)
}

func GetUsersusernameFollowers(username string) Endpoint {
	return getUsersusernameFollowers.bind(username)
}

func GetUsersusernameFollowing(username string) Endpoint {
	return getUsersusernameFollowing.bind(username)
}

func GetUsersusernameFollowingtargetUser(username, targetUser string) Endpoint {
	return getUsersusernameFollowingtargetUser.bind(username, targetUser)
}

func GetUsersusernameGpgKeys(username string) Endpoint {
	return getUsersusernameGpgKeys.bind(username)
}

func GetUsersusernameHovercard(username string) Endpoint {
	return getUsersusernameHovercard.bind(username)
}

func GetUsersusernameKeys(username string) Endpoint {
	return getUsersusernameKeys.bind(username)
}
