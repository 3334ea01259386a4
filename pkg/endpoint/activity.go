package endpoint

var (
	getEvents                                      = register("activity", "GetEvents", MethodGet, "/events")
	getFeeds                                       = register("activity", "GetFeeds", MethodGet, "/feeds")
	getNetworksownerrepoEvents                     = register("activity", "GetNetworksownerrepoEvents", MethodGet, "/networks/{owner}/{repo}/events")
	getNotifications                               = register("activity", "GetNotifications", MethodGet, "/notifications")
	putNotifications                               = register("activity", "PutNotifications", MethodPut, "/notifications")
	getNotificationsThreadsthreadId                = register("activity", "GetNotificationsThreadsthreadId", MethodGet, "/notifications/threads/{thread_id}")
	patchNotificationsThreadsthreadId              = register("activity", "PatchNotificationsThreadsthreadId", MethodPatch, "/notifications/threads/{thread_id}")
	getNotificationsThreadsthreadIdSubscription    = register("activity", "GetNotificationsThreadsthreadIdSubscription", MethodGet, "/notifications/threads/{thread_id}/subscription")
	putNotificationsThreadsthreadIdSubscription    = register("activity", "PutNotificationsThreadsthreadIdSubscription", MethodPut, "/notifications/threads/{thread_id}/subscription")
	deleteNotificationsThreadsthreadIdSubscription = register("activity", "DeleteNotificationsThreadsthreadIdSubscription", MethodDelete, "/notifications/threads/{thread_id}/subscription")
	getOrgsorgEvents                               = register("activity", "GetOrgsorgEvents", MethodGet, "/orgs/{org}/events")
	getReposownerrepoEvents                        = register("activity", "GetReposownerrepoEvents", MethodGet, "/repos/{owner}/{repo}/events")
	getReposownerrepoNotifications                 = register("activity", "GetReposownerrepoNotifications", MethodGet, "/repos/{owner}/{repo}/notifications")
	putReposownerrepoNotifications                 = register("activity", "PutReposownerrepoNotifications", MethodPut, "/repos/{owner}/{repo}/notifications")
	getReposownerrepoStargazers                    = register("activity", "GetReposownerrepoStargazers", MethodGet, "/repos/{owner}/{repo}/stargazers")
	getReposownerrepoSubscribers                   = register("activity", "GetReposownerrepoSubscribers", MethodGet, "/repos/{owner}/{repo}/subscribers")
	getReposownerrepoSubscription                  = register("activity", "GetReposownerrepoSubscription", MethodGet, "/repos/{owner}/{repo}/subscription")
	putReposownerrepoSubscription                  = register("activity", "PutReposownerrepoSubscription", MethodPut, "/repos/{owner}/{repo}/subscription")
	deleteReposownerrepoSubscription               = register("activity", "DeleteReposownerrepoSubscription", MethodDelete, "/repos/{owner}/{repo}/subscription")
	getUserStarred                                 = register("activity", "GetUserStarred", MethodGet, "/user/starred")
	getUserStarredownerrepo                        = register("activity", "GetUserStarredownerrepo", MethodGet, "/user/starred/{owner}/{repo}")
	putUserStarredownerrepo                        = register("activity", "PutUserStarredownerrepo", MethodPut, "/user/starred/{owner}/{repo}")
	deleteUserStarredownerrepo                     = register("activity", "DeleteUserStarredownerrepo", MethodDelete, "/user/starred/{owner}/{repo}")
	getUserSubscriptions                           = register("activity", "GetUserSubscriptions", MethodGet, "/user/subscriptions")
	getUsersusernameEvents                         = register("activity", "GetUsersusernameEvents", MethodGet, "/users/{username}/events")
	getUsersusernameEventsOrgsorg                  = register("activity", "GetUsersusernameEventsOrgsorg", MethodGet, "/users/{username}/events/orgs/{org}")
	getUsersusernameEventsPublic                   = register("activity", "GetUsersusernameEventsPublic", MethodGet, "/users/{username}/events/public")
	getUsersusernameReceivedEvents                 = register("activity", "GetUsersusernameReceivedEvents", MethodGet, "/users/{username}/received_events")
	getUsersusernameReceivedEventsPublic           = register("activity", "GetUsersusernameReceivedEventsPublic", MethodGet, "/users/{username}/received_events/public")
	getUsersusernameStarred                        = register("activity", "GetUsersusernameStarred", MethodGet, "/users/{username}/starred")
	getUsersusernameSubscriptions                  = register("activity", "GetUsersusernameSubscriptions", MethodGet, "/users/{username}/subscriptions")
)

func GetEvents() Endpoint {
	return getEvents.bind()
}

func GetFeeds() Endpoint {
	return getFeeds.bind()
}

func GetNetworksownerrepoEvents(owner, repo string) Endpoint {
	return getNetworksownerrepoEvents.bind(owner, repo)
}

func GetNotifications() Endpoint {
	return getNotifications.bind()
}

func PutNotifications() Endpoint {
	return putNotifications.bind()
}

func GetNotificationsThreadsthreadId(threadID string) Endpoint {
	return getNotificationsThreadsthreadId.bind(threadID)
}

func PatchNotificationsThreadsthreadId(threadID string) Endpoint {
	return patchNotificationsThreadsthreadId.bind(threadID)
}

func GetNotificationsThreadsthreadIdSubscription(threadID string) Endpoint {
	return getNotificationsThreadsthreadIdSubscription.bind(threadID)
}

func PutNotificationsThreadsthreadIdSubscription(threadID string) Endpoint {
	return putNotificationsThreadsthreadIdSubscription.bind(threadID)
}

func DeleteNotificationsThreadsthreadIdSubscription(threadID string) Endpoint {
	return deleteNotificationsThreadsthreadIdSubscription.bind(threadID)
}

func GetOrgsorgEvents(org string) Endpoint {
	return getOrgsorgEvents.bind(org)
}

func GetReposownerrepoEvents(owner, repo string) Endpoint {
	return getReposownerrepoEvents.bind(owner, repo)
}

func GetReposownerrepoNotifications(owner, repo string) Endpoint {
	return getReposownerrepoNotifications.bind(owner, repo)
}

func PutReposownerrepoNotifications(owner, repo string) Endpoint {
	return putReposownerrepoNotifications.bind(owner, repo)
}

func GetReposownerrepoStargazers(owner, repo string) Endpoint {
	return getReposownerrepoStargazers.bind(owner, repo)
}

func GetReposownerrepoSubscribers(owner, repo string) Endpoint {
	return getReposownerrepoSubscribers.bind(owner, repo)
}

func GetReposownerrepoSubscription(owner, repo string) Endpoint {
	return getReposownerrepoSubscription.bind(owner, repo)
}

func PutReposownerrepoSubscription(owner, repo string) Endpoint {
	return putReposownerrepoSubscription.bind(owner, repo)
}

func DeleteReposownerrepoSubscription(owner, repo string) Endpoint {
	return deleteReposownerrepoSubscription.bind(owner, repo)
}

func GetUserStarred() Endpoint {
	return getUserStarred.bind()
}

func GetUserStarredownerrepo(owner, repo string) Endpoint {
	return getUserStarredownerrepo.bind(owner, repo)
}

func PutUserStarredownerrepo(owner, repo string) Endpoint {
	return putUserStarredownerrepo.bind(owner, repo)
}

func DeleteUserStarredownerrepo(owner, repo string) Endpoint {
	return deleteUserStarredownerrepo.bind(owner, repo)
}

func GetUserSubscriptions() Endpoint {
	return getUserSubscriptions.bind()
}

func GetUsersusernameEvents(username string) Endpoint {
	return getUsersusernameEvents.bind(username)
}

func GetUsersusernameEventsOrgsorg(username, org string) Endpoint {
	return getUsersusernameEventsOrgsorg.bind(username, org)
}

func GetUsersusernameEventsPublic(username string) Endpoint {
	return getUsersusernameEventsPublic.bind(username)
}

func GetUsersusernameReceivedEvents(username string) Endpoint {
	return getUsersusernameReceivedEvents.bind(username)
}

func GetUsersusernameReceivedEventsPublic(username string) Endpoint {
	return getUsersusernameReceivedEventsPublic.bind(username)
}

func GetUsersusernameStarred(username string) Endpoint {
	return getUsersusernameStarred.bind(username)
}

func GetUsersusernameSubscriptions(username string) Endpoint {
	return getUsersusernameSubscriptions.bind(username)
}
