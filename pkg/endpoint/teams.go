package endpoint

var (
	getOrgsorgTeamSyncGroups                                                   = register("teams", "GetOrgsorgTeamSyncGroups", MethodGet, "/orgs/{org}/team-sync/groups")
	getOrgsorgTeams                                                            = register("teams", "GetOrgsorgTeams", MethodGet, "/orgs/{org}/teams")
	postOrgsorgTeams                                                           = register("teams", "PostOrgsorgTeams", MethodPost, "/orgs/{org}/teams")
	getOrgsorgTeamsteamSlug                                                    = register("teams", "GetOrgsorgTeamsteamSlug", MethodGet, "/orgs/{org}/teams/{team_slug}")
	patchOrgsorgTeamsteamSlug                                                  = register("teams", "PatchOrgsorgTeamsteamSlug", MethodPatch, "/orgs/{org}/teams/{team_slug}")
	deleteOrgsorgTeamsteamSlug                                                 = register("teams", "DeleteOrgsorgTeamsteamSlug", MethodDelete, "/orgs/{org}/teams/{team_slug}")
	getOrgsorgTeamsteamSlugDiscussions                                         = register("teams", "GetOrgsorgTeamsteamSlugDiscussions", MethodGet, "/orgs/{org}/teams/{team_slug}/discussions")
	postOrgsorgTeamsteamSlugDiscussions                                        = register("teams", "PostOrgsorgTeamsteamSlugDiscussions", MethodPost, "/orgs/{org}/teams/{team_slug}/discussions")
	getOrgsorgTeamsteamSlugDiscussionsdiscussionNumber                         = register("teams", "GetOrgsorgTeamsteamSlugDiscussionsdiscussionNumber", MethodGet, "/orgs/{org}/teams/{team_slug}/discussions/{discussion_number}")
	patchOrgsorgTeamsteamSlugDiscussionsdiscussionNumber                       = register("teams", "PatchOrgsorgTeamsteamSlugDiscussionsdiscussionNumber", MethodPatch, "/orgs/{org}/teams/{team_slug}/discussions/{discussion_number}")
	deleteOrgsorgTeamsteamSlugDiscussionsdiscussionNumber                      = register("teams", "DeleteOrgsorgTeamsteamSlugDiscussionsdiscussionNumber", MethodDelete, "/orgs/{org}/teams/{team_slug}/discussions/{discussion_number}")
	getOrgsorgTeamsteamSlugDiscussionsdiscussionNumberComments                 = register("teams", "GetOrgsorgTeamsteamSlugDiscussionsdiscussionNumberComments", MethodGet, "/orgs/{org}/teams/{team_slug}/discussions/{discussion_number}/comments")
	postOrgsorgTeamsteamSlugDiscussionsdiscussionNumberComments                = register("teams", "PostOrgsorgTeamsteamSlugDiscussionsdiscussionNumberComments", MethodPost, "/orgs/{org}/teams/{team_slug}/discussions/{discussion_number}/comments")
	getOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumber    = register("teams", "GetOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumber", MethodGet, "/orgs/{org}/teams/{team_slug}/discussions/{discussion_number}/comments/{comment_number}")
	patchOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumber  = register("teams", "PatchOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumber", MethodPatch, "/orgs/{org}/teams/{team_slug}/discussions/{discussion_number}/comments/{comment_number}")
	deleteOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumber = register("teams", "DeleteOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumber", MethodDelete, "/orgs/{org}/teams/{team_slug}/discussions/{discussion_number}/comments/{comment_number}")
	getOrgsorgTeamsteamSlugInvitations                                         = register("teams", "GetOrgsorgTeamsteamSlugInvitations", MethodGet, "/orgs/{org}/teams/{team_slug}/invitations")
	getOrgsorgTeamsteamSlugMembers                                             = register("teams", "GetOrgsorgTeamsteamSlugMembers", MethodGet, "/orgs/{org}/teams/{team_slug}/members")
	getOrgsorgTeamsteamSlugMembershipsusername                                 = register("teams", "GetOrgsorgTeamsteamSlugMembershipsusername", MethodGet, "/orgs/{org}/teams/{team_slug}/memberships/{username}")
	putOrgsorgTeamsteamSlugMembershipsusername                                 = register("teams", "PutOrgsorgTeamsteamSlugMembershipsusername", MethodPut, "/orgs/{org}/teams/{team_slug}/memberships/{username}")
	deleteOrgsorgTeamsteamSlugMembershipsusername                              = register("teams", "DeleteOrgsorgTeamsteamSlugMembershipsusername", MethodDelete, "/orgs/{org}/teams/{team_slug}/memberships/{username}")
	getOrgsorgTeamsteamSlugProjects                                            = register("teams", "GetOrgsorgTeamsteamSlugProjects", MethodGet, "/orgs/{org}/teams/{team_slug}/projects")
	getOrgsorgTeamsteamSlugProjectsprojectId                                   = register("teams", "GetOrgsorgTeamsteamSlugProjectsprojectId", MethodGet, "/orgs/{org}/teams/{team_slug}/projects/{project_id}")
	putOrgsorgTeamsteamSlugProjectsprojectId                                   = register("teams", "PutOrgsorgTeamsteamSlugProjectsprojectId", MethodPut, "/orgs/{org}/teams/{team_slug}/projects/{project_id}")
	deleteOrgsorgTeamsteamSlugProjectsprojectId                                = register("teams", "DeleteOrgsorgTeamsteamSlugProjectsprojectId", MethodDelete, "/orgs/{org}/teams/{team_slug}/projects/{project_id}")
	getOrgsorgTeamsteamSlugRepos                                               = register("teams", "GetOrgsorgTeamsteamSlugRepos", MethodGet, "/orgs/{org}/teams/{team_slug}/repos")
	getOrgsorgTeamsteamSlugReposownerrepo                                      = register("teams", "GetOrgsorgTeamsteamSlugReposownerrepo", MethodGet, "/orgs/{org}/teams/{team_slug}/repos/{owner}/{repo}")
	putOrgsorgTeamsteamSlugReposownerrepo                                      = register("teams", "PutOrgsorgTeamsteamSlugReposownerrepo", MethodPut, "/orgs/{org}/teams/{team_slug}/repos/{owner}/{repo}")
	deleteOrgsorgTeamsteamSlugReposownerrepo                                   = register("teams", "DeleteOrgsorgTeamsteamSlugReposownerrepo", MethodDelete, "/orgs/{org}/teams/{team_slug}/repos/{owner}/{repo}")
	getOrgsorgTeamsteamSlugTeamSyncGroupMappings                               = register("teams", "GetOrgsorgTeamsteamSlugTeamSyncGroupMappings", MethodGet, "/orgs/{org}/teams/{team_slug}/team-sync/group-mappings")
	patchOrgsorgTeamsteamSlugTeamSyncGroupMappings                             = register("teams", "PatchOrgsorgTeamsteamSlugTeamSyncGroupMappings", MethodPatch, "/orgs/{org}/teams/{team_slug}/team-sync/group-mappings")
	getOrgsorgTeamsteamSlugTeams                                               = register("teams", "GetOrgsorgTeamsteamSlugTeams", MethodGet, "/orgs/{org}/teams/{team_slug}/teams")
	getTeamsteamId                                                             = register("teams", "GetTeamsteamId", MethodGet, "/teams/{team_id}")
	patchTeamsteamId                                                           = register("teams", "PatchTeamsteamId", MethodPatch, "/teams/{team_id}")
	deleteTeamsteamId                                                          = register("teams", "DeleteTeamsteamId", MethodDelete, "/teams/{team_id}")
	getTeamsteamIdDiscussions                                                  = register("teams", "GetTeamsteamIdDiscussions", MethodGet, "/teams/{team_id}/discussions")
	postTeamsteamIdDiscussions                                                 = register("teams", "PostTeamsteamIdDiscussions", MethodPost, "/teams/{team_id}/discussions")
	getTeamsteamIdDiscussionsdiscussionNumber                                  = register("teams", "GetTeamsteamIdDiscussionsdiscussionNumber", MethodGet, "/teams/{team_id}/discussions/{discussion_number}")
	patchTeamsteamIdDiscussionsdiscussionNumber                                = register("teams", "PatchTeamsteamIdDiscussionsdiscussionNumber", MethodPatch, "/teams/{team_id}/discussions/{discussion_number}")
	deleteTeamsteamIdDiscussionsdiscussionNumber                               = register("teams", "DeleteTeamsteamIdDiscussionsdiscussionNumber", MethodDelete, "/teams/{team_id}/discussions/{discussion_number}")
	getTeamsteamIdDiscussionsdiscussionNumberComments                          = register("teams", "GetTeamsteamIdDiscussionsdiscussionNumberComments", MethodGet, "/teams/{team_id}/discussions/{discussion_number}/comments")
	postTeamsteamIdDiscussionsdiscussionNumberComments                         = register("teams", "PostTeamsteamIdDiscussionsdiscussionNumberComments", MethodPost, "/teams/{team_id}/discussions/{discussion_number}/comments")
	getTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumber             = register("teams", "GetTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumber", MethodGet, "/teams/{team_id}/discussions/{discussion_number}/comments/{comment_number}")
	patchTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumber           = register("teams", "PatchTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumber", MethodPatch, "/teams/{team_id}/discussions/{discussion_number}/comments/{comment_number}")
	deleteTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumber          = register("teams", "DeleteTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumber", MethodDelete, "/teams/{team_id}/discussions/{discussion_number}/comments/{comment_number}")
	getTeamsteamIdInvitations                                                  = register("teams", "GetTeamsteamIdInvitations", MethodGet, "/teams/{team_id}/invitations")
	getTeamsteamIdMembers                                                      = register("teams", "GetTeamsteamIdMembers", MethodGet, "/teams/{team_id}/members")
	getTeamsteamIdMembersusername                                              = register("teams", "GetTeamsteamIdMembersusername", MethodGet, "/teams/{team_id}/members/{username}")
	putTeamsteamIdMembersusername                                              = register("teams", "PutTeamsteamIdMembersusername", MethodPut, "/teams/{team_id}/members/{username}")
	deleteTeamsteamIdMembersusername                                           = register("teams", "DeleteTeamsteamIdMembersusername", MethodDelete, "/teams/{team_id}/members/{username}")
	getTeamsteamIdMembershipsusername                                          = register("teams", "GetTeamsteamIdMembershipsusername", MethodGet, "/teams/{team_id}/memberships/{username}")
	putTeamsteamIdMembershipsusername                                          = register("teams", "PutTeamsteamIdMembershipsusername", MethodPut, "/teams/{team_id}/memberships/{username}")
	deleteTeamsteamIdMembershipsusername                                       = register("teams", "DeleteTeamsteamIdMembershipsusername", MethodDelete, "/teams/{team_id}/memberships/{username}")
	getTeamsteamIdProjects                                                     = register("teams", "GetTeamsteamIdProjects", MethodGet, "/teams/{team_id}/projects")
	getTeamsteamIdProjectsprojectId                                            = register("teams", "GetTeamsteamIdProjectsprojectId", MethodGet, "/teams/{team_id}/projects/{project_id}")
	putTeamsteamIdProjectsprojectId                                            = register("teams", "PutTeamsteamIdProjectsprojectId", MethodPut, "/teams/{team_id}/projects/{project_id}")
	deleteTeamsteamIdProjectsprojectId                                         = register("teams", "DeleteTeamsteamIdProjectsprojectId", MethodDelete, "/teams/{team_id}/projects/{project_id}")
	getTeamsteamIdRepos                                                        = register("teams", "GetTeamsteamIdRepos", MethodGet, "/teams/{team_id}/repos")
	getTeamsteamIdReposownerrepo                                               = register("teams", "GetTeamsteamIdReposownerrepo", MethodGet, "/teams/{team_id}/repos/{owner}/{repo}")
	putTeamsteamIdReposownerrepo                                               = register("teams", "PutTeamsteamIdReposownerrepo", MethodPut, "/teams/{team_id}/repos/{owner}/{repo}")
	deleteTeamsteamIdReposownerrepo                                            = register("teams", "DeleteTeamsteamIdReposownerrepo", MethodDelete, "/teams/{team_id}/repos/{owner}/{repo}")
	getTeamsteamIdTeamSyncGroupMappings                                        = register("teams", "GetTeamsteamIdTeamSyncGroupMappings", MethodGet, "/teams/{team_id}/team-sync/group-mappings")
	patchTeamsteamIdTeamSyncGroupMappings                                      = register("teams", "PatchTeamsteamIdTeamSyncGroupMappings", MethodPatch, "/teams/{team_id}/team-sync/group-mappings")
	getTeamsteamIdTeams                                                        = register("teams", "GetTeamsteamIdTeams", MethodGet, "/teams/{team_id}/teams")
	getUserTeams                                                               = register("teams", "GetUserTeams", MethodGet, "/user/teams")
)

func GetOrgsorgTeamSyncGroups(org string) Endpoint {
	return getOrgsorgTeamSyncGroups.bind(org)
}

func GetOrgsorgTeams(org string) Endpoint {
	return getOrgsorgTeams.bind(org)
}

func PostOrgsorgTeams(org string) Endpoint {
	return postOrgsorgTeams.bind(org)
}

func GetOrgsorgTeamsteamSlug(org, teamSlug string) Endpoint {
	return getOrgsorgTeamsteamSlug.bind(org, teamSlug)
}

func PatchOrgsorgTeamsteamSlug(org, teamSlug string) Endpoint {
	return patchOrgsorgTeamsteamSlug.bind(org, teamSlug)
}

func DeleteOrgsorgTeamsteamSlug(org, teamSlug string) Endpoint {
	return deleteOrgsorgTeamsteamSlug.bind(org, teamSlug)
}

func GetOrgsorgTeamsteamSlugDiscussions(org, teamSlug string) Endpoint {
	return getOrgsorgTeamsteamSlugDiscussions.bind(org, teamSlug)
}

func PostOrgsorgTeamsteamSlugDiscussions(org, teamSlug string) Endpoint {
	return postOrgsorgTeamsteamSlugDiscussions.bind(org, teamSlug)
}

func GetOrgsorgTeamsteamSlugDiscussionsdiscussionNumber(org, teamSlug, discussionNumber string) Endpoint {
	return getOrgsorgTeamsteamSlugDiscussionsdiscussionNumber.bind(org, teamSlug, discussionNumber)
}

func PatchOrgsorgTeamsteamSlugDiscussionsdiscussionNumber(org, teamSlug, discussionNumber string) Endpoint {
	return patchOrgsorgTeamsteamSlugDiscussionsdiscussionNumber.bind(org, teamSlug, discussionNumber)
}

func DeleteOrgsorgTeamsteamSlugDiscussionsdiscussionNumber(org, teamSlug, discussionNumber string) Endpoint {
	return deleteOrgsorgTeamsteamSlugDiscussionsdiscussionNumber.bind(org, teamSlug, discussionNumber)
}

func GetOrgsorgTeamsteamSlugDiscussionsdiscussionNumberComments(org, teamSlug, discussionNumber string) Endpoint {
	return getOrgsorgTeamsteamSlugDiscussionsdiscussionNumberComments.bind(org, teamSlug, discussionNumber)
}

func PostOrgsorgTeamsteamSlugDiscussionsdiscussionNumberComments(org, teamSlug, discussionNumber string) Endpoint {
	return postOrgsorgTeamsteamSlugDiscussionsdiscussionNumberComments.bind(org, teamSlug, discussionNumber)
}

func GetOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumber(org, teamSlug, discussionNumber, commentNumber string) Endpoint {
	return getOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumber.bind(org, teamSlug, discussionNumber, commentNumber)
}

func PatchOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumber(org, teamSlug, discussionNumber, commentNumber string) Endpoint {
	return patchOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumber.bind(org, teamSlug, discussionNumber, commentNumber)
}

func DeleteOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumber(org, teamSlug, discussionNumber, commentNumber string) Endpoint {
	return deleteOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumber.bind(org, teamSlug, discussionNumber, commentNumber)
}

func GetOrgsorgTeamsteamSlugInvitations(org, teamSlug string) Endpoint {
	return getOrgsorgTeamsteamSlugInvitations.bind(org, teamSlug)
}

func GetOrgsorgTeamsteamSlugMembers(org, teamSlug string) Endpoint {
	return getOrgsorgTeamsteamSlugMembers.bind(org, teamSlug)
}

func GetOrgsorgTeamsteamSlugMembershipsusername(org, teamSlug, username string) Endpoint {
	return getOrgsorgTeamsteamSlugMembershipsusername.bind(org, teamSlug, username)
}

func PutOrgsorgTeamsteamSlugMembershipsusername(org, teamSlug, username string) Endpoint {
	return putOrgsorgTeamsteamSlugMembershipsusername.bind(org, teamSlug, username)
}

func DeleteOrgsorgTeamsteamSlugMembershipsusername(org, teamSlug, username string) Endpoint {
	return deleteOrgsorgTeamsteamSlugMembershipsusername.bind(org, teamSlug, username)
}

func GetOrgsorgTeamsteamSlugProjects(org, teamSlug string) Endpoint {
	return getOrgsorgTeamsteamSlugProjects.bind(org, teamSlug)
}

func GetOrgsorgTeamsteamSlugProjectsprojectId(org, teamSlug, projectID string) Endpoint {
	return getOrgsorgTeamsteamSlugProjectsprojectId.bind(org, teamSlug, projectID)
}

func PutOrgsorgTeamsteamSlugProjectsprojectId(org, teamSlug, projectID string) Endpoint {
	return putOrgsorgTeamsteamSlugProjectsprojectId.bind(org, teamSlug, projectID)
}

func DeleteOrgsorgTeamsteamSlugProjectsprojectId(org, teamSlug, projectID string) Endpoint {
	return deleteOrgsorgTeamsteamSlugProjectsprojectId.bind(org, teamSlug, projectID)
}

func GetOrgsorgTeamsteamSlugRepos(org, teamSlug string) Endpoint {
	return getOrgsorgTeamsteamSlugRepos.bind(org, teamSlug)
}

func GetOrgsorgTeamsteamSlugReposownerrepo(org, teamSlug, owner, repo string) Endpoint {
	return getOrgsorgTeamsteamSlugReposownerrepo.bind(org, teamSlug, owner, repo)
}

func PutOrgsorgTeamsteamSlugReposownerrepo(org, teamSlug, owner, repo string) Endpoint {
	return putOrgsorgTeamsteamSlugReposownerrepo.bind(org, teamSlug, owner, repo)
}

func DeleteOrgsorgTeamsteamSlugReposownerrepo(org, teamSlug, owner, repo string) Endpoint {
	return deleteOrgsorgTeamsteamSlugReposownerrepo.bind(org, teamSlug, owner, repo)
}

func GetOrgsorgTeamsteamSlugTeamSyncGroupMappings(org, teamSlug string) Endpoint {
	return getOrgsorgTeamsteamSlugTeamSyncGroupMappings.bind(org, teamSlug)
}

func PatchOrgsorgTeamsteamSlugTeamSyncGroupMappings(org, teamSlug string) Endpoint {
	return patchOrgsorgTeamsteamSlugTeamSyncGroupMappings.bind(org, teamSlug)
}

func GetOrgsorgTeamsteamSlugTeams(org, teamSlug string) Endpoint {
	return getOrgsorgTeamsteamSlugTeams.bind(org, teamSlug)
}

func GetTeamsteamId(teamID string) Endpoint {
	return getTeamsteamId.bind(teamID)
}

func PatchTeamsteamId(teamID string) Endpoint {
	return patchTeamsteamId.bind(teamID)
}

func DeleteTeamsteamId(teamID string) Endpoint {
	return deleteTeamsteamId.bind(teamID)
}

func GetTeamsteamIdDiscussions(teamID string) Endpoint {
	return getTeamsteamIdDiscussions.bind(teamID)
}

func PostTeamsteamIdDiscussions(teamID string) Endpoint {
	return postTeamsteamIdDiscussions.bind(teamID)
}

func GetTeamsteamIdDiscussionsdiscussionNumber(teamID, discussionNumber string) Endpoint {
	return getTeamsteamIdDiscussionsdiscussionNumber.bind(teamID, discussionNumber)
}

func PatchTeamsteamIdDiscussionsdiscussionNumber(teamID, discussionNumber string) Endpoint {
	return patchTeamsteamIdDiscussionsdiscussionNumber.bind(teamID, discussionNumber)
}

func DeleteTeamsteamIdDiscussionsdiscussionNumber(teamID, discussionNumber string) Endpoint {
	return deleteTeamsteamIdDiscussionsdiscussionNumber.bind(teamID, discussionNumber)
}

func GetTeamsteamIdDiscussionsdiscussionNumberComments(teamID, discussionNumber string) Endpoint {
	return getTeamsteamIdDiscussionsdiscussionNumberComments.bind(teamID, discussionNumber)
}

func PostTeamsteamIdDiscussionsdiscussionNumberComments(teamID, discussionNumber string) Endpoint {
	return postTeamsteamIdDiscussionsdiscussionNumberComments.bind(teamID, discussionNumber)
}

func GetTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumber(teamID, discussionNumber, commentNumber string) Endpoint {
	return getTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumber.bind(teamID, discussionNumber, commentNumber)
}

func PatchTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumber(teamID, discussionNumber, commentNumber string) Endpoint {
	return patchTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumber.bind(teamID, discussionNumber, commentNumber)
}

func DeleteTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumber(teamID, discussionNumber, commentNumber string) Endpoint {
	return deleteTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumber.bind(teamID, discussionNumber, commentNumber)
}

func GetTeamsteamIdInvitations(teamID string) Endpoint {
	return getTeamsteamIdInvitations.bind(teamID)
}

func GetTeamsteamIdMembers(teamID string) Endpoint {
	return getTeamsteamIdMembers.bind(teamID)
}

func GetTeamsteamIdMembersusername(teamID, username string) Endpoint {
	return getTeamsteamIdMembersusername.bind(teamID, username)
}

func PutTeamsteamIdMembersusername(teamID, username string) Endpoint {
	return putTeamsteamIdMembersusername.bind(teamID, username)
}

func DeleteTeamsteamIdMembersusername(teamID, username string) Endpoint {
	return deleteTeamsteamIdMembersusername.bind(teamID, username)
}

func GetTeamsteamIdMembershipsusername(teamID, username string) Endpoint {
	return getTeamsteamIdMembershipsusername.bind(teamID, username)
}

func PutTeamsteamIdMembershipsusername(teamID, username string) Endpoint {
	return putTeamsteamIdMembershipsusername.bind(teamID, username)
}

func DeleteTeamsteamIdMembershipsusername(teamID, username string) Endpoint {
	return deleteTeamsteamIdMembershipsusername.bind(teamID, username)
}

func GetTeamsteamIdProjects(teamID string) Endpoint {
	return getTeamsteamIdProjects.bind(teamID)
}

func GetTeamsteamIdProjectsprojectId(teamID, projectID string) Endpoint {
	return getTeamsteamIdProjectsprojectId.bind(teamID, projectID)
}

func PutTeamsteamIdProjectsprojectId(teamID, projectID string) Endpoint {
	return putTeamsteamIdProjectsprojectId.bind(teamID, projectID)
}

func DeleteTeamsteamIdProjectsprojectId(teamID, projectID string) Endpoint {
	return deleteTeamsteamIdProjectsprojectId.bind(teamID, projectID)
}

func GetTeamsteamIdRepos(teamID string) Endpoint {
	return getTeamsteamIdRepos.bind(teamID)
}

func GetTeamsteamIdReposownerrepo(teamID, owner, repo string) Endpoint {
	return getTeamsteamIdReposownerrepo.bind(teamID, owner, repo)
}

func PutTeamsteamIdReposownerrepo(teamID, owner, repo string) Endpoint {
	return putTeamsteamIdReposownerrepo.bind(teamID, owner, repo)
}

func DeleteTeamsteamIdReposownerrepo(teamID, owner, repo string) Endpoint {
	return deleteTeamsteamIdReposownerrepo.bind(teamID, owner, repo)
}

func GetTeamsteamIdTeamSyncGroupMappings(teamID string) Endpoint {
	return getTeamsteamIdTeamSyncGroupMappings.bind(teamID)
}

func PatchTeamsteamIdTeamSyncGroupMappings(teamID string) Endpoint {
	return patchTeamsteamIdTeamSyncGroupMappings.bind(teamID)
}

func GetTeamsteamIdTeams(teamID string) Endpoint {
	return getTeamsteamIdTeams.bind(teamID)
}

func GetUserTeams() Endpoint {
	return getUserTeams.bind()
}
