package endpoint

var (
	getOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumberReactions              = register("reactions", "GetOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumberReactions", MethodGet, "/orgs/{org}/teams/{team_slug}/discussions/{discussion_number}/comments/{comment_number}/reactions")
	postOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumberReactions             = register("reactions", "PostOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumberReactions", MethodPost, "/orgs/{org}/teams/{team_slug}/discussions/{discussion_number}/comments/{comment_number}/reactions")
	deleteOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumberReactionsreactionId = register("reactions", "DeleteOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumberReactionsreactionId", MethodDelete, "/orgs/{org}/teams/{team_slug}/discussions/{discussion_number}/comments/{comment_number}/reactions/{reaction_id}")
	getOrgsorgTeamsteamSlugDiscussionsdiscussionNumberReactions                                   = register("reactions", "GetOrgsorgTeamsteamSlugDiscussionsdiscussionNumberReactions", MethodGet, "/orgs/{org}/teams/{team_slug}/discussions/{discussion_number}/reactions")
	postOrgsorgTeamsteamSlugDiscussionsdiscussionNumberReactions                                  = register("reactions", "PostOrgsorgTeamsteamSlugDiscussionsdiscussionNumberReactions", MethodPost, "/orgs/{org}/teams/{team_slug}/discussions/{discussion_number}/reactions")
	deleteOrgsorgTeamsteamSlugDiscussionsdiscussionNumberReactionsreactionId                      = register("reactions", "DeleteOrgsorgTeamsteamSlugDiscussionsdiscussionNumberReactionsreactionId", MethodDelete, "/orgs/{org}/teams/{team_slug}/discussions/{discussion_number}/reactions/{reaction_id}")
	deleteReactionsreactionId                                                                     = register("reactions", "DeleteReactionsreactionId", MethodDelete, "/reactions/{reaction_id}")
	getReposownerrepoCommentscommentIdReactions                                                   = register("reactions", "GetReposownerrepoCommentscommentIdReactions", MethodGet, "/repos/{owner}/{repo}/comments/{comment_id}/reactions")
	postReposownerrepoCommentscommentIdReactions                                                  = register("reactions", "PostReposownerrepoCommentscommentIdReactions", MethodPost, "/repos/{owner}/{repo}/comments/{comment_id}/reactions")
	deleteReposownerrepoCommentscommentIdReactionsreactionId                                      = register("reactions", "DeleteReposownerrepoCommentscommentIdReactionsreactionId", MethodDelete, "/repos/{owner}/{repo}/comments/{comment_id}/reactions/{reaction_id}")
	getReposownerrepoIssuesCommentscommentIdReactions                                             = register("reactions", "GetReposownerrepoIssuesCommentscommentIdReactions", MethodGet, "/repos/{owner}/{repo}/issues/comments/{comment_id}/reactions")
	postReposownerrepoIssuesCommentscommentIdReactions                                            = register("reactions", "PostReposownerrepoIssuesCommentscommentIdReactions", MethodPost, "/repos/{owner}/{repo}/issues/comments/{comment_id}/reactions")
	deleteReposownerrepoIssuesCommentscommentIdReactionsreactionId                                = register("reactions", "DeleteReposownerrepoIssuesCommentscommentIdReactionsreactionId", MethodDelete, "/repos/{owner}/{repo}/issues/comments/{comment_id}/reactions/{reaction_id}")
	getReposownerrepoIssuesissueNumberReactions                                                   = register("reactions", "GetReposownerrepoIssuesissueNumberReactions", MethodGet, "/repos/{owner}/{repo}/issues/{issue_number}/reactions")
	postReposownerrepoIssuesissueNumberReactions                                                  = register("reactions", "PostReposownerrepoIssuesissueNumberReactions", MethodPost, "/repos/{owner}/{repo}/issues/{issue_number}/reactions")
	deleteReposownerrepoIssuesissueNumberReactionsreactionId                                      = register("reactions", "DeleteReposownerrepoIssuesissueNumberReactionsreactionId", MethodDelete, "/repos/{owner}/{repo}/issues/{issue_number}/reactions/{reaction_id}")
	getReposownerrepoPullsCommentscommentIdReactions                                              = register("reactions", "GetReposownerrepoPullsCommentscommentIdReactions", MethodGet, "/repos/{owner}/{repo}/pulls/comments/{comment_id}/reactions")
	postReposownerrepoPullsCommentscommentIdReactions                                             = register("reactions", "PostReposownerrepoPullsCommentscommentIdReactions", MethodPost, "/repos/{owner}/{repo}/pulls/comments/{comment_id}/reactions")
	deleteReposownerrepoPullsCommentscommentIdReactionsreactionId                                 = register("reactions", "DeleteReposownerrepoPullsCommentscommentIdReactionsreactionId", MethodDelete, "/repos/{owner}/{repo}/pulls/comments/{comment_id}/reactions/{reaction_id}")
	postReposownerrepoReleasesreleaseIdReactions                                                  = register("reactions", "PostReposownerrepoReleasesreleaseIdReactions", MethodPost, "/repos/{owner}/{repo}/releases/{release_id}/reactions")
	getTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumberReactions                       = register("reactions", "GetTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumberReactions", MethodGet, "/teams/{team_id}/discussions/{discussion_number}/comments/{comment_number}/reactions")
	postTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumberReactions                      = register("reactions", "PostTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumberReactions", MethodPost, "/teams/{team_id}/discussions/{discussion_number}/comments/{comment_number}/reactions")
	getTeamsteamIdDiscussionsdiscussionNumberReactions                                            = register("reactions", "GetTeamsteamIdDiscussionsdiscussionNumberReactions", MethodGet, "/teams/{team_id}/discussions/{discussion_number}/reactions")
	postTeamsteamIdDiscussionsdiscussionNumberReactions                                           = register("reactions", "PostTeamsteamIdDiscussionsdiscussionNumberReactions", MethodPost, "/teams/{team_id}/discussions/{discussion_number}/reactions")
)

func GetOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumberReactions(org, teamSlug, discussionNumber, commentNumber string) Endpoint {
	return getOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumberReactions.bind(org, teamSlug, discussionNumber, commentNumber)
}

func PostOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumberReactions(org, teamSlug, discussionNumber, commentNumber string) Endpoint {
	return postOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumberReactions.bind(org, teamSlug, discussionNumber, commentNumber)
}

func DeleteOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumberReactionsreactionId(org, teamSlug, discussionNumber, commentNumber, reactionID string) Endpoint {
	return deleteOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumberReactionsreactionId.bind(org, teamSlug, discussionNumber, commentNumber, reactionID)
}

func GetOrgsorgTeamsteamSlugDiscussionsdiscussionNumberReactions(org, teamSlug, discussionNumber string) Endpoint {
	return getOrgsorgTeamsteamSlugDiscussionsdiscussionNumberReactions.bind(org, teamSlug, discussionNumber)
}

func PostOrgsorgTeamsteamSlugDiscussionsdiscussionNumberReactions(org, teamSlug, discussionNumber string) Endpoint {
	return postOrgsorgTeamsteamSlugDiscussionsdiscussionNumberReactions.bind(org, teamSlug, discussionNumber)
}

func DeleteOrgsorgTeamsteamSlugDiscussionsdiscussionNumberReactionsreactionId(org, teamSlug, discussionNumber, reactionID string) Endpoint {
	return deleteOrgsorgTeamsteamSlugDiscussionsdiscussionNumberReactionsreactionId.bind(org, teamSlug, discussionNumber, reactionID)
}

func DeleteReactionsreactionId(reactionID string) Endpoint {
	return deleteReactionsreactionId.bind(reactionID)
}

func GetReposownerrepoCommentscommentIdReactions(owner, repo, commentID string) Endpoint {
	return getReposownerrepoCommentscommentIdReactions.bind(owner, repo, commentID)
}

func PostReposownerrepoCommentscommentIdReactions(owner, repo, commentID string) Endpoint {
	return postReposownerrepoCommentscommentIdReactions.bind(owner, repo, commentID)
}

func DeleteReposownerrepoCommentscommentIdReactionsreactionId(owner, repo, commentID, reactionID string) Endpoint {
	return deleteReposownerrepoCommentscommentIdReactionsreactionId.bind(owner, repo, commentID, reactionID)
}

func GetReposownerrepoIssuesCommentscommentIdReactions(owner, repo, commentID string) Endpoint {
	return getReposownerrepoIssuesCommentscommentIdReactions.bind(owner, repo, commentID)
}

func PostReposownerrepoIssuesCommentscommentIdReactions(owner, repo, commentID string) Endpoint {
	return postReposownerrepoIssuesCommentscommentIdReactions.bind(owner, repo, commentID)
}

func DeleteReposownerrepoIssuesCommentscommentIdReactionsreactionId(owner, repo, commentID, reactionID string) Endpoint {
	return deleteReposownerrepoIssuesCommentscommentIdReactionsreactionId.bind(owner, repo, commentID, reactionID)
}

func GetReposownerrepoIssuesissueNumberReactions(owner, repo, issueNumber string) Endpoint {
	return getReposownerrepoIssuesissueNumberReactions.bind(owner, repo, issueNumber)
}

func PostReposownerrepoIssuesissueNumberReactions(owner, repo, issueNumber string) Endpoint {
	return postReposownerrepoIssuesissueNumberReactions.bind(owner, repo, issueNumber)
}

func DeleteReposownerrepoIssuesissueNumberReactionsreactionId(owner, repo, issueNumber, reactionID string) Endpoint {
	return deleteReposownerrepoIssuesissueNumberReactionsreactionId.bind(owner, repo, issueNumber, reactionID)
}

func GetReposownerrepoPullsCommentscommentIdReactions(owner, repo, commentID string) Endpoint {
	return getReposownerrepoPullsCommentscommentIdReactions.bind(owner, repo, commentID)
}

func PostReposownerrepoPullsCommentscommentIdReactions(owner, repo, commentID string) Endpoint {
	return postReposownerrepoPullsCommentscommentIdReactions.bind(owner, repo, commentID)
}

func DeleteReposownerrepoPullsCommentscommentIdReactionsreactionId(owner, repo, commentID, reactionID string) Endpoint {
	return deleteReposownerrepoPullsCommentscommentIdReactionsreactionId.bind(owner, repo, commentID, reactionID)
}

func PostReposownerrepoReleasesreleaseIdReactions(owner, repo, releaseID string) Endpoint {
	return postReposownerrepoReleasesreleaseIdReactions.bind(owner, repo, releaseID)
}

func GetTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumberReactions(teamID, discussionNumber, commentNumber string) Endpoint {
	return getTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumberReactions.bind(teamID, discussionNumber, commentNumber)
}

func PostTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumberReactions(teamID, discussionNumber, commentNumber string) Endpoint {
	return postTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumberReactions.bind(teamID, discussionNumber, commentNumber)
}

func GetTeamsteamIdDiscussionsdiscussionNumberReactions(teamID, discussionNumber string) Endpoint {
	return getTeamsteamIdDiscussionsdiscussionNumberReactions.bind(teamID, discussionNumber)
}

func PostTeamsteamIdDiscussionsdiscussionNumberReactions(teamID, discussionNumber string) Endpoint {
	return postTeamsteamIdDiscussionsdiscussionNumberReactions.bind(teamID, discussionNumber)
}
