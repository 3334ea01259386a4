package endpoint

var (
	getIssues                                        = register("issues", "GetIssues", MethodGet, "/issues")
	getOrgsorgIssues                                 = register("issues", "GetOrgsorgIssues", MethodGet, "/orgs/{org}/issues")
	getReposownerrepoAssignees                       = register("issues", "GetReposownerrepoAssignees", MethodGet, "/repos/{owner}/{repo}/assignees")
	getReposownerrepoAssigneesassignee               = register("issues", "GetReposownerrepoAssigneesassignee", MethodGet, "/repos/{owner}/{repo}/assignees/{assignee}")
	getReposownerrepoIssues                          = register("issues", "GetReposownerrepoIssues", MethodGet, "/repos/{owner}/{repo}/issues")
	postReposownerrepoIssues                         = register("issues", "PostReposownerrepoIssues", MethodPost, "/repos/{owner}/{repo}/issues")
	getReposownerrepoIssuesComments                  = register("issues", "GetReposownerrepoIssuesComments", MethodGet, "/repos/{owner}/{repo}/issues/comments")
	getReposownerrepoIssuesCommentscommentId         = register("issues", "GetReposownerrepoIssuesCommentscommentId", MethodGet, "/repos/{owner}/{repo}/issues/comments/{comment_id}")
	patchReposownerrepoIssuesCommentscommentId       = register("issues", "PatchReposownerrepoIssuesCommentscommentId", MethodPatch, "/repos/{owner}/{repo}/issues/comments/{comment_id}")
	deleteReposownerrepoIssuesCommentscommentId      = register("issues", "DeleteReposownerrepoIssuesCommentscommentId", MethodDelete, "/repos/{owner}/{repo}/issues/comments/{comment_id}")
	getReposownerrepoIssuesEvents                    = register("issues", "GetReposownerrepoIssuesEvents", MethodGet, "/repos/{owner}/{repo}/issues/events")
	getReposownerrepoIssuesEventseventId             = register("issues", "GetReposownerrepoIssuesEventseventId", MethodGet, "/repos/{owner}/{repo}/issues/events/{event_id}")
	getReposownerrepoIssuesissueNumber               = register("issues", "GetReposownerrepoIssuesissueNumber", MethodGet, "/repos/{owner}/{repo}/issues/{issue_number}")
	patchReposownerrepoIssuesissueNumber             = register("issues", "PatchReposownerrepoIssuesissueNumber", MethodPatch, "/repos/{owner}/{repo}/issues/{issue_number}")
	postReposownerrepoIssuesissueNumberAssignees     = register("issues", "PostReposownerrepoIssuesissueNumberAssignees", MethodPost, "/repos/{owner}/{repo}/issues/{issue_number}/assignees")
	deleteReposownerrepoIssuesissueNumberAssignees   = register("issues", "DeleteReposownerrepoIssuesissueNumberAssignees", MethodDelete, "/repos/{owner}/{repo}/issues/{issue_number}/assignees")
	getReposownerrepoIssuesissueNumberComments       = register("issues", "GetReposownerrepoIssuesissueNumberComments", MethodGet, "/repos/{owner}/{repo}/issues/{issue_number}/comments")
	postReposownerrepoIssuesissueNumberComments      = register("issues", "PostReposownerrepoIssuesissueNumberComments", MethodPost, "/repos/{owner}/{repo}/issues/{issue_number}/comments")
	getReposownerrepoIssuesissueNumberEvents         = register("issues", "GetReposownerrepoIssuesissueNumberEvents", MethodGet, "/repos/{owner}/{repo}/issues/{issue_number}/events")
	getReposownerrepoIssuesissueNumberLabels         = register("issues", "GetReposownerrepoIssuesissueNumberLabels", MethodGet, "/repos/{owner}/{repo}/issues/{issue_number}/labels")
	postReposownerrepoIssuesissueNumberLabels        = register("issues", "PostReposownerrepoIssuesissueNumberLabels", MethodPost, "/repos/{owner}/{repo}/issues/{issue_number}/labels")
	putReposownerrepoIssuesissueNumberLabels         = register("issues", "PutReposownerrepoIssuesissueNumberLabels", MethodPut, "/repos/{owner}/{repo}/issues/{issue_number}/labels")
	deleteReposownerrepoIssuesissueNumberLabels      = register("issues", "DeleteReposownerrepoIssuesissueNumberLabels", MethodDelete, "/repos/{owner}/{repo}/issues/{issue_number}/labels")
	deleteReposownerrepoIssuesissueNumberLabelsname  = register("issues", "DeleteReposownerrepoIssuesissueNumberLabelsname", MethodDelete, "/repos/{owner}/{repo}/issues/{issue_number}/labels/{name}")
	putReposownerrepoIssuesissueNumberLock           = register("issues", "PutReposownerrepoIssuesissueNumberLock", MethodPut, "/repos/{owner}/{repo}/issues/{issue_number}/lock")
	deleteReposownerrepoIssuesissueNumberLock        = register("issues", "DeleteReposownerrepoIssuesissueNumberLock", MethodDelete, "/repos/{owner}/{repo}/issues/{issue_number}/lock")
	getReposownerrepoIssuesissueNumberTimeline       = register("issues", "GetReposownerrepoIssuesissueNumberTimeline", MethodGet, "/repos/{owner}/{repo}/issues/{issue_number}/timeline")
	getReposownerrepoLabels                          = register("issues", "GetReposownerrepoLabels", MethodGet, "/repos/{owner}/{repo}/labels")
	postReposownerrepoLabels                         = register("issues", "PostReposownerrepoLabels", MethodPost, "/repos/{owner}/{repo}/labels")
	getReposownerrepoLabelsname                      = register("issues", "GetReposownerrepoLabelsname", MethodGet, "/repos/{owner}/{repo}/labels/{name}")
	patchReposownerrepoLabelsname                    = register("issues", "PatchReposownerrepoLabelsname", MethodPatch, "/repos/{owner}/{repo}/labels/{name}")
	deleteReposownerrepoLabelsname                   = register("issues", "DeleteReposownerrepoLabelsname", MethodDelete, "/repos/{owner}/{repo}/labels/{name}")
	getReposownerrepoMilestones                      = register("issues", "GetReposownerrepoMilestones", MethodGet, "/repos/{owner}/{repo}/milestones")
	postReposownerrepoMilestones                     = register("issues", "PostReposownerrepoMilestones", MethodPost, "/repos/{owner}/{repo}/milestones")
	getReposownerrepoMilestonesmilestoneNumber       = register("issues", "GetReposownerrepoMilestonesmilestoneNumber", MethodGet, "/repos/{owner}/{repo}/milestones/{milestone_number}")
	patchReposownerrepoMilestonesmilestoneNumber     = register("issues", "PatchReposownerrepoMilestonesmilestoneNumber", MethodPatch, "/repos/{owner}/{repo}/milestones/{milestone_number}")
	deleteReposownerrepoMilestonesmilestoneNumber    = register("issues", "DeleteReposownerrepoMilestonesmilestoneNumber", MethodDelete, "/repos/{owner}/{repo}/milestones/{milestone_number}")
	getReposownerrepoMilestonesmilestoneNumberLabels = register("issues", "GetReposownerrepoMilestonesmilestoneNumberLabels", MethodGet, "/repos/{owner}/{repo}/milestones/{milestone_number}/labels")
	getUserIssues                                    = register("issues", "GetUserIssues", MethodGet, "/user/issues")
)

func GetIssues() Endpoint {
	return getIssues.bind()
}

func GetOrgsorgIssues(org string) Endpoint {
	return getOrgsorgIssues.bind(org)
}

func GetReposownerrepoAssignees(owner, repo string) Endpoint {
	return getReposownerrepoAssignees.bind(owner, repo)
}

func GetReposownerrepoAssigneesassignee(owner, repo, assignee string) Endpoint {
	return getReposownerrepoAssigneesassignee.bind(owner, repo, assignee)
}

func GetReposownerrepoIssues(owner, repo string) Endpoint {
	return getReposownerrepoIssues.bind(owner, repo)
}

func PostReposownerrepoIssues(owner, repo string) Endpoint {
	return postReposownerrepoIssues.bind(owner, repo)
}

func GetReposownerrepoIssuesComments(owner, repo string) Endpoint {
	return getReposownerrepoIssuesComments.bind(owner, repo)
}

func GetReposownerrepoIssuesCommentscommentId(owner, repo, commentID string) Endpoint {
	return getReposownerrepoIssuesCommentscommentId.bind(owner, repo, commentID)
}

func PatchReposownerrepoIssuesCommentscommentId(owner, repo, commentID string) Endpoint {
	return patchReposownerrepoIssuesCommentscommentId.bind(owner, repo, commentID)
}

func DeleteReposownerrepoIssuesCommentscommentId(owner, repo, commentID string) Endpoint {
	return deleteReposownerrepoIssuesCommentscommentId.bind(owner, repo, commentID)
}

func GetReposownerrepoIssuesEvents(owner, repo string) Endpoint {
	return getReposownerrepoIssuesEvents.bind(owner, repo)
}

func GetReposownerrepoIssuesEventseventId(owner, repo, eventID string) Endpoint {
	return getReposownerrepoIssuesEventseventId.bind(owner, repo, eventID)
}

func GetReposownerrepoIssuesissueNumber(owner, repo, issueNumber string) Endpoint {
	return getReposownerrepoIssuesissueNumber.bind(owner, repo, issueNumber)
}

func PatchReposownerrepoIssuesissueNumber(owner, repo, issueNumber string) Endpoint {
	return patchReposownerrepoIssuesissueNumber.bind(owner, repo, issueNumber)
}

func PostReposownerrepoIssuesissueNumberAssignees(owner, repo, issueNumber string) Endpoint {
	return postReposownerrepoIssuesissueNumberAssignees.bind(owner, repo, issueNumber)
}

func DeleteReposownerrepoIssuesissueNumberAssignees(owner, repo, issueNumber string) Endpoint {
	return deleteReposownerrepoIssuesissueNumberAssignees.bind(owner, repo, issueNumber)
}

func GetReposownerrepoIssuesissueNumberComments(owner, repo, issueNumber string) Endpoint {
	return getReposownerrepoIssuesissueNumberComments.bind(owner, repo, issueNumber)
}

func PostReposownerrepoIssuesissueNumberComments(owner, repo, issueNumber string) Endpoint {
	return postReposownerrepoIssuesissueNumberComments.bind(owner, repo, issueNumber)
}

func GetReposownerrepoIssuesissueNumberEvents(owner, repo, issueNumber string) Endpoint {
	return getReposownerrepoIssuesissueNumberEvents.bind(owner, repo, issueNumber)
}

func GetReposownerrepoIssuesissueNumberLabels(owner, repo, issueNumber string) Endpoint {
	return getReposownerrepoIssuesissueNumberLabels.bind(owner, repo, issueNumber)
}

func PostReposownerrepoIssuesissueNumberLabels(owner, repo, issueNumber string) Endpoint {
	return postReposownerrepoIssuesissueNumberLabels.bind(owner, repo, issueNumber)
}

func PutReposownerrepoIssuesissueNumberLabels(owner, repo, issueNumber string) Endpoint {
	return putReposownerrepoIssuesissueNumberLabels.bind(owner, repo, issueNumber)
}

func DeleteReposownerrepoIssuesissueNumberLabels(owner, repo, issueNumber string) Endpoint {
	return deleteReposownerrepoIssuesissueNumberLabels.bind(owner, repo, issueNumber)
}

func DeleteReposownerrepoIssuesissueNumberLabelsname(owner, repo, issueNumber, name string) Endpoint {
	return deleteReposownerrepoIssuesissueNumberLabelsname.bind(owner, repo, issueNumber, name)
}

func PutReposownerrepoIssuesissueNumberLock(owner, repo, issueNumber string) Endpoint {
	return putReposownerrepoIssuesissueNumberLock.bind(owner, repo, issueNumber)
}

func DeleteReposownerrepoIssuesissueNumberLock(owner, repo, issueNumber string) Endpoint {
	return deleteReposownerrepoIssuesissueNumberLock.bind(owner, repo, issueNumber)
}

func GetReposownerrepoIssuesissueNumberTimeline(owner, repo, issueNumber string) Endpoint {
	return getReposownerrepoIssuesissueNumberTimeline.bind(owner, repo, issueNumber)
}

func GetReposownerrepoLabels(owner, repo string) Endpoint {
	return getReposownerrepoLabels.bind(owner, repo)
}

func PostReposownerrepoLabels(owner, repo string) Endpoint {
	return postReposownerrepoLabels.bind(owner, repo)
}

func GetReposownerrepoLabelsname(owner, repo, name string) Endpoint {
	return getReposownerrepoLabelsname.bind(owner, repo, name)
}

func PatchReposownerrepoLabelsname(owner, repo, name string) Endpoint {
	return patchReposownerrepoLabelsname.bind(owner, repo, name)
}

func DeleteReposownerrepoLabelsname(owner, repo, name string) Endpoint {
	return deleteReposownerrepoLabelsname.bind(owner, repo, name)
}

func GetReposownerrepoMilestones(owner, repo string) Endpoint {
	return getReposownerrepoMilestones.bind(owner, repo)
}

func PostReposownerrepoMilestones(owner, repo string) Endpoint {
	return postReposownerrepoMilestones.bind(owner, repo)
}

func GetReposownerrepoMilestonesmilestoneNumber(owner, repo, milestoneNumber string) Endpoint {
	return getReposownerrepoMilestonesmilestoneNumber.bind(owner, repo, milestoneNumber)
}

func PatchReposownerrepoMilestonesmilestoneNumber(owner, repo, milestoneNumber string) Endpoint {
	return patchReposownerrepoMilestonesmilestoneNumber.bind(owner, repo, milestoneNumber)
}

func DeleteReposownerrepoMilestonesmilestoneNumber(owner, repo, milestoneNumber string) Endpoint {
	return deleteReposownerrepoMilestonesmilestoneNumber.bind(owner, repo, milestoneNumber)
}

func GetReposownerrepoMilestonesmilestoneNumberLabels(owner, repo, milestoneNumber string) Endpoint {
	return getReposownerrepoMilestonesmilestoneNumberLabels.bind(owner, repo, milestoneNumber)
}

func GetUserIssues() Endpoint {
	return getUserIssues.bind()
}
