package endpoint

var (
	getReposownerrepoPulls                                    = register("pulls", "GetReposownerrepoPulls", MethodGet, "/repos/{owner}/{repo}/pulls")
	postReposownerrepoPulls                                   = register("pulls", "PostReposownerrepoPulls", MethodPost, "/repos/{owner}/{repo}/pulls")
	getReposownerrepoPullsComments                            = register("pulls", "GetReposownerrepoPullsComments", MethodGet, "/repos/{owner}/{repo}/pulls/comments")
	getReposownerrepoPullsCommentscommentId                   = register("pulls", "GetReposownerrepoPullsCommentscommentId", MethodGet, "/repos/{owner}/{repo}/pulls/comments/{comment_id}")
	patchReposownerrepoPullsCommentscommentId                 = register("pulls", "PatchReposownerrepoPullsCommentscommentId", MethodPatch, "/repos/{owner}/{repo}/pulls/comments/{comment_id}")
	deleteReposownerrepoPullsCommentscommentId                = register("pulls", "DeleteReposownerrepoPullsCommentscommentId", MethodDelete, "/repos/{owner}/{repo}/pulls/comments/{comment_id}")
	getReposownerrepoPullspullNumber                          = register("pulls", "GetReposownerrepoPullspullNumber", MethodGet, "/repos/{owner}/{repo}/pulls/{pull_number}")
	patchReposownerrepoPullspullNumber                        = register("pulls", "PatchReposownerrepoPullspullNumber", MethodPatch, "/repos/{owner}/{repo}/pulls/{pull_number}")
	getReposownerrepoPullspullNumberComments                  = register("pulls", "GetReposownerrepoPullspullNumberComments", MethodGet, "/repos/{owner}/{repo}/pulls/{pull_number}/comments")
	postReposownerrepoPullspullNumberComments                 = register("pulls", "PostReposownerrepoPullspullNumberComments", MethodPost, "/repos/{owner}/{repo}/pulls/{pull_number}/comments")
	postReposownerrepoPullspullNumberCommentscommentIdReplies = register("pulls", "PostReposownerrepoPullspullNumberCommentscommentIdReplies", MethodPost, "/repos/{owner}/{repo}/pulls/{pull_number}/comments/{comment_id}/replies")
	getReposownerrepoPullspullNumberCommits                   = register("pulls", "GetReposownerrepoPullspullNumberCommits", MethodGet, "/repos/{owner}/{repo}/pulls/{pull_number}/commits")
	getReposownerrepoPullspullNumberFiles                     = register("pulls", "GetReposownerrepoPullspullNumberFiles", MethodGet, "/repos/{owner}/{repo}/pulls/{pull_number}/files")
	getReposownerrepoPullspullNumberMerge                     = register("pulls", "GetReposownerrepoPullspullNumberMerge", MethodGet, "/repos/{owner}/{repo}/pulls/{pull_number}/merge")
	putReposownerrepoPullspullNumberMerge                     = register("pulls", "PutReposownerrepoPullspullNumberMerge", MethodPut, "/repos/{owner}/{repo}/pulls/{pull_number}/merge")
	getReposownerrepoPullspullNumberRequestedReviewers        = register("pulls", "GetReposownerrepoPullspullNumberRequestedReviewers", MethodGet, "/repos/{owner}/{repo}/pulls/{pull_number}/requested_reviewers")
	postReposownerrepoPullspullNumberRequestedReviewers       = register("pulls", "PostReposownerrepoPullspullNumberRequestedReviewers", MethodPost, "/repos/{owner}/{repo}/pulls/{pull_number}/requested_reviewers")
	deleteReposownerrepoPullspullNumberRequestedReviewers     = register("pulls", "DeleteReposownerrepoPullspullNumberRequestedReviewers", MethodDelete, "/repos/{owner}/{repo}/pulls/{pull_number}/requested_reviewers")
	getReposownerrepoPullspullNumberReviews                   = register("pulls", "GetReposownerrepoPullspullNumberReviews", MethodGet, "/repos/{owner}/{repo}/pulls/{pull_number}/reviews")
	postReposownerrepoPullspullNumberReviews                  = register("pulls", "PostReposownerrepoPullspullNumberReviews", MethodPost, "/repos/{owner}/{repo}/pulls/{pull_number}/reviews")
	getReposownerrepoPullspullNumberReviewsreviewId           = register("pulls", "GetReposownerrepoPullspullNumberReviewsreviewId", MethodGet, "/repos/{owner}/{repo}/pulls/{pull_number}/reviews/{review_id}")
	putReposownerrepoPullspullNumberReviewsreviewId           = register("pulls", "PutReposownerrepoPullspullNumberReviewsreviewId", MethodPut, "/repos/{owner}/{repo}/pulls/{pull_number}/reviews/{review_id}")
	deleteReposownerrepoPullspullNumberReviewsreviewId        = register("pulls", "DeleteReposownerrepoPullspullNumberReviewsreviewId", MethodDelete, "/repos/{owner}/{repo}/pulls/{pull_number}/reviews/{review_id}")
	getReposownerrepoPullspullNumberReviewsreviewIdComments   = register("pulls", "GetReposownerrepoPullspullNumberReviewsreviewIdComments", MethodGet, "/repos/{owner}/{repo}/pulls/{pull_number}/reviews/{review_id}/comments")
	putReposownerrepoPullspullNumberReviewsreviewIdDismissals = register("pulls", "PutReposownerrepoPullspullNumberReviewsreviewIdDismissals", MethodPut, "/repos/{owner}/{repo}/pulls/{pull_number}/reviews/{review_id}/dismissals")
	postReposownerrepoPullspullNumberReviewsreviewIdEvents    = register("pulls", "PostReposownerrepoPullspullNumberReviewsreviewIdEvents", MethodPost, "/repos/{owner}/{repo}/pulls/{pull_number}/reviews/{review_id}/events")
	putReposownerrepoPullspullNumberUpdateBranch              = register("pulls", "PutReposownerrepoPullspullNumberUpdateBranch", MethodPut, "/repos/{owner}/{repo}/pulls/{pull_number}/update-branch")
)

func GetReposownerrepoPulls(owner, repo string) Endpoint {
	return getReposownerrepoPulls.bind(owner, repo)
}

func PostReposownerrepoPulls(owner, repo string) Endpoint {
	return postReposownerrepoPulls.bind(owner, repo)
}

func GetReposownerrepoPullsComments(owner, repo string) Endpoint {
	return getReposownerrepoPullsComments.bind(owner, repo)
}

func GetReposownerrepoPullsCommentscommentId(owner, repo, commentID string) Endpoint {
	return getReposownerrepoPullsCommentscommentId.bind(owner, repo, commentID)
}

func PatchReposownerrepoPullsCommentscommentId(owner, repo, commentID string) Endpoint {
	return patchReposownerrepoPullsCommentscommentId.bind(owner, repo, commentID)
}

func DeleteReposownerrepoPullsCommentscommentId(owner, repo, commentID string) Endpoint {
	return deleteReposownerrepoPullsCommentscommentId.bind(owner, repo, commentID)
}

func GetReposownerrepoPullspullNumber(owner, repo, pullNumber string) Endpoint {
	return getReposownerrepoPullspullNumber.bind(owner, repo, pullNumber)
}

func PatchReposownerrepoPullspullNumber(owner, repo, pullNumber string) Endpoint {
	return patchReposownerrepoPullspullNumber.bind(owner, repo, pullNumber)
}

func GetReposownerrepoPullspullNumberComments(owner, repo, pullNumber string) Endpoint {
	return getReposownerrepoPullspullNumberComments.bind(owner, repo, pullNumber)
}

func PostReposownerrepoPullspullNumberComments(owner, repo, pullNumber string) Endpoint {
	return postReposownerrepoPullspullNumberComments.bind(owner, repo, pullNumber)
}

func PostReposownerrepoPullspullNumberCommentscommentIdReplies(owner, repo, pullNumber, commentID string) Endpoint {
	return postReposownerrepoPullspullNumberCommentscommentIdReplies.bind(owner, repo, pullNumber, commentID)
}

func GetReposownerrepoPullspullNumberCommits(owner, repo, pullNumber string) Endpoint {
	return getReposownerrepoPullspullNumberCommits.bind(owner, repo, pullNumber)
}

func GetReposownerrepoPullspullNumberFiles(owner, repo, pullNumber string) Endpoint {
	return getReposownerrepoPullspullNumberFiles.bind(owner, repo, pullNumber)
}

func GetReposownerrepoPullspullNumberMerge(owner, repo, pullNumber string) Endpoint {
	return getReposownerrepoPullspullNumberMerge.bind(owner, repo, pullNumber)
}

func PutReposownerrepoPullspullNumberMerge(owner, repo, pullNumber string) Endpoint {
	return putReposownerrepoPullspullNumberMerge.bind(owner, repo, pullNumber)
}

func GetReposownerrepoPullspullNumberRequestedReviewers(owner, repo, pullNumber string) Endpoint {
	return getReposownerrepoPullspullNumberRequestedReviewers.bind(owner, repo, pullNumber)
}

func PostReposownerrepoPullspullNumberRequestedReviewers(owner, repo, pullNumber string) Endpoint {
	return postReposownerrepoPullspullNumberRequestedReviewers.bind(owner, repo, pullNumber)
}

func DeleteReposownerrepoPullspullNumberRequestedReviewers(owner, repo, pullNumber string) Endpoint {
	return deleteReposownerrepoPullspullNumberRequestedReviewers.bind(owner, repo, pullNumber)
}

func GetReposownerrepoPullspullNumberReviews(owner, repo, pullNumber string) Endpoint {
	return getReposownerrepoPullspullNumberReviews.bind(owner, repo, pullNumber)
}

func PostReposownerrepoPullspullNumberReviews(owner, repo, pullNumber string) Endpoint {
	return postReposownerrepoPullspullNumberReviews.bind(owner, repo, pullNumber)
}

func GetReposownerrepoPullspullNumberReviewsreviewId(owner, repo, pullNumber, reviewID string) Endpoint {
	return getReposownerrepoPullspullNumberReviewsreviewId.bind(owner, repo, pullNumber, reviewID)
}

func PutReposownerrepoPullspullNumberReviewsreviewId(owner, repo, pullNumber, reviewID string) Endpoint {
	return putReposownerrepoPullspullNumberReviewsreviewId.bind(owner, repo, pullNumber, reviewID)
}

func DeleteReposownerrepoPullspullNumberReviewsreviewId(owner, repo, pullNumber, reviewID string) Endpoint {
	return deleteReposownerrepoPullspullNumberReviewsreviewId.bind(owner, repo, pullNumber, reviewID)
}

func GetReposownerrepoPullspullNumberReviewsreviewIdComments(owner, repo, pullNumber, reviewID string) Endpoint {
	return getReposownerrepoPullspullNumberReviewsreviewIdComments.bind(owner, repo, pullNumber, reviewID)
}

func PutReposownerrepoPullspullNumberReviewsreviewIdDismissals(owner, repo, pullNumber, reviewID string) Endpoint {
	return putReposownerrepoPullspullNumberReviewsreviewIdDismissals.bind(owner, repo, pullNumber, reviewID)
}

func PostReposownerrepoPullspullNumberReviewsreviewIdEvents(owner, repo, pullNumber, reviewID string) Endpoint {
	return postReposownerrepoPullspullNumberReviewsreviewIdEvents.bind(owner, repo, pullNumber, reviewID)
}

func PutReposownerrepoPullspullNumberUpdateBranch(owner, repo, pullNumber string) Endpoint {
	return putReposownerrepoPullspullNumberUpdateBranch.bind(owner, repo, pullNumber)
}
