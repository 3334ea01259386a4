package endpoint

var (
	postReposownerrepoGitBlobs           = register("git", "PostReposownerrepoGitBlobs", MethodPost, "/repos/{owner}/{repo}/git/blobs")
	getReposownerrepoGitBlobsfileSha     = register("git", "GetReposownerrepoGitBlobsfileSha", MethodGet, "/repos/{owner}/{repo}/git/blobs/{file_sha}")
	postReposownerrepoGitCommits         = register("git", "PostReposownerrepoGitCommits", MethodPost, "/repos/{owner}/{repo}/git/commits")
	getReposownerrepoGitCommitscommitSha = register("git", "GetReposownerrepoGitCommitscommitSha", MethodGet, "/repos/{owner}/{repo}/git/commits/{commit_sha}")
	getReposownerrepoGitMatchingRefsref  = register("git", "GetReposownerrepoGitMatchingRefsref", MethodGet, "/repos/{owner}/{repo}/git/matching-refs/{ref}")
	getReposownerrepoGitRefref           = register("git", "GetReposownerrepoGitRefref", MethodGet, "/repos/{owner}/{repo}/git/ref/{ref}")
	postReposownerrepoGitRefs            = register("git", "PostReposownerrepoGitRefs", MethodPost, "/repos/{owner}/{repo}/git/refs")
	patchReposownerrepoGitRefsref        = register("git", "PatchReposownerrepoGitRefsref", MethodPatch, "/repos/{owner}/{repo}/git/refs/{ref}")
	deleteReposownerrepoGitRefsref       = register("git", "DeleteReposownerrepoGitRefsref", MethodDelete, "/repos/{owner}/{repo}/git/refs/{ref}")
	postReposownerrepoGitTags            = register("git", "PostReposownerrepoGitTags", MethodPost, "/repos/{owner}/{repo}/git/tags")
	getReposownerrepoGitTagstagSha       = register("git", "GetReposownerrepoGitTagstagSha", MethodGet, "/repos/{owner}/{repo}/git/tags/{tag_sha}")
	postReposownerrepoGitTrees           = register("git", "PostReposownerrepoGitTrees", MethodPost, "/repos/{owner}/{repo}/git/trees")
	getReposownerrepoGitTreestreeSha     = register("git", "GetReposownerrepoGitTreestreeSha", MethodGet, "/repos/{owner}/{repo}/git/trees/{tree_sha}")
)

func PostReposownerrepoGitBlobs(owner, repo string) Endpoint {
	return postReposownerrepoGitBlobs.bind(owner, repo)
}

func GetReposownerrepoGitBlobsfileSha(owner, repo, fileSha string) Endpoint {
	return getReposownerrepoGitBlobsfileSha.bind(owner, repo, fileSha)
}

func PostReposownerrepoGitCommits(owner, repo string) Endpoint {
	return postReposownerrepoGitCommits.bind(owner, repo)
}

func GetReposownerrepoGitCommitscommitSha(owner, repo, commitSha string) Endpoint {
	return getReposownerrepoGitCommitscommitSha.bind(owner, repo, commitSha)
}

func GetReposownerrepoGitMatchingRefsref(owner, repo, ref string) Endpoint {
	return getReposownerrepoGitMatchingRefsref.bind(owner, repo, ref)
}

func GetReposownerrepoGitRefref(owner, repo, ref string) Endpoint {
	return getReposownerrepoGitRefref.bind(owner, repo, ref)
}

func PostReposownerrepoGitRefs(owner, repo string) Endpoint {
	return postReposownerrepoGitRefs.bind(owner, repo)
}

func PatchReposownerrepoGitRefsref(owner, repo, ref string) Endpoint {
	return patchReposownerrepoGitRefsref.bind(owner, repo, ref)
}

func DeleteReposownerrepoGitRefsref(owner, repo, ref string) Endpoint {
	return deleteReposownerrepoGitRefsref.bind(owner, repo, ref)
}

func PostReposownerrepoGitTags(owner, repo string) Endpoint {
	return postReposownerrepoGitTags.bind(owner, repo)
}

func GetReposownerrepoGitTagstagSha(owner, repo, tagSha string) Endpoint {
	return getReposownerrepoGitTagstagSha.bind(owner, repo, tagSha)
}

func PostReposownerrepoGitTrees(owner, repo string) Endpoint {
	return postReposownerrepoGitTrees.bind(owner, repo)
}

func GetReposownerrepoGitTreestreeSha(owner, repo, treeSha string) Endpoint {
	return getReposownerrepoGitTreestreeSha.bind(owner, repo, treeSha)
}
