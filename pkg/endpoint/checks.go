package endpoint

var (
	postReposownerrepoCheckRuns                        = register("checks", "PostReposownerrepoCheckRuns", MethodPost, "/repos/{owner}/{repo}/check-runs")
	getReposownerrepoCheckRunscheckRunId               = register("checks", "GetReposownerrepoCheckRunscheckRunId", MethodGet, "/repos/{owner}/{repo}/check-runs/{check_run_id}")
	patchReposownerrepoCheckRunscheckRunId             = register("checks", "PatchReposownerrepoCheckRunscheckRunId", MethodPatch, "/repos/{owner}/{repo}/check-runs/{check_run_id}")
	getReposownerrepoCheckRunscheckRunIdAnnotations    = register("checks", "GetReposownerrepoCheckRunscheckRunIdAnnotations", MethodGet, "/repos/{owner}/{repo}/check-runs/{check_run_id}/annotations")
	postReposownerrepoCheckSuites                      = register("checks", "PostReposownerrepoCheckSuites", MethodPost, "/repos/{owner}/{repo}/check-suites")
	patchReposownerrepoCheckSuitesPreferences          = register("checks", "PatchReposownerrepoCheckSuitesPreferences", MethodPatch, "/repos/{owner}/{repo}/check-suites/preferences")
	getReposownerrepoCheckSuitescheckSuiteId           = register("checks", "GetReposownerrepoCheckSuitescheckSuiteId", MethodGet, "/repos/{owner}/{repo}/check-suites/{check_suite_id}")
	getReposownerrepoCheckSuitescheckSuiteIdCheckRuns  = register("checks", "GetReposownerrepoCheckSuitescheckSuiteIdCheckRuns", MethodGet, "/repos/{owner}/{repo}/check-suites/{check_suite_id}/check-runs")
	postReposownerrepoCheckSuitescheckSuiteIdRerequest = register("checks", "PostReposownerrepoCheckSuitescheckSuiteIdRerequest", MethodPost, "/repos/{owner}/{repo}/check-suites/{check_suite_id}/rerequest")
	getReposownerrepoCommitsrefCheckRuns               = register("checks", "GetReposownerrepoCommitsrefCheckRuns", MethodGet, "/repos/{owner}/{repo}/commits/{ref}/check-runs")
	getReposownerrepoCommitsrefCheckSuites             = register("checks", "GetReposownerrepoCommitsrefCheckSuites", MethodGet, "/repos/{owner}/{repo}/commits/{ref}/check-suites")
)

func PostReposownerrepoCheckRuns(owner, repo string) Endpoint {
	return postReposownerrepoCheckRuns.bind(owner, repo)
}

func GetReposownerrepoCheckRunscheckRunId(owner, repo, checkRunID string) Endpoint {
	return getReposownerrepoCheckRunscheckRunId.bind(owner, repo, checkRunID)
}

func PatchReposownerrepoCheckRunscheckRunId(owner, repo, checkRunID string) Endpoint {
	return patchReposownerrepoCheckRunscheckRunId.bind(owner, repo, checkRunID)
}

func GetReposownerrepoCheckRunscheckRunIdAnnotations(owner, repo, checkRunID string) Endpoint {
	return getReposownerrepoCheckRunscheckRunIdAnnotations.bind(owner, repo, checkRunID)
}

func PostReposownerrepoCheckSuites(owner, repo string) Endpoint {
	return postReposownerrepoCheckSuites.bind(owner, repo)
}

func PatchReposownerrepoCheckSuitesPreferences(owner, repo string) Endpoint {
	return patchReposownerrepoCheckSuitesPreferences.bind(owner, repo)
}

func GetReposownerrepoCheckSuitescheckSuiteId(owner, repo, checkSuiteID string) Endpoint {
	return getReposownerrepoCheckSuitescheckSuiteId.bind(owner, repo, checkSuiteID)
}

func GetReposownerrepoCheckSuitescheckSuiteIdCheckRuns(owner, repo, checkSuiteID string) Endpoint {
	return getReposownerrepoCheckSuitescheckSuiteIdCheckRuns.bind(owner, repo, checkSuiteID)
}

func PostReposownerrepoCheckSuitescheckSuiteIdRerequest(owner, repo, checkSuiteID string) Endpoint {
	return postReposownerrepoCheckSuitescheckSuiteIdRerequest.bind(owner, repo, checkSuiteID)
}

func GetReposownerrepoCommitsrefCheckRuns(owner, repo, ref string) Endpoint {
	return getReposownerrepoCommitsrefCheckRuns.bind(owner, repo, ref)
}

func GetReposownerrepoCommitsrefCheckSuites(owner, repo, ref string) Endpoint {
	return getReposownerrepoCommitsrefCheckSuites.bind(owner, repo, ref)
}
