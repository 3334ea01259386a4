package endpoint

var (
	getReposownerrepoCodeScanningAlerts                     = register("code-scanning", "GetReposownerrepoCodeScanningAlerts", MethodGet, "/repos/{owner}/{repo}/code-scanning/alerts")
	getReposownerrepoCodeScanningAlertsalertNumber          = register("code-scanning", "GetReposownerrepoCodeScanningAlertsalertNumber", MethodGet, "/repos/{owner}/{repo}/code-scanning/alerts/{alert_number}")
	patchReposownerrepoCodeScanningAlertsalertNumber        = register("code-scanning", "PatchReposownerrepoCodeScanningAlertsalertNumber", MethodPatch, "/repos/{owner}/{repo}/code-scanning/alerts/{alert_number}")
	getReposownerrepoCodeScanningAlertsalertNumberInstances = register("code-scanning", "GetReposownerrepoCodeScanningAlertsalertNumberInstances", MethodGet, "/repos/{owner}/{repo}/code-scanning/alerts/{alert_number}/instances")
	getReposownerrepoCodeScanningAnalyses                   = register("code-scanning", "GetReposownerrepoCodeScanningAnalyses", MethodGet, "/repos/{owner}/{repo}/code-scanning/analyses")
	getReposownerrepoCodeScanningAnalysesanalysisId         = register("code-scanning", "GetReposownerrepoCodeScanningAnalysesanalysisId", MethodGet, "/repos/{owner}/{repo}/code-scanning/analyses/{analysis_id}")
	deleteReposownerrepoCodeScanningAnalysesanalysisId      = register("code-scanning", "DeleteReposownerrepoCodeScanningAnalysesanalysisId", MethodDelete, "/repos/{owner}/{repo}/code-scanning/analyses/{analysis_id}")
	postReposownerrepoCodeScanningSarifs                    = register("code-scanning", "PostReposownerrepoCodeScanningSarifs", MethodPost, "/repos/{owner}/{repo}/code-scanning/sarifs")
	getReposownerrepoCodeScanningSarifssarifId              = register("code-scanning", "GetReposownerrepoCodeScanningSarifssarifId", MethodGet, "/repos/{owner}/{repo}/code-scanning/sarifs/{sarif_id}")
)

func GetReposownerrepoCodeScanningAlerts(owner, repo string) Endpoint {
	return getReposownerrepoCodeScanningAlerts.bind(owner, repo)
}

func GetReposownerrepoCodeScanningAlertsalertNumber(owner, repo, alertNumber string) Endpoint {
	return getReposownerrepoCodeScanningAlertsalertNumber.bind(owner, repo, alertNumber)
}

func PatchReposownerrepoCodeScanningAlertsalertNumber(owner, repo, alertNumber string) Endpoint {
	return patchReposownerrepoCodeScanningAlertsalertNumber.bind(owner, repo, alertNumber)
}

func GetReposownerrepoCodeScanningAlertsalertNumberInstances(owner, repo, alertNumber string) Endpoint {
	return getReposownerrepoCodeScanningAlertsalertNumberInstances.bind(owner, repo, alertNumber)
}

func GetReposownerrepoCodeScanningAnalyses(owner, repo string) Endpoint {
	return getReposownerrepoCodeScanningAnalyses.bind(owner, repo)
}

func GetReposownerrepoCodeScanningAnalysesanalysisId(owner, repo, analysisID string) Endpoint {
	return getReposownerrepoCodeScanningAnalysesanalysisId.bind(owner, repo, analysisID)
}

func DeleteReposownerrepoCodeScanningAnalysesanalysisId(owner, repo, analysisID string) Endpoint {
	return deleteReposownerrepoCodeScanningAnalysesanalysisId.bind(owner, repo, analysisID)
}

func PostReposownerrepoCodeScanningSarifs(owner, repo string) Endpoint {
	return postReposownerrepoCodeScanningSarifs.bind(owner, repo)
}

func GetReposownerrepoCodeScanningSarifssarifId(owner, repo, sarifID string) Endpoint {
	return getReposownerrepoCodeScanningSarifssarifId.bind(owner, repo, sarifID)
}
