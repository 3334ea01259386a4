package endpoint

var (
	getOrgsorgSecretScanningAlerts                     = register("secret-scanning", "GetOrgsorgSecretScanningAlerts", MethodGet, "/orgs/{org}/secret-scanning/alerts")
	getReposownerrepoSecretScanningAlerts              = register("secret-scanning", "GetReposownerrepoSecretScanningAlerts", MethodGet, "/repos/{owner}/{repo}/secret-scanning/alerts")
	getReposownerrepoSecretScanningAlertsalertNumber   = register("secret-scanning", "GetReposownerrepoSecretScanningAlertsalertNumber", MethodGet, "/repos/{owner}/{repo}/secret-scanning/alerts/{alert_number}")
	patchReposownerrepoSecretScanningAlertsalertNumber = register("secret-scanning", "PatchReposownerrepoSecretScanningAlertsalertNumber", MethodPatch, "/repos/{owner}/{repo}/secret-scanning/alerts/{alert_number}")
)

func GetOrgsorgSecretScanningAlerts(org string) Endpoint {
	return getOrgsorgSecretScanningAlerts.bind(org)
}

func GetReposownerrepoSecretScanningAlerts(owner, repo string) Endpoint {
	return getReposownerrepoSecretScanningAlerts.bind(owner, repo)
}

func GetReposownerrepoSecretScanningAlertsalertNumber(owner, repo, alertNumber string) Endpoint {
	return getReposownerrepoSecretScanningAlertsalertNumber.bind(owner, repo, alertNumber)
}

func PatchReposownerrepoSecretScanningAlertsalertNumber(owner, repo, alertNumber string) Endpoint {
	return patchReposownerrepoSecretScanningAlertsalertNumber.bind(owner, repo, alertNumber)
}
