package endpoint

var (
	getOrgsorgActionsPermissions                                               = register("actions", "GetOrgsorgActionsPermissions", MethodGet, "/orgs/{org}/actions/permissions")
	putOrgsorgActionsPermissions                                               = register("actions", "PutOrgsorgActionsPermissions", MethodPut, "/orgs/{org}/actions/permissions")
	getOrgsorgActionsPermissionsRepositories                                   = register("actions", "GetOrgsorgActionsPermissionsRepositories", MethodGet, "/orgs/{org}/actions/permissions/repositories")
	putOrgsorgActionsPermissionsRepositories                                   = register("actions", "PutOrgsorgActionsPermissionsRepositories", MethodPut, "/orgs/{org}/actions/permissions/repositories")
	putOrgsorgActionsPermissionsRepositoriesrepositoryId                       = register("actions", "PutOrgsorgActionsPermissionsRepositoriesrepositoryId", MethodPut, "/orgs/{org}/actions/permissions/repositories/{repository_id}")
	deleteOrgsorgActionsPermissionsRepositoriesrepositoryId                    = register("actions", "DeleteOrgsorgActionsPermissionsRepositoriesrepositoryId", MethodDelete, "/orgs/{org}/actions/permissions/repositories/{repository_id}")
	getOrgsorgActionsPermissionsSelectedActions                                = register("actions", "GetOrgsorgActionsPermissionsSelectedActions", MethodGet, "/orgs/{org}/actions/permissions/selected-actions")
	putOrgsorgActionsPermissionsSelectedActions                                = register("actions", "PutOrgsorgActionsPermissionsSelectedActions", MethodPut, "/orgs/{org}/actions/permissions/selected-actions")
	getOrgsorgActionsRunnerGroups                                              = register("actions", "GetOrgsorgActionsRunnerGroups", MethodGet, "/orgs/{org}/actions/runner-groups")
	postOrgsorgActionsRunnerGroups                                             = register("actions", "PostOrgsorgActionsRunnerGroups", MethodPost, "/orgs/{org}/actions/runner-groups")
	getOrgsorgActionsRunnerGroupsrunnerGroupId                                 = register("actions", "GetOrgsorgActionsRunnerGroupsrunnerGroupId", MethodGet, "/orgs/{org}/actions/runner-groups/{runner_group_id}")
	patchOrgsorgActionsRunnerGroupsrunnerGroupId                               = register("actions", "PatchOrgsorgActionsRunnerGroupsrunnerGroupId", MethodPatch, "/orgs/{org}/actions/runner-groups/{runner_group_id}")
	deleteOrgsorgActionsRunnerGroupsrunnerGroupId                              = register("actions", "DeleteOrgsorgActionsRunnerGroupsrunnerGroupId", MethodDelete, "/orgs/{org}/actions/runner-groups/{runner_group_id}")
	getOrgsorgActionsRunnerGroupsrunnerGroupIdRepositories                     = register("actions", "GetOrgsorgActionsRunnerGroupsrunnerGroupIdRepositories", MethodGet, "/orgs/{org}/actions/runner-groups/{runner_group_id}/repositories")
	putOrgsorgActionsRunnerGroupsrunnerGroupIdRepositories                     = register("actions", "PutOrgsorgActionsRunnerGroupsrunnerGroupIdRepositories", MethodPut, "/orgs/{org}/actions/runner-groups/{runner_group_id}/repositories")
	putOrgsorgActionsRunnerGroupsrunnerGroupIdRepositoriesrepositoryId         = register("actions", "PutOrgsorgActionsRunnerGroupsrunnerGroupIdRepositoriesrepositoryId", MethodPut, "/orgs/{org}/actions/runner-groups/{runner_group_id}/repositories/{repository_id}")
	deleteOrgsorgActionsRunnerGroupsrunnerGroupIdRepositoriesrepositoryId      = register("actions", "DeleteOrgsorgActionsRunnerGroupsrunnerGroupIdRepositoriesrepositoryId", MethodDelete, "/orgs/{org}/actions/runner-groups/{runner_group_id}/repositories/{repository_id}")
	getOrgsorgActionsRunnerGroupsrunnerGroupIdRunners                          = register("actions", "GetOrgsorgActionsRunnerGroupsrunnerGroupIdRunners", MethodGet, "/orgs/{org}/actions/runner-groups/{runner_group_id}/runners")
	putOrgsorgActionsRunnerGroupsrunnerGroupIdRunners                          = register("actions", "PutOrgsorgActionsRunnerGroupsrunnerGroupIdRunners", MethodPut, "/orgs/{org}/actions/runner-groups/{runner_group_id}/runners")
	putOrgsorgActionsRunnerGroupsrunnerGroupIdRunnersrunnerId                  = register("actions", "PutOrgsorgActionsRunnerGroupsrunnerGroupIdRunnersrunnerId", MethodPut, "/orgs/{org}/actions/runner-groups/{runner_group_id}/runners/{runner_id}")
	deleteOrgsorgActionsRunnerGroupsrunnerGroupIdRunnersrunnerId               = register("actions", "DeleteOrgsorgActionsRunnerGroupsrunnerGroupIdRunnersrunnerId", MethodDelete, "/orgs/{org}/actions/runner-groups/{runner_group_id}/runners/{runner_id}")
	getOrgsorgActionsRunners                                                   = register("actions", "GetOrgsorgActionsRunners", MethodGet, "/orgs/{org}/actions/runners")
	getOrgsorgActionsRunnersDownloads                                          = register("actions", "GetOrgsorgActionsRunnersDownloads", MethodGet, "/orgs/{org}/actions/runners/downloads")
	postOrgsorgActionsRunnersRegistrationToken                                 = register("actions", "PostOrgsorgActionsRunnersRegistrationToken", MethodPost, "/orgs/{org}/actions/runners/registration-token")
	postOrgsorgActionsRunnersRemoveToken                                       = register("actions", "PostOrgsorgActionsRunnersRemoveToken", MethodPost, "/orgs/{org}/actions/runners/remove-token")
	getOrgsorgActionsRunnersrunnerId                                           = register("actions", "GetOrgsorgActionsRunnersrunnerId", MethodGet, "/orgs/{org}/actions/runners/{runner_id}")
	deleteOrgsorgActionsRunnersrunnerId                                        = register("actions", "DeleteOrgsorgActionsRunnersrunnerId", MethodDelete, "/orgs/{org}/actions/runners/{runner_id}")
	getOrgsorgActionsRunnersrunnerIdLabels                                     = register("actions", "GetOrgsorgActionsRunnersrunnerIdLabels", MethodGet, "/orgs/{org}/actions/runners/{runner_id}/labels")
	postOrgsorgActionsRunnersrunnerIdLabels                                    = register("actions", "PostOrgsorgActionsRunnersrunnerIdLabels", MethodPost, "/orgs/{org}/actions/runners/{runner_id}/labels")
	putOrgsorgActionsRunnersrunnerIdLabels                                     = register("actions", "PutOrgsorgActionsRunnersrunnerIdLabels", MethodPut, "/orgs/{org}/actions/runners/{runner_id}/labels")
	deleteOrgsorgActionsRunnersrunnerIdLabels                                  = register("actions", "DeleteOrgsorgActionsRunnersrunnerIdLabels", MethodDelete, "/orgs/{org}/actions/runners/{runner_id}/labels")
	deleteOrgsorgActionsRunnersrunnerIdLabelsname                              = register("actions", "DeleteOrgsorgActionsRunnersrunnerIdLabelsname", MethodDelete, "/orgs/{org}/actions/runners/{runner_id}/labels/{name}")
	getOrgsorgActionsSecrets                                                   = register("actions", "GetOrgsorgActionsSecrets", MethodGet, "/orgs/{org}/actions/secrets")
	getOrgsorgActionsSecretsPublicKey                                          = register("actions", "GetOrgsorgActionsSecretsPublicKey", MethodGet, "/orgs/{org}/actions/secrets/public-key")
	getOrgsorgActionsSecretssecretName                                         = register("actions", "GetOrgsorgActionsSecretssecretName", MethodGet, "/orgs/{org}/actions/secrets/{secret_name}")
	putOrgsorgActionsSecretssecretName                                         = register("actions", "PutOrgsorgActionsSecretssecretName", MethodPut, "/orgs/{org}/actions/secrets/{secret_name}")
	deleteOrgsorgActionsSecretssecretName                                      = register("actions", "DeleteOrgsorgActionsSecretssecretName", MethodDelete, "/orgs/{org}/actions/secrets/{secret_name}")
	getOrgsorgActionsSecretssecretNameRepositories                             = register("actions", "GetOrgsorgActionsSecretssecretNameRepositories", MethodGet, "/orgs/{org}/actions/secrets/{secret_name}/repositories")
	putOrgsorgActionsSecretssecretNameRepositories                             = register("actions", "PutOrgsorgActionsSecretssecretNameRepositories", MethodPut, "/orgs/{org}/actions/secrets/{secret_name}/repositories")
	putOrgsorgActionsSecretssecretNameRepositoriesrepositoryId                 = register("actions", "PutOrgsorgActionsSecretssecretNameRepositoriesrepositoryId", MethodPut, "/orgs/{org}/actions/secrets/{secret_name}/repositories/{repository_id}")
	deleteOrgsorgActionsSecretssecretNameRepositoriesrepositoryId              = register("actions", "DeleteOrgsorgActionsSecretssecretNameRepositoriesrepositoryId", MethodDelete, "/orgs/{org}/actions/secrets/{secret_name}/repositories/{repository_id}")
	getReposownerrepoActionsArtifacts                                          = register("actions", "GetReposownerrepoActionsArtifacts", MethodGet, "/repos/{owner}/{repo}/actions/artifacts")
	getReposownerrepoActionsArtifactsartifactId                                = register("actions", "GetReposownerrepoActionsArtifactsartifactId", MethodGet, "/repos/{owner}/{repo}/actions/artifacts/{artifact_id}")
	deleteReposownerrepoActionsArtifactsartifactId                             = register("actions", "DeleteReposownerrepoActionsArtifactsartifactId", MethodDelete, "/repos/{owner}/{repo}/actions/artifacts/{artifact_id}")
	getReposownerrepoActionsArtifactsartifactIdarchiveFormat                   = register("actions", "GetReposownerrepoActionsArtifactsartifactIdarchiveFormat", MethodGet, "/repos/{owner}/{repo}/actions/artifacts/{artifact_id}/{archive_format}")
	getReposownerrepoActionsJobsjobId                                          = register("actions", "GetReposownerrepoActionsJobsjobId", MethodGet, "/repos/{owner}/{repo}/actions/jobs/{job_id}")
	getReposownerrepoActionsJobsjobIdLogs                                      = register("actions", "GetReposownerrepoActionsJobsjobIdLogs", MethodGet, "/repos/{owner}/{repo}/actions/jobs/{job_id}/logs")
	getReposownerrepoActionsPermissions                                        = register("actions", "GetReposownerrepoActionsPermissions", MethodGet, "/repos/{owner}/{repo}/actions/permissions")
	putReposownerrepoActionsPermissions                                        = register("actions", "PutReposownerrepoActionsPermissions", MethodPut, "/repos/{owner}/{repo}/actions/permissions")
	getReposownerrepoActionsPermissionsSelectedActions                         = register("actions", "GetReposownerrepoActionsPermissionsSelectedActions", MethodGet, "/repos/{owner}/{repo}/actions/permissions/selected-actions")
	putReposownerrepoActionsPermissionsSelectedActions                         = register("actions", "PutReposownerrepoActionsPermissionsSelectedActions", MethodPut, "/repos/{owner}/{repo}/actions/permissions/selected-actions")
	getReposownerrepoActionsRunners                                            = register("actions", "GetReposownerrepoActionsRunners", MethodGet, "/repos/{owner}/{repo}/actions/runners")
	getReposownerrepoActionsRunnersDownloads                                   = register("actions", "GetReposownerrepoActionsRunnersDownloads", MethodGet, "/repos/{owner}/{repo}/actions/runners/downloads")
	postReposownerrepoActionsRunnersRegistrationToken                          = register("actions", "PostReposownerrepoActionsRunnersRegistrationToken", MethodPost, "/repos/{owner}/{repo}/actions/runners/registration-token")
	postReposownerrepoActionsRunnersRemoveToken                                = register("actions", "PostReposownerrepoActionsRunnersRemoveToken", MethodPost, "/repos/{owner}/{repo}/actions/runners/remove-token")
	getReposownerrepoActionsRunnersrunnerId                                    = register("actions", "GetReposownerrepoActionsRunnersrunnerId", MethodGet, "/repos/{owner}/{repo}/actions/runners/{runner_id}")
	deleteReposownerrepoActionsRunnersrunnerId                                 = register("actions", "DeleteReposownerrepoActionsRunnersrunnerId", MethodDelete, "/repos/{owner}/{repo}/actions/runners/{runner_id}")
	getReposownerrepoActionsRunnersrunnerIdLabels                              = register("actions", "GetReposownerrepoActionsRunnersrunnerIdLabels", MethodGet, "/repos/{owner}/{repo}/actions/runners/{runner_id}/labels")
	postReposownerrepoActionsRunnersrunnerIdLabels                             = register("actions", "PostReposownerrepoActionsRunnersrunnerIdLabels", MethodPost, "/repos/{owner}/{repo}/actions/runners/{runner_id}/labels")
	putReposownerrepoActionsRunnersrunnerIdLabels                              = register("actions", "PutReposownerrepoActionsRunnersrunnerIdLabels", MethodPut, "/repos/{owner}/{repo}/actions/runners/{runner_id}/labels")
	deleteReposownerrepoActionsRunnersrunnerIdLabels                           = register("actions", "DeleteReposownerrepoActionsRunnersrunnerIdLabels", MethodDelete, "/repos/{owner}/{repo}/actions/runners/{runner_id}/labels")
	deleteReposownerrepoActionsRunnersrunnerIdLabelsname                       = register("actions", "DeleteReposownerrepoActionsRunnersrunnerIdLabelsname", MethodDelete, "/repos/{owner}/{repo}/actions/runners/{runner_id}/labels/{name}")
	getReposownerrepoActionsRuns                                               = register("actions", "GetReposownerrepoActionsRuns", MethodGet, "/repos/{owner}/{repo}/actions/runs")
	getReposownerrepoActionsRunsrunId                                          = register("actions", "GetReposownerrepoActionsRunsrunId", MethodGet, "/repos/{owner}/{repo}/actions/runs/{run_id}")
	deleteReposownerrepoActionsRunsrunId                                       = register("actions", "DeleteReposownerrepoActionsRunsrunId", MethodDelete, "/repos/{owner}/{repo}/actions/runs/{run_id}")
	getReposownerrepoActionsRunsrunIdApprovals                                 = register("actions", "GetReposownerrepoActionsRunsrunIdApprovals", MethodGet, "/repos/{owner}/{repo}/actions/runs/{run_id}/approvals")
	postReposownerrepoActionsRunsrunIdApprove                                  = register("actions", "PostReposownerrepoActionsRunsrunIdApprove", MethodPost, "/repos/{owner}/{repo}/actions/runs/{run_id}/approve")
	getReposownerrepoActionsRunsrunIdArtifacts                                 = register("actions", "GetReposownerrepoActionsRunsrunIdArtifacts", MethodGet, "/repos/{owner}/{repo}/actions/runs/{run_id}/artifacts")
	postReposownerrepoActionsRunsrunIdCancel                                   = register("actions", "PostReposownerrepoActionsRunsrunIdCancel", MethodPost, "/repos/{owner}/{repo}/actions/runs/{run_id}/cancel")
	getReposownerrepoActionsRunsrunIdJobs                                      = register("actions", "GetReposownerrepoActionsRunsrunIdJobs", MethodGet, "/repos/{owner}/{repo}/actions/runs/{run_id}/jobs")
	getReposownerrepoActionsRunsrunIdLogs                                      = register("actions", "GetReposownerrepoActionsRunsrunIdLogs", MethodGet, "/repos/{owner}/{repo}/actions/runs/{run_id}/logs")
	deleteReposownerrepoActionsRunsrunIdLogs                                   = register("actions", "DeleteReposownerrepoActionsRunsrunIdLogs", MethodDelete, "/repos/{owner}/{repo}/actions/runs/{run_id}/logs")
	getReposownerrepoActionsRunsrunIdPendingDeployments                        = register("actions", "GetReposownerrepoActionsRunsrunIdPendingDeployments", MethodGet, "/repos/{owner}/{repo}/actions/runs/{run_id}/pending_deployments")
	postReposownerrepoActionsRunsrunIdPendingDeployments                       = register("actions", "PostReposownerrepoActionsRunsrunIdPendingDeployments", MethodPost, "/repos/{owner}/{repo}/actions/runs/{run_id}/pending_deployments")
	postReposownerrepoActionsRunsrunIdRerun                                    = register("actions", "PostReposownerrepoActionsRunsrunIdRerun", MethodPost, "/repos/{owner}/{repo}/actions/runs/{run_id}/rerun")
	getReposownerrepoActionsRunsrunIdTiming                                    = register("actions", "GetReposownerrepoActionsRunsrunIdTiming", MethodGet, "/repos/{owner}/{repo}/actions/runs/{run_id}/timing")
	getReposownerrepoActionsSecrets                                            = register("actions", "GetReposownerrepoActionsSecrets", MethodGet, "/repos/{owner}/{repo}/actions/secrets")
	getReposownerrepoActionsSecretsPublicKey                                   = register("actions", "GetReposownerrepoActionsSecretsPublicKey", MethodGet, "/repos/{owner}/{repo}/actions/secrets/public-key")
	getReposownerrepoActionsSecretssecretName                                  = register("actions", "GetReposownerrepoActionsSecretssecretName", MethodGet, "/repos/{owner}/{repo}/actions/secrets/{secret_name}")
	putReposownerrepoActionsSecretssecretName                                  = register("actions", "PutReposownerrepoActionsSecretssecretName", MethodPut, "/repos/{owner}/{repo}/actions/secrets/{secret_name}")
	deleteReposownerrepoActionsSecretssecretName                               = register("actions", "DeleteReposownerrepoActionsSecretssecretName", MethodDelete, "/repos/{owner}/{repo}/actions/secrets/{secret_name}")
	getReposownerrepoActionsWorkflows                                          = register("actions", "GetReposownerrepoActionsWorkflows", MethodGet, "/repos/{owner}/{repo}/actions/workflows")
	getReposownerrepoActionsWorkflowsworkflowId                                = register("actions", "GetReposownerrepoActionsWorkflowsworkflowId", MethodGet, "/repos/{owner}/{repo}/actions/workflows/{workflow_id}")
	putReposownerrepoActionsWorkflowsworkflowIdDisable                         = register("actions", "PutReposownerrepoActionsWorkflowsworkflowIdDisable", MethodPut, "/repos/{owner}/{repo}/actions/workflows/{workflow_id}/disable")
	postReposownerrepoActionsWorkflowsworkflowIdDispatches                     = register("actions", "PostReposownerrepoActionsWorkflowsworkflowIdDispatches", MethodPost, "/repos/{owner}/{repo}/actions/workflows/{workflow_id}/dispatches")
	putReposownerrepoActionsWorkflowsworkflowIdEnable                          = register("actions", "PutReposownerrepoActionsWorkflowsworkflowIdEnable", MethodPut, "/repos/{owner}/{repo}/actions/workflows/{workflow_id}/enable")
	getReposownerrepoActionsWorkflowsworkflowIdRuns                            = register("actions", "GetReposownerrepoActionsWorkflowsworkflowIdRuns", MethodGet, "/repos/{owner}/{repo}/actions/workflows/{workflow_id}/runs")
	getReposownerrepoActionsWorkflowsworkflowIdTiming                          = register("actions", "GetReposownerrepoActionsWorkflowsworkflowIdTiming", MethodGet, "/repos/{owner}/{repo}/actions/workflows/{workflow_id}/timing")
	getRepositoriesrepositoryIdEnvironmentsenvironmentNameSecrets              = register("actions", "GetRepositoriesrepositoryIdEnvironmentsenvironmentNameSecrets", MethodGet, "/repositories/{repository_id}/environments/{environment_name}/secrets")
	getRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretsPublicKey     = register("actions", "GetRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretsPublicKey", MethodGet, "/repositories/{repository_id}/environments/{environment_name}/secrets/public-key")
	getRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretssecretName    = register("actions", "GetRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretssecretName", MethodGet, "/repositories/{repository_id}/environments/{environment_name}/secrets/{secret_name}")
	putRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretssecretName    = register("actions", "PutRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretssecretName", MethodPut, "/repositories/{repository_id}/environments/{environment_name}/secrets/{secret_name}")
	deleteRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretssecretName = register("actions", "DeleteRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretssecretName", MethodDelete, "/repositories/{repository_id}/environments/{environment_name}/secrets/{secret_name}")
)

func GetOrgsorgActionsPermissions(org string) Endpoint {
	return getOrgsorgActionsPermissions.bind(org)
}

func PutOrgsorgActionsPermissions(org string) Endpoint {
	return putOrgsorgActionsPermissions.bind(org)
}

func GetOrgsorgActionsPermissionsRepositories(org string) Endpoint {
	return getOrgsorgActionsPermissionsRepositories.bind(org)
}

func PutOrgsorgActionsPermissionsRepositories(org string) Endpoint {
	return putOrgsorgActionsPermissionsRepositories.bind(org)
}

func PutOrgsorgActionsPermissionsRepositoriesrepositoryId(org, repositoryID string) Endpoint {
	return putOrgsorgActionsPermissionsRepositoriesrepositoryId.bind(org, repositoryID)
}

func DeleteOrgsorgActionsPermissionsRepositoriesrepositoryId(org, repositoryID string) Endpoint {
	return deleteOrgsorgActionsPermissionsRepositoriesrepositoryId.bind(org, repositoryID)
}

func GetOrgsorgActionsPermissionsSelectedActions(org string) Endpoint {
	return getOrgsorgActionsPermissionsSelectedActions.bind(org)
}

func PutOrgsorgActionsPermissionsSelectedActions(org string) Endpoint {
	return putOrgsorgActionsPermissionsSelectedActions.bind(org)
}

func GetOrgsorgActionsRunnerGroups(org string) Endpoint {
	return getOrgsorgActionsRunnerGroups.bind(org)
}

func PostOrgsorgActionsRunnerGroups(org string) Endpoint {
	return postOrgsorgActionsRunnerGroups.bind(org)
}

func GetOrgsorgActionsRunnerGroupsrunnerGroupId(org, runnerGroupID string) Endpoint {
	return getOrgsorgActionsRunnerGroupsrunnerGroupId.bind(org, runnerGroupID)
}

func PatchOrgsorgActionsRunnerGroupsrunnerGroupId(org, runnerGroupID string) Endpoint {
	return patchOrgsorgActionsRunnerGroupsrunnerGroupId.bind(org, runnerGroupID)
}

func DeleteOrgsorgActionsRunnerGroupsrunnerGroupId(org, runnerGroupID string) Endpoint {
	return deleteOrgsorgActionsRunnerGroupsrunnerGroupId.bind(org, runnerGroupID)
}

func GetOrgsorgActionsRunnerGroupsrunnerGroupIdRepositories(org, runnerGroupID string) Endpoint {
	return getOrgsorgActionsRunnerGroupsrunnerGroupIdRepositories.bind(org, runnerGroupID)
}

func PutOrgsorgActionsRunnerGroupsrunnerGroupIdRepositories(org, runnerGroupID string) Endpoint {
	return putOrgsorgActionsRunnerGroupsrunnerGroupIdRepositories.bind(org, runnerGroupID)
}

func PutOrgsorgActionsRunnerGroupsrunnerGroupIdRepositoriesrepositoryId(org, runnerGroupID, repositoryID string) Endpoint {
	return putOrgsorgActionsRunnerGroupsrunnerGroupIdRepositoriesrepositoryId.bind(org, runnerGroupID, repositoryID)
}

func DeleteOrgsorgActionsRunnerGroupsrunnerGroupIdRepositoriesrepositoryId(org, runnerGroupID, repositoryID string) Endpoint {
	return deleteOrgsorgActionsRunnerGroupsrunnerGroupIdRepositoriesrepositoryId.bind(org, runnerGroupID, repositoryID)
}

func GetOrgsorgActionsRunnerGroupsrunnerGroupIdRunners(org, runnerGroupID string) Endpoint {
	return getOrgsorgActionsRunnerGroupsrunnerGroupIdRunners.bind(org, runnerGroupID)
}

func PutOrgsorgActionsRunnerGroupsrunnerGroupIdRunners(org, runnerGroupID string) Endpoint {
	return putOrgsorgActionsRunnerGroupsrunnerGroupIdRunners.bind(org, runnerGroupID)
}

func PutOrgsorgActionsRunnerGroupsrunnerGroupIdRunnersrunnerId(org, runnerGroupID, runnerID string) Endpoint {
	return putOrgsorgActionsRunnerGroupsrunnerGroupIdRunnersrunnerId.bind(org, runnerGroupID, runnerID)
}

func DeleteOrgsorgActionsRunnerGroupsrunnerGroupIdRunnersrunnerId(org, runnerGroupID, runnerID string) Endpoint {
	return deleteOrgsorgActionsRunnerGroupsrunnerGroupIdRunnersrunnerId.bind(org, runnerGroupID, runnerID)
}

func GetOrgsorgActionsRunners(org string) Endpoint {
	return getOrgsorgActionsRunners.bind(org)
}

func GetOrgsorgActionsRunnersDownloads(org string) Endpoint {
	return getOrgsorgActionsRunnersDownloads.bind(org)
}

func PostOrgsorgActionsRunnersRegistrationToken(org string) Endpoint {
	return postOrgsorgActionsRunnersRegistrationToken.bind(org)
}

func PostOrgsorgActionsRunnersRemoveToken(org string) Endpoint {
	return postOrgsorgActionsRunnersRemoveToken.bind(org)
}

func GetOrgsorgActionsRunnersrunnerId(org, runnerID string) Endpoint {
	return getOrgsorgActionsRunnersrunnerId.bind(org, runnerID)
}

func DeleteOrgsorgActionsRunnersrunnerId(org, runnerID string) Endpoint {
	return deleteOrgsorgActionsRunnersrunnerId.bind(org, runnerID)
}

func GetOrgsorgActionsRunnersrunnerIdLabels(org, runnerID string) Endpoint {
	return getOrgsorgActionsRunnersrunnerIdLabels.bind(org, runnerID)
}

func PostOrgsorgActionsRunnersrunnerIdLabels(org, runnerID string) Endpoint {
	return postOrgsorgActionsRunnersrunnerIdLabels.bind(org, runnerID)
}

func PutOrgsorgActionsRunnersrunnerIdLabels(org, runnerID string) Endpoint {
	return putOrgsorgActionsRunnersrunnerIdLabels.bind(org, runnerID)
}

func DeleteOrgsorgActionsRunnersrunnerIdLabels(org, runnerID string) Endpoint {
	return deleteOrgsorgActionsRunnersrunnerIdLabels.bind(org, runnerID)
}

func DeleteOrgsorgActionsRunnersrunnerIdLabelsname(org, runnerID, name string) Endpoint {
	return deleteOrgsorgActionsRunnersrunnerIdLabelsname.bind(org, runnerID, name)
}

func GetOrgsorgActionsSecrets(org string) Endpoint {
	return getOrgsorgActionsSecrets.bind(org)
}

func GetOrgsorgActionsSecretsPublicKey(org string) Endpoint {
	return getOrgsorgActionsSecretsPublicKey.bind(org)
}

func GetOrgsorgActionsSecretssecretName(org, secretName string) Endpoint {
	return getOrgsorgActionsSecretssecretName.bind(org, secretName)
}

func PutOrgsorgActionsSecretssecretName(org, secretName string) Endpoint {
	return putOrgsorgActionsSecretssecretName.bind(org, secretName)
}

func DeleteOrgsorgActionsSecretssecretName(org, secretName string) Endpoint {
	return deleteOrgsorgActionsSecretssecretName.bind(org, secretName)
}

func GetOrgsorgActionsSecretssecretNameRepositories(org, secretName string) Endpoint {
	return getOrgsorgActionsSecretssecretNameRepositories.bind(org, secretName)
}

func PutOrgsorgActionsSecretssecretNameRepositories(org, secretName string) Endpoint {
	return putOrgsorgActionsSecretssecretNameRepositories.bind(org, secretName)
}

func PutOrgsorgActionsSecretssecretNameRepositoriesrepositoryId(org, secretName, repositoryID string) Endpoint {
	return putOrgsorgActionsSecretssecretNameRepositoriesrepositoryId.bind(org, secretName, repositoryID)
}

func DeleteOrgsorgActionsSecretssecretNameRepositoriesrepositoryId(org, secretName, repositoryID string) Endpoint {
	return deleteOrgsorgActionsSecretssecretNameRepositoriesrepositoryId.bind(org, secretName, repositoryID)
}

func GetReposownerrepoActionsArtifacts(owner, repo string) Endpoint {
	return getReposownerrepoActionsArtifacts.bind(owner, repo)
}

func GetReposownerrepoActionsArtifactsartifactId(owner, repo, artifactID string) Endpoint {
	return getReposownerrepoActionsArtifactsartifactId.bind(owner, repo, artifactID)
}

func DeleteReposownerrepoActionsArtifactsartifactId(owner, repo, artifactID string) Endpoint {
	return deleteReposownerrepoActionsArtifactsartifactId.bind(owner, repo, artifactID)
}

func GetReposownerrepoActionsArtifactsartifactIdarchiveFormat(owner, repo, artifactID, archiveFormat string) Endpoint {
	return getReposownerrepoActionsArtifactsartifactIdarchiveFormat.bind(owner, repo, artifactID, archiveFormat)
}

func GetReposownerrepoActionsJobsjobId(owner, repo, jobID string) Endpoint {
	return getReposownerrepoActionsJobsjobId.bind(owner, repo, jobID)
}

func GetReposownerrepoActionsJobsjobIdLogs(owner, repo, jobID string) Endpoint {
	return getReposownerrepoActionsJobsjobIdLogs.bind(owner, repo, jobID)
}

func GetReposownerrepoActionsPermissions(owner, repo string) Endpoint {
	return getReposownerrepoActionsPermissions.bind(owner, repo)
}

func PutReposownerrepoActionsPermissions(owner, repo string) Endpoint {
	return putReposownerrepoActionsPermissions.bind(owner, repo)
}

func GetReposownerrepoActionsPermissionsSelectedActions(owner, repo string) Endpoint {
	return getReposownerrepoActionsPermissionsSelectedActions.bind(owner, repo)
}

func PutReposownerrepoActionsPermissionsSelectedActions(owner, repo string) Endpoint {
	return putReposownerrepoActionsPermissionsSelectedActions.bind(owner, repo)
}

func GetReposownerrepoActionsRunners(owner, repo string) Endpoint {
	return getReposownerrepoActionsRunners.bind(owner, repo)
}

func GetReposownerrepoActionsRunnersDownloads(owner, repo string) Endpoint {
	return getReposownerrepoActionsRunnersDownloads.bind(owner, repo)
}

func PostReposownerrepoActionsRunnersRegistrationToken(owner, repo string) Endpoint {
	return postReposownerrepoActionsRunnersRegistrationToken.bind(owner, repo)
}

func PostReposownerrepoActionsRunnersRemoveToken(owner, repo string) Endpoint {
	return postReposownerrepoActionsRunnersRemoveToken.bind(owner, repo)
}

func GetReposownerrepoActionsRunnersrunnerId(owner, repo, runnerID string) Endpoint {
	return getReposownerrepoActionsRunnersrunnerId.bind(owner, repo, runnerID)
}

func DeleteReposownerrepoActionsRunnersrunnerId(owner, repo, runnerID string) Endpoint {
	return deleteReposownerrepoActionsRunnersrunnerId.bind(owner, repo, runnerID)
}

func GetReposownerrepoActionsRunnersrunnerIdLabels(owner, repo, runnerID string) Endpoint {
	return getReposownerrepoActionsRunnersrunnerIdLabels.bind(owner, repo, runnerID)
}

func PostReposownerrepoActionsRunnersrunnerIdLabels(owner, repo, runnerID string) Endpoint {
	return postReposownerrepoActionsRunnersrunnerIdLabels.bind(owner, repo, runnerID)
}

func PutReposownerrepoActionsRunnersrunnerIdLabels(owner, repo, runnerID string) Endpoint {
	return putReposownerrepoActionsRunnersrunnerIdLabels.bind(owner, repo, runnerID)
}

func DeleteReposownerrepoActionsRunnersrunnerIdLabels(owner, repo, runnerID string) Endpoint {
	return deleteReposownerrepoActionsRunnersrunnerIdLabels.bind(owner, repo, runnerID)
}

func DeleteReposownerrepoActionsRunnersrunnerIdLabelsname(owner, repo, runnerID, name string) Endpoint {
	return deleteReposownerrepoActionsRunnersrunnerIdLabelsname.bind(owner, repo, runnerID, name)
}

func GetReposownerrepoActionsRuns(owner, repo string) Endpoint {
	return getReposownerrepoActionsRuns.bind(owner, repo)
}

func GetReposownerrepoActionsRunsrunId(owner, repo, runID string) Endpoint {
	return getReposownerrepoActionsRunsrunId.bind(owner, repo, runID)
}

func DeleteReposownerrepoActionsRunsrunId(owner, repo, runID string) Endpoint {
	return deleteReposownerrepoActionsRunsrunId.bind(owner, repo, runID)
}

func GetReposownerrepoActionsRunsrunIdApprovals(owner, repo, runID string) Endpoint {
	return getReposownerrepoActionsRunsrunIdApprovals.bind(owner, repo, runID)
}

func PostReposownerrepoActionsRunsrunIdApprove(owner, repo, runID string) Endpoint {
	return postReposownerrepoActionsRunsrunIdApprove.bind(owner, repo, runID)
}

func GetReposownerrepoActionsRunsrunIdArtifacts(owner, repo, runID string) Endpoint {
	return getReposownerrepoActionsRunsrunIdArtifacts.bind(owner, repo, runID)
}

func PostReposownerrepoActionsRunsrunIdCancel(owner, repo, runID string) Endpoint {
	return postReposownerrepoActionsRunsrunIdCancel.bind(owner, repo, runID)
}

func GetReposownerrepoActionsRunsrunIdJobs(owner, repo, runID string) Endpoint {
	return getReposownerrepoActionsRunsrunIdJobs.bind(owner, repo, runID)
}

func GetReposownerrepoActionsRunsrunIdLogs(owner, repo, runID string) Endpoint {
	return getReposownerrepoActionsRunsrunIdLogs.bind(owner, repo, runID)
}

func DeleteReposownerrepoActionsRunsrunIdLogs(owner, repo, runID string) Endpoint {
	return deleteReposownerrepoActionsRunsrunIdLogs.bind(owner, repo, runID)
}

func GetReposownerrepoActionsRunsrunIdPendingDeployments(owner, repo, runID string) Endpoint {
	return getReposownerrepoActionsRunsrunIdPendingDeployments.bind(owner, repo, runID)
}

func PostReposownerrepoActionsRunsrunIdPendingDeployments(owner, repo, runID string) Endpoint {
	return postReposownerrepoActionsRunsrunIdPendingDeployments.bind(owner, repo, runID)
}

func PostReposownerrepoActionsRunsrunIdRerun(owner, repo, runID string) Endpoint {
	return postReposownerrepoActionsRunsrunIdRerun.bind(owner, repo, runID)
}

func GetReposownerrepoActionsRunsrunIdTiming(owner, repo, runID string) Endpoint {
	return getReposownerrepoActionsRunsrunIdTiming.bind(owner, repo, runID)
}

func GetReposownerrepoActionsSecrets(owner, repo string) Endpoint {
	return getReposownerrepoActionsSecrets.bind(owner, repo)
}

func GetReposownerrepoActionsSecretsPublicKey(owner, repo string) Endpoint {
	return getReposownerrepoActionsSecretsPublicKey.bind(owner, repo)
}

func GetReposownerrepoActionsSecretssecretName(owner, repo, secretName string) Endpoint {
	return getReposownerrepoActionsSecretssecretName.bind(owner, repo, secretName)
}

func PutReposownerrepoActionsSecretssecretName(owner, repo, secretName string) Endpoint {
	return putReposownerrepoActionsSecretssecretName.bind(owner, repo, secretName)
}

func DeleteReposownerrepoActionsSecretssecretName(owner, repo, secretName string) Endpoint {
	return deleteReposownerrepoActionsSecretssecretName.bind(owner, repo, secretName)
}

func GetReposownerrepoActionsWorkflows(owner, repo string) Endpoint {
	return getReposownerrepoActionsWorkflows.bind(owner, repo)
}

func GetReposownerrepoActionsWorkflowsworkflowId(owner, repo, workflowID string) Endpoint {
	return getReposownerrepoActionsWorkflowsworkflowId.bind(owner, repo, workflowID)
}

func PutReposownerrepoActionsWorkflowsworkflowIdDisable(owner, repo, workflowID string) Endpoint {
	return putReposownerrepoActionsWorkflowsworkflowIdDisable.bind(owner, repo, workflowID)
}

func PostReposownerrepoActionsWorkflowsworkflowIdDispatches(owner, repo, workflowID string) Endpoint {
	return postReposownerrepoActionsWorkflowsworkflowIdDispatches.bind(owner, repo, workflowID)
}

func PutReposownerrepoActionsWorkflowsworkflowIdEnable(owner, repo, workflowID string) Endpoint {
	return putReposownerrepoActionsWorkflowsworkflowIdEnable.bind(owner, repo, workflowID)
}

func GetReposownerrepoActionsWorkflowsworkflowIdRuns(owner, repo, workflowID string) Endpoint {
	return getReposownerrepoActionsWorkflowsworkflowIdRuns.bind(owner, repo, workflowID)
}

func GetReposownerrepoActionsWorkflowsworkflowIdTiming(owner, repo, workflowID string) Endpoint {
	return getReposownerrepoActionsWorkflowsworkflowIdTiming.bind(owner, repo, workflowID)
}

func GetRepositoriesrepositoryIdEnvironmentsenvironmentNameSecrets(repositoryID, environmentName string) Endpoint {
	return getRepositoriesrepositoryIdEnvironmentsenvironmentNameSecrets.bind(repositoryID, environmentName)
}

func GetRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretsPublicKey(repositoryID, environmentName string) Endpoint {
	return getRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretsPublicKey.bind(repositoryID, environmentName)
}

func GetRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretssecretName(repositoryID, environmentName, secretName string) Endpoint {
	return getRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretssecretName.bind(repositoryID, environmentName, secretName)
}

func PutRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretssecretName(repositoryID, environmentName, secretName string) Endpoint {
	return putRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretssecretName.bind(repositoryID, environmentName, secretName)
}

func DeleteRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretssecretName(repositoryID, environmentName, secretName string) Endpoint {
	return deleteRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretssecretName.bind(repositoryID, environmentName, secretName)
}
