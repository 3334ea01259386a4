package endpoint

var (
	getOrgsorgRepos                                                          = register("repos", "GetOrgsorgRepos", MethodGet, "/orgs/{org}/repos")
	postOrgsorgRepos                                                         = register("repos", "PostOrgsorgRepos", MethodPost, "/orgs/{org}/repos")
	getReposownerrepo                                                        = register("repos", "GetReposownerrepo", MethodGet, "/repos/{owner}/{repo}")
	patchReposownerrepo                                                      = register("repos", "PatchReposownerrepo", MethodPatch, "/repos/{owner}/{repo}")
	deleteReposownerrepo                                                     = register("repos", "DeleteReposownerrepo", MethodDelete, "/repos/{owner}/{repo}")
	getReposownerrepoAutolinks                                               = register("repos", "GetReposownerrepoAutolinks", MethodGet, "/repos/{owner}/{repo}/autolinks")
	postReposownerrepoAutolinks                                              = register("repos", "PostReposownerrepoAutolinks", MethodPost, "/repos/{owner}/{repo}/autolinks")
	getReposownerrepoAutolinksautolinkId                                     = register("repos", "GetReposownerrepoAutolinksautolinkId", MethodGet, "/repos/{owner}/{repo}/autolinks/{autolink_id}")
	deleteReposownerrepoAutolinksautolinkId                                  = register("repos", "DeleteReposownerrepoAutolinksautolinkId", MethodDelete, "/repos/{owner}/{repo}/autolinks/{autolink_id}")
	putReposownerrepoAutomatedSecurityFixes                                  = register("repos", "PutReposownerrepoAutomatedSecurityFixes", MethodPut, "/repos/{owner}/{repo}/automated-security-fixes")
	deleteReposownerrepoAutomatedSecurityFixes                               = register("repos", "DeleteReposownerrepoAutomatedSecurityFixes", MethodDelete, "/repos/{owner}/{repo}/automated-security-fixes")
	getReposownerrepoBranches                                                = register("repos", "GetReposownerrepoBranches", MethodGet, "/repos/{owner}/{repo}/branches")
	getReposownerrepoBranchesbranch                                          = register("repos", "GetReposownerrepoBranchesbranch", MethodGet, "/repos/{owner}/{repo}/branches/{branch}")
	getReposownerrepoBranchesbranchProtection                                = register("repos", "GetReposownerrepoBranchesbranchProtection", MethodGet, "/repos/{owner}/{repo}/branches/{branch}/protection")
	putReposownerrepoBranchesbranchProtection                                = register("repos", "PutReposownerrepoBranchesbranchProtection", MethodPut, "/repos/{owner}/{repo}/branches/{branch}/protection")
	deleteReposownerrepoBranchesbranchProtection                             = register("repos", "DeleteReposownerrepoBranchesbranchProtection", MethodDelete, "/repos/{owner}/{repo}/branches/{branch}/protection")
	getReposownerrepoBranchesbranchProtectionEnforceAdmins                   = register("repos", "GetReposownerrepoBranchesbranchProtectionEnforceAdmins", MethodGet, "/repos/{owner}/{repo}/branches/{branch}/protection/enforce_admins")
	postReposownerrepoBranchesbranchProtectionEnforceAdmins                  = register("repos", "PostReposownerrepoBranchesbranchProtectionEnforceAdmins", MethodPost, "/repos/{owner}/{repo}/branches/{branch}/protection/enforce_admins")
	deleteReposownerrepoBranchesbranchProtectionEnforceAdmins                = register("repos", "DeleteReposownerrepoBranchesbranchProtectionEnforceAdmins", MethodDelete, "/repos/{owner}/{repo}/branches/{branch}/protection/enforce_admins")
	getReposownerrepoBranchesbranchProtectionRequiredPullRequestReviews      = register("repos", "GetReposownerrepoBranchesbranchProtectionRequiredPullRequestReviews", MethodGet, "/repos/{owner}/{repo}/branches/{branch}/protection/required_pull_request_reviews")
	patchReposownerrepoBranchesbranchProtectionRequiredPullRequestReviews    = register("repos", "PatchReposownerrepoBranchesbranchProtectionRequiredPullRequestReviews", MethodPatch, "/repos/{owner}/{repo}/branches/{branch}/protection/required_pull_request_reviews")
	deleteReposownerrepoBranchesbranchProtectionRequiredPullRequestReviews   = register("repos", "DeleteReposownerrepoBranchesbranchProtectionRequiredPullRequestReviews", MethodDelete, "/repos/{owner}/{repo}/branches/{branch}/protection/required_pull_request_reviews")
	getReposownerrepoBranchesbranchProtectionRequiredSignatures              = register("repos", "GetReposownerrepoBranchesbranchProtectionRequiredSignatures", MethodGet, "/repos/{owner}/{repo}/branches/{branch}/protection/required_signatures")
	postReposownerrepoBranchesbranchProtectionRequiredSignatures             = register("repos", "PostReposownerrepoBranchesbranchProtectionRequiredSignatures", MethodPost, "/repos/{owner}/{repo}/branches/{branch}/protection/required_signatures")
	deleteReposownerrepoBranchesbranchProtectionRequiredSignatures           = register("repos", "DeleteReposownerrepoBranchesbranchProtectionRequiredSignatures", MethodDelete, "/repos/{owner}/{repo}/branches/{branch}/protection/required_signatures")
	getReposownerrepoBranchesbranchProtectionRequiredStatusChecks            = register("repos", "GetReposownerrepoBranchesbranchProtectionRequiredStatusChecks", MethodGet, "/repos/{owner}/{repo}/branches/{branch}/protection/required_status_checks")
	patchReposownerrepoBranchesbranchProtectionRequiredStatusChecks          = register("repos", "PatchReposownerrepoBranchesbranchProtectionRequiredStatusChecks", MethodPatch, "/repos/{owner}/{repo}/branches/{branch}/protection/required_status_checks")
	deleteReposownerrepoBranchesbranchProtectionRequiredStatusChecks         = register("repos", "DeleteReposownerrepoBranchesbranchProtectionRequiredStatusChecks", MethodDelete, "/repos/{owner}/{repo}/branches/{branch}/protection/required_status_checks")
	getReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts    = register("repos", "GetReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts", MethodGet, "/repos/{owner}/{repo}/branches/{branch}/protection/required_status_checks/contexts")
	postReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts   = register("repos", "PostReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts", MethodPost, "/repos/{owner}/{repo}/branches/{branch}/protection/required_status_checks/contexts")
	putReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts    = register("repos", "PutReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts", MethodPut, "/repos/{owner}/{repo}/branches/{branch}/protection/required_status_checks/contexts")
	deleteReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts = register("repos", "DeleteReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts", MethodDelete, "/repos/{owner}/{repo}/branches/{branch}/protection/required_status_checks/contexts")
	getReposownerrepoBranchesbranchProtectionRestrictions                    = register("repos", "GetReposownerrepoBranchesbranchProtectionRestrictions", MethodGet, "/repos/{owner}/{repo}/branches/{branch}/protection/restrictions")
	deleteReposownerrepoBranchesbranchProtectionRestrictions                 = register("repos", "DeleteReposownerrepoBranchesbranchProtectionRestrictions", MethodDelete, "/repos/{owner}/{repo}/branches/{branch}/protection/restrictions")
	getReposownerrepoBranchesbranchProtectionRestrictionsApps                = register("repos", "GetReposownerrepoBranchesbranchProtectionRestrictionsApps", MethodGet, "/repos/{owner}/{repo}/branches/{branch}/protection/restrictions/apps")
	postReposownerrepoBranchesbranchProtectionRestrictionsApps               = register("repos", "PostReposownerrepoBranchesbranchProtectionRestrictionsApps", MethodPost, "/repos/{owner}/{repo}/branches/{branch}/protection/restrictions/apps")
	putReposownerrepoBranchesbranchProtectionRestrictionsApps                = register("repos", "PutReposownerrepoBranchesbranchProtectionRestrictionsApps", MethodPut, "/repos/{owner}/{repo}/branches/{branch}/protection/restrictions/apps")
	deleteReposownerrepoBranchesbranchProtectionRestrictionsApps             = register("repos", "DeleteReposownerrepoBranchesbranchProtectionRestrictionsApps", MethodDelete, "/repos/{owner}/{repo}/branches/{branch}/protection/restrictions/apps")
	getReposownerrepoBranchesbranchProtectionRestrictionsTeams               = register("repos", "GetReposownerrepoBranchesbranchProtectionRestrictionsTeams", MethodGet, "/repos/{owner}/{repo}/branches/{branch}/protection/restrictions/teams")
	postReposownerrepoBranchesbranchProtectionRestrictionsTeams              = register("repos", "PostReposownerrepoBranchesbranchProtectionRestrictionsTeams", MethodPost, "/repos/{owner}/{repo}/branches/{branch}/protection/restrictions/teams")
	putReposownerrepoBranchesbranchProtectionRestrictionsTeams               = register("repos", "PutReposownerrepoBranchesbranchProtectionRestrictionsTeams", MethodPut, "/repos/{owner}/{repo}/branches/{branch}/protection/restrictions/teams")
	deleteReposownerrepoBranchesbranchProtectionRestrictionsTeams            = register("repos", "DeleteReposownerrepoBranchesbranchProtectionRestrictionsTeams", MethodDelete, "/repos/{owner}/{repo}/branches/{branch}/protection/restrictions/teams")
	getReposownerrepoBranchesbranchProtectionRestrictionsUsers               = register("repos", "GetReposownerrepoBranchesbranchProtectionRestrictionsUsers", MethodGet, "/repos/{owner}/{repo}/branches/{branch}/protection/restrictions/users")
	postReposownerrepoBranchesbranchProtectionRestrictionsUsers              = register("repos", "PostReposownerrepoBranchesbranchProtectionRestrictionsUsers", MethodPost, "/repos/{owner}/{repo}/branches/{branch}/protection/restrictions/users")
	putReposownerrepoBranchesbranchProtectionRestrictionsUsers               = register("repos", "PutReposownerrepoBranchesbranchProtectionRestrictionsUsers", MethodPut, "/repos/{owner}/{repo}/branches/{branch}/protection/restrictions/users")
	deleteReposownerrepoBranchesbranchProtectionRestrictionsUsers            = register("repos", "DeleteReposownerrepoBranchesbranchProtectionRestrictionsUsers", MethodDelete, "/repos/{owner}/{repo}/branches/{branch}/protection/restrictions/users")
	postReposownerrepoBranchesbranchRename                                   = register("repos", "PostReposownerrepoBranchesbranchRename", MethodPost, "/repos/{owner}/{repo}/branches/{branch}/rename")
	getReposownerrepoCollaborators                                           = register("repos", "GetReposownerrepoCollaborators", MethodGet, "/repos/{owner}/{repo}/collaborators")
	getReposownerrepoCollaboratorsusername                                   = register("repos", "GetReposownerrepoCollaboratorsusername", MethodGet, "/repos/{owner}/{repo}/collaborators/{username}")
	putReposownerrepoCollaboratorsusername                                   = register("repos", "PutReposownerrepoCollaboratorsusername", MethodPut, "/repos/{owner}/{repo}/collaborators/{username}")
	deleteReposownerrepoCollaboratorsusername                                = register("repos", "DeleteReposownerrepoCollaboratorsusername", MethodDelete, "/repos/{owner}/{repo}/collaborators/{username}")
	getReposownerrepoCollaboratorsusernamePermission                         = register("repos", "GetReposownerrepoCollaboratorsusernamePermission", MethodGet, "/repos/{owner}/{repo}/collaborators/{username}/permission")
	getReposownerrepoComments                                                = register("repos", "GetReposownerrepoComments", MethodGet, "/repos/{owner}/{repo}/comments")
	getReposownerrepoCommentscommentId                                       = register("repos", "GetReposownerrepoCommentscommentId", MethodGet, "/repos/{owner}/{repo}/comments/{comment_id}")
	patchReposownerrepoCommentscommentId                                     = register("repos", "PatchReposownerrepoCommentscommentId", MethodPatch, "/repos/{owner}/{repo}/comments/{comment_id}")
	deleteReposownerrepoCommentscommentId                                    = register("repos", "DeleteReposownerrepoCommentscommentId", MethodDelete, "/repos/{owner}/{repo}/comments/{comment_id}")
	getReposownerrepoCommits                                                 = register("repos", "GetReposownerrepoCommits", MethodGet, "/repos/{owner}/{repo}/commits")
	getReposownerrepoCommitscommitShaBranchesWhereHead                       = register("repos", "GetReposownerrepoCommitscommitShaBranchesWhereHead", MethodGet, "/repos/{owner}/{repo}/commits/{commit_sha}/branches-where-head")
	getReposownerrepoCommitscommitShaComments                                = register("repos", "GetReposownerrepoCommitscommitShaComments", MethodGet, "/repos/{owner}/{repo}/commits/{commit_sha}/comments")
	postReposownerrepoCommitscommitShaComments                               = register("repos", "PostReposownerrepoCommitscommitShaComments", MethodPost, "/repos/{owner}/{repo}/commits/{commit_sha}/comments")
	getReposownerrepoCommitscommitShaPulls                                   = register("repos", "GetReposownerrepoCommitscommitShaPulls", MethodGet, "/repos/{owner}/{repo}/commits/{commit_sha}/pulls")
	getReposownerrepoCommitsref                                              = register("repos", "GetReposownerrepoCommitsref", MethodGet, "/repos/{owner}/{repo}/commits/{ref}")
	getReposownerrepoCommitsrefStatus                                        = register("repos", "GetReposownerrepoCommitsrefStatus", MethodGet, "/repos/{owner}/{repo}/commits/{ref}/status")
	getReposownerrepoCommitsrefStatuses                                      = register("repos", "GetReposownerrepoCommitsrefStatuses", MethodGet, "/repos/{owner}/{repo}/commits/{ref}/statuses")
	getReposownerrepoCommunityProfile                                        = register("repos", "GetReposownerrepoCommunityProfile", MethodGet, "/repos/{owner}/{repo}/community/profile")
	getReposownerrepoComparebasehead                                         = register("repos", "GetReposownerrepoComparebasehead", MethodGet, "/repos/{owner}/{repo}/compare/{basehead}")
	getReposownerrepoContentspath                                            = register("repos", "GetReposownerrepoContentspath", MethodGet, "/repos/{owner}/{repo}/contents/{path}")
	putReposownerrepoContentspath                                            = register("repos", "PutReposownerrepoContentspath", MethodPut, "/repos/{owner}/{repo}/contents/{path}")
	deleteReposownerrepoContentspath                                         = register("repos", "DeleteReposownerrepoContentspath", MethodDelete, "/repos/{owner}/{repo}/contents/{path}")
	getReposownerrepoContributors                                            = register("repos", "GetReposownerrepoContributors", MethodGet, "/repos/{owner}/{repo}/contributors")
	getReposownerrepoDeployments                                             = register("repos", "GetReposownerrepoDeployments", MethodGet, "/repos/{owner}/{repo}/deployments")
	postReposownerrepoDeployments                                            = register("repos", "PostReposownerrepoDeployments", MethodPost, "/repos/{owner}/{repo}/deployments")
	getReposownerrepoDeploymentsdeploymentId                                 = register("repos", "GetReposownerrepoDeploymentsdeploymentId", MethodGet, "/repos/{owner}/{repo}/deployments/{deployment_id}")
	deleteReposownerrepoDeploymentsdeploymentId                              = register("repos", "DeleteReposownerrepoDeploymentsdeploymentId", MethodDelete, "/repos/{owner}/{repo}/deployments/{deployment_id}")
	getReposownerrepoDeploymentsdeploymentIdStatuses                         = register("repos", "GetReposownerrepoDeploymentsdeploymentIdStatuses", MethodGet, "/repos/{owner}/{repo}/deployments/{deployment_id}/statuses")
	postReposownerrepoDeploymentsdeploymentIdStatuses                        = register("repos", "PostReposownerrepoDeploymentsdeploymentIdStatuses", MethodPost, "/repos/{owner}/{repo}/deployments/{deployment_id}/statuses")
	getReposownerrepoDeploymentsdeploymentIdStatusesstatusId                 = register("repos", "GetReposownerrepoDeploymentsdeploymentIdStatusesstatusId", MethodGet, "/repos/{owner}/{repo}/deployments/{deployment_id}/statuses/{status_id}")
	postReposownerrepoDispatches                                             = register("repos", "PostReposownerrepoDispatches", MethodPost, "/repos/{owner}/{repo}/dispatches")
	getReposownerrepoEnvironments                                            = register("repos", "GetReposownerrepoEnvironments", MethodGet, "/repos/{owner}/{repo}/environments")
	getReposownerrepoEnvironmentsenvironmentName                             = register("repos", "GetReposownerrepoEnvironmentsenvironmentName", MethodGet, "/repos/{owner}/{repo}/environments/{environment_name}")
	putReposownerrepoEnvironmentsenvironmentName                             = register("repos", "PutReposownerrepoEnvironmentsenvironmentName", MethodPut, "/repos/{owner}/{repo}/environments/{environment_name}")
	deleteReposownerrepoEnvironmentsenvironmentName                          = register("repos", "DeleteReposownerrepoEnvironmentsenvironmentName", MethodDelete, "/repos/{owner}/{repo}/environments/{environment_name}")
	getReposownerrepoForks                                                   = register("repos", "GetReposownerrepoForks", MethodGet, "/repos/{owner}/{repo}/forks")
	postReposownerrepoForks                                                  = register("repos", "PostReposownerrepoForks", MethodPost, "/repos/{owner}/{repo}/forks")
	getReposownerrepoHooks                                                   = register("repos", "GetReposownerrepoHooks", MethodGet, "/repos/{owner}/{repo}/hooks")
	postReposownerrepoHooks                                                  = register("repos", "PostReposownerrepoHooks", MethodPost, "/repos/{owner}/{repo}/hooks")
	getReposownerrepoHookshookId                                             = register("repos", "GetReposownerrepoHookshookId", MethodGet, "/repos/{owner}/{repo}/hooks/{hook_id}")
	patchReposownerrepoHookshookId                                           = register("repos", "PatchReposownerrepoHookshookId", MethodPatch, "/repos/{owner}/{repo}/hooks/{hook_id}")
	deleteReposownerrepoHookshookId                                          = register("repos", "DeleteReposownerrepoHookshookId", MethodDelete, "/repos/{owner}/{repo}/hooks/{hook_id}")
	getReposownerrepoHookshookIdConfig                                       = register("repos", "GetReposownerrepoHookshookIdConfig", MethodGet, "/repos/{owner}/{repo}/hooks/{hook_id}/config")
	patchReposownerrepoHookshookIdConfig                                     = register("repos", "PatchReposownerrepoHookshookIdConfig", MethodPatch, "/repos/{owner}/{repo}/hooks/{hook_id}/config")
	getReposownerrepoHookshookIdDeliveries                                   = register("repos", "GetReposownerrepoHookshookIdDeliveries", MethodGet, "/repos/{owner}/{repo}/hooks/{hook_id}/deliveries")
	getReposownerrepoHookshookIdDeliveriesdeliveryId                         = register("repos", "GetReposownerrepoHookshookIdDeliveriesdeliveryId", MethodGet, "/repos/{owner}/{repo}/hooks/{hook_id}/deliveries/{delivery_id}")
	postReposownerrepoHookshookIdDeliveriesdeliveryIdAttempts                = register("repos", "PostReposownerrepoHookshookIdDeliveriesdeliveryIdAttempts", MethodPost, "/repos/{owner}/{repo}/hooks/{hook_id}/deliveries/{delivery_id}/attempts")
	postReposownerrepoHookshookIdPings                                       = register("repos", "PostReposownerrepoHookshookIdPings", MethodPost, "/repos/{owner}/{repo}/hooks/{hook_id}/pings")
	postReposownerrepoHookshookIdTests                                       = register("repos", "PostReposownerrepoHookshookIdTests", MethodPost, "/repos/{owner}/{repo}/hooks/{hook_id}/tests")
	getReposownerrepoInvitations                                             = register("repos", "GetReposownerrepoInvitations", MethodGet, "/repos/{owner}/{repo}/invitations")
	patchReposownerrepoInvitationsinvitationId                               = register("repos", "PatchReposownerrepoInvitationsinvitationId", MethodPatch, "/repos/{owner}/{repo}/invitations/{invitation_id}")
	deleteReposownerrepoInvitationsinvitationId                              = register("repos", "DeleteReposownerrepoInvitationsinvitationId", MethodDelete, "/repos/{owner}/{repo}/invitations/{invitation_id}")
	getReposownerrepoKeys                                                    = register("repos", "GetReposownerrepoKeys", MethodGet, "/repos/{owner}/{repo}/keys")
	postReposownerrepoKeys                                                   = register("repos", "PostReposownerrepoKeys", MethodPost, "/repos/{owner}/{repo}/keys")
	getReposownerrepoKeyskeyId                                               = register("repos", "GetReposownerrepoKeyskeyId", MethodGet, "/repos/{owner}/{repo}/keys/{key_id}")
	deleteReposownerrepoKeyskeyId                                            = register("repos", "DeleteReposownerrepoKeyskeyId", MethodDelete, "/repos/{owner}/{repo}/keys/{key_id}")
	getReposownerrepoLanguages                                               = register("repos", "GetReposownerrepoLanguages", MethodGet, "/repos/{owner}/{repo}/languages")
	postReposownerrepoMergeUpstream                                          = register("repos", "PostReposownerrepoMergeUpstream", MethodPost, "/repos/{owner}/{repo}/merge-upstream")
	postReposownerrepoMerges                                                 = register("repos", "PostReposownerrepoMerges", MethodPost, "/repos/{owner}/{repo}/merges")
	getReposownerrepoPages                                                   = register("repos", "GetReposownerrepoPages", MethodGet, "/repos/{owner}/{repo}/pages")
	postReposownerrepoPages                                                  = register("repos", "PostReposownerrepoPages", MethodPost, "/repos/{owner}/{repo}/pages")
	putReposownerrepoPages                                                   = register("repos", "PutReposownerrepoPages", MethodPut, "/repos/{owner}/{repo}/pages")
	deleteReposownerrepoPages                                                = register("repos", "DeleteReposownerrepoPages", MethodDelete, "/repos/{owner}/{repo}/pages")
	getReposownerrepoPagesBuilds                                             = register("repos", "GetReposownerrepoPagesBuilds", MethodGet, "/repos/{owner}/{repo}/pages/builds")
	postReposownerrepoPagesBuilds                                            = register("repos", "PostReposownerrepoPagesBuilds", MethodPost, "/repos/{owner}/{repo}/pages/builds")
	getReposownerrepoPagesBuildsLatest                                       = register("repos", "GetReposownerrepoPagesBuildsLatest", MethodGet, "/repos/{owner}/{repo}/pages/builds/latest")
	getReposownerrepoPagesBuildsbuildId                                      = register("repos", "GetReposownerrepoPagesBuildsbuildId", MethodGet, "/repos/{owner}/{repo}/pages/builds/{build_id}")
	getReposownerrepoPagesHealth                                             = register("repos", "GetReposownerrepoPagesHealth", MethodGet, "/repos/{owner}/{repo}/pages/health")
	getReposownerrepoReadme                                                  = register("repos", "GetReposownerrepoReadme", MethodGet, "/repos/{owner}/{repo}/readme")
	getReposownerrepoReadmedir                                               = register("repos", "GetReposownerrepoReadmedir", MethodGet, "/repos/{owner}/{repo}/readme/{dir}")
	getReposownerrepoReleases                                                = register("repos", "GetReposownerrepoReleases", MethodGet, "/repos/{owner}/{repo}/releases")
	postReposownerrepoReleases                                               = register("repos", "PostReposownerrepoReleases", MethodPost, "/repos/{owner}/{repo}/releases")
	getReposownerrepoReleasesAssetsassetId                                   = register("repos", "GetReposownerrepoReleasesAssetsassetId", MethodGet, "/repos/{owner}/{repo}/releases/assets/{asset_id}")
	patchReposownerrepoReleasesAssetsassetId                                 = register("repos", "PatchReposownerrepoReleasesAssetsassetId", MethodPatch, "/repos/{owner}/{repo}/releases/assets/{asset_id}")
	deleteReposownerrepoReleasesAssetsassetId                                = register("repos", "DeleteReposownerrepoReleasesAssetsassetId", MethodDelete, "/repos/{owner}/{repo}/releases/assets/{asset_id}")
	getReposownerrepoReleasesLatest                                          = register("repos", "GetReposownerrepoReleasesLatest", MethodGet, "/repos/{owner}/{repo}/releases/latest")
	getReposownerrepoReleasesTagstag                                         = register("repos", "GetReposownerrepoReleasesTagstag", MethodGet, "/repos/{owner}/{repo}/releases/tags/{tag}")
	getReposownerrepoReleasesreleaseId                                       = register("repos", "GetReposownerrepoReleasesreleaseId", MethodGet, "/repos/{owner}/{repo}/releases/{release_id}")
	patchReposownerrepoReleasesreleaseId                                     = register("repos", "PatchReposownerrepoReleasesreleaseId", MethodPatch, "/repos/{owner}/{repo}/releases/{release_id}")
	deleteReposownerrepoReleasesreleaseId                                    = register("repos", "DeleteReposownerrepoReleasesreleaseId", MethodDelete, "/repos/{owner}/{repo}/releases/{release_id}")
	getReposownerrepoReleasesreleaseIdAssets                                 = register("repos", "GetReposownerrepoReleasesreleaseIdAssets", MethodGet, "/repos/{owner}/{repo}/releases/{release_id}/assets")
	postReposownerrepoReleasesreleaseIdAssets                                = register("repos", "PostReposownerrepoReleasesreleaseIdAssets", MethodPost, "/repos/{owner}/{repo}/releases/{release_id}/assets")
	getReposownerrepoStatsCodeFrequency                                      = register("repos", "GetReposownerrepoStatsCodeFrequency", MethodGet, "/repos/{owner}/{repo}/stats/code_frequency")
	getReposownerrepoStatsCommitActivity                                     = register("repos", "GetReposownerrepoStatsCommitActivity", MethodGet, "/repos/{owner}/{repo}/stats/commit_activity")
	getReposownerrepoStatsContributors                                       = register("repos", "GetReposownerrepoStatsContributors", MethodGet, "/repos/{owner}/{repo}/stats/contributors")
	getReposownerrepoStatsParticipation                                      = register("repos", "GetReposownerrepoStatsParticipation", MethodGet, "/repos/{owner}/{repo}/stats/participation")
	getReposownerrepoStatsPunchCard                                          = register("repos", "GetReposownerrepoStatsPunchCard", MethodGet, "/repos/{owner}/{repo}/stats/punch_card")
	postReposownerrepoStatusessha                                            = register("repos", "PostReposownerrepoStatusessha", MethodPost, "/repos/{owner}/{repo}/statuses/{sha}")
	getReposownerrepoTags                                                    = register("repos", "GetReposownerrepoTags", MethodGet, "/repos/{owner}/{repo}/tags")
	getReposownerrepoTarballref                                              = register("repos", "GetReposownerrepoTarballref", MethodGet, "/repos/{owner}/{repo}/tarball/{ref}")
	getReposownerrepoTeams                                                   = register("repos", "GetReposownerrepoTeams", MethodGet, "/repos/{owner}/{repo}/teams")
	getReposownerrepoTopics                                                  = register("repos", "GetReposownerrepoTopics", MethodGet, "/repos/{owner}/{repo}/topics")
	putReposownerrepoTopics                                                  = register("repos", "PutReposownerrepoTopics", MethodPut, "/repos/{owner}/{repo}/topics")
	getReposownerrepoTrafficClones                                           = register("repos", "GetReposownerrepoTrafficClones", MethodGet, "/repos/{owner}/{repo}/traffic/clones")
	getReposownerrepoTrafficPopularPaths                                     = register("repos", "GetReposownerrepoTrafficPopularPaths", MethodGet, "/repos/{owner}/{repo}/traffic/popular/paths")
	getReposownerrepoTrafficPopularReferrers                                 = register("repos", "GetReposownerrepoTrafficPopularReferrers", MethodGet, "/repos/{owner}/{repo}/traffic/popular/referrers")
	getReposownerrepoTrafficViews                                            = register("repos", "GetReposownerrepoTrafficViews", MethodGet, "/repos/{owner}/{repo}/traffic/views")
	postReposownerrepoTransfer                                               = register("repos", "PostReposownerrepoTransfer", MethodPost, "/repos/{owner}/{repo}/transfer")
	getReposownerrepoVulnerabilityAlerts                                     = register("repos", "GetReposownerrepoVulnerabilityAlerts", MethodGet, "/repos/{owner}/{repo}/vulnerability-alerts")
	putReposownerrepoVulnerabilityAlerts                                     = register("repos", "PutReposownerrepoVulnerabilityAlerts", MethodPut, "/repos/{owner}/{repo}/vulnerability-alerts")
	deleteReposownerrepoVulnerabilityAlerts                                  = register("repos", "DeleteReposownerrepoVulnerabilityAlerts", MethodDelete, "/repos/{owner}/{repo}/vulnerability-alerts")
	getReposownerrepoZipballref                                              = register("repos", "GetReposownerrepoZipballref", MethodGet, "/repos/{owner}/{repo}/zipball/{ref}")
	postRepostemplateOwnertemplateRepoGenerate                               = register("repos", "PostRepostemplateOwnertemplateRepoGenerate", MethodPost, "/repos/{template_owner}/{template_repo}/generate")
	getRepositories                                                          = register("repos", "GetRepositories", MethodGet, "/repositories")
	getUserRepos                                                             = register("repos", "GetUserRepos", MethodGet, "/user/repos")
	postUserRepos                                                            = register("repos", "PostUserRepos", MethodPost, "/user/repos")
	getUserRepositoryInvitations                                             = register("repos", "GetUserRepositoryInvitations", MethodGet, "/user/repository_invitations")
	patchUserRepositoryInvitationsinvitationId                               = register("repos", "PatchUserRepositoryInvitationsinvitationId", MethodPatch, "/user/repository_invitations/{invitation_id}")
	deleteUserRepositoryInvitationsinvitationId                              = register("repos", "DeleteUserRepositoryInvitationsinvitationId", MethodDelete, "/user/repository_invitations/{invitation_id}")
	getUsersusernameRepos                                                    = register("repos", "GetUsersusernameRepos", MethodGet, "/users/{username}/repos")
)

func GetOrgsorgRepos(org string) Endpoint {
	return getOrgsorgRepos.bind(org)
}

func PostOrgsorgRepos(org string) Endpoint {
	return postOrgsorgRepos.bind(org)
}

func GetReposownerrepo(owner, repo string) Endpoint {
	return getReposownerrepo.bind(owner, repo)
}

func PatchReposownerrepo(owner, repo string) Endpoint {
	return patchReposownerrepo.bind(owner, repo)
}

func DeleteReposownerrepo(owner, repo string) Endpoint {
	return deleteReposownerrepo.bind(owner, repo)
}

func GetReposownerrepoAutolinks(owner, repo string) Endpoint {
	return getReposownerrepoAutolinks.bind(owner, repo)
}

func PostReposownerrepoAutolinks(owner, repo string) Endpoint {
	return postReposownerrepoAutolinks.bind(owner, repo)
}

func GetReposownerrepoAutolinksautolinkId(owner, repo, autolinkID string) Endpoint {
	return getReposownerrepoAutolinksautolinkId.bind(owner, repo, autolinkID)
}

func DeleteReposownerrepoAutolinksautolinkId(owner, repo, autolinkID string) Endpoint {
	return deleteReposownerrepoAutolinksautolinkId.bind(owner, repo, autolinkID)
}

func PutReposownerrepoAutomatedSecurityFixes(owner, repo string) Endpoint {
	return putReposownerrepoAutomatedSecurityFixes.bind(owner, repo)
}

func DeleteReposownerrepoAutomatedSecurityFixes(owner, repo string) Endpoint {
	return deleteReposownerrepoAutomatedSecurityFixes.bind(owner, repo)
}

func GetReposownerrepoBranches(owner, repo string) Endpoint {
	return getReposownerrepoBranches.bind(owner, repo)
}

func GetReposownerrepoBranchesbranch(owner, repo, branch string) Endpoint {
	return getReposownerrepoBranchesbranch.bind(owner, repo, branch)
}

func GetReposownerrepoBranchesbranchProtection(owner, repo, branch string) Endpoint {
	return getReposownerrepoBranchesbranchProtection.bind(owner, repo, branch)
}

func PutReposownerrepoBranchesbranchProtection(owner, repo, branch string) Endpoint {
	return putReposownerrepoBranchesbranchProtection.bind(owner, repo, branch)
}

func DeleteReposownerrepoBranchesbranchProtection(owner, repo, branch string) Endpoint {
	return deleteReposownerrepoBranchesbranchProtection.bind(owner, repo, branch)
}

func GetReposownerrepoBranchesbranchProtectionEnforceAdmins(owner, repo, branch string) Endpoint {
	return getReposownerrepoBranchesbranchProtectionEnforceAdmins.bind(owner, repo, branch)
}

func PostReposownerrepoBranchesbranchProtectionEnforceAdmins(owner, repo, branch string) Endpoint {
	return postReposownerrepoBranchesbranchProtectionEnforceAdmins.bind(owner, repo, branch)
}

func DeleteReposownerrepoBranchesbranchProtectionEnforceAdmins(owner, repo, branch string) Endpoint {
	return deleteReposownerrepoBranchesbranchProtectionEnforceAdmins.bind(owner, repo, branch)
}

func GetReposownerrepoBranchesbranchProtectionRequiredPullRequestReviews(owner, repo, branch string) Endpoint {
	return getReposownerrepoBranchesbranchProtectionRequiredPullRequestReviews.bind(owner, repo, branch)
}

func PatchReposownerrepoBranchesbranchProtectionRequiredPullRequestReviews(owner, repo, branch string) Endpoint {
	return patchReposownerrepoBranchesbranchProtectionRequiredPullRequestReviews.bind(owner, repo, branch)
}

func DeleteReposownerrepoBranchesbranchProtectionRequiredPullRequestReviews(owner, repo, branch string) Endpoint {
	return deleteReposownerrepoBranchesbranchProtectionRequiredPullRequestReviews.bind(owner, repo, branch)
}

func GetReposownerrepoBranchesbranchProtectionRequiredSignatures(owner, repo, branch string) Endpoint {
	return getReposownerrepoBranchesbranchProtectionRequiredSignatures.bind(owner, repo, branch)
}

func PostReposownerrepoBranchesbranchProtectionRequiredSignatures(owner, repo, branch string) Endpoint {
	return postReposownerrepoBranchesbranchProtectionRequiredSignatures.bind(owner, repo, branch)
}

func DeleteReposownerrepoBranchesbranchProtectionRequiredSignatures(owner, repo, branch string) Endpoint {
	return deleteReposownerrepoBranchesbranchProtectionRequiredSignatures.bind(owner, repo, branch)
}

func GetReposownerrepoBranchesbranchProtectionRequiredStatusChecks(owner, repo, branch string) Endpoint {
	return getReposownerrepoBranchesbranchProtectionRequiredStatusChecks.bind(owner, repo, branch)
}

func PatchReposownerrepoBranchesbranchProtectionRequiredStatusChecks(owner, repo, branch string) Endpoint {
	return patchReposownerrepoBranchesbranchProtectionRequiredStatusChecks.bind(owner, repo, branch)
}

func DeleteReposownerrepoBranchesbranchProtectionRequiredStatusChecks(owner, repo, branch string) Endpoint {
	return deleteReposownerrepoBranchesbranchProtectionRequiredStatusChecks.bind(owner, repo, branch)
}

func GetReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts(owner, repo, branch string) Endpoint {
	return getReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts.bind(owner, repo, branch)
}

func PostReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts(owner, repo, branch string) Endpoint {
	return postReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts.bind(owner, repo, branch)
}

func PutReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts(owner, repo, branch string) Endpoint {
	return putReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts.bind(owner, repo, branch)
}

func DeleteReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts(owner, repo, branch string) Endpoint {
	return deleteReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts.bind(owner, repo, branch)
}

func GetReposownerrepoBranchesbranchProtectionRestrictions(owner, repo, branch string) Endpoint {
	return getReposownerrepoBranchesbranchProtectionRestrictions.bind(owner, repo, branch)
}

func DeleteReposownerrepoBranchesbranchProtectionRestrictions(owner, repo, branch string) Endpoint {
	return deleteReposownerrepoBranchesbranchProtectionRestrictions.bind(owner, repo, branch)
}

func GetReposownerrepoBranchesbranchProtectionRestrictionsApps(owner, repo, branch string) Endpoint {
	return getReposownerrepoBranchesbranchProtectionRestrictionsApps.bind(owner, repo, branch)
}

func PostReposownerrepoBranchesbranchProtectionRestrictionsApps(owner, repo, branch string) Endpoint {
	return postReposownerrepoBranchesbranchProtectionRestrictionsApps.bind(owner, repo, branch)
}

func PutReposownerrepoBranchesbranchProtectionRestrictionsApps(owner, repo, branch string) Endpoint {
	return putReposownerrepoBranchesbranchProtectionRestrictionsApps.bind(owner, repo, branch)
}

func DeleteReposownerrepoBranchesbranchProtectionRestrictionsApps(owner, repo, branch string) Endpoint {
	return deleteReposownerrepoBranchesbranchProtectionRestrictionsApps.bind(owner, repo, branch)
}

func GetReposownerrepoBranchesbranchProtectionRestrictionsTeams(owner, repo, branch string) Endpoint {
	return getReposownerrepoBranchesbranchProtectionRestrictionsTeams.bind(owner, repo, branch)
}

func PostReposownerrepoBranchesbranchProtectionRestrictionsTeams(owner, repo, branch string) Endpoint {
	return postReposownerrepoBranchesbranchProtectionRestrictionsTeams.bind(owner, repo, branch)
}

func PutReposownerrepoBranchesbranchProtectionRestrictionsTeams(owner, repo, branch string) Endpoint {
	return putReposownerrepoBranchesbranchProtectionRestrictionsTeams.bind(owner, repo, branch)
}

func DeleteReposownerrepoBranchesbranchProtectionRestrictionsTeams(owner, repo, branch string) Endpoint {
	return deleteReposownerrepoBranchesbranchProtectionRestrictionsTeams.bind(owner, repo, branch)
}

func GetReposownerrepoBranchesbranchProtectionRestrictionsUsers(owner, repo, branch string) Endpoint {
	return getReposownerrepoBranchesbranchProtectionRestrictionsUsers.bind(owner, repo, branch)
}

func PostReposownerrepoBranchesbranchProtectionRestrictionsUsers(owner, repo, branch string) Endpoint {
	return postReposownerrepoBranchesbranchProtectionRestrictionsUsers.bind(owner, repo, branch)
}

func PutReposownerrepoBranchesbranchProtectionRestrictionsUsers(owner, repo, branch string) Endpoint {
	return putReposownerrepoBranchesbranchProtectionRestrictionsUsers.bind(owner, repo, branch)
}

func DeleteReposownerrepoBranchesbranchProtectionRestrictionsUsers(owner, repo, branch string) Endpoint {
	return deleteReposownerrepoBranchesbranchProtectionRestrictionsUsers.bind(owner, repo, branch)
}

func PostReposownerrepoBranchesbranchRename(owner, repo, branch string) Endpoint {
	return postReposownerrepoBranchesbranchRename.bind(owner, repo, branch)
}

func GetReposownerrepoCollaborators(owner, repo string) Endpoint {
	return getReposownerrepoCollaborators.bind(owner, repo)
}

func GetReposownerrepoCollaboratorsusername(owner, repo, username string) Endpoint {
	return getReposownerrepoCollaboratorsusername.bind(owner, repo, username)
}

func PutReposownerrepoCollaboratorsusername(owner, repo, username string) Endpoint {
	return putReposownerrepoCollaboratorsusername.bind(owner, repo, username)
}

func DeleteReposownerrepoCollaboratorsusername(owner, repo, username string) Endpoint {
	return deleteReposownerrepoCollaboratorsusername.bind(owner, repo, username)
}

func GetReposownerrepoCollaboratorsusernamePermission(owner, repo, username string) Endpoint {
	return getReposownerrepoCollaboratorsusernamePermission.bind(owner, repo, username)
}

func GetReposownerrepoComments(owner, repo string) Endpoint {
	return getReposownerrepoComments.bind(owner, repo)
}

func GetReposownerrepoCommentscommentId(owner, repo, commentID string) Endpoint {
	return getReposownerrepoCommentscommentId.bind(owner, repo, commentID)
}

func PatchReposownerrepoCommentscommentId(owner, repo, commentID string) Endpoint {
	return patchReposownerrepoCommentscommentId.bind(owner, repo, commentID)
}

func DeleteReposownerrepoCommentscommentId(owner, repo, commentID string) Endpoint {
	return deleteReposownerrepoCommentscommentId.bind(owner, repo, commentID)
}

func GetReposownerrepoCommits(owner, repo string) Endpoint {
	return getReposownerrepoCommits.bind(owner, repo)
}

func GetReposownerrepoCommitscommitShaBranchesWhereHead(owner, repo, commitSha string) Endpoint {
	return getReposownerrepoCommitscommitShaBranchesWhereHead.bind(owner, repo, commitSha)
}

func GetReposownerrepoCommitscommitShaComments(owner, repo, commitSha string) Endpoint {
	return getReposownerrepoCommitscommitShaComments.bind(owner, repo, commitSha)
}

func PostReposownerrepoCommitscommitShaComments(owner, repo, commitSha string) Endpoint {
	return postReposownerrepoCommitscommitShaComments.bind(owner, repo, commitSha)
}

func GetReposownerrepoCommitscommitShaPulls(owner, repo, commitSha string) Endpoint {
	return getReposownerrepoCommitscommitShaPulls.bind(owner, repo, commitSha)
}

func GetReposownerrepoCommitsref(owner, repo, ref string) Endpoint {
	return getReposownerrepoCommitsref.bind(owner, repo, ref)
}

func GetReposownerrepoCommitsrefStatus(owner, repo, ref string) Endpoint {
	return getReposownerrepoCommitsrefStatus.bind(owner, repo, ref)
}

func GetReposownerrepoCommitsrefStatuses(owner, repo, ref string) Endpoint {
	return getReposownerrepoCommitsrefStatuses.bind(owner, repo, ref)
}

func GetReposownerrepoCommunityProfile(owner, repo string) Endpoint {
	return getReposownerrepoCommunityProfile.bind(owner, repo)
}

func GetReposownerrepoComparebasehead(owner, repo, basehead string) Endpoint {
	return getReposownerrepoComparebasehead.bind(owner, repo, basehead)
}

func GetReposownerrepoContentspath(owner, repo, path string) Endpoint {
	return getReposownerrepoContentspath.bind(owner, repo, path)
}

func PutReposownerrepoContentspath(owner, repo, path string) Endpoint {
	return putReposownerrepoContentspath.bind(owner, repo, path)
}

func DeleteReposownerrepoContentspath(owner, repo, path string) Endpoint {
	return deleteReposownerrepoContentspath.bind(owner, repo, path)
}

func GetReposownerrepoContributors(owner, repo string) Endpoint {
	return getReposownerrepoContributors.bind(owner, repo)
}

func GetReposownerrepoDeployments(owner, repo string) Endpoint {
	return getReposownerrepoDeployments.bind(owner, repo)
}

func PostReposownerrepoDeployments(owner, repo string) Endpoint {
	return postReposownerrepoDeployments.bind(owner, repo)
}

func GetReposownerrepoDeploymentsdeploymentId(owner, repo, deploymentID string) Endpoint {
	return getReposownerrepoDeploymentsdeploymentId.bind(owner, repo, deploymentID)
}

func DeleteReposownerrepoDeploymentsdeploymentId(owner, repo, deploymentID string) Endpoint {
	return deleteReposownerrepoDeploymentsdeploymentId.bind(owner, repo, deploymentID)
}

func GetReposownerrepoDeploymentsdeploymentIdStatuses(owner, repo, deploymentID string) Endpoint {
	return getReposownerrepoDeploymentsdeploymentIdStatuses.bind(owner, repo, deploymentID)
}

func PostReposownerrepoDeploymentsdeploymentIdStatuses(owner, repo, deploymentID string) Endpoint {
	return postReposownerrepoDeploymentsdeploymentIdStatuses.bind(owner, repo, deploymentID)
}

func GetReposownerrepoDeploymentsdeploymentIdStatusesstatusId(owner, repo, deploymentID, statusID string) Endpoint {
	return getReposownerrepoDeploymentsdeploymentIdStatusesstatusId.bind(owner, repo, deploymentID, statusID)
}

func PostReposownerrepoDispatches(owner, repo string) Endpoint {
	return postReposownerrepoDispatches.bind(owner, repo)
}

func GetReposownerrepoEnvironments(owner, repo string) Endpoint {
	return getReposownerrepoEnvironments.bind(owner, repo)
}

func GetReposownerrepoEnvironmentsenvironmentName(owner, repo, environmentName string) Endpoint {
	return getReposownerrepoEnvironmentsenvironmentName.bind(owner, repo, environmentName)
}

func PutReposownerrepoEnvironmentsenvironmentName(owner, repo, environmentName string) Endpoint {
	return putReposownerrepoEnvironmentsenvironmentName.bind(owner, repo, environmentName)
}

func DeleteReposownerrepoEnvironmentsenvironmentName(owner, repo, environmentName string) Endpoint {
	return deleteReposownerrepoEnvironmentsenvironmentName.bind(owner, repo, environmentName)
}

func GetReposownerrepoForks(owner, repo string) Endpoint {
	return getReposownerrepoForks.bind(owner, repo)
}

func PostReposownerrepoForks(owner, repo string) Endpoint {
	return postReposownerrepoForks.bind(owner, repo)
}

func GetReposownerrepoHooks(owner, repo string) Endpoint {
	return getReposownerrepoHooks.bind(owner, repo)
}

func PostReposownerrepoHooks(owner, repo string) Endpoint {
	return postReposownerrepoHooks.bind(owner, repo)
}

func GetReposownerrepoHookshookId(owner, repo, hookID string) Endpoint {
	return getReposownerrepoHookshookId.bind(owner, repo, hookID)
}

func PatchReposownerrepoHookshookId(owner, repo, hookID string) Endpoint {
	return patchReposownerrepoHookshookId.bind(owner, repo, hookID)
}

func DeleteReposownerrepoHookshookId(owner, repo, hookID string) Endpoint {
	return deleteReposownerrepoHookshookId.bind(owner, repo, hookID)
}

func GetReposownerrepoHookshookIdConfig(owner, repo, hookID string) Endpoint {
	return getReposownerrepoHookshookIdConfig.bind(owner, repo, hookID)
}

func PatchReposownerrepoHookshookIdConfig(owner, repo, hookID string) Endpoint {
	return patchReposownerrepoHookshookIdConfig.bind(owner, repo, hookID)
}

func GetReposownerrepoHookshookIdDeliveries(owner, repo, hookID string) Endpoint {
	return getReposownerrepoHookshookIdDeliveries.bind(owner, repo, hookID)
}

func GetReposownerrepoHookshookIdDeliveriesdeliveryId(owner, repo, hookID, deliveryID string) Endpoint {
	return getReposownerrepoHookshookIdDeliveriesdeliveryId.bind(owner, repo, hookID, deliveryID)
}

func PostReposownerrepoHookshookIdDeliveriesdeliveryIdAttempts(owner, repo, hookID, deliveryID string) Endpoint {
	return postReposownerrepoHookshookIdDeliveriesdeliveryIdAttempts.bind(owner, repo, hookID, deliveryID)
}

func PostReposownerrepoHookshookIdPings(owner, repo, hookID string) Endpoint {
	return postReposownerrepoHookshookIdPings.bind(owner, repo, hookID)
}

func PostReposownerrepoHookshookIdTests(owner, repo, hookID string) Endpoint {
	return postReposownerrepoHookshookIdTests.bind(owner, repo, hookID)
}

func GetReposownerrepoInvitations(owner, repo string) Endpoint {
	return getReposownerrepoInvitations.bind(owner, repo)
}

func PatchReposownerrepoInvitationsinvitationId(owner, repo, invitationID string) Endpoint {
	return patchReposownerrepoInvitationsinvitationId.bind(owner, repo, invitationID)
}

func DeleteReposownerrepoInvitationsinvitationId(owner, repo, invitationID string) Endpoint {
	return deleteReposownerrepoInvitationsinvitationId.bind(owner, repo, invitationID)
}

func GetReposownerrepoKeys(owner, repo string) Endpoint {
	return getReposownerrepoKeys.bind(owner, repo)
}

func PostReposownerrepoKeys(owner, repo string) Endpoint {
	return postReposownerrepoKeys.bind(owner, repo)
}

func GetReposownerrepoKeyskeyId(owner, repo, keyID string) Endpoint {
	return getReposownerrepoKeyskeyId.bind(owner, repo, keyID)
}

func DeleteReposownerrepoKeyskeyId(owner, repo, keyID string) Endpoint {
	return deleteReposownerrepoKeyskeyId.bind(owner, repo, keyID)
}

func GetReposownerrepoLanguages(owner, repo string) Endpoint {
	return getReposownerrepoLanguages.bind(owner, repo)
}

func PostReposownerrepoMergeUpstream(owner, repo string) Endpoint {
	return postReposownerrepoMergeUpstream.bind(owner, repo)
}

func PostReposownerrepoMerges(owner, repo string) Endpoint {
	return postReposownerrepoMerges.bind(owner, repo)
}

func GetReposownerrepoPages(owner, repo string) Endpoint {
	return getReposownerrepoPages.bind(owner, repo)
}

func PostReposownerrepoPages(owner, repo string) Endpoint {
	return postReposownerrepoPages.bind(owner, repo)
}

func PutReposownerrepoPages(owner, repo string) Endpoint {
	return putReposownerrepoPages.bind(owner, repo)
}

func DeleteReposownerrepoPages(owner, repo string) Endpoint {
	return deleteReposownerrepoPages.bind(owner, repo)
}

func GetReposownerrepoPagesBuilds(owner, repo string) Endpoint {
	return getReposownerrepoPagesBuilds.bind(owner, repo)
}

func PostReposownerrepoPagesBuilds(owner, repo string) Endpoint {
	return postReposownerrepoPagesBuilds.bind(owner, repo)
}

func GetReposownerrepoPagesBuildsLatest(owner, repo string) Endpoint {
	return getReposownerrepoPagesBuildsLatest.bind(owner, repo)
}

func GetReposownerrepoPagesBuildsbuildId(owner, repo, buildID string) Endpoint {
	return getReposownerrepoPagesBuildsbuildId.bind(owner, repo, buildID)
}

func GetReposownerrepoPagesHealth(owner, repo string) Endpoint {
	return getReposownerrepoPagesHealth.bind(owner, repo)
}

func GetReposownerrepoReadme(owner, repo string) Endpoint {
	return getReposownerrepoReadme.bind(owner, repo)
}

func GetReposownerrepoReadmedir(owner, repo, dir string) Endpoint {
	return getReposownerrepoReadmedir.bind(owner, repo, dir)
}

func GetReposownerrepoReleases(owner, repo string) Endpoint {
	return getReposownerrepoReleases.bind(owner, repo)
}

func PostReposownerrepoReleases(owner, repo string) Endpoint {
	return postReposownerrepoReleases.bind(owner, repo)
}

func GetReposownerrepoReleasesAssetsassetId(owner, repo, assetID string) Endpoint {
	return getReposownerrepoReleasesAssetsassetId.bind(owner, repo, assetID)
}

func PatchReposownerrepoReleasesAssetsassetId(owner, repo, assetID string) Endpoint {
	return patchReposownerrepoReleasesAssetsassetId.bind(owner, repo, assetID)
}

func DeleteReposownerrepoReleasesAssetsassetId(owner, repo, assetID string) Endpoint {
	return deleteReposownerrepoReleasesAssetsassetId.bind(owner, repo, assetID)
}

func GetReposownerrepoReleasesLatest(owner, repo string) Endpoint {
	return getReposownerrepoReleasesLatest.bind(owner, repo)
}

func GetReposownerrepoReleasesTagstag(owner, repo, tag string) Endpoint {
	return getReposownerrepoReleasesTagstag.bind(owner, repo, tag)
}

func GetReposownerrepoReleasesreleaseId(owner, repo, releaseID string) Endpoint {
	return getReposownerrepoReleasesreleaseId.bind(owner, repo, releaseID)
}

func PatchReposownerrepoReleasesreleaseId(owner, repo, releaseID string) Endpoint {
	return patchReposownerrepoReleasesreleaseId.bind(owner, repo, releaseID)
}

func DeleteReposownerrepoReleasesreleaseId(owner, repo, releaseID string) Endpoint {
	return deleteReposownerrepoReleasesreleaseId.bind(owner, repo, releaseID)
}

func GetReposownerrepoReleasesreleaseIdAssets(owner, repo, releaseID string) Endpoint {
	return getReposownerrepoReleasesreleaseIdAssets.bind(owner, repo, releaseID)
}

func PostReposownerrepoReleasesreleaseIdAssets(owner, repo, releaseID string) Endpoint {
	return postReposownerrepoReleasesreleaseIdAssets.bind(owner, repo, releaseID)
}

func GetReposownerrepoStatsCodeFrequency(owner, repo string) Endpoint {
	return getReposownerrepoStatsCodeFrequency.bind(owner, repo)
}

func GetReposownerrepoStatsCommitActivity(owner, repo string) Endpoint {
	return getReposownerrepoStatsCommitActivity.bind(owner, repo)
}

func GetReposownerrepoStatsContributors(owner, repo string) Endpoint {
	return getReposownerrepoStatsContributors.bind(owner, repo)
}

func GetReposownerrepoStatsParticipation(owner, repo string) Endpoint {
	return getReposownerrepoStatsParticipation.bind(owner, repo)
}

func GetReposownerrepoStatsPunchCard(owner, repo string) Endpoint {
	return getReposownerrepoStatsPunchCard.bind(owner, repo)
}

func PostReposownerrepoStatusessha(owner, repo, sha string) Endpoint {
	return postReposownerrepoStatusessha.bind(owner, repo, sha)
}

func GetReposownerrepoTags(owner, repo string) Endpoint {
	return getReposownerrepoTags.bind(owner, repo)
}

func GetReposownerrepoTarballref(owner, repo, ref string) Endpoint {
	return getReposownerrepoTarballref.bind(owner, repo, ref)
}

func GetReposownerrepoTeams(owner, repo string) Endpoint {
	return getReposownerrepoTeams.bind(owner, repo)
}

func GetReposownerrepoTopics(owner, repo string) Endpoint {
	return getReposownerrepoTopics.bind(owner, repo)
}

func PutReposownerrepoTopics(owner, repo string) Endpoint {
	return putReposownerrepoTopics.bind(owner, repo)
}

func GetReposownerrepoTrafficClones(owner, repo string) Endpoint {
	return getReposownerrepoTrafficClones.bind(owner, repo)
}

func GetReposownerrepoTrafficPopularPaths(owner, repo string) Endpoint {
	return getReposownerrepoTrafficPopularPaths.bind(owner, repo)
}

func GetReposownerrepoTrafficPopularReferrers(owner, repo string) Endpoint {
	return getReposownerrepoTrafficPopularReferrers.bind(owner, repo)
}

func GetReposownerrepoTrafficViews(owner, repo string) Endpoint {
	return getReposownerrepoTrafficViews.bind(owner, repo)
}

func PostReposownerrepoTransfer(owner, repo string) Endpoint {
	return postReposownerrepoTransfer.bind(owner, repo)
}

func GetReposownerrepoVulnerabilityAlerts(owner, repo string) Endpoint {
	return getReposownerrepoVulnerabilityAlerts.bind(owner, repo)
}

func PutReposownerrepoVulnerabilityAlerts(owner, repo string) Endpoint {
	return putReposownerrepoVulnerabilityAlerts.bind(owner, repo)
}

func DeleteReposownerrepoVulnerabilityAlerts(owner, repo string) Endpoint {
	return deleteReposownerrepoVulnerabilityAlerts.bind(owner, repo)
}

func GetReposownerrepoZipballref(owner, repo, ref string) Endpoint {
	return getReposownerrepoZipballref.bind(owner, repo, ref)
}

func PostRepostemplateOwnertemplateRepoGenerate(templateOwner, templateRepo string) Endpoint {
	return postRepostemplateOwnertemplateRepoGenerate.bind(templateOwner, templateRepo)
}

func GetRepositories() Endpoint {
	return getRepositories.bind()
}

func GetUserRepos() Endpoint {
	return getUserRepos.bind()
}

func PostUserRepos() Endpoint {
	return postUserRepos.bind()
}

func GetUserRepositoryInvitations() Endpoint {
	return getUserRepositoryInvitations.bind()
}

func PatchUserRepositoryInvitationsinvitationId(invitationID string) Endpoint {
	return patchUserRepositoryInvitationsinvitationId.bind(invitationID)
}

func DeleteUserRepositoryInvitationsinvitationId(invitationID string) Endpoint {
	return deleteUserRepositoryInvitationsinvitationId.bind(invitationID)
}

func GetUsersusernameRepos(username string) Endpoint {
	return getUsersusernameRepos.bind(username)
}
