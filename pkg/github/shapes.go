package github

// responses maps route names to the shape of their documented response body.
// Routes answering 204 No Content, redirects and raw archives have no entry.
var responses = map[string]func() interface{}{
	// meta
	"Get":        shape[Root],
	"GetMeta":    shape[APIOverview],
	"GetOctocat": shape[string],
	"GetZen":     shape[string],

	// apps
	"GetApp":                                             shape[Integration],
	"GetAppHookConfig":                                   shape[HookConfig],
	"PatchAppHookConfig":                                 shape[HookConfig],
	"GetAppHookDeliveries":                               shape[[]HookDeliveryItem],
	"GetAppHookDeliveriesdeliveryId":                     shape[HookDelivery],
	"GetAppInstallations":                                shape[[]Installation],
	"GetAppInstallationsinstallationId":                  shape[Installation],
	"PostAppInstallationsinstallationIdAccessTokens":     shape[InstallationToken],
	"PostAppManifestscodeConversions":                    shape[Integration],
	"PostApplicationsclientIdToken":                      shape[Authorization],
	"PatchApplicationsclientIdToken":                     shape[Authorization],
	"PostApplicationsclientIdTokenScoped":                shape[Authorization],
	"GetApplicationsclientIdTokensaccessToken":           shape[Authorization],
	"PostApplicationsclientIdTokensaccessToken":          shape[Authorization],
	"GetAppsappSlug":                                     shape[Integration],
	"PostContentReferencescontentReferenceIdAttachments": shape[ContentReferenceAttachment],
	"GetInstallationRepositories":                        shape[RepositoryList],
	"GetMarketplaceListingAccountsaccountId":             shape[MarketplacePurchase],
	"GetMarketplaceListingPlans":                         shape[[]MarketplacePlan],
	"GetMarketplaceListingPlansplanIdAccounts":           shape[[]MarketplacePurchase],
	"GetMarketplaceListingStubbedAccountsaccountId":      shape[MarketplacePurchase],
	"GetMarketplaceListingStubbedPlans":                  shape[[]MarketplacePlan],
	"GetMarketplaceListingStubbedPlansplanIdAccounts":    shape[[]MarketplacePurchase],
	"GetOrgsorgInstallation":                             shape[Installation],
	"GetReposownerrepoInstallation":                      shape[Installation],
	"GetUserInstallations":                               shape[InstallationList],
	"GetUserInstallationsinstallationIdRepositories":     shape[RepositoryList],
	"GetUserMarketplacePurchases":                        shape[[]UserMarketplacePurchase],
	"GetUserMarketplacePurchasesStubbed":                 shape[[]UserMarketplacePurchase],
	"GetUsersusernameInstallation":                       shape[Installation],

	// oauth-authorizations
	"GetApplicationsGrants":                       shape[[]ApplicationGrant],
	"GetApplicationsGrantsgrantId":                shape[ApplicationGrant],
	"GetAuthorizations":                           shape[[]Authorization],
	"PostAuthorizations":                          shape[Authorization],
	"PutAuthorizationsClientsclientId":            shape[Authorization],
	"PutAuthorizationsClientsclientIdfingerprint": shape[Authorization],
	"GetAuthorizationsauthorizationId":            shape[Authorization],
	"PatchAuthorizationsauthorizationId":          shape[Authorization],

	// codes-of-conduct
	"GetCodesOfConduct":                       shape[[]CodeOfConduct],
	"GetCodesOfConductkey":                    shape[CodeOfConduct],
	"GetReposownerrepoCommunityCodeOfConduct": shape[CodeOfConduct],

	// emojis
	"GetEmojis": shape[Emojis],

	// enterprise-admin
	"GetEnterprisesenterpriseActionsPermissions":                            shape[ActionsPermissions],
	"GetEnterprisesenterpriseActionsPermissionsOrganizations":               shape[OrganizationList],
	"GetEnterprisesenterpriseActionsPermissionsSelectedActions":             shape[SelectedActions],
	"GetEnterprisesenterpriseActionsRunnerGroups":                           shape[RunnerGroupList],
	"PostEnterprisesenterpriseActionsRunnerGroups":                          shape[RunnerGroup],
	"GetEnterprisesenterpriseActionsRunnerGroupsrunnerGroupId":              shape[RunnerGroup],
	"PatchEnterprisesenterpriseActionsRunnerGroupsrunnerGroupId":            shape[RunnerGroup],
	"GetEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizations": shape[OrganizationList],
	"GetEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunners":       shape[RunnerList],
	"GetEnterprisesenterpriseActionsRunners":                                shape[RunnerList],
	"GetEnterprisesenterpriseActionsRunnersDownloads":                       shape[[]RunnerApplication],
	"PostEnterprisesenterpriseActionsRunnersRegistrationToken":              shape[AuthenticationToken],
	"PostEnterprisesenterpriseActionsRunnersRemoveToken":                    shape[AuthenticationToken],
	"GetEnterprisesenterpriseActionsRunnersrunnerId":                        shape[Runner],
	"GetEnterprisesenterpriseActionsRunnersrunnerIdLabels":                  shape[RunnerLabelList],
	"PostEnterprisesenterpriseActionsRunnersrunnerIdLabels":                 shape[RunnerLabelList],
	"PutEnterprisesenterpriseActionsRunnersrunnerIdLabels":                  shape[RunnerLabelList],
	"DeleteEnterprisesenterpriseActionsRunnersrunnerIdLabels":               shape[RunnerLabelList],
	"DeleteEnterprisesenterpriseActionsRunnersrunnerIdLabelsname":           shape[RunnerLabelList],
	"GetEnterprisesenterpriseAuditLog":                                      shape[[]AuditLogEvent],
	"GetScimV2EnterprisesenterpriseGroups":                                  shape[ScimGroupList],
	"PostScimV2EnterprisesenterpriseGroups":                                 shape[ScimGroup],
	"GetScimV2EnterprisesenterpriseGroupsscimGroupId":                       shape[ScimGroup],
	"PutScimV2EnterprisesenterpriseGroupsscimGroupId":                       shape[ScimGroup],
	"PatchScimV2EnterprisesenterpriseGroupsscimGroupId":                     shape[ScimGroup],
	"GetScimV2EnterprisesenterpriseUsers":                                   shape[ScimUserList],
	"PostScimV2EnterprisesenterpriseUsers":                                  shape[ScimUser],
	"GetScimV2EnterprisesenterpriseUsersscimUserId":                         shape[ScimUser],
	"PutScimV2EnterprisesenterpriseUsersscimUserId":                         shape[ScimUser],
	"PatchScimV2EnterprisesenterpriseUsersscimUserId":                       shape[ScimUser],

	// billing
	"GetEnterprisesenterpriseSettingsBillingActions":       shape[ActionsBilling],
	"GetEnterprisesenterpriseSettingsBillingPackages":      shape[PackagesBilling],
	"GetEnterprisesenterpriseSettingsBillingSharedStorage": shape[CombinedBilling],
	"GetOrgsorgSettingsBillingActions":                     shape[ActionsBilling],
	"GetOrgsorgSettingsBillingPackages":                    shape[PackagesBilling],
	"GetOrgsorgSettingsBillingSharedStorage":               shape[CombinedBilling],
	"GetUsersusernameSettingsBillingActions":               shape[ActionsBilling],
	"GetUsersusernameSettingsBillingPackages":              shape[PackagesBilling],
	"GetUsersusernameSettingsBillingSharedStorage":         shape[CombinedBilling],

	// activity
	"GetEvents":                                   shape[[]Event],
	"GetFeeds":                                    shape[Feed],
	"GetNetworksownerrepoEvents":                  shape[[]Event],
	"GetNotifications":                            shape[[]Thread],
	"PutNotifications":                            shape[NotificationsMarked],
	"GetNotificationsThreadsthreadId":             shape[Thread],
	"GetNotificationsThreadsthreadIdSubscription": shape[ThreadSubscription],
	"PutNotificationsThreadsthreadIdSubscription": shape[ThreadSubscription],
	"GetOrgsorgEvents":                            shape[[]Event],
	"GetReposownerrepoEvents":                     shape[[]Event],
	"GetReposownerrepoNotifications":              shape[[]Thread],
	"PutReposownerrepoNotifications":              shape[NotificationsMarked],
	"GetReposownerrepoStargazers":                 shape[[]SimpleUser],
	"GetReposownerrepoSubscribers":                shape[[]SimpleUser],
	"GetReposownerrepoSubscription":               shape[RepositorySubscription],
	"PutReposownerrepoSubscription":               shape[RepositorySubscription],
	"GetUserStarred":                              shape[[]Repository],
	"GetUserSubscriptions":                        shape[[]MinimalRepository],
	"GetUsersusernameEvents":                      shape[[]Event],
	"GetUsersusernameEventsOrgsorg":               shape[[]Event],
	"GetUsersusernameEventsPublic":                shape[[]Event],
	"GetUsersusernameReceivedEvents":              shape[[]Event],
	"GetUsersusernameReceivedEventsPublic":        shape[[]Event],
	"GetUsersusernameStarred":                     shape[[]Repository],
	"GetUsersusernameSubscriptions":               shape[[]MinimalRepository],

	// gists
	"GetGists":                          shape[[]Gist],
	"PostGists":                         shape[Gist],
	"GetGistsPublic":                    shape[[]Gist],
	"GetGistsStarred":                   shape[[]Gist],
	"GetGistsgistId":                    shape[Gist],
	"PatchGistsgistId":                  shape[Gist],
	"GetGistsgistIdComments":            shape[[]GistComment],
	"PostGistsgistIdComments":           shape[GistComment],
	"GetGistsgistIdCommentscommentId":   shape[GistComment],
	"PatchGistsgistIdCommentscommentId": shape[GistComment],
	"GetGistsgistIdCommits":             shape[[]GistCommit],
	"GetGistsgistIdForks":               shape[[]GistFork],
	"PostGistsgistIdForks":              shape[Gist],
	"GetGistsgistIdsha":                 shape[Gist],
	"GetUsersusernameGists":             shape[[]Gist],

	// gitignore
	"GetGitignoreTemplates":     shape[[]string],
	"GetGitignoreTemplatesname": shape[GitignoreTemplate],

	// interactions
	"GetOrgsorgInteractionLimits":        shape[InteractionLimit],
	"PutOrgsorgInteractionLimits":        shape[InteractionLimit],
	"GetReposownerrepoInteractionLimits": shape[InteractionLimit],
	"PutReposownerrepoInteractionLimits": shape[InteractionLimit],
	"GetUserInteractionLimits":           shape[InteractionLimit],
	"PutUserInteractionLimits":           shape[InteractionLimit],

	// issues
	"GetIssues":                                        shape[[]Issue],
	"GetOrgsorgIssues":                                 shape[[]Issue],
	"GetReposownerrepoAssignees":                       shape[[]SimpleUser],
	"GetReposownerrepoIssues":                          shape[[]Issue],
	"PostReposownerrepoIssues":                         shape[Issue],
	"GetReposownerrepoIssuesComments":                  shape[[]IssueComment],
	"GetReposownerrepoIssuesCommentscommentId":         shape[IssueComment],
	"PatchReposownerrepoIssuesCommentscommentId":       shape[IssueComment],
	"GetReposownerrepoIssuesEvents":                    shape[[]IssueEvent],
	"GetReposownerrepoIssuesEventseventId":             shape[IssueEvent],
	"GetReposownerrepoIssuesissueNumber":               shape[Issue],
	"PatchReposownerrepoIssuesissueNumber":             shape[Issue],
	"PostReposownerrepoIssuesissueNumberAssignees":     shape[Issue],
	"DeleteReposownerrepoIssuesissueNumberAssignees":   shape[Issue],
	"GetReposownerrepoIssuesissueNumberComments":       shape[[]IssueComment],
	"PostReposownerrepoIssuesissueNumberComments":      shape[IssueComment],
	"GetReposownerrepoIssuesissueNumberEvents":         shape[[]IssueEvent],
	"GetReposownerrepoIssuesissueNumberLabels":         shape[[]Label],
	"PostReposownerrepoIssuesissueNumberLabels":        shape[[]Label],
	"PutReposownerrepoIssuesissueNumberLabels":         shape[[]Label],
	"DeleteReposownerrepoIssuesissueNumberLabelsname":  shape[[]Label],
	"GetReposownerrepoIssuesissueNumberTimeline":       shape[[]TimelineEvent],
	"GetReposownerrepoLabels":                          shape[[]Label],
	"PostReposownerrepoLabels":                         shape[Label],
	"GetReposownerrepoLabelsname":                      shape[Label],
	"PatchReposownerrepoLabelsname":                    shape[Label],
	"GetReposownerrepoMilestones":                      shape[[]Milestone],
	"PostReposownerrepoMilestones":                     shape[Milestone],
	"GetReposownerrepoMilestonesmilestoneNumber":       shape[Milestone],
	"PatchReposownerrepoMilestonesmilestoneNumber":     shape[Milestone],
	"GetReposownerrepoMilestonesmilestoneNumberLabels": shape[[]Label],
	"GetUserIssues":                                    shape[[]Issue],

	// licenses
	"GetLicenses":              shape[[]LicenseSimple],
	"GetLicenseslicense":       shape[License],
	"GetReposownerrepoLicense": shape[LicenseContent],

	// markdown
	"PostMarkdown":    shape[string],
	"PostMarkdownRaw": shape[string],

	// migrations
	"GetOrgsorgMigrations":                        shape[[]Migration],
	"PostOrgsorgMigrations":                       shape[Migration],
	"GetOrgsorgMigrationsmigrationId":             shape[Migration],
	"GetOrgsorgMigrationsmigrationIdRepositories": shape[[]MinimalRepository],
	"GetReposownerrepoImport":                     shape[Import],
	"PutReposownerrepoImport":                     shape[Import],
	"PatchReposownerrepoImport":                   shape[Import],
	"GetReposownerrepoImportAuthors":              shape[[]PorterAuthor],
	"PatchReposownerrepoImportAuthorsauthorId":    shape[PorterAuthor],
	"GetReposownerrepoImportLargeFiles":           shape[[]PorterLargeFile],
	"PatchReposownerrepoImportLfs":                shape[Import],
	"GetUserMigrations":                           shape[[]Migration],
	"PostUserMigrations":                          shape[Migration],
	"GetUserMigrationsmigrationId":                shape[Migration],
	"GetUserMigrationsmigrationIdRepositories":    shape[[]MinimalRepository],

	// orgs
	"GetOrganizations":                          shape[[]Organization],
	"GetOrgsorg":                                shape[OrganizationFull],
	"PatchOrgsorg":                              shape[OrganizationFull],
	"GetOrgsorgAuditLog":                        shape[[]AuditLogEvent],
	"GetOrgsorgBlocks":                          shape[[]SimpleUser],
	"GetOrgsorgCredentialAuthorizations":        shape[[]CredentialAuthorization],
	"GetOrgsorgFailedInvitations":               shape[[]OrganizationInvitation],
	"GetOrgsorgHooks":                           shape[[]OrgHook],
	"PostOrgsorgHooks":                          shape[OrgHook],
	"GetOrgsorgHookshookId":                     shape[OrgHook],
	"PatchOrgsorgHookshookId":                   shape[OrgHook],
	"GetOrgsorgHookshookIdConfig":               shape[HookConfig],
	"PatchOrgsorgHookshookIdConfig":             shape[HookConfig],
	"GetOrgsorgHookshookIdDeliveries":           shape[[]HookDeliveryItem],
	"GetOrgsorgHookshookIdDeliveriesdeliveryId": shape[HookDelivery],
	"GetOrgsorgInstallations":                   shape[InstallationList],
	"GetOrgsorgInvitations":                     shape[[]OrganizationInvitation],
	"PostOrgsorgInvitations":                    shape[OrganizationInvitation],
	"GetOrgsorgInvitationsinvitationIdTeams":    shape[[]Team],
	"GetOrgsorgMembers":                         shape[[]SimpleUser],
	"GetOrgsorgMembershipsusername":             shape[OrgMembership],
	"PutOrgsorgMembershipsusername":             shape[OrgMembership],
	"GetOrgsorgOutsideCollaborators":            shape[[]SimpleUser],
	"GetOrgsorgPublicMembers":                   shape[[]SimpleUser],
	"GetUserMembershipsOrgs":                    shape[[]OrgMembership],
	"GetUserMembershipsOrgsorg":                 shape[OrgMembership],
	"PatchUserMembershipsOrgsorg":               shape[OrgMembership],
	"GetUserOrgs":                               shape[[]Organization],
	"GetUsersusernameOrgs":                      shape[[]Organization],

	// actions
	"GetOrgsorgActionsPermissions":                                            shape[ActionsPermissions],
	"GetOrgsorgActionsPermissionsRepositories":                                shape[MinimalRepositoryList],
	"GetOrgsorgActionsPermissionsSelectedActions":                             shape[SelectedActions],
	"GetOrgsorgActionsRunnerGroups":                                           shape[RunnerGroupList],
	"PostOrgsorgActionsRunnerGroups":                                          shape[RunnerGroup],
	"GetOrgsorgActionsRunnerGroupsrunnerGroupId":                              shape[RunnerGroup],
	"PatchOrgsorgActionsRunnerGroupsrunnerGroupId":                            shape[RunnerGroup],
	"GetOrgsorgActionsRunnerGroupsrunnerGroupIdRepositories":                  shape[MinimalRepositoryList],
	"GetOrgsorgActionsRunnerGroupsrunnerGroupIdRunners":                       shape[RunnerList],
	"GetOrgsorgActionsRunners":                                                shape[RunnerList],
	"GetOrgsorgActionsRunnersDownloads":                                       shape[[]RunnerApplication],
	"PostOrgsorgActionsRunnersRegistrationToken":                              shape[AuthenticationToken],
	"PostOrgsorgActionsRunnersRemoveToken":                                    shape[AuthenticationToken],
	"GetOrgsorgActionsRunnersrunnerId":                                        shape[Runner],
	"GetOrgsorgActionsRunnersrunnerIdLabels":                                  shape[RunnerLabelList],
	"PostOrgsorgActionsRunnersrunnerIdLabels":                                 shape[RunnerLabelList],
	"PutOrgsorgActionsRunnersrunnerIdLabels":                                  shape[RunnerLabelList],
	"DeleteOrgsorgActionsRunnersrunnerIdLabels":                               shape[RunnerLabelList],
	"DeleteOrgsorgActionsRunnersrunnerIdLabelsname":                           shape[RunnerLabelList],
	"GetOrgsorgActionsSecrets":                                                shape[ActionsSecretList],
	"GetOrgsorgActionsSecretsPublicKey":                                       shape[ActionsPublicKey],
	"GetOrgsorgActionsSecretssecretName":                                      shape[ActionsSecret],
	"GetOrgsorgActionsSecretssecretNameRepositories":                          shape[MinimalRepositoryList],
	"GetReposownerrepoActionsArtifacts":                                       shape[ArtifactList],
	"GetReposownerrepoActionsArtifactsartifactId":                             shape[Artifact],
	"GetReposownerrepoActionsJobsjobId":                                       shape[Job],
	"GetReposownerrepoActionsPermissions":                                     shape[ActionsPermissions],
	"GetReposownerrepoActionsPermissionsSelectedActions":                      shape[SelectedActions],
	"GetReposownerrepoActionsRunners":                                         shape[RunnerList],
	"GetReposownerrepoActionsRunnersDownloads":                                shape[[]RunnerApplication],
	"PostReposownerrepoActionsRunnersRegistrationToken":                       shape[AuthenticationToken],
	"PostReposownerrepoActionsRunnersRemoveToken":                             shape[AuthenticationToken],
	"GetReposownerrepoActionsRunnersrunnerId":                                 shape[Runner],
	"GetReposownerrepoActionsRunnersrunnerIdLabels":                           shape[RunnerLabelList],
	"PostReposownerrepoActionsRunnersrunnerIdLabels":                          shape[RunnerLabelList],
	"PutReposownerrepoActionsRunnersrunnerIdLabels":                           shape[RunnerLabelList],
	"DeleteReposownerrepoActionsRunnersrunnerIdLabels":                        shape[RunnerLabelList],
	"DeleteReposownerrepoActionsRunnersrunnerIdLabelsname":                    shape[RunnerLabelList],
	"GetReposownerrepoActionsRuns":                                            shape[WorkflowRunList],
	"GetReposownerrepoActionsRunsrunId":                                       shape[WorkflowRun],
	"GetReposownerrepoActionsRunsrunIdApprovals":                              shape[[]EnvironmentApproval],
	"GetReposownerrepoActionsRunsrunIdArtifacts":                              shape[ArtifactList],
	"GetReposownerrepoActionsRunsrunIdJobs":                                   shape[JobList],
	"GetReposownerrepoActionsRunsrunIdPendingDeployments":                     shape[[]PendingDeployment],
	"PostReposownerrepoActionsRunsrunIdPendingDeployments":                    shape[[]Deployment],
	"GetReposownerrepoActionsRunsrunIdTiming":                                 shape[WorkflowRunUsage],
	"GetReposownerrepoActionsSecrets":                                         shape[ActionsSecretList],
	"GetReposownerrepoActionsSecretsPublicKey":                                shape[ActionsPublicKey],
	"GetReposownerrepoActionsSecretssecretName":                               shape[ActionsSecret],
	"GetReposownerrepoActionsWorkflows":                                       shape[WorkflowList],
	"GetReposownerrepoActionsWorkflowsworkflowId":                             shape[Workflow],
	"GetReposownerrepoActionsWorkflowsworkflowIdRuns":                         shape[WorkflowRunList],
	"GetReposownerrepoActionsWorkflowsworkflowIdTiming":                       shape[WorkflowUsage],
	"GetRepositoriesrepositoryIdEnvironmentsenvironmentNameSecrets":           shape[ActionsSecretList],
	"GetRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretsPublicKey":  shape[ActionsPublicKey],
	"GetRepositoriesrepositoryIdEnvironmentsenvironmentNameSecretssecretName": shape[ActionsSecret],

	// checks
	"PostReposownerrepoCheckRuns":                       shape[CheckRun],
	"GetReposownerrepoCheckRunscheckRunId":              shape[CheckRun],
	"PatchReposownerrepoCheckRunscheckRunId":            shape[CheckRun],
	"GetReposownerrepoCheckRunscheckRunIdAnnotations":   shape[[]CheckAnnotation],
	"PostReposownerrepoCheckSuites":                     shape[CheckSuite],
	"PatchReposownerrepoCheckSuitesPreferences":         shape[CheckSuitePreference],
	"GetReposownerrepoCheckSuitescheckSuiteId":          shape[CheckSuite],
	"GetReposownerrepoCheckSuitescheckSuiteIdCheckRuns": shape[CheckRunList],
	"GetReposownerrepoCommitsrefCheckRuns":              shape[CheckRunList],
	"GetReposownerrepoCommitsrefCheckSuites":            shape[CheckSuiteList],

	// code-scanning
	"GetReposownerrepoCodeScanningAlerts":                     shape[[]CodeScanningAlert],
	"GetReposownerrepoCodeScanningAlertsalertNumber":          shape[CodeScanningAlert],
	"PatchReposownerrepoCodeScanningAlertsalertNumber":        shape[CodeScanningAlert],
	"GetReposownerrepoCodeScanningAlertsalertNumberInstances": shape[[]CodeScanningAlertInstance],
	"GetReposownerrepoCodeScanningAnalyses":                   shape[[]CodeScanningAnalysis],
	"GetReposownerrepoCodeScanningAnalysesanalysisId":         shape[CodeScanningAnalysis],
	"DeleteReposownerrepoCodeScanningAnalysesanalysisId":      shape[CodeScanningAnalysisDeletion],
	"PostReposownerrepoCodeScanningSarifs":                    shape[CodeScanningSarifsReceipt],
	"GetReposownerrepoCodeScanningSarifssarifId":              shape[CodeScanningSarifsStatus],

	// secret-scanning
	"GetOrgsorgSecretScanningAlerts":                     shape[[]SecretScanningAlert],
	"GetReposownerrepoSecretScanningAlerts":              shape[[]SecretScanningAlert],
	"GetReposownerrepoSecretScanningAlertsalertNumber":   shape[SecretScanningAlert],
	"PatchReposownerrepoSecretScanningAlertsalertNumber": shape[SecretScanningAlert],

	// packages
	"GetOrgsorgPackagespackageTypepackageName":                               shape[Package],
	"GetOrgsorgPackagespackageTypepackageNameVersions":                       shape[[]PackageVersion],
	"GetOrgsorgPackagespackageTypepackageNameVersionspackageVersionId":       shape[PackageVersion],
	"GetUserPackagespackageTypepackageName":                                  shape[Package],
	"GetUserPackagespackageTypepackageNameVersions":                          shape[[]PackageVersion],
	"GetUserPackagespackageTypepackageNameVersionspackageVersionId":          shape[PackageVersion],
	"GetUsersusernamePackagespackageTypepackageName":                         shape[Package],
	"GetUsersusernamePackagespackageTypepackageNameVersions":                 shape[[]PackageVersion],
	"GetUsersusernamePackagespackageTypepackageNameVersionspackageVersionId": shape[PackageVersion],

	// projects
	"GetOrgsorgProjects":                                  shape[[]Project],
	"PostOrgsorgProjects":                                 shape[Project],
	"GetProjectsColumnsCardscardId":                       shape[ProjectCard],
	"PatchProjectsColumnsCardscardId":                     shape[ProjectCard],
	"GetProjectsColumnscolumnId":                          shape[ProjectColumn],
	"PatchProjectsColumnscolumnId":                        shape[ProjectColumn],
	"GetProjectsColumnscolumnIdCards":                     shape[[]ProjectCard],
	"PostProjectsColumnscolumnIdCards":                    shape[ProjectCard],
	"GetProjectsprojectId":                                shape[Project],
	"PatchProjectsprojectId":                              shape[Project],
	"GetProjectsprojectIdCollaborators":                   shape[[]SimpleUser],
	"GetProjectsprojectIdCollaboratorsusernamePermission": shape[ProjectCollaboratorPermission],
	"GetProjectsprojectIdColumns":                         shape[[]ProjectColumn],
	"PostProjectsprojectIdColumns":                        shape[ProjectColumn],
	"GetReposownerrepoProjects":                           shape[[]Project],
	"PostReposownerrepoProjects":                          shape[Project],
	"PostUserProjects":                                    shape[Project],
	"GetUsersusernameProjects":                            shape[[]Project],

	// pulls
	"GetReposownerrepoPulls":                                    shape[[]PullRequest],
	"PostReposownerrepoPulls":                                   shape[PullRequest],
	"GetReposownerrepoPullsComments":                            shape[[]PullRequestReviewComment],
	"GetReposownerrepoPullsCommentscommentId":                   shape[PullRequestReviewComment],
	"PatchReposownerrepoPullsCommentscommentId":                 shape[PullRequestReviewComment],
	"GetReposownerrepoPullspullNumber":                          shape[PullRequest],
	"PatchReposownerrepoPullspullNumber":                        shape[PullRequest],
	"GetReposownerrepoPullspullNumberComments":                  shape[[]PullRequestReviewComment],
	"PostReposownerrepoPullspullNumberComments":                 shape[PullRequestReviewComment],
	"PostReposownerrepoPullspullNumberCommentscommentIdReplies": shape[PullRequestReviewComment],
	"GetReposownerrepoPullspullNumberCommits":                   shape[[]Commit],
	"GetReposownerrepoPullspullNumberFiles":                     shape[[]DiffEntry],
	"PutReposownerrepoPullspullNumberMerge":                     shape[PullRequestMergeResult],
	"GetReposownerrepoPullspullNumberRequestedReviewers":        shape[PullRequestReviewRequest],
	"PostReposownerrepoPullspullNumberRequestedReviewers":       shape[PullRequest],
	"DeleteReposownerrepoPullspullNumberRequestedReviewers":     shape[PullRequest],
	"GetReposownerrepoPullspullNumberReviews":                   shape[[]PullRequestReview],
	"PostReposownerrepoPullspullNumberReviews":                  shape[PullRequestReview],
	"GetReposownerrepoPullspullNumberReviewsreviewId":           shape[PullRequestReview],
	"PutReposownerrepoPullspullNumberReviewsreviewId":           shape[PullRequestReview],
	"DeleteReposownerrepoPullspullNumberReviewsreviewId":        shape[PullRequestReview],
	"GetReposownerrepoPullspullNumberReviewsreviewIdComments":   shape[[]PullRequestReviewComment],
	"PutReposownerrepoPullspullNumberReviewsreviewIdDismissals": shape[PullRequestReview],
	"PostReposownerrepoPullspullNumberReviewsreviewIdEvents":    shape[PullRequestReview],
	"PutReposownerrepoPullspullNumberUpdateBranch":              shape[PullRequestUpdateBranch],

	// rate-limit
	"GetRateLimit": shape[RateLimitOverview],

	// reactions
	"GetOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumberReactions":  shape[[]Reaction],
	"PostOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumberReactions": shape[Reaction],
	"GetOrgsorgTeamsteamSlugDiscussionsdiscussionNumberReactions":                       shape[[]Reaction],
	"PostOrgsorgTeamsteamSlugDiscussionsdiscussionNumberReactions":                      shape[Reaction],
	"GetReposownerrepoCommentscommentIdReactions":                                       shape[[]Reaction],
	"PostReposownerrepoCommentscommentIdReactions":                                      shape[Reaction],
	"GetReposownerrepoIssuesCommentscommentIdReactions":                                 shape[[]Reaction],
	"PostReposownerrepoIssuesCommentscommentIdReactions":                                shape[Reaction],
	"GetReposownerrepoIssuesissueNumberReactions":                                       shape[[]Reaction],
	"PostReposownerrepoIssuesissueNumberReactions":                                      shape[Reaction],
	"GetReposownerrepoPullsCommentscommentIdReactions":                                  shape[[]Reaction],
	"PostReposownerrepoPullsCommentscommentIdReactions":                                 shape[Reaction],
	"PostReposownerrepoReleasesreleaseIdReactions":                                      shape[Reaction],
	"GetTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumberReactions":           shape[[]Reaction],
	"PostTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumberReactions":          shape[Reaction],
	"GetTeamsteamIdDiscussionsdiscussionNumberReactions":                                shape[[]Reaction],
	"PostTeamsteamIdDiscussionsdiscussionNumberReactions":                               shape[Reaction],

	// repos
	"GetOrgsorgRepos":                                                          shape[[]MinimalRepository],
	"PostOrgsorgRepos":                                                         shape[Repository],
	"GetReposownerrepo":                                                        shape[FullRepository],
	"PatchReposownerrepo":                                                      shape[FullRepository],
	"GetReposownerrepoAutolinks":                                               shape[[]Autolink],
	"PostReposownerrepoAutolinks":                                              shape[Autolink],
	"GetReposownerrepoAutolinksautolinkId":                                     shape[Autolink],
	"GetReposownerrepoBranches":                                                shape[[]BranchShort],
	"GetReposownerrepoBranchesbranch":                                          shape[BranchWithProtection],
	"GetReposownerrepoBranchesbranchProtection":                                shape[BranchProtection],
	"PutReposownerrepoBranchesbranchProtection":                                shape[BranchProtection],
	"GetReposownerrepoBranchesbranchProtectionEnforceAdmins":                   shape[ProtectedBranchAdminEnforced],
	"PostReposownerrepoBranchesbranchProtectionEnforceAdmins":                  shape[ProtectedBranchAdminEnforced],
	"GetReposownerrepoBranchesbranchProtectionRequiredPullRequestReviews":      shape[ProtectedBranchPullRequestReview],
	"PatchReposownerrepoBranchesbranchProtectionRequiredPullRequestReviews":    shape[ProtectedBranchPullRequestReview],
	"GetReposownerrepoBranchesbranchProtectionRequiredSignatures":              shape[ProtectedBranchAdminEnforced],
	"PostReposownerrepoBranchesbranchProtectionRequiredSignatures":             shape[ProtectedBranchAdminEnforced],
	"GetReposownerrepoBranchesbranchProtectionRequiredStatusChecks":            shape[StatusCheckPolicy],
	"PatchReposownerrepoBranchesbranchProtectionRequiredStatusChecks":          shape[StatusCheckPolicy],
	"GetReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts":    shape[[]string],
	"PostReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts":   shape[[]string],
	"PutReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts":    shape[[]string],
	"DeleteReposownerrepoBranchesbranchProtectionRequiredStatusChecksContexts": shape[[]string],
	"GetReposownerrepoBranchesbranchProtectionRestrictions":                    shape[BranchRestrictionPolicy],
	"GetReposownerrepoBranchesbranchProtectionRestrictionsApps":                shape[[]Integration],
	"PostReposownerrepoBranchesbranchProtectionRestrictionsApps":               shape[[]Integration],
	"PutReposownerrepoBranchesbranchProtectionRestrictionsApps":                shape[[]Integration],
	"DeleteReposownerrepoBranchesbranchProtectionRestrictionsApps":             shape[[]Integration],
	"GetReposownerrepoBranchesbranchProtectionRestrictionsTeams":               shape[[]Team],
	"PostReposownerrepoBranchesbranchProtectionRestrictionsTeams":              shape[[]Team],
	"PutReposownerrepoBranchesbranchProtectionRestrictionsTeams":               shape[[]Team],
	"DeleteReposownerrepoBranchesbranchProtectionRestrictionsTeams":            shape[[]Team],
	"GetReposownerrepoBranchesbranchProtectionRestrictionsUsers":               shape[[]SimpleUser],
	"PostReposownerrepoBranchesbranchProtectionRestrictionsUsers":              shape[[]SimpleUser],
	"PutReposownerrepoBranchesbranchProtectionRestrictionsUsers":               shape[[]SimpleUser],
	"DeleteReposownerrepoBranchesbranchProtectionRestrictionsUsers":            shape[[]SimpleUser],
	"PostReposownerrepoBranchesbranchRename":                                   shape[BranchWithProtection],
	"GetReposownerrepoCollaborators":                                           shape[[]Collaborator],
	"PutReposownerrepoCollaboratorsusername":                                   shape[RepositoryInvitation],
	"GetReposownerrepoCollaboratorsusernamePermission":                         shape[RepositoryCollaboratorPermission],
	"GetReposownerrepoComments":                                                shape[[]CommitComment],
	"GetReposownerrepoCommentscommentId":                                       shape[CommitComment],
	"PatchReposownerrepoCommentscommentId":                                     shape[CommitComment],
	"GetReposownerrepoCommits":                                                 shape[[]Commit],
	"GetReposownerrepoCommitscommitShaBranchesWhereHead":                       shape[[]BranchWhereHead],
	"GetReposownerrepoCommitscommitShaComments":                                shape[[]CommitComment],
	"PostReposownerrepoCommitscommitShaComments":                               shape[CommitComment],
	"GetReposownerrepoCommitscommitShaPulls":                                   shape[[]PullRequest],
	"GetReposownerrepoCommitsref":                                              shape[Commit],
	"GetReposownerrepoCommitsrefStatus":                                        shape[CombinedCommitStatus],
	"GetReposownerrepoCommitsrefStatuses":                                      shape[[]Status],
	"GetReposownerrepoCommunityProfile":                                        shape[CommunityProfile],
	"GetReposownerrepoComparebasehead":                                         shape[CommitComparison],
	"PutReposownerrepoContentspath":                                            shape[FileCommit],
	"DeleteReposownerrepoContentspath":                                         shape[FileCommit],
	"GetReposownerrepoContributors":                                            shape[[]Contributor],
	"GetReposownerrepoDeployments":                                             shape[[]Deployment],
	"PostReposownerrepoDeployments":                                            shape[Deployment],
	"GetReposownerrepoDeploymentsdeploymentId":                                 shape[Deployment],
	"GetReposownerrepoDeploymentsdeploymentIdStatuses":                         shape[[]DeploymentStatus],
	"PostReposownerrepoDeploymentsdeploymentIdStatuses":                        shape[DeploymentStatus],
	"GetReposownerrepoDeploymentsdeploymentIdStatusesstatusId":                 shape[DeploymentStatus],
	"GetReposownerrepoEnvironments":                                            shape[EnvironmentList],
	"GetReposownerrepoEnvironmentsenvironmentName":                             shape[Environment],
	"PutReposownerrepoEnvironmentsenvironmentName":                             shape[Environment],
	"GetReposownerrepoForks":                                                   shape[[]MinimalRepository],
	"PostReposownerrepoForks":                                                  shape[FullRepository],
	"GetReposownerrepoHooks":                                                   shape[[]Hook],
	"PostReposownerrepoHooks":                                                  shape[Hook],
	"GetReposownerrepoHookshookId":                                             shape[Hook],
	"PatchReposownerrepoHookshookId":                                           shape[Hook],
	"GetReposownerrepoHookshookIdConfig":                                       shape[HookConfig],
	"PatchReposownerrepoHookshookIdConfig":                                     shape[HookConfig],
	"GetReposownerrepoHookshookIdDeliveries":                                   shape[[]HookDeliveryItem],
	"GetReposownerrepoHookshookIdDeliveriesdeliveryId":                         shape[HookDelivery],
	"GetReposownerrepoInvitations":                                             shape[[]RepositoryInvitation],
	"PatchReposownerrepoInvitationsinvitationId":                               shape[RepositoryInvitation],
	"GetReposownerrepoKeys":                                                    shape[[]DeployKey],
	"PostReposownerrepoKeys":                                                   shape[DeployKey],
	"GetReposownerrepoKeyskeyId":                                               shape[DeployKey],
	"GetReposownerrepoLanguages":                                               shape[Languages],
	"PostReposownerrepoMergeUpstream":                                          shape[MergedUpstream],
	"PostReposownerrepoMerges":                                                 shape[Commit],
	"GetReposownerrepoPages":                                                   shape[Page],
	"PostReposownerrepoPages":                                                  shape[Page],
	"GetReposownerrepoPagesBuilds":                                             shape[[]PageBuild],
	"PostReposownerrepoPagesBuilds":                                            shape[PageBuildStatus],
	"GetReposownerrepoPagesBuildsLatest":                                       shape[PageBuild],
	"GetReposownerrepoPagesBuildsbuildId":                                      shape[PageBuild],
	"GetReposownerrepoPagesHealth":                                             shape[PagesHealthCheck],
	"GetReposownerrepoReadme":                                                  shape[ContentFile],
	"GetReposownerrepoReadmedir":                                               shape[ContentFile],
	"GetReposownerrepoReleases":                                                shape[[]Release],
	"PostReposownerrepoReleases":                                               shape[Release],
	"GetReposownerrepoReleasesAssetsassetId":                                   shape[ReleaseAsset],
	"PatchReposownerrepoReleasesAssetsassetId":                                 shape[ReleaseAsset],
	"GetReposownerrepoReleasesLatest":                                          shape[Release],
	"GetReposownerrepoReleasesTagstag":                                         shape[Release],
	"GetReposownerrepoReleasesreleaseId":                                       shape[Release],
	"PatchReposownerrepoReleasesreleaseId":                                     shape[Release],
	"GetReposownerrepoReleasesreleaseIdAssets":                                 shape[[]ReleaseAsset],
	"PostReposownerrepoReleasesreleaseIdAssets":                                shape[ReleaseAsset],
	"GetReposownerrepoStatsCodeFrequency":                                      shape[[]CodeFrequencyStat],
	"GetReposownerrepoStatsCommitActivity":                                     shape[[]CommitActivity],
	"GetReposownerrepoStatsContributors":                                       shape[[]ContributorActivity],
	"GetReposownerrepoStatsParticipation":                                      shape[ParticipationStats],
	"GetReposownerrepoStatsPunchCard":                                          shape[[]CodeFrequencyStat],
	"PostReposownerrepoStatusessha":                                            shape[Status],
	"GetReposownerrepoTags":                                                    shape[[]Tag],
	"GetReposownerrepoTeams":                                                   shape[[]Team],
	"GetReposownerrepoTopics":                                                  shape[Topic],
	"PutReposownerrepoTopics":                                                  shape[Topic],
	"GetReposownerrepoTrafficClones":                                           shape[CloneTraffic],
	"GetReposownerrepoTrafficPopularPaths":                                     shape[[]ContentTraffic],
	"GetReposownerrepoTrafficPopularReferrers":                                 shape[[]ReferrerTraffic],
	"GetReposownerrepoTrafficViews":                                            shape[ViewTraffic],
	"PostReposownerrepoTransfer":                                               shape[MinimalRepository],
	"PostRepostemplateOwnertemplateRepoGenerate":                               shape[Repository],
	"GetRepositories":                                                          shape[[]MinimalRepository],
	"GetUserRepos":                                                             shape[[]Repository],
	"PostUserRepos":                                                            shape[Repository],
	"GetUserRepositoryInvitations":                                             shape[[]RepositoryInvitation],
	"GetUsersusernameRepos":                                                    shape[[]MinimalRepository],

	// git
	"PostReposownerrepoGitBlobs":           shape[ShortBlob],
	"GetReposownerrepoGitBlobsfileSha":     shape[Blob],
	"PostReposownerrepoGitCommits":         shape[GitCommit],
	"GetReposownerrepoGitCommitscommitSha": shape[GitCommit],
	"GetReposownerrepoGitMatchingRefsref":  shape[[]GitRef],
	"GetReposownerrepoGitRefref":           shape[GitRef],
	"PostReposownerrepoGitRefs":            shape[GitRef],
	"PatchReposownerrepoGitRefsref":        shape[GitRef],
	"PostReposownerrepoGitTags":            shape[GitTag],
	"GetReposownerrepoGitTagstagSha":       shape[GitTag],
	"PostReposownerrepoGitTrees":           shape[GitTree],
	"GetReposownerrepoGitTreestreeSha":     shape[GitTree],

	// search
	"GetSearchCode":         shape[CodeSearchResult],
	"GetSearchCommits":      shape[CommitSearchResult],
	"GetSearchIssues":       shape[IssueSearchResult],
	"GetSearchLabels":       shape[LabelSearchResult],
	"GetSearchRepositories": shape[RepoSearchResult],
	"GetSearchTopics":       shape[TopicSearchResult],
	"GetSearchUsers":        shape[UserSearchResult],

	// teams
	"GetOrgsorgTeamSyncGroups":                                                  shape[GroupMapping],
	"GetOrgsorgTeams":                                                           shape[[]Team],
	"PostOrgsorgTeams":                                                          shape[TeamFull],
	"GetOrgsorgTeamsteamSlug":                                                   shape[TeamFull],
	"PatchOrgsorgTeamsteamSlug":                                                 shape[TeamFull],
	"GetOrgsorgTeamsteamSlugDiscussions":                                        shape[[]TeamDiscussion],
	"PostOrgsorgTeamsteamSlugDiscussions":                                       shape[TeamDiscussion],
	"GetOrgsorgTeamsteamSlugDiscussionsdiscussionNumber":                        shape[TeamDiscussion],
	"PatchOrgsorgTeamsteamSlugDiscussionsdiscussionNumber":                      shape[TeamDiscussion],
	"GetOrgsorgTeamsteamSlugDiscussionsdiscussionNumberComments":                shape[[]TeamDiscussionComment],
	"PostOrgsorgTeamsteamSlugDiscussionsdiscussionNumberComments":               shape[TeamDiscussionComment],
	"GetOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumber":   shape[TeamDiscussionComment],
	"PatchOrgsorgTeamsteamSlugDiscussionsdiscussionNumberCommentscommentNumber": shape[TeamDiscussionComment],
	"GetOrgsorgTeamsteamSlugInvitations":                                        shape[[]OrganizationInvitation],
	"GetOrgsorgTeamsteamSlugMembers":                                            shape[[]SimpleUser],
	"GetOrgsorgTeamsteamSlugMembershipsusername":                                shape[TeamMembership],
	"PutOrgsorgTeamsteamSlugMembershipsusername":                                shape[TeamMembership],
	"GetOrgsorgTeamsteamSlugProjects":                                           shape[[]TeamProject],
	"GetOrgsorgTeamsteamSlugProjectsprojectId":                                  shape[TeamProject],
	"GetOrgsorgTeamsteamSlugRepos":                                              shape[[]MinimalRepository],
	"GetOrgsorgTeamsteamSlugReposownerrepo":                                     shape[TeamRepository],
	"GetOrgsorgTeamsteamSlugTeamSyncGroupMappings":                              shape[GroupMapping],
	"PatchOrgsorgTeamsteamSlugTeamSyncGroupMappings":                            shape[GroupMapping],
	"GetOrgsorgTeamsteamSlugTeams":                                              shape[[]Team],
	"GetTeamsteamId":                                                            shape[TeamFull],
	"PatchTeamsteamId":                                                          shape[TeamFull],
	"GetTeamsteamIdDiscussions":                                                 shape[[]TeamDiscussion],
	"PostTeamsteamIdDiscussions":                                                shape[TeamDiscussion],
	"GetTeamsteamIdDiscussionsdiscussionNumber":                                 shape[TeamDiscussion],
	"PatchTeamsteamIdDiscussionsdiscussionNumber":                               shape[TeamDiscussion],
	"GetTeamsteamIdDiscussionsdiscussionNumberComments":                         shape[[]TeamDiscussionComment],
	"PostTeamsteamIdDiscussionsdiscussionNumberComments":                        shape[TeamDiscussionComment],
	"GetTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumber":            shape[TeamDiscussionComment],
	"PatchTeamsteamIdDiscussionsdiscussionNumberCommentscommentNumber":          shape[TeamDiscussionComment],
	"GetTeamsteamIdInvitations":                                                 shape[[]OrganizationInvitation],
	"GetTeamsteamIdMembers":                                                     shape[[]SimpleUser],
	"GetTeamsteamIdMembershipsusername":                                         shape[TeamMembership],
	"PutTeamsteamIdMembershipsusername":                                         shape[TeamMembership],
	"GetTeamsteamIdProjects":                                                    shape[[]TeamProject],
	"GetTeamsteamIdProjectsprojectId":                                           shape[TeamProject],
	"GetTeamsteamIdRepos":                                                       shape[[]MinimalRepository],
	"GetTeamsteamIdReposownerrepo":                                              shape[TeamRepository],
	"GetTeamsteamIdTeamSyncGroupMappings":                                       shape[GroupMapping],
	"PatchTeamsteamIdTeamSyncGroupMappings":                                     shape[GroupMapping],
	"GetTeamsteamIdTeams":                                                       shape[[]Team],
	"GetUserTeams":                                                              shape[[]TeamFull],

	// scim
	"GetScimV2OrganizationsorgUsers":             shape[ScimUserList],
	"PostScimV2OrganizationsorgUsers":            shape[ScimUser],
	"GetScimV2OrganizationsorgUsersscimUserId":   shape[ScimUser],
	"PutScimV2OrganizationsorgUsersscimUserId":   shape[ScimUser],
	"PatchScimV2OrganizationsorgUsersscimUserId": shape[ScimUser],

	// users
	"GetUser":                   shape[PrivateUser],
	"PatchUser":                 shape[PrivateUser],
	"GetUserBlocks":             shape[[]SimpleUser],
	"PatchUserEmailVisibility":  shape[[]Email],
	"GetUserEmails":             shape[[]Email],
	"PostUserEmails":            shape[[]Email],
	"GetUserFollowers":          shape[[]SimpleUser],
	"GetUserFollowing":          shape[[]SimpleUser],
	"GetUserGpgKeys":            shape[[]GpgKey],
	"PostUserGpgKeys":           shape[GpgKey],
	"GetUserGpgKeysgpgKeyId":    shape[GpgKey],
	"GetUserKeys":               shape[[]Key],
	"PostUserKeys":              shape[Key],
	"GetUserKeyskeyId":          shape[Key],
	"GetUserPublicEmails":       shape[[]Email],
	"GetUsers":                  shape[[]SimpleUser],
	"GetUsersusername":          shape[PublicUser],
	"GetUsersusernameFollowers": shape[[]SimpleUser],
	"GetUsersusernameFollowing": shape[[]SimpleUser],
	"GetUsersusernameGpgKeys":   shape[[]GpgKey],
	"GetUsersusernameHovercard": shape[Hovercard],
	"GetUsersusernameKeys":      shape[[]KeySimple],
}
