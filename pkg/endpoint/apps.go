package endpoint

var (
	getApp                                                        = register("apps", "GetApp", MethodGet, "/app")
	getAppHookConfig                                              = register("apps", "GetAppHookConfig", MethodGet, "/app/hook/config")
	patchAppHookConfig                                            = register("apps", "PatchAppHookConfig", MethodPatch, "/app/hook/config")
	getAppHookDeliveries                                          = register("apps", "GetAppHookDeliveries", MethodGet, "/app/hook/deliveries")
	getAppHookDeliveriesdeliveryId                                = register("apps", "GetAppHookDeliveriesdeliveryId", MethodGet, "/app/hook/deliveries/{delivery_id}")
	postAppHookDeliveriesdeliveryIdAttempts                       = register("apps", "PostAppHookDeliveriesdeliveryIdAttempts", MethodPost, "/app/hook/deliveries/{delivery_id}/attempts")
	getAppInstallations                                           = register("apps", "GetAppInstallations", MethodGet, "/app/installations")
	getAppInstallationsinstallationId                             = register("apps", "GetAppInstallationsinstallationId", MethodGet, "/app/installations/{installation_id}")
	deleteAppInstallationsinstallationId                          = register("apps", "DeleteAppInstallationsinstallationId", MethodDelete, "/app/installations/{installation_id}")
	postAppInstallationsinstallationIdAccessTokens                = register("apps", "PostAppInstallationsinstallationIdAccessTokens", MethodPost, "/app/installations/{installation_id}/access_tokens")
	putAppInstallationsinstallationIdSuspended                    = register("apps", "PutAppInstallationsinstallationIdSuspended", MethodPut, "/app/installations/{installation_id}/suspended")
	deleteAppInstallationsinstallationIdSuspended                 = register("apps", "DeleteAppInstallationsinstallationIdSuspended", MethodDelete, "/app/installations/{installation_id}/suspended")
	postAppManifestscodeConversions                               = register("apps", "PostAppManifestscodeConversions", MethodPost, "/app-manifests/{code}/conversions")
	deleteApplicationsclientIdGrant                               = register("apps", "DeleteApplicationsclientIdGrant", MethodDelete, "/applications/{client_id}/grant")
	deleteApplicationsclientIdGrantsaccessToken                   = register("apps", "DeleteApplicationsclientIdGrantsaccessToken", MethodDelete, "/applications/{client_id}/grants/{access_token}")
	postApplicationsclientIdToken                                 = register("apps", "PostApplicationsclientIdToken", MethodPost, "/applications/{client_id}/token")
	patchApplicationsclientIdToken                                = register("apps", "PatchApplicationsclientIdToken", MethodPatch, "/applications/{client_id}/token")
	deleteApplicationsclientIdToken                               = register("apps", "DeleteApplicationsclientIdToken", MethodDelete, "/applications/{client_id}/token")
	postApplicationsclientIdTokenScoped                           = register("apps", "PostApplicationsclientIdTokenScoped", MethodPost, "/applications/{client_id}/token/scoped")
	getApplicationsclientIdTokensaccessToken                      = register("apps", "GetApplicationsclientIdTokensaccessToken", MethodGet, "/applications/{client_id}/tokens/{access_token}")
	postApplicationsclientIdTokensaccessToken                     = register("apps", "PostApplicationsclientIdTokensaccessToken", MethodPost, "/applications/{client_id}/tokens/{access_token}")
	deleteApplicationsclientIdTokensaccessToken                   = register("apps", "DeleteApplicationsclientIdTokensaccessToken", MethodDelete, "/applications/{client_id}/tokens/{access_token}")
	getAppsappSlug                                                = register("apps", "GetAppsappSlug", MethodGet, "/apps/{app_slug}")
	postContentReferencescontentReferenceIdAttachments            = register("apps", "PostContentReferencescontentReferenceIdAttachments", MethodPost, "/content_references/{content_reference_id}/attachments")
	getInstallationRepositories                                   = register("apps", "GetInstallationRepositories", MethodGet, "/installation/repositories")
	deleteInstallationToken                                       = register("apps", "DeleteInstallationToken", MethodDelete, "/installation/token")
	getMarketplaceListingAccountsaccountId                        = register("apps", "GetMarketplaceListingAccountsaccountId", MethodGet, "/marketplace_listing/accounts/{account_id}")
	getMarketplaceListingPlans                                    = register("apps", "GetMarketplaceListingPlans", MethodGet, "/marketplace_listing/plans")
	getMarketplaceListingPlansplanIdAccounts                      = register("apps", "GetMarketplaceListingPlansplanIdAccounts", MethodGet, "/marketplace_listing/plans/{plan_id}/accounts")
	getMarketplaceListingStubbedAccountsaccountId                 = register("apps", "GetMarketplaceListingStubbedAccountsaccountId", MethodGet, "/marketplace_listing/stubbed/accounts/{account_id}")
	getMarketplaceListingStubbedPlans                             = register("apps", "GetMarketplaceListingStubbedPlans", MethodGet, "/marketplace_listing/stubbed/plans")
	getMarketplaceListingStubbedPlansplanIdAccounts               = register("apps", "GetMarketplaceListingStubbedPlansplanIdAccounts", MethodGet, "/marketplace_listing/stubbed/plans/{plan_id}/accounts")
	getOrgsorgInstallation                                        = register("apps", "GetOrgsorgInstallation", MethodGet, "/orgs/{org}/installation")
	getReposownerrepoInstallation                                 = register("apps", "GetReposownerrepoInstallation", MethodGet, "/repos/{owner}/{repo}/installation")
	getUserInstallations                                          = register("apps", "GetUserInstallations", MethodGet, "/user/installations")
	getUserInstallationsinstallationIdRepositories                = register("apps", "GetUserInstallationsinstallationIdRepositories", MethodGet, "/user/installations/{installation_id}/repositories")
	putUserInstallationsinstallationIdRepositoriesrepositoryId    = register("apps", "PutUserInstallationsinstallationIdRepositoriesrepositoryId", MethodPut, "/user/installations/{installation_id}/repositories/{repository_id}")
	deleteUserInstallationsinstallationIdRepositoriesrepositoryId = register("apps", "DeleteUserInstallationsinstallationIdRepositoriesrepositoryId", MethodDelete, "/user/installations/{installation_id}/repositories/{repository_id}")
	getUserMarketplacePurchases                                   = register("apps", "GetUserMarketplacePurchases", MethodGet, "/user/marketplace_purchases")
	getUserMarketplacePurchasesStubbed                            = register("apps", "GetUserMarketplacePurchasesStubbed", MethodGet, "/user/marketplace_purchases/stubbed")
	getUsersusernameInstallation                                  = register("apps", "GetUsersusernameInstallation", MethodGet, "/users/{username}/installation")
)

func GetApp() Endpoint {
	return getApp.bind()
}

func GetAppHookConfig() Endpoint {
	return getAppHookConfig.bind()
}

func PatchAppHookConfig() Endpoint {
	return patchAppHookConfig.bind()
}

func GetAppHookDeliveries() Endpoint {
	return getAppHookDeliveries.bind()
}

func GetAppHookDeliveriesdeliveryId(deliveryID string) Endpoint {
	return getAppHookDeliveriesdeliveryId.bind(deliveryID)
}

func PostAppHookDeliveriesdeliveryIdAttempts(deliveryID string) Endpoint {
	return postAppHookDeliveriesdeliveryIdAttempts.bind(deliveryID)
}

func GetAppInstallations() Endpoint {
	return getAppInstallations.bind()
}

func GetAppInstallationsinstallationId(installationID string) Endpoint {
	return getAppInstallationsinstallationId.bind(installationID)
}

func DeleteAppInstallationsinstallationId(installationID string) Endpoint {
	return deleteAppInstallationsinstallationId.bind(installationID)
}

func PostAppInstallationsinstallationIdAccessTokens(installationID string) Endpoint {
	return postAppInstallationsinstallationIdAccessTokens.bind(installationID)
}

func PutAppInstallationsinstallationIdSuspended(installationID string) Endpoint {
	return putAppInstallationsinstallationIdSuspended.bind(installationID)
}

func DeleteAppInstallationsinstallationIdSuspended(installationID string) Endpoint {
	return deleteAppInstallationsinstallationIdSuspended.bind(installationID)
}

func PostAppManifestscodeConversions(code string) Endpoint {
	return postAppManifestscodeConversions.bind(code)
}

func DeleteApplicationsclientIdGrant(clientID string) Endpoint {
	return deleteApplicationsclientIdGrant.bind(clientID)
}

func DeleteApplicationsclientIdGrantsaccessToken(clientID, accessToken string) Endpoint {
	return deleteApplicationsclientIdGrantsaccessToken.bind(clientID, accessToken)
}

func PostApplicationsclientIdToken(clientID string) Endpoint {
	return postApplicationsclientIdToken.bind(clientID)
}

func PatchApplicationsclientIdToken(clientID string) Endpoint {
	return patchApplicationsclientIdToken.bind(clientID)
}

func DeleteApplicationsclientIdToken(clientID string) Endpoint {
	return deleteApplicationsclientIdToken.bind(clientID)
}

func PostApplicationsclientIdTokenScoped(clientID string) Endpoint {
	return postApplicationsclientIdTokenScoped.bind(clientID)
}

func GetApplicationsclientIdTokensaccessToken(clientID, accessToken string) Endpoint {
	return getApplicationsclientIdTokensaccessToken.bind(clientID, accessToken)
}

func PostApplicationsclientIdTokensaccessToken(clientID, accessToken string) Endpoint {
	return postApplicationsclientIdTokensaccessToken.bind(clientID, accessToken)
}

func DeleteApplicationsclientIdTokensaccessToken(clientID, accessToken string) Endpoint {
	return deleteApplicationsclientIdTokensaccessToken.bind(clientID, accessToken)
}

func GetAppsappSlug(appSlug string) Endpoint {
	return getAppsappSlug.bind(appSlug)
}

func PostContentReferencescontentReferenceIdAttachments(contentReferenceID string) Endpoint {
	return postContentReferencescontentReferenceIdAttachments.bind(contentReferenceID)
}

func GetInstallationRepositories() Endpoint {
	return getInstallationRepositories.bind()
}

func DeleteInstallationToken() Endpoint {
	return deleteInstallationToken.bind()
}

func GetMarketplaceListingAccountsaccountId(accountID string) Endpoint {
	return getMarketplaceListingAccountsaccountId.bind(accountID)
}

func GetMarketplaceListingPlans() Endpoint {
	return getMarketplaceListingPlans.bind()
}

func GetMarketplaceListingPlansplanIdAccounts(planID string) Endpoint {
	return getMarketplaceListingPlansplanIdAccounts.bind(planID)
}

func GetMarketplaceListingStubbedAccountsaccountId(accountID string) Endpoint {
	return getMarketplaceListingStubbedAccountsaccountId.bind(accountID)
}

func GetMarketplaceListingStubbedPlans() Endpoint {
	return getMarketplaceListingStubbedPlans.bind()
}

func GetMarketplaceListingStubbedPlansplanIdAccounts(planID string) Endpoint {
	return getMarketplaceListingStubbedPlansplanIdAccounts.bind(planID)
}

func GetOrgsorgInstallation(org string) Endpoint {
	return getOrgsorgInstallation.bind(org)
}

func GetReposownerrepoInstallation(owner, repo string) Endpoint {
	return getReposownerrepoInstallation.bind(owner, repo)
}

func GetUserInstallations() Endpoint {
	return getUserInstallations.bind()
}

func GetUserInstallationsinstallationIdRepositories(installationID string) Endpoint {
	return getUserInstallationsinstallationIdRepositories.bind(installationID)
}

func PutUserInstallationsinstallationIdRepositoriesrepositoryId(installationID, repositoryID string) Endpoint {
	return putUserInstallationsinstallationIdRepositoriesrepositoryId.bind(installationID, repositoryID)
}

func DeleteUserInstallationsinstallationIdRepositoriesrepositoryId(installationID, repositoryID string) Endpoint {
	return deleteUserInstallationsinstallationIdRepositoriesrepositoryId.bind(installationID, repositoryID)
}

func GetUserMarketplacePurchases() Endpoint {
	return getUserMarketplacePurchases.bind()
}

func GetUserMarketplacePurchasesStubbed() Endpoint {
	return getUserMarketplacePurchasesStubbed.bind()
}

func GetUsersusernameInstallation(username string) Endpoint {
	return getUsersusernameInstallation.bind(username)
}
