package endpoint

var (
	getEnterprisesenterpriseActionsPermissions                                    = register("enterprise-admin", "GetEnterprisesenterpriseActionsPermissions", MethodGet, "/enterprises/{enterprise}/actions/permissions")
	putEnterprisesenterpriseActionsPermissions                                    = register("enterprise-admin", "PutEnterprisesenterpriseActionsPermissions", MethodPut, "/enterprises/{enterprise}/actions/permissions")
	getEnterprisesenterpriseActionsPermissionsOrganizations                       = register("enterprise-admin", "GetEnterprisesenterpriseActionsPermissionsOrganizations", MethodGet, "/enterprises/{enterprise}/actions/permissions/organizations")
	putEnterprisesenterpriseActionsPermissionsOrganizations                       = register("enterprise-admin", "PutEnterprisesenterpriseActionsPermissionsOrganizations", MethodPut, "/enterprises/{enterprise}/actions/permissions/organizations")
	putEnterprisesenterpriseActionsPermissionsOrganizationsorgId                  = register("enterprise-admin", "PutEnterprisesenterpriseActionsPermissionsOrganizationsorgId", MethodPut, "/enterprises/{enterprise}/actions/permissions/organizations/{org_id}")
	deleteEnterprisesenterpriseActionsPermissionsOrganizationsorgId               = register("enterprise-admin", "DeleteEnterprisesenterpriseActionsPermissionsOrganizationsorgId", MethodDelete, "/enterprises/{enterprise}/actions/permissions/organizations/{org_id}")
	getEnterprisesenterpriseActionsPermissionsSelectedActions                     = register("enterprise-admin", "GetEnterprisesenterpriseActionsPermissionsSelectedActions", MethodGet, "/enterprises/{enterprise}/actions/permissions/selected-actions")
	putEnterprisesenterpriseActionsPermissionsSelectedActions                     = register("enterprise-admin", "PutEnterprisesenterpriseActionsPermissionsSelectedActions", MethodPut, "/enterprises/{enterprise}/actions/permissions/selected-actions")
	getEnterprisesenterpriseActionsRunnerGroups                                   = register("enterprise-admin", "GetEnterprisesenterpriseActionsRunnerGroups", MethodGet, "/enterprises/{enterprise}/actions/runner-groups")
	postEnterprisesenterpriseActionsRunnerGroups                                  = register("enterprise-admin", "PostEnterprisesenterpriseActionsRunnerGroups", MethodPost, "/enterprises/{enterprise}/actions/runner-groups")
	getEnterprisesenterpriseActionsRunnerGroupsrunnerGroupId                      = register("enterprise-admin", "GetEnterprisesenterpriseActionsRunnerGroupsrunnerGroupId", MethodGet, "/enterprises/{enterprise}/actions/runner-groups/{runner_group_id}")
	patchEnterprisesenterpriseActionsRunnerGroupsrunnerGroupId                    = register("enterprise-admin", "PatchEnterprisesenterpriseActionsRunnerGroupsrunnerGroupId", MethodPatch, "/enterprises/{enterprise}/actions/runner-groups/{runner_group_id}")
	deleteEnterprisesenterpriseActionsRunnerGroupsrunnerGroupId                   = register("enterprise-admin", "DeleteEnterprisesenterpriseActionsRunnerGroupsrunnerGroupId", MethodDelete, "/enterprises/{enterprise}/actions/runner-groups/{runner_group_id}")
	getEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizations         = register("enterprise-admin", "GetEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizations", MethodGet, "/enterprises/{enterprise}/actions/runner-groups/{runner_group_id}/organizations")
	putEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizations         = register("enterprise-admin", "PutEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizations", MethodPut, "/enterprises/{enterprise}/actions/runner-groups/{runner_group_id}/organizations")
	putEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizationsorgId    = register("enterprise-admin", "PutEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizationsorgId", MethodPut, "/enterprises/{enterprise}/actions/runner-groups/{runner_group_id}/organizations/{org_id}")
	deleteEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizationsorgId = register("enterprise-admin", "DeleteEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizationsorgId", MethodDelete, "/enterprises/{enterprise}/actions/runner-groups/{runner_group_id}/organizations/{org_id}")
	getEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunners               = register("enterprise-admin", "GetEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunners", MethodGet, "/enterprises/{enterprise}/actions/runner-groups/{runner_group_id}/runners")
	putEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunners               = register("enterprise-admin", "PutEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunners", MethodPut, "/enterprises/{enterprise}/actions/runner-groups/{runner_group_id}/runners")
	putEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunnersrunnerId       = register("enterprise-admin", "PutEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunnersrunnerId", MethodPut, "/enterprises/{enterprise}/actions/runner-groups/{runner_group_id}/runners/{runner_id}")
	deleteEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunnersrunnerId    = register("enterprise-admin", "DeleteEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunnersrunnerId", MethodDelete, "/enterprises/{enterprise}/actions/runner-groups/{runner_group_id}/runners/{runner_id}")
	getEnterprisesenterpriseActionsRunners                                        = register("enterprise-admin", "GetEnterprisesenterpriseActionsRunners", MethodGet, "/enterprises/{enterprise}/actions/runners")
	getEnterprisesenterpriseActionsRunnersDownloads                               = register("enterprise-admin", "GetEnterprisesenterpriseActionsRunnersDownloads", MethodGet, "/enterprises/{enterprise}/actions/runners/downloads")
	postEnterprisesenterpriseActionsRunnersRegistrationToken                      = register("enterprise-admin", "PostEnterprisesenterpriseActionsRunnersRegistrationToken", MethodPost, "/enterprises/{enterprise}/actions/runners/registration-token")
	postEnterprisesenterpriseActionsRunnersRemoveToken                            = register("enterprise-admin", "PostEnterprisesenterpriseActionsRunnersRemoveToken", MethodPost, "/enterprises/{enterprise}/actions/runners/remove-token")
	getEnterprisesenterpriseActionsRunnersrunnerId                                = register("enterprise-admin", "GetEnterprisesenterpriseActionsRunnersrunnerId", MethodGet, "/enterprises/{enterprise}/actions/runners/{runner_id}")
	deleteEnterprisesenterpriseActionsRunnersrunnerId                             = register("enterprise-admin", "DeleteEnterprisesenterpriseActionsRunnersrunnerId", MethodDelete, "/enterprises/{enterprise}/actions/runners/{runner_id}")
	getEnterprisesenterpriseActionsRunnersrunnerIdLabels                          = register("enterprise-admin", "GetEnterprisesenterpriseActionsRunnersrunnerIdLabels", MethodGet, "/enterprises/{enterprise}/actions/runners/{runner_id}/labels")
	postEnterprisesenterpriseActionsRunnersrunnerIdLabels                         = register("enterprise-admin", "PostEnterprisesenterpriseActionsRunnersrunnerIdLabels", MethodPost, "/enterprises/{enterprise}/actions/runners/{runner_id}/labels")
	putEnterprisesenterpriseActionsRunnersrunnerIdLabels                          = register("enterprise-admin", "PutEnterprisesenterpriseActionsRunnersrunnerIdLabels", MethodPut, "/enterprises/{enterprise}/actions/runners/{runner_id}/labels")
	deleteEnterprisesenterpriseActionsRunnersrunnerIdLabels                       = register("enterprise-admin", "DeleteEnterprisesenterpriseActionsRunnersrunnerIdLabels", MethodDelete, "/enterprises/{enterprise}/actions/runners/{runner_id}/labels")
	deleteEnterprisesenterpriseActionsRunnersrunnerIdLabelsname                   = register("enterprise-admin", "DeleteEnterprisesenterpriseActionsRunnersrunnerIdLabelsname", MethodDelete, "/enterprises/{enterprise}/actions/runners/{runner_id}/labels/{name}")
	getEnterprisesenterpriseAuditLog                                              = register("enterprise-admin", "GetEnterprisesenterpriseAuditLog", MethodGet, "/enterprises/{enterprise}/audit-log")
	getScimV2EnterprisesenterpriseGroups                                          = register("enterprise-admin", "GetScimV2EnterprisesenterpriseGroups", MethodGet, "/scim/v2/enterprises/{enterprise}/Groups")
	postScimV2EnterprisesenterpriseGroups                                         = register("enterprise-admin", "PostScimV2EnterprisesenterpriseGroups", MethodPost, "/scim/v2/enterprises/{enterprise}/Groups")
	getScimV2EnterprisesenterpriseGroupsscimGroupId                               = register("enterprise-admin", "GetScimV2EnterprisesenterpriseGroupsscimGroupId", MethodGet, "/scim/v2/enterprises/{enterprise}/Groups/{scim_group_id}")
	putScimV2EnterprisesenterpriseGroupsscimGroupId                               = register("enterprise-admin", "PutScimV2EnterprisesenterpriseGroupsscimGroupId", MethodPut, "/scim/v2/enterprises/{enterprise}/Groups/{scim_group_id}")
	patchScimV2EnterprisesenterpriseGroupsscimGroupId                             = register("enterprise-admin", "PatchScimV2EnterprisesenterpriseGroupsscimGroupId", MethodPatch, "/scim/v2/enterprises/{enterprise}/Groups/{scim_group_id}")
	deleteScimV2EnterprisesenterpriseGroupsscimGroupId                            = register("enterprise-admin", "DeleteScimV2EnterprisesenterpriseGroupsscimGroupId", MethodDelete, "/scim/v2/enterprises/{enterprise}/Groups/{scim_group_id}")
	getScimV2EnterprisesenterpriseUsers                                           = register("enterprise-admin", "GetScimV2EnterprisesenterpriseUsers", MethodGet, "/scim/v2/enterprises/{enterprise}/Users")
	postScimV2EnterprisesenterpriseUsers                                          = register("enterprise-admin", "PostScimV2EnterprisesenterpriseUsers", MethodPost, "/scim/v2/enterprises/{enterprise}/Users")
	getScimV2EnterprisesenterpriseUsersscimUserId                                 = register("enterprise-admin", "GetScimV2EnterprisesenterpriseUsersscimUserId", MethodGet, "/scim/v2/enterprises/{enterprise}/Users/{scim_user_id}")
	putScimV2EnterprisesenterpriseUsersscimUserId                                 = register("enterprise-admin", "PutScimV2EnterprisesenterpriseUsersscimUserId", MethodPut, "/scim/v2/enterprises/{enterprise}/Users/{scim_user_id}")
	patchScimV2EnterprisesenterpriseUsersscimUserId                               = register("enterprise-admin", "PatchScimV2EnterprisesenterpriseUsersscimUserId", MethodPatch, "/scim/v2/enterprises/{enterprise}/Users/{scim_user_id}")
	deleteScimV2EnterprisesenterpriseUsersscimUserId                              = register("enterprise-admin", "DeleteScimV2EnterprisesenterpriseUsersscimUserId", MethodDelete, "/scim/v2/enterprises/{enterprise}/Users/{scim_user_id}")
)

func GetEnterprisesenterpriseActionsPermissions(enterprise string) Endpoint {
	return getEnterprisesenterpriseActionsPermissions.bind(enterprise)
}

func PutEnterprisesenterpriseActionsPermissions(enterprise string) Endpoint {
	return putEnterprisesenterpriseActionsPermissions.bind(enterprise)
}

func GetEnterprisesenterpriseActionsPermissionsOrganizations(enterprise string) Endpoint {
	return getEnterprisesenterpriseActionsPermissionsOrganizations.bind(enterprise)
}

func PutEnterprisesenterpriseActionsPermissionsOrganizations(enterprise string) Endpoint {
	return putEnterprisesenterpriseActionsPermissionsOrganizations.bind(enterprise)
}

func PutEnterprisesenterpriseActionsPermissionsOrganizationsorgId(enterprise, orgID string) Endpoint {
	return putEnterprisesenterpriseActionsPermissionsOrganizationsorgId.bind(enterprise, orgID)
}

func DeleteEnterprisesenterpriseActionsPermissionsOrganizationsorgId(enterprise, orgID string) Endpoint {
	return deleteEnterprisesenterpriseActionsPermissionsOrganizationsorgId.bind(enterprise, orgID)
}

func GetEnterprisesenterpriseActionsPermissionsSelectedActions(enterprise string) Endpoint {
	return getEnterprisesenterpriseActionsPermissionsSelectedActions.bind(enterprise)
}

func PutEnterprisesenterpriseActionsPermissionsSelectedActions(enterprise string) Endpoint {
	return putEnterprisesenterpriseActionsPermissionsSelectedActions.bind(enterprise)
}

func GetEnterprisesenterpriseActionsRunnerGroups(enterprise string) Endpoint {
	return getEnterprisesenterpriseActionsRunnerGroups.bind(enterprise)
}

func PostEnterprisesenterpriseActionsRunnerGroups(enterprise string) Endpoint {
	return postEnterprisesenterpriseActionsRunnerGroups.bind(enterprise)
}

func GetEnterprisesenterpriseActionsRunnerGroupsrunnerGroupId(enterprise, runnerGroupID string) Endpoint {
	return getEnterprisesenterpriseActionsRunnerGroupsrunnerGroupId.bind(enterprise, runnerGroupID)
}

func PatchEnterprisesenterpriseActionsRunnerGroupsrunnerGroupId(enterprise, runnerGroupID string) Endpoint {
	return patchEnterprisesenterpriseActionsRunnerGroupsrunnerGroupId.bind(enterprise, runnerGroupID)
}

func DeleteEnterprisesenterpriseActionsRunnerGroupsrunnerGroupId(enterprise, runnerGroupID string) Endpoint {
	return deleteEnterprisesenterpriseActionsRunnerGroupsrunnerGroupId.bind(enterprise, runnerGroupID)
}

func GetEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizations(enterprise, runnerGroupID string) Endpoint {
	return getEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizations.bind(enterprise, runnerGroupID)
}

func PutEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizations(enterprise, runnerGroupID string) Endpoint {
	return putEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizations.bind(enterprise, runnerGroupID)
}

func PutEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizationsorgId(enterprise, runnerGroupID, orgID string) Endpoint {
	return putEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizationsorgId.bind(enterprise, runnerGroupID, orgID)
}

func DeleteEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizationsorgId(enterprise, runnerGroupID, orgID string) Endpoint {
	return deleteEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdOrganizationsorgId.bind(enterprise, runnerGroupID, orgID)
}

func GetEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunners(enterprise, runnerGroupID string) Endpoint {
	return getEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunners.bind(enterprise, runnerGroupID)
}

func PutEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunners(enterprise, runnerGroupID string) Endpoint {
	return putEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunners.bind(enterprise, runnerGroupID)
}

func PutEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunnersrunnerId(enterprise, runnerGroupID, runnerID string) Endpoint {
	return putEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunnersrunnerId.bind(enterprise, runnerGroupID, runnerID)
}

func DeleteEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunnersrunnerId(enterprise, runnerGroupID, runnerID string) Endpoint {
	return deleteEnterprisesenterpriseActionsRunnerGroupsrunnerGroupIdRunnersrunnerId.bind(enterprise, runnerGroupID, runnerID)
}

func GetEnterprisesenterpriseActionsRunners(enterprise string) Endpoint {
	return getEnterprisesenterpriseActionsRunners.bind(enterprise)
}

func GetEnterprisesenterpriseActionsRunnersDownloads(enterprise string) Endpoint {
	return getEnterprisesenterpriseActionsRunnersDownloads.bind(enterprise)
}

func PostEnterprisesenterpriseActionsRunnersRegistrationToken(enterprise string) Endpoint {
	return postEnterprisesenterpriseActionsRunnersRegistrationToken.bind(enterprise)
}

func PostEnterprisesenterpriseActionsRunnersRemoveToken(enterprise string) Endpoint {
	return postEnterprisesenterpriseActionsRunnersRemoveToken.bind(enterprise)
}

func GetEnterprisesenterpriseActionsRunnersrunnerId(enterprise, runnerID string) Endpoint {
	return getEnterprisesenterpriseActionsRunnersrunnerId.bind(enterprise, runnerID)
}

func DeleteEnterprisesenterpriseActionsRunnersrunnerId(enterprise, runnerID string) Endpoint {
	return deleteEnterprisesenterpriseActionsRunnersrunnerId.bind(enterprise, runnerID)
}

func GetEnterprisesenterpriseActionsRunnersrunnerIdLabels(enterprise, runnerID string) Endpoint {
	return getEnterprisesenterpriseActionsRunnersrunnerIdLabels.bind(enterprise, runnerID)
}

func PostEnterprisesenterpriseActionsRunnersrunnerIdLabels(enterprise, runnerID string) Endpoint {
	return postEnterprisesenterpriseActionsRunnersrunnerIdLabels.bind(enterprise, runnerID)
}

func PutEnterprisesenterpriseActionsRunnersrunnerIdLabels(enterprise, runnerID string) Endpoint {
	return putEnterprisesenterpriseActionsRunnersrunnerIdLabels.bind(enterprise, runnerID)
}

func DeleteEnterprisesenterpriseActionsRunnersrunnerIdLabels(enterprise, runnerID string) Endpoint {
	return deleteEnterprisesenterpriseActionsRunnersrunnerIdLabels.bind(enterprise, runnerID)
}

func DeleteEnterprisesenterpriseActionsRunnersrunnerIdLabelsname(enterprise, runnerID, name string) Endpoint {
	return deleteEnterprisesenterpriseActionsRunnersrunnerIdLabelsname.bind(enterprise, runnerID, name)
}

func GetEnterprisesenterpriseAuditLog(enterprise string) Endpoint {
	return getEnterprisesenterpriseAuditLog.bind(enterprise)
}

func GetScimV2EnterprisesenterpriseGroups(enterprise string) Endpoint {
	return getScimV2EnterprisesenterpriseGroups.bind(enterprise)
}

func PostScimV2EnterprisesenterpriseGroups(enterprise string) Endpoint {
	return postScimV2EnterprisesenterpriseGroups.bind(enterprise)
}

func GetScimV2EnterprisesenterpriseGroupsscimGroupId(enterprise, scimGroupID string) Endpoint {
	return getScimV2EnterprisesenterpriseGroupsscimGroupId.bind(enterprise, scimGroupID)
}

func PutScimV2EnterprisesenterpriseGroupsscimGroupId(enterprise, scimGroupID string) Endpoint {
	return putScimV2EnterprisesenterpriseGroupsscimGroupId.bind(enterprise, scimGroupID)
}

func PatchScimV2EnterprisesenterpriseGroupsscimGroupId(enterprise, scimGroupID string) Endpoint {
	return patchScimV2EnterprisesenterpriseGroupsscimGroupId.bind(enterprise, scimGroupID)
}

func DeleteScimV2EnterprisesenterpriseGroupsscimGroupId(enterprise, scimGroupID string) Endpoint {
	return deleteScimV2EnterprisesenterpriseGroupsscimGroupId.bind(enterprise, scimGroupID)
}

func GetScimV2EnterprisesenterpriseUsers(enterprise string) Endpoint {
	return getScimV2EnterprisesenterpriseUsers.bind(enterprise)
}

func PostScimV2EnterprisesenterpriseUsers(enterprise string) Endpoint {
	return postScimV2EnterprisesenterpriseUsers.bind(enterprise)
}

func GetScimV2EnterprisesenterpriseUsersscimUserId(enterprise, scimUserID string) Endpoint {
	return getScimV2EnterprisesenterpriseUsersscimUserId.bind(enterprise, scimUserID)
}

func PutScimV2EnterprisesenterpriseUsersscimUserId(enterprise, scimUserID string) Endpoint {
	return putScimV2EnterprisesenterpriseUsersscimUserId.bind(enterprise, scimUserID)
}

func PatchScimV2EnterprisesenterpriseUsersscimUserId(enterprise, scimUserID string) Endpoint {
	return patchScimV2EnterprisesenterpriseUsersscimUserId.bind(enterprise, scimUserID)
}

func DeleteScimV2EnterprisesenterpriseUsersscimUserId(enterprise, scimUserID string) Endpoint {
	return deleteScimV2EnterprisesenterpriseUsersscimUserId.bind(enterprise, scimUserID)
}
