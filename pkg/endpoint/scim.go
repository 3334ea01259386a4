package endpoint

var (
	getScimV2OrganizationsorgUsers              = register("scim", "GetScimV2OrganizationsorgUsers", MethodGet, "/scim/v2/organizations/{org}/Users")
	postScimV2OrganizationsorgUsers             = register("scim", "PostScimV2OrganizationsorgUsers", MethodPost, "/scim/v2/organizations/{org}/Users")
	getScimV2OrganizationsorgUsersscimUserId    = register("scim", "GetScimV2OrganizationsorgUsersscimUserId", MethodGet, "/scim/v2/organizations/{org}/Users/{scim_user_id}")
	putScimV2OrganizationsorgUsersscimUserId    = register("scim", "PutScimV2OrganizationsorgUsersscimUserId", MethodPut, "/scim/v2/organizations/{org}/Users/{scim_user_id}")
	patchScimV2OrganizationsorgUsersscimUserId  = register("scim", "PatchScimV2OrganizationsorgUsersscimUserId", MethodPatch, "/scim/v2/organizations/{org}/Users/{scim_user_id}")
	deleteScimV2OrganizationsorgUsersscimUserId = register("scim", "DeleteScimV2OrganizationsorgUsersscimUserId", MethodDelete, "/scim/v2/organizations/{org}/Users/{scim_user_id}")
)

func GetScimV2OrganizationsorgUsers(org string) Endpoint {
	return getScimV2OrganizationsorgUsers.bind(org)
}

func PostScimV2OrganizationsorgUsers(org string) Endpoint {
	return postScimV2OrganizationsorgUsers.bind(org)
}

func GetScimV2OrganizationsorgUsersscimUserId(org, scimUserID string) Endpoint {
	return getScimV2OrganizationsorgUsersscimUserId.bind(org, scimUserID)
}

func PutScimV2OrganizationsorgUsersscimUserId(org, scimUserID string) Endpoint {
	return putScimV2OrganizationsorgUsersscimUserId.bind(org, scimUserID)
}

func PatchScimV2OrganizationsorgUsersscimUserId(org, scimUserID string) Endpoint {
	return patchScimV2OrganizationsorgUsersscimUserId.bind(org, scimUserID)
}

func DeleteScimV2OrganizationsorgUsersscimUserId(org, scimUserID string) Endpoint {
	return deleteScimV2OrganizationsorgUsersscimUserId.bind(org, scimUserID)
}
