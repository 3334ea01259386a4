package endpoint

var (
	getOrganizations                                   = register("orgs", "GetOrganizations", MethodGet, "/organizations")
	getOrgsorg                                         = register("orgs", "GetOrgsorg", MethodGet, "/orgs/{org}")
	patchOrgsorg                                       = register("orgs", "PatchOrgsorg", MethodPatch, "/orgs/{org}")
	getOrgsorgAuditLog                                 = register("orgs", "GetOrgsorgAuditLog", MethodGet, "/orgs/{org}/audit-log")
	getOrgsorgBlocks                                   = register("orgs", "GetOrgsorgBlocks", MethodGet, "/orgs/{org}/blocks")
	getOrgsorgBlocksusername                           = register("orgs", "GetOrgsorgBlocksusername", MethodGet, "/orgs/{org}/blocks/{username}")
	putOrgsorgBlocksusername                           = register("orgs", "PutOrgsorgBlocksusername", MethodPut, "/orgs/{org}/blocks/{username}")
	deleteOrgsorgBlocksusername                        = register("orgs", "DeleteOrgsorgBlocksusername", MethodDelete, "/orgs/{org}/blocks/{username}")
	getOrgsorgCredentialAuthorizations                 = register("orgs", "GetOrgsorgCredentialAuthorizations", MethodGet, "/orgs/{org}/credential-authorizations")
	deleteOrgsorgCredentialAuthorizationscredentialId  = register("orgs", "DeleteOrgsorgCredentialAuthorizationscredentialId", MethodDelete, "/orgs/{org}/credential-authorizations/{credential_id}")
	getOrgsorgFailedInvitations                        = register("orgs", "GetOrgsorgFailedInvitations", MethodGet, "/orgs/{org}/failed_invitations")
	getOrgsorgHooks                                    = register("orgs", "GetOrgsorgHooks", MethodGet, "/orgs/{org}/hooks")
	postOrgsorgHooks                                   = register("orgs", "PostOrgsorgHooks", MethodPost, "/orgs/{org}/hooks")
	getOrgsorgHookshookId                              = register("orgs", "GetOrgsorgHookshookId", MethodGet, "/orgs/{org}/hooks/{hook_id}")
	patchOrgsorgHookshookId                            = register("orgs", "PatchOrgsorgHookshookId", MethodPatch, "/orgs/{org}/hooks/{hook_id}")
	deleteOrgsorgHookshookId                           = register("orgs", "DeleteOrgsorgHookshookId", MethodDelete, "/orgs/{org}/hooks/{hook_id}")
	getOrgsorgHookshookIdConfig                        = register("orgs", "GetOrgsorgHookshookIdConfig", MethodGet, "/orgs/{org}/hooks/{hook_id}/config")
	patchOrgsorgHookshookIdConfig                      = register("orgs", "PatchOrgsorgHookshookIdConfig", MethodPatch, "/orgs/{org}/hooks/{hook_id}/config")
	getOrgsorgHookshookIdDeliveries                    = register("orgs", "GetOrgsorgHookshookIdDeliveries", MethodGet, "/orgs/{org}/hooks/{hook_id}/deliveries")
	getOrgsorgHookshookIdDeliveriesdeliveryId          = register("orgs", "GetOrgsorgHookshookIdDeliveriesdeliveryId", MethodGet, "/orgs/{org}/hooks/{hook_id}/deliveries/{delivery_id}")
	postOrgsorgHookshookIdDeliveriesdeliveryIdAttempts = register("orgs", "PostOrgsorgHookshookIdDeliveriesdeliveryIdAttempts", MethodPost, "/orgs/{org}/hooks/{hook_id}/deliveries/{delivery_id}/attempts")
	postOrgsorgHookshookIdPings                        = register("orgs", "PostOrgsorgHookshookIdPings", MethodPost, "/orgs/{org}/hooks/{hook_id}/pings")
	getOrgsorgInstallations                            = register("orgs", "GetOrgsorgInstallations", MethodGet, "/orgs/{org}/installations")
	getOrgsorgInvitations                              = register("orgs", "GetOrgsorgInvitations", MethodGet, "/orgs/{org}/invitations")
	postOrgsorgInvitations                             = register("orgs", "PostOrgsorgInvitations", MethodPost, "/orgs/{org}/invitations")
	deleteOrgsorgInvitationsinvitationId               = register("orgs", "DeleteOrgsorgInvitationsinvitationId", MethodDelete, "/orgs/{org}/invitations/{invitation_id}")
	getOrgsorgInvitationsinvitationIdTeams             = register("orgs", "GetOrgsorgInvitationsinvitationIdTeams", MethodGet, "/orgs/{org}/invitations/{invitation_id}/teams")
	getOrgsorgMembers                                  = register("orgs", "GetOrgsorgMembers", MethodGet, "/orgs/{org}/members")
	getOrgsorgMembersusername                          = register("orgs", "GetOrgsorgMembersusername", MethodGet, "/orgs/{org}/members/{username}")
	deleteOrgsorgMembersusername                       = register("orgs", "DeleteOrgsorgMembersusername", MethodDelete, "/orgs/{org}/members/{username}")
	getOrgsorgMembershipsusername                      = register("orgs", "GetOrgsorgMembershipsusername", MethodGet, "/orgs/{org}/memberships/{username}")
	putOrgsorgMembershipsusername                      = register("orgs", "PutOrgsorgMembershipsusername", MethodPut, "/orgs/{org}/memberships/{username}")
	deleteOrgsorgMembershipsusername                   = register("orgs", "DeleteOrgsorgMembershipsusername", MethodDelete, "/orgs/{org}/memberships/{username}")
	getOrgsorgOutsideCollaborators                     = register("orgs", "GetOrgsorgOutsideCollaborators", MethodGet, "/orgs/{org}/outside_collaborators")
	putOrgsorgOutsideCollaboratorsusername             = register("orgs", "PutOrgsorgOutsideCollaboratorsusername", MethodPut, "/orgs/{org}/outside_collaborators/{username}")
	deleteOrgsorgOutsideCollaboratorsusername          = register("orgs", "DeleteOrgsorgOutsideCollaboratorsusername", MethodDelete, "/orgs/{org}/outside_collaborators/{username}")
	getOrgsorgPublicMembers                            = register("orgs", "GetOrgsorgPublicMembers", MethodGet, "/orgs/{org}/public_members")
	getOrgsorgPublicMembersusername                    = register("orgs", "GetOrgsorgPublicMembersusername", MethodGet, "/orgs/{org}/public_members/{username}")
	putOrgsorgPublicMembersusername                    = register("orgs", "PutOrgsorgPublicMembersusername", MethodPut, "/orgs/{org}/public_members/{username}")
	deleteOrgsorgPublicMembersusername                 = register("orgs", "DeleteOrgsorgPublicMembersusername", MethodDelete, "/orgs/{org}/public_members/{username}")
	getUserMembershipsOrgs                             = register("orgs", "GetUserMembershipsOrgs", MethodGet, "/user/memberships/orgs")
	getUserMembershipsOrgsorg                          = register("orgs", "GetUserMembershipsOrgsorg", MethodGet, "/user/memberships/orgs/{org}")
	patchUserMembershipsOrgsorg                        = register("orgs", "PatchUserMembershipsOrgsorg", MethodPatch, "/user/memberships/orgs/{org}")
	getUserOrgs                                        = register("orgs", "GetUserOrgs", MethodGet, "/user/orgs")
	getUsersusernameOrgs                               = register("orgs", "GetUsersusernameOrgs", MethodGet, "/users/{username}/orgs")
)

func GetOrganizations() Endpoint {
	return getOrganizations.bind()
}

func GetOrgsorg(org string) Endpoint {
	return getOrgsorg.bind(org)
}

func PatchOrgsorg(org string) Endpoint {
	return patchOrgsorg.bind(org)
}

func GetOrgsorgAuditLog(org string) Endpoint {
	return getOrgsorgAuditLog.bind(org)
}

func GetOrgsorgBlocks(org string) Endpoint {
	return getOrgsorgBlocks.bind(org)
}

func GetOrgsorgBlocksusername(org, username string) Endpoint {
	return getOrgsorgBlocksusername.bind(org, username)
}

func PutOrgsorgBlocksusername(org, username string) Endpoint {
	return putOrgsorgBlocksusername.bind(org, username)
}

func DeleteOrgsorgBlocksusername(org, username string) Endpoint {
	return deleteOrgsorgBlocksusername.bind(org, username)
}

func GetOrgsorgCredentialAuthorizations(org string) Endpoint {
	return getOrgsorgCredentialAuthorizations.bind(org)
}

func DeleteOrgsorgCredentialAuthorizationscredentialId(org, credentialID string) Endpoint {
	return deleteOrgsorgCredentialAuthorizationscredentialId.bind(org, credentialID)
}

func GetOrgsorgFailedInvitations(org string) Endpoint {
	return getOrgsorgFailedInvitations.bind(org)
}

func GetOrgsorgHooks(org string) Endpoint {
	return getOrgsorgHooks.bind(org)
}

func PostOrgsorgHooks(org string) Endpoint {
	return postOrgsorgHooks.bind(org)
}

func GetOrgsorgHookshookId(org, hookID string) Endpoint {
	return getOrgsorgHookshookId.bind(org, hookID)
}

func PatchOrgsorgHookshookId(org, hookID string) Endpoint {
	return patchOrgsorgHookshookId.bind(org, hookID)
}

func DeleteOrgsorgHookshookId(org, hookID string) Endpoint {
	return deleteOrgsorgHookshookId.bind(org, hookID)
}

func GetOrgsorgHookshookIdConfig(org, hookID string) Endpoint {
	return getOrgsorgHookshookIdConfig.bind(org, hookID)
}

func PatchOrgsorgHookshookIdConfig(org, hookID string) Endpoint {
	return patchOrgsorgHookshookIdConfig.bind(org, hookID)
}

func GetOrgsorgHookshookIdDeliveries(org, hookID string) Endpoint {
	return getOrgsorgHookshookIdDeliveries.bind(org, hookID)
}

func GetOrgsorgHookshookIdDeliveriesdeliveryId(org, hookID, deliveryID string) Endpoint {
	return getOrgsorgHookshookIdDeliveriesdeliveryId.bind(org, hookID, deliveryID)
}

func PostOrgsorgHookshookIdDeliveriesdeliveryIdAttempts(org, hookID, deliveryID string) Endpoint {
	return postOrgsorgHookshookIdDeliveriesdeliveryIdAttempts.bind(org, hookID, deliveryID)
}

func PostOrgsorgHookshookIdPings(org, hookID string) Endpoint {
	return postOrgsorgHookshookIdPings.bind(org, hookID)
}

func GetOrgsorgInstallations(org string) Endpoint {
	return getOrgsorgInstallations.bind(org)
}

func GetOrgsorgInvitations(org string) Endpoint {
	return getOrgsorgInvitations.bind(org)
}

func PostOrgsorgInvitations(org string) Endpoint {
	return postOrgsorgInvitations.bind(org)
}

func DeleteOrgsorgInvitationsinvitationId(org, invitationID string) Endpoint {
	return deleteOrgsorgInvitationsinvitationId.bind(org, invitationID)
}

func GetOrgsorgInvitationsinvitationIdTeams(org, invitationID string) Endpoint {
	return getOrgsorgInvitationsinvitationIdTeams.bind(org, invitationID)
}

func GetOrgsorgMembers(org string) Endpoint {
	return getOrgsorgMembers.bind(org)
}

func GetOrgsorgMembersusername(org, username string) Endpoint {
	return getOrgsorgMembersusername.bind(org, username)
}

func DeleteOrgsorgMembersusername(org, username string) Endpoint {
	return deleteOrgsorgMembersusername.bind(org, username)
}

func GetOrgsorgMembershipsusername(org, username string) Endpoint {
	return getOrgsorgMembershipsusername.bind(org, username)
}

func PutOrgsorgMembershipsusername(org, username string) Endpoint {
	return putOrgsorgMembershipsusername.bind(org, username)
}

func DeleteOrgsorgMembershipsusername(org, username string) Endpoint {
	return deleteOrgsorgMembershipsusername.bind(org, username)
}

func GetOrgsorgOutsideCollaborators(org string) Endpoint {
	return getOrgsorgOutsideCollaborators.bind(org)
}

func PutOrgsorgOutsideCollaboratorsusername(org, username string) Endpoint {
	return putOrgsorgOutsideCollaboratorsusername.bind(org, username)
}

func DeleteOrgsorgOutsideCollaboratorsusername(org, username string) Endpoint {
	return deleteOrgsorgOutsideCollaboratorsusername.bind(org, username)
}

func GetOrgsorgPublicMembers(org string) Endpoint {
	return getOrgsorgPublicMembers.bind(org)
}

func GetOrgsorgPublicMembersusername(org, username string) Endpoint {
	return getOrgsorgPublicMembersusername.bind(org, username)
}

func PutOrgsorgPublicMembersusername(org, username string) Endpoint {
	return putOrgsorgPublicMembersusername.bind(org, username)
}

func DeleteOrgsorgPublicMembersusername(org, username string) Endpoint {
	return deleteOrgsorgPublicMembersusername.bind(org, username)
}

func GetUserMembershipsOrgs() Endpoint {
	return getUserMembershipsOrgs.bind()
}

func GetUserMembershipsOrgsorg(org string) Endpoint {
	return getUserMembershipsOrgsorg.bind(org)
}

func PatchUserMembershipsOrgsorg(org string) Endpoint {
	return patchUserMembershipsOrgsorg.bind(org)
}

func GetUserOrgs() Endpoint {
	return getUserOrgs.bind()
}

func GetUsersusernameOrgs(username string) Endpoint {
	return getUsersusernameOrgs.bind(username)
}
