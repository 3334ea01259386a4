package endpoint

var (
	getApplicationsGrants                       = register("oauth-authorizations", "GetApplicationsGrants", MethodGet, "/applications/grants")
	getApplicationsGrantsgrantId                = register("oauth-authorizations", "GetApplicationsGrantsgrantId", MethodGet, "/applications/grants/{grant_id}")
	deleteApplicationsGrantsgrantId             = register("oauth-authorizations", "DeleteApplicationsGrantsgrantId", MethodDelete, "/applications/grants/{grant_id}")
	getAuthorizations                           = register("oauth-authorizations", "GetAuthorizations", MethodGet, "/authorizations")
	postAuthorizations                          = register("oauth-authorizations", "PostAuthorizations", MethodPost, "/authorizations")
	putAuthorizationsClientsclientId            = register("oauth-authorizations", "PutAuthorizationsClientsclientId", MethodPut, "/authorizations/clients/{client_id}")
	putAuthorizationsClientsclientIdfingerprint = register("oauth-authorizations", "PutAuthorizationsClientsclientIdfingerprint", MethodPut, "/authorizations/clients/{client_id}/{fingerprint}")
	getAuthorizationsauthorizationId            = register("oauth-authorizations", "GetAuthorizationsauthorizationId", MethodGet, "/authorizations/{authorization_id}")
	patchAuthorizationsauthorizationId          = register("oauth-authorizations", "PatchAuthorizationsauthorizationId", MethodPatch, "/authorizations/{authorization_id}")
	deleteAuthorizationsauthorizationId         = register("oauth-authorizations", "DeleteAuthorizationsauthorizationId", MethodDelete, "/authorizations/{authorization_id}")
)

func GetApplicationsGrants() Endpoint {
	return getApplicationsGrants.bind()
}

func GetApplicationsGrantsgrantId(grantID string) Endpoint {
	return getApplicationsGrantsgrantId.bind(grantID)
}

func DeleteApplicationsGrantsgrantId(grantID string) Endpoint {
	return deleteApplicationsGrantsgrantId.bind(grantID)
}

func GetAuthorizations() Endpoint {
	return getAuthorizations.bind()
}

func PostAuthorizations() Endpoint {
	return postAuthorizations.bind()
}

func PutAuthorizationsClientsclientId(clientID string) Endpoint {
	return putAuthorizationsClientsclientId.bind(clientID)
}

func PutAuthorizationsClientsclientIdfingerprint(clientID, fingerprint string) Endpoint {
	return putAuthorizationsClientsclientIdfingerprint.bind(clientID, fingerprint)
}

func GetAuthorizationsauthorizationId(authorizationID string) Endpoint {
	return getAuthorizationsauthorizationId.bind(authorizationID)
}

func PatchAuthorizationsauthorizationId(authorizationID string) Endpoint {
	return patchAuthorizationsauthorizationId.bind(authorizationID)
}

func DeleteAuthorizationsauthorizationId(authorizationID string) Endpoint {
	return deleteAuthorizationsauthorizationId.bind(authorizationID)
}
