package endpoint

var (
	getEnterprisesenterpriseSettingsBillingActions       = register("billing", "GetEnterprisesenterpriseSettingsBillingActions", MethodGet, "/enterprises/{enterprise}/settings/billing/actions")
	getEnterprisesenterpriseSettingsBillingPackages      = register("billing", "GetEnterprisesenterpriseSettingsBillingPackages", MethodGet, "/enterprises/{enterprise}/settings/billing/packages")
	getEnterprisesenterpriseSettingsBillingSharedStorage = register("billing", "GetEnterprisesenterpriseSettingsBillingSharedStorage", MethodGet, "/enterprises/{enterprise}/settings/billing/shared-storage")
	getOrgsorgSettingsBillingActions                     = register("billing", "GetOrgsorgSettingsBillingActions", MethodGet, "/orgs/{org}/settings/billing/actions")
	getOrgsorgSettingsBillingPackages                    = register("billing", "GetOrgsorgSettingsBillingPackages", MethodGet, "/orgs/{org}/settings/billing/packages")
	getOrgsorgSettingsBillingSharedStorage               = register("billing", "GetOrgsorgSettingsBillingSharedStorage", MethodGet, "/orgs/{org}/settings/billing/shared-storage")
	getUsersusernameSettingsBillingActions               = register("billing", "GetUsersusernameSettingsBillingActions", MethodGet, "/users/{username}/settings/billing/actions")
	getUsersusernameSettingsBillingPackages              = register("billing", "GetUsersusernameSettingsBillingPackages", MethodGet, "/users/{username}/settings/billing/packages")
	getUsersusernameSettingsBillingSharedStorage         = register("billing", "GetUsersusernameSettingsBillingSharedStorage", MethodGet, "/users/{username}/settings/billing/shared-storage")
)

func GetEnterprisesenterpriseSettingsBillingActions(enterprise string) Endpoint {
	return getEnterprisesenterpriseSettingsBillingActions.bind(enterprise)
}

func GetEnterprisesenterpriseSettingsBillingPackages(enterprise string) Endpoint {
	return getEnterprisesenterpriseSettingsBillingPackages.bind(enterprise)
}

func GetEnterprisesenterpriseSettingsBillingSharedStorage(enterprise string) Endpoint {
	return getEnterprisesenterpriseSettingsBillingSharedStorage.bind(enterprise)
}

func GetOrgsorgSettingsBillingActions(org string) Endpoint {
	return getOrgsorgSettingsBillingActions.bind(org)
}

func GetOrgsorgSettingsBillingPackages(org string) Endpoint {
	return getOrgsorgSettingsBillingPackages.bind(org)
}

func GetOrgsorgSettingsBillingSharedStorage(org string) Endpoint {
	return getOrgsorgSettingsBillingSharedStorage.bind(org)
}

func GetUsersusernameSettingsBillingActions(username string) Endpoint {
	return getUsersusernameSettingsBillingActions.bind(username)
}

func GetUsersusernameSettingsBillingPackages(username string) Endpoint {
	return getUsersusernameSettingsBillingPackages.bind(username)
}

func GetUsersusernameSettingsBillingSharedStorage(username string) Endpoint {
	return getUsersusernameSettingsBillingSharedStorage.bind(username)
}
