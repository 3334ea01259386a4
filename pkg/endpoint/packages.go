package endpoint

var (
	getOrgsorgPackagespackageTypepackageName                                 = register("packages", "GetOrgsorgPackagespackageTypepackageName", MethodGet, "/orgs/{org}/packages/{package_type}/{package_name}")
	deleteOrgsorgPackagespackageTypepackageName                              = register("packages", "DeleteOrgsorgPackagespackageTypepackageName", MethodDelete, "/orgs/{org}/packages/{package_type}/{package_name}")
	postOrgsorgPackagespackageTypepackageNameRestore                         = register("packages", "PostOrgsorgPackagespackageTypepackageNameRestore", MethodPost, "/orgs/{org}/packages/{package_type}/{package_name}/restore")
	getOrgsorgPackagespackageTypepackageNameVersions                         = register("packages", "GetOrgsorgPackagespackageTypepackageNameVersions", MethodGet, "/orgs/{org}/packages/{package_type}/{package_name}/versions")
	getOrgsorgPackagespackageTypepackageNameVersionspackageVersionId         = register("packages", "GetOrgsorgPackagespackageTypepackageNameVersionspackageVersionId", MethodGet, "/orgs/{org}/packages/{package_type}/{package_name}/versions/{package_version_id}")
	deleteOrgsorgPackagespackageTypepackageNameVersionspackageVersionId      = register("packages", "DeleteOrgsorgPackagespackageTypepackageNameVersionspackageVersionId", MethodDelete, "/orgs/{org}/packages/{package_type}/{package_name}/versions/{package_version_id}")
	postOrgsorgPackagespackageTypepackageNameVersionspackageVersionIdRestore = register("packages", "PostOrgsorgPackagespackageTypepackageNameVersionspackageVersionIdRestore", MethodPost, "/orgs/{org}/packages/{package_type}/{package_name}/versions/{package_version_id}/restore")
	getUserPackagespackageTypepackageName                                    = register("packages", "GetUserPackagespackageTypepackageName", MethodGet, "/user/packages/{package_type}/{package_name}")
	deleteUserPackagespackageTypepackageName                                 = register("packages", "DeleteUserPackagespackageTypepackageName", MethodDelete, "/user/packages/{package_type}/{package_name}")
	postUserPackagespackageTypepackageNameRestore                            = register("packages", "PostUserPackagespackageTypepackageNameRestore", MethodPost, "/user/packages/{package_type}/{package_name}/restore")
	getUserPackagespackageTypepackageNameVersions                            = register("packages", "GetUserPackagespackageTypepackageNameVersions", MethodGet, "/user/packages/{package_type}/{package_name}/versions")
	getUserPackagespackageTypepackageNameVersionspackageVersionId            = register("packages", "GetUserPackagespackageTypepackageNameVersionspackageVersionId", MethodGet, "/user/packages/{package_type}/{package_name}/versions/{package_version_id}")
	deleteUserPackagespackageTypepackageNameVersionspackageVersionId         = register("packages", "DeleteUserPackagespackageTypepackageNameVersionspackageVersionId", MethodDelete, "/user/packages/{package_type}/{package_name}/versions/{package_version_id}")
	postUserPackagespackageTypepackageNameVersionspackageVersionIdRestore    = register("packages", "PostUserPackagespackageTypepackageNameVersionspackageVersionIdRestore", MethodPost, "/user/packages/{package_type}/{package_name}/versions/{package_version_id}/restore")
	getUsersusernamePackagespackageTypepackageName                           = register("packages", "GetUsersusernamePackagespackageTypepackageName", MethodGet, "/users/{username}/packages/{package_type}/{package_name}")
	getUsersusernamePackagespackageTypepackageNameVersions                   = register("packages", "GetUsersusernamePackagespackageTypepackageNameVersions", MethodGet, "/users/{username}/packages/{package_type}/{package_name}/versions")
	getUsersusernamePackagespackageTypepackageNameVersionspackageVersionId   = register("packages", "GetUsersusernamePackagespackageTypepackageNameVersionspackageVersionId", MethodGet, "/users/{username}/packages/{package_type}/{package_name}/versions/{package_version_id}")
)

func GetOrgsorgPackagespackageTypepackageName(org, packageType, packageName string) Endpoint {
	return getOrgsorgPackagespackageTypepackageName.bind(org, packageType, packageName)
}

func DeleteOrgsorgPackagespackageTypepackageName(org, packageType, packageName string) Endpoint {
	return deleteOrgsorgPackagespackageTypepackageName.bind(org, packageType, packageName)
}

func PostOrgsorgPackagespackageTypepackageNameRestore(org, packageType, packageName string) Endpoint {
	return postOrgsorgPackagespackageTypepackageNameRestore.bind(org, packageType, packageName)
}

func GetOrgsorgPackagespackageTypepackageNameVersions(org, packageType, packageName string) Endpoint {
	return getOrgsorgPackagespackageTypepackageNameVersions.bind(org, packageType, packageName)
}

func GetOrgsorgPackagespackageTypepackageNameVersionspackageVersionId(org, packageType, packageName, packageVersionID string) Endpoint {
	return getOrgsorgPackagespackageTypepackageNameVersionspackageVersionId.bind(org, packageType, packageName, packageVersionID)
}

func DeleteOrgsorgPackagespackageTypepackageNameVersionspackageVersionId(org, packageType, packageName, packageVersionID string) Endpoint {
	return deleteOrgsorgPackagespackageTypepackageNameVersionspackageVersionId.bind(org, packageType, packageName, packageVersionID)
}

func PostOrgsorgPackagespackageTypepackageNameVersionspackageVersionIdRestore(org, packageType, packageName, packageVersionID string) Endpoint {
	return postOrgsorgPackagespackageTypepackageNameVersionspackageVersionIdRestore.bind(org, packageType, packageName, packageVersionID)
}

func GetUserPackagespackageTypepackageName(packageType, packageName string) Endpoint {
	return getUserPackagespackageTypepackageName.bind(packageType, packageName)
}

func DeleteUserPackagespackageTypepackageName(packageType, packageName string) Endpoint {
	return deleteUserPackagespackageTypepackageName.bind(packageType, packageName)
}

func PostUserPackagespackageTypepackageNameRestore(packageType, packageName string) Endpoint {
	return postUserPackagespackageTypepackageNameRestore.bind(packageType, packageName)
}

func GetUserPackagespackageTypepackageNameVersions(packageType, packageName string) Endpoint {
	return getUserPackagespackageTypepackageNameVersions.bind(packageType, packageName)
}

func GetUserPackagespackageTypepackageNameVersionspackageVersionId(packageType, packageName, packageVersionID string) Endpoint {
	return getUserPackagespackageTypepackageNameVersionspackageVersionId.bind(packageType, packageName, packageVersionID)
}

func DeleteUserPackagespackageTypepackageNameVersionspackageVersionId(packageType, packageName, packageVersionID string) Endpoint {
	return deleteUserPackagespackageTypepackageNameVersionspackageVersionId.bind(packageType, packageName, packageVersionID)
}

func PostUserPackagespackageTypepackageNameVersionspackageVersionIdRestore(packageType, packageName, packageVersionID string) Endpoint {
	return postUserPackagespackageTypepackageNameVersionspackageVersionIdRestore.bind(packageType, packageName, packageVersionID)
}

func GetUsersusernamePackagespackageTypepackageName(username, packageType, packageName string) Endpoint {
	return getUsersusernamePackagespackageTypepackageName.bind(username, packageType, packageName)
}

func GetUsersusernamePackagespackageTypepackageNameVersions(username, packageType, packageName string) Endpoint {
	return getUsersusernamePackagespackageTypepackageNameVersions.bind(username, packageType, packageName)
}

func GetUsersusernamePackagespackageTypepackageNameVersionspackageVersionId(username, packageType, packageName, packageVersionID string) Endpoint {
	return getUsersusernamePackagespackageTypepackageNameVersionspackageVersionId.bind(username, packageType, packageName, packageVersionID)
}
