package endpoint

var (
	getOrgsorgMigrations                                = register("migrations", "GetOrgsorgMigrations", MethodGet, "/orgs/{org}/migrations")
	postOrgsorgMigrations                               = register("migrations", "PostOrgsorgMigrations", MethodPost, "/orgs/{org}/migrations")
	getOrgsorgMigrationsmigrationId                     = register("migrations", "GetOrgsorgMigrationsmigrationId", MethodGet, "/orgs/{org}/migrations/{migration_id}")
	getOrgsorgMigrationsmigrationIdArchive              = register("migrations", "GetOrgsorgMigrationsmigrationIdArchive", MethodGet, "/orgs/{org}/migrations/{migration_id}/archive")
	deleteOrgsorgMigrationsmigrationIdArchive           = register("migrations", "DeleteOrgsorgMigrationsmigrationIdArchive", MethodDelete, "/orgs/{org}/migrations/{migration_id}/archive")
	deleteOrgsorgMigrationsmigrationIdReposrepoNameLock = register("migrations", "DeleteOrgsorgMigrationsmigrationIdReposrepoNameLock", MethodDelete, "/orgs/{org}/migrations/{migration_id}/repos/{repo_name}/lock")
	getOrgsorgMigrationsmigrationIdRepositories         = register("migrations", "GetOrgsorgMigrationsmigrationIdRepositories", MethodGet, "/orgs/{org}/migrations/{migration_id}/repositories")
	getReposownerrepoImport                             = register("migrations", "GetReposownerrepoImport", MethodGet, "/repos/{owner}/{repo}/import")
	putReposownerrepoImport                             = register("migrations", "PutReposownerrepoImport", MethodPut, "/repos/{owner}/{repo}/import")
	patchReposownerrepoImport                           = register("migrations", "PatchReposownerrepoImport", MethodPatch, "/repos/{owner}/{repo}/import")
	deleteReposownerrepoImport                          = register("migrations", "DeleteReposownerrepoImport", MethodDelete, "/repos/{owner}/{repo}/import")
	getReposownerrepoImportAuthors                      = register("migrations", "GetReposownerrepoImportAuthors", MethodGet, "/repos/{owner}/{repo}/import/authors")
	patchReposownerrepoImportAuthorsauthorId            = register("migrations", "PatchReposownerrepoImportAuthorsauthorId", MethodPatch, "/repos/{owner}/{repo}/import/authors/{author_id}")
	getReposownerrepoImportLargeFiles                   = register("migrations", "GetReposownerrepoImportLargeFiles", MethodGet, "/repos/{owner}/{repo}/import/large_files")
	patchReposownerrepoImportLfs                        = register("migrations", "PatchReposownerrepoImportLfs", MethodPatch, "/repos/{owner}/{repo}/import/lfs")
	getUserMigrations                                   = register("migrations", "GetUserMigrations", MethodGet, "/user/migrations")
	postUserMigrations                                  = register("migrations", "PostUserMigrations", MethodPost, "/user/migrations")
	getUserMigrationsmigrationId                        = register("migrations", "GetUserMigrationsmigrationId", MethodGet, "/user/migrations/{migration_id}")
	getUserMigrationsmigrationIdArchive                 = register("migrations", "GetUserMigrationsmigrationIdArchive", MethodGet, "/user/migrations/{migration_id}/archive")
	deleteUserMigrationsmigrationIdArchive              = register("migrations", "DeleteUserMigrationsmigrationIdArchive", MethodDelete, "/user/migrations/{migration_id}/archive")
	deleteUserMigrationsmigrationIdReposrepoNameLock    = register("migrations", "DeleteUserMigrationsmigrationIdReposrepoNameLock", MethodDelete, "/user/migrations/{migration_id}/repos/{repo_name}/lock")
	getUserMigrationsmigrationIdRepositories            = register("migrations", "GetUserMigrationsmigrationIdRepositories", MethodGet, "/user/migrations/{migration_id}/repositories")
)

func GetOrgsorgMigrations(org string) Endpoint {
	return getOrgsorgMigrations.bind(org)
}

func PostOrgsorgMigrations(org string) Endpoint {
	return postOrgsorgMigrations.bind(org)
}

func GetOrgsorgMigrationsmigrationId(org, migrationID string) Endpoint {
	return getOrgsorgMigrationsmigrationId.bind(org, migrationID)
}

func GetOrgsorgMigrationsmigrationIdArchive(org, migrationID string) Endpoint {
	return getOrgsorgMigrationsmigrationIdArchive.bind(org, migrationID)
}

func DeleteOrgsorgMigrationsmigrationIdArchive(org, migrationID string) Endpoint {
	return deleteOrgsorgMigrationsmigrationIdArchive.bind(org, migrationID)
}

func DeleteOrgsorgMigrationsmigrationIdReposrepoNameLock(org, migrationID, repoName string) Endpoint {
	return deleteOrgsorgMigrationsmigrationIdReposrepoNameLock.bind(org, migrationID, repoName)
}

func GetOrgsorgMigrationsmigrationIdRepositories(org, migrationID string) Endpoint {
	return getOrgsorgMigrationsmigrationIdRepositories.bind(org, migrationID)
}

func GetReposownerrepoImport(owner, repo string) Endpoint {
	return getReposownerrepoImport.bind(owner, repo)
}

func PutReposownerrepoImport(owner, repo string) Endpoint {
	return putReposownerrepoImport.bind(owner, repo)
}

func PatchReposownerrepoImport(owner, repo string) Endpoint {
	return patchReposownerrepoImport.bind(owner, repo)
}

func DeleteReposownerrepoImport(owner, repo string) Endpoint {
	return deleteReposownerrepoImport.bind(owner, repo)
}

func GetReposownerrepoImportAuthors(owner, repo string) Endpoint {
	return getReposownerrepoImportAuthors.bind(owner, repo)
}

func PatchReposownerrepoImportAuthorsauthorId(owner, repo, authorID string) Endpoint {
	return patchReposownerrepoImportAuthorsauthorId.bind(owner, repo, authorID)
}

func GetReposownerrepoImportLargeFiles(owner, repo string) Endpoint {
	return getReposownerrepoImportLargeFiles.bind(owner, repo)
}

func PatchReposownerrepoImportLfs(owner, repo string) Endpoint {
	return patchReposownerrepoImportLfs.bind(owner, repo)
}

func GetUserMigrations() Endpoint {
	return getUserMigrations.bind()
}

func PostUserMigrations() Endpoint {
	return postUserMigrations.bind()
}

func GetUserMigrationsmigrationId(migrationID string) Endpoint {
	return getUserMigrationsmigrationId.bind(migrationID)
}

func GetUserMigrationsmigrationIdArchive(migrationID string) Endpoint {
	return getUserMigrationsmigrationIdArchive.bind(migrationID)
}

func DeleteUserMigrationsmigrationIdArchive(migrationID string) Endpoint {
	return deleteUserMigrationsmigrationIdArchive.bind(migrationID)
}

func DeleteUserMigrationsmigrationIdReposrepoNameLock(migrationID, repoName string) Endpoint {
	return deleteUserMigrationsmigrationIdReposrepoNameLock.bind(migrationID, repoName)
}

func GetUserMigrationsmigrationIdRepositories(migrationID string) Endpoint {
	return getUserMigrationsmigrationIdRepositories.bind(migrationID)
}
