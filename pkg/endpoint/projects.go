package endpoint

var (
	getOrgsorgProjects                                  = register("projects", "GetOrgsorgProjects", MethodGet, "/orgs/{org}/projects")
	postOrgsorgProjects                                 = register("projects", "PostOrgsorgProjects", MethodPost, "/orgs/{org}/projects")
	getProjectsColumnsCardscardId                       = register("projects", "GetProjectsColumnsCardscardId", MethodGet, "/projects/columns/cards/{card_id}")
	patchProjectsColumnsCardscardId                     = register("projects", "PatchProjectsColumnsCardscardId", MethodPatch, "/projects/columns/cards/{card_id}")
	deleteProjectsColumnsCardscardId                    = register("projects", "DeleteProjectsColumnsCardscardId", MethodDelete, "/projects/columns/cards/{card_id}")
	postProjectsColumnsCardscardIdMoves                 = register("projects", "PostProjectsColumnsCardscardIdMoves", MethodPost, "/projects/columns/cards/{card_id}/moves")
	getProjectsColumnscolumnId                          = register("projects", "GetProjectsColumnscolumnId", MethodGet, "/projects/columns/{column_id}")
	patchProjectsColumnscolumnId                        = register("projects", "PatchProjectsColumnscolumnId", MethodPatch, "/projects/columns/{column_id}")
	deleteProjectsColumnscolumnId                       = register("projects", "DeleteProjectsColumnscolumnId", MethodDelete, "/projects/columns/{column_id}")
	getProjectsColumnscolumnIdCards                     = register("projects", "GetProjectsColumnscolumnIdCards", MethodGet, "/projects/columns/{column_id}/cards")
	postProjectsColumnscolumnIdCards                    = register("projects", "PostProjectsColumnscolumnIdCards", MethodPost, "/projects/columns/{column_id}/cards")
	postProjectsColumnscolumnIdMoves                    = register("projects", "PostProjectsColumnscolumnIdMoves", MethodPost, "/projects/columns/{column_id}/moves")
	getProjectsprojectId                                = register("projects", "GetProjectsprojectId", MethodGet, "/projects/{project_id}")
	patchProjectsprojectId                              = register("projects", "PatchProjectsprojectId", MethodPatch, "/projects/{project_id}")
	deleteProjectsprojectId                             = register("projects", "DeleteProjectsprojectId", MethodDelete, "/projects/{project_id}")
	getProjectsprojectIdCollaborators                   = register("projects", "GetProjectsprojectIdCollaborators", MethodGet, "/projects/{project_id}/collaborators")
	putProjectsprojectIdCollaboratorsusername           = register("projects", "PutProjectsprojectIdCollaboratorsusername", MethodPut, "/projects/{project_id}/collaborators/{username}")
	deleteProjectsprojectIdCollaboratorsusername        = register("projects", "DeleteProjectsprojectIdCollaboratorsusername", MethodDelete, "/projects/{project_id}/collaborators/{username}")
	getProjectsprojectIdCollaboratorsusernamePermission = register("projects", "GetProjectsprojectIdCollaboratorsusernamePermission", MethodGet, "/projects/{project_id}/collaborators/{username}/permission")
	getProjectsprojectIdColumns                         = register("projects", "GetProjectsprojectIdColumns", MethodGet, "/projects/{project_id}/columns")
	postProjectsprojectIdColumns                        = register("projects", "PostProjectsprojectIdColumns", MethodPost, "/projects/{project_id}/columns")
	getReposownerrepoProjects                           = register("projects", "GetReposownerrepoProjects", MethodGet, "/repos/{owner}/{repo}/projects")
	postReposownerrepoProjects                          = register("projects", "PostReposownerrepoProjects", MethodPost, "/repos/{owner}/{repo}/projects")
	postUserProjects                                    = register("projects", "PostUserProjects", MethodPost, "/user/projects")
	getUsersusernameProjects                            = register("projects", "GetUsersusernameProjects", MethodGet, "/users/{username}/projects")
)

func GetOrgsorgProjects(org string) Endpoint {
	return getOrgsorgProjects.bind(org)
}

func PostOrgsorgProjects(org string) Endpoint {
	return postOrgsorgProjects.bind(org)
}

func GetProjectsColumnsCardscardId(cardID string) Endpoint {
	return getProjectsColumnsCardscardId.bind(cardID)
}

func PatchProjectsColumnsCardscardId(cardID string) Endpoint {
	return patchProjectsColumnsCardscardId.bind(cardID)
}

func DeleteProjectsColumnsCardscardId(cardID string) Endpoint {
	return deleteProjectsColumnsCardscardId.bind(cardID)
}

func PostProjectsColumnsCardscardIdMoves(cardID string) Endpoint {
	return postProjectsColumnsCardscardIdMoves.bind(cardID)
}

func GetProjectsColumnscolumnId(columnID string) Endpoint {
	return getProjectsColumnscolumnId.bind(columnID)
}

func PatchProjectsColumnscolumnId(columnID string) Endpoint {
	return patchProjectsColumnscolumnId.bind(columnID)
}

func DeleteProjectsColumnscolumnId(columnID string) Endpoint {
	return deleteProjectsColumnscolumnId.bind(columnID)
}

func GetProjectsColumnscolumnIdCards(columnID string) Endpoint {
	return getProjectsColumnscolumnIdCards.bind(columnID)
}

func PostProjectsColumnscolumnIdCards(columnID string) Endpoint {
	return postProjectsColumnscolumnIdCards.bind(columnID)
}

func PostProjectsColumnscolumnIdMoves(columnID string) Endpoint {
	return postProjectsColumnscolumnIdMoves.bind(columnID)
}

func GetProjectsprojectId(projectID string) Endpoint {
	return getProjectsprojectId.bind(projectID)
}

func PatchProjectsprojectId(projectID string) Endpoint {
	return patchProjectsprojectId.bind(projectID)
}

func DeleteProjectsprojectId(projectID string) Endpoint {
	return deleteProjectsprojectId.bind(projectID)
}

func GetProjectsprojectIdCollaborators(projectID string) Endpoint {
	return getProjectsprojectIdCollaborators.bind(projectID)
}

func PutProjectsprojectIdCollaboratorsusername(projectID, username string) Endpoint {
	return putProjectsprojectIdCollaboratorsusername.bind(projectID, username)
}

func DeleteProjectsprojectIdCollaboratorsusername(projectID, username string) Endpoint {
	return deleteProjectsprojectIdCollaboratorsusername.bind(projectID, username)
}

func GetProjectsprojectIdCollaboratorsusernamePermission(projectID, username string) Endpoint {
	return getProjectsprojectIdCollaboratorsusernamePermission.bind(projectID, username)
}

func GetProjectsprojectIdColumns(projectID string) Endpoint {
	return getProjectsprojectIdColumns.bind(projectID)
}

func PostProjectsprojectIdColumns(projectID string) Endpoint {
	return postProjectsprojectIdColumns.bind(projectID)
}

func GetReposownerrepoProjects(owner, repo string) Endpoint {
	return getReposownerrepoProjects.bind(owner, repo)
}

func PostReposownerrepoProjects(owner, repo string) Endpoint {
	return postReposownerrepoProjects.bind(owner, repo)
}

func PostUserProjects() Endpoint {
	return postUserProjects.bind()
}

func GetUsersusernameProjects(username string) Endpoint {
	return getUsersusernameProjects.bind(username)
}
