package github

type InteractionLimit struct {
	Limit     string `json:"limit"`
	Origin    string `json:"origin"`
	ExpiresAt string `json:"expires_at"`
}

type Migration struct {
	ID                   int64         `json:"id"`
	Owner                *SimpleUser   `json:"owner"`
	Guid                 string        `json:"guid"`
	State                string        `json:"state"`
	LockRepositories     bool          `json:"lock_repositories"`
	ExcludeAttachments   bool          `json:"exclude_attachments"`
	ExcludeReleases      bool          `json:"exclude_releases,omitempty"`
	ExcludeOwnerProjects bool          `json:"exclude_owner_projects,omitempty"`
	Repositories         []Repository  `json:"repositories"`
	URL                  string        `json:"url"`
	CreatedAt            string        `json:"created_at"`
	UpdatedAt            string        `json:"updated_at"`
	NodeID               string        `json:"node_id"`
	ArchiveURL           string        `json:"archive_url,omitempty"`
	Exclude              []interface{} `json:"exclude,omitempty"`
}

type Import struct {
	Vcs             *string       `json:"vcs"`
	UseLfs          bool          `json:"use_lfs,omitempty"`
	VcsURL          string        `json:"vcs_url"`
	SvcRoot         string        `json:"svc_root,omitempty"`
	TfvcProject     string        `json:"tfvc_project,omitempty"`
	Status          string        `json:"status"`
	StatusText      *string       `json:"status_text,omitempty"`
	FailedStep      *string       `json:"failed_step,omitempty"`
	ErrorMessage    *string       `json:"error_message,omitempty"`
	ImportPercent   *int64        `json:"import_percent,omitempty"`
	CommitCount     *int64        `json:"commit_count,omitempty"`
	PushPercent     *int64        `json:"push_percent,omitempty"`
	HasLargeFiles   bool          `json:"has_large_files,omitempty"`
	LargeFilesSize  int64         `json:"large_files_size,omitempty"`
	LargeFilesCount int64         `json:"large_files_count,omitempty"`
	ProjectChoices  []interface{} `json:"project_choices,omitempty"`
	Message         string        `json:"message,omitempty"`
	AuthorsCount    *int64        `json:"authors_count,omitempty"`
	URL             string        `json:"url"`
	HTMLURL         string        `json:"html_url"`
	AuthorsURL      string        `json:"authors_url"`
	RepositoryURL   string        `json:"repository_url"`
	SVNRoot         string        `json:"svn_root,omitempty"`
}

type PorterAuthor struct {
	ID         int64  `json:"id"`
	RemoteID   string `json:"remote_id"`
	RemoteName string `json:"remote_name"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	ImportURL  string `json:"import_url"`
}

type PorterLargeFile struct {
	RefName string `json:"ref_name"`
	Path    string `json:"path"`
	OID     string `json:"oid"`
	Size    int64  `json:"size"`
}

type AuditLogEvent struct {
	Timestamp     int64                  `json:"@timestamp,omitempty"`
	Action        string                 `json:"action,omitempty"`
	Active        bool                   `json:"active,omitempty"`
	Actor         string                 `json:"actor,omitempty"`
	ActorLocation interface{}            `json:"actor_location,omitempty"`
	Business      string                 `json:"business,omitempty"`
	CreatedAt     int64                  `json:"created_at,omitempty"`
	DocumentID    string                 `json:"document_id,omitempty"`
	DocumentIDAlt string                 `json:"_document_id,omitempty"`
	Org           string                 `json:"org,omitempty"`
	Repo          string                 `json:"repo,omitempty"`
	Team          string                 `json:"team,omitempty"`
	User          string                 `json:"user,omitempty"`
	Visibility    string                 `json:"visibility,omitempty"`
	Data          map[string]interface{} `json:"data,omitempty"`
}

type ScimUserList struct {
	Schemas      []string   `json:"schemas"`
	TotalResults int64      `json:"totalResults"`
	ItemsPerPage int64      `json:"itemsPerPage"`
	StartIndex   int64      `json:"startIndex"`
	Resources    []ScimUser `json:"Resources"`
}

type ScimUser struct {
	Schemas        []string      `json:"schemas"`
	ID             string        `json:"id"`
	ExternalID     *string       `json:"externalId"`
	UserName       *string       `json:"userName"`
	DisplayName    *string       `json:"displayName,omitempty"`
	Name           ScimUserName  `json:"name"`
	Emails         []ScimEmail   `json:"emails"`
	Active         bool          `json:"active"`
	Meta           ScimMeta      `json:"meta"`
	OrganizationID int64         `json:"organization_id,omitempty"`
	Operations     []interface{} `json:"operations,omitempty"`
	Groups         []interface{} `json:"groups,omitempty"`
}

type ScimUserName struct {
	GivenName  *string `json:"givenName"`
	FamilyName *string `json:"familyName"`
	Formatted  *string `json:"formatted,omitempty"`
}

type ScimEmail struct {
	Value   string `json:"value"`
	Primary bool   `json:"primary,omitempty"`
	Type    string `json:"type,omitempty"`
}

type ScimMeta struct {
	ResourceType string `json:"resourceType,omitempty"`
	Created      string `json:"created,omitempty"`
	LastModified string `json:"lastModified,omitempty"`
	Location     string `json:"location,omitempty"`
}

type ScimGroupList struct {
	Schemas      []string    `json:"schemas"`
	TotalResults int64       `json:"totalResults"`
	ItemsPerPage int64       `json:"itemsPerPage"`
	StartIndex   int64       `json:"startIndex"`
	Resources    []ScimGroup `json:"Resources"`
}

type ScimGroup struct {
	Schemas     []string          `json:"schemas"`
	ID          string            `json:"id"`
	ExternalID  *string           `json:"externalId,omitempty"`
	DisplayName string            `json:"displayName,omitempty"`
	Members     []ScimGroupMember `json:"members,omitempty"`
	Meta        ScimMeta          `json:"meta,omitempty"`
}

type ScimGroupMember struct {
	Value   string `json:"value,omitempty"`
	Ref     string `json:"$ref,omitempty"`
	Display string `json:"display,omitempty"`
}
