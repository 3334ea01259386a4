package github

type Organization struct {
	Login            string  `json:"login"`
	ID               int64   `json:"id"`
	NodeID           string  `json:"node_id"`
	URL              string  `json:"url"`
	ReposURL         string  `json:"repos_url"`
	EventsURL        string  `json:"events_url"`
	HooksURL         string  `json:"hooks_url"`
	IssuesURL        string  `json:"issues_url"`
	MembersURL       string  `json:"members_url"`
	PublicMembersURL string  `json:"public_members_url"`
	AvatarURL        string  `json:"avatar_url"`
	Description      *string `json:"description"`
}

type OrganizationFull struct {
	Organization

	Name                                 string  `json:"name,omitempty"`
	Company                              string  `json:"company,omitempty"`
	Blog                                 string  `json:"blog,omitempty"`
	Location                             string  `json:"location,omitempty"`
	Email                                string  `json:"email,omitempty"`
	TwitterUsername                      *string `json:"twitter_username,omitempty"`
	IsVerified                           bool    `json:"is_verified,omitempty"`
	HasOrganizationProjects              bool    `json:"has_organization_projects"`
	HasRepositoryProjects                bool    `json:"has_repository_projects"`
	PublicRepos                          int64   `json:"public_repos"`
	PublicGists                          int64   `json:"public_gists"`
	Followers                            int64   `json:"followers"`
	Following                            int64   `json:"following"`
	HTMLURL                              string  `json:"html_url"`
	CreatedAt                            string  `json:"created_at"`
	UpdatedAt                            string  `json:"updated_at"`
	Type                                 string  `json:"type"`
	TotalPrivateRepos                    int64   `json:"total_private_repos,omitempty"`
	OwnedPrivateRepos                    int64   `json:"owned_private_repos,omitempty"`
	PrivateGists                         *int64  `json:"private_gists,omitempty"`
	DiskUsage                            *int64  `json:"disk_usage,omitempty"`
	Collaborators                        *int64  `json:"collaborators,omitempty"`
	BillingEmail                         *string `json:"billing_email,omitempty"`
	Plan                                 *Plan   `json:"plan,omitempty"`
	DefaultRepositoryPermission          *string `json:"default_repository_permission,omitempty"`
	MembersCanCreateRepositories         *bool   `json:"members_can_create_repositories,omitempty"`
	TwoFactorRequirementEnabled          *bool   `json:"two_factor_requirement_enabled,omitempty"`
	MembersAllowedRepositoryCreationType string  `json:"members_allowed_repository_creation_type,omitempty"`
	MembersCanCreatePublicRepositories   bool    `json:"members_can_create_public_repositories,omitempty"`
	MembersCanCreatePrivateRepositories  bool    `json:"members_can_create_private_repositories,omitempty"`
	MembersCanCreateInternalRepositories bool    `json:"members_can_create_internal_repositories,omitempty"`
	MembersCanCreatePages                bool    `json:"members_can_create_pages,omitempty"`
	MembersCanCreatePublicPages          bool    `json:"members_can_create_public_pages,omitempty"`
	MembersCanCreatePrivatePages         bool    `json:"members_can_create_private_pages,omitempty"`
}

type OrgMembership struct {
	URL             string                    `json:"url"`
	State           string                    `json:"state"`
	Role            string                    `json:"role"`
	OrganizationURL string                    `json:"organization_url"`
	Organization    Organization              `json:"organization"`
	User            *SimpleUser               `json:"user"`
	Permissions     *OrgMembershipPermissions `json:"permissions,omitempty"`
}

type OrgMembershipPermissions struct {
	CanCreateRepository bool `json:"can_create_repository"`
}

type OrganizationInvitation struct {
	ID                 int64      `json:"id"`
	Login              *string    `json:"login"`
	Email              *string    `json:"email"`
	Role               string     `json:"role"`
	CreatedAt          string     `json:"created_at"`
	FailedAt           *string    `json:"failed_at,omitempty"`
	FailedReason       *string    `json:"failed_reason,omitempty"`
	Inviter            SimpleUser `json:"inviter"`
	TeamCount          int64      `json:"team_count"`
	NodeID             string     `json:"node_id"`
	InvitationTeamsURL string     `json:"invitation_teams_url"`
}

type CredentialAuthorization struct {
	Login                     string   `json:"login"`
	CredentialID              int64    `json:"credential_id"`
	CredentialType            string   `json:"credential_type"`
	TokenLastEight            string   `json:"token_last_eight,omitempty"`
	CredentialAuthorizedAt    string   `json:"credential_authorized_at"`
	Scopes                    []string `json:"scopes,omitempty"`
	Fingerprint               string   `json:"fingerprint,omitempty"`
	CredentialAccessedAt      *string  `json:"credential_accessed_at"`
	AuthorizedCredentialID    *int64   `json:"authorized_credential_id,omitempty"`
	AuthorizedCredentialTitle *string  `json:"authorized_credential_title,omitempty"`
	AuthorizedCredentialNote  *string  `json:"authorized_credential_note,omitempty"`
}

type InstallationList struct {
	TotalCount    int64          `json:"total_count"`
	Installations []Installation `json:"installations"`
}

type OrgHook struct {
	ID            int64      `json:"id"`
	URL           string     `json:"url"`
	PingURL       string     `json:"ping_url"`
	DeliveriesURL string     `json:"deliveries_url,omitempty"`
	Name          string     `json:"name"`
	Events        []string   `json:"events"`
	Active        bool       `json:"active"`
	Config        HookConfig `json:"config"`
	UpdatedAt     string     `json:"updated_at"`
	CreatedAt     string     `json:"created_at"`
	Type          string     `json:"type"`
}

type HookConfig struct {
	URL         string      `json:"url,omitempty"`
	InsecureSsl interface{} `json:"insecure_ssl,omitempty"`
	ContentType string      `json:"content_type,omitempty"`
	Secret      string      `json:"secret,omitempty"`
}

type HookDeliveryItem struct {
	ID             int64   `json:"id"`
	Guid           string  `json:"guid"`
	DeliveredAt    string  `json:"delivered_at"`
	Redelivery     bool    `json:"redelivery"`
	Duration       float64 `json:"duration"`
	Status         string  `json:"status"`
	StatusCode     int64   `json:"status_code"`
	Event          string  `json:"event"`
	Action         *string `json:"action"`
	InstallationID *int64  `json:"installation_id"`
	RepositoryID   *int64  `json:"repository_id"`
}

type HookDelivery struct {
	HookDeliveryItem

	URL      string               `json:"url,omitempty"`
	Request  HookDeliveryRequest  `json:"request"`
	Response HookDeliveryResponse `json:"response"`
}

type HookDeliveryRequest struct {
	Headers map[string]interface{} `json:"headers"`
	Payload interface{}            `json:"payload"`
}

type HookDeliveryResponse struct {
	Headers map[string]interface{} `json:"headers"`
	Payload interface{}            `json:"payload"`
}
