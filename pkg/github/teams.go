package github

type Team struct {
	ID              int64            `json:"id"`
	NodeID          string           `json:"node_id"`
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	Description     *string          `json:"description"`
	Privacy         string           `json:"privacy,omitempty"`
	Permission      string           `json:"permission"`
	Permissions     *TeamPermissions `json:"permissions,omitempty"`
	URL             string           `json:"url"`
	HTMLURL         string           `json:"html_url"`
	MembersURL      string           `json:"members_url"`
	RepositoriesURL string           `json:"repositories_url"`
	Parent          *TeamSimple      `json:"parent"`
}

type TeamSimple struct {
	ID              int64   `json:"id"`
	NodeID          string  `json:"node_id"`
	URL             string  `json:"url"`
	MembersURL      string  `json:"members_url"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	Permission      string  `json:"permission"`
	Privacy         string  `json:"privacy,omitempty"`
	HTMLURL         string  `json:"html_url"`
	RepositoriesURL string  `json:"repositories_url"`
	Slug            string  `json:"slug"`
	LdapDN          string  `json:"ldap_dn,omitempty"`
}

type TeamPermissions struct {
	Pull     bool `json:"pull"`
	Triage   bool `json:"triage"`
	Push     bool `json:"push"`
	Maintain bool `json:"maintain"`
	Admin    bool `json:"admin"`
}

type TeamFull struct {
	ID              int64            `json:"id"`
	NodeID          string           `json:"node_id"`
	URL             string           `json:"url"`
	HTMLURL         string           `json:"html_url"`
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	Description     *string          `json:"description"`
	Privacy         string           `json:"privacy,omitempty"`
	Permission      string           `json:"permission"`
	MembersURL      string           `json:"members_url"`
	RepositoriesURL string           `json:"repositories_url"`
	Parent          *TeamSimple      `json:"parent,omitempty"`
	MembersCount    int64            `json:"members_count"`
	ReposCount      int64            `json:"repos_count"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
	Organization    OrganizationFull `json:"organization"`
	LdapDN          string           `json:"ldap_dn,omitempty"`
}

type TeamMembership struct {
	URL   string `json:"url"`
	Role  string `json:"role"`
	State string `json:"state"`
}

type TeamDiscussion struct {
	Author        *SimpleUser `json:"author"`
	Body          string      `json:"body"`
	BodyHTML      string      `json:"body_html"`
	BodyVersion   string      `json:"body_version"`
	CommentsCount int64       `json:"comments_count"`
	CommentsURL   string      `json:"comments_url"`
	CreatedAt     string      `json:"created_at"`
	LastEditedAt  *string     `json:"last_edited_at"`
	HTMLURL       string      `json:"html_url"`
	NodeID        string      `json:"node_id"`
	Number        int64       `json:"number"`
	Pinned        bool        `json:"pinned"`
	Private       bool        `json:"private"`
	TeamURL       string      `json:"team_url"`
	Title         string      `json:"title"`
	UpdatedAt     string      `json:"updated_at"`
	URL           string      `json:"url"`
	Reactions     *Reactions  `json:"reactions,omitempty"`
}

type TeamDiscussionComment struct {
	Author        *SimpleUser `json:"author"`
	Body          string      `json:"body"`
	BodyHTML      string      `json:"body_html"`
	BodyVersion   string      `json:"body_version"`
	CreatedAt     string      `json:"created_at"`
	LastEditedAt  *string     `json:"last_edited_at"`
	DiscussionURL string      `json:"discussion_url"`
	HTMLURL       string      `json:"html_url"`
	NodeID        string      `json:"node_id"`
	Number        int64       `json:"number"`
	UpdatedAt     string      `json:"updated_at"`
	URL           string      `json:"url"`
	Reactions     *Reactions  `json:"reactions,omitempty"`
}

type TeamProject struct {
	OwnerURL               string                 `json:"owner_url"`
	URL                    string                 `json:"url"`
	HTMLURL                string                 `json:"html_url"`
	ColumnsURL             string                 `json:"columns_url"`
	ID                     int64                  `json:"id"`
	NodeID                 string                 `json:"node_id"`
	Name                   string                 `json:"name"`
	Body                   *string                `json:"body"`
	Number                 int64                  `json:"number"`
	State                  string                 `json:"state"`
	Creator                SimpleUser             `json:"creator"`
	CreatedAt              string                 `json:"created_at"`
	UpdatedAt              string                 `json:"updated_at"`
	OrganizationPermission string                 `json:"organization_permission,omitempty"`
	Private                bool                   `json:"private,omitempty"`
	Permissions            TeamProjectPermissions `json:"permissions"`
}

type TeamProjectPermissions struct {
	Read  bool `json:"read"`
	Write bool `json:"write"`
	Admin bool `json:"admin"`
}

type TeamRepository struct {
	Repository

	RoleName string `json:"role_name,omitempty"`
}

type GroupMapping struct {
	Groups []GroupMappingEntry `json:"groups,omitempty"`
}

type GroupMappingEntry struct {
	GroupID          string  `json:"group_id"`
	GroupName        string  `json:"group_name"`
	GroupDescription string  `json:"group_description"`
	Status           string  `json:"status,omitempty"`
	SyncedAt         *string `json:"synced_at,omitempty"`
}
