package github

type Project struct {
	OwnerURL               string      `json:"owner_url"`
	URL                    string      `json:"url"`
	HTMLURL                string      `json:"html_url"`
	ColumnsURL             string      `json:"columns_url"`
	ID                     int64       `json:"id"`
	NodeID                 string      `json:"node_id"`
	Name                   string      `json:"name"`
	Body                   *string     `json:"body"`
	Number                 int64       `json:"number"`
	State                  string      `json:"state"`
	Creator                *SimpleUser `json:"creator"`
	CreatedAt              string      `json:"created_at"`
	UpdatedAt              string      `json:"updated_at"`
	OrganizationPermission string      `json:"organization_permission,omitempty"`
	Private                bool        `json:"private,omitempty"`
}

type ProjectCard struct {
	URL        string      `json:"url"`
	ID         int64       `json:"id"`
	NodeID     string      `json:"node_id"`
	Note       *string     `json:"note"`
	Creator    *SimpleUser `json:"creator"`
	CreatedAt  string      `json:"created_at"`
	UpdatedAt  string      `json:"updated_at"`
	Archived   bool        `json:"archived,omitempty"`
	ColumnName string      `json:"column_name,omitempty"`
	ProjectID  string      `json:"project_id,omitempty"`
	ColumnURL  string      `json:"column_url"`
	ContentURL string      `json:"content_url,omitempty"`
	ProjectURL string      `json:"project_url"`
}

type ProjectColumn struct {
	URL        string `json:"url"`
	ProjectURL string `json:"project_url"`
	CardsURL   string `json:"cards_url"`
	ID         int64  `json:"id"`
	NodeID     string `json:"node_id"`
	Name       string `json:"name"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type ProjectCollaboratorPermission struct {
	Permission string      `json:"permission"`
	User       *SimpleUser `json:"user"`
}
