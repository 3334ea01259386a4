package github

type Gist struct {
	URL         string              `json:"url"`
	ForksURL    string              `json:"forks_url"`
	CommitsURL  string              `json:"commits_url"`
	ID          string              `json:"id"`
	NodeID      string              `json:"node_id"`
	GitPullURL  string              `json:"git_pull_url"`
	GitPushURL  string              `json:"git_push_url"`
	HTMLURL     string              `json:"html_url"`
	Files       map[string]GistFile `json:"files"`
	Public      bool                `json:"public"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
	Description *string             `json:"description"`
	Comments    int64               `json:"comments"`
	User        *SimpleUser         `json:"user"`
	CommentsURL string              `json:"comments_url"`
	Owner       *SimpleUser         `json:"owner,omitempty"`
	Truncated   bool                `json:"truncated,omitempty"`
	Forks       []interface{}       `json:"forks,omitempty"`
	History     []GistCommit        `json:"history,omitempty"`
}

type GistFile struct {
	Filename  string  `json:"filename,omitempty"`
	Type      string  `json:"type,omitempty"`
	Language  *string `json:"language,omitempty"`
	RawURL    string  `json:"raw_url,omitempty"`
	Size      int64   `json:"size,omitempty"`
	Truncated bool    `json:"truncated,omitempty"`
	Content   string  `json:"content,omitempty"`
}

type GistComment struct {
	ID                int64       `json:"id"`
	NodeID            string      `json:"node_id"`
	URL               string      `json:"url"`
	Body              string      `json:"body"`
	User              *SimpleUser `json:"user"`
	CreatedAt         string      `json:"created_at"`
	UpdatedAt         string      `json:"updated_at"`
	AuthorAssociation string      `json:"author_association"`
}

type GistCommit struct {
	URL          string           `json:"url"`
	Version      string           `json:"version"`
	User         *SimpleUser      `json:"user"`
	ChangeStatus GistChangeStatus `json:"change_status"`
	CommittedAt  string           `json:"committed_at"`
}

type GistChangeStatus struct {
	Total     int64 `json:"total,omitempty"`
	Additions int64 `json:"additions,omitempty"`
	Deletions int64 `json:"deletions,omitempty"`
}

type GistFork struct {
	ID        string      `json:"id"`
	URL       string      `json:"url"`
	User      *SimpleUser `json:"user"`
	CreatedAt string      `json:"created_at"`
	UpdatedAt string      `json:"updated_at"`
}
