package github

type CodeSearchResult struct {
	TotalCount        int64            `json:"total_count"`
	IncompleteResults bool             `json:"incomplete_results"`
	Items             []CodeSearchItem `json:"items"`
}

type CodeSearchItem struct {
	Name        string            `json:"name"`
	Path        string            `json:"path"`
	SHA         string            `json:"sha"`
	URL         string            `json:"url"`
	GitURL      string            `json:"git_url"`
	HTMLURL     string            `json:"html_url"`
	Repository  MinimalRepository `json:"repository"`
	Score       float64           `json:"score"`
	TextMatches []interface{}     `json:"text_matches,omitempty"`
}

type CommitSearchResult struct {
	TotalCount        int64              `json:"total_count"`
	IncompleteResults bool               `json:"incomplete_results"`
	Items             []CommitSearchItem `json:"items"`
}

type CommitSearchItem struct {
	URL         string            `json:"url"`
	SHA         string            `json:"sha"`
	HTMLURL     string            `json:"html_url"`
	CommentsURL string            `json:"comments_url"`
	Commit      CommitDetail      `json:"commit"`
	Author      *SimpleUser       `json:"author"`
	Committer   *GitUser          `json:"committer"`
	Parents     []CommitParent    `json:"parents"`
	Repository  MinimalRepository `json:"repository"`
	Score       float64           `json:"score"`
	NodeID      string            `json:"node_id"`
}

type IssueSearchResult struct {
	TotalCount        int64             `json:"total_count"`
	IncompleteResults bool              `json:"incomplete_results"`
	Items             []IssueSearchItem `json:"items"`
}

type IssueSearchItem struct {
	Issue

	Score       float64       `json:"score"`
	TextMatches []interface{} `json:"text_matches,omitempty"`
}

type LabelSearchResult struct {
	TotalCount        int64             `json:"total_count"`
	IncompleteResults bool              `json:"incomplete_results"`
	Items             []LabelSearchItem `json:"items"`
}

type LabelSearchItem struct {
	Label

	Score float64 `json:"score"`
}

type RepoSearchResult struct {
	TotalCount        int64            `json:"total_count"`
	IncompleteResults bool             `json:"incomplete_results"`
	Items             []RepoSearchItem `json:"items"`
}

type RepoSearchItem struct {
	Repository

	Score float64 `json:"score"`
}

type TopicSearchResult struct {
	TotalCount        int64             `json:"total_count"`
	IncompleteResults bool              `json:"incomplete_results"`
	Items             []TopicSearchItem `json:"items"`
}

type TopicSearchItem struct {
	Name             string  `json:"name"`
	DisplayName      *string `json:"display_name"`
	ShortDescription *string `json:"short_description"`
	Description      *string `json:"description"`
	CreatedBy        *string `json:"created_by"`
	Released         *string `json:"released"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
	Featured         bool    `json:"featured"`
	Curated          bool    `json:"curated"`
	Score            float64 `json:"score"`
}

type UserSearchResult struct {
	TotalCount        int64            `json:"total_count"`
	IncompleteResults bool             `json:"incomplete_results"`
	Items             []UserSearchItem `json:"items"`
}

type UserSearchItem struct {
	SimpleUser

	Score float64 `json:"score"`
}
