package github

type PullRequest struct {
	URL                 string            `json:"url"`
	ID                  int64             `json:"id"`
	NodeID              string            `json:"node_id"`
	HTMLURL             string            `json:"html_url"`
	DiffURL             string            `json:"diff_url"`
	PatchURL            string            `json:"patch_url"`
	IssueURL            string            `json:"issue_url"`
	CommitsURL          string            `json:"commits_url"`
	ReviewCommentsURL   string            `json:"review_comments_url"`
	ReviewCommentURL    string            `json:"review_comment_url"`
	CommentsURL         string            `json:"comments_url"`
	StatusesURL         string            `json:"statuses_url"`
	Number              int64             `json:"number"`
	State               string            `json:"state"`
	Locked              bool              `json:"locked"`
	Title               string            `json:"title"`
	User                *SimpleUser       `json:"user"`
	Body                *string           `json:"body"`
	Labels              []Label           `json:"labels"`
	Milestone           *Milestone        `json:"milestone"`
	ActiveLockReason    *string           `json:"active_lock_reason,omitempty"`
	CreatedAt           string            `json:"created_at"`
	UpdatedAt           string            `json:"updated_at"`
	ClosedAt            *string           `json:"closed_at"`
	MergedAt            *string           `json:"merged_at"`
	MergeCommitSHA      *string           `json:"merge_commit_sha"`
	Assignee            *SimpleUser       `json:"assignee"`
	Assignees           []SimpleUser      `json:"assignees,omitempty"`
	RequestedReviewers  []SimpleUser      `json:"requested_reviewers,omitempty"`
	RequestedTeams      []Team            `json:"requested_teams,omitempty"`
	Head                PullRequestBranch `json:"head"`
	Base                PullRequestBranch `json:"base"`
	Links               PullRequestLinks  `json:"_links"`
	AuthorAssociation   string            `json:"author_association"`
	AutoMerge           interface{}       `json:"auto_merge"`
	Draft               bool              `json:"draft,omitempty"`
	Merged              bool              `json:"merged,omitempty"`
	Mergeable           *bool             `json:"mergeable,omitempty"`
	Rebaseable          *bool             `json:"rebaseable,omitempty"`
	MergeableState      string            `json:"mergeable_state,omitempty"`
	MergedBy            *SimpleUser       `json:"merged_by,omitempty"`
	Comments            int64             `json:"comments,omitempty"`
	ReviewComments      int64             `json:"review_comments,omitempty"`
	MaintainerCanModify bool              `json:"maintainer_can_modify,omitempty"`
	Commits             int64             `json:"commits,omitempty"`
	Additions           int64             `json:"additions,omitempty"`
	Deletions           int64             `json:"deletions,omitempty"`
	ChangedFiles        int64             `json:"changed_files,omitempty"`
}

type PullRequestBranch struct {
	Label string      `json:"label"`
	Ref   string      `json:"ref"`
	Repo  *Repository `json:"repo"`
	SHA   string      `json:"sha"`
	User  *SimpleUser `json:"user"`
}

type PullRequestLinks struct {
	Comments       Href `json:"comments"`
	Commits        Href `json:"commits"`
	Statuses       Href `json:"statuses"`
	HTML           Href `json:"html"`
	Issue          Href `json:"issue"`
	ReviewComments Href `json:"review_comments"`
	ReviewComment  Href `json:"review_comment"`
	Self           Href `json:"self"`
}

type Href struct {
	Href string `json:"href"`
}

type PullRequestMergeResult struct {
	SHA     string `json:"sha"`
	Merged  bool   `json:"merged"`
	Message string `json:"message"`
}

type PullRequestReviewRequest struct {
	Users []SimpleUser `json:"users"`
	Teams []Team       `json:"teams"`
}

type PullRequestReview struct {
	ID                int64                  `json:"id"`
	NodeID            string                 `json:"node_id"`
	User              *SimpleUser            `json:"user"`
	Body              string                 `json:"body"`
	State             string                 `json:"state"`
	HTMLURL           string                 `json:"html_url"`
	PullRequestURL    string                 `json:"pull_request_url"`
	Links             PullRequestReviewLinks `json:"_links"`
	SubmittedAt       string                 `json:"submitted_at,omitempty"`
	CommitID          string                 `json:"commit_id"`
	BodyHTML          string                 `json:"body_html,omitempty"`
	BodyText          string                 `json:"body_text,omitempty"`
	AuthorAssociation string                 `json:"author_association"`
}

type PullRequestReviewLinks struct {
	HTML        Href `json:"html"`
	PullRequest Href `json:"pull_request"`
}

type PullRequestReviewComment struct {
	URL                 string                        `json:"url"`
	PullRequestReviewID *int64                        `json:"pull_request_review_id"`
	ID                  int64                         `json:"id"`
	NodeID              string                        `json:"node_id"`
	DiffHunk            string                        `json:"diff_hunk"`
	Path                string                        `json:"path"`
	Position            int64                         `json:"position"`
	OriginalPosition    int64                         `json:"original_position"`
	CommitID            string                        `json:"commit_id"`
	OriginalCommitID    string                        `json:"original_commit_id"`
	InReplyToID         int64                         `json:"in_reply_to_id,omitempty"`
	User                SimpleUser                    `json:"user"`
	Body                string                        `json:"body"`
	CreatedAt           string                        `json:"created_at"`
	UpdatedAt           string                        `json:"updated_at"`
	HTMLURL             string                        `json:"html_url"`
	PullRequestURL      string                        `json:"pull_request_url"`
	AuthorAssociation   string                        `json:"author_association"`
	Links               PullRequestReviewCommentLinks `json:"_links"`
	StartLine           *int64                        `json:"start_line,omitempty"`
	OriginalStartLine   *int64                        `json:"original_start_line,omitempty"`
	StartSide           *string                       `json:"start_side,omitempty"`
	Line                int64                         `json:"line,omitempty"`
	OriginalLine        int64                         `json:"original_line,omitempty"`
	Side                string                        `json:"side,omitempty"`
	Reactions           *Reactions                    `json:"reactions,omitempty"`
	BodyHTML            string                        `json:"body_html,omitempty"`
	BodyText            string                        `json:"body_text,omitempty"`
}

type PullRequestReviewCommentLinks struct {
	Self        Href `json:"self"`
	HTML        Href `json:"html"`
	PullRequest Href `json:"pull_request"`
}

type DiffEntry struct {
	SHA              string `json:"sha"`
	Filename         string `json:"filename"`
	Status           string `json:"status"`
	Additions        int64  `json:"additions"`
	Deletions        int64  `json:"deletions"`
	Changes          int64  `json:"changes"`
	BlobURL          string `json:"blob_url"`
	RawURL           string `json:"raw_url"`
	ContentsURL      string `json:"contents_url"`
	Patch            string `json:"patch,omitempty"`
	PreviousFilename string `json:"previous_filename,omitempty"`
}

type PullRequestUpdateBranch struct {
	Message string `json:"message,omitempty"`
	URL     string `json:"url,omitempty"`
}
