package github

import (
	"bytes"
	"encoding/json"
)

type Issue struct {
	ID                    int64             `json:"id"`
	NodeID                string            `json:"node_id"`
	URL                   string            `json:"url"`
	RepositoryURL         string            `json:"repository_url"`
	LabelsURL             string            `json:"labels_url"`
	CommentsURL           string            `json:"comments_url"`
	EventsURL             string            `json:"events_url"`
	HTMLURL               string            `json:"html_url"`
	Number                int64             `json:"number"`
	State                 string            `json:"state"`
	Title                 string            `json:"title"`
	Body                  *string           `json:"body,omitempty"`
	User                  *SimpleUser       `json:"user"`
	Labels                []Label           `json:"labels"`
	Assignee              *SimpleUser       `json:"assignee"`
	Assignees             []SimpleUser      `json:"assignees,omitempty"`
	Milestone             *Milestone        `json:"milestone"`
	Locked                bool              `json:"locked"`
	ActiveLockReason      *string           `json:"active_lock_reason,omitempty"`
	Comments              int64             `json:"comments"`
	PullRequest           *IssuePullRequest `json:"pull_request,omitempty"`
	ClosedAt              *string           `json:"closed_at"`
	CreatedAt             string            `json:"created_at"`
	UpdatedAt             string            `json:"updated_at"`
	ClosedBy              *SimpleUser       `json:"closed_by,omitempty"`
	BodyHTML              string            `json:"body_html,omitempty"`
	BodyText              string            `json:"body_text,omitempty"`
	TimelineURL           string            `json:"timeline_url,omitempty"`
	Repository            *Repository       `json:"repository,omitempty"`
	PerformedViaGithubApp *Integration      `json:"performed_via_github_app,omitempty"`
	AuthorAssociation     string            `json:"author_association"`
	Reactions             *Reactions        `json:"reactions,omitempty"`
}

type IssuePullRequest struct {
	MergedAt *string `json:"merged_at,omitempty"`
	DiffURL  *string `json:"diff_url"`
	HTMLURL  *string `json:"html_url"`
	PatchURL *string `json:"patch_url"`
	URL      *string `json:"url"`
}

type Label struct {
	ID          int64   `json:"id"`
	NodeID      string  `json:"node_id"`
	URL         string  `json:"url"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       string  `json:"color"`
	Default     bool    `json:"default"`
}

// UnmarshalJSON also accepts a label given by its name only, as issue
// labels may be.
func (l *Label) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		var name string
		err := json.Unmarshal(data, &name)
		if err != nil {
			return err
		}
		*l = Label{Name: name}
		return nil
	}

	type label Label
	return json.Unmarshal(data, (*label)(l))
}

type Milestone struct {
	URL          string      `json:"url"`
	HTMLURL      string      `json:"html_url"`
	LabelsURL    string      `json:"labels_url"`
	ID           int64       `json:"id"`
	NodeID       string      `json:"node_id"`
	Number       int64       `json:"number"`
	State        string      `json:"state"`
	Title        string      `json:"title"`
	Description  *string     `json:"description"`
	Creator      *SimpleUser `json:"creator"`
	OpenIssues   int64       `json:"open_issues"`
	ClosedIssues int64       `json:"closed_issues"`
	CreatedAt    string      `json:"created_at"`
	UpdatedAt    string      `json:"updated_at"`
	ClosedAt     *string     `json:"closed_at"`
	DueOn        *string     `json:"due_on"`
}

type IssueComment struct {
	ID                    int64        `json:"id"`
	NodeID                string       `json:"node_id"`
	URL                   string       `json:"url"`
	Body                  string       `json:"body,omitempty"`
	BodyText              string       `json:"body_text,omitempty"`
	BodyHTML              string       `json:"body_html,omitempty"`
	HTMLURL               string       `json:"html_url"`
	User                  *SimpleUser  `json:"user"`
	CreatedAt             string       `json:"created_at"`
	UpdatedAt             string       `json:"updated_at"`
	IssueURL              string       `json:"issue_url"`
	AuthorAssociation     string       `json:"author_association"`
	PerformedViaGithubApp *Integration `json:"performed_via_github_app,omitempty"`
	Reactions             *Reactions   `json:"reactions,omitempty"`
}

type IssueEvent struct {
	ID                    int64                `json:"id"`
	NodeID                string               `json:"node_id"`
	URL                   string               `json:"url"`
	Actor                 *SimpleUser          `json:"actor"`
	Event                 string               `json:"event"`
	CommitID              *string              `json:"commit_id"`
	CommitURL             *string              `json:"commit_url"`
	CreatedAt             string               `json:"created_at"`
	Issue                 *Issue               `json:"issue,omitempty"`
	Label                 *IssueEventLabel     `json:"label,omitempty"`
	Assignee              *SimpleUser          `json:"assignee,omitempty"`
	Assigner              *SimpleUser          `json:"assigner,omitempty"`
	ReviewRequester       *SimpleUser          `json:"review_requester,omitempty"`
	RequestedReviewer     *SimpleUser          `json:"requested_reviewer,omitempty"`
	RequestedTeam         *Team                `json:"requested_team,omitempty"`
	DismissedReview       interface{}          `json:"dismissed_review,omitempty"`
	Milestone             *IssueEventMilestone `json:"milestone,omitempty"`
	ProjectCard           interface{}          `json:"project_card,omitempty"`
	Rename                *IssueEventRename    `json:"rename,omitempty"`
	AuthorAssociation     string               `json:"author_association,omitempty"`
	LockReason            *string              `json:"lock_reason,omitempty"`
	PerformedViaGithubApp *Integration         `json:"performed_via_github_app,omitempty"`
}

type IssueEventLabel struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

type IssueEventMilestone struct {
	Title string `json:"title"`
}

type IssueEventRename struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type TimelineEvent map[string]interface{}
