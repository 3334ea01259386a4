package github

type ActionsPermissions struct {
	EnabledOrganizations string `json:"enabled_organizations,omitempty"`
	EnabledRepositories  string `json:"enabled_repositories,omitempty"`
	Enabled              bool   `json:"enabled,omitempty"`
	AllowedActions       string `json:"allowed_actions,omitempty"`
	SelectedActionsURL   string `json:"selected_actions_url,omitempty"`
}

type SelectedActions struct {
	GithubOwnedAllowed bool     `json:"github_owned_allowed,omitempty"`
	VerifiedAllowed    bool     `json:"verified_allowed,omitempty"`
	PatternsAllowed    []string `json:"patterns_allowed,omitempty"`
}

type OrganizationList struct {
	TotalCount    int64          `json:"total_count"`
	Organizations []Organization `json:"organizations"`
}

type Artifact struct {
	ID                 int64   `json:"id"`
	NodeID             string  `json:"node_id"`
	Name               string  `json:"name"`
	SizeInBytes        int64   `json:"size_in_bytes"`
	URL                string  `json:"url"`
	ArchiveDownloadURL string  `json:"archive_download_url"`
	Expired            bool    `json:"expired"`
	CreatedAt          *string `json:"created_at"`
	ExpiresAt          *string `json:"expires_at"`
	UpdatedAt          *string `json:"updated_at"`
}

type ArtifactList struct {
	TotalCount int64      `json:"total_count"`
	Artifacts  []Artifact `json:"artifacts"`
}

type Job struct {
	ID              int64     `json:"id"`
	RunID           int64     `json:"run_id"`
	RunURL          string    `json:"run_url"`
	RunAttempt      int64     `json:"run_attempt,omitempty"`
	NodeID          string    `json:"node_id"`
	HeadSHA         string    `json:"head_sha"`
	URL             string    `json:"url"`
	HTMLURL         *string   `json:"html_url"`
	Status          string    `json:"status"`
	Conclusion      *string   `json:"conclusion"`
	StartedAt       string    `json:"started_at"`
	CompletedAt     *string   `json:"completed_at"`
	Name            string    `json:"name"`
	Steps           []JobStep `json:"steps,omitempty"`
	CheckRunURL     string    `json:"check_run_url"`
	Labels          []string  `json:"labels"`
	RunnerID        *int64    `json:"runner_id"`
	RunnerName      *string   `json:"runner_name"`
	RunnerGroupID   *int64    `json:"runner_group_id"`
	RunnerGroupName *string   `json:"runner_group_name"`
}

type JobStep struct {
	Status      string  `json:"status"`
	Conclusion  *string `json:"conclusion"`
	Name        string  `json:"name"`
	Number      int64   `json:"number"`
	StartedAt   *string `json:"started_at,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

type JobList struct {
	TotalCount int64 `json:"total_count"`
	Jobs       []Job `json:"jobs"`
}

type WorkflowRun struct {
	ID                 int64             `json:"id"`
	Name               *string           `json:"name,omitempty"`
	NodeID             string            `json:"node_id"`
	CheckSuiteID       int64             `json:"check_suite_id,omitempty"`
	CheckSuiteNodeID   string            `json:"check_suite_node_id,omitempty"`
	HeadBranch         *string           `json:"head_branch"`
	HeadSHA            string            `json:"head_sha"`
	RunNumber          int64             `json:"run_number"`
	RunAttempt         int64             `json:"run_attempt,omitempty"`
	Event              string            `json:"event"`
	Status             *string           `json:"status"`
	Conclusion         *string           `json:"conclusion"`
	WorkflowID         int64             `json:"workflow_id"`
	URL                string            `json:"url"`
	HTMLURL            string            `json:"html_url"`
	PullRequests       []interface{}     `json:"pull_requests"`
	CreatedAt          string            `json:"created_at"`
	UpdatedAt          string            `json:"updated_at"`
	RunStartedAt       string            `json:"run_started_at,omitempty"`
	JobsURL            string            `json:"jobs_url"`
	LogsURL            string            `json:"logs_url"`
	CheckSuiteURL      string            `json:"check_suite_url"`
	ArtifactsURL       string            `json:"artifacts_url"`
	CancelURL          string            `json:"cancel_url"`
	RerunURL           string            `json:"rerun_url"`
	PreviousAttemptURL *string           `json:"previous_attempt_url,omitempty"`
	WorkflowURL        string            `json:"workflow_url"`
	HeadCommit         *SimpleCommit     `json:"head_commit"`
	Repository         MinimalRepository `json:"repository"`
	HeadRepository     MinimalRepository `json:"head_repository"`
	HeadRepositoryID   int64             `json:"head_repository_id,omitempty"`
}

type SimpleCommit struct {
	ID        string   `json:"id"`
	TreeID    string   `json:"tree_id"`
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
	Author    *GitUser `json:"author"`
	Committer *GitUser `json:"committer"`
}

type WorkflowRunList struct {
	TotalCount   int64         `json:"total_count"`
	WorkflowRuns []WorkflowRun `json:"workflow_runs"`
}

type WorkflowRunUsage struct {
	Billable      map[string]interface{} `json:"billable"`
	RunDurationMs int64                  `json:"run_duration_ms,omitempty"`
}

type Workflow struct {
	ID        int64  `json:"id"`
	NodeID    string `json:"node_id"`
	Name      string `json:"name"`
	Path      string `json:"path"`
	State     string `json:"state"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	URL       string `json:"url"`
	HTMLURL   string `json:"html_url"`
	BadgeURL  string `json:"badge_url"`
	DeletedAt string `json:"deleted_at,omitempty"`
}

type WorkflowList struct {
	TotalCount int64      `json:"total_count"`
	Workflows  []Workflow `json:"workflows"`
}

type WorkflowUsage struct {
	Billable map[string]interface{} `json:"billable"`
}

type EnvironmentApproval struct {
	Environments []Environment `json:"environments"`
	State        string        `json:"state"`
	User         SimpleUser    `json:"user"`
	Comment      string        `json:"comment"`
}

type PendingDeployment struct {
	Environment           PendingDeploymentEnvironment `json:"environment"`
	WaitTimer             int64                        `json:"wait_timer"`
	WaitTimerStartedAt    *string                      `json:"wait_timer_started_at"`
	CurrentUserCanApprove bool                         `json:"current_user_can_approve"`
	Reviewers             []interface{}                `json:"reviewers"`
}

type PendingDeploymentEnvironment struct {
	ID      int64  `json:"id,omitempty"`
	NodeID  string `json:"node_id,omitempty"`
	Name    string `json:"name,omitempty"`
	URL     string `json:"url,omitempty"`
	HTMLURL string `json:"html_url,omitempty"`
}

type Runner struct {
	ID     int64         `json:"id"`
	Name   string        `json:"name"`
	Os     string        `json:"os"`
	Status string        `json:"status"`
	Busy   bool          `json:"busy"`
	Labels []RunnerLabel `json:"labels"`
}

type RunnerLabel struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

type RunnerList struct {
	TotalCount int64    `json:"total_count"`
	Runners    []Runner `json:"runners"`
}

type RunnerLabelList struct {
	TotalCount int64         `json:"total_count"`
	Labels     []RunnerLabel `json:"labels"`
}

type RunnerApplication struct {
	Os                string `json:"os"`
	Architecture      string `json:"architecture"`
	DownloadURL       string `json:"download_url"`
	Filename          string `json:"filename"`
	TempDownloadToken string `json:"temp_download_token,omitempty"`
	Sha256Checksum    string `json:"sha256_checksum,omitempty"`
}

type AuthenticationToken struct {
	Token               string                 `json:"token"`
	ExpiresAt           string                 `json:"expires_at"`
	Permissions         map[string]interface{} `json:"permissions,omitempty"`
	Repositories        []Repository           `json:"repositories,omitempty"`
	SingleFile          *string                `json:"single_file,omitempty"`
	RepositorySelection string                 `json:"repository_selection,omitempty"`
}

type RunnerGroup struct {
	ID                                int64  `json:"id"`
	Name                              string `json:"name"`
	Visibility                        string `json:"visibility"`
	Default                           bool   `json:"default"`
	SelectedRepositoriesURL           string `json:"selected_repositories_url,omitempty"`
	SelectedOrganizationsURL          string `json:"selected_organizations_url,omitempty"`
	RunnersURL                        string `json:"runners_url"`
	Inherited                         bool   `json:"inherited"`
	InheritedAllowsPublicRepositories bool   `json:"inherited_allows_public_repositories,omitempty"`
	AllowsPublicRepositories          bool   `json:"allows_public_repositories"`
}

type RunnerGroupList struct {
	TotalCount   int64         `json:"total_count"`
	RunnerGroups []RunnerGroup `json:"runner_groups"`
}

type ActionsSecret struct {
	Name                    string `json:"name"`
	CreatedAt               string `json:"created_at"`
	UpdatedAt               string `json:"updated_at"`
	Visibility              string `json:"visibility,omitempty"`
	SelectedRepositoriesURL string `json:"selected_repositories_url,omitempty"`
}

type ActionsSecretList struct {
	TotalCount int64           `json:"total_count"`
	Secrets    []ActionsSecret `json:"secrets"`
}

type ActionsPublicKey struct {
	KeyID     string `json:"key_id"`
	Key       string `json:"key"`
	ID        int64  `json:"id,omitempty"`
	URL       string `json:"url,omitempty"`
	Title     string `json:"title,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type MinimalRepositoryList struct {
	TotalCount   int64               `json:"total_count"`
	Repositories []MinimalRepository `json:"repositories"`
}
