package github

type Repository struct {
	ID                  int64          `json:"id"`
	NodeID              string         `json:"node_id"`
	Name                string         `json:"name"`
	FullName            string         `json:"full_name"`
	License             *LicenseSimple `json:"license"`
	Forks               int64          `json:"forks"`
	Permissions         *Permissions   `json:"permissions,omitempty"`
	Owner               SimpleUser     `json:"owner"`
	Private             bool           `json:"private"`
	HTMLURL             string         `json:"html_url"`
	Description         *string        `json:"description"`
	Fork                bool           `json:"fork"`
	URL                 string         `json:"url"`
	ArchiveURL          string         `json:"archive_url"`
	AssigneesURL        string         `json:"assignees_url"`
	BlobsURL            string         `json:"blobs_url"`
	BranchesURL         string         `json:"branches_url"`
	CollaboratorsURL    string         `json:"collaborators_url"`
	CommentsURL         string         `json:"comments_url"`
	CommitsURL          string         `json:"commits_url"`
	CompareURL          string         `json:"compare_url"`
	ContentsURL         string         `json:"contents_url"`
	ContributorsURL     string         `json:"contributors_url"`
	DeploymentsURL      string         `json:"deployments_url"`
	DownloadsURL        string         `json:"downloads_url"`
	EventsURL           string         `json:"events_url"`
	ForksURL            string         `json:"forks_url"`
	GitCommitsURL       string         `json:"git_commits_url"`
	GitRefsURL          string         `json:"git_refs_url"`
	GitTagsURL          string         `json:"git_tags_url"`
	GitURL              string         `json:"git_url"`
	IssueCommentURL     string         `json:"issue_comment_url"`
	IssueEventsURL      string         `json:"issue_events_url"`
	IssuesURL           string         `json:"issues_url"`
	KeysURL             string         `json:"keys_url"`
	LabelsURL           string         `json:"labels_url"`
	LanguagesURL        string         `json:"languages_url"`
	MergesURL           string         `json:"merges_url"`
	MilestonesURL       string         `json:"milestones_url"`
	NotificationsURL    string         `json:"notifications_url"`
	PullsURL            string         `json:"pulls_url"`
	ReleasesURL         string         `json:"releases_url"`
	SSHURL              string         `json:"ssh_url"`
	StargazersURL       string         `json:"stargazers_url"`
	StatusesURL         string         `json:"statuses_url"`
	SubscribersURL      string         `json:"subscribers_url"`
	SubscriptionURL     string         `json:"subscription_url"`
	TagsURL             string         `json:"tags_url"`
	TeamsURL            string         `json:"teams_url"`
	TreesURL            string         `json:"trees_url"`
	CloneURL            string         `json:"clone_url"`
	MirrorURL           *string        `json:"mirror_url"`
	HooksURL            string         `json:"hooks_url"`
	SVNURL              string         `json:"svn_url"`
	Homepage            *string        `json:"homepage"`
	Language            *string        `json:"language"`
	ForksCount          int64          `json:"forks_count"`
	StargazersCount     int64          `json:"stargazers_count"`
	WatchersCount       int64          `json:"watchers_count"`
	Size                int64          `json:"size"`
	DefaultBranch       string         `json:"default_branch"`
	OpenIssuesCount     int64          `json:"open_issues_count"`
	IsTemplate          bool           `json:"is_template,omitempty"`
	Topics              []string       `json:"topics,omitempty"`
	HasIssues           bool           `json:"has_issues"`
	HasProjects         bool           `json:"has_projects"`
	HasWiki             bool           `json:"has_wiki"`
	HasPages            bool           `json:"has_pages"`
	HasDownloads        bool           `json:"has_downloads"`
	Archived            bool           `json:"archived"`
	Disabled            bool           `json:"disabled"`
	Visibility          string         `json:"visibility,omitempty"`
	PushedAt            *string        `json:"pushed_at"`
	CreatedAt           *string        `json:"created_at"`
	UpdatedAt           *string        `json:"updated_at"`
	AllowRebaseMerge    bool           `json:"allow_rebase_merge,omitempty"`
	AllowSquashMerge    bool           `json:"allow_squash_merge,omitempty"`
	AllowAutoMerge      bool           `json:"allow_auto_merge,omitempty"`
	DeleteBranchOnMerge bool           `json:"delete_branch_on_merge,omitempty"`
	AllowMergeCommit    bool           `json:"allow_merge_commit,omitempty"`
	AllowForking        bool           `json:"allow_forking,omitempty"`
	SubscribersCount    int64          `json:"subscribers_count,omitempty"`
	NetworkCount        int64          `json:"network_count,omitempty"`
	OpenIssues          int64          `json:"open_issues"`
	Watchers            int64          `json:"watchers"`
	MasterBranch        string         `json:"master_branch,omitempty"`
	StarredAt           string         `json:"starred_at,omitempty"`
	TemplateRepository  *Repository    `json:"template_repository,omitempty"`
}

type MinimalRepository struct {
	ID               int64          `json:"id"`
	NodeID           string         `json:"node_id"`
	Name             string         `json:"name"`
	FullName         string         `json:"full_name"`
	Owner            SimpleUser     `json:"owner"`
	Private          bool           `json:"private"`
	HTMLURL          string         `json:"html_url"`
	Description      *string        `json:"description"`
	Fork             bool           `json:"fork"`
	URL              string         `json:"url"`
	ArchiveURL       string         `json:"archive_url"`
	AssigneesURL     string         `json:"assignees_url"`
	BlobsURL         string         `json:"blobs_url"`
	BranchesURL      string         `json:"branches_url"`
	CollaboratorsURL string         `json:"collaborators_url"`
	CommentsURL      string         `json:"comments_url"`
	CommitsURL       string         `json:"commits_url"`
	CompareURL       string         `json:"compare_url"`
	ContentsURL      string         `json:"contents_url"`
	ContributorsURL  string         `json:"contributors_url"`
	DeploymentsURL   string         `json:"deployments_url"`
	DownloadsURL     string         `json:"downloads_url"`
	EventsURL        string         `json:"events_url"`
	ForksURL         string         `json:"forks_url"`
	GitCommitsURL    string         `json:"git_commits_url"`
	GitRefsURL       string         `json:"git_refs_url"`
	GitTagsURL       string         `json:"git_tags_url"`
	GitURL           string         `json:"git_url,omitempty"`
	IssueCommentURL  string         `json:"issue_comment_url"`
	IssueEventsURL   string         `json:"issue_events_url"`
	IssuesURL        string         `json:"issues_url"`
	KeysURL          string         `json:"keys_url"`
	LabelsURL        string         `json:"labels_url"`
	LanguagesURL     string         `json:"languages_url"`
	MergesURL        string         `json:"merges_url"`
	MilestonesURL    string         `json:"milestones_url"`
	NotificationsURL string         `json:"notifications_url"`
	PullsURL         string         `json:"pulls_url"`
	ReleasesURL      string         `json:"releases_url"`
	SSHURL           string         `json:"ssh_url,omitempty"`
	StargazersURL    string         `json:"stargazers_url"`
	StatusesURL      string         `json:"statuses_url"`
	SubscribersURL   string         `json:"subscribers_url"`
	SubscriptionURL  string         `json:"subscription_url"`
	TagsURL          string         `json:"tags_url"`
	TeamsURL         string         `json:"teams_url"`
	TreesURL         string         `json:"trees_url"`
	CloneURL         string         `json:"clone_url,omitempty"`
	MirrorURL        *string        `json:"mirror_url,omitempty"`
	HooksURL         string         `json:"hooks_url"`
	SVNURL           string         `json:"svn_url,omitempty"`
	Homepage         *string        `json:"homepage,omitempty"`
	Language         *string        `json:"language,omitempty"`
	ForksCount       int64          `json:"forks_count,omitempty"`
	StargazersCount  int64          `json:"stargazers_count,omitempty"`
	WatchersCount    int64          `json:"watchers_count,omitempty"`
	Size             int64          `json:"size,omitempty"`
	DefaultBranch    string         `json:"default_branch,omitempty"`
	OpenIssuesCount  int64          `json:"open_issues_count,omitempty"`
	IsTemplate       bool           `json:"is_template,omitempty"`
	Topics           []string       `json:"topics,omitempty"`
	HasIssues        bool           `json:"has_issues,omitempty"`
	HasProjects      bool           `json:"has_projects,omitempty"`
	HasWiki          bool           `json:"has_wiki,omitempty"`
	HasPages         bool           `json:"has_pages,omitempty"`
	HasDownloads     bool           `json:"has_downloads,omitempty"`
	Archived         bool           `json:"archived,omitempty"`
	Disabled         bool           `json:"disabled,omitempty"`
	Visibility       string         `json:"visibility,omitempty"`
	PushedAt         *string        `json:"pushed_at,omitempty"`
	CreatedAt        *string        `json:"created_at,omitempty"`
	UpdatedAt        *string        `json:"updated_at,omitempty"`
	Permissions      *Permissions   `json:"permissions,omitempty"`
	License          *LicenseSimple `json:"license,omitempty"`
	Forks            int64          `json:"forks,omitempty"`
	OpenIssues       int64          `json:"open_issues,omitempty"`
	Watchers         int64          `json:"watchers,omitempty"`
}

type FullRepository struct {
	Repository

	Organization        *SimpleUser `json:"organization,omitempty"`
	Parent              *Repository `json:"parent,omitempty"`
	Source              *Repository `json:"source,omitempty"`
	SecurityAndAnalysis interface{} `json:"security_and_analysis,omitempty"`
}

type Permissions struct {
	Admin    bool `json:"admin"`
	Maintain bool `json:"maintain,omitempty"`
	Push     bool `json:"push"`
	Triage   bool `json:"triage,omitempty"`
	Pull     bool `json:"pull"`
}

type LicenseSimple struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	URL     *string `json:"url"`
	SpdxID  *string `json:"spdx_id"`
	NodeID  string  `json:"node_id"`
	HTMLURL string  `json:"html_url,omitempty"`
}

type License struct {
	LicenseSimple

	Description    string   `json:"description"`
	Implementation string   `json:"implementation"`
	Permissions    []string `json:"permissions"`
	Conditions     []string `json:"conditions"`
	Limitations    []string `json:"limitations"`
	Body           string   `json:"body"`
	Featured       bool     `json:"featured"`
}

type LicenseContent struct {
	Name        string         `json:"name"`
	Path        string         `json:"path"`
	SHA         string         `json:"sha"`
	Size        int64          `json:"size"`
	URL         string         `json:"url"`
	HTMLURL     *string        `json:"html_url"`
	GitURL      *string        `json:"git_url"`
	DownloadURL *string        `json:"download_url"`
	Type        string         `json:"type"`
	Content     string         `json:"content"`
	Encoding    string         `json:"encoding"`
	Links       Link           `json:"_links"`
	License     *LicenseSimple `json:"license"`
}

type Link struct {
	Git  *string `json:"git"`
	HTML *string `json:"html"`
	Self string  `json:"self"`
}

type BranchShort struct {
	Name      string            `json:"name"`
	Commit    BranchShortCommit `json:"commit"`
	Protected bool              `json:"protected"`
}

type BranchShortCommit struct {
	SHA string `json:"sha"`
	URL string `json:"url"`
}

type BranchWithProtection struct {
	Name                         string           `json:"name"`
	Commit                       Commit           `json:"commit"`
	Links                        BranchLinks      `json:"_links"`
	Protected                    bool             `json:"protected"`
	Protection                   BranchProtection `json:"protection"`
	ProtectionURL                string           `json:"protection_url"`
	Pattern                      string           `json:"pattern,omitempty"`
	RequiredApprovingReviewCount int64            `json:"required_approving_review_count,omitempty"`
}

type BranchLinks struct {
	HTML string `json:"html"`
	Self string `json:"self"`
}

type BranchProtection struct {
	URL                            string                            `json:"url,omitempty"`
	Enabled                        bool                              `json:"enabled,omitempty"`
	RequiredStatusChecks           *StatusCheckPolicy                `json:"required_status_checks,omitempty"`
	EnforceAdmins                  *ProtectedBranchAdminEnforced     `json:"enforce_admins,omitempty"`
	RequiredPullRequestReviews     *ProtectedBranchPullRequestReview `json:"required_pull_request_reviews,omitempty"`
	Restrictions                   *BranchRestrictionPolicy          `json:"restrictions,omitempty"`
	RequiredLinearHistory          *EnabledSetting                   `json:"required_linear_history,omitempty"`
	AllowForcePushes               *EnabledSetting                   `json:"allow_force_pushes,omitempty"`
	AllowDeletions                 *EnabledSetting                   `json:"allow_deletions,omitempty"`
	RequiredConversationResolution *EnabledSetting                   `json:"required_conversation_resolution,omitempty"`
	Name                           string                            `json:"name,omitempty"`
	ProtectionURL                  string                            `json:"protection_url,omitempty"`
	RequiredSignatures             *ProtectedBranchAdminEnforced     `json:"required_signatures,omitempty"`
}

type EnabledSetting struct {
	Enabled bool `json:"enabled"`
}

type StatusCheckPolicy struct {
	URL         string   `json:"url"`
	Strict      bool     `json:"strict"`
	Contexts    []string `json:"contexts"`
	ContextsURL string   `json:"contexts_url"`
}

type ProtectedBranchAdminEnforced struct {
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

type ProtectedBranchPullRequestReview struct {
	URL                          string      `json:"url,omitempty"`
	DismissalRestrictions        interface{} `json:"dismissal_restrictions,omitempty"`
	DismissStaleReviews          bool        `json:"dismiss_stale_reviews"`
	RequireCodeOwnerReviews      bool        `json:"require_code_owner_reviews"`
	RequiredApprovingReviewCount int64       `json:"required_approving_review_count,omitempty"`
}

type BranchRestrictionPolicy struct {
	URL      string        `json:"url"`
	UsersURL string        `json:"users_url"`
	TeamsURL string        `json:"teams_url"`
	AppsURL  string        `json:"apps_url"`
	Users    []SimpleUser  `json:"users"`
	Teams    []Team        `json:"teams"`
	Apps     []Integration `json:"apps"`
}

type Commit struct {
	URL         string         `json:"url"`
	SHA         string         `json:"sha"`
	NodeID      string         `json:"node_id"`
	HTMLURL     string         `json:"html_url"`
	CommentsURL string         `json:"comments_url"`
	Commit      CommitDetail   `json:"commit"`
	Author      *SimpleUser    `json:"author"`
	Committer   *SimpleUser    `json:"committer"`
	Parents     []CommitParent `json:"parents"`
	Stats       *CommitStats   `json:"stats,omitempty"`
	Files       []DiffEntry    `json:"files,omitempty"`
}

type CommitDetail struct {
	URL          string        `json:"url"`
	Author       *GitUser      `json:"author"`
	Committer    *GitUser      `json:"committer"`
	Message      string        `json:"message"`
	CommentCount int64         `json:"comment_count"`
	Tree         CommitTree    `json:"tree"`
	Verification *Verification `json:"verification,omitempty"`
}

type CommitTree struct {
	SHA string `json:"sha"`
	URL string `json:"url"`
}

type CommitParent struct {
	SHA     string `json:"sha"`
	URL     string `json:"url"`
	HTMLURL string `json:"html_url,omitempty"`
}

type CommitStats struct {
	Additions int64 `json:"additions"`
	Deletions int64 `json:"deletions"`
	Total     int64 `json:"total"`
}

type CommitComparison struct {
	URL             string      `json:"url"`
	HTMLURL         string      `json:"html_url"`
	PermalinkURL    string      `json:"permalink_url"`
	DiffURL         string      `json:"diff_url"`
	PatchURL        string      `json:"patch_url"`
	BaseCommit      Commit      `json:"base_commit"`
	MergeBaseCommit Commit      `json:"merge_base_commit"`
	Status          string      `json:"status"`
	AheadBy         int64       `json:"ahead_by"`
	BehindBy        int64       `json:"behind_by"`
	TotalCommits    int64       `json:"total_commits"`
	Commits         []Commit    `json:"commits"`
	Files           []DiffEntry `json:"files,omitempty"`
}

type BranchWhereHead struct {
	Name      string            `json:"name"`
	Commit    BranchShortCommit `json:"commit"`
	Protected bool              `json:"protected"`
}

type CommitComment struct {
	HTMLURL           string      `json:"html_url"`
	URL               string      `json:"url"`
	ID                int64       `json:"id"`
	NodeID            string      `json:"node_id"`
	Body              string      `json:"body"`
	Path              *string     `json:"path"`
	Position          *int64      `json:"position"`
	Line              *int64      `json:"line"`
	CommitID          string      `json:"commit_id"`
	User              *SimpleUser `json:"user"`
	CreatedAt         string      `json:"created_at"`
	UpdatedAt         string      `json:"updated_at"`
	AuthorAssociation string      `json:"author_association"`
	Reactions         *Reactions  `json:"reactions,omitempty"`
}

type CombinedCommitStatus struct {
	State      string               `json:"state"`
	Statuses   []SimpleCommitStatus `json:"statuses"`
	SHA        string               `json:"sha"`
	TotalCount int64                `json:"total_count"`
	Repository MinimalRepository    `json:"repository"`
	CommitURL  string               `json:"commit_url"`
	URL        string               `json:"url"`
}

type SimpleCommitStatus struct {
	Description *string `json:"description"`
	ID          int64   `json:"id"`
	NodeID      string  `json:"node_id"`
	State       string  `json:"state"`
	Context     string  `json:"context"`
	TargetURL   *string `json:"target_url"`
	Required    *bool   `json:"required,omitempty"`
	AvatarURL   *string `json:"avatar_url"`
	URL         string  `json:"url"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type Status struct {
	URL         string      `json:"url"`
	AvatarURL   *string     `json:"avatar_url"`
	ID          int64       `json:"id"`
	NodeID      string      `json:"node_id"`
	State       string      `json:"state"`
	Description *string     `json:"description"`
	TargetURL   *string     `json:"target_url"`
	Context     string      `json:"context"`
	CreatedAt   string      `json:"created_at"`
	UpdatedAt   string      `json:"updated_at"`
	Creator     *SimpleUser `json:"creator"`
}

type CommunityProfile struct {
	HealthPercentage      int64                 `json:"health_percentage"`
	Description           *string               `json:"description"`
	Documentation         *string               `json:"documentation"`
	Files                 CommunityProfileFiles `json:"files"`
	UpdatedAt             *string               `json:"updated_at"`
	ContentReportsEnabled bool                  `json:"content_reports_enabled,omitempty"`
}

type CommunityProfileFiles struct {
	CodeOfConduct       *CodeOfConductSimple `json:"code_of_conduct"`
	CodeOfConductFile   *CommunityHealthFile `json:"code_of_conduct_file,omitempty"`
	License             *LicenseSimple       `json:"license"`
	Contributing        *CommunityHealthFile `json:"contributing"`
	Readme              *CommunityHealthFile `json:"readme"`
	IssueTemplate       *CommunityHealthFile `json:"issue_template"`
	PullRequestTemplate *CommunityHealthFile `json:"pull_request_template"`
}

type CommunityHealthFile struct {
	URL     string `json:"url"`
	HTMLURL string `json:"html_url"`
}

type ContentFile struct {
	Type            string  `json:"type"`
	Encoding        string  `json:"encoding"`
	Size            int64   `json:"size"`
	Name            string  `json:"name"`
	Path            string  `json:"path"`
	Content         string  `json:"content"`
	SHA             string  `json:"sha"`
	URL             string  `json:"url"`
	GitURL          *string `json:"git_url"`
	HTMLURL         *string `json:"html_url"`
	DownloadURL     *string `json:"download_url"`
	Links           Link    `json:"_links"`
	Target          string  `json:"target,omitempty"`
	SubmoduleGitURL string  `json:"submodule_git_url,omitempty"`
}

type FileCommit struct {
	Content *ContentFile     `json:"content"`
	Commit  FileCommitDetail `json:"commit"`
}

type FileCommitDetail struct {
	SHA          string         `json:"sha,omitempty"`
	NodeID       string         `json:"node_id,omitempty"`
	URL          string         `json:"url,omitempty"`
	HTMLURL      string         `json:"html_url,omitempty"`
	Author       *GitUser       `json:"author,omitempty"`
	Committer    *GitUser       `json:"committer,omitempty"`
	Message      string         `json:"message,omitempty"`
	Tree         *CommitTree    `json:"tree,omitempty"`
	Parents      []CommitParent `json:"parents,omitempty"`
	Verification *Verification  `json:"verification,omitempty"`
}

type Contributor struct {
	Login         string  `json:"login,omitempty"`
	ID            int64   `json:"id,omitempty"`
	NodeID        string  `json:"node_id,omitempty"`
	AvatarURL     string  `json:"avatar_url,omitempty"`
	GravatarID    *string `json:"gravatar_id,omitempty"`
	URL           string  `json:"url,omitempty"`
	HTMLURL       string  `json:"html_url,omitempty"`
	Type          string  `json:"type"`
	SiteAdmin     bool    `json:"site_admin,omitempty"`
	Contributions int64   `json:"contributions"`
	Email         string  `json:"email,omitempty"`
	Name          string  `json:"name,omitempty"`
}

type Deployment struct {
	URL                   string       `json:"url"`
	ID                    int64        `json:"id"`
	NodeID                string       `json:"node_id"`
	SHA                   string       `json:"sha"`
	Ref                   string       `json:"ref"`
	Task                  string       `json:"task"`
	Payload               interface{}  `json:"payload"`
	OriginalEnvironment   string       `json:"original_environment,omitempty"`
	Environment           string       `json:"environment"`
	Description           *string      `json:"description"`
	Creator               *SimpleUser  `json:"creator"`
	CreatedAt             string       `json:"created_at"`
	UpdatedAt             string       `json:"updated_at"`
	StatusesURL           string       `json:"statuses_url"`
	RepositoryURL         string       `json:"repository_url"`
	TransientEnvironment  bool         `json:"transient_environment,omitempty"`
	ProductionEnvironment bool         `json:"production_environment,omitempty"`
	PerformedViaGithubApp *Integration `json:"performed_via_github_app,omitempty"`
}

type DeploymentStatus struct {
	URL                   string       `json:"url"`
	ID                    int64        `json:"id"`
	NodeID                string       `json:"node_id"`
	State                 string       `json:"state"`
	Creator               *SimpleUser  `json:"creator"`
	Description           string       `json:"description"`
	Environment           string       `json:"environment,omitempty"`
	TargetURL             string       `json:"target_url"`
	CreatedAt             string       `json:"created_at"`
	UpdatedAt             string       `json:"updated_at"`
	DeploymentURL         string       `json:"deployment_url"`
	RepositoryURL         string       `json:"repository_url"`
	EnvironmentURL        string       `json:"environment_url,omitempty"`
	LogURL                string       `json:"log_url,omitempty"`
	PerformedViaGithubApp *Integration `json:"performed_via_github_app,omitempty"`
}

type EnvironmentList struct {
	TotalCount   int64         `json:"total_count,omitempty"`
	Environments []Environment `json:"environments,omitempty"`
}

type Environment struct {
	ID                     int64         `json:"id"`
	NodeID                 string        `json:"node_id"`
	Name                   string        `json:"name"`
	URL                    string        `json:"url"`
	HTMLURL                string        `json:"html_url"`
	CreatedAt              string        `json:"created_at"`
	UpdatedAt              string        `json:"updated_at"`
	ProtectionRules        []interface{} `json:"protection_rules,omitempty"`
	DeploymentBranchPolicy interface{}   `json:"deployment_branch_policy,omitempty"`
}

type Hook struct {
	Type          string       `json:"type"`
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Active        bool         `json:"active"`
	Events        []string     `json:"events"`
	Config        HookConfig   `json:"config"`
	UpdatedAt     string       `json:"updated_at"`
	CreatedAt     string       `json:"created_at"`
	URL           string       `json:"url"`
	TestURL       string       `json:"test_url"`
	PingURL       string       `json:"ping_url"`
	DeliveriesURL string       `json:"deliveries_url,omitempty"`
	LastResponse  HookResponse `json:"last_response"`
}

type HookResponse struct {
	Code    *int64  `json:"code"`
	Status  *string `json:"status"`
	Message *string `json:"message"`
}

type RepositoryInvitation struct {
	ID          int64             `json:"id"`
	Repository  MinimalRepository `json:"repository"`
	Invitee     *SimpleUser       `json:"invitee"`
	Inviter     *SimpleUser       `json:"inviter"`
	Permissions string            `json:"permissions"`
	CreatedAt   string            `json:"created_at"`
	Expired     bool              `json:"expired,omitempty"`
	URL         string            `json:"url"`
	HTMLURL     string            `json:"html_url"`
	NodeID      string            `json:"node_id"`
}

type DeployKey struct {
	ID        int64  `json:"id"`
	Key       string `json:"key"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Verified  bool   `json:"verified"`
	CreatedAt string `json:"created_at"`
	ReadOnly  bool   `json:"read_only"`
}

type Languages map[string]int64

type MergedUpstream struct {
	Message    string `json:"message,omitempty"`
	MergeType  string `json:"merge_type,omitempty"`
	BaseBranch string `json:"base_branch,omitempty"`
}

type Page struct {
	URL                       string       `json:"url"`
	Status                    *string      `json:"status"`
	Cname                     *string      `json:"cname"`
	ProtectedDomainState      *string      `json:"protected_domain_state,omitempty"`
	PendingDomainUnverifiedAt *string      `json:"pending_domain_unverified_at,omitempty"`
	Custom404                 bool         `json:"custom_404"`
	HTMLURL                   string       `json:"html_url,omitempty"`
	Source                    *PagesSource `json:"source,omitempty"`
	Public                    bool         `json:"public"`
	HttpsCertificate          interface{}  `json:"https_certificate,omitempty"`
	HttpsEnforced             bool         `json:"https_enforced,omitempty"`
}

type PagesSource struct {
	Branch string `json:"branch"`
	Path   string `json:"path"`
}

type PageBuild struct {
	URL       string         `json:"url"`
	Status    string         `json:"status"`
	Error     PageBuildError `json:"error"`
	Pusher    *SimpleUser    `json:"pusher"`
	Commit    string         `json:"commit"`
	Duration  int64          `json:"duration"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

type PageBuildError struct {
	Message *string `json:"message"`
}

type PageBuildStatus struct {
	URL    string `json:"url"`
	Status string `json:"status"`
}

type PagesHealthCheck struct {
	Domain    interface{} `json:"domain,omitempty"`
	AltDomain interface{} `json:"alt_domain,omitempty"`
}

type Release struct {
	URL             string         `json:"url"`
	HTMLURL         string         `json:"html_url"`
	AssetsURL       string         `json:"assets_url"`
	UploadURL       string         `json:"upload_url"`
	TarballURL      *string        `json:"tarball_url"`
	ZipballURL      *string        `json:"zipball_url"`
	ID              int64          `json:"id"`
	NodeID          string         `json:"node_id"`
	TagName         string         `json:"tag_name"`
	TargetCommitish string         `json:"target_commitish"`
	Name            *string        `json:"name"`
	Body            *string        `json:"body,omitempty"`
	Draft           bool           `json:"draft"`
	Prerelease      bool           `json:"prerelease"`
	CreatedAt       string         `json:"created_at"`
	PublishedAt     *string        `json:"published_at"`
	Author          SimpleUser     `json:"author"`
	Assets          []ReleaseAsset `json:"assets"`
	BodyHTML        string         `json:"body_html,omitempty"`
	BodyText        string         `json:"body_text,omitempty"`
	DiscussionURL   string         `json:"discussion_url,omitempty"`
	Reactions       *Reactions     `json:"reactions,omitempty"`
}

type ReleaseAsset struct {
	URL                string      `json:"url"`
	BrowserDownloadURL string      `json:"browser_download_url"`
	ID                 int64       `json:"id"`
	NodeID             string      `json:"node_id"`
	Name               string      `json:"name"`
	Label              *string     `json:"label"`
	State              string      `json:"state"`
	ContentType        string      `json:"content_type"`
	Size               int64       `json:"size"`
	DownloadCount      int64       `json:"download_count"`
	CreatedAt          string      `json:"created_at"`
	UpdatedAt          string      `json:"updated_at"`
	Uploader           *SimpleUser `json:"uploader"`
}

type CodeFrequencyStat []int64

type CommitActivity struct {
	Days  []int64 `json:"days"`
	Total int64   `json:"total"`
	Week  int64   `json:"week"`
}

type ContributorActivity struct {
	Author *SimpleUser       `json:"author"`
	Total  int64             `json:"total"`
	Weeks  []ContributorWeek `json:"weeks"`
}

type ContributorWeek struct {
	W int64 `json:"w"`
	A int64 `json:"a"`
	D int64 `json:"d"`
	C int64 `json:"c"`
}

type ParticipationStats struct {
	All   []int64 `json:"all"`
	Owner []int64 `json:"owner"`
}

type Tag struct {
	Name       string            `json:"name"`
	Commit     BranchShortCommit `json:"commit"`
	ZipballURL string            `json:"zipball_url"`
	TarballURL string            `json:"tarball_url"`
	NodeID     string            `json:"node_id"`
}

type Topic struct {
	Names []string `json:"names"`
}

type CloneTraffic struct {
	Count   int64     `json:"count"`
	Uniques int64     `json:"uniques"`
	Clones  []Traffic `json:"clones"`
}

type ViewTraffic struct {
	Count   int64     `json:"count"`
	Uniques int64     `json:"uniques"`
	Views   []Traffic `json:"views"`
}

type Traffic struct {
	Timestamp string `json:"timestamp"`
	Uniques   int64  `json:"uniques"`
	Count     int64  `json:"count"`
}

type ContentTraffic struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Count   int64  `json:"count"`
	Uniques int64  `json:"uniques"`
}

type ReferrerTraffic struct {
	Referrer string `json:"referrer"`
	Count    int64  `json:"count"`
	Uniques  int64  `json:"uniques"`
}

type Autolink struct {
	ID          int64  `json:"id"`
	KeyPrefix   string `json:"key_prefix"`
	URLTemplate string `json:"url_template"`
}

type Collaborator struct {
	SimpleUser

	Permissions *Permissions `json:"permissions,omitempty"`
}

type RepositoryCollaboratorPermission struct {
	Permission string      `json:"permission"`
	User       *SimpleUser `json:"user"`
}

type RepositorySubscription struct {
	Subscribed    bool    `json:"subscribed"`
	Ignored       bool    `json:"ignored"`
	Reason        *string `json:"reason"`
	CreatedAt     string  `json:"created_at"`
	URL           string  `json:"url"`
	RepositoryURL string  `json:"repository_url"`
}

type CodeownersErrors struct {
	Errors []CodeownersError `json:"errors"`
}

type CodeownersError struct {
	Line       int64   `json:"line"`
	Column     int64   `json:"column"`
	Source     string  `json:"source,omitempty"`
	Kind       string  `json:"kind"`
	Suggestion *string `json:"suggestion,omitempty"`
	Message    string  `json:"message"`
	Path       string  `json:"path"`
}

type RepositoryList struct {
	TotalCount          int64        `json:"total_count"`
	Repositories        []Repository `json:"repositories"`
	RepositorySelection string       `json:"repository_selection,omitempty"`
}
