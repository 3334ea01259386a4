package github

type Root struct {
	CurrentUserURL                   string `json:"current_user_url"`
	CurrentUserAuthorizationsHTMLURL string `json:"current_user_authorizations_html_url"`
	AuthorizationsURL                string `json:"authorizations_url"`
	CodeSearchURL                    string `json:"code_search_url"`
	CommitSearchURL                  string `json:"commit_search_url"`
	EmailsURL                        string `json:"emails_url"`
	EmojisURL                        string `json:"emojis_url"`
	EventsURL                        string `json:"events_url"`
	FeedsURL                         string `json:"feeds_url"`
	FollowersURL                     string `json:"followers_url"`
	FollowingURL                     string `json:"following_url"`
	GistsURL                         string `json:"gists_url"`
	HubURL                           string `json:"hub_url"`
	IssueSearchURL                   string `json:"issue_search_url"`
	IssuesURL                        string `json:"issues_url"`
	KeysURL                          string `json:"keys_url"`
	LabelSearchURL                   string `json:"label_search_url"`
	NotificationsURL                 string `json:"notifications_url"`
	OrganizationURL                  string `json:"organization_url"`
	OrganizationRepositoriesURL      string `json:"organization_repositories_url"`
	OrganizationTeamsURL             string `json:"organization_teams_url"`
	PublicGistsURL                   string `json:"public_gists_url"`
	RateLimitURL                     string `json:"rate_limit_url"`
	RepositoryURL                    string `json:"repository_url"`
	RepositorySearchURL              string `json:"repository_search_url"`
	CurrentUserRepositoriesURL       string `json:"current_user_repositories_url"`
	StarredURL                       string `json:"starred_url"`
	StarredGistsURL                  string `json:"starred_gists_url"`
	TopicSearchURL                   string `json:"topic_search_url,omitempty"`
	UserURL                          string `json:"user_url"`
	UserOrganizationsURL             string `json:"user_organizations_url"`
	UserRepositoriesURL              string `json:"user_repositories_url"`
	UserSearchURL                    string `json:"user_search_url"`
}

type APIOverview struct {
	VerifiablePasswordAuthentication bool              `json:"verifiable_password_authentication"`
	SSHKeyFingerprints               map[string]string `json:"ssh_key_fingerprints,omitempty"`
	Hooks                            []string          `json:"hooks,omitempty"`
	Web                              []string          `json:"web,omitempty"`
	API                              []string          `json:"api,omitempty"`
	Git                              []string          `json:"git,omitempty"`
	Packages                         []string          `json:"packages,omitempty"`
	Pages                            []string          `json:"pages,omitempty"`
	Importer                         []string          `json:"importer,omitempty"`
	Actions                          []string          `json:"actions,omitempty"`
	Dependabot                       []string          `json:"dependabot,omitempty"`
}

type Emojis map[string]string

type RateLimitOverview struct {
	Resources RateLimitResources `json:"resources"`
	Rate      RateLimit          `json:"rate"`
}

type RateLimitResources struct {
	Core                      RateLimit  `json:"core"`
	Graphql                   *RateLimit `json:"graphql,omitempty"`
	Search                    RateLimit  `json:"search"`
	SourceImport              *RateLimit `json:"source_import,omitempty"`
	IntegrationManifest       *RateLimit `json:"integration_manifest,omitempty"`
	CodeScanningUpload        *RateLimit `json:"code_scanning_upload,omitempty"`
	ActionsRunnerRegistration *RateLimit `json:"actions_runner_registration,omitempty"`
	Scim                      *RateLimit `json:"scim,omitempty"`
}

type RateLimit struct {
	Limit     int64  `json:"limit"`
	Remaining int64  `json:"remaining"`
	Reset     int64  `json:"reset"`
	Used      int64  `json:"used,omitempty"`
	Resource  string `json:"resource,omitempty"`
}

type CodeOfConductSimple struct {
	URL     string  `json:"url"`
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	HTMLURL *string `json:"html_url"`
}

type CodeOfConduct struct {
	CodeOfConductSimple

	Body string `json:"body,omitempty"`
}

type GitignoreTemplate struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}
