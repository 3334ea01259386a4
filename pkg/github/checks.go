package github

type CheckRun struct {
	ID           int64          `json:"id"`
	HeadSHA      string         `json:"head_sha"`
	NodeID       string         `json:"node_id"`
	ExternalID   *string        `json:"external_id"`
	URL          string         `json:"url"`
	HTMLURL      *string        `json:"html_url"`
	DetailsURL   *string        `json:"details_url"`
	Status       string         `json:"status"`
	Conclusion   *string        `json:"conclusion"`
	StartedAt    *string        `json:"started_at"`
	CompletedAt  *string        `json:"completed_at"`
	Output       CheckRunOutput `json:"output"`
	Name         string         `json:"name"`
	CheckSuite   *CheckSuiteID  `json:"check_suite"`
	App          *Integration   `json:"app"`
	PullRequests []interface{}  `json:"pull_requests"`
	Deployment   interface{}    `json:"deployment,omitempty"`
}

type CheckRunOutput struct {
	Title            *string `json:"title"`
	Summary          *string `json:"summary"`
	Text             *string `json:"text"`
	AnnotationsCount int64   `json:"annotations_count"`
	AnnotationsURL   string  `json:"annotations_url"`
}

type CheckSuiteID struct {
	ID int64 `json:"id"`
}

type CheckRunList struct {
	TotalCount int64      `json:"total_count"`
	CheckRuns  []CheckRun `json:"check_runs"`
}

type CheckAnnotation struct {
	Path            string  `json:"path"`
	StartLine       int64   `json:"start_line"`
	EndLine         int64   `json:"end_line"`
	StartColumn     *int64  `json:"start_column"`
	EndColumn       *int64  `json:"end_column"`
	AnnotationLevel *string `json:"annotation_level"`
	Title           *string `json:"title"`
	Message         *string `json:"message"`
	RawDetails      *string `json:"raw_details"`
	BlobHref        string  `json:"blob_href"`
}

type CheckSuite struct {
	ID                   int64             `json:"id"`
	NodeID               string            `json:"node_id"`
	HeadBranch           *string           `json:"head_branch"`
	HeadSHA              string            `json:"head_sha"`
	Status               *string           `json:"status"`
	Conclusion           *string           `json:"conclusion"`
	URL                  *string           `json:"url"`
	Before               *string           `json:"before"`
	After                *string           `json:"after"`
	PullRequests         []interface{}     `json:"pull_requests"`
	App                  *Integration      `json:"app"`
	Repository           MinimalRepository `json:"repository"`
	CreatedAt            *string           `json:"created_at"`
	UpdatedAt            *string           `json:"updated_at"`
	HeadCommit           SimpleCommit      `json:"head_commit"`
	LatestCheckRunsCount int64             `json:"latest_check_runs_count"`
	CheckRunsURL         string            `json:"check_runs_url"`
	Rerequestable        bool              `json:"rerequestable,omitempty"`
	RunsRerequestable    bool              `json:"runs_rerequestable,omitempty"`
}

type CheckSuiteList struct {
	TotalCount  int64        `json:"total_count"`
	CheckSuites []CheckSuite `json:"check_suites"`
}

type CheckSuitePreference struct {
	Preferences CheckSuitePreferences `json:"preferences"`
	Repository  MinimalRepository     `json:"repository"`
}

type CheckSuitePreferences struct {
	AutoTriggerChecks []AutoTriggerCheck `json:"auto_trigger_checks,omitempty"`
}

type AutoTriggerCheck struct {
	AppID   int64 `json:"app_id"`
	Setting bool  `json:"setting"`
}
