package github

type CodeScanningAlert struct {
	Number             int64                     `json:"number"`
	CreatedAt          string                    `json:"created_at"`
	UpdatedAt          string                    `json:"updated_at,omitempty"`
	URL                string                    `json:"url"`
	HTMLURL            string                    `json:"html_url"`
	InstancesURL       string                    `json:"instances_url"`
	State              string                    `json:"state"`
	FixedAt            *string                   `json:"fixed_at,omitempty"`
	DismissedBy        *SimpleUser               `json:"dismissed_by"`
	DismissedAt        *string                   `json:"dismissed_at"`
	DismissedReason    *string                   `json:"dismissed_reason"`
	Rule               CodeScanningRule          `json:"rule"`
	Tool               CodeScanningTool          `json:"tool"`
	MostRecentInstance CodeScanningAlertInstance `json:"most_recent_instance"`
}

type CodeScanningRule struct {
	ID                    *string  `json:"id"`
	Name                  string   `json:"name,omitempty"`
	Severity              *string  `json:"severity"`
	SecuritySeverityLevel *string  `json:"security_severity_level,omitempty"`
	Description           string   `json:"description"`
	FullDescription       string   `json:"full_description,omitempty"`
	Tags                  []string `json:"tags,omitempty"`
	Help                  *string  `json:"help,omitempty"`
}

type CodeScanningTool struct {
	Name    string  `json:"name"`
	Version *string `json:"version"`
	Guid    *string `json:"guid"`
}

type CodeScanningAlertInstance struct {
	Ref             string                `json:"ref"`
	AnalysisKey     string                `json:"analysis_key"`
	Environment     string                `json:"environment"`
	Category        string                `json:"category,omitempty"`
	State           string                `json:"state"`
	CommitSHA       string                `json:"commit_sha,omitempty"`
	Message         *CodeScanningMessage  `json:"message,omitempty"`
	Location        *CodeScanningLocation `json:"location,omitempty"`
	HTMLURL         string                `json:"html_url,omitempty"`
	Classifications []string              `json:"classifications,omitempty"`
}

type CodeScanningMessage struct {
	Text string `json:"text,omitempty"`
}

type CodeScanningLocation struct {
	Path        string `json:"path,omitempty"`
	StartLine   int64  `json:"start_line,omitempty"`
	EndLine     int64  `json:"end_line,omitempty"`
	StartColumn int64  `json:"start_column,omitempty"`
	EndColumn   int64  `json:"end_column,omitempty"`
}

type CodeScanningAnalysis struct {
	Ref          string           `json:"ref"`
	CommitSHA    string           `json:"commit_sha"`
	AnalysisKey  string           `json:"analysis_key"`
	Environment  string           `json:"environment"`
	Category     string           `json:"category,omitempty"`
	Error        string           `json:"error"`
	CreatedAt    string           `json:"created_at"`
	ResultsCount int64            `json:"results_count"`
	RulesCount   int64            `json:"rules_count"`
	ID           int64            `json:"id"`
	URL          string           `json:"url"`
	SarifID      string           `json:"sarif_id"`
	Tool         CodeScanningTool `json:"tool"`
	Deletable    bool             `json:"deletable"`
	Warning      string           `json:"warning"`
}

type CodeScanningAnalysisDeletion struct {
	NextAnalysisURL  *string `json:"next_analysis_url"`
	ConfirmDeleteURL *string `json:"confirm_delete_url"`
}

type CodeScanningSarifsReceipt struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url,omitempty"`
}

type CodeScanningSarifsStatus struct {
	ProcessingStatus string   `json:"processing_status,omitempty"`
	AnalysesURL      *string  `json:"analyses_url,omitempty"`
	Errors           []string `json:"errors,omitempty"`
}

type SecretScanningAlert struct {
	Number       int64              `json:"number"`
	CreatedAt    string             `json:"created_at"`
	URL          string             `json:"url"`
	HTMLURL      string             `json:"html_url"`
	LocationsURL string             `json:"locations_url,omitempty"`
	State        string             `json:"state"`
	Resolution   *string            `json:"resolution"`
	ResolvedAt   *string            `json:"resolved_at"`
	ResolvedBy   *SimpleUser        `json:"resolved_by"`
	SecretType   string             `json:"secret_type"`
	Secret       string             `json:"secret"`
	Repository   *MinimalRepository `json:"repository,omitempty"`
}
