package github

type Package struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	PackageType  string             `json:"package_type"`
	URL          string             `json:"url"`
	HTMLURL      string             `json:"html_url"`
	VersionCount int64              `json:"version_count"`
	Visibility   string             `json:"visibility"`
	Owner        *SimpleUser        `json:"owner,omitempty"`
	Repository   *MinimalRepository `json:"repository,omitempty"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
}

type PackageVersion struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	URL            string      `json:"url"`
	PackageHTMLURL string      `json:"package_html_url"`
	HTMLURL        string      `json:"html_url,omitempty"`
	License        string      `json:"license,omitempty"`
	Description    string      `json:"description,omitempty"`
	CreatedAt      string      `json:"created_at"`
	UpdatedAt      string      `json:"updated_at"`
	DeletedAt      string      `json:"deleted_at,omitempty"`
	Metadata       interface{} `json:"metadata,omitempty"`
}
