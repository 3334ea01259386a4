package github

type Integration struct {
	ID                 int64             `json:"id"`
	Slug               string            `json:"slug,omitempty"`
	NodeID             string            `json:"node_id"`
	Owner              *SimpleUser       `json:"owner"`
	Name               string            `json:"name"`
	Description        *string           `json:"description"`
	ExternalURL        string            `json:"external_url"`
	HTMLURL            string            `json:"html_url"`
	CreatedAt          string            `json:"created_at"`
	UpdatedAt          string            `json:"updated_at"`
	Permissions        map[string]string `json:"permissions"`
	Events             []string          `json:"events"`
	InstallationsCount int64             `json:"installations_count,omitempty"`
	ClientID           string            `json:"client_id,omitempty"`
	ClientSecret       string            `json:"client_secret,omitempty"`
	WebhookSecret      *string           `json:"webhook_secret,omitempty"`
	Pem                string            `json:"pem,omitempty"`
}

type Installation struct {
	ID                     int64             `json:"id"`
	Account                *SimpleUser       `json:"account"`
	RepositorySelection    string            `json:"repository_selection"`
	AccessTokensURL        string            `json:"access_tokens_url"`
	RepositoriesURL        string            `json:"repositories_url"`
	HTMLURL                string            `json:"html_url"`
	AppID                  int64             `json:"app_id"`
	TargetID               int64             `json:"target_id"`
	TargetType             string            `json:"target_type"`
	Permissions            map[string]string `json:"permissions"`
	Events                 []string          `json:"events"`
	CreatedAt              string            `json:"created_at"`
	UpdatedAt              string            `json:"updated_at"`
	SingleFileName         *string           `json:"single_file_name"`
	HasMultipleSingleFiles bool              `json:"has_multiple_single_files,omitempty"`
	SingleFilePaths        []string          `json:"single_file_paths,omitempty"`
	AppSlug                string            `json:"app_slug"`
	SuspendedBy            *SimpleUser       `json:"suspended_by"`
	SuspendedAt            *string           `json:"suspended_at"`
	ContactEmail           *string           `json:"contact_email,omitempty"`
}

type InstallationToken struct {
	Token                  string            `json:"token"`
	ExpiresAt              string            `json:"expires_at"`
	Permissions            map[string]string `json:"permissions,omitempty"`
	RepositorySelection    string            `json:"repository_selection,omitempty"`
	Repositories           []Repository      `json:"repositories,omitempty"`
	SingleFile             string            `json:"single_file,omitempty"`
	HasMultipleSingleFiles bool              `json:"has_multiple_single_files,omitempty"`
	SingleFilePaths        []string          `json:"single_file_paths,omitempty"`
}

type Authorization struct {
	ID             int64            `json:"id"`
	URL            string           `json:"url"`
	Scopes         []string         `json:"scopes"`
	Token          string           `json:"token"`
	TokenLastEight *string          `json:"token_last_eight"`
	HashedToken    *string          `json:"hashed_token"`
	App            AuthorizationApp `json:"app"`
	Note           *string          `json:"note"`
	NoteURL        *string          `json:"note_url"`
	UpdatedAt      string           `json:"updated_at"`
	CreatedAt      string           `json:"created_at"`
	Fingerprint    *string          `json:"fingerprint"`
	User           *SimpleUser      `json:"user,omitempty"`
	Installation   interface{}      `json:"installation,omitempty"`
	ExpiresAt      *string          `json:"expires_at"`
}

type AuthorizationApp struct {
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
}

type ApplicationGrant struct {
	ID        int64            `json:"id"`
	URL       string           `json:"url"`
	App       AuthorizationApp `json:"app"`
	CreatedAt string           `json:"created_at"`
	UpdatedAt string           `json:"updated_at"`
	Scopes    []string         `json:"scopes"`
	User      *SimpleUser      `json:"user,omitempty"`
}

type MarketplacePurchase struct {
	URL                      string                    `json:"url"`
	Type                     string                    `json:"type"`
	ID                       int64                     `json:"id"`
	Login                    string                    `json:"login"`
	OrganizationBillingEmail string                    `json:"organization_billing_email,omitempty"`
	Email                    *string                   `json:"email,omitempty"`
	MarketplacePendingChange interface{}               `json:"marketplace_pending_change,omitempty"`
	MarketplacePurchase      MarketplacePurchaseDetail `json:"marketplace_purchase"`
}

type MarketplacePurchaseDetail struct {
	BillingCycle    string           `json:"billing_cycle,omitempty"`
	NextBillingDate *string          `json:"next_billing_date,omitempty"`
	IsInstalled     bool             `json:"is_installed,omitempty"`
	UnitCount       *int64           `json:"unit_count,omitempty"`
	OnFreeTrial     bool             `json:"on_free_trial,omitempty"`
	FreeTrialEndsOn *string          `json:"free_trial_ends_on,omitempty"`
	UpdatedAt       string           `json:"updated_at,omitempty"`
	Plan            *MarketplacePlan `json:"plan,omitempty"`
}

type MarketplacePlan struct {
	URL                 string   `json:"url"`
	AccountsURL         string   `json:"accounts_url"`
	ID                  int64    `json:"id"`
	Number              int64    `json:"number"`
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	MonthlyPriceInCents int64    `json:"monthly_price_in_cents"`
	YearlyPriceInCents  int64    `json:"yearly_price_in_cents"`
	PriceModel          string   `json:"price_model"`
	HasFreeTrial        bool     `json:"has_free_trial"`
	UnitName            *string  `json:"unit_name"`
	State               string   `json:"state"`
	Bullets             []string `json:"bullets"`
}

type UserMarketplacePurchase struct {
	BillingCycle    string             `json:"billing_cycle"`
	NextBillingDate *string            `json:"next_billing_date"`
	UnitCount       *int64             `json:"unit_count"`
	OnFreeTrial     bool               `json:"on_free_trial"`
	FreeTrialEndsOn *string            `json:"free_trial_ends_on"`
	UpdatedAt       *string            `json:"updated_at"`
	Account         MarketplaceAccount `json:"account"`
	Plan            MarketplacePlan    `json:"plan"`
}

type MarketplaceAccount struct {
	URL                      string  `json:"url"`
	ID                       int64   `json:"id"`
	Type                     string  `json:"type"`
	NodeID                   string  `json:"node_id,omitempty"`
	Login                    string  `json:"login"`
	Email                    *string `json:"email,omitempty"`
	OrganizationBillingEmail *string `json:"organization_billing_email,omitempty"`
}

type ContentReferenceAttachment struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	NodeID string `json:"node_id,omitempty"`
}
