package github

type SimpleUser struct {
	Login             string `json:"login"`
	ID                int64  `json:"id"`
	NodeID            string `json:"node_id"`
	Name              string `json:"name,omitempty"`
	Email             string `json:"email,omitempty"`
	AvatarURL         string `json:"avatar_url"`
	GravatarID        string `json:"gravatar_id"`
	URL               string `json:"url"`
	HTMLURL           string `json:"html_url"`
	FollowersURL      string `json:"followers_url"`
	FollowingURL      string `json:"following_url"`
	GistsURL          string `json:"gists_url"`
	StarredURL        string `json:"starred_url"`
	SubscriptionsURL  string `json:"subscriptions_url"`
	OrganizationsURL  string `json:"organizations_url"`
	ReposURL          string `json:"repos_url"`
	EventsURL         string `json:"events_url"`
	ReceivedEventsURL string `json:"received_events_url"`
	Type              string `json:"type"`
	SiteAdmin         bool   `json:"site_admin"`
	StarredAt         string `json:"starred_at,omitempty"`
}

type Plan struct {
	Name          string `json:"name"`
	Space         int64  `json:"space"`
	Collaborators int64  `json:"collaborators"`
	PrivateRepos  int64  `json:"private_repos"`
	FilledSeats   int64  `json:"filled_seats,omitempty"`
	Seats         int64  `json:"seats,omitempty"`
}

type PublicUser struct {
	SimpleUser
	Company         *string `json:"company"`
	Blog            *string `json:"blog"`
	Location        *string `json:"location"`
	Hireable        *bool   `json:"hireable"`
	Bio             *string `json:"bio"`
	TwitterUsername *string `json:"twitter_username"`
	PublicRepos     int64   `json:"public_repos"`
	PublicGists     int64   `json:"public_gists"`
	Followers       int64   `json:"followers"`
	Following       int64   `json:"following"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
	Plan            *Plan   `json:"plan,omitempty"`
	SuspendedAt     *string `json:"suspended_at"`
}

type PrivateUser struct {
	PublicUser
	PrivateGists            int64  `json:"private_gists"`
	TotalPrivateRepos       int64  `json:"total_private_repos"`
	OwnedPrivateRepos       int64  `json:"owned_private_repos"`
	DiskUsage               int64  `json:"disk_usage"`
	TwoFactorAuthentication bool   `json:"two_factor_authentication"`
	BusinessPlus            bool   `json:"business_plus,omitempty"`
	LdapDN                  string `json:"ldap_dn,omitempty"`
}

type Email struct {
	Email      string  `json:"email"`
	Primary    bool    `json:"primary"`
	Verified   bool    `json:"verified"`
	Visibility *string `json:"visibility"`
}

type Key struct {
	ID        int64  `json:"id"`
	Key       string `json:"key"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
	Verified  bool   `json:"verified"`
	ReadOnly  bool   `json:"read_only"`
}

type KeySimple struct {
	ID  int64  `json:"id"`
	Key string `json:"key"`
}

type GpgKey struct {
	ID                int64        `json:"id"`
	PrimaryKeyID      *int64       `json:"primary_key_id"`
	KeyID             string       `json:"key_id"`
	PublicKey         string       `json:"public_key"`
	Emails            []GpgKeyMail `json:"emails"`
	Subkeys           []GpgKey     `json:"subkeys"`
	CanSign           bool         `json:"can_sign"`
	CanEncryptComms   bool         `json:"can_encrypt_comms"`
	CanEncryptStorage bool         `json:"can_encrypt_storage"`
	CanCertify        bool         `json:"can_certify"`
	CreatedAt         string       `json:"created_at"`
	ExpiresAt         *string      `json:"expires_at"`
	RawKey            *string      `json:"raw_key"`
}

type GpgKeyMail struct {
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

type Hovercard struct {
	Contexts []struct {
		Message string `json:"message"`
		Octicon string `json:"octicon"`
	} `json:"contexts"`
}
