package github

type Event struct {
	ID        string      `json:"id"`
	Type      *string     `json:"type"`
	Actor     EventActor  `json:"actor"`
	Repo      EventRepo   `json:"repo"`
	Org       *EventActor `json:"org,omitempty"`
	Payload   interface{} `json:"payload"`
	Public    bool        `json:"public"`
	CreatedAt *string     `json:"created_at"`
}

type EventActor struct {
	ID           int64   `json:"id"`
	Login        string  `json:"login"`
	DisplayLogin string  `json:"display_login,omitempty"`
	GravatarID   *string `json:"gravatar_id"`
	URL          string  `json:"url"`
	AvatarURL    string  `json:"avatar_url"`
}

type EventRepo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Feed struct {
	TimelineURL                 string                 `json:"timeline_url"`
	UserURL                     string                 `json:"user_url"`
	CurrentUserPublicURL        string                 `json:"current_user_public_url,omitempty"`
	CurrentUserURL              string                 `json:"current_user_url,omitempty"`
	CurrentUserActorURL         string                 `json:"current_user_actor_url,omitempty"`
	CurrentUserOrganizationURL  string                 `json:"current_user_organization_url,omitempty"`
	CurrentUserOrganizationURLs []string               `json:"current_user_organization_urls,omitempty"`
	SecurityAdvisoriesURL       string                 `json:"security_advisories_url,omitempty"`
	Links                       map[string]interface{} `json:"_links"`
}

type Thread struct {
	ID              string            `json:"id"`
	Repository      MinimalRepository `json:"repository"`
	Subject         ThreadSubject     `json:"subject"`
	Reason          string            `json:"reason"`
	Unread          bool              `json:"unread"`
	UpdatedAt       string            `json:"updated_at"`
	LastReadAt      *string           `json:"last_read_at"`
	URL             string            `json:"url"`
	SubscriptionURL string            `json:"subscription_url"`
}

type ThreadSubject struct {
	Title            string `json:"title"`
	URL              string `json:"url"`
	LatestCommentURL string `json:"latest_comment_url"`
	Type             string `json:"type"`
}

type ThreadSubscription struct {
	Subscribed    bool    `json:"subscribed"`
	Ignored       bool    `json:"ignored"`
	Reason        *string `json:"reason"`
	CreatedAt     *string `json:"created_at"`
	URL           string  `json:"url"`
	ThreadURL     string  `json:"thread_url,omitempty"`
	RepositoryURL string  `json:"repository_url,omitempty"`
}

type NotificationsMarked struct {
	Message string `json:"message,omitempty"`
	URL     string `json:"url,omitempty"`
}
