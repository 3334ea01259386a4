package github

type GitUser struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Date  string `json:"date,omitempty"`
}

type Verification struct {
	Verified  bool    `json:"verified"`
	Reason    string  `json:"reason"`
	Payload   *string `json:"payload"`
	Signature *string `json:"signature"`
}

type GitCommit struct {
	SHA          string         `json:"sha"`
	NodeID       string         `json:"node_id"`
	URL          string         `json:"url"`
	Author       GitUser        `json:"author"`
	Committer    GitUser        `json:"committer"`
	Message      string         `json:"message"`
	Tree         CommitTree     `json:"tree"`
	Parents      []CommitParent `json:"parents"`
	Verification Verification   `json:"verification"`
	HTMLURL      string         `json:"html_url"`
}

type GitRef struct {
	Ref    string    `json:"ref"`
	NodeID string    `json:"node_id"`
	URL    string    `json:"url"`
	Object GitObject `json:"object"`
}

type GitObject struct {
	Type string `json:"type"`
	SHA  string `json:"sha"`
	URL  string `json:"url"`
}

type GitTag struct {
	NodeID       string        `json:"node_id"`
	Tag          string        `json:"tag"`
	SHA          string        `json:"sha"`
	URL          string        `json:"url"`
	Message      string        `json:"message"`
	Tagger       GitUser       `json:"tagger"`
	Object       GitObject     `json:"object"`
	Verification *Verification `json:"verification,omitempty"`
}

type GitTree struct {
	SHA       string         `json:"sha"`
	URL       string         `json:"url"`
	Truncated bool           `json:"truncated"`
	Tree      []GitTreeEntry `json:"tree"`
}

type GitTreeEntry struct {
	Path string `json:"path,omitempty"`
	Mode string `json:"mode,omitempty"`
	Type string `json:"type,omitempty"`
	SHA  string `json:"sha,omitempty"`
	Size int64  `json:"size,omitempty"`
	URL  string `json:"url,omitempty"`
}

type Blob struct {
	Content            string `json:"content"`
	Encoding           string `json:"encoding"`
	URL                string `json:"url"`
	SHA                string `json:"sha"`
	Size               *int64 `json:"size"`
	NodeID             string `json:"node_id"`
	HighlightedContent string `json:"highlighted_content,omitempty"`
}

type ShortBlob struct {
	URL string `json:"url"`
	SHA string `json:"sha"`
}
