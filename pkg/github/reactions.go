package github

type Reactions struct {
	URL        string `json:"url"`
	TotalCount int64  `json:"total_count"`
	PlusOne    int64  `json:"+1"`
	MinusOne   int64  `json:"-1"`
	Laugh      int64  `json:"laugh"`
	Confused   int64  `json:"confused"`
	Heart      int64  `json:"heart"`
	Hooray     int64  `json:"hooray"`
	Eyes       int64  `json:"eyes"`
	Rocket     int64  `json:"rocket"`
}

type Reaction struct {
	ID        int64       `json:"id"`
	NodeID    string      `json:"node_id"`
	User      *SimpleUser `json:"user"`
	Content   string      `json:"content"`
	CreatedAt string      `json:"created_at"`
}
