package domain

// Topic groups articles. Its slug is the primary key referenced by Article.Topic.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
