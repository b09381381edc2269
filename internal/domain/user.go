package domain

// User is a registered author of articles and comments.
type User struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
}

// UserSummary is the listing view of a user.
type UserSummary struct {
	Username string `json:"username"`
}
