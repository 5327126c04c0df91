package domain

type User struct {
	Id         UserId `json:"id"`
	Name       string `json:"name"`
	Avatar     string `json:"avatar"`
	Role       Role   `json:"role"`
	PostCount  int    `json:"post_count"`
	JoinedDate string `json:"joined_date"` // YYYY-MM-DD
}

type Session struct {
	Token         string `json:"-"`
	CurrentUser   *User  `json:"current_user"`
	Authenticated bool   `json:"authenticated"`
}

type LeaderboardEntry struct {
	User  User `json:"user"`
	Score int  `json:"score"`
}
