package api

import "time"

// Envelope is shared by every Forum API response.
type Envelope[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

const StatusSuccess = "success"

func (e *Envelope[T]) Ok() bool {
	return e.Status == StatusSuccess
}

type User struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar"`
}

// Thread is the summary form returned by the thread list.
type Thread struct {
	Id            string    `json:"id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"createdAt"`
	OwnerId       string    `json:"ownerId"`
	UpVotesBy     []string  `json:"upVotesBy"`
	DownVotesBy   []string  `json:"downVotesBy"`
	TotalComments int       `json:"totalComments"`
}

type ThreadDetail struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	Owner       User      `json:"owner"`
	UpVotesBy   []string  `json:"upVotesBy"`
	DownVotesBy []string  `json:"downVotesBy"`
	Comments    []Comment `json:"comments"`
}

type Comment struct {
	Id          string    `json:"id"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	Owner       User      `json:"owner"`
	UpVotesBy   []string  `json:"upVotesBy"`
	DownVotesBy []string  `json:"downVotesBy"`
}

type LeaderboardEntry struct {
	User  User `json:"user"`
	Score int  `json:"score"`
}

// Vote is the acknowledgement of any up/down/neutral vote endpoint.
type Vote struct {
	Id       string `json:"id"`
	UserId   string `json:"userId"`
	ThreadId string `json:"threadId"`
	VoteType int    `json:"voteType"`
}

// Response data payloads

type ThreadsData struct {
	Threads []Thread `json:"threads"`
}

type ThreadDetailData struct {
	DetailThread ThreadDetail `json:"detailThread"`
}

type ThreadData struct {
	Thread Thread `json:"thread"`
}

type CommentData struct {
	Comment Comment `json:"comment"`
}

type UsersData struct {
	Users []User `json:"users"`
}

type UserData struct {
	User User `json:"user"`
}

type LeaderboardsData struct {
	Leaderboards []LeaderboardEntry `json:"leaderboards"`
}

type TokenData struct {
	Token string `json:"token"`
}

type VoteData struct {
	Vote Vote `json:"vote"`
}
