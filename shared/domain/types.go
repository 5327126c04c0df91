package domain

import "strings"

type (
	UserId     = string
	ThreadId   = string
	PostId     = string
	CategoryId = string
)

// Role is the forum role of a user. The wire format carries no role, so
// every transformed or synthesized user is a Member.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleModerator Role = "Moderator"
	RoleMember    Role = "Member"
)

type VoteType string

const (
	VoteUp      VoteType = "up"
	VoteDown    VoteType = "down"
	VoteNeutral VoteType = "neutral"
)

func (v VoteType) Valid() bool {
	switch v {
	case VoteUp, VoteDown, VoteNeutral:
		return true
	}
	return false
}

// View is a navigation state of the client.
type View string

const (
	ViewHome         View = "home"
	ViewCategory     View = "category"
	ViewThread       View = "thread"
	ViewLeaderboards View = "leaderboards"
)

const (
	LocalThreadPrefix = "local-thread-"
	LocalReplyPrefix  = "local-reply-"
)

// IsLocalThreadID classifies an id coming from outside the store (URL,
// CLI argument). Inside the store the Origin tag is authoritative.
//
// NOTE: a server id starting with LocalThreadPrefix would be misclassified.
// The Forum API issues "thread-<nanoid>" ids today.
func IsLocalThreadID(id ThreadId) bool {
	return strings.HasPrefix(id, LocalThreadPrefix)
}
