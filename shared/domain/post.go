package domain

import (
	"slices"
	"time"
)

type Post struct {
	Id            PostId    `json:"id"`
	Author        User      `json:"author"`
	Content       string    `json:"content"` // sanitized HTML
	Timestamp     time.Time `json:"timestamp"`
	UpvoteCount   int       `json:"upvote_count"`
	DownvoteCount int       `json:"downvote_count"`
	UpvotedBy     []UserId  `json:"upvoted_by"`
	DownvotedBy   []UserId  `json:"downvoted_by"`
	IsPlaceholder bool      `json:"is_placeholder,omitempty"`
	IsLocal       bool      `json:"is_local,omitempty"`
}

func (p *Post) HasUpvoted(userId UserId) bool {
	return slices.Contains(p.UpvotedBy, userId)
}

func (p *Post) HasDownvoted(userId UserId) bool {
	return slices.Contains(p.DownvotedBy, userId)
}

// VoteOf returns the vote currently held by userId, VoteNeutral if none.
func (p *Post) VoteOf(userId UserId) VoteType {
	switch {
	case p.HasUpvoted(userId):
		return VoteUp
	case p.HasDownvoted(userId):
		return VoteDown
	}
	return VoteNeutral
}

// ApplyVote toggles the vote of userId. Repeating the held direction removes
// the vote, the opposite direction moves it, neutral clears it. A user is
// never in both sets and counters always equal set sizes afterwards.
func (p *Post) ApplyVote(userId UserId, vote VoteType) {
	up, down := p.HasUpvoted(userId), p.HasDownvoted(userId)

	switch vote {
	case VoteUp:
		if up {
			p.UpvotedBy = remove(p.UpvotedBy, userId)
			break
		}
		p.UpvotedBy = append(p.UpvotedBy, userId)
		if down {
			p.DownvotedBy = remove(p.DownvotedBy, userId)
		}
	case VoteDown:
		if down {
			p.DownvotedBy = remove(p.DownvotedBy, userId)
			break
		}
		p.DownvotedBy = append(p.DownvotedBy, userId)
		if up {
			p.UpvotedBy = remove(p.UpvotedBy, userId)
		}
	case VoteNeutral:
		if up {
			p.UpvotedBy = remove(p.UpvotedBy, userId)
		}
		if down {
			p.DownvotedBy = remove(p.DownvotedBy, userId)
		}
	}
	p.syncCounts()
}

func (p *Post) syncCounts() {
	p.UpvoteCount = len(p.UpvotedBy)
	p.DownvoteCount = len(p.DownvotedBy)
}

func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	c := *p
	c.UpvotedBy = slices.Clone(p.UpvotedBy)
	c.DownvotedBy = slices.Clone(p.DownvotedBy)
	return &c
}

func remove(ids []UserId, id UserId) []UserId {
	return slices.DeleteFunc(slices.Clone(ids), func(v UserId) bool { return v == id })
}
