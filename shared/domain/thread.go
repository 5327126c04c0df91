package domain

import (
	"time"
)

type OriginKind string

const (
	OriginLocal  OriginKind = "local"
	OriginRemote OriginKind = "remote"
)

// ThreadOrigin tells whether a thread was fabricated on this client or
// issued by the Forum API. Merge logic branches on Kind only.
type ThreadOrigin struct {
	Kind     OriginKind `json:"kind"`
	ServerId ThreadId   `json:"server_id,omitempty"`
}

func LocalOrigin() ThreadOrigin {
	return ThreadOrigin{Kind: OriginLocal}
}

func RemoteOrigin(serverId ThreadId) ThreadOrigin {
	return ThreadOrigin{Kind: OriginRemote, ServerId: serverId}
}

func (o ThreadOrigin) IsLocal() bool {
	return o.Kind == OriginLocal
}

type Thread struct {
	Id             ThreadId     `json:"id"`
	Origin         ThreadOrigin `json:"origin"`
	Title          string       `json:"title"`
	Author         User         `json:"author"`
	CategoryId     CategoryId   `json:"category_id"`
	Posts          []*Post      `json:"posts"` // Posts[0] is the opening post
	ViewCount      int          `json:"view_count"` // derived for display, not authoritative
	CreatedAt      time.Time    `json:"created_at"`
	LastActivityAt time.Time    `json:"last_activity_at"`
	IsPinned       bool         `json:"is_pinned,omitempty"`
	IsLocked       bool         `json:"is_locked,omitempty"`
}

func (t *Thread) Root() *Post {
	if len(t.Posts) == 0 {
		return nil
	}
	return t.Posts[0]
}

// ReplyCount is the number of posts after the root, placeholders included.
func (t *Thread) ReplyCount() int {
	if len(t.Posts) == 0 {
		return 0
	}
	return len(t.Posts) - 1
}

// FindPost returns the index and post with id, or -1 and nil. A nil thread
// has no posts.
func (t *Thread) FindPost(id PostId) (int, *Post) {
	if t == nil {
		return -1, nil
	}
	for i, p := range t.Posts {
		if p.Id == id {
			return i, p
		}
	}
	return -1, nil
}

func (t *Thread) Clone() *Thread {
	if t == nil {
		return nil
	}
	c := *t
	c.Posts = make([]*Post, len(t.Posts))
	for i, p := range t.Posts {
		c.Posts[i] = p.Clone()
	}
	return &c
}

type Category struct {
	Id          CategoryId `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IconKey     string     `json:"icon_key"`
	ThreadCount int        `json:"thread_count"`
	PostCount   int        `json:"post_count"`
	ColorToken  string     `json:"color_token"`
}
