// Package transform maps Forum API wire entities onto view entities. Every
// function here is pure: no I/O and, apart from Now, no hidden inputs.
package transform

import (
	"fmt"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/itchan-dev/forum/frontend/internal/markdown"
	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
)

const (
	UnknownUserName = "Unknown User"
	avatarURL       = "https://api.dicebear.com/7.x/avataaars/svg?seed=%s"
	dateLayout      = "2006-01-02"

	maxBaseViews  = 500
	viewsPerReply = 10
)

// Now is the clock used for fields the wire format does not carry.
var Now = time.Now

func User(u api.User) domain.User {
	return domain.User{
		Id:         u.Id,
		Name:       u.Name,
		Avatar:     u.Avatar,
		Role:       domain.RoleMember,
		JoinedDate: Now().Format(dateLayout),
	}
}

// DefaultUser stands in for an owner missing from the user collection.
func DefaultUser(ownerId domain.UserId) domain.User {
	return User(defaultWireUser(ownerId))
}

func defaultWireUser(ownerId string) api.User {
	return api.User{
		Id:     ownerId,
		Name:   UnknownUserName,
		Avatar: fmt.Sprintf(avatarURL, ownerId),
	}
}

func Comment(c api.Comment) *domain.Post {
	return newPost(c.Id, User(c.Owner), c.Content, c.CreatedAt, c.UpVotesBy, c.DownVotesBy)
}

// ThreadSummary builds a thread from its list form. Comments are not part of
// the list response, so they are represented by totalComments placeholders.
func ThreadSummary(t api.Thread, owner *api.User) *domain.Thread {
	wireOwner := defaultWireUser(t.OwnerId)
	if owner != nil {
		wireOwner = *owner
	}
	author := User(wireOwner)
	placeholderAuthor := DefaultUser(t.OwnerId)

	comments := max(t.TotalComments, 0)
	posts := make([]*domain.Post, 0, comments+1)
	posts = append(posts, newPost(rootPostId(t.Id), author, t.Body, t.CreatedAt, t.UpVotesBy, t.DownVotesBy))
	for i := 0; i < comments; i++ {
		posts = append(posts, &domain.Post{
			Id:            fmt.Sprintf("placeholder-%s-%d", t.Id, i),
			Author:        placeholderAuthor,
			Timestamp:     t.CreatedAt,
			UpvotedBy:     []domain.UserId{},
			DownvotedBy:   []domain.UserId{},
			IsPlaceholder: true,
		})
	}

	return &domain.Thread{
		Id:             t.Id,
		Origin:         domain.RemoteOrigin(t.Id),
		Title:          t.Title,
		Author:         author,
		CategoryId:     t.Category,
		Posts:          posts,
		ViewCount:      ViewCount(t.Id, comments),
		CreatedAt:      t.CreatedAt,
		LastActivityAt: t.CreatedAt,
	}
}

// ThreadDetail builds a thread with every comment, in server order.
func ThreadDetail(d api.ThreadDetail) *domain.Thread {
	owner := d.Owner
	if owner.Id == "" {
		owner = defaultWireUser(owner.Id)
	}
	author := User(owner)

	posts := make([]*domain.Post, 0, len(d.Comments)+1)
	posts = append(posts, newPost(rootPostId(d.Id), author, d.Body, d.CreatedAt, d.UpVotesBy, d.DownVotesBy))
	lastActivity := d.CreatedAt
	for _, c := range d.Comments {
		posts = append(posts, Comment(c))
		lastActivity = c.CreatedAt
	}

	return &domain.Thread{
		Id:             d.Id,
		Origin:         domain.RemoteOrigin(d.Id),
		Title:          d.Title,
		Author:         author,
		CategoryId:     d.Category,
		Posts:          posts,
		CreatedAt:      d.CreatedAt,
		LastActivityAt: lastActivity,
	}
}

// ViewCount is a display-only figure. It is derived from the thread id so
// that it is stable across refreshes, and must not be used for ranking.
func ViewCount(threadId domain.ThreadId, totalComments int) int {
	return int(xxhash.Sum64String(threadId)%maxBaseViews) + totalComments*viewsPerReply
}

func rootPostId(threadId string) domain.PostId {
	return threadId + "-initial"
}

func newPost(id string, author domain.User, content string, ts time.Time, up, down []string) *domain.Post {
	upvoted, downvoted := votes(up, down)
	return &domain.Post{
		Id:            id,
		Author:        author,
		Content:       markdown.Sanitize(content),
		Timestamp:     ts,
		UpvoteCount:   len(upvoted),
		DownvoteCount: len(downvoted),
		UpvotedBy:     upvoted,
		DownvotedBy:   downvoted,
	}
}

// votes dedupes both arrays. A user present in both keeps the up-vote.
func votes(up, down []string) ([]domain.UserId, []domain.UserId) {
	upvoted := make([]domain.UserId, 0, len(up))
	for _, id := range up {
		if !slices.Contains(upvoted, id) {
			upvoted = append(upvoted, id)
		}
	}
	downvoted := make([]domain.UserId, 0, len(down))
	for _, id := range down {
		if !slices.Contains(upvoted, id) && !slices.Contains(downvoted, id) {
			downvoted = append(downvoted, id)
		}
	}
	return upvoted, downvoted
}
