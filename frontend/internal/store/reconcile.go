package store

import (
	"slices"

	"github.com/itchan-dev/forum/shared/domain"
)

// mergeThreads keeps every local-origin thread of existing, in order, and
// replaces all remote-origin ones with fresh.
func mergeThreads(existing, fresh []*domain.Thread) []*domain.Thread {
	merged := make([]*domain.Thread, 0, len(existing)+len(fresh))
	for _, t := range existing {
		if t.Origin.IsLocal() {
			merged = append(merged, t)
		}
	}
	return append(merged, fresh...)
}

// mergeCategories keeps existing categories whose id is absent from fresh,
// then appends fresh.
func mergeCategories(existing, fresh []domain.Category) []domain.Category {
	merged := make([]domain.Category, 0, len(existing)+len(fresh))
	for _, c := range existing {
		if !slices.ContainsFunc(fresh, func(f domain.Category) bool { return f.Id == c.Id }) {
			merged = append(merged, c)
		}
	}
	return append(merged, fresh...)
}

func findThread(threads []*domain.Thread, id domain.ThreadId) (int, *domain.Thread) {
	for i, t := range threads {
		if t.Id == id {
			return i, t
		}
	}
	return -1, nil
}

// mirrorThread writes the open detail back into the list collection. The
// list copy keeps its own view count.
func mirrorThread(threads []*domain.Thread, detail *domain.Thread) {
	i, listed := findThread(threads, detail.Id)
	if listed == nil {
		return
	}
	c := detail.Clone()
	c.ViewCount = listed.ViewCount
	threads[i] = c
}

// mirrorVotes copies the vote state of src onto the post with the same id in
// the list copy of thread, if both exist.
func mirrorVotes(threads []*domain.Thread, threadId domain.ThreadId, src *domain.Post) {
	_, listed := findThread(threads, threadId)
	if listed == nil {
		return
	}
	_, dst := listed.FindPost(src.Id)
	if dst == nil {
		return
	}
	dst.UpvotedBy = slices.Clone(src.UpvotedBy)
	dst.DownvotedBy = slices.Clone(src.DownvotedBy)
	dst.UpvoteCount = src.UpvoteCount
	dst.DownvoteCount = src.DownvoteCount
}
