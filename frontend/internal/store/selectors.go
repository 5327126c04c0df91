package store

import (
	"cmp"
	"slices"
	"strings"

	"github.com/itchan-dev/forum/shared/domain"
)

// Selectors read a snapshot. They return the snapshot's own threads, so
// callers must not mutate them if the snapshot is shared.

// FilteredThreads applies the selected category and the search query. The
// search is case-insensitive over titles and opening posts.
func (s State) FilteredThreads() []*domain.Thread {
	query := strings.ToLower(strings.TrimSpace(s.UI.SearchQuery))
	out := []*domain.Thread{}
	for _, t := range s.Threads.Threads {
		if s.UI.SelectedCategory != "" && t.CategoryId != s.UI.SelectedCategory {
			continue
		}
		if query != "" && !matches(t, query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matches(t *domain.Thread, query string) bool {
	if strings.Contains(strings.ToLower(t.Title), query) {
		return true
	}
	root := t.Root()
	return root != nil && strings.Contains(strings.ToLower(root.Content), query)
}

// RecentThreads returns up to n threads, most recent activity first.
func (s State) RecentThreads(n int) []*domain.Thread {
	sorted := slices.Clone(s.Threads.Threads)
	slices.SortStableFunc(sorted, func(a, b *domain.Thread) int {
		return b.LastActivityAt.Compare(a.LastActivityAt)
	})
	return head(sorted, n)
}

// PopularThreads returns up to n threads with the most posts. View counts
// are not used.
func (s State) PopularThreads(n int) []*domain.Thread {
	sorted := slices.Clone(s.Threads.Threads)
	slices.SortStableFunc(sorted, func(a, b *domain.Thread) int {
		return cmp.Compare(len(b.Posts), len(a.Posts))
	})
	return head(sorted, n)
}

func (s State) UnansweredThreads() []*domain.Thread {
	out := []*domain.Thread{}
	for _, t := range s.Threads.Threads {
		if len(t.Posts) == 1 {
			out = append(out, t)
		}
	}
	return out
}

func (s State) ThreadsByAuthor(userId domain.UserId) []*domain.Thread {
	out := []*domain.Thread{}
	for _, t := range s.Threads.Threads {
		if t.Author.Id == userId {
			out = append(out, t)
		}
	}
	return out
}

// CurrentCategory is nil when no category is selected or it is unknown.
func (s State) CurrentCategory() *domain.Category {
	if s.UI.SelectedCategory == "" {
		return nil
	}
	for _, c := range s.Threads.Categories {
		if c.Id == s.UI.SelectedCategory {
			return &c
		}
	}
	return nil
}

// RankedLeaderboard orders entries by score, highest first.
func (s State) RankedLeaderboard() []domain.LeaderboardEntry {
	sorted := slices.Clone(s.Leaderboard.Entries)
	slices.SortStableFunc(sorted, func(a, b domain.LeaderboardEntry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return sorted
}

func head(threads []*domain.Thread, n int) []*domain.Thread {
	if n >= 0 && len(threads) > n {
		return threads[:n]
	}
	return threads
}
