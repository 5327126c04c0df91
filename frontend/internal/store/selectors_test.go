package store

import (
	"testing"
	"time"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/stretchr/testify/assert"
)

func thread(id, category, author string, posts int, activity time.Time) *domain.Thread {
	t := &domain.Thread{Id: id, Title: "About " + id, CategoryId: category, Author: domain.User{Id: author}, LastActivityAt: activity}
	for i := 0; i < posts; i++ {
		t.Posts = append(t.Posts, &domain.Post{Id: id + "-p", Content: "<p>body of " + id + "</p>"})
	}
	return t
}

func selectorState() State {
	st := initialState()
	st.Threads.Threads = []*domain.Thread{
		thread("react-hooks", "react", "alice", 1, testNow.Add(-3*time.Hour)),
		thread("redux-store", "redux", "bob", 4, testNow.Add(-1*time.Hour)),
		thread("react-router", "react", "bob", 2, testNow.Add(-2*time.Hour)),
		thread("general-hi", "general", "alice", 3, testNow),
	}
	st.Threads.Categories = []domain.Category{{Id: "react", Name: "React"}, {Id: "redux", Name: "Redux"}}
	return st
}

func TestFilteredThreads(t *testing.T) {
	tests := []struct {
		name     string
		category domain.CategoryId
		query    string
		expected []string
	}{
		{"everything", "", "", []string{"react-hooks", "redux-store", "react-router", "general-hi"}},
		{"by category", "react", "", []string{"react-hooks", "react-router"}},
		{"search in title is case-insensitive", "", "ROUTER", []string{"react-router"}},
		{"search in opening post", "", "body of general", []string{"general-hi"}},
		{"category and search", "react", "hooks", []string{"react-hooks"}},
		{"no match", "redux", "hooks", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := selectorState()
			st.UI.SelectedCategory = tt.category
			st.UI.SearchQuery = tt.query

			assert.Equal(t, tt.expected, threadIds(st.FilteredThreads()))
		})
	}
}

func TestThreadSelectors(t *testing.T) {
	st := selectorState()

	assert.Equal(t, []string{"general-hi", "redux-store"}, threadIds(st.RecentThreads(2)))
	assert.Equal(t, []string{"redux-store", "general-hi", "react-router"}, threadIds(st.PopularThreads(3)))
	assert.Len(t, st.PopularThreads(10), 4)
	assert.Equal(t, []string{"react-hooks"}, threadIds(st.UnansweredThreads()))
	assert.Equal(t, []string{"react-hooks", "general-hi"}, threadIds(st.ThreadsByAuthor("alice")))
}

func TestCurrentCategory(t *testing.T) {
	st := selectorState()
	assert.Nil(t, st.CurrentCategory())

	st.UI.SelectedCategory = "redux"
	assert.Equal(t, "Redux", st.CurrentCategory().Name)

	st.UI.SelectedCategory = "missing"
	assert.Nil(t, st.CurrentCategory())
}
