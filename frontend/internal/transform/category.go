package transform

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
)

var palette = []string{
	"bg-blue-500",
	"bg-purple-500",
	"bg-green-500",
	"bg-pink-500",
	"bg-orange-500",
	"bg-red-500",
	"bg-teal-500",
	"bg-indigo-500",
}

const defaultIcon = "hash"

var iconKeywords = []struct {
	keywords []string
	icon     string
}{
	{[]string{"redux", "state"}, "code"},
	{[]string{"intro", "general"}, "message-square"},
	{[]string{"help", "question"}, "help-circle"},
	{[]string{"idea", "feature"}, "lightbulb"},
	{[]string{"resource", "book"}, "bookmark"},
}

// ExtractCategories derives one category per distinct category id, in order
// of first occurrence.
func ExtractCategories(threads []api.Thread) []domain.Category {
	categories := []domain.Category{}
	index := make(map[domain.CategoryId]int)

	for _, t := range threads {
		i, ok := index[t.Category]
		if !ok {
			i = len(categories)
			index[t.Category] = i
			c := NewCategory(t.Category, i)
			c.ThreadCount, c.PostCount = 0, 0
			categories = append(categories, c)
		}
		categories[i].ThreadCount++
		categories[i].PostCount += max(t.TotalComments, 0) + 1
	}
	return categories
}

// NewCategory synthesizes the category of a single new thread. position is
// the insertion index and picks the palette color.
func NewCategory(id domain.CategoryId, position int) domain.Category {
	name := capitalize(id)
	return domain.Category{
		Id:          id,
		Name:        name,
		Description: "Discussions about " + id,
		IconKey:     iconFor(name),
		ThreadCount: 1,
		PostCount:   1,
		ColorToken:  palette[position%len(palette)],
	}
}

// CategorySlug normalizes free-form input into a category id.
func CategorySlug(name string) domain.CategoryId {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

func iconFor(name string) string {
	lower := strings.ToLower(name)
	for _, k := range iconKeywords {
		for _, kw := range k.keywords {
			if strings.Contains(lower, kw) {
				return k.icon
			}
		}
	}
	return defaultIcon
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
