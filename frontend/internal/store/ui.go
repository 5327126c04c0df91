package store

import (
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/utils"
)

func navigateHome(st *State) {
	st.UI.View = domain.ViewHome
	st.UI.SelectedCategory = ""
}

// navigateBack walks thread -> category -> home. Leaderboards go straight
// home; home stays where it is.
func navigateBack(st *State) {
	switch st.UI.View {
	case domain.ViewThread:
		st.UI.View = domain.ViewCategory
	case domain.ViewCategory, domain.ViewLeaderboards:
		navigateHome(st)
	case domain.ViewHome:
	}
}

func (s *Store) navigateToCategory(in NavigateToCategory) error {
	if err := utils.Validate(in); err != nil {
		return err
	}
	s.update(func(st *State) {
		st.UI.SelectedCategory = in.CategoryId
		st.UI.View = domain.ViewCategory
	})
	return nil
}
