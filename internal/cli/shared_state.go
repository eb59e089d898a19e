package cli

import (
	"time"

	"github.com/alexanderramin/joyshift/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Who is using the workstation. Not persisted across runs.
	SelectedUser *domain.User

	Theme string

	// Terminal dimensions
	Width  int
	Height int
}

// SelectUser makes u the acting user.
func (s *SharedState) SelectUser(u *domain.User) {
	s.SelectedUser = u
}

// ClearSelectedUser forgets the acting user if it is id. An empty id
// always clears.
func (s *SharedState) ClearSelectedUser(id string) {
	if s.SelectedUser == nil {
		return
	}
	if id == "" || s.SelectedUser.ID == id {
		s.SelectedUser = nil
	}
}

func (s *SharedState) Now() time.Time {
	return s.App.now()
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
