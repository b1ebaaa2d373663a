package domain

import (
	"fmt"
	"strings"
)

// User is a GitHub account summary as returned by the users list and
// search endpoints.
type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// String returns a short representation of the user.
func (u User) String() string {
	return fmt.Sprintf("%s (#%d)", u.Login, u.ID)
}

// Validate reports whether the decoded user carries a login.
func (u User) Validate() error {
	if u.Login == "" {
		return fmt.Errorf("user %d: missing login", u.ID)
	}
	return nil
}

// UserDetail is the profile of a single GitHub account.
type UserDetail struct {
	Login     string  `json:"login"`
	AvatarURL string  `json:"avatar_url"`
	Name      *string `json:"name"`
	Followers int     `json:"followers"`
	Following int     `json:"following"`
}

// DisplayName returns the profile name, falling back to the login when the
// account has no name set.
func (d UserDetail) DisplayName() string {
	if d.Name != nil && strings.TrimSpace(*d.Name) != "" {
		return *d.Name
	}
	return d.Login
}

// Validate reports whether the decoded profile carries a login.
func (d UserDetail) Validate() error {
	if d.Login == "" {
		return fmt.Errorf("user detail: missing login")
	}
	return nil
}

// UserSearchResponse wraps the items returned by the user search endpoint.
type UserSearchResponse struct {
	TotalCount        int    `json:"total_count"`
	IncompleteResults bool   `json:"incomplete_results"`
	Items             []User `json:"items"`
}

// Validate rejects responses without an items array and items without a
// login.
func (r UserSearchResponse) Validate() error {
	if r.Items == nil {
		return fmt.Errorf("search response: missing items")
	}
	for i, item := range r.Items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	return nil
}

// LastUserID returns the ID of the last user in the slice, used as the
// pagination cursor. ok is false for an empty slice.
func LastUserID(users []User) (id int64, ok bool) {
	if len(users) == 0 {
		return 0, false
	}
	return users[len(users)-1].ID, true
}
