package domain

import (
	"fmt"
	"strings"
)

// Repository represents a GitHub repository owned by a user.
type Repository struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Language    *string `json:"language"`
	StarsCount  int     `json:"stargazers_count"`
	Description *string `json:"description"`
	HTMLURL     string  `json:"html_url"`
}

// Validate reports whether the decoded repository has the fields the
// detail screen relies on.
func (r Repository) Validate() error {
	switch {
	case r.ID == 0:
		return fmt.Errorf("repository %q: missing id", r.Name)
	case r.Name == "":
		return fmt.Errorf("repository %d: missing name", r.ID)
	case r.HTMLURL == "":
		return fmt.Errorf("repository %s: missing html_url", r.Name)
	}
	return nil
}

// LanguageOrDefault returns the primary language, or fallback when GitHub did
// not detect one.
func (r Repository) LanguageOrDefault(fallback string) string {
	if r.Language == nil || *r.Language == "" {
		return fallback
	}
	return *r.Language
}

// DescriptionText returns the description with surrounding whitespace removed,
// or an empty string when none is set.
func (r Repository) DescriptionText() string {
	if r.Description == nil {
		return ""
	}
	return strings.TrimSpace(*r.Description)
}

// String returns a string representation of the repository.
func (r Repository) String() string {
	return fmt.Sprintf("Repository{name: %s, stars: %d, language: %s}",
		r.Name, r.StarsCount, r.LanguageOrDefault("-"))
}

// TotalStars returns the sum of stars across repositories.
func TotalStars(repos []Repository) int {
	total := 0
	for _, repo := range repos {
		total += repo.StarsCount
	}
	return total
}
