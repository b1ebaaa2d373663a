package github

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// DefaultBaseURL is the public GitHub REST API.
const DefaultBaseURL = "https://api.github.com"

// Endpoint is one of the request shapes this client knows how to build.
type Endpoint interface {
	// URL resolves the endpoint against baseURL.
	URL(baseURL string) (*url.URL, error)
}

// UserDetailEndpoint addresses GET /users/{username}.
type UserDetailEndpoint struct {
	Username string
}

// UsersListEndpoint addresses GET /users, paged by the last seen user ID.
type UsersListEndpoint struct {
	PerPage int
	Since   int64
}

// UserRepositoriesEndpoint addresses GET /users/{username}/repos.
type UserRepositoriesEndpoint struct {
	Username string
	PerPage  int
}

// SearchUsersEndpoint addresses GET /search/users.
type SearchUsersEndpoint struct {
	Query   string
	PerPage int
}

var errBlankUsername = errors.New("username cannot be blank")

func (e UserDetailEndpoint) URL(baseURL string) (*url.URL, error) {
	segment, err := usernameSegment(e.Username)
	if err != nil {
		return nil, err
	}
	return build(baseURL, "/users/"+segment, "")
}

func (e UsersListEndpoint) URL(baseURL string) (*url.URL, error) {
	return build(baseURL, "/users", fmt.Sprintf("per_page=%d&since=%d", e.PerPage, e.Since))
}

func (e UserRepositoriesEndpoint) URL(baseURL string) (*url.URL, error) {
	segment, err := usernameSegment(e.Username)
	if err != nil {
		return nil, err
	}
	return build(baseURL, "/users/"+segment+"/repos", fmt.Sprintf("type=owner&per_page=%d", e.PerPage))
}

func (e SearchUsersEndpoint) URL(baseURL string) (*url.URL, error) {
	if !utf8.ValidString(e.Query) {
		return nil, invalidURL(errors.New("query is not valid UTF-8"))
	}
	return build(baseURL, "/search/users", fmt.Sprintf("q=%s&per_page=%d", EscapeQuery(e.Query), e.PerPage))
}

// EscapeQuery percent-encodes free text for a query string value. Spaces
// become %20 rather than '+', so a literal '+' survives as %2B.
func EscapeQuery(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

func usernameSegment(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", invalidURL(errBlankUsername)
	}
	return url.PathEscape(username), nil
}

// build joins baseURL with path and a pre-encoded query. The query is kept
// verbatim so callers control parameter order.
func build(baseURL, path, rawQuery string) (*url.URL, error) {
	raw := strings.TrimRight(baseURL, "/") + path
	if rawQuery != "" {
		raw += "?" + rawQuery
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, invalidURL(err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, invalidURL(fmt.Errorf("base url %q is not absolute", baseURL))
	}
	return u, nil
}
