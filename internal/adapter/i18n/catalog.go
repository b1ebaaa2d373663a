package i18n

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// BaseLocale is the locale used when no better match exists.
const BaseLocale = "en-US"

// Message keys shared by the view-models and the terminal UI.
const (
	KeyFailedFetchUsers  = "error.failed.fetch.users"
	KeyFailedSearch      = "error.failed.search"
	KeyFailedUserInfo    = "error.failed.user.info"
	KeyFollowers         = "followers.title"
	KeyFollowing         = "following.title"
	KeyStars             = "stars.title"
	KeyRetry             = "button.retry"
	KeyUsersTitle        = "users.title"
	KeySearchPlaceholder = "search.placeholder"
	KeyRepositories      = "repositories.title"
	KeyEmptyUsers        = "empty.users"
	KeyEmptyRepositories = "empty.repositories"
	KeyLoading           = "loading"
)

var defaultMessages = map[string]map[string]string{
	"en-US": {
		KeyFailedFetchUsers:  "Failed to fetch users",
		KeyFailedSearch:      "Failed to search users",
		KeyFailedUserInfo:    "Failed to load user info",
		KeyFollowers:         "Followers",
		KeyFollowing:         "Following",
		KeyStars:             "Stars",
		KeyRetry:             "Retry",
		KeyUsersTitle:        "GitHub Users",
		KeySearchPlaceholder: "Search users",
		KeyRepositories:      "Repositories",
		KeyEmptyUsers:        "No users found",
		KeyEmptyRepositories: "No public repositories",
		KeyLoading:           "Loading...",
	},
	"es": {
		KeyFailedFetchUsers:  "No se pudieron obtener los usuarios",
		KeyFailedSearch:      "No se pudo buscar usuarios",
		KeyFailedUserInfo:    "No se pudo cargar la información del usuario",
		KeyFollowers:         "Seguidores",
		KeyFollowing:         "Siguiendo",
		KeyStars:             "Estrellas",
		KeyRetry:             "Reintentar",
		KeyUsersTitle:        "Usuarios de GitHub",
		KeySearchPlaceholder: "Buscar usuarios",
		KeyRepositories:      "Repositorios",
		KeyEmptyUsers:        "No se encontraron usuarios",
		KeyEmptyRepositories: "Sin repositorios públicos",
		KeyLoading:           "Cargando...",
	},
}

var (
	registerOnce sync.Once
	supported    []language.Tag
	matcher      language.Matcher
)

// register loads the default table into the x/text catalog. The base locale
// comes first so the matcher falls back to it.
func register() {
	locales := make([]string, 0, len(defaultMessages))
	for locale := range defaultMessages {
		if locale != BaseLocale {
			locales = append(locales, locale)
		}
	}
	sort.Strings(locales)
	locales = append([]string{BaseLocale}, locales...)

	for _, locale := range locales {
		tag := language.MustParse(locale)
		supported = append(supported, tag)

		keys := make([]string, 0, len(defaultMessages[locale]))
		for key := range defaultMessages[locale] {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			message.SetString(tag, key, defaultMessages[locale][key])
		}
	}
	matcher = language.NewMatcher(supported)
}

// Localizer resolves message keys for one locale.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for the supported locale closest to locale.
// Unparsable or unsupported locales resolve to BaseLocale.
func New(locale string) *Localizer {
	tag := Match(locale)
	return &Localizer{tag: tag, printer: message.NewPrinter(tag)}
}

// Match returns the supported tag closest to locale.
func Match(locale string) language.Tag {
	registerOnce.Do(register)

	requested, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return supported[0]
	}
	_, index, confidence := matcher.Match(requested)
	if confidence == language.No {
		return supported[0]
	}
	return supported[index]
}

// Locale returns the resolved locale tag.
func (l *Localizer) Locale() string {
	return l.tag.String()
}

// Localize returns the message for key, or key itself when the catalog has
// no entry for it.
func (l *Localizer) Localize(key string) string {
	return l.printer.Sprintf(key)
}

// Locales lists the locales with a message table.
func Locales() []string {
	registerOnce.Do(register)
	out := make([]string, 0, len(supported))
	for _, tag := range supported {
		out = append(out, tag.String())
	}
	return out
}
