package domain

// ListStateKind identifies the variant of a ListState.
type ListStateKind int

const (
	// ListKindLoading is a primary fetch in progress.
	ListKindLoading ListStateKind = iota
	// ListKindLoaded holds a freshly loaded list.
	ListKindLoaded
	// ListKindLoadingMore is a next-page fetch in progress.
	ListKindLoadingMore
	// ListKindLoadedMore holds the accumulated list after a next page arrived.
	ListKindLoadedMore
	// ListKindError holds a user-facing failure message.
	ListKindError
)

// String returns the string representation of the kind.
func (k ListStateKind) String() string {
	switch k {
	case ListKindLoading:
		return "loading"
	case ListKindLoaded:
		return "loaded"
	case ListKindLoadingMore:
		return "loading-more"
	case ListKindLoadedMore:
		return "loaded-more"
	case ListKindError:
		return "error"
	default:
		return "unknown"
	}
}

// ListState is the state of the users list screen. It is a closed set: the
// only implementations are the ListXxx types in this package.
type ListState interface {
	Kind() ListStateKind
	isListState()
}

// ListLoading is shown while the first page or search results are fetched.
type ListLoading struct{}

// ListLoaded carries a complete replacement list.
type ListLoaded struct {
	Users []User
}

// ListLoadingMore is shown while the next page is fetched.
type ListLoadingMore struct{}

// ListLoadedMore carries the previous list with the next page appended.
type ListLoadedMore struct {
	Users []User
}

// ListError carries a localized message describing a failed fetch.
type ListError struct {
	Message string
}

func (ListLoading) Kind() ListStateKind     { return ListKindLoading }
func (ListLoaded) Kind() ListStateKind      { return ListKindLoaded }
func (ListLoadingMore) Kind() ListStateKind { return ListKindLoadingMore }
func (ListLoadedMore) Kind() ListStateKind  { return ListKindLoadedMore }
func (ListError) Kind() ListStateKind       { return ListKindError }

func (ListLoading) isListState()     {}
func (ListLoaded) isListState()      {}
func (ListLoadingMore) isListState() {}
func (ListLoadedMore) isListState()  {}
func (ListError) isListState()       {}

// UsersOf returns the users carried by a Loaded or LoadedMore state. ok is
// false for every other variant.
func UsersOf(state ListState) (users []User, ok bool) {
	switch s := state.(type) {
	case ListLoaded:
		return s.Users, true
	case ListLoadedMore:
		return s.Users, true
	default:
		return nil, false
	}
}
