package domain

// DetailState is the state of the user detail screen. The only
// implementations are DetailLoading, DetailLoaded and DetailError.
type DetailState interface {
	isDetailState()
}

// DetailLoading is shown while the profile and repositories are fetched.
type DetailLoading struct{}

// DetailLoaded carries the profile and its repositories. Repositories is
// empty when only the repositories request failed.
type DetailLoaded struct {
	Detail       UserDetail
	Repositories []Repository
}

// DetailError carries a localized message describing a failed profile fetch.
type DetailError struct {
	Message string
}

func (DetailLoading) isDetailState() {}
func (DetailLoaded) isDetailState()  {}
func (DetailError) isDetailState()   {}
