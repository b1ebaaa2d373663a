package github

import (
	"errors"
	"fmt"
)

// Kind classifies failures produced by this package.
type Kind int

const (
	// KindUnknown covers errors not produced here, such as transport failures
	// passed through from the HTTP client.
	KindUnknown Kind = iota
	// KindInvalidURL means the request URL could not be built.
	KindInvalidURL
	// KindNoData means the transport returned no response object.
	KindNoData
	// KindServer means the server answered with a non-2xx status.
	KindServer
	// KindDecoding means the body did not match the requested shape.
	KindDecoding
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid url"
	case KindNoData:
		return "no data"
	case KindServer:
		return "server error"
	case KindDecoding:
		return "decoding error"
	default:
		return "unknown"
	}
}

// NetworkError is a classified GitHub request failure.
type NetworkError struct {
	Kind       Kind
	StatusCode int   // set for KindServer
	Err        error // underlying cause, may be nil
}

func (e *NetworkError) Error() string {
	msg := "github: " + e.Kind.String()
	if e.Kind == KindServer && e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is matches sentinel NetworkErrors by kind. A sentinel with a zero status
// code matches any status.
func (e *NetworkError) Is(target error) bool {
	t, ok := target.(*NetworkError)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.StatusCode == 0 || t.StatusCode == e.StatusCode
}

var (
	ErrInvalidURL = &NetworkError{Kind: KindInvalidURL}
	ErrNoData     = &NetworkError{Kind: KindNoData}
	ErrServer     = &NetworkError{Kind: KindServer}
	ErrDecoding   = &NetworkError{Kind: KindDecoding}
)

func invalidURL(err error) *NetworkError {
	return &NetworkError{Kind: KindInvalidURL, Err: err}
}

func serverError(status int) *NetworkError {
	return &NetworkError{Kind: KindServer, StatusCode: status}
}

func decodingError(err error) *NetworkError {
	return &NetworkError{Kind: KindDecoding, Err: err}
}

// KindOf classifies err. Errors that did not originate in this package,
// including transport failures, report KindUnknown.
func KindOf(err error) Kind {
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.Kind
	}
	return KindUnknown
}

// StatusCode returns the HTTP status carried by a server error, or 0.
func StatusCode(err error) int {
	var ne *NetworkError
	if errors.As(err, &ne) && ne.Kind == KindServer {
		return ne.StatusCode
	}
	return 0
}
