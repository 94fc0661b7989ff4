package simdata

import (
	"errors"
	"fmt"
)

// FetchErrorKind classifies a failed result document fetch.
type FetchErrorKind string

const (
	// FetchNotFound means the result document does not exist at the source.
	FetchNotFound FetchErrorKind = "not_found"
	// FetchNetwork means the transport to the source failed.
	FetchNetwork FetchErrorKind = "network"
	// FetchMalformed means the document was retrieved but could not be decoded.
	FetchMalformed FetchErrorKind = "malformed"
)

// FetchError is returned by Client when a result document cannot be loaded.
// All fetch errors are recoverable at the playback boundary.
type FetchError struct {
	Kind       FetchErrorKind
	Identifier string
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.Identifier, e.Kind, e.Err)
	}
	return fmt.Sprintf("fetch %s: %s", e.Identifier, e.Kind)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a FetchError of kind FetchNotFound.
func IsNotFound(err error) bool { return kindOf(err) == FetchNotFound }

// IsNetwork reports whether err is a FetchError of kind FetchNetwork.
func IsNetwork(err error) bool { return kindOf(err) == FetchNetwork }

// IsMalformed reports whether err is a FetchError of kind FetchMalformed.
func IsMalformed(err error) bool { return kindOf(err) == FetchMalformed }

func kindOf(err error) FetchErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
