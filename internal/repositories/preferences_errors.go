package repositories

import "errors"

var (
	// ErrPathResolution means the host could not supply a data directory.
	ErrPathResolution = errors.New("unable to resolve app data directory")
	ErrIO             = errors.New("preferences i/o failure")
	ErrParse          = errors.New("preferences content is invalid")
	ErrSerialization  = errors.New("preferences serialization failure")
)

// StoreError tags an underlying failure with one of the error kinds above.
// Its text is the underlying message so callers can show it unchanged.
type StoreError struct {
	Kind error
	Err  error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func ioError(err error) error {
	return &StoreError{Kind: ErrIO, Err: err}
}

func parseError(err error) error {
	return &StoreError{Kind: ErrParse, Err: err}
}

func serializationError(err error) error {
	return &StoreError{Kind: ErrSerialization, Err: err}
}
