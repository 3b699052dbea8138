package textsearchgo

import (
	"errors"
	"fmt"
)

// Sentinel error kinds per §7. Callers compare with errors.Is rather
// than matching on message text.
var (
	// ErrInvalidArgument is returned for malformed calls: delete with
	// neither docs nor ids, an item of unsupported type passed to
	// Append, a query of unsupported type passed to Search, or an
	// unknown query variant reaching the evaluator.
	ErrInvalidArgument = errors.New("textsearchgo: invalid argument")

	// ErrDuplicateIngest is returned by Append when a supplied
	// document identifier already exists in the store.
	ErrDuplicateIngest = errors.New("textsearchgo: duplicate document id")

	// ErrQueryParse is returned by Search when given a malformed query
	// string.
	ErrQueryParse = errors.New("textsearchgo: query parse error")

	// ErrInternalInvariant marks a state that should be unreachable
	// through the public API (e.g. a document reaching index insertion
	// with no identifier assigned).
	ErrInternalInvariant = errors.New("textsearchgo: internal invariant violated")
)

// InvalidArgumentError wraps ErrInvalidArgument with a message.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string { return "textsearchgo: " + e.Message }
func (e *InvalidArgumentError) Unwrap() error { return ErrInvalidArgument }

// DuplicateIngestError reports an Append call that collided on id.
type DuplicateIngestError struct {
	ID string
}

func (e *DuplicateIngestError) Error() string {
	return fmt.Sprintf("textsearchgo: duplicate document id %q", e.ID)
}
func (e *DuplicateIngestError) Unwrap() error { return ErrDuplicateIngest }

// QueryParseError reports a malformed query string. It wraps the
// underlying qparser.ParseError so callers can still recover the
// byte offset via errors.As(err, &qparser.ParseError{}).
type QueryParseError struct {
	Cause error
}

func (e *QueryParseError) Error() string {
	return fmt.Sprintf("textsearchgo: query parse error: %v", e.Cause)
}
func (e *QueryParseError) Unwrap() error { return e.Cause }

func (e *QueryParseError) Is(target error) bool {
	return target == ErrQueryParse
}

// InternalInvariantError marks unreachable internal state.
type InternalInvariantError struct {
	Message string
}

func (e *InternalInvariantError) Error() string { return "textsearchgo: " + e.Message }
func (e *InternalInvariantError) Unwrap() error { return ErrInternalInvariant }
