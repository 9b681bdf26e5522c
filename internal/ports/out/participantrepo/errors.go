package participantrepo

import "errors"

// ErrNotFound indicates no participant is stored under the requested key.
var ErrNotFound = errors.New("participant not found")
