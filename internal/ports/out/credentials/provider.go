package credentials

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the admin credentials could not be loaded.
var ErrUnavailable = errors.New("admin credentials unavailable")

// AdminCredentials is the single login/password pair allowed to use the API.
type AdminCredentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// IsZero reports whether no usable credentials are present.
func (c AdminCredentials) IsZero() bool { return c.Login == "" }

// Provider loads the current admin credentials.
//
// Implementations are called once per authenticated request and must not cache, so rotated
// credentials take effect without a restart. A failed load returns a zero value and an error
// wrapping ErrUnavailable.
type Provider interface {
	Load(ctx context.Context) (AdminCredentials, error)
}
