package basicauth

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/Overland-East-Bay/participant-api/internal/ports/out/credentials"
)

var (
	ErrUnauthorized = errors.New("unauthorized")

	ErrMissingHeader          = fmt.Errorf("%w: missing Authorization header", ErrUnauthorized)
	ErrMalformedHeader        = fmt.Errorf("%w: malformed Authorization header", ErrUnauthorized)
	ErrCredentialsUnavailable = fmt.Errorf("%w: admin credentials unavailable", ErrUnauthorized)
	ErrMismatch               = fmt.Errorf("%w: credentials do not match", ErrUnauthorized)
)

// Verifier checks HTTP Basic credentials against the admin pair returned by a provider.
//
// The provider is consulted on every call; nothing is cached.
type Verifier struct {
	creds credentials.Provider
}

func New(p credentials.Provider) *Verifier {
	return &Verifier{creds: p}
}

// Verify checks an Authorization header value of the form "Basic base64(login:password)" and
// returns the authenticated login. Every failure wraps ErrUnauthorized.
func (v *Verifier) Verify(ctx context.Context, authorization string) (string, error) {
	if strings.TrimSpace(authorization) == "" {
		return "", ErrMissingHeader
	}
	login, password, err := parseBasic(authorization)
	if err != nil {
		return "", err
	}

	admin, err := v.creds.Load(ctx)
	if err != nil || admin.IsZero() {
		return "", errors.Join(ErrCredentialsUnavailable, err)
	}

	// Evaluate both comparisons so timing does not reveal which half matched.
	loginOK := subtle.ConstantTimeCompare([]byte(login), []byte(admin.Login)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(admin.Password)) == 1
	if !loginOK || !passwordOK {
		return "", ErrMismatch
	}
	return login, nil
}

// parseBasic decodes the payload and splits it on the first ':'.
func parseBasic(authorization string) (login, password string, err error) {
	scheme, encoded, ok := strings.Cut(strings.TrimSpace(authorization), " ")
	if !ok || !strings.EqualFold(scheme, "Basic") {
		return "", "", ErrMalformedHeader
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", "", ErrMalformedHeader
	}
	login, password, ok = strings.Cut(string(raw), ":")
	if !ok {
		return "", "", ErrMalformedHeader
	}
	return login, password, nil
}

// Reason returns a short label for an error returned by Verify.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingHeader):
		return "missing_header"
	case errors.Is(err, ErrMalformedHeader):
		return "malformed_header"
	case errors.Is(err, ErrCredentialsUnavailable):
		return "credentials_unavailable"
	case errors.Is(err, ErrMismatch):
		return "mismatch"
	default:
		return "other"
	}
}
