package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Overland-East-Bay/participant-api/internal/ports/out/credentials"
)

// FileProvider reads admin credentials from a JSON file of the form
// {"login": "...", "password": "..."}.
//
// The file is read on every call so credentials can be rotated without a restart.
type FileProvider struct {
	path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Path() string { return p.path }

func (p *FileProvider) Load(ctx context.Context) (credentials.AdminCredentials, error) {
	if err := ctx.Err(); err != nil {
		return credentials.AdminCredentials{}, err
	}
	b, err := os.ReadFile(p.path)
	if err != nil {
		return credentials.AdminCredentials{}, fmt.Errorf("%w: read %s: %v", credentials.ErrUnavailable, p.path, err)
	}
	var c credentials.AdminCredentials
	if err := json.Unmarshal(b, &c); err != nil {
		return credentials.AdminCredentials{}, fmt.Errorf("%w: decode %s: %v", credentials.ErrUnavailable, p.path, err)
	}
	if c.IsZero() {
		return credentials.AdminCredentials{}, fmt.Errorf("%w: %s has no login", credentials.ErrUnavailable, p.path)
	}
	return c, nil
}
