package credentials

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Overland-East-Bay/participant-api/internal/ports/out/credentials"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "admin_credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestFileProvider_Load(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `{"login":"admin","password":"P4ssword"}`)
	p := NewFileProvider(path)
	assert.Equal(t, path, p.Path())
	got, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, credentials.AdminCredentials{Login: "admin", Password: "P4ssword"}, got)
}

func TestFileProvider_ReReadsOnEveryCall(t *testing.T) {
	t.Parallel()

	path := writeFile(t, `{"login":"admin","password":"one"}`)
	p := NewFileProvider(path)

	first, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "one", first.Password)

	require.NoError(t, os.WriteFile(path, []byte(`{"login":"admin","password":"two"}`), 0o600))
	second, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "two", second.Password)
}

func TestFileProvider_Failures(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"missing file": filepath.Join(t.TempDir(), "nope.json"),
		"bad json":     writeFile(t, `{"login":`),
		"no login":     writeFile(t, `{"password":"x"}`),
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := NewFileProvider(path).Load(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, credentials.ErrUnavailable)
			assert.True(t, got.IsZero())
		})
	}
}
