package itest

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	filecredentials "github.com/Overland-East-Bay/participant-api/internal/adapters/file/credentials"
	"github.com/Overland-East-Bay/participant-api/internal/adapters/httpapi"
	memparticipantrepo "github.com/Overland-East-Bay/participant-api/internal/adapters/memory/participantrepo"
	"github.com/Overland-East-Bay/participant-api/internal/app/participants"
	"github.com/Overland-East-Bay/participant-api/internal/platform/auth/basicauth"
)

const (
	adminLogin    = "admin"
	adminPassword = "s3cret"
)

type testServer struct {
	baseURL   string
	client    *http.Client
	credsPath string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	credsPath := filepath.Join(t.TempDir(), "admin_credentials.json")
	writeCredentials(t, credsPath, adminLogin, adminPassword)

	repo := memparticipantrepo.NewRepo()
	svc := participants.NewService(repo, zerolog.Nop())
	api := httpapi.NewServer(svc)

	verifier := basicauth.New(filecredentials.NewFileProvider(credsPath))
	handler := httpapi.NewRouter(api, httpapi.RouterOptions{
		AuthMiddleware: httpapi.NewAuthMiddleware(verifier),
		Logger:         zerolog.Nop(),
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		baseURL:   srv.URL,
		client:    srv.Client(),
		credsPath: credsPath,
	}
}

func writeCredentials(t *testing.T, path, login, password string) {
	t.Helper()
	b, err := json.Marshal(map[string]string{"login": login, "password": password})
	if err != nil {
		t.Fatalf("marshal credentials: %v", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatalf("write credentials: %v", err)
	}
}

func (s *testServer) url(path string) string {
	if strings.HasPrefix(path, "/") {
		return s.baseURL + path
	}
	return s.baseURL + "/" + path
}

type auth struct {
	login    string
	password string
}

var admin = &auth{login: adminLogin, password: adminPassword}

func (s *testServer) doJSON(t *testing.T, method string, path string, a *auth, body any) (int, []byte, http.Header) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.url(path), r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if a != nil {
		req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(a.login+":"+a.password)))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out, resp.Header
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId"`
}

func mustUnmarshal[T any](t *testing.T, b []byte) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v\nbody=%s", err, string(b))
	}
	return out
}

func requireStatus(t *testing.T, status int, body []byte, want int) {
	t.Helper()
	if status != want {
		t.Fatalf("status=%d want=%d body=%s", status, want, string(body))
	}
}

func requireError(t *testing.T, status int, body []byte, wantStatus int, wantMessage string) {
	t.Helper()
	requireStatus(t, status, body, wantStatus)
	got := mustUnmarshal[errorResponse](t, body)
	if got.Error != wantMessage {
		t.Fatalf("error=%q want=%q body=%s", got.Error, wantMessage, string(body))
	}
}

func requireHeaderPresent(t *testing.T, h http.Header, key string) {
	t.Helper()
	if strings.TrimSpace(h.Get(key)) == "" {
		t.Fatalf("expected header %q to be present", key)
	}
}
