package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileJSON = `{"username": "alice", "github_username": "alice-dev", "bio": "Ships fast frontends", "availability": "open"}`

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	server := newPartnersServer(t)

	stdout, stderr, err := runPartners(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)

	_, stderr, err = runPartners(t, binaryPath, home, "--api-url", server.URL,
		"login", "--username", "alice", "--password", "demo123")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runPartners(t, binaryPath, home, "--api-url", server.URL, "whoami")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "alice")

	_, stderr, err = runPartners(t, binaryPath, home, "--api-url", server.URL, "logout")
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runPartners(t, binaryPath, home, "--api-url", server.URL, "match", "bob", "--no-spinner")
	require.Error(t, err)
	assert.Contains(t, stderr, "partners login")
}

func newPartnersServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"session_id": "s-1", "profile": %s, "needs_onboarding": false}`, profileJSON)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "partners-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/partners")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build partners binary: %s", string(output))
	return binaryPath
}

func runPartners(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "PARTNERS_STORE_BACKEND=file", "PARTNERS_API_URL=")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
