package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSmokeFlow drives the built binary through a credential-free
// session flow: select a board by ID, confirm the scope view shows it.
func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeConfigFixture(home))

	boardID := "68a1b2c3d4e5f60718293a4b"

	stdout, stderr, err := runCLI(t, binaryPath, home, "use-board", boardID)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Default board set for this session: "+boardID)

	stdout, stderr, err = runCLI(t, binaryPath, home, "scope")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Trello Session Scope")
	assert.Contains(t, stdout, boardID)

	stdout, stderr, err = runCLI(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "dev")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "trellobot-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/trellobot")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build trellobot binary: %s", string(output))
	return binaryPath
}

func runCLI(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Throwaway credentials and a dead API endpoint. The flow under test
// resolves by ID and stays off the network.
func writeConfigFixture(home string) error {
	configDir := filepath.Join(home, ".trellobot")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	config := `[api]
base_url = "http://127.0.0.1:1"
timeout = "1s"
key = "smoke-key"
token = "smoke-token"
`

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o644)
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
