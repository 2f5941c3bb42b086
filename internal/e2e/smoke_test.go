package e2e

import (
	"bufio"
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smokeConfig = `[platforms.xbox]
enabled = true

[platforms.steam]
enabled = true
poll_interval = "1s"
`

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeFixture(home, "config.toml", smokeConfig))
	require.NoError(t, writeFixture(home, filepath.Join("presence", "steam.toml"), `details = "Hades"`+"\n"))

	stdout, stderr, err := runRP(t, binaryPath, home, "focus", "steam")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "Focused Steam\n", stdout)

	stdout, stderr, err = runRP(t, binaryPath, home, "status")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Hades")

	stdout, stderr, err = runRP(t, binaryPath, home, "unfocus", "steam")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "Focused Xbox\n", stdout)
}

func TestRunStopsOnInterrupt(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeFixture(home, "config.toml", smokeConfig))

	cmd := exec.Command(binaryPath, "run")
	cmd.Env = smokeEnv(home)
	stderr, err := cmd.StderrPipe()
	require.NoError(t, err)
	require.NoError(t, cmd.Start())

	lines := make(chan string, 64)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	waitForLine(t, lines, "presence daemon started")
	require.NoError(t, cmd.Process.Signal(os.Interrupt))
	waitForLine(t, lines, "presence daemon stopping")
	require.NoError(t, cmd.Wait())
}

func waitForLine(t *testing.T, lines <-chan string, want string) {
	t.Helper()

	deadline := time.After(10 * time.Second)
	for {
		select {
		case line, ok := <-lines:
			require.True(t, ok, "output closed before %q", want)
			if strings.Contains(line, want) {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "rp-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/rp")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build rp binary: %s", string(output))
	return binaryPath
}

func runRP(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = smokeEnv(home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func smokeEnv(home string) []string {
	return append(os.Environ(),
		"HOME="+home,
		"RP_CONFIG=",
		"RP_SECRETS_BACKEND=file",
		"RP_LOGIN_OPEN_BROWSER=false",
	)
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeFixture(home, name, body string) error {
	path := filepath.Join(home, ".richpresence", name)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(body), 0o600)
}
