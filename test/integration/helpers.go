//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ifpa-client/pkg/ifpa"
	"github.com/fivetwenty-io/ifpa-client/pkg/ifpaclient"
)

// Known records on the live API.
const (
	knownPlayerID     = 1
	knownOpponentID   = 2
	knownTournamentID = 7070
	knownSeriesCode   = "NACS"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey     string
	BaseURL    string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:     os.Getenv(ifpa.EnvAPIKey),
		BaseURL:    os.Getenv("IFPA_BASE_URL"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("IFPA_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the ifpa binary
func getBinaryPath() string {
	if path := os.Getenv("IFPA_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../ifpa",
		"./ifpa",
		"../ifpa",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "ifpa"
}

// SkipIfMissingKey skips the test when no API key is available.
func (config *TestConfig) SkipIfMissingKey(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skipf("%s not set, skipping integration test", ifpa.EnvAPIKey)
	}
}

// SkipIfMissingBinary skips the test when the ifpa binary cannot be found.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	config.SkipIfMissingKey(t)

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("ifpa binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// NewClient builds a library client for the live API.
func (config *TestConfig) NewClient(t *testing.T) ifpa.Client {
	t.Helper()

	config.SkipIfMissingKey(t)

	client, err := ifpaclient.New(&ifpa.Config{APIKey: config.APIKey, BaseURL: config.BaseURL})
	require.NoError(t, err)

	t.Cleanup(func() { _ = client.Close() })

	return client
}

// CommandRunner provides utilities for running ifpa commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
	home   string
}

// NewCommandRunner creates a runner with an empty HOME so no local
// configuration leaks into the test.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config: config,
		t:      t,
		home:   t.TempDir(),
	}
}

// Run executes an ifpa command and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.BinaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+runner.home, "NO_COLOR=1")

	if runner.config.BaseURL != "" {
		cmd.Env = append(cmd.Env, "IFPA_BASE_URL="+runner.config.BaseURL)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if !strings.HasPrefix(output, "{") && !strings.HasPrefix(output, "[") {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if strings.Contains(output, ":") {
		return
	}

	t.Errorf("Output does not appear to be YAML: %s", output)
}
