package git

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/arthur-debert/configmapper/pkg/logging"
)

// Client provides the git operations config-mapper needs
type Client interface {
	// Clone materializes url at destDir. destDir must not exist yet.
	Clone(ctx context.Context, url, destDir string) error
}

// ShellClient implements Client by shelling out to the git command
type ShellClient struct {
	binary string
}

// NewShellClient creates a git client that runs the git found on PATH
func NewShellClient() *ShellClient {
	return &ShellClient{binary: "git"}
}

// NewShellClientWithBinary is NewShellClient with an explicit executable.
func NewShellClientWithBinary(binary string) *ShellClient {
	return &ShellClient{binary: binary}
}

// Clone runs `git clone <url> <destDir>` and waits for it to exit.
func (c *ShellClient) Clone(ctx context.Context, url, destDir string) error {
	args := []string{"clone", url, destDir}
	logging.LogCommand(c.binary, args)

	cmd := exec.CommandContext(ctx, c.binary, args...)
	// Never block on a credential prompt with no terminal attached.
	cmd.Env = append(cmd.Environ(), "GIT_TERMINAL_PROMPT=0")

	if err := runCommand(cmd); err != nil {
		return fmt.Errorf("git clone failed: %w", err)
	}
	return nil
}

// runCommand executes a command and returns an error with its output on failure
func runCommand(cmd *exec.Cmd) error {
	output, err := cmd.CombinedOutput()
	if err != nil {
		if len(output) == 0 {
			return err
		}
		return fmt.Errorf("%w: %s", err, string(output))
	}
	return nil
}
