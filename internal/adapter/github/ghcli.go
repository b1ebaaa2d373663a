package github

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// commandRunner runs an external command and returns its stdout.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// GHCLI reads credentials from an installed and authenticated gh CLI.
type GHCLI struct {
	run commandRunner
}

// NewGHCLI creates a GHCLI that shells out to gh.
func NewGHCLI() *GHCLI {
	return &GHCLI{run: execOutput}
}

// Token returns the token gh uses for github.com.
func (g *GHCLI) Token(ctx context.Context) (string, error) {
	output, err := g.run(ctx, "gh", "auth", "token")
	if err != nil {
		return "", fmt.Errorf("failed to read gh token: %w", err)
	}

	token := strings.TrimSpace(string(output))
	if token == "" {
		return "", fmt.Errorf("gh is not authenticated")
	}
	return token, nil
}
