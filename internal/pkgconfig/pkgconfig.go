// Package pkgconfig reads and writes the package manager's configured registry.
package pkgconfig

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// DefaultBinary is the package manager used when none is configured.
const DefaultBinary = "npm"

// Configurer gets and sets the registry URL of a package manager.
type Configurer interface {
	GetRegistry(ctx context.Context) (string, error)
	SetRegistry(ctx context.Context, url string) error
}

// Exec runs "<binary> config get|set registry" as a subprocess.
type Exec struct {
	// Binary is the package manager executable. Defaults to npm.
	Binary string
	// Logger for debug output.
	Logger *slog.Logger
}

// NewExec creates an Exec for the given package manager binary.
func NewExec(binary string, logger *slog.Logger) *Exec {
	if binary == "" {
		binary = DefaultBinary
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Exec{Binary: binary, Logger: logger}
}

// GetRegistry returns the configured registry URL with surrounding whitespace trimmed.
func (e *Exec) GetRegistry(ctx context.Context) (string, error) {
	out, err := e.run(ctx, "config", "get", "registry")
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(out), nil
}

// SetRegistry writes url as the package manager's registry.
func (e *Exec) SetRegistry(ctx context.Context, url string) error {
	_, err := e.run(ctx, "config", "set", "registry", url)

	return err
}

func (e *Exec) run(ctx context.Context, args ...string) (string, error) {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	binary := e.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec // binary comes from the user's own config
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("running package manager", "cmd", binary, "args", args)

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s %s: %w: %s", binary, strings.Join(args, " "), err, msg)
		}

		return "", fmt.Errorf("%s %s: %w", binary, strings.Join(args, " "), err)
	}

	logger.Debug("package manager output", "cmd", binary, "stdout", stdout.String())

	return stdout.String(), nil
}
