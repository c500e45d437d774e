package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/partners-cli/internal/domain"
	"github.com/bnema/partners-cli/internal/ports"
)

var (
	ErrUnavailable = errors.New("pass command unavailable")
	ErrInvalidKey  = errors.New("invalid pass entry name")
)

// KeyPrefix is the password-store folder that holds every partners entry.
const KeyPrefix = "partners/"

const notInStoreMarker = "is not in the password store"

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

// Store keeps partners state as multiline entries under the partners/ folder
// of the user's pass(1) password store.
type Store struct {
	run runFunc
}

var _ ports.KVStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: runPassCommand}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	name, err := entryName(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, value+"\n", "insert", "-m", "-f", name)
	if err != nil {
		return formatError(ctx, "put", name, err, stderr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	name, err := entryName(key)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, "", "show", name)
	if err != nil {
		if strings.Contains(stderr, notInStoreMarker) {
			return "", fmt.Errorf("pass get %q: %w", name, domain.ErrKeyNotFound)
		}
		return "", formatError(ctx, "get", name, err, stderr)
	}

	stdout = strings.TrimSuffix(stdout, "\n")
	stdout = strings.TrimSuffix(stdout, "\r")

	return stdout, nil
}

// Delete treats an entry that was never written as already removed.
func (s *Store) Delete(ctx context.Context, key string) error {
	name, err := entryName(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, "", "rm", "-f", name)
	if err != nil {
		if strings.Contains(stderr, notInStoreMarker) {
			return nil
		}
		return formatError(ctx, "delete", name, err, stderr)
	}

	return nil
}

// entryName accepts only leaf entries below KeyPrefix. Folder names would make
// pass show print a tree listing instead of a stored value.
func entryName(key string) (string, error) {
	name := strings.TrimSpace(key)
	rest, ok := strings.CutPrefix(name, KeyPrefix)
	if !ok || rest == "" {
		return "", fmt.Errorf("%w %q: must live under %s", ErrInvalidKey, key, KeyPrefix)
	}
	for _, segment := range strings.Split(rest, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return "", fmt.Errorf("%w %q", ErrInvalidKey, key)
		}
	}

	return name, nil
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

// formatError reports a killed pass process as the context error that caused it.
func formatError(ctx context.Context, op string, name string, err error, stderr string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("pass %s %q: %w", op, name, ctxErr)
	}
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, name, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, name, err, stderr)
}
