package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/bnema/pixeloracle/internal/domain"
	"github.com/bnema/pixeloracle/internal/ports"
)

// A headless agent has no pinentry; a locked gpg key would otherwise block startup forever.
const defaultCommandTimeout = 10 * time.Second

var ErrUnavailable = errors.New("pass command unavailable")

type runFunc func(ctx context.Context, env []string, input string, args ...string) (stdout string, stderr string, err error)

// Store reads and writes agent credentials through the pass password manager.
type Store struct {
	run     runFunc
	dir     string
	timeout time.Duration
}

type Option func(*Store)

// WithStoreDir points pass at a dedicated password store instead of ~/.password-store.
func WithStoreDir(dir string) Option {
	return func(s *Store) {
		s.dir = dir
	}
}

func WithTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.timeout = d
		}
	}
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(opts ...Option) *Store {
	s := &Store{run: runPassCommand, timeout: defaultCommandTimeout}
	if dir := os.Getenv("PASSWORD_STORE_DIR"); dir != "" {
		s.dir = dir
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	_, err := s.exec(ctx, "put", key, value+"\n", "insert", "--multiline", "--force", key)
	return err
}

// Get returns the first line of the entry. pass entries may carry notes after the secret.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	stdout, err := s.exec(ctx, "get", key, "", "show", key)
	if err != nil {
		return "", err
	}

	value, _, _ := strings.Cut(stdout, "\n")
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("pass entry %q is empty: %w", key, domain.ErrSecretNotFound)
	}
	return value, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.exec(ctx, "delete", key, "", "rm", "--force", key)
	return err
}

func (s *Store) exec(ctx context.Context, op, key, input string, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var env []string
	if s.dir != "" {
		env = append(env, "PASSWORD_STORE_DIR="+s.dir)
	}

	stdout, stderr, err := s.run(ctx, env, input, args...)
	switch {
	case err == nil:
		return stdout, nil
	case errors.Is(err, ErrUnavailable):
		return "", err
	case strings.Contains(stderr, "is not in the password store"):
		return "", fmt.Errorf("pass entry %q: %w", key, domain.ErrSecretNotFound)
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return "", fmt.Errorf("pass %s %q: timed out after %s: %w", op, key, s.timeout, ctx.Err())
	case stderr == "":
		return "", fmt.Errorf("pass %s %q: %w", op, key, err)
	default:
		return "", fmt.Errorf("pass %s %q: %w: %s", op, key, err, stderr)
	}
}

func runPassCommand(ctx context.Context, env []string, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Env = append(os.Environ(), env...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}
