package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/ports"
)

// EnvWorkspace pins the workspace root regardless of the working directory.
const EnvWorkspace = "TOOLBELT_WORKSPACE"

// Finder locates a toolbelt workspace: the directory named by EnvWorkspace,
// otherwise the nearest ancestor holding toolbelt.yaml.
type Finder struct {
	configFile string
	lookupEnv  func(string) (string, bool)
}

type Option func(*Finder)

// WithLookupEnv replaces os.LookupEnv (useful for tests).
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(f *Finder) {
		if fn != nil {
			f.lookupEnv = fn
		}
	}
}

func NewFinder(opts ...Option) *Finder {
	f := &Finder{
		configFile: ConfigFile,
		lookupEnv:  os.LookupEnv,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

func (f *Finder) FindRoot(startDir string) (string, error) {
	if pinned, ok := f.lookupEnv(EnvWorkspace); ok && pinned != "" {
		return f.pinnedRoot(pinned)
	}

	if startDir == "" {
		return "", findErr(domain.KindInvalidConfig, "", errors.New("start directory is empty"))
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", findErr(domain.KindExecution, startDir, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for dir = filepath.Clean(dir); ; dir = filepath.Dir(dir) {
		if f.hasConfig(dir) {
			return dir, nil
		}
		if parent := filepath.Dir(dir); parent == dir {
			return "", findErr(domain.KindNotFound, "", domain.ErrNotFound)
		}
	}
}

func (f *Finder) pinnedRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", findErr(domain.KindExecution, dir, err)
	}
	if !f.hasConfig(abs) {
		return "", findErr(domain.KindNotFound, abs,
			fmt.Errorf("%s=%s has no %s: %w", EnvWorkspace, dir, f.configFile, domain.ErrNotFound))
	}
	return abs, nil
}

func (f *Finder) hasConfig(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, f.configFile))
	return err == nil && !info.IsDir()
}

func findErr(kind domain.ErrorKind, path string, err error) error {
	return &domain.OpError{Op: "workspacefinder.findroot", Kind: kind, Path: path, Err: err}
}
