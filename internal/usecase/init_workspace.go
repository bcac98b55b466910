package usecase

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/ports"
)

// InitWorkspace scaffolds a workspace at a directory, defaulting to the
// working directory.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
	getwd       func() (string, error)
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer, getwd: os.Getwd}
}

// Execute returns the absolute root that was initialized.
func (uc *InitWorkspace) Execute(dir string, force bool) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		wd, err := uc.getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return "", &domain.OpError{Op: "workspace.init", Kind: domain.KindInvalidConfig, Path: dir, Err: err}
	}

	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
		return "", err
	}
	return root, nil
}
