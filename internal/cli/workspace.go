package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/infra/historystore"
	"github.com/aalvaropc/toolbelt/internal/infra/workspacefinder"
	"github.com/aalvaropc/toolbelt/internal/infra/yamlregistry"
	"github.com/aalvaropc/toolbelt/internal/ports"
)

// workspaceCtx is what every command needs. root is empty when the command
// runs outside a workspace; defaults then apply and nothing is saved.
type workspaceCtx struct {
	root string
	cfg  domain.Config

	tools ports.ToolCatalog
	store ports.HistoryStore
}

var errNoWorkspace = errors.New("workspace not found (tip: run `toolbelt init`)")

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	tools, err := yamlregistry.Builtin()
	if err != nil {
		return nil, err
	}

	ws := &workspaceCtx{
		root:  root,
		cfg:   domain.DefaultConfig(),
		tools: tools,
	}
	if root == "" {
		return ws, nil
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	ws.cfg = cfg

	if cfg.History.Enabled {
		ws.store = historystore.NewJSONStore(root, cfg, historystore.WithIndex(true))
	}
	return ws, nil
}

// resolveWorkspaceRoot returns the explicit workspace, the one found above the
// working directory, or "" when there is none.
func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", nil
		}
		return "", err
	}
	return root, nil
}

func (ws *workspaceCtx) requireHistory() (ports.HistoryStore, error) {
	if ws.root == "" {
		return nil, errNoWorkspace
	}
	if ws.store == nil {
		return nil, fmt.Errorf("history is disabled in %s", filepath.Join(ws.root, workspacefinder.ConfigFile))
	}
	return ws.store, nil
}

func resolveFormat(flag string, cfg domain.Config) (string, error) {
	f := strings.ToLower(strings.TrimSpace(flag))
	if f == "" {
		f = cfg.Defaults.Format
	}
	switch f {
	case "pretty", "json":
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected pretty|json)", flag)
	}
}
