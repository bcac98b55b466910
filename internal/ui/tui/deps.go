package tui

import (
	"io"
	"log/slog"

	"github.com/aalvaropc/toolbelt/internal/domain"
	"github.com/aalvaropc/toolbelt/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Tools   ports.ToolCatalog
	History ports.HistoryStore // nil outside a workspace or when history is disabled
	Limits  domain.LimitsConfig

	Logger *slog.Logger
	Debug  bool
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return d.Logger
}
