package ports

import "github.com/aalvaropc/toolbelt/internal/domain"

// ToolCatalog exposes the tools registry.
type ToolCatalog interface {
	All() []domain.Tool
	Get(id string) (domain.Tool, bool)
	Categories() []string
	ByCategory(category string) []domain.Tool
}
