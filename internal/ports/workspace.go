package ports

import "github.com/aalvaropc/toolbelt/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
