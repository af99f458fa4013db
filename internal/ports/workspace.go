package ports

import "github.com/cdclaxton/guitar-tab-generator/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
