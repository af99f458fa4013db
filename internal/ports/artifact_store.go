package ports

import "github.com/cdclaxton/guitar-tab-generator/internal/domain"

// ArtifactStore persists render artifacts so a rendered page can be traced back to
// its song, key and settings.
type ArtifactStore interface {
	SaveRender(r domain.RenderArtifact) (id string, err error)
}
