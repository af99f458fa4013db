package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/cdclaxton/guitar-tab-generator/internal/app/template"
	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
	"github.com/cdclaxton/guitar-tab-generator/internal/layout"
	"github.com/cdclaxton/guitar-tab-generator/internal/ports"
)

// RenderRequest describes one render. With an empty OutputPath nothing is written and
// only the laid out lines are returned.
type RenderRequest struct {
	SongPath   string
	Change     KeyChange
	Format     domain.DocumentFormat
	OutputPath string
}

type RenderResult struct {
	Original   domain.SheetMusic
	Song       domain.SheetMusic
	Document   domain.Document
	ArtifactID string
}

type RenderSong struct {
	transposer *TransposeSong
	writers    map[domain.DocumentFormat]ports.DocumentWriter
	store      ports.ArtifactStore
	cfg        domain.Config
	now        func() time.Time
}

// NewRenderSong wires a renderer. store may be nil, in which case nothing is persisted.
func NewRenderSong(sl ports.SongLoader, cfg domain.Config, store ports.ArtifactStore, writers ...ports.DocumentWriter) *RenderSong {
	uc := &RenderSong{
		transposer: NewTransposeSong(sl, WithMaxFret(cfg.Transpose.MaxFret)),
		writers:    map[domain.DocumentFormat]ports.DocumentWriter{},
		store:      store,
		cfg:        cfg,
		now:        time.Now,
	}
	for _, w := range writers {
		uc.writers[w.Format()] = w
	}
	return uc
}

func (uc *RenderSong) Execute(ctx context.Context, req RenderRequest) (RenderResult, error) {
	original, sheet, err := uc.transposer.Execute(ctx, req.SongPath, req.Change)
	if err != nil {
		return RenderResult{}, err
	}

	doc, err := uc.Compose(sheet)
	if err != nil {
		return RenderResult{}, err
	}
	res := RenderResult{Original: original, Song: sheet, Document: doc}

	if req.OutputPath == "" {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return RenderResult{}, err
	}

	w, ok := uc.writers[req.Format]
	if !ok {
		return RenderResult{}, &domain.OpError{
			Op:   "usecase.render",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("no writer for format %q: %w", req.Format, domain.ErrInvalidConfig),
		}
	}
	if err := w.WriteDocument(doc, req.OutputPath); err != nil {
		return RenderResult{}, err
	}

	if uc.store != nil {
		id, err := uc.store.SaveRender(domain.RenderArtifact{
			SongPath:    req.SongPath,
			Title:       sheet.Header.Title,
			Artist:      sheet.Header.Artist,
			OriginalKey: original.Key.String(),
			Key:         sheet.Key.String(),
			Format:      req.Format,
			OutputPath:  req.OutputPath,
			PageWidth:   uc.cfg.Layout.PageWidth,
			CreatedAt:   uc.now(),
			Lines:       doc.Lines,
		})
		if err != nil {
			return RenderResult{}, err
		}
		res.ArtifactID = id
	}
	return res, nil
}

// Compose lays out a song and renders its heading.
func (uc *RenderSong) Compose(sheet domain.SheetMusic) (domain.Document, error) {
	heading, err := template.Heading(uc.cfg.Document.Heading, sheet)
	if err != nil {
		return domain.Document{}, err
	}
	lines, err := layout.RenderSong(sheet, layout.OptionsFrom(uc.cfg.Layout))
	if err != nil {
		return domain.Document{}, err
	}
	return domain.Document{Heading: heading, Lines: lines}, nil
}
