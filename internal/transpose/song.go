package transpose

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

// Song transposes every bar of a song into newKey. Bars are independent, so they are
// processed concurrently; results are written back by index and keep song order.
// The first failing bar cancels the remaining work and its error is returned.
func Song(ctx context.Context, song domain.SheetMusic, newKey string, up bool, opts ...Option) (domain.SheetMusic, error) {
	from, to, err := Keys(song.Key.String(), newKey)
	if err != nil {
		return domain.SheetMusic{}, err
	}

	out := domain.SheetMusic{
		Header:   song.Header,
		Key:      to,
		Sections: make([]domain.Section, len(song.Sections)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for si, sec := range song.Sections {
		out.Sections[si] = domain.Section{
			Name: sec.Name,
			Text: sec.Text,
			Bars: make([]domain.Bar, len(sec.Bars)),
		}
		for bi, bar := range sec.Bars {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				tb, err := BarInKeys(bar, from, to, up, opts...)
				if err != nil {
					return fmt.Errorf("section %q bar %d: %w", sec.Name, bi+1, err)
				}
				out.Sections[si].Bars[bi] = tb
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return domain.SheetMusic{}, err
	}
	return out, nil
}
