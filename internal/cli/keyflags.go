package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/cdclaxton/guitar-tab-generator/internal/usecase"
)

type keyFlags struct {
	key  string
	down bool
}

func (k *keyFlags) register(c *cobra.Command) {
	c.Flags().StringVarP(&k.key, "key", "k", "", "Target key (e.g. Bb, F#m); defaults to the song's own key")
	c.Flags().BoolVar(&k.down, "down", false, "Move notes down the neck instead of up")
}

func (k keyFlags) change() usecase.KeyChange {
	return usecase.KeyChange{Key: strings.TrimSpace(k.key), Up: !k.down}
}
